package pipeline

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/dexter/internal/pokeapi"
)

// DefaultDelay matches the exit fade of the record card.
const DefaultDelay = 180 * time.Millisecond

// Phase is the pipeline's position in Idle -> Loading -> Success|Failure -> Idle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Element names one animated region of the display.
type Element int

const (
	ElementImage Element = iota
	ElementName
	ElementTypes
	ElementID
)

// Elements lists every animated region in render order.
var Elements = []Element{ElementImage, ElementName, ElementTypes, ElementID}

// Visual is the transition state of an element.
type Visual int

const (
	VisualNone Visual = iota
	VisualEntered
	VisualExiting
)

// Ticket identifies one fetch. Tickets increase monotonically.
type Ticket uint64

// Outcome tells the caller what Complete did with a response.
type Outcome int

const (
	// OutcomeStale means the response belonged to a superseded ticket and was dropped.
	OutcomeStale Outcome = iota
	// OutcomeFailed means the display now shows the not-found placeholder.
	OutcomeFailed
	// OutcomeTransition means the exit phase began; call Finish after Delay.
	OutcomeTransition
)

// Options configure a Pipeline.
type Options struct {
	// Delay is the unconditional wait between the exit phase and the render.
	Delay time.Duration
	// DiscardStale drops responses whose ticket is not the latest issued.
	// When false, overlapping fetches resolve last-write-wins.
	DiscardStale bool
	Logger       logrus.FieldLogger
}

// Pipeline drives one display through fetch, exit, render and enter. It is
// owned by a single event loop and is not safe for concurrent use.
type Pipeline struct {
	phase    Phase
	visual   map[Element]Visual
	display  Display
	backdrop string

	latest  Ticket
	targets map[Ticket]string
	pending map[Ticket]*pokeapi.Pokemon

	delay        time.Duration
	discardStale bool
	log          logrus.FieldLogger
}

// New creates an idle pipeline.
func New(opts Options) *Pipeline {
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	visual := make(map[Element]Visual, len(Elements))
	for _, e := range Elements {
		visual[e] = VisualNone
	}
	return &Pipeline{
		visual:       visual,
		targets:      make(map[Ticket]string),
		pending:      make(map[Ticket]*pokeapi.Pokemon),
		delay:        delay,
		discardStale: opts.DiscardStale,
		log:          log,
	}
}

// Start moves to Loading for target and clears the display to the loading
// placeholder before any network activity. Earlier fetches are not cancelled.
func (p *Pipeline) Start(target string) Ticket {
	p.latest++
	t := p.latest
	p.targets[t] = target
	p.phase = PhaseLoading
	p.display = p.display.loading()
	p.log.WithFields(logrus.Fields{"target": target, "ticket": uint64(t)}).Debug("fetch started")
	return t
}

// Complete records the result of ticket t's fetch. Errors are logged and
// rendered as the not-found placeholder; they are never returned.
func (p *Pipeline) Complete(t Ticket, rec *pokeapi.Pokemon, err error) Outcome {
	target := p.targets[t]
	fields := logrus.Fields{"target": target, "ticket": uint64(t)}

	if p.isStale(t) {
		delete(p.targets, t)
		p.log.WithFields(fields).WithField("latest", uint64(p.latest)).Debug("discarding stale response")
		return OutcomeStale
	}

	if err == nil && rec == nil {
		err = pokeapi.ErrMalformed
	}
	if err != nil {
		delete(p.targets, t)
		p.phase = PhaseFailure
		p.display = p.display.notFound()
		p.log.WithFields(fields).WithError(err).Error("fetch failed")
		return OutcomeFailed
	}

	p.phase = PhaseSuccess
	p.pending[t] = rec
	p.beginExit()
	return OutcomeTransition
}

// Finish runs the render for ticket t once the exit delay has elapsed, then
// starts the enter phase. It returns the rendered view and true when the
// display was updated.
func (p *Pipeline) Finish(t Ticket) (RecordView, bool) {
	rec, ok := p.pending[t]
	delete(p.pending, t)
	target := p.targets[t]
	delete(p.targets, t)
	defer p.beginEnter()

	if !ok {
		return RecordView{}, false
	}
	if p.isStale(t) {
		p.log.WithFields(logrus.Fields{"target": target, "ticket": uint64(t)}).Debug("skipping render of stale record")
		return RecordView{}, false
	}
	if rec == nil {
		p.log.WithField("target", target).Error("render failed: empty record")
		return RecordView{}, false
	}

	view := Project(*rec)
	p.display = displayFor(view)
	if view.ImageURL != "" {
		p.backdrop = view.ImageURL
	}
	p.phase = PhaseSuccess
	p.log.WithFields(logrus.Fields{"target": target, "id": view.ID, "name": view.DisplayName}).Info("record rendered")
	return view, true
}

// Settle returns a finished pipeline to Idle. Loading is left untouched.
func (p *Pipeline) Settle() {
	if p.phase == PhaseSuccess || p.phase == PhaseFailure {
		p.phase = PhaseIdle
	}
}

func (p *Pipeline) isStale(t Ticket) bool {
	return p.discardStale && t != p.latest
}

func (p *Pipeline) beginExit() {
	for _, e := range Elements {
		p.visual[e] = VisualExiting
	}
}

func (p *Pipeline) beginEnter() {
	if p.discardStale && len(p.pending) > 0 {
		// A newer record is mid-transition; let its Finish enter.
		return
	}
	for _, e := range Elements {
		p.visual[e] = VisualEntered
	}
}

// Delay returns the wait between exit and render.
func (p *Pipeline) Delay() time.Duration { return p.delay }

// Phase returns the current phase.
func (p *Pipeline) Phase() Phase { return p.phase }

// Display returns the text bound to each element.
func (p *Pipeline) Display() Display { return p.display }

// Visual returns the transition state of e.
func (p *Pipeline) Visual(e Element) Visual { return p.visual[e] }

// Transitioning reports whether any element is exiting.
func (p *Pipeline) Transitioning() bool {
	for _, e := range Elements {
		if p.visual[e] == VisualExiting {
			return true
		}
	}
	return false
}

// Backdrop returns the image used as decorative backdrop, if any.
func (p *Pipeline) Backdrop() string { return p.backdrop }

// Latest returns the most recently issued ticket.
func (p *Pipeline) Latest() Ticket { return p.latest }
