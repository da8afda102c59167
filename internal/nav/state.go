package nav

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultFallbackMax is used until the bound lookup reports the real count.
const DefaultFallbackMax = 1010

// ErrBoundLookup wraps every failure of the startup count lookup.
var ErrBoundLookup = errors.New("bound lookup failed")

// Direction selects a sequential step.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Target is what a navigation or search asks the pipeline to fetch: either a
// numeric id or a lowercase name.
type Target struct {
	ID   int
	Name string
}

// ByID returns a numeric target.
func ByID(id int) Target { return Target{ID: id} }

// Key renders the target as the API path segment.
func (t Target) Key() string {
	if t.Name != "" {
		return t.Name
	}
	return strconv.Itoa(t.ID)
}

// Controls reports which navigation controls the UI should enable.
type Controls struct {
	Previous bool
	Next     bool
	Random   bool
	Search   bool
}

// Navigator is the navigation contract the UI controller depends on.
type Navigator interface {
	Advance(d Direction) (int, bool)
	RandomTarget() int
	ResolveSearchTerm(raw string) (Target, bool)
	SetCurrentID(id int)
	Controls() Controls
	FinishBoundLookup(count int, err error) error
	CurrentID() int
	MaxID() int
	Ready() bool
}

var _ Navigator = (*State)(nil)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Option customises a State.
type Option func(*State)

// WithLogger routes bound lookup warnings to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *State) {
		if log != nil {
			s.log = log
		}
	}
}

// WithIntN replaces the random source; intN must return a value in [0, n).
func WithIntN(intN func(n int) int) Option {
	return func(s *State) {
		if intN != nil {
			s.intN = intN
		}
	}
}

// State holds the session's navigation position. It is safe for concurrent
// use; every accessor takes the lock.
type State struct {
	mu        sync.RWMutex
	currentID int
	maxID     int
	ready     bool

	intN func(n int) int
	log  logrus.FieldLogger
}

// New creates a State positioned at startID with fallbackMax as the bound
// until FinishBoundLookup runs. Values below 1 are clamped to 1.
func New(startID, fallbackMax int, opts ...Option) *State {
	if fallbackMax < 1 {
		fallbackMax = DefaultFallbackMax
	}
	if startID < 1 {
		startID = 1
	}
	discard := logrus.New()
	discard.Out = io.Discard
	s := &State{
		currentID: startID,
		maxID:     fallbackMax,
		intN:      rand.Intn,
		log:       discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Advance steps one id in direction d. It reports false and leaves the state
// untouched when the step would leave [1, maxID].
func (s *State) Advance(d Direction) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.currentID + 1
	if d == Previous {
		next = s.currentID - 1
	}
	if next < 1 || next > s.maxID {
		return s.currentID, false
	}
	s.currentID = next
	return next, true
}

// RandomTarget returns a uniformly distributed id in [1, maxID]. The current
// id may be returned again.
func (s *State) RandomTarget() int {
	s.mu.RLock()
	maxID := s.maxID
	s.mu.RUnlock()
	return s.intN(maxID) + 1
}

// ResolveSearchTerm classifies raw input. Digits become a numeric id, any
// other text a lowercase name. Blank input reports false. State is not
// mutated; the pipeline records the resolved id after a successful fetch.
func (s *State) ResolveSearchTerm(raw string) (Target, bool) {
	return ResolveSearchTerm(raw)
}

// ResolveSearchTerm is the stateless classifier behind State.ResolveSearchTerm.
func ResolveSearchTerm(raw string) (Target, bool) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return Target{}, false
	}
	if digitsOnly.MatchString(q) {
		if id, err := strconv.Atoi(q); err == nil {
			return Target{ID: id}, true
		}
		// Too large for an int: let the API answer not found.
	}
	return Target{Name: strings.ToLower(q)}, true
}

// SetCurrentID records the id of a successfully fetched record. Ids below 1
// are ignored and the previous id is kept.
func (s *State) SetCurrentID(id int) {
	if id < 1 {
		return
	}
	s.mu.Lock()
	s.currentID = id
	s.mu.Unlock()
}

// Controls recomputes control enablement from the current state.
func (s *State) Controls() Controls {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Controls{
		Previous: s.ready && s.currentID > 1,
		Next:     s.ready && s.currentID < s.maxID,
		Random:   s.ready,
		Search:   s.ready,
	}
}

// FinishBoundLookup applies the outcome of the startup count lookup. On
// failure the fallback bound is kept and a warning is logged. The state is
// ready afterwards either way. The returned error wraps ErrBoundLookup and is
// informational only.
func (s *State) FinishBoundLookup(count int, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true

	if err == nil && count < 1 {
		err = fmt.Errorf("count %d is not a valid bound", count)
	}
	if err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrBoundLookup, err)
		s.log.WithError(err).WithField("fallback_max", s.maxID).
			Warn("could not fetch total record count, using fallback bound")
		return wrapped
	}
	s.maxID = count
	s.log.WithField("max_id", count).Debug("bound lookup complete")
	return nil
}

// CurrentID returns the id currently shown or being navigated to.
func (s *State) CurrentID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID
}

// MaxID returns the current upper bound.
func (s *State) MaxID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxID
}

// Ready reports whether the bound lookup has finished.
func (s *State) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}
