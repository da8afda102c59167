package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/dexter/internal/nav"
	"github.com/five82/dexter/internal/pipeline"
	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewDiagnostics
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Client   pokeapi.Fetcher
	Nav      nav.Navigator
	Pipeline *pipeline.Pipeline
	Logger   logrus.FieldLogger

	// ThemeName overrides Prefs.Theme when set.
	ThemeName string
	Prefs     prefs.Prefs
	PrefsPath string
	// LogFile is tailed by the diagnostics view.
	LogFile string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    pokeapi.Fetcher
	nav       nav.Navigator
	pipe      *pipeline.Pipeline
	log       logrus.FieldLogger
	prefs     prefs.Prefs
	prefsPath string
	logFile   string

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	search      textinput.Model
	searching   bool
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// boundErr is set when the catalog size lookup failed and the fallback
	// bound is in use.
	boundErr error

	diag diagnosticsState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	p := opts.Prefs
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = p.Theme
	}
	theme := GetTheme(themeName)
	p.Theme = theme.Name

	pipe := opts.Pipeline
	if pipe == nil {
		pipe = pipeline.New(pipeline.Options{DiscardStale: true, Logger: log})
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "name or number"
	search.CharLimit = 40
	search.Width = 24

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		nav:       opts.Nav,
		pipe:      pipe,
		log:       log,
		prefs:     p,
		prefsPath: opts.PrefsPath,
		logFile:   opts.LogFile,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   spin,
		search:    search,
	}
	m.applyTheme()
	m.syncKeys()
	return m
}

// Init implements tea.Model. The bound lookup and the first record fetch are
// issued together.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		lookupBoundCmd(m.ctx, m.client),
		m.fetch(nav.ByID(m.nav.CurrentID())),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case boundMsg:
		if err := m.nav.FinishBoundLookup(msg.count, msg.err); err != nil {
			m.boundErr = err
		}
		m.syncKeys()
		return m, nil

	case recordMsg:
		return m.handleRecord(msg)

	case transitionMsg:
		return m.handleTransition(msg)

	case diagnosticsMsg:
		m.diag.entries = msg.entries
		m.diag.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleRecord feeds a fetch result into the pipeline and schedules the
// render once the exit transition has had time to play.
func (m Model) handleRecord(msg recordMsg) (tea.Model, tea.Cmd) {
	switch m.pipe.Complete(msg.ticket, msg.rec, msg.err) {
	case pipeline.OutcomeTransition:
		return m, transitionCmd(m.pipe.Delay(), msg.ticket)
	case pipeline.OutcomeFailed:
		m.pipe.Settle()
	}
	return m, nil
}

func (m Model) handleTransition(msg transitionMsg) (tea.Model, tea.Cmd) {
	if view, ok := m.pipe.Finish(msg.ticket); ok {
		m.nav.SetCurrentID(view.ID)
	}
	m.pipe.Settle()
	m.syncKeys()
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.syncKeys()

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.applyTheme()
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.ToggleImage):
		m.prefs.HideImageURL = !m.prefs.HideImageURL
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Diagnostics):
		if m.currentView == ViewDiagnostics {
			m.currentView = ViewCatalog
			return m, nil
		}
		m.currentView = ViewDiagnostics
		return m, readDiagnosticsCmd(m.logFile, DiagnosticsLineLimit)
	}

	if m.currentView == ViewDiagnostics {
		if key.Matches(msg, m.keys.Cancel) {
			m.currentView = ViewCatalog
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Previous):
		cmd := m.advance(nav.Previous)
		m.syncKeys()
		return m, cmd
	case key.Matches(msg, m.keys.Next):
		cmd := m.advance(nav.Next)
		m.syncKeys()
		return m, cmd
	case key.Matches(msg, m.keys.Random):
		return m, m.fetch(nav.ByID(m.nav.RandomTarget()))
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	}
	return m, nil
}

// handleSearchKey routes input to the focused search field.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		target, ok := m.nav.ResolveSearchTerm(m.search.Value())
		if !ok {
			return m, nil
		}
		m.searching = false
		m.search.Blur()
		return m, m.fetch(target)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) advance(d nav.Direction) tea.Cmd {
	id, ok := m.nav.Advance(d)
	if !ok {
		return nil
	}
	return m.fetch(nav.ByID(id))
}

// fetch puts the pipeline into Loading for target and returns the request
// along with a spinner tick.
func (m Model) fetch(target nav.Target) tea.Cmd {
	term := target.Key()
	ticket := m.pipe.Start(term)
	return tea.Batch(
		fetchRecordCmd(m.ctx, m.client, ticket, term),
		m.spinner.Tick,
	)
}

// syncKeys applies the navigator's control state to the key bindings. It runs
// after every navigation mutation.
func (m *Model) syncKeys() {
	if m.nav == nil {
		return
	}
	m.keys.syncControls(m.nav.Controls())
}

func (m Model) busy() bool {
	return m.pipe.Phase() == pipeline.PhaseLoading || m.pipe.Transitioning()
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.WithError(err).Warn("save preferences failed")
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
