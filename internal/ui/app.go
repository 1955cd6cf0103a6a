package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/brevity/internal/capability"
	"github.com/five82/brevity/internal/deck"
	"github.com/five82/brevity/internal/grid"
	"github.com/five82/brevity/internal/location"
	"github.com/five82/brevity/internal/nav"
	"github.com/five82/brevity/internal/prefs"
	"github.com/five82/brevity/internal/state"
	"github.com/five82/brevity/internal/transform"
)

// Input sources reported to Options.Observe.
const (
	SourceKeyboard = "keyboard"
	SourceWheel    = "wheel"
	SourceTouch    = "touch"
	SourceClick    = "click"
	SourceJump     = "jump"
)

// viewMode selects what the slide area shows.
type viewMode int

const (
	modeSlides viewMode = iota
	modeOverview
	modeGrid
)

// Options configures the UI.
type Options struct {
	Presentation *deck.Presentation
	// Start is the initial position; out-of-grid starts fall back to the
	// first slide.
	Start      grid.Position
	Continuous bool
	Ratio      float64

	Capabilities capability.Capabilities
	Adapters     capability.Adapters

	ThemeName string
	// RenderStyle overrides the theme's glamour style when set.
	RenderStyle string
	PrefsPath   string

	Store *state.Store
	// Publisher receives every location token in addition to Store.
	Publisher location.Publisher
	Logger    *slog.Logger
	Debug     bool
	LogPath   string

	// Observe is told about every navigation with its input source.
	Observe func(source string, res nav.Result)
	// Reload re-reads the presentation when a ReloadMsg arrives.
	Reload func() (*deck.Presentation, error)
	// OnReload is told about the outcome of every reload.
	OnReload func(err error)
	// Clipboard copies text; defaults to the system clipboard.
	Clipboard func(string) error
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	presentation *deck.Presentation
	nav          *nav.Navigator
	driver       *transform.Driver
	stage        *Stage
	slides       *slideCache
	zones        *zone.Manager
	keys         keyMap

	store    *state.Store
	logger   *slog.Logger
	adapters capability.Adapters
	caps     capability.Capabilities
	opts     Options
	now      func() time.Time

	// UI state
	theme      Theme
	width      int
	height     int
	ready      bool
	mode       viewMode
	fullscreen bool
	showHelp   bool
	modal      Modal

	// framing is true while a frame tick is scheduled.
	framing   bool
	resizeSeq int
	drag      dragState

	flash    string
	flashErr bool
	flashSeq int

	lastErr error
}

// New creates a new Bubble Tea model.
func New(opts Options) (Model, error) {
	if opts.Presentation == nil {
		return Model{}, errors.New("ui requires a presentation")
	}
	g, err := opts.Presentation.Grid()
	if err != nil {
		return Model{}, fmt.Errorf("build grid: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	theme := GetTheme(themeName)

	stage := NewStage(g.Decks())
	stage.now = now
	driver := transform.NewDriver(stage, transform.Layout{Ratio: opts.Ratio}, opts.Capabilities.Transitions)
	navigator := nav.New(g, driver, nav.Options{
		Continuous: opts.Continuous,
		Publisher:  location.Multi(store, opts.Publisher),
		Observer: func(res nav.Result) {
			store.Record(res.Outcome.String(), driver.Busy())
		},
		Logger: logger,
	})

	store.SetPresentation(opts.Presentation.Path, opts.Presentation.Title(), opts.Presentation.Counts())
	navigator.Initialize(opts.Start)

	m := Model{
		presentation: opts.Presentation,
		nav:          navigator,
		driver:       driver,
		stage:        stage,
		zones:        zone.New(),
		keys:         DefaultKeyMap(),
		store:        store,
		logger:       logger,
		adapters:     opts.Adapters,
		caps:         opts.Capabilities,
		opts:         opts,
		now:          now,
		theme:        theme,
	}
	m.slides = newSlideCache(deck.NewRenderer(m.renderStyle()))
	return m, nil
}

// Navigator exposes the navigator for callers that run before the program
// starts.
func (m Model) Navigator() *nav.Navigator {
	return m.nav
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.ready = true
			m.relayout()
			return m, nil
		}
		m.resizeSeq++
		return m, resizeCmd(m.resizeSeq)

	case resizeMsg:
		if msg.seq != m.resizeSeq {
			return m, nil
		}
		m.relayout()
		return m, nil

	case frameMsg:
		m.framing = false
		m.stage.Advance(time.Time(msg))
		m.store.SetBusy(m.driver.Busy())
		cmd := m.frames()
		return m, cmd

	case jumpMsg:
		res := m.nav.NavigateTo(msg.pos, transform.Auto)
		m.observe(SourceJump, res)
		m.mode = modeSlides
		cmd := m.frames()
		return m, cmd

	case remoteMsg:
		res := msg.cmd.Run(m.nav)
		msg.reply <- res
		cmd := m.frames()
		return m, cmd

	case ReloadMsg:
		if m.opts.Reload == nil {
			return m, nil
		}
		return m, reloadCmd(m.opts.Reload)

	case reloadedMsg:
		cmd := m.applyReload(msg)
		return m, cmd

	case diagnosticsMsg:
		if d, ok := m.modal.(diagnosticsModal); ok {
			d.setLogs(msg)
			m.modal = d
		}
		return m, nil

	case flashMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
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

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.zones.Scan(clip(m.renderMain(), m.width, m.height))
}

// renderMain renders the chrome around the slide area.
func (m Model) renderMain() string {
	layout := m.driver.Layout()
	var body string
	switch m.mode {
	case modeOverview:
		body = m.renderOverview(layout.Width, layout.Height)
	case modeGrid:
		body = m.renderGrid(layout.Width, layout.Height)
	default:
		body = compose(m.nav.Grid(), m.stage, m.now(), layout.Width, layout.Height, func(pos grid.Position) []string {
			return m.slides.get(m.presentation, pos, layout.Width, layout.Height)
		})
	}
	if m.fullscreen {
		return body
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// chromeRows is the number of rows taken by the header and footer.
func (m Model) chromeRows() int {
	if m.fullscreen {
		return 0
	}
	return 2
}

// relayout pushes the terminal size into the driver and re-applies every
// deck's offset in the new geometry.
func (m *Model) relayout() {
	layout := transform.Layout{
		Width:  max(m.width, 1),
		Height: max(m.height-m.chromeRows(), 1),
		Ratio:  m.opts.Ratio,
	}
	m.driver.SetLayout(layout)
	m.realign()
	m.nav.Refresh()
	m.store.SetBusy(m.driver.Busy())
}

// realign snaps every deck to its remembered slide in the current layout.
func (m *Model) realign() {
	layout := m.driver.Layout()
	g := m.nav.Grid()
	for d := range g.Decks() {
		m.stage.Target(grid.Position{Deck: d})
		m.stage.ApplyTransform(transform.Y, -m.nav.LastActive(d)*layout.Height, 0, nil)
	}
	m.stage.Target(m.nav.Position())
}

// frames schedules the next animation frame when something is moving.
func (m *Model) frames() tea.Cmd {
	if m.framing || !m.stage.Animating() {
		return nil
	}
	m.framing = true
	return frameCmd()
}

// observe reports a locally originated navigation.
func (m *Model) observe(source string, res nav.Result) {
	if m.opts.Observe != nil {
		m.opts.Observe(source, res)
	}
}

func (m *Model) applyReload(msg reloadedMsg) tea.Cmd {
	if m.opts.OnReload != nil {
		m.opts.OnReload(msg.err)
	}
	if msg.err != nil {
		m.lastErr = msg.err
		m.store.Fail(msg.err)
		m.logger.Warn("reload failed", "error", msg.err)
		return m.setFlash("Reload failed: "+msg.err.Error(), true)
	}
	g, err := msg.presentation.Grid()
	if err != nil {
		m.lastErr = err
		m.store.Fail(err)
		m.logger.Warn("reload produced invalid grid", "error", err)
		return m.setFlash("Reload failed: "+err.Error(), true)
	}
	m.lastErr = nil
	m.presentation = msg.presentation
	m.stage.Reset(g.Decks())
	m.slides.reset(nil)
	m.store.SetPresentation(msg.presentation.Path, msg.presentation.Title(), msg.presentation.Counts())
	res := m.nav.Reinitialize(g, g.Clamp(m.nav.Position()))
	m.logger.Info("presentation reloaded", "decks", g.Decks(), "slides", g.Total(), "location", res.Token)
	return m.setFlash("Reloaded", false)
}

// copyLocation puts the shareable location on the clipboard.
func (m *Model) copyLocation() tea.Cmd {
	text := m.presentation.Path + location.Fragment(m.nav.Position())
	if err := m.opts.Clipboard(text); err != nil {
		m.logger.Warn("copy location failed", "error", err)
		return m.setFlash("Copy failed: "+err.Error(), true)
	}
	return m.setFlash("Copied "+text, false)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.slides.reset(deck.NewRenderer(m.renderStyle()))
	if m.opts.PrefsPath == "" {
		return
	}
	name := m.theme.Name
	err := prefs.Update(m.opts.PrefsPath, func(p prefs.Prefs) prefs.Prefs {
		p.Theme = name
		return p
	})
	if err != nil {
		m.logger.Warn("save theme preference failed", "error", err)
	}
}

func (m Model) renderStyle() string {
	if m.opts.RenderStyle != "" {
		return m.opts.RenderStyle
	}
	return m.theme.Glamour
}

func (m *Model) setFlash(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashErr = isErr
	m.flashSeq++
	return flashCmd(m.flashSeq)
}

// clip crops s to w columns and h rows.
func clip(s string, w, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > w {
			lines[i] = ansi.Truncate(line, w, "")
		}
	}
	return strings.Join(lines, "\n")
}

// Messages

// ReloadMsg asks the model to re-read the presentation.
type ReloadMsg struct{}

type reloadedMsg struct {
	presentation *deck.Presentation
	err          error
}

type frameMsg time.Time

type resizeMsg struct {
	seq int
}

type flashMsg struct {
	seq int
}

// Commands

const (
	frameInterval  = 16 * time.Millisecond
	resizeDebounce = 250 * time.Millisecond
	flashDuration  = 2 * time.Second
)

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func resizeCmd(seq int) tea.Cmd {
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeMsg{seq: seq}
	})
}

func flashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashMsg{seq: seq}
	})
}

func reloadCmd(load func() (*deck.Presentation, error)) tea.Cmd {
	return func() tea.Msg {
		p, err := load()
		return reloadedMsg{presentation: p, err: err}
	}
}

// NewProgram returns the Bubble Tea program for m. Callers may Send
// ReloadMsg and remote commands to it while it runs.
func NewProgram(m Model, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(m, opts...)
}

// Close releases the click zone tracker.
func (m Model) Close() {
	m.zones.Close()
}

// ProgramOptions returns the program options matching the enabled adapters.
func ProgramOptions(a capability.Adapters) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.Wheel || a.Touch || a.Click {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}
