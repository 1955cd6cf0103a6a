package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/brevity/internal/capability"
	"github.com/five82/brevity/internal/config"
	"github.com/five82/brevity/internal/deck"
	"github.com/five82/brevity/internal/grid"
	"github.com/five82/brevity/internal/location"
	"github.com/five82/brevity/internal/logging"
	"github.com/five82/brevity/internal/prefs"
	"github.com/five82/brevity/internal/remote"
	"github.com/five82/brevity/internal/state"
	"github.com/five82/brevity/internal/ui"
	"github.com/five82/brevity/internal/watcher"
)

const reloadDebounce = 200 * time.Millisecond

// Options configure a presentation session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/brevity/prefs.toml
	// Target is the presentation path, optionally followed by a "#/d/s"
	// location.
	Target string
	// At overrides the location carried by Target.
	At        string
	Overrides config.Overrides
}

// Session is a loaded presentation with its resolved settings, ready to
// run.
type Session struct {
	Config       config.Config
	Presentation *deck.Presentation
	Prefs        prefs.Prefs
	Start        grid.Position
	Theme        string
}

// Prepare loads the configuration and the presentation and resolves the
// starting location. Settings are layered as config file, then front
// matter, then command line.
func Prepare(opts Options) (Session, error) {
	fileCfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Session{}, fmt.Errorf("load config: %w", err)
	}

	path, token := location.Split(opts.Target)
	if opts.At != "" {
		token = opts.At
	}
	if path == "" {
		return Session{}, errors.New("no presentation given")
	}

	pres, err := deck.Load(path)
	if err != nil {
		return Session{}, fmt.Errorf("load presentation: %w", err)
	}

	cfg := fileCfg.Apply(metaOverrides(pres.Meta)).Apply(opts.Overrides)
	userPrefs := prefs.Load(prefsPath(opts))

	if token == "" && cfg.Resume {
		token, _ = userPrefs.Bookmark(pres.Path)
	}
	g, err := grid.New(pres.Counts())
	if err != nil {
		return Session{}, fmt.Errorf("load presentation: %w", err)
	}
	fallback := location.Start(cfg.StartDeck, cfg.StartSlide)
	start := fallback
	if token != "" {
		start = startWithin(g, location.Decode(token, fallback), fallback)
	}
	start = g.Clamp(start)

	// The theme last picked in the UI applies unless one was named
	// explicitly.
	theme := userPrefs.Theme
	if fileCfg.Theme != config.Default().Theme || pres.Meta.Theme != "" || opts.Overrides.Theme != "" {
		theme = cfg.Theme
	}

	return Session{
		Config:       cfg,
		Presentation: pres,
		Prefs:        userPrefs,
		Start:        start,
		Theme:        theme,
	}, nil
}

// startWithin replaces each out-of-range segment of pos with the
// fallback's.
func startWithin(g grid.Grid, pos, fallback grid.Position) grid.Position {
	if pos.Deck < 0 || pos.Deck >= g.Decks() {
		pos.Deck = fallback.Deck
	}
	if pos.Slide < 0 || pos.Slide >= g.Slides(pos.Deck) {
		pos.Slide = fallback.Slide
	}
	return pos
}

func metaOverrides(m deck.Meta) config.Overrides {
	return config.Overrides{
		Continuous: m.Continuous,
		Ratio:      m.Ratio,
		StartDeck:  m.StartDeck,
		StartSlide: m.StartSlide,
		Theme:      m.Theme,
	}
}

func prefsPath(opts Options) string {
	if opts.PrefsPath != "" {
		return opts.PrefsPath
	}
	return prefs.DefaultPath()
}

// Run presents the target until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	sess, err := Prepare(opts)
	if err != nil {
		return err
	}
	cfg := sess.Config
	pres := sess.Presentation

	logger, closer, err := logging.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	caps := capability.ProbeStdout()
	adapters := capability.Select(capability.Requested{
		Keyboard: cfg.Keyboard,
		Mouse:    cfg.Mouse,
		Touch:    cfg.Touch,
	}, caps)
	logger.Info("presentation starting",
		"path", pres.Path,
		"decks", len(pres.Decks),
		"terminal", caps.Terminal,
		"touch", caps.Touch,
		"transitions", caps.Transitions,
		"keyboard", adapters.Keyboard,
		"wheel", adapters.Wheel,
		"swipe", adapters.Touch,
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	metrics := remote.NewMetrics()
	logPath := ""
	if cfg.Debug {
		logPath = cfg.LogFile
	}

	m, err := ui.New(ui.Options{
		Presentation: pres,
		Start:        sess.Start,
		Continuous:   cfg.Continuous,
		Ratio:        cfg.Ratio,
		Capabilities: caps,
		Adapters:     adapters,
		ThemeName:    sess.Theme,
		PrefsPath:    prefsPath(opts),
		Store:        store,
		Publisher:    ordinalPublisher(store, metrics),
		Logger:       logger,
		Debug:        cfg.Debug,
		LogPath:      logPath,
		Observe:      metrics.Observe,
		Reload: func() (*deck.Presentation, error) {
			return deck.Load(pres.Path)
		},
		OnReload: metrics.Reloaded,
	})
	if err != nil {
		return fmt.Errorf("init ui: %w", err)
	}
	defer m.Close()

	p := ui.NewProgram(m, ui.ProgramOptions(adapters)...)

	if cfg.Remote != "" {
		handler := remote.NewHandler(store, ui.Dispatch(p.Send), metrics, logger)
		go func() {
			if err := remote.Serve(ctx, cfg.Remote, handler, logger); err != nil {
				logger.Error("remote control stopped", "addr", cfg.Remote, "error", err)
			}
		}()
	}

	if cfg.Watch {
		startWatcher(ctx, pres.Path, logger, func() { p.Send(ui.ReloadMsg{}) })
	}

	if cfg.Resume {
		StartBookmarker(ctx, store, prefsPath(opts), pres.Path, defaultSaveInterval, logger)
	}

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, runErr := p.Run()
	cancel()

	saveBookmark(store, prefsPath(opts), pres.Path, "", logger)
	if runErr != nil {
		return fmt.Errorf("run ui: %w", runErr)
	}
	return nil
}

// ordinalPublisher keeps the slide gauge in step with every published
// location.
func ordinalPublisher(store *state.Store, metrics *remote.Metrics) location.Publisher {
	return location.PublisherFunc(func(string) {
		snap := store.Snapshot()
		g, err := grid.New(snap.Counts)
		if err != nil {
			return
		}
		metrics.SetOrdinal(g.Ordinal(snap.Position))
	})
}

func startWatcher(ctx context.Context, path string, logger *slog.Logger, onChange func()) {
	w, err := watcher.New(path, reloadDebounce, logger)
	if err != nil {
		logger.Warn("live reload disabled", "path", path, "error", err)
		return
	}
	go func() {
		defer w.Close()
		if err := w.Run(ctx, onChange); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("watcher stopped", "path", path, "error", err)
		}
	}()
}
