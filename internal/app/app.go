package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/five82/dexter/internal/config"
	"github.com/five82/dexter/internal/diag"
	"github.com/five82/dexter/internal/nav"
	"github.com/five82/dexter/internal/pipeline"
	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/prefs"
	"github.com/five82/dexter/internal/ui"
)

// Options configure the dexter application. Zero values defer to config.toml.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/dexter/prefs.toml
	LogFile    string // overrides log_file
	StartID    int    // overrides start_id
	Verbose    bool
}

// Run boots the dexter TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, closeLog, err := diag.New(diag.Options{Path: cfg.LogFile, Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("init diagnostic log: %w", err)
	}
	defer closeLog()

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	state := nav.New(cfg.StartID, cfg.FallbackMaxID, nav.WithLogger(diag.Component(log, "nav")))
	pipe := pipeline.New(pipeline.Options{
		Delay:        cfg.Transition,
		DiscardStale: cfg.DiscardStale,
		Logger:       diag.Component(log, "pipeline"),
	})

	log.WithFields(logrus.Fields{
		"api_base":      cfg.APIBase,
		"start_id":      cfg.StartID,
		"fallback_max":  cfg.FallbackMaxID,
		"discard_stale": cfg.DiscardStale,
	}).Info("dexter starting")

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Nav:       state,
		Pipeline:  pipe,
		Logger:    diag.Component(log, "ui"),
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		LogFile:   cfg.LogFile,
	}
	if err := ui.Run(uiOpts); err != nil {
		log.WithError(err).Error("ui exited with error")
		return err
	}
	log.Info("dexter stopped")
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if path := strings.TrimSpace(opts.LogFile); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = expanded
	}
	if opts.StartID > 0 {
		cfg.StartID = opts.StartID
	}
	return cfg, nil
}

func newClient(cfg config.Config) (*pokeapi.Client, error) {
	return pokeapi.NewClient(cfg.APIBase, pokeapi.Options{
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	})
}
