package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/rmx/internal/config"
	"github.com/bethropolis/rmx/internal/extension"
	"github.com/bethropolis/rmx/internal/logger"
	"github.com/bethropolis/rmx/internal/preset"
	"github.com/bethropolis/rmx/internal/printer"
	"github.com/bethropolis/rmx/internal/purge"
	"github.com/bethropolis/rmx/internal/setup"
	"github.com/bethropolis/rmx/internal/summary"
	"github.com/bethropolis/rmx/internal/walker"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// App runs one rmx invocation
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates an App. Listing, prompt and status lines go to stdout; logs
// and error reports go to stderr. With JSON output only the listing stays
// on stdout.
func New(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) *App {
	// Only the logger relies on the global switch; printer and prompt
	// set their colours explicitly.
	color.NoColor = !cfg.LogColors

	log := logger.New(stderr, cfg.Verbose, cfg.LogColors)
	switch {
	case cfg.LogLevel != "":
		log.SetLevel(cfg.LogLevel)
	case cfg.Verbose:
		// already DEBUG
	case cfg.Quiet:
		log.WithLevel(logger.LevelError)
	default:
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		fs:     afero.NewOsFs(),
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run lists presets, or collects the matching files and deletes them.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	store := preset.NewStore(a.cfg.ConfigPath, preset.WithFs(a.fs), preset.WithLogger(a.log))
	if a.cfg.ShowPresets {
		return store.Show(a.Stdout, a.Stderr)
	}

	exts, err := a.extensions(store)
	if err != nil {
		return fmt.Errorf("collecting extensions: %w", err)
	}

	a.log.Debug("Directory: %s", a.cfg.Path)
	a.log.Debug("Extensions: %v (invert: %v)", exts, a.cfg.Invert)
	a.log.Debug("Options: %+v %+v", a.cfg.CollectOptions(), a.cfg.DeleteOptions())

	files, err := a.collect(ctx, exts)
	if err != nil {
		return err
	}

	// Keep stdout a single JSON document.
	status := a.Stdout
	if a.cfg.JSONOutput {
		status = a.Stderr
	}

	var report purge.Report
	err = purge.Delete(files, a.cfg.DeleteOptions(),
		purge.WithFs(a.fs),
		purge.WithPrompter(purge.NewLinePrompter(a.Stdin, status, a.cfg.UseColors)),
		purge.WithOutput(status),
		purge.WithLogger(a.log),
		purge.WithContext(ctx),
		purge.WithReport(&report),
	)
	if err != nil {
		return err
	}
	summary.DisplayDeletion(a.log, report)
	return nil
}

func (a *App) extensions(store *preset.Store) ([]string, error) {
	exts := a.cfg.Extensions
	if a.cfg.Preset != "" {
		var err error
		if exts, err = store.Lookup(a.cfg.Preset); err != nil {
			return nil, err
		}
		a.log.Info("Using preset %q from %s: %v", a.cfg.Preset, store.Path(), exts)
	}
	if err := extension.Validate(exts); err != nil {
		return nil, err
	}
	return exts, nil
}

func (a *App) collect(ctx context.Context, exts []string) ([]string, error) {
	startTime := time.Now()

	p := printer.New().
		WithOutput(a.Stdout).
		WithColors(a.cfg.UseColors).
		WithJSON(a.cfg.JSONOutput)

	var stats walker.Stats
	var tracker *walker.SkippedTracker
	if a.cfg.ShowSkipped {
		tracker = walker.NewSkippedTracker(64)
	}

	walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:      a.cfg.Path,
		UseGitignore: a.cfg.UseGitignore,
		Exclude:      a.cfg.Exclude,
		Context:      ctx,
		Fs:           a.fs,
		OnSelect:     p.PrintPath,
		Tracker:      tracker,
		Stats:        &stats,
		Logger:       a.log,
	})
	if err != nil {
		return nil, err
	}

	files, err := walker.Collect(exts, a.cfg.Path, a.cfg.CollectOptions(), walkOptions...)
	p.Finalize()
	if err != nil {
		return nil, err
	}

	summary.DisplayScan(a.log, stats, time.Since(startTime))
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(tracker.Items(), a.Stderr)
	}
	return files, nil
}
