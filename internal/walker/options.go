package walker

import (
	"context"
	"fmt"
	"os"

	"github.com/bethropolis/rmx/internal/utils"
	"github.com/spf13/afero"
)

// WalkOptions configures the behavior of Collect
type WalkOptions struct {
	Logger   utils.Logger
	Fs       afero.Fs
	Context  context.Context
	OnSelect SelectFunc
	Ignore   IgnoreChecker
	Tracker  *SkippedTracker
	Stats    *Stats
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:  utils.NoopLogger{},
		Fs:      afero.NewOsFs(),
		Context: context.Background(),
		OnSelect: func(path string) {
			fmt.Fprintln(os.Stdout, path)
		},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithFs sets the filesystem to walk. The default is the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(opts *WalkOptions) {
		if fs != nil {
			opts.Fs = fs
		}
	}
}

// WithContext sets the context checked before each directory is listed.
func WithContext(ctx context.Context) Option {
	return func(opts *WalkOptions) {
		if ctx != nil {
			opts.Context = ctx
		}
	}
}

// WithSelectFunc replaces the default listing, which prints to stdout.
func WithSelectFunc(fn SelectFunc) Option {
	return func(opts *WalkOptions) {
		if fn != nil {
			opts.OnSelect = fn
		}
	}
}

// WithIgnore excludes entries matched by the checker.
func WithIgnore(checker IgnoreChecker) Option {
	return func(opts *WalkOptions) {
		opts.Ignore = checker
	}
}

// WithTracker records skipped entries into tracker.
func WithTracker(tracker *SkippedTracker) Option {
	return func(opts *WalkOptions) {
		opts.Tracker = tracker
	}
}

// WithStats fills stats as the walk progresses.
func WithStats(stats *Stats) Option {
	return func(opts *WalkOptions) {
		opts.Stats = stats
	}
}
