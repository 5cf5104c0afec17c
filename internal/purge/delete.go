package purge

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bethropolis/rmx/internal/utils"
	"github.com/spf13/afero"
)

// Options configures Delete
type Options struct {
	Fs       afero.Fs
	Prompter Prompter
	Output   io.Writer
	Logger   utils.Logger
	Context  context.Context
	Report   *Report
}

// Option is a functional option for configuring Options
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Fs:      afero.NewOsFs(),
		Output:  os.Stdout,
		Logger:  utils.NoopLogger{},
		Context: context.Background(),
	}
}

// WithFs sets the filesystem files are removed from.
func WithFs(fs afero.Fs) Option {
	return func(o *Options) {
		if fs != nil {
			o.Fs = fs
		}
	}
}

// WithPrompter replaces the default stdin prompt.
func WithPrompter(p Prompter) Option {
	return func(o *Options) {
		o.Prompter = p
	}
}

// WithOutput sets where status lines are written.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Output = w
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(o *Options) {
		o.Logger = utils.OrNoop(logger)
	}
}

// WithContext sets the context checked before each removal.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithReport fills report with what Delete did.
func WithReport(report *Report) Option {
	return func(o *Options) {
		o.Report = report
	}
}

// Delete removes files according to opts.
//
// An empty set prints "No matching file." and a dry run returns at once;
// neither prompts. Otherwise the user is asked to confirm unless Force is
// set, and a negative answer cancels without error. Files are then removed
// in order; the first failure stops the loop and is returned as a
// *DeletionError. Files already removed stay removed.
func Delete(files []string, opts DeleteOptions, options ...Option) error {
	o := defaultOptions()
	for _, opt := range options {
		opt(&o)
	}
	if o.Prompter == nil {
		o.Prompter = NewLinePrompter(os.Stdin, o.Output, false)
	}
	report := o.Report
	if report == nil {
		report = &Report{}
	}
	startTime := time.Now()
	defer func() { report.Duration = time.Since(startTime) }()

	report.Start = Plan(files, opts)
	o.Logger.Debug("purge.Delete: %d candidate(s), state %s", len(files), report.Start)

	switch report.Start {
	case StateEmpty:
		fmt.Fprintln(o.Output, "No matching file.")
		return nil
	case StateDryRun:
		o.Logger.Info("Dry run: %d file(s) would be deleted.", len(files))
		return nil
	case StateNeedsConfirmation:
		ok, err := o.Prompter.Confirm(len(files))
		if err != nil {
			return err
		}
		if !ok {
			report.Cancelled = true
			fmt.Fprintln(o.Output, "Cancelled file deletion.")
			return nil
		}
		report.Confirmed = true
	}

	fmt.Fprintln(o.Output, "Deleting files...")
	for _, file := range files {
		if err := o.Context.Err(); err != nil {
			return fmt.Errorf("purge: stopped after %d of %d file(s): %w", report.Deleted, len(files), err)
		}
		if err := o.Fs.Remove(file); err != nil {
			o.Logger.Error("Failed to delete %s after %d of %d file(s)", file, report.Deleted, len(files))
			return &DeletionError{Path: file, Err: err}
		}
		report.Deleted++
		o.Logger.Debug("Deleted %s", file)
	}
	fmt.Fprintln(o.Output, "Done!")

	return nil
}
