package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bethropolis/rmx/internal/preset"
	"github.com/bethropolis/rmx/internal/purge"
	"github.com/bethropolis/rmx/internal/walker"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// Config holds all application configuration settings
type Config struct {
	// What to delete
	Extensions []string
	Path       string
	Preset     string
	ConfigPath string

	// Selection policy
	All     bool
	Recurse bool
	Invert  bool

	// Deletion policy
	Force  bool
	List   bool
	DryRun bool

	// Modes
	ShowPresets bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool // colour on stdout: listing and prompt
	LogColors bool // colour on stderr: log prefixes

	// Output
	JSONOutput  bool
	ShowSkipped bool

	// Filtering settings
	UseGitignore bool
	Exclude      string

	Timeout time.Duration
}

var (
	errNoExtensions     = errors.New("the following required arguments were not provided: <EXTENSIONS>... (or --preset/--presets)")
	errPresetConflict   = errors.New("extensions cannot be used with --preset or --presets")
	errPresetsAndPreset = errors.New("--preset cannot be used with --presets")
)

// New creates a Config with default values
func New() *Config {
	return &Config{
		ConfigPath: preset.DefaultPath,
	}
}

// BindFlags registers every command-line flag on fs.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Path, "path", "p", "", "Directory in which to delete files (default: current directory)")
	fs.BoolVarP(&c.All, "all", "a", false, "Include hidden files, and files in hidden folders")
	fs.BoolVarP(&c.Force, "force", "f", false, "Remove confirmation prompt")
	fs.BoolVarP(&c.List, "list", "l", false, "Print matching files (slower), does not block deletion")
	fs.BoolVarP(&c.DryRun, "dry-run", "n", false, "Do not perform deletion, enables --list")
	fs.BoolVarP(&c.Recurse, "recurse", "r", false, "Delete files in subdirectories too")
	fs.BoolVarP(&c.Invert, "invert", "i", false, "Invert selection: keep given extensions, and delete other files")

	fs.StringVar(&c.Preset, "preset", "", "Load a preset of extensions from the config file (see --config)")
	fs.BoolVar(&c.ShowPresets, "presets", false, "Show available presets")
	fs.StringVar(&c.ConfigPath, "config", preset.DefaultPath, "File location for presets (.yaml/.yml for YAML)")

	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "Only log errors")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.JSONOutput, "json", false, "List matching files as a JSON array")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show skipped files/directories and reasons after the scan")
	fs.BoolVar(&c.UseGitignore, "gitignore", false, "Never delete files ignored by .gitignore files under the path")
	fs.StringVar(&c.Exclude, "exclude", "", "Exclude patterns (comma-separated, gitignore syntax)")
	fs.DurationVar(&c.Timeout, "timeout", 0, "Maximum scan and delete time (e.g., '30s', '5m')")
}

// Finalize applies positional arguments and derived settings. cwd supplies
// the default path so the working directory is never read implicitly.
func (c *Config) Finalize(args []string, cwd func() (string, error)) error {
	c.Extensions = args

	if c.ShowPresets && c.Preset != "" {
		return errPresetsAndPreset
	}
	if len(c.Extensions) > 0 && (c.Preset != "" || c.ShowPresets) {
		return errPresetConflict
	}
	if len(c.Extensions) == 0 && c.Preset == "" && !c.ShowPresets {
		return errNoExtensions
	}

	if c.Path == "" {
		dir, err := cwd()
		if err != nil {
			return fmt.Errorf("getting path: %w", err)
		}
		c.Path = dir
	}

	if c.DryRun || c.JSONOutput {
		c.List = true
	}
	return nil
}

// DetectColors decides colour use from the flags and the attached terminals.
func (c *Config) DetectColors(stdout, stderr *os.File) {
	c.UseColors = !c.NoColor && !c.JSONOutput && isTerminal(stdout)
	c.LogColors = !c.NoColor && isTerminal(stderr)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// CollectOptions returns the traversal policy.
func (c *Config) CollectOptions() walker.CollectOptions {
	return walker.CollectOptions{
		All:     c.All,
		List:    c.List,
		Recurse: c.Recurse,
		Invert:  c.Invert,
	}
}

// DeleteOptions returns the deletion policy.
func (c *Config) DeleteOptions() purge.DeleteOptions {
	return purge.DeleteOptions{
		Force:  c.Force,
		DryRun: c.DryRun,
	}
}
