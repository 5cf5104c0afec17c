// Package preset reads named extension lists from the rmx config file.
//
// The default format has one preset per line:
//
//	preset build=o a so
//	preset latex=aux log toc
//
// Lines not starting with "preset " are ignored. Files ending in .yaml or
// .yml use a mapping instead:
//
//	presets:
//	  build: [o, a, so]
//	  latex: aux log toc
package preset

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/rmx/internal/utils"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where presets are read from unless --config says otherwise.
const DefaultPath = "/etc/rmx/rmx.conf"

const linePrefix = "preset "

var (
	ErrNotFound  = errors.New("preset not found")
	ErrMalformed = errors.New("preset not formatted correctly")
	ErrEmpty     = errors.New("preset has no extensions")
)

// Preset is a named list of extensions.
type Preset struct {
	Name       string
	Extensions []string
}

// Store reads presets from one file.
type Store struct {
	path   string
	fs     afero.Fs
	logger utils.Logger
}

// Option configures a Store
type Option func(*Store)

// WithFs sets the filesystem the config file is read from.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		if fs != nil {
			s.fs = fs
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(s *Store) {
		s.logger = utils.OrNoop(logger)
	}
}

// NewStore creates a Store for the file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		fs:     afero.NewOsFs(),
		logger: utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the extensions of the named preset.
func (s *Store) Lookup(name string) ([]string, error) {
	presets, problems, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, p := range presets {
		if p.Name == name {
			return p.Extensions, nil
		}
	}
	for _, problem := range problems {
		if problem.name == name {
			return nil, fmt.Errorf("preset: %q in %s: %w", name, s.path, problem.err)
		}
	}
	return nil, fmt.Errorf("preset: could not find %q in %s: %w", name, s.path, ErrNotFound)
}

// Show prints every preset to w as the command line that would use it.
// Malformed entries are reported on errw and skipped.
func (s *Store) Show(w, errw io.Writer) error {
	presets, problems, err := s.load()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Parsing presets in %s...\n", s.path)
	for _, problem := range problems {
		fmt.Fprintln(errw, problem.Error())
	}
	for _, p := range presets {
		globs := make([]string, len(p.Extensions))
		for i, ext := range p.Extensions {
			globs[i] = "*." + ext
		}
		fmt.Fprintf(w, "rmx --preset %s: \tRemoves %s\n", p.Name, strings.Join(globs, ", "))
	}
	if len(presets) == 0 {
		fmt.Fprintf(w, "Could not find any preset in %s\n", s.path)
	}
	return nil
}

// problem is a preset entry that could not be used.
type problem struct {
	name string
	line string
	err  error
}

func (p problem) Error() string {
	if p.line != "" {
		return fmt.Sprintf("Preset line %q: %v", p.line, p.err)
	}
	return fmt.Sprintf("Preset %q: %v", p.name, p.err)
}

func (s *Store) load() ([]Preset, []problem, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("preset: could not read %s: %w", s.path, err)
	}
	s.logger.Debug("preset: loaded %d bytes from %s", len(data), s.path)

	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return parseYAML(data, s.path)
	default:
		presets, problems := parseLines(string(data))
		return presets, problems, nil
	}
}

func parseLines(data string) ([]Preset, []problem) {
	var presets []Preset
	var problems []problem
	for _, raw := range strings.Split(data, "\n") {
		raw = strings.TrimRight(raw, "\r")
		line, ok := strings.CutPrefix(raw, linePrefix)
		if !ok {
			continue
		}
		parts := strings.Split(strings.TrimSpace(line), "=")
		if len(parts) != 2 {
			name := strings.TrimSpace(parts[0])
			problems = append(problems, problem{name: name, line: line, err: ErrMalformed})
			continue
		}
		name := strings.TrimSpace(parts[0])
		exts := strings.Fields(parts[1])
		if name == "" {
			problems = append(problems, problem{line: line, err: ErrMalformed})
			continue
		}
		if len(exts) == 0 {
			problems = append(problems, problem{name: name, err: ErrEmpty})
			continue
		}
		presets = append(presets, Preset{Name: name, Extensions: exts})
	}
	return presets, problems
}

// extList accepts either a YAML sequence or a whitespace-separated string.
type extList []string

func (e *extList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*e = strings.Fields(value.Value)
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*e = list
	return nil
}

type yamlFile struct {
	Presets map[string]extList `yaml:"presets"`
}

func parseYAML(data []byte, path string) ([]Preset, []problem, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("preset: decode yaml %s: %w", path, err)
	}

	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	var presets []Preset
	var problems []problem
	for _, name := range names {
		exts := f.Presets[name]
		if len(exts) == 0 {
			problems = append(problems, problem{name: name, err: ErrEmpty})
			continue
		}
		presets = append(presets, Preset{Name: name, Extensions: []string(exts)})
	}
	return presets, problems, nil
}
