package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/rmx/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates a Matcher for rootDir. It returns nil, nil when no rule
// source is enabled, so callers can skip ignore checks entirely.
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	m := &Matcher{
		rootDir: absRootDir,
		logger:  utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}

	if !m.useGitignore && len(m.customPatterns) == 0 {
		return nil, nil
	}
	if err := m.init(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewFromConfig creates a Matcher from a Config struct
func NewFromConfig(cfg Config) (*Matcher, error) {
	return New(cfg.RootDir,
		WithGitignore(cfg.UseGitignore),
		WithCustomRules(cfg.CustomRules),
		WithLogger(cfg.Logger),
	)
}

func (m *Matcher) init() error {
	m.logger.Debug("ignore.New: Initializing for root: %s (gitignore: %v, custom: %v)",
		m.rootDir, m.useGitignore, m.customPatterns)

	onError := func(e gitignore.Error) bool {
		m.logger.Warn("ignore: skipping invalid pattern: %v", e)
		return true
	}

	if m.useGitignore {
		repo, err := gitignore.NewRepository(m.rootDir)
		if err != nil {
			if repo == nil {
				return fmt.Errorf("ignore: failed to load repository ignores: %w", err)
			}
			m.logger.Warn("ignore.New: Error loading repository ignores from '%s': %v", m.rootDir, err)
		}
		m.repoIgnore = repo
	}

	if len(m.customPatterns) > 0 {
		rules := strings.NewReader(strings.Join(m.customPatterns, "\n"))
		m.customIgnore = gitignore.New(rules, m.rootDir, onError)
	}
	return nil
}

// Root returns the absolute root the rules are relative to.
func (m *Matcher) Root() string {
	if m == nil {
		return ""
	}
	return m.rootDir
}
