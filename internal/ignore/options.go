package ignore

import (
	"strings"

	"github.com/bethropolis/rmx/internal/utils"
)

// Option functions for configuration
type Option func(*Matcher)

// WithGitignore loads the .gitignore files under the root.
func WithGitignore(enabled bool) Option {
	return func(m *Matcher) {
		m.useGitignore = enabled
	}
}

// WithCustomRules adds gitignore-syntax patterns relative to the root.
// Blank entries are dropped.
func WithCustomRules(patterns []string) Option {
	return func(m *Matcher) {
		for _, p := range patterns {
			if p = strings.TrimSpace(p); p != "" {
				m.customPatterns = append(m.customPatterns, p)
			}
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		m.logger = utils.OrNoop(logger)
	}
}

// SplitPatterns splits a comma-separated --exclude value.
func SplitPatterns(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
