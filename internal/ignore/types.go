// Package ignore excludes paths from a walk using gitignore rules: the
// .gitignore files found under the root, extra patterns given on the
// command line, or both.
package ignore

import (
	"github.com/bethropolis/rmx/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher determines whether a file or directory should be ignored.
// A nil *Matcher ignores nothing.
type Matcher struct {
	repoIgnore   gitignore.GitIgnore
	customIgnore gitignore.GitIgnore

	rootDir        string
	useGitignore   bool
	customPatterns []string
	logger         utils.Logger
}

// Config holds configuration options for the ignore matcher
type Config struct {
	RootDir      string
	UseGitignore bool
	CustomRules  []string
	Logger       utils.Logger
}
