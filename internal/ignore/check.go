package ignore

import (
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"
)

// ShouldIgnore reports whether relativePath, relative to the root, is
// excluded. Custom rules are checked before the repository's .gitignore
// files; a negated pattern ("!keep.log") re-includes a path.
func (m *Matcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil {
		return false
	}
	if relativePath == "" || relativePath == "." {
		return false // Never ignore the root itself
	}

	unixPath := filepath.ToSlash(relativePath)
	for _, rules := range []gitignore.GitIgnore{m.customIgnore, m.repoIgnore} {
		if rules == nil {
			continue
		}
		if ignored, decided := m.check(rules, unixPath, isDir); decided {
			return ignored
		}
	}
	return false
}

// check asks one rule set about path. decided is false when no pattern
// matched. A panic inside the library counts as no match.
func (m *Matcher) check(rules gitignore.GitIgnore, path string, isDir bool) (ignored, decided bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", path, r)
			ignored, decided = false, false
		}
	}()

	match := rules.Relative(path, isDir)
	if match == nil {
		return false, false
	}
	m.logger.Debug("ignore.ShouldIgnore: %q matched a rule (ignore: %v)", path, match.Ignore())
	return match.Ignore(), true
}
