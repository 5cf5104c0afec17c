package walker

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/rmx/internal/extension"
	"github.com/spf13/afero"
)

type decision int

const (
	skip decision = iota
	descend
	selectFile
)

// walk is the state of one Collect call.
type walk struct {
	WalkOptions
	opts    CollectOptions
	root    string
	matcher *extension.Matcher
}

// process classifies one directory entry. The name is decoded and the
// entry's own metadata read before any filter runs, so those failures abort
// the walk even for entries that would have been skipped.
func (w *walk) process(path, name string) (decision, error) {
	w.Stats.Entries++

	if !utf8.ValidString(name) {
		return skip, &FileNameDecodeError{Path: path}
	}

	info, err := lstat(w.Fs, path)
	if err != nil {
		return skip, &FileTypeError{Path: path, Err: err}
	}
	mode := info.Mode()
	isDir := mode.IsDir()

	if !w.opts.All && strings.HasPrefix(name, ".") {
		w.Logger.Debug("Walker: Ignored %q (hidden)", path)
		return w.skipped(path, ReasonIgnoredHidden, isDir), nil
	}

	if w.Ignore != nil {
		if rel, relErr := filepath.Rel(w.root, path); relErr == nil && w.Ignore.ShouldIgnore(rel, isDir) {
			w.Logger.Debug("Walker: Ignored %q by matcher rules", path)
			return w.skipped(path, ReasonIgnoredRule, isDir), nil
		}
	}

	if isDir {
		if w.opts.Recurse {
			w.Logger.Debug("Walker: Queueing directory %q", path)
			return descend, nil
		}
		return w.skipped(path, ReasonSkippedNoRecurse, true), nil
	}

	if mode&os.ModeSymlink != 0 {
		return w.skipped(path, ReasonSkippedSymlink, false), nil
	}
	if !mode.IsRegular() {
		return w.skipped(path, ReasonSkippedNotRegular, false), nil
	}

	if !w.matcher.Match(name) {
		return w.skipped(path, ReasonFilteredExtension, false), nil
	}

	w.Logger.Debug("Walker: Selected %q", path)
	return selectFile, nil
}

func (w *walk) skipped(path string, reason SkippedReason, isDir bool) decision {
	w.Stats.Skipped++
	w.Tracker.Track(path, reason, isDir)
	return skip
}

// lstat reads an entry's metadata without following a final symlink when
// the filesystem supports it.
func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}
