package walker

import (
	"path/filepath"
	"time"

	"github.com/bethropolis/rmx/internal/extension"
	"github.com/spf13/afero"
)

// Collect returns the regular files under root whose name satisfies the
// extension predicate, subject to opts.
//
// Directories are visited depth-first. Within a directory, files are
// examined in listing order and its subdirectories are walked afterwards.
// Each listing is read completely and closed before anything else is
// opened, and pending directories live on an explicit stack, so neither
// file descriptors nor goroutine stack grow with tree depth.
//
// The first error aborts the walk and no partial result is returned.
func Collect(exts []string, root string, opts CollectOptions, options ...Option) ([]string, error) {
	startTime := time.Now()

	walkOptions := defaultOptions()
	for _, opt := range options {
		opt(&walkOptions)
	}

	w := &walk{
		WalkOptions: walkOptions,
		opts:        opts,
		root:        root,
		matcher:     extension.NewMatcher(exts, opts.Invert),
	}
	if w.Stats == nil {
		w.Stats = &Stats{}
	}

	w.Logger.Debug("walker.Collect started. Root: %s, Extensions: %v, Options: %+v", root, exts, opts)

	var files []string
	pending := []string{root}
	for len(pending) > 0 {
		if err := w.Context.Err(); err != nil {
			return nil, err
		}

		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		names, err := readDirNames(w.Fs, dir)
		if err != nil {
			return nil, &DirectoryReadError{Path: dir, Err: err}
		}
		w.Stats.Dirs++

		var subdirs []string
		for _, name := range names {
			path := filepath.Join(dir, name)
			d, err := w.process(path, name)
			if err != nil {
				return nil, err
			}
			switch d {
			case descend:
				subdirs = append(subdirs, path)
			case selectFile:
				if w.opts.List {
					w.OnSelect(path)
				}
				files = append(files, path)
				w.Stats.Selected++
			}
		}

		// Reversed so the first subdirectory listed is walked first.
		for i := len(subdirs) - 1; i >= 0; i-- {
			pending = append(pending, subdirs[i])
		}
	}

	w.Logger.Debug("Walker: %d files selected out of %d entries in %d directories (%s)",
		w.Stats.Selected, w.Stats.Entries, w.Stats.Dirs, time.Since(startTime))

	return files, nil
}

// readDirNames lists dir and closes it before returning.
func readDirNames(fs afero.Fs, dir string) ([]string, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	closeErr := f.Close()
	if err != nil {
		return nil, err
	}
	return names, closeErr
}
