package walker

import "fmt"

// DirectoryReadError reports a directory that could not be listed.
type DirectoryReadError struct {
	Path string
	Err  error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("walker: couldn't read directory %q: %v", e.Path, e.Err)
}

func (e *DirectoryReadError) Unwrap() error { return e.Err }

// FileTypeError reports an entry whose metadata could not be read.
type FileTypeError struct {
	Path string
	Err  error
}

func (e *FileTypeError) Error() string {
	return fmt.Sprintf("walker: couldn't extract filetype from %q: %v", e.Path, e.Err)
}

func (e *FileTypeError) Unwrap() error { return e.Err }

// FileNameDecodeError reports an entry whose name is not valid UTF-8.
type FileNameDecodeError struct {
	Path string
}

func (e *FileNameDecodeError) Error() string {
	return fmt.Sprintf("walker: couldn't decode filename %q", e.Path)
}
