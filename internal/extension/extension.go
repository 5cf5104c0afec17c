// Package extension validates extension arguments and decides whether a
// file name carries one of them.
//
// An extension is one or more lowercase components joined by dots, such as
// "txt" or "tar.gz". A name matches when the name with a dot prepended ends
// with the dotted extension: "gz" and "tar.gz" both match "file.tar.gz",
// "tar" does not, and "bashrc" matches ".bashrc" as well as "bashrc".
package extension

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned by Validate for malformed extensions.
var ErrInvalid = errors.New("invalid extensions")

// Validate checks that every extension is made of non-empty a-z components
// separated by single dots. An empty list is invalid.
func Validate(exts []string) error {
	if len(exts) == 0 {
		return fmt.Errorf("%w: no extension given", ErrInvalid)
	}
	for _, ext := range exts {
		if !valid(ext) {
			return fmt.Errorf("%w: %q", ErrInvalid, ext)
		}
	}
	return nil
}

func valid(ext string) bool {
	if ext == "" {
		return false
	}
	prevDot := true // a leading dot is rejected like a doubled one
	for i := 0; i < len(ext); i++ {
		b := ext[i]
		switch {
		case b == '.':
			if prevDot {
				return false
			}
			prevDot = true
		case b >= 'a' && b <= 'z':
			prevDot = false
		default:
			return false
		}
	}
	return !prevDot
}

// Matcher holds a set of dotted extensions and the invert policy.
type Matcher struct {
	suffixes []string
	invert   bool
}

// NewMatcher builds a Matcher. Extensions are expected to be validated.
func NewMatcher(exts []string, invert bool) *Matcher {
	suffixes := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(ext, ".")
		if _, dup := seen[ext]; dup || ext == "" {
			continue
		}
		seen[ext] = struct{}{}
		suffixes = append(suffixes, "."+ext)
	}
	return &Matcher{suffixes: suffixes, invert: invert}
}

// Match reports whether a file with the given base name is selected:
// invert XOR ("." + name ends with "." + some extension).
func (m *Matcher) Match(name string) bool {
	return m.invert != m.hasSuffix(name)
}

func (m *Matcher) hasSuffix(name string) bool {
	dotted := "." + name
	for _, s := range m.suffixes {
		if strings.HasSuffix(dotted, s) {
			return true
		}
	}
	return false
}
