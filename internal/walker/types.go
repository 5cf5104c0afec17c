// Package walker collects the files under a directory whose extension
// satisfies the match predicate.
package walker

// CollectOptions is the traversal policy.
type CollectOptions struct {
	// All includes entries whose name starts with a dot.
	All bool
	// List prints each selected path as soon as it is selected.
	List bool
	// Recurse walks subdirectories. Symbolic links are never followed.
	Recurse bool
	// Invert selects files matching none of the extensions.
	Invert bool
}

// SelectFunc receives each selected path when CollectOptions.List is set.
type SelectFunc func(path string)

// IgnoreChecker decides whether an entry is excluded by ignore rules.
// relativePath is relative to the walk root.
type IgnoreChecker interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// SkippedReason clarifies why an entry was not selected.
type SkippedReason string

const (
	ReasonIgnoredHidden     SkippedReason = "Ignored (Hidden Rule)"
	ReasonIgnoredRule       SkippedReason = "Ignored (Gitignore/Custom Rule)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedSymlink    SkippedReason = "Skipped (Symbolic Link)"
	ReasonSkippedNoRecurse  SkippedReason = "Skipped (Directory, Not Recursing)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker records skipped entries. It is not safe for concurrent use.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	if st == nil {
		return
	}
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	if st == nil {
		return nil
	}
	return st.items
}

// Stats counts what a walk saw.
type Stats struct {
	Dirs     int // directories listed, root included
	Entries  int // directory entries examined
	Selected int // paths returned
	Skipped  int // entries not selected
}
