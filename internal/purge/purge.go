// Package purge removes the files selected by the walker, after the
// dry-run, confirmation and force policies have had their say.
package purge

import (
	"fmt"
	"time"
)

// DeleteOptions is the policy for the delete phase.
type DeleteOptions struct {
	// Force skips the confirmation prompt.
	Force bool
	// DryRun stops before prompting or deleting, whatever Force says.
	DryRun bool
}

// State is the decision Delete takes for a candidate set.
type State int

const (
	StateEmpty State = iota
	StateDryRun
	StateNeedsConfirmation
	StateDeleting
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDryRun:
		return "dry-run"
	case StateNeedsConfirmation:
		return "needs-confirmation"
	case StateDeleting:
		return "deleting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Plan returns the state Delete starts in for files under opts.
func Plan(files []string, opts DeleteOptions) State {
	switch {
	case len(files) == 0:
		return StateEmpty
	case opts.DryRun:
		return StateDryRun
	case !opts.Force:
		return StateNeedsConfirmation
	default:
		return StateDeleting
	}
}

// Report describes what a Delete call did.
type Report struct {
	Start     State
	Confirmed bool
	Cancelled bool
	Deleted   int
	Duration  time.Duration
}

// DeletionError wraps the failure to remove one file.
type DeletionError struct {
	Path string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("purge: couldn't delete %q: %v", e.Path, e.Err)
}

func (e *DeletionError) Unwrap() error { return e.Err }
