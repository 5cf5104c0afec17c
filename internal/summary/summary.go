// Package summary reports walk and deletion results on the log stream
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/rmx/internal/purge"
	"github.com/bethropolis/rmx/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...any)
}

// DisplayScan logs how many candidates the walk produced.
func DisplayScan(logger Logger, stats walker.Stats, duration time.Duration) {
	logger.Info("Found %d matching file(s) among %d entries in %d director(ies).",
		stats.Selected, stats.Entries, stats.Dirs)
	logger.Info("Scan complete in %v.", duration.Round(time.Millisecond))
}

// DisplayDeletion logs the outcome of the delete phase.
func DisplayDeletion(logger Logger, report purge.Report) {
	switch {
	case report.Start == purge.StateEmpty:
		return
	case report.Start == purge.StateDryRun:
		logger.Info("Dry run, nothing deleted.")
	case report.Cancelled:
		logger.Info("Deletion cancelled, nothing deleted.")
	default:
		logger.Info("Deleted %d file(s) in %v.", report.Deleted, report.Duration.Round(time.Millisecond))
	}
}

// DisplaySkippedItems prints skipped entries sorted by path, between a
// header and a footer, to output.
func DisplaySkippedItems(skippedItems []walker.SkippedItem, output io.Writer) {
	fmt.Fprintf(output, "--- Skipped Items (%d) ---\n", len(skippedItems))
	if len(skippedItems) == 0 {
		fmt.Fprintln(output, "No items were skipped.")
		fmt.Fprintln(output, "--- End Skipped Items ---")
		return
	}

	items := make([]walker.SkippedItem, len(skippedItems))
	copy(items, skippedItems)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
	}
	fmt.Fprintln(output, "--- End Skipped Items ---")
}
