// Package report renders run statistics as a human-readable summary.
package report

import (
	"fmt"
	"strings"

	"github.com/mploader/mploader/internal/model"
)

const separatorWidth = 60

// Build renders the end-of-run summary for the given statistics.
//
// The summary always accounts for every extracted track: succeeded
// (including skips), failed, and cancelled. Failed and cancelled
// tracks are listed by name so a partial run can be retried by hand.
func Build(stats *model.RunStatistics) string {
	var b strings.Builder
	sep := strings.Repeat("=", separatorWidth)

	b.WriteString(sep + "\n")
	b.WriteString("Download Summary\n")
	b.WriteString(sep + "\n")

	if stats.Total == 0 {
		b.WriteString("Nothing to do: no tracks were found.\n")
		b.WriteString(sep + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total tracks:  %d\n", stats.Total)
	fmt.Fprintf(&b, "Succeeded:     %d\n", stats.Succeeded)
	fmt.Fprintf(&b, "Failed:        %d\n", stats.Failed)
	if stats.Cancelled > 0 {
		fmt.Fprintf(&b, "Cancelled:     %d\n", stats.Cancelled)
	}

	if len(stats.FailedTracks) > 0 {
		b.WriteString("\nFailed tracks:\n")
		for _, label := range stats.FailedTracks {
			fmt.Fprintf(&b, "  - %s\n", label)
		}
	}
	if len(stats.CancelledTracks) > 0 {
		b.WriteString("\nCancelled tracks:\n")
		for _, label := range stats.CancelledTracks {
			fmt.Fprintf(&b, "  - %s\n", label)
		}
	}

	b.WriteString(sep + "\n")
	return b.String()
}
