package search

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// reportProgress writes one progress line after done top-level words,
// extrapolating the remaining time from the average time per word.
func (s *Searcher) reportProgress(done int, spent time.Duration, checked int64) {
	if s.progress == nil {
		return
	}

	total := len(s.words)
	perWord := spent / time.Duration(done)
	left := perWord * time.Duration(total-done)

	fmt.Fprintf(s.progress, "%4d of %4d | Spent: %s | ETA Total: %s | ETA Left: %s | Checked %s\n",
		done, total,
		formatDuration(spent),
		formatDuration(spent+left),
		formatDuration(left),
		humanize.Comma(checked),
	)
}

// formatDuration renders d as fixed-width hours, minutes and seconds,
// e.g. " 1h  5min 42s".
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	sec := d / time.Second
	return fmt.Sprintf("%2dh %2dmin %2ds", int64(h), int64(m), int64(sec))
}
