package doctor

import (
	"fmt"
	"io"
)

// FormatReport writes a human-readable representation of the DiagnosticReport
// to w: one pass (✓) or fail (✗) line per result, then an issue count.
func FormatReport(w io.Writer, report DiagnosticReport) {
	issueCount := 0

	for _, r := range report.Results {
		if r.Passed {
			fmt.Fprintf(w, "✓ %s: OK\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s: %s\n", r.Name, r.Details)
		if r.Suggestion != "" {
			fmt.Fprintf(w, "  → %s\n", r.Suggestion)
		}
		issueCount++
	}

	if len(report.Results) > 0 {
		fmt.Fprint(w, "\n")
	}

	switch issueCount {
	case 0:
		fmt.Fprint(w, "No issues found.\n")
	case 1:
		fmt.Fprint(w, "1 issue found.\n")
	default:
		fmt.Fprintf(w, "%d issues found.\n", issueCount)
	}
}
