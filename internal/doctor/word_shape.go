package doctor

import (
	"context"
	"fmt"

	"github.com/leeovery/fivewords/internal/word"
)

// WordShapeCheck validates that every line of the word list is exactly five
// lowercase letters a-z. All offending lines are reported as a single error.
// It is read-only and never modifies the file.
type WordShapeCheck struct{}

// Run executes the word shape check.
func (c *WordShapeCheck) Run(ctx context.Context, path string) []CheckResult {
	const name = "Word shape"

	lines, err := getWordLines(ctx, path)
	if err != nil {
		return fileNotFoundResult(name, path)
	}

	var bad []WordLine
	for _, line := range lines {
		if !word.HasShape(line.Word) {
			bad = append(bad, line)
		}
	}

	if len(bad) == 0 {
		return passingResult(name)
	}

	return []CheckResult{{
		Name:       name,
		Passed:     false,
		Severity:   SeverityError,
		Details:    fmt.Sprintf("%d line(s) are not five lowercase letters: %s", len(bad), describeLines(bad)),
		Suggestion: "Regenerate the list with fivewords",
	}}
}
