package doctor

import (
	"context"
	"fmt"

	"github.com/leeovery/fivewords/internal/word"
)

// DistinctLettersCheck validates that no word repeats a letter. Lines that
// fail the shape check are skipped here; WordShapeCheck reports them.
type DistinctLettersCheck struct{}

// Run executes the distinct letters check.
func (c *DistinctLettersCheck) Run(ctx context.Context, path string) []CheckResult {
	const name = "Distinct letters"

	lines, err := getWordLines(ctx, path)
	if err != nil {
		return fileNotFoundResult(name, path)
	}

	var bad []WordLine
	for _, line := range lines {
		if word.HasShape(line.Word) && !word.HasDistinctLetters(line.Word) {
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
		Details:    fmt.Sprintf("%d word(s) repeat a letter: %s", len(bad), describeLines(bad)),
		Suggestion: "Regenerate the list with fivewords",
	}}
}
