package doctor

import (
	"context"
	"fmt"

	"github.com/leeovery/fivewords/internal/word"
)

// SignatureUniquenessCheck warns when two or more words use the same set of
// letters. Such anagrams make the search report the same letter combination
// once per spelling. Each group is reported as an individual warning in
// first-occurrence order. Malformed words are skipped.
type SignatureUniquenessCheck struct{}

// Run executes the signature uniqueness check.
func (c *SignatureUniquenessCheck) Run(ctx context.Context, path string) []CheckResult {
	const name = "Signature uniqueness"

	lines, err := getWordLines(ctx, path)
	if err != nil {
		return fileNotFoundResult(name, path)
	}

	groups := make(map[string][]WordLine)
	// Track insertion order of keys for deterministic output.
	var keyOrder []string

	for _, line := range lines {
		if !word.HasShape(line.Word) || !word.HasDistinctLetters(line.Word) {
			continue
		}
		sig := word.Signature(line.Word)
		if _, ok := groups[sig]; !ok {
			keyOrder = append(keyOrder, sig)
		}
		groups[sig] = append(groups[sig], line)
	}

	var failures []CheckResult
	for _, sig := range keyOrder {
		group := groups[sig]
		if len(group) <= 1 {
			continue
		}
		failures = append(failures, CheckResult{
			Name:       name,
			Passed:     false,
			Severity:   SeverityWarning,
			Details:    fmt.Sprintf("Letters %s used by %s", sig, describeLines(group)),
			Suggestion: "Keep one spelling per letter set",
		})
	}

	if len(failures) > 0 {
		return failures
	}
	return passingResult(name)
}
