package doctor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// maxExamples caps how many offending lines a single result lists.
const maxExamples = 5

// fileNotFoundResult returns the standard CheckResult for when the word list
// cannot be read. The checkName parameter sets the Name field.
func fileNotFoundResult(checkName, path string) []CheckResult {
	return []CheckResult{{
		Name:       checkName,
		Passed:     false,
		Severity:   SeverityError,
		Details:    fmt.Sprintf("%s not found or unreadable", filepath.Base(path)),
		Suggestion: "Run fivewords to generate the word list",
	}}
}

// passingResult returns the single passing result for checkName.
func passingResult(checkName string) []CheckResult {
	return []CheckResult{{Name: checkName, Passed: true}}
}

// describeLines formats offending lines as `word (line N)`, listing at most
// maxExamples and summarizing the rest.
func describeLines(lines []WordLine) string {
	shown := lines
	if len(shown) > maxExamples {
		shown = shown[:maxExamples]
	}
	parts := make([]string, len(shown))
	for i, l := range shown {
		parts[i] = fmt.Sprintf("%q (line %d)", l.Word, l.LineNum)
	}
	s := strings.Join(parts, ", ")
	if extra := len(lines) - len(shown); extra > 0 {
		s += fmt.Sprintf(" and %d more", extra)
	}
	return s
}
