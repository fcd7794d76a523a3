// Package doctor provides diagnostic checks for word list files.
// It defines the check interface, result types, and a runner that executes
// all registered checks without short-circuiting.
package doctor

import "context"

// Severity indicates whether a check failure is an error or a warning.
// Errors stop a search; warnings do not.
type Severity string

const (
	// SeverityError indicates a word list the search cannot use.
	SeverityError Severity = "error"
	// SeverityWarning indicates a usable word list that will produce redundant results.
	SeverityWarning Severity = "warning"
)

// CheckResult holds the outcome of a single diagnostic check evaluation.
// A passing check has Passed true with empty Details and Suggestion.
type CheckResult struct {
	// Name is the check's display label (e.g. "Word shape").
	Name string
	// Passed indicates whether this check evaluation passed.
	Passed bool
	// Severity indicates whether this result is an error or warning.
	Severity Severity
	// Details is a human-readable description of what is wrong. Empty when passed.
	Details string
	// Suggestion is actionable fix text. Empty when passed or when no suggestion applies.
	Suggestion string
}

// Check is the interface that all diagnostic checks implement.
// Run inspects the word list at path and returns one or more results:
// exactly one passing result, or one failing result per problem found.
type Check interface {
	Run(ctx context.Context, path string) []CheckResult
}

// DiagnosticReport collects all check results from a diagnostic run.
type DiagnosticReport struct {
	// Results contains all CheckResult entries in registration order.
	Results []CheckResult
}

// HasErrors returns true if any result has Passed false with SeverityError.
func (r *DiagnosticReport) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of results with Passed false and SeverityError.
func (r *DiagnosticReport) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount returns the number of results with Passed false and SeverityWarning.
func (r *DiagnosticReport) WarningCount() int {
	return r.count(SeverityWarning)
}

// HasIssues returns true if any result failed, regardless of severity.
func (r *DiagnosticReport) HasIssues() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return true
		}
	}
	return false
}

func (r *DiagnosticReport) count(severity Severity) int {
	n := 0
	for _, result := range r.Results {
		if !result.Passed && result.Severity == severity {
			n++
		}
	}
	return n
}

// DiagnosticRunner holds an ordered slice of Check implementations
// and executes all of them, collecting results into a DiagnosticReport.
type DiagnosticRunner struct {
	checks []Check
}

// NewDiagnosticRunner creates a DiagnosticRunner with no registered checks.
func NewDiagnosticRunner() *DiagnosticRunner {
	return &DiagnosticRunner{}
}

// NewWordListRunner creates a DiagnosticRunner with the word list checks
// registered in display order.
func NewWordListRunner() *DiagnosticRunner {
	d := NewDiagnosticRunner()
	d.Register(&WordShapeCheck{})
	d.Register(&DistinctLettersCheck{})
	d.Register(&SignatureUniquenessCheck{})
	return d
}

// Register appends a check to the runner's ordered slice.
func (d *DiagnosticRunner) Register(check Check) {
	d.checks = append(d.checks, check)
}

// RunAll executes every registered check against path and collects all
// results into a DiagnosticReport. It never short-circuits. With zero
// registered checks, it returns an empty report.
func (d *DiagnosticRunner) RunAll(ctx context.Context, path string) DiagnosticReport {
	var results []CheckResult
	for _, check := range d.checks {
		results = append(results, check.Run(ctx, path)...)
	}
	return DiagnosticReport{Results: results}
}
