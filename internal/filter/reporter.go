package filter

import (
	"fmt"
	"io"
)

// Reason explains why a well-shaped word was rejected.
type Reason string

const (
	// ReasonDuplicateLetters is reported for words that repeat a letter.
	ReasonDuplicateLetters Reason = "Duplicate letters"
	// ReasonSeen is reported for words whose letter signature was already accepted.
	ReasonSeen Reason = "Seen"
)

// Reporter writes one "IGNORED <word> - <reason>" line per rejected word.
// A nil Reporter is a no-op (safe to call Ignored on nil receiver).
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter that writes to the given writer.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Ignored reports a rejected word. Safe to call on a nil receiver (no-op).
func (r *Reporter) Ignored(word string, reason Reason) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.w, "IGNORED %s - %s\n", word, reason)
}
