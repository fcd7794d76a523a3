// Package filter implements the word filter pipeline: it reduces a raw word
// list to five-letter words with distinct letters, keeping only the first
// word seen for each letter signature.
package filter

import (
	"fmt"
	"io"

	"github.com/leeovery/fivewords/internal/word"
)

// Outcome is the classification of a single input line.
type Outcome int

const (
	// Accepted means the word is written to the output.
	Accepted Outcome = iota
	// Malformed means the line is not five lowercase letters after
	// normalization. It is skipped silently.
	Malformed
	// DuplicateLetters means the word repeats at least one letter.
	DuplicateLetters
	// Seen means another accepted word already used the same letters.
	Seen
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Malformed:
		return "malformed"
	case DuplicateLetters:
		return "duplicate letters"
	case Seen:
		return "seen"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Stats counts the outcomes of a pipeline run.
type Stats struct {
	Read             int
	Accepted         int
	Malformed        int
	DuplicateLetters int
	Seen             int
}

// Pipeline holds the set of letter signatures accepted so far. It is scoped
// to a single run and is not safe for concurrent use.
type Pipeline struct {
	seen     map[string]struct{}
	reporter *Reporter
}

// NewPipeline creates a Pipeline with an empty seen set. Rejections of
// well-shaped words are reported to r; r may be nil.
func NewPipeline(r *Reporter) *Pipeline {
	return &Pipeline{
		seen:     make(map[string]struct{}),
		reporter: r,
	}
}

// Classify normalizes line and decides its outcome. Accepted words have their
// signature recorded, so classifying the same word twice yields Seen the
// second time. Duplicate-letter and seen rejections are reported; malformed
// lines are not.
func (p *Pipeline) Classify(line string) (string, Outcome) {
	w := word.Normalize(line)
	if !word.HasShape(w) {
		return w, Malformed
	}

	sig := word.Signature(w)
	if len(sig) != word.Length {
		p.reporter.Ignored(w, ReasonDuplicateLetters)
		return w, DuplicateLetters
	}

	if _, ok := p.seen[sig]; ok {
		p.reporter.Ignored(w, ReasonSeen)
		return w, Seen
	}

	p.seen[sig] = struct{}{}
	return w, Accepted
}

// Run classifies every line in order and writes each accepted word followed
// by "\n" to w. It stops at the first write error.
func (p *Pipeline) Run(lines []string, w io.Writer) (Stats, error) {
	var stats Stats
	for _, line := range lines {
		stats.Read++
		normalized, outcome := p.Classify(line)
		switch outcome {
		case Accepted:
			stats.Accepted++
			if _, err := io.WriteString(w, normalized+"\n"); err != nil {
				return stats, fmt.Errorf("writing %q: %w", normalized, err)
			}
		case Malformed:
			stats.Malformed++
		case DuplicateLetters:
			stats.DuplicateLetters++
		case Seen:
			stats.Seen++
		}
	}
	return stats, nil
}
