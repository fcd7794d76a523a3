// Package search finds sets of five words that share no letters, so that
// together they use 25 distinct letters of the alphabet.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/leeovery/fivewords/internal/word"
)

// Depth is the number of words in a complete set.
const Depth = 5

const (
	defaultFeedbackEvery = 10
	// seenSentinel pads seen keys for sets smaller than Depth; it can never
	// be a word index.
	seenSentinel = math.MaxUint16
	// MaxWords is the largest word list a Searcher accepts.
	MaxWords = math.MaxUint16
)

// ErrTooManyWords is returned by New when the word list exceeds MaxWords.
var ErrTooManyWords = errors.New("too many words")

// seenKey identifies a set of chosen words by its ascending word indexes.
type seenKey [Depth]uint16

// Result summarizes a completed search.
type Result struct {
	// Checked counts explored combinations: each complete set and each dead
	// end counts once; combinations already visited count zero.
	Checked int64
	// Found is the number of complete sets written.
	Found int
	// Elapsed is the wall time spent searching.
	Elapsed time.Duration
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithProgress sets the writer that receives progress lines. By default no
// progress is reported.
func WithProgress(w io.Writer) Option {
	return func(s *Searcher) {
		s.progress = w
	}
}

// WithEcho sets a second writer that receives every found set, in addition
// to the output writer.
func WithEcho(w io.Writer) Option {
	return func(s *Searcher) {
		s.echo = w
	}
}

// WithFeedbackEvery sets how many top-level words are explored between
// progress lines. The default is 10.
func WithFeedbackEvery(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.feedbackEvery = n
		}
	}
}

// Searcher runs a depth-first search over a word list. It is not safe for
// concurrent use.
type Searcher struct {
	words   []string
	letters [][]int
	// byLetter holds, for each letter a-z, the words containing it.
	byLetter [word.Alphabet]wordSet

	seen    map[seenKey]struct{}
	current wordSet
	// blocked[d] holds the words excluded at depth d.
	blocked [Depth + 1]wordSet
	members []int
	found   int

	out           io.Writer
	echo          io.Writer
	progress      io.Writer
	feedbackEvery int
}

// New creates a Searcher over words, writing every complete set to out.
// Every word must be five distinct lowercase letters.
func New(words []string, out io.Writer, opts ...Option) (*Searcher, error) {
	if len(words) > MaxWords {
		return nil, fmt.Errorf("%w: %d (maximum %d)", ErrTooManyWords, len(words), MaxWords)
	}

	s := &Searcher{
		words:         words,
		letters:       make([][]int, len(words)),
		out:           out,
		feedbackEvery: defaultFeedbackEvery,
	}
	for l := range s.byLetter {
		s.byLetter[l] = newWordSet(len(words))
	}

	for i, w := range words {
		m, ok := word.MaskOf(w)
		if !ok || !word.HasShape(w) || m.Len() != word.Length {
			return nil, fmt.Errorf("word %d %q is not five distinct lowercase letters", i+1, w)
		}
		s.letters[i] = m.Letters()
		for _, l := range s.letters[i] {
			s.byLetter[l].set(i)
		}
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run searches the whole word list. The context is checked before each
// top-level word; a cancelled search returns the context's error.
func (s *Searcher) Run(ctx context.Context) (Result, error) {
	s.seen = make(map[seenKey]struct{})
	s.current = newWordSet(len(s.words))
	for d := range s.blocked {
		s.blocked[d] = newWordSet(len(s.words))
	}
	s.members = make([]int, 0, Depth)
	s.found = 0

	start := time.Now()
	checked, err := s.search(ctx, 0)
	res := Result{Checked: checked, Found: s.found, Elapsed: time.Since(start)}
	return res, err
}

func (s *Searcher) search(ctx context.Context, depth int) (int64, error) {
	if !s.markSeen() {
		return 0, nil
	}

	if depth == Depth {
		return 1, s.emit()
	}

	n := len(s.words)
	blocked := s.blocked[depth]
	next := s.blocked[depth+1]
	start := time.Now()

	var count int64
	for i := blocked.nextClear(0, n); i < n; i = blocked.nextClear(i+1, n) {
		if depth == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}

		copy(next, blocked)
		for _, l := range s.letters[i] {
			next.union(s.byLetter[l])
		}

		s.current.set(i)
		c, err := s.search(ctx, depth+1)
		s.current.clear(i)
		count += c
		if err != nil {
			return count, err
		}

		if depth == 0 && (i+1)%s.feedbackEvery == 0 {
			s.reportProgress(i+1, time.Since(start), count)
		}
	}

	// A dead end still counts as one checked combination.
	if count == 0 {
		return 1, nil
	}
	return count, nil
}

// markSeen records the current set and reports whether it was new.
func (s *Searcher) markSeen() bool {
	key := seenKey{seenSentinel, seenSentinel, seenSentinel, seenSentinel, seenSentinel}
	s.members = s.current.appendMembers(s.members[:0])
	for i, m := range s.members {
		key[i] = uint16(m)
	}

	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// emit writes the current set in word list order, each word followed by a
// space, then a newline.
func (s *Searcher) emit() error {
	s.members = s.current.appendMembers(s.members[:0])
	line := make([]byte, 0, Depth*(word.Length+1)+1)
	for _, m := range s.members {
		line = append(line, s.words[m]...)
		line = append(line, ' ')
	}
	line = append(line, '\n')

	if _, err := s.out.Write(line); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	if s.echo != nil {
		if _, err := s.echo.Write(line); err != nil {
			return fmt.Errorf("echoing result: %w", err)
		}
	}
	s.found++
	return nil
}
