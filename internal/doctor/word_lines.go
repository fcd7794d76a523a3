package doctor

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WordLine represents a single non-blank line from a word list file.
type WordLine struct {
	// LineNum is the 1-based line number in the file.
	LineNum int
	// Word is the line text without its line terminator.
	Word string
}

// ScanWordLines reads the word list at path and returns all non-blank lines
// with their line numbers. A trailing '\r' is dropped; nothing else is
// normalized, so checks see the file as written. Returns error only for
// file-open or read failures.
func ScanWordLines(path string) ([]WordLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	lines := []WordLine{}
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, WordLine{LineNum: lineNum, Word: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	return lines, nil
}

// Words returns the words of lines in file order.
func Words(lines []WordLine) []string {
	words := make([]string, len(lines))
	for i, l := range lines {
		words[i] = l.Word
	}
	return words
}

// wordLinesKeyType is an unexported type for the context key used to
// pass pre-scanned word lines to checks.
type wordLinesKeyType struct{}

// WordLinesKey is the context key used to pass pre-scanned WordLine data
// to checks, so a runner reads the file once.
var WordLinesKey = wordLinesKeyType{}

// WithWordLines returns a context carrying pre-scanned lines.
func WithWordLines(ctx context.Context, lines []WordLine) context.Context {
	return context.WithValue(ctx, WordLinesKey, lines)
}

// getWordLines returns word line data, first checking the context for
// pre-scanned data and falling back to ScanWordLines.
func getWordLines(ctx context.Context, path string) ([]WordLine, error) {
	if lines, ok := ctx.Value(WordLinesKey).([]WordLine); ok {
		return lines, nil
	}
	return ScanWordLines(path)
}
