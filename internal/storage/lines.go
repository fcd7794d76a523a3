// Package storage reads and writes the flat text files used by the word
// tools. Writes use the atomic temp file + fsync + rename pattern and are
// guarded by an advisory file lock.
package storage

import (
	"fmt"
	"os"
)

// ReadLines reads the whole file at path into memory and splits it into
// lines. "\n", "\r\n" and a lone "\r" all end a line and are translated to a
// single "\n", so a file ending without a terminator yields a final line
// without one. An empty file yields no lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return splitLines(string(data)), nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i]+"\n")
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i]+"\n")
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
