package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	t.Run("it translates CRLF terminators to newlines", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "words.txt", "apple\ncrane\r\nzz\n")

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("ReadLines: %v", err)
		}

		want := []string{"apple\n", "crane\n", "zz\n"}
		if !slices.Equal(lines, want) {
			t.Errorf("lines = %q, want %q", lines, want)
		}
	})

	t.Run("it returns a final line without a newline", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "words.txt", "apple\ncrane")

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("ReadLines: %v", err)
		}

		want := []string{"apple\n", "crane"}
		if !slices.Equal(lines, want) {
			t.Errorf("lines = %q, want %q", lines, want)
		}
	})

	t.Run("it ends a line at a lone carriage return", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "words.txt", "crane\rmoist\rapple\r")

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("ReadLines: %v", err)
		}

		want := []string{"crane\n", "moist\n", "apple\n"}
		if !slices.Equal(lines, want) {
			t.Errorf("lines = %q, want %q", lines, want)
		}
	})

	t.Run("it handles mixed terminators", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "words.txt", "crane\r\rmoist\n\r\nzebra")

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("ReadLines: %v", err)
		}

		want := []string{"crane\n", "\n", "moist\n", "\n", "zebra"}
		if !slices.Equal(lines, want) {
			t.Errorf("lines = %q, want %q", lines, want)
		}
	})

	t.Run("it keeps blank lines", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "words.txt", "\n\ncrane\n")

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("ReadLines: %v", err)
		}

		if len(lines) != 3 {
			t.Errorf("expected 3 lines, got %d: %q", len(lines), lines)
		}
	})

	t.Run("it returns no lines for an empty file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "words.txt", "")

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("ReadLines: %v", err)
		}
		if len(lines) != 0 {
			t.Errorf("expected no lines, got %q", lines)
		}
	})

	t.Run("it returns an error for a missing file", func(t *testing.T) {
		_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})
}
