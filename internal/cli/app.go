// Package cli wires the word tools to the filesystem and process streams.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/leeovery/fivewords/internal/storage"
)

const (
	// InputFile is the raw word list read by the filter.
	InputFile = "words.txt"
	// FilteredFile is written by the filter and read by the search.
	FilteredFile = "5words.txt"
	// ResultFile is written by the search.
	ResultFile = "result.txt"
)

// App is the word tools application. File names are resolved against Dir.
type App struct {
	stdout io.Writer
	stderr io.Writer
	dir    string

	lockTimeout   time.Duration
	feedbackEvery int
}

// NewApp creates an App that reads and writes files in dir.
func NewApp(stdout, stderr io.Writer, dir string) *App {
	return &App{
		stdout:      stdout,
		stderr:      stderr,
		dir:         dir,
		lockTimeout: storage.DefaultLockTimeout,
	}
}

func (a *App) path(name string) string {
	return filepath.Join(a.dir, name)
}

// exit converts a command error into a process exit code, printing it to
// stderr.
func (a *App) exit(err error) int {
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// writeLocked holds the lock for path while fn writes to an atomic file,
// committing it only if fn succeeds.
func (a *App) writeLocked(path string, fn func(w io.Writer) error) error {
	unlock, err := storage.Lock(path, a.lockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	f, err := storage.CreateAtomic(path)
	if err != nil {
		return err
	}
	defer f.Abort()

	if err := fn(f); err != nil {
		return err
	}
	if err := f.Commit(); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
