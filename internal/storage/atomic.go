package storage

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// fileMode is applied to committed files; temp files start out 0600.
const fileMode = 0644

// AtomicFile is a buffered writer whose content replaces the destination
// file only on Commit. Until then the data lives in a temp file in the same
// directory, so readers never see a partially written file.
type AtomicFile struct {
	path string
	tmp  *os.File
	buf  *bufio.Writer
	done bool
}

// CreateAtomic creates a temp file next to path and returns an AtomicFile
// writing to it. It fails if the destination directory is not writable.
func CreateAtomic(path string) (*AtomicFile, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp file for %s: %w", filepath.Base(path), err)
	}
	return &AtomicFile{
		path: path,
		tmp:  tmp,
		buf:  bufio.NewWriter(tmp),
	}, nil
}

// Write buffers p for the temp file.
func (f *AtomicFile) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// Commit flushes and syncs the temp file, then renames it over the
// destination, replacing any existing file.
func (f *AtomicFile) Commit() error {
	if f.done {
		return fmt.Errorf("%s already committed or aborted", filepath.Base(f.path))
	}

	if err := f.buf.Flush(); err != nil {
		f.Abort()
		return fmt.Errorf("flushing temp file: %w", err)
	}
	if err := f.tmp.Chmod(fileMode); err != nil {
		f.Abort()
		return fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := f.tmp.Sync(); err != nil {
		f.Abort()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := f.tmp.Close(); err != nil {
		f.removeTemp()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		f.removeTemp()
		return fmt.Errorf("renaming temp file: %w", err)
	}

	f.done = true
	return nil
}

// Abort discards the temp file. It is a no-op after Commit, so it can be
// deferred unconditionally.
func (f *AtomicFile) Abort() {
	if f.done {
		return
	}
	f.tmp.Close()
	f.removeTemp()
}

func (f *AtomicFile) removeTemp() {
	f.done = true
	if err := os.Remove(f.tmp.Name()); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not remove temp file %s: %v", f.tmp.Name(), err)
	}
}
