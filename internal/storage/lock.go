package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// DefaultLockTimeout is how long Lock waits for another process to release
// the lock before giving up.
const DefaultLockTimeout = 5 * time.Second

const lockRetryDelay = 50 * time.Millisecond

// ErrLockTimeout is returned when the lock could not be acquired in time.
var ErrLockTimeout = errors.New("could not acquire lock - another process may be writing the file")

// LockPath returns the sidecar lock file used to guard writes to path:
// ".<name>.lock" in the same directory.
func LockPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
}

// Lock acquires an exclusive lock guarding writes to path, waiting up to
// timeout. It returns an unlock function that must be deferred by the caller.
func Lock(path string, timeout time.Duration) (unlock func(), err error) {
	return acquire(path, timeout, (*flock.Flock).TryLockContext)
}

// RLock acquires a shared lock for reading path, waiting up to timeout for a
// writer holding Lock to finish. Any number of readers may hold it at once.
func RLock(path string, timeout time.Duration) (unlock func(), err error) {
	return acquire(path, timeout, (*flock.Flock).TryRLockContext)
}

type tryLockFunc func(fl *flock.Flock, ctx context.Context, retryDelay time.Duration) (bool, error)

func acquire(path string, timeout time.Duration, try tryLockFunc) (func(), error) {
	fl := flock.New(LockPath(path))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	locked, err := try(fl, ctx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		cancel()
		return nil, fmt.Errorf("locking %s: %w", filepath.Base(path), err)
	}
	if !locked {
		cancel()
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrLockTimeout)
	}

	return func() {
		_ = fl.Unlock()
		cancel()
	}, nil
}
