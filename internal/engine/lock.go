package engine

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockFileName = ".lock"

var errLockBusy = errors.New("database is locked by another process")

// acquireLock takes an advisory exclusive lock on dbpath/.lock. It is not
// part of the baseline concurrency model (spec is single-process,
// single-writer by construction); it is the conforming extension that
// protects against two `frame` processes opening the same database at once.
// Grounded on the teacher's sync.go flock.New/TryLock usage.
func acquireLock(dbpath string, timeout time.Duration) (*flock.Flock, error) {
	fl := flock.New(filepath.Join(dbpath, lockFileName))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, newErr("acquireLock", KindIOError, dbpath, err)
	}
	if !locked {
		return nil, newErr("acquireLock", KindIOError, dbpath, errLockBusy)
	}
	return fl, nil
}
