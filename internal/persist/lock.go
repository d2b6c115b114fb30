package persist

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the advisory lock taken for the duration of a
// load-mutate-save session.
const LockFileName = ".annobench.lock"

// ErrLocked indicates another workbench process holds the data directory.
var ErrLocked = errors.New("data directory is locked by another process")

// LockDir takes the advisory lock for dir without blocking. The caller must
// Unlock the returned flock when its session ends.
func LockDir(dir string) (*flock.Flock, error) {
	fl := flock.New(filepath.Join(dir, LockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
	}
	return fl, nil
}
