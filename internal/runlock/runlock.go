// Package runlock serializes relocation runs per manager instance. Two
// interleaved runs mutating the same instance could race each other's
// catalog snapshots, so each run takes an advisory file lock derived from
// the instance URL before touching anything.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"relocarr/internal/services"
)

// Lock is a held per-instance run lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the advisory lock for the given instance URL, creating the
// lock directory as needed. It does not block: a held lock means another run
// is in flight and this one should abort.
func Acquire(dir, instanceURL string) (*Lock, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, lockName(instanceURL))
	lock := flock.New(path)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrConfiguration, "runlock", "acquire",
			fmt.Sprintf("another run against this instance is already in flight (lock %s)", path), nil)
	}

	return &Lock{path: path, lock: lock}, nil
}

// Release drops the lock. Safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

func lockName(instanceURL string) string {
	sum := sha256.Sum256([]byte(instanceURL))
	return "relocarr-" + hex.EncodeToString(sum[:8]) + ".lock"
}
