package runlock_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"relocarr/internal/runlock"
	"relocarr/internal/services"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()

	lock, err := runlock.Acquire(dir, "http://localhost:7878/api/v3")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if filepath.Dir(lock.Path()) != dir {
		t.Fatalf("lock outside dir: %s", lock.Path())
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	// Re-acquire after release must succeed.
	again, err := runlock.Acquire(dir, "http://localhost:7878/api/v3")
	if err != nil {
		t.Fatalf("re-acquire: %v", err)
	}
	if err := again.Release(); err != nil {
		t.Fatalf("release again: %v", err)
	}
}

func TestDistinctInstancesDoNotContend(t *testing.T) {
	dir := t.TempDir()

	first, err := runlock.Acquire(dir, "http://localhost:7878/api/v3")
	if err != nil {
		t.Fatalf("acquire first: %v", err)
	}
	defer first.Release()

	second, err := runlock.Acquire(dir, "http://localhost:8989/api/v3")
	if err != nil {
		t.Fatalf("expected distinct instance lock to succeed: %v", err)
	}
	defer second.Release()

	if first.Path() == second.Path() {
		t.Fatalf("expected distinct lock files, both %s", first.Path())
	}
}

func TestHeldLockReportsConfigurationError(t *testing.T) {
	dir := t.TempDir()

	held, err := runlock.Acquire(dir, "http://localhost:7878/api/v3")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer held.Release()

	_, err = runlock.Acquire(dir, "http://localhost:7878/api/v3")
	if err == nil {
		t.Skip("flock re-entry within one process is platform dependent")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "already in flight") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestNilLockReleaseIsSafe(t *testing.T) {
	var lock *runlock.Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("nil release: %v", err)
	}
}
