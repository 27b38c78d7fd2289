package wakelock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

// fakeLocker blocks each Acquire until the test resolves it, simulating
// the platform request suspending for an arbitrary time.
type fakeLocker struct {
	resolve chan struct{}
	err     error
	handle  *fakeHandle
}

type fakeHandle struct {
	mu       sync.Mutex
	releases int
	released chan struct{}
}

func (h *fakeHandle) Release() error {
	h.mu.Lock()
	h.releases++
	h.mu.Unlock()
	close(h.released)
	return nil
}

func (h *fakeHandle) releaseCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.releases
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{
		resolve: make(chan struct{}),
		handle:  &fakeHandle{released: make(chan struct{})},
	}
}

func (f *fakeLocker) Acquire(ctx context.Context, why string) (domain.WakeHandle, error) {
	<-f.resolve
	if f.err != nil {
		return nil, f.err
	}
	return f.handle, nil
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestAcquireThenDeactivateReleases(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	locker := newFakeLocker()
	m := NewManager(locker, log)

	m.Activate(context.Background(), "test")
	close(locker.resolve)
	waitFor(t, m.Held, "handle retention")

	m.Deactivate()
	if got := locker.handle.releaseCount(); got != 1 {
		t.Fatalf("expected 1 release, got %d", got)
	}
	if m.Held() {
		t.Fatal("manager still holds a handle after Deactivate")
	}
}

// TestLateResolutionIsReleased covers the race this package exists for:
// the acquisition resolves after the owner has already deactivated. The
// late handle must be released immediately and never retained.
func TestLateResolutionIsReleased(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	locker := newFakeLocker()
	m := NewManager(locker, log)

	m.Activate(context.Background(), "test")
	m.Deactivate() // before the acquire resolves
	close(locker.resolve)

	select {
	case <-locker.handle.released:
	case <-time.After(2 * time.Second):
		t.Fatal("late handle was never released")
	}

	if got := locker.handle.releaseCount(); got != 1 {
		t.Fatalf("expected exactly 1 release, got %d", got)
	}
	if m.Held() {
		t.Fatal("manager retained a handle it had disowned")
	}
}

func TestAcquireFailureIsSwallowed(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	locker := newFakeLocker()
	locker.err = errors.New("platform refused")
	m := NewManager(locker, log)

	m.Activate(context.Background(), "test")
	close(locker.resolve)

	// Nothing to assert beyond the absence of a panic and of a held
	// handle; the failure is logged and swallowed.
	time.Sleep(20 * time.Millisecond)
	if m.Held() {
		t.Fatal("failed acquisition should not produce a handle")
	}
	m.Deactivate()
}

func TestActivateIsIdempotentWhileActive(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	locker := newFakeLocker()
	m := NewManager(locker, log)

	m.Activate(context.Background(), "test")
	m.Activate(context.Background(), "test") // second call is a no-op
	close(locker.resolve)
	waitFor(t, m.Held, "handle retention")

	m.Deactivate()
	m.Deactivate() // idempotent

	if got := locker.handle.releaseCount(); got != 1 {
		t.Fatalf("expected 1 release, got %d", got)
	}
}

func TestReactivateAfterDeactivateUsesFreshGeneration(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	first := newFakeLocker()
	m := NewManager(first, log)

	m.Activate(context.Background(), "one")
	m.Deactivate()

	// Swap in a second locker for the new generation so the two
	// acquisitions resolve independently.
	second := newFakeLocker()
	m.locker = second
	m.Activate(context.Background(), "two")

	close(second.resolve)
	waitFor(t, m.Held, "second-generation handle")

	// The first acquisition resolves last; it belongs to a dead
	// generation and must not evict the live handle.
	close(first.resolve)
	select {
	case <-first.handle.released:
	case <-time.After(2 * time.Second):
		t.Fatal("stale-generation handle was never released")
	}

	if !m.Held() {
		t.Fatal("live handle was dropped by a stale resolution")
	}
	m.Deactivate()
	if got := second.handle.releaseCount(); got != 1 {
		t.Fatalf("expected 1 release of live handle, got %d", got)
	}
}

func TestNoOpLocker(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	h, err := NewNoOp(log).Acquire(context.Background(), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}
