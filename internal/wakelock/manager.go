// Package wakelock keeps the machine awake while a cooking session is
// on screen.
//
// Acquisition is asynchronous and may complete after the owning screen
// has already been torn down. A generation counter captured when the
// request starts decides ownership at resolution time: a handle that
// arrives for a stale generation is released on the spot instead of
// retained. The whole facility is best-effort; a platform that refuses
// or lacks an inhibitor never blocks navigation.
package wakelock

import (
	"context"
	"sync"

	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

// Manager owns at most one wake-lock handle. Activate and Deactivate
// are safe to call from any goroutine and in any interleaving with the
// in-flight acquisition.
type Manager struct {
	locker domain.WakeLocker
	log    *logger.Logger

	mu     sync.Mutex
	gen    uint64
	active bool
	handle domain.WakeHandle
}

// NewManager creates a manager over the given locker.
func NewManager(locker domain.WakeLocker, log *logger.Logger) *Manager {
	return &Manager{locker: locker, log: log}
}

// Activate requests the wake lock in the background. Calling Activate
// while already active is a no-op. The why string is passed through to
// the platform inhibitor for diagnostics.
func (m *Manager) Activate(ctx context.Context, why string) {
	m.mu.Lock()
	if m.active {
		m.mu.Unlock()
		return
	}
	m.active = true
	m.gen++
	gen := m.gen
	locker := m.locker
	m.mu.Unlock()

	go m.acquire(ctx, locker, gen, why)
}

func (m *Manager) acquire(ctx context.Context, locker domain.WakeLocker, gen uint64, why string) {
	handle, err := locker.Acquire(ctx, why)
	if err != nil {
		// Best-effort: log and carry on without the lock.
		m.log.Debug("wakelock: acquire failed: %v", err)
		return
	}

	m.mu.Lock()
	if !m.active || m.gen != gen {
		m.mu.Unlock()
		// The owner deactivated while we were acquiring. The handle
		// arrived late and belongs to nobody; release it immediately.
		if err := handle.Release(); err != nil {
			m.log.Debug("wakelock: releasing late handle: %v", err)
		}
		m.log.Debug("wakelock: dropped handle acquired after deactivation")
		return
	}
	m.handle = handle
	m.mu.Unlock()

	m.log.Debug("wakelock: acquired")
}

// Deactivate releases the held handle, if any, and marks any in-flight
// acquisition as disowned. Idempotent; safe regardless of whether the
// acquisition has resolved yet.
func (m *Manager) Deactivate() {
	m.mu.Lock()
	if !m.active {
		m.mu.Unlock()
		return
	}
	m.active = false
	m.gen++
	handle := m.handle
	m.handle = nil
	m.mu.Unlock()

	if handle != nil {
		if err := handle.Release(); err != nil {
			m.log.Debug("wakelock: release: %v", err)
		}
		m.log.Debug("wakelock: released")
	}
}

// Held reports whether a handle is currently retained. Acquisition in
// flight counts as not held.
func (m *Manager) Held() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle != nil
}
