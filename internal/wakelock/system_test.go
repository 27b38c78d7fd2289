package wakelock

import (
	"testing"

	"github.com/mkhoury/cookmode/internal/logger"
)

func TestSystemHandleReleaseIsIdempotent(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	// An already-exited child exercises the release bookkeeping
	// without spawning a real inhibitor.
	h := &systemHandle{log: log, exited: true}

	if err := h.Release(); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := h.Release(); err != nil {
		t.Fatalf("repeat release must be a nil no-op, got %v", err)
	}
}
