package wakelock

import (
	"context"

	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

// Compile-time interface check.
var _ domain.WakeLocker = (*NoOp)(nil)

// NoOp is a wake locker for platforms without an inhibitor facility.
// The screen staying on is a convenience, not a requirement, so the
// absence of the capability simply means the feature does nothing.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a no-op wake locker.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Acquire returns a handle that holds nothing.
func (n *NoOp) Acquire(ctx context.Context, why string) (domain.WakeHandle, error) {
	n.log.Debug("wakelock no-op: would inhibit (%s)", why)
	return noopHandle{}, nil
}

type noopHandle struct{}

func (noopHandle) Release() error { return nil }
