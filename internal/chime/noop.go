package chime

import (
	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

// Compile-time interface check.
var _ domain.SoundPlayer = (*NoOp)(nil)

// NoOp is a sound player that plays nothing. Used when audio is
// disabled in config or the device is unavailable.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a silent sound player.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Tick does nothing.
func (n *NoOp) Tick() {}

// Chime does nothing.
func (n *NoOp) Chime() {
	n.log.Debug("chime no-op: would play completion chime")
}
