package wakelock

import (
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

// Compile-time interface check.
var _ domain.WakeLocker = (*SystemLocker)(nil)

// SystemLocker holds a logind idle inhibitor by keeping a
// "systemd-inhibit ... tail -f /dev/null" child alive. Killing the
// child drops the inhibitor. Only useful on Linux with systemd; other
// platforms should get the NoOp locker instead.
type SystemLocker struct {
	log *logger.Logger
}

// NewSystemLocker creates a locker backed by systemd-inhibit.
func NewSystemLocker(log *logger.Logger) *SystemLocker {
	return &SystemLocker{log: log}
}

// Available reports whether systemd-inhibit is on PATH.
func (s *SystemLocker) Available() bool {
	_, err := exec.LookPath("systemd-inhibit")
	return err == nil
}

// Acquire spawns the inhibitor child. Returns once the child has
// started; the inhibitor is held until the handle is released.
func (s *SystemLocker) Acquire(ctx context.Context, why string) (domain.WakeHandle, error) {
	if !s.Available() {
		return nil, domain.ErrUnsupported
	}

	cmd := exec.CommandContext(ctx, "systemd-inhibit",
		"--what=idle:sleep",
		"--who=cookmode",
		"--why="+why,
		"tail", "-f", "/dev/null",
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting inhibitor: %w", err)
	}

	s.log.Debug("wakelock: inhibitor pid %d started (%s)", cmd.Process.Pid, why)

	h := &systemHandle{cmd: cmd, log: s.log}
	// Reap the child so a release (or an external kill) never leaves
	// a zombie behind.
	go func() {
		_ = cmd.Wait()
		h.mu.Lock()
		h.exited = true
		h.mu.Unlock()
	}()
	return h, nil
}

type systemHandle struct {
	cmd *exec.Cmd
	log *logger.Logger

	mu       sync.Mutex
	released bool
	exited   bool
}

// Release kills the inhibitor child. Idempotent: repeat calls return
// nil without touching the process again.
func (h *systemHandle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil
	}
	h.released = true
	if h.exited {
		return nil
	}
	if err := h.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("killing inhibitor: %w", err)
	}
	h.log.Debug("wakelock: inhibitor pid %d killed", h.cmd.Process.Pid)
	return nil
}
