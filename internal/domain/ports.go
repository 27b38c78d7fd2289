package domain

import "context"

// RecipeSource provides recipes. Implementations can be in-memory
// (hardcoded), file-based, or API-backed.
type RecipeSource interface {
	List(ctx context.Context) ([]RecipeSummary, error)
	Get(ctx context.Context, id string) (*Recipe, error)
}

// WakeLocker acquires a platform keep-awake resource. Acquire may block
// for an unbounded time and may complete after the caller has moved on;
// ownership of the returned handle is decided by the caller, not the
// locker. The no-op implementation is used on platforms without an
// inhibitor facility.
type WakeLocker interface {
	Acquire(ctx context.Context, why string) (WakeHandle, error)
}

// WakeHandle is an acquired keep-awake resource. Release is idempotent.
type WakeHandle interface {
	Release() error
}

// SoundPlayer emits short audio cues. Implementations are best-effort;
// a cue that cannot be played is dropped, never surfaced.
type SoundPlayer interface {
	Tick()  // subtle cue on a committed step change
	Chime() // celebratory cue on completion
}
