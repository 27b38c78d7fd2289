package domain

// Direction is a presentation-only hint indicating which way a step
// transition should animate. It carries no navigation semantics.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns a human-readable direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Phase tracks the lifecycle of one cooking-mode mount. It moves from
// Navigating to Completed exactly once and never reverts except by a
// full remount.
type Phase int

const (
	Navigating Phase = iota
	Completed
)

// String returns a human-readable phase.
func (p Phase) String() string {
	switch p {
	case Navigating:
		return "navigating"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}
