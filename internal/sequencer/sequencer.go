// Package sequencer implements position tracking over a fixed-length
// instruction list.
//
// Every operation is total over the clamped domain [0, N-1]: nothing
// throws, nothing goes out of bounds. Keyboard repeat, double-activated
// controls, and a swipe landing mid key-repeat all funnel through the
// same clamped transitions, so no interleaving of input sources can
// desynchronise the index from what is rendered.
package sequencer

import "github.com/mkhoury/cookmode/internal/domain"

// Sequencer tracks the current position within an ordered instruction
// list. It owns the index; input adapters call its transitions and read
// the results, never mutating position themselves.
type Sequencer struct {
	steps     []domain.Instruction
	index     int
	direction domain.Direction
}

// New creates a sequencer over the given instructions, starting at
// initial. An out-of-range initial is silently clamped, not rejected,
// so a caller can resume at a possibly stale step without crashing.
func New(steps []domain.Instruction, initial int) *Sequencer {
	s := &Sequencer{steps: steps, direction: domain.Forward}
	s.index = s.clamp(initial)
	return s
}

// Len returns the number of steps.
func (s *Sequencer) Len() int { return len(s.steps) }

// Steps returns the underlying instruction list. Callers must treat it
// as read-only.
func (s *Sequencer) Steps() []domain.Instruction { return s.steps }

// Index returns the current position. Meaningless when Len() == 0.
func (s *Sequencer) Index() int { return s.index }

// Direction returns the presentation hint set by the last transition.
func (s *Sequencer) Direction() domain.Direction { return s.direction }

// Current returns the instruction at the current position, or false
// when the sequence is empty.
func (s *Sequencer) Current() (domain.Instruction, bool) {
	if len(s.steps) == 0 {
		return domain.Instruction{}, false
	}
	return s.steps[s.index], true
}

// IsFirst reports whether the current position is the first step.
func (s *Sequencer) IsFirst() bool { return s.index == 0 }

// IsLast reports whether the current position is the last step.
func (s *Sequencer) IsLast() bool { return s.index == len(s.steps)-1 }

// Next advances by one step. A no-op at the last step. Returns true if
// the position changed.
func (s *Sequencer) Next() bool {
	s.direction = domain.Forward
	if s.index >= len(s.steps)-1 {
		return false
	}
	s.index++
	return true
}

// Prev retreats by one step. A no-op at the first step. Returns true if
// the position changed.
func (s *Sequencer) Prev() bool {
	s.direction = domain.Backward
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// GoTo jumps to an arbitrary index, clamped into range. The direction
// hint follows the comparison against the current index and is left
// unchanged on an equal target. Returns true if the position changed.
func (s *Sequencer) GoTo(index int) bool {
	target := s.clamp(index)
	switch {
	case target > s.index:
		s.direction = domain.Forward
	case target < s.index:
		s.direction = domain.Backward
	default:
		return false
	}
	s.index = target
	return true
}

// Reset jumps back to the first step with a backward hint, visually
// rewinding. Returns true if the position changed.
func (s *Sequencer) Reset() bool {
	s.direction = domain.Backward
	if s.index == 0 {
		return false
	}
	s.index = 0
	return true
}

// clamp forces an index into [0, N-1]. Returns 0 for an empty sequence.
func (s *Sequencer) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if n := len(s.steps); i >= n {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return i
}
