// Package histguard binds one physical "back" signal to a modal's
// close action.
//
// On activation the guard pushes exactly one marker onto a navigation
// stack. The first back signal that finds the marker on top consumes
// it and invokes the close callback; later signals are no-ops. Step
// navigation inside the modal never touches the stack, so one back
// press exits the mode rather than rewinding one step at a time.
package histguard

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mkhoury/cookmode/internal/logger"
)

// Stack is a navigation stack with LIFO semantics. The in-process
// ModalStack implements it; any environment with a back-stack concept
// (browser history, a native back stack) can be adapted behind it.
type Stack interface {
	Push(marker string)
	// Pop removes and returns the top marker. ok is false on an
	// empty stack.
	Pop() (marker string, ok bool)
	// Peek returns the top marker without removing it.
	Peek() (marker string, ok bool)
}

// Guard ties one stack marker to one close callback.
type Guard struct {
	stack   Stack
	onClose func()
	log     *logger.Logger

	mu       sync.Mutex
	marker   string
	consumed bool
}

// New creates an inactive guard. Call Activate once per modal mount.
func New(stack Stack, onClose func(), log *logger.Logger) *Guard {
	return &Guard{stack: stack, onClose: onClose, log: log}
}

// Activate pushes the guard's marker. Calling Activate on an already
// active guard is a no-op; the marker is pushed at most once per
// guard lifetime.
func (g *Guard) Activate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.marker != "" || g.consumed {
		return
	}
	g.marker = uuid.NewString()
	g.stack.Push(g.marker)
	g.log.Debug("histguard: pushed marker %s", g.marker[:8])
}

// HandleBack consumes one back signal. If the guard's marker is on top
// of the stack it is popped, the close callback fires, and true is
// returned. A consumed or inactive guard reports false and does
// nothing further.
func (g *Guard) HandleBack() bool {
	g.mu.Lock()
	if g.consumed || g.marker == "" {
		g.mu.Unlock()
		return false
	}
	top, ok := g.stack.Peek()
	if !ok || top != g.marker {
		g.mu.Unlock()
		return false
	}
	g.stack.Pop()
	g.consumed = true
	marker := g.marker
	onClose := g.onClose
	g.mu.Unlock()

	g.log.Debug("histguard: consumed marker %s", marker[:8])
	if onClose != nil {
		onClose()
	}
	return true
}

// Dismiss removes the marker without firing the close callback, for
// exits initiated from inside the modal (Escape, the close control).
// Idempotent.
func (g *Guard) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.consumed || g.marker == "" {
		return
	}
	if top, ok := g.stack.Peek(); ok && top == g.marker {
		g.stack.Pop()
	}
	g.consumed = true
	g.log.Debug("histguard: dismissed marker %s", g.marker[:8])
}

// Consumed reports whether the marker has been used up.
func (g *Guard) Consumed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.consumed
}

// ModalStack is the in-process navigation stack the application pushes
// screens onto. Safe for concurrent use.
type ModalStack struct {
	mu      sync.Mutex
	markers []string
}

// NewModalStack creates an empty stack.
func NewModalStack() *ModalStack {
	return &ModalStack{}
}

// Push adds a marker on top.
func (s *ModalStack) Push(marker string) {
	s.mu.Lock()
	s.markers = append(s.markers, marker)
	s.mu.Unlock()
}

// Pop removes and returns the top marker.
func (s *ModalStack) Pop() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.markers) == 0 {
		return "", false
	}
	m := s.markers[len(s.markers)-1]
	s.markers = s.markers[:len(s.markers)-1]
	return m, true
}

// Peek returns the top marker without removing it.
func (s *ModalStack) Peek() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.markers) == 0 {
		return "", false
	}
	return s.markers[len(s.markers)-1], true
}

// Depth returns the number of markers on the stack.
func (s *ModalStack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.markers)
}
