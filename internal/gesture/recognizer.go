// Package gesture converts raw press/release coordinates into discrete
// horizontal swipe intents.
//
// In the terminal a "swipe" is a mouse (or touch-emulated) drag: a
// button press at one cell and a release at another. Only horizontal
// distance is measured; vertical movement is ignored, so a fast
// diagonal drag still registers as a swipe.
package gesture

import "sync"

// Threshold is the minimum horizontal distance, in cells, for a drag
// to count as a swipe.
const Threshold = 50

// Handlers receives recognised swipes. Either field may be nil.
type Handlers struct {
	OnSwipeLeft  func() // drag moved right-to-left (negative delta)
	OnSwipeRight func() // drag moved left-to-right (positive delta)
}

// Recognizer tracks one in-flight drag on a single interaction surface.
// Handlers are looked up at fire time, not captured at press time, so a
// handler swap between press and release invokes the latest callbacks.
// Safe for concurrent use.
type Recognizer struct {
	mu       sync.Mutex
	handlers Handlers
	startX   int
	tracking bool
}

// New creates a recognizer with the given handlers.
func New(h Handlers) *Recognizer {
	return &Recognizer{handlers: h}
}

// SetHandlers replaces the callbacks. The next fired swipe uses the new
// set, even for a drag already in flight.
func (r *Recognizer) SetHandlers(h Handlers) {
	r.mu.Lock()
	r.handlers = h
	r.mu.Unlock()
}

// Begin records the press coordinate of a drag. A second Begin without
// an End restarts the gesture from the new coordinate.
func (r *Recognizer) Begin(x, y int) {
	r.mu.Lock()
	r.startX = x
	r.tracking = true
	r.mu.Unlock()
}

// End records the release coordinate and fires at most one swipe
// callback. A release without a matching press fires nothing.
func (r *Recognizer) End(x, y int) {
	r.mu.Lock()
	if !r.tracking {
		r.mu.Unlock()
		return
	}
	r.tracking = false
	delta := x - r.startX
	h := r.handlers
	r.mu.Unlock()

	switch {
	case delta <= -Threshold:
		if h.OnSwipeLeft != nil {
			h.OnSwipeLeft()
		}
	case delta >= Threshold:
		if h.OnSwipeRight != nil {
			h.OnSwipeRight()
		}
	}
}

// Cancel drops any in-flight drag without firing.
func (r *Recognizer) Cancel() {
	r.mu.Lock()
	r.tracking = false
	r.mu.Unlock()
}
