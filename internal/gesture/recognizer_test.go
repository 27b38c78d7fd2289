package gesture

import "testing"

type counter struct {
	left  int
	right int
}

func newCounted() (*Recognizer, *counter) {
	c := &counter{}
	r := New(Handlers{
		OnSwipeLeft:  func() { c.left++ },
		OnSwipeRight: func() { c.right++ },
	})
	return r, c
}

func TestSwipeDirections(t *testing.T) {
	tests := []struct {
		name                string
		startX, startY      int
		endX, endY          int
		wantLeft, wantRight int
	}{
		{"long drag left", 300, 200, 100, 200, 1, 0},
		{"long drag right", 100, 200, 300, 200, 0, 1},
		{"below threshold", 200, 200, 210, 200, 0, 0},
		{"exactly threshold right", 0, 0, Threshold, 0, 0, 1},
		{"exactly threshold left", Threshold, 0, 0, 0, 1, 0},
		{"one short of threshold", 0, 0, Threshold - 1, 0, 0, 0},
		{"diagonal still counts", 300, 10, 100, 400, 1, 0},
		{"no horizontal movement", 150, 10, 150, 300, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c := newCounted()
			r.Begin(tt.startX, tt.startY)
			r.End(tt.endX, tt.endY)
			if c.left != tt.wantLeft || c.right != tt.wantRight {
				t.Fatalf("left=%d right=%d, want left=%d right=%d",
					c.left, c.right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestEndWithoutBeginFiresNothing(t *testing.T) {
	r, c := newCounted()
	r.End(500, 0)
	if c.left != 0 || c.right != 0 {
		t.Fatalf("unexpected firing: left=%d right=%d", c.left, c.right)
	}
}

func TestEachGestureFiresOnce(t *testing.T) {
	r, c := newCounted()
	r.Begin(300, 0)
	r.End(100, 0)
	// A stray duplicate release must not double-fire.
	r.End(100, 0)
	if c.left != 1 {
		t.Fatalf("expected exactly one left swipe, got %d", c.left)
	}
}

func TestCancelDropsGesture(t *testing.T) {
	r, c := newCounted()
	r.Begin(300, 0)
	r.Cancel()
	r.End(0, 0)
	if c.left != 0 || c.right != 0 {
		t.Fatalf("cancelled gesture fired: left=%d right=%d", c.left, c.right)
	}
}

// Handler identity changes between renders must not cause missed or
// duplicated firing; the set installed at release time wins.
func TestLatestHandlersWin(t *testing.T) {
	stale, current := 0, 0
	r := New(Handlers{OnSwipeLeft: func() { stale++ }})

	r.Begin(300, 0)
	r.SetHandlers(Handlers{OnSwipeLeft: func() { current++ }})
	r.End(100, 0)

	if stale != 0 {
		t.Fatalf("stale handler fired %d times", stale)
	}
	if current != 1 {
		t.Fatalf("expected current handler to fire once, got %d", current)
	}
}

func TestNilHandlersAreSafe(t *testing.T) {
	r := New(Handlers{})
	r.Begin(300, 0)
	r.End(0, 0) // must not panic
}
