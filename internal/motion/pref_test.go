package motion

import (
	"testing"

	"github.com/mkhoury/cookmode/internal/logger"
)

func TestSetNotifiesOnChangeOnly(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	p := New(false, log)

	var got []bool
	p.Subscribe(func(v bool) { got = append(got, v) })

	p.Set(true)
	p.Set(true) // no change, no notification
	p.Set(false)

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Fatalf("unexpected notifications: %v", got)
	}
	if p.Reduced() {
		t.Fatal("expected reduced=false")
	}
}

func TestCancelStopsNotifications(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	p := New(false, log)

	calls := 0
	cancel := p.Subscribe(func(bool) { calls++ })
	p.Set(true)
	cancel()
	p.Set(false)

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}
