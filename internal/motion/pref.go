// Package motion tracks the user's reduced-motion accessibility
// preference and notifies interested components when it flips.
//
// The preference only gates presentation: with reduced motion on, step
// transitions render instantly instead of sliding.
package motion

import (
	"sync"

	"github.com/mkhoury/cookmode/internal/logger"
)

// Pref is the current reduced-motion preference with change
// subscription. Safe for concurrent use.
type Pref struct {
	log *logger.Logger

	mu      sync.Mutex
	reduced bool
	nextID  int
	subs    map[int]func(bool)
}

// New creates a preference holder with the given initial value.
func New(reduced bool, log *logger.Logger) *Pref {
	return &Pref{
		log:     log,
		reduced: reduced,
		subs:    make(map[int]func(bool)),
	}
}

// Reduced reports whether motion should be reduced.
func (p *Pref) Reduced() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reduced
}

// Set updates the preference. Subscribers fire only on an actual
// change, with the new value.
func (p *Pref) Set(reduced bool) {
	p.mu.Lock()
	if p.reduced == reduced {
		p.mu.Unlock()
		return
	}
	p.reduced = reduced
	subs := make([]func(bool), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	p.log.Debug("motion: reduced-motion preference now %v", reduced)
	for _, fn := range subs {
		fn(reduced)
	}
}

// Subscribe registers a change callback and returns a cancel func.
func (p *Pref) Subscribe(fn func(bool)) (cancel func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}
