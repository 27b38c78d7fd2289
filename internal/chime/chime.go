// Package chime plays short audio cues through the system audio
// device. Everything here is best-effort: if the device is missing or
// busy the cue is dropped without a sound and without an error
// reaching the user.
package chime

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

const (
	sampleRate   = 44100
	channelCount = 1
)

// Compile-time interface check.
var _ domain.SoundPlayer = (*Player)(nil)

// Player synthesises and plays sine-wave cues via oto.
type Player struct {
	ctx *oto.Context
	log *logger.Logger
	mu  sync.Mutex // serialises playback so cues don't overlap
}

// NewPlayer initialises the system audio context. Returns an error if
// no audio device is available; callers should fall back to NewNoOp.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("chime: audio context initialized (rate=%d)", sampleRate)
	return &Player{ctx: ctx, log: log}, nil
}

// Tick plays a subtle cue for a committed step change. Non-blocking.
func (p *Player) Tick() {
	go p.play([]tone{{freq: 880, dur: 60 * time.Millisecond, gain: 0.15}})
}

// Chime plays a short rising figure for recipe completion.
// Non-blocking.
func (p *Player) Chime() {
	go p.play([]tone{
		{freq: 659.25, dur: 120 * time.Millisecond, gain: 0.25},
		{freq: 783.99, dur: 120 * time.Millisecond, gain: 0.25},
		{freq: 1046.50, dur: 220 * time.Millisecond, gain: 0.25},
	})
}

type tone struct {
	freq float64
	dur  time.Duration
	gain float64
}

func (p *Player) play(tones []tone) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pcm := synthesize(tones)
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(5 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		p.log.Debug("chime: closing player: %v", err)
	}
}

// synthesize renders the tones as 16-bit PCM with a short linear fade
// at each edge to avoid clicks.
func synthesize(tones []tone) []byte {
	var buf bytes.Buffer
	for _, t := range tones {
		n := int(float64(sampleRate) * t.dur.Seconds())
		fade := sampleRate / 200 // 5 ms
		for i := 0; i < n; i++ {
			amp := t.gain
			if i < fade {
				amp *= float64(i) / float64(fade)
			}
			if n-i < fade {
				amp *= float64(n-i) / float64(fade)
			}
			v := amp * math.Sin(2*math.Pi*t.freq*float64(i)/sampleRate)
			sample := int16(v * math.MaxInt16)
			binary.Write(&buf, binary.LittleEndian, sample)
		}
	}
	return buf.Bytes()
}
