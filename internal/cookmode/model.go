// Package cookmode implements the full-screen guided cooking dialog.
//
// The model composes the step sequencer, the swipe recognizer, the
// wake-lock manager, the history guard, and the reduced-motion
// preference into one Bubble Tea surface. Every input source funnels
// through the sequencer's clamped transitions inside a single Update
// call, so no interleaving of keyboard, swipe, and menu events can
// desynchronise the rendered step from the tracked index.
package cookmode

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mkhoury/cookmode/internal/chime"
	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/gesture"
	"github.com/mkhoury/cookmode/internal/histguard"
	"github.com/mkhoury/cookmode/internal/logger"
	"github.com/mkhoury/cookmode/internal/motion"
	"github.com/mkhoury/cookmode/internal/sequencer"
	"github.com/mkhoury/cookmode/internal/wakelock"
)

// slideFrames is the length of the step-change slide animation. Zero
// frames are rendered when reduced motion is on.
const slideFrames = 6

// CloseMsg is emitted exactly once when the dialog has closed, via any
// exit path. The mounting model should unmount on receipt.
type CloseMsg struct{}

// frameMsg drives the slide animation.
type frameMsg time.Time

// motionMsg carries a live change of the reduced-motion preference.
type motionMsg bool

// ctlID identifies an element of the footer focus ring.
type ctlID int

const (
	ctlClose ctlID = iota
	ctlPrev
	ctlMenu
	ctlNext // doubles as Finish on the last step
	ctlDone // completion screen
	ctlAgain
)

type control struct {
	id       ctlID
	label    string
	disabled bool
}

// Option configures the dialog.
type Option func(*Model)

// WithInitialStep mounts at the given step. Out-of-range values are
// clamped, letting a caller resume at a possibly stale position.
func WithInitialStep(n int) Option {
	return func(m *Model) { m.initialStep = n }
}

// WithOnClose sets the callback fired exactly once per mount when the
// dialog closes, whatever the exit path.
func WithOnClose(fn func()) Option {
	return func(m *Model) { m.onClose = fn }
}

// WithOnStepChange sets the callback fired after every committed
// position change. It does not fire for menu open/close or completion.
func WithOnStepChange(fn func(step int)) Option {
	return func(m *Model) { m.onStepChange = fn }
}

// WithWakeLock sets the wake-lock manager owned by this mount.
func WithWakeLock(w *wakelock.Manager) Option {
	return func(m *Model) { m.wake = w }
}

// WithSound sets the audio-cue player.
func WithSound(p domain.SoundPlayer) Option {
	return func(m *Model) { m.sound = p }
}

// WithMotion sets the reduced-motion preference source.
func WithMotion(p *motion.Pref) Option {
	return func(m *Model) { m.pref = p }
}

// WithStack sets the navigation stack the history guard pushes onto.
func WithStack(s histguard.Stack) Option {
	return func(m *Model) { m.stack = s }
}

// Model is the cooking-mode dialog. Construct with New, hand to a
// Bubble Tea program or embed in a parent model, and unmount on
// CloseMsg.
type Model struct {
	id    string
	title string
	log   *logger.Logger

	seq    *sequencer.Sequencer
	phase  domain.Phase
	swipes *gesture.Recognizer
	wake   *wakelock.Manager
	guard  *histguard.Guard
	stack  histguard.Stack
	sound  domain.SoundPlayer
	pref   *motion.Pref

	menuOpen  bool
	menuIndex int
	focus     ctlID

	prog progress.Model
	keys keyMap
	help help.Model

	onClose      func()
	onStepChange func(step int)
	initialStep  int

	ctx          context.Context
	closed       bool
	reduced      bool
	slide        int
	motion       *motionPump
	cancelMotion func()

	width  int
	height int
}

// New creates a cooking-mode dialog for one recipe. The instruction
// list is fixed for the lifetime of this mount; an empty list renders
// a dedicated empty state with navigation disabled.
func New(ctx context.Context, title string, steps []domain.Instruction, log *logger.Logger, opts ...Option) *Model {
	m := &Model{
		id:    uuid.NewString(),
		title: title,
		log:   log,
		ctx:   ctx,
		prog:  progress.New(progress.WithDefaultGradient()),
		keys:  defaultKeyMap(),
		help:  help.New(),
		focus: ctlNext,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.wake == nil {
		m.wake = wakelock.NewManager(wakelock.NewNoOp(log), log)
	}
	if m.sound == nil {
		m.sound = chime.NewNoOp(log)
	}
	if m.pref == nil {
		m.pref = motion.New(false, log)
	}
	if m.stack == nil {
		m.stack = histguard.NewModalStack()
	}

	m.seq = sequencer.New(steps, m.initialStep)
	m.swipes = gesture.New(gesture.Handlers{})
	m.guard = histguard.New(m.stack, m.closeOnce, log)
	m.reduced = m.pref.Reduced()

	m.motion = newMotionPump()
	m.cancelMotion = m.pref.Subscribe(m.motion.send)

	if m.seq.Len() == 0 {
		m.focus = ctlClose
	}
	return m
}

// Init activates the per-mount resources: the history marker and the
// wake lock.
func (m *Model) Init() tea.Cmd {
	m.guard.Activate()
	m.wake.Activate(m.ctx, "guided cooking: "+m.title)
	m.log.Info("cookmode %s: mounted %q at step %d/%d", m.id[:8], m.title, m.seq.Index()+1, m.seq.Len())
	return m.listenMotion()
}

// listenMotion pumps preference changes into the update loop.
func (m *Model) listenMotion() tea.Cmd {
	ch := m.motion.ch
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return motionMsg(v)
	}
}

// motionPump bridges the preference subscription, which fires on an
// arbitrary goroutine, into the update loop. The close is guarded so a
// notification in flight during teardown is dropped instead of hitting
// a closed channel.
type motionPump struct {
	mu     sync.Mutex
	ch     chan bool
	closed bool
}

func newMotionPump() *motionPump {
	return &motionPump{ch: make(chan bool, 1)}
}

func (p *motionPump) send(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.ch <- v:
	default:
	}
}

func (p *motionPump) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
}

// Closed reports whether the dialog has finished its lifecycle.
func (m *Model) Closed() bool { return m.closed }

// Step returns the current 0-based step index.
func (m *Model) Step() int { return m.seq.Index() }

// Phase returns the dialog phase.
func (m *Model) Phase() domain.Phase { return m.phase }

// closeOnce is the single exit path. Explicit close, Escape, the
// completion screen's Done control, and a consumed back signal all
// land here; the wake lock release and the onClose notification happen
// exactly once no matter how many paths fire.
func (m *Model) closeOnce() {
	if m.closed {
		return
	}
	m.closed = true
	m.wake.Deactivate()
	m.guard.Dismiss()
	m.cancelMotion()
	m.motion.close()
	if m.onClose != nil {
		m.onClose()
	}
	m.log.Info("cookmode %s: closed (phase=%s, step %d/%d)", m.id[:8], m.phase, m.seq.Index()+1, m.seq.Len())
}

// commit finishes a position change: notify, cue, start the slide.
func (m *Model) commit(moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	if m.onStepChange != nil {
		m.onStepChange(m.seq.Index())
	}
	m.sound.Tick()
	m.log.Debug("cookmode %s: step %d/%d (%s)", m.id[:8], m.seq.Index()+1, m.seq.Len(), m.seq.Direction())
	if m.reduced {
		m.slide = 0
		return nil
	}
	m.slide = slideFrames
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// finish moves navigating → completed. Terminal until remount.
func (m *Model) finish() {
	if m.phase == domain.Completed {
		return
	}
	m.phase = domain.Completed
	m.menuOpen = false
	m.focus = ctlDone
	m.sound.Chime()
	m.log.Info("cookmode %s: completed %q", m.id[:8], m.title)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	wasClosed := m.closed

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w := msg.Width - 16
		if w > 48 {
			w = 48
		}
		if w > 0 {
			m.prog.Width = w
		}
	case frameMsg:
		if m.slide > 0 {
			m.slide--
			if m.slide > 0 {
				cmd = frameTick()
			}
		}
	case motionMsg:
		m.reduced = bool(msg)
		if m.reduced {
			m.slide = 0
		}
		cmd = m.listenMotion()
	}

	if !wasClosed && m.closed {
		cmd = tea.Batch(cmd, func() tea.Msg { return CloseMsg{} })
	}
	return m, cmd
}

// handleKey is the single keydown router. Precedence: Escape and the
// back signal first, then the open menu, then step navigation and the
// focus ring.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeOnce()
		return nil
	case key.Matches(msg, m.keys.Back):
		m.guard.HandleBack()
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	if m.menuOpen {
		return m.handleMenuKey(msg)
	}

	if m.phase == domain.Completed {
		switch {
		case key.Matches(msg, m.keys.FocusNext):
			m.cycleFocus(1)
		case key.Matches(msg, m.keys.FocusPrev):
			m.cycleFocus(-1)
		case key.Matches(msg, m.keys.Activate):
			return m.activate()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		if m.seq.Len() > 0 {
			return m.commit(m.seq.Prev())
		}
	case key.Matches(msg, m.keys.Next):
		if m.seq.Len() > 0 {
			return m.commit(m.seq.Next())
		}
	case key.Matches(msg, m.keys.Menu):
		m.openMenu()
	case key.Matches(msg, m.keys.StartOver):
		if m.seq.Len() > 0 {
			return m.commit(m.seq.Reset())
		}
	case key.Matches(msg, m.keys.FocusNext):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	}
	return nil
}

// handleMenuKey owns all keys while the step-jump overlay is open;
// step-navigation keys are suppressed so nothing double-fires.
func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuIndex < m.seq.Len()-1 {
			m.menuIndex++
		}
	case key.Matches(msg, m.keys.Activate):
		m.menuOpen = false
		return m.commit(m.seq.GoTo(m.menuIndex))
	case key.Matches(msg, m.keys.Menu):
		// Dismiss without selection; position unchanged.
		m.menuOpen = false
	}
	return nil
}

// handleMouse feeds press/release coordinates to the swipe recognizer.
// Fresh handler closures are installed per event, so the recognizer
// always fires the callbacks belonging to the current update.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.swipes.Begin(msg.X, msg.Y)
	case tea.MouseActionRelease:
		var left, right bool
		m.swipes.SetHandlers(gesture.Handlers{
			OnSwipeLeft:  func() { left = true },
			OnSwipeRight: func() { right = true },
		})
		m.swipes.End(msg.X, msg.Y)
		if m.menuOpen || m.phase != domain.Navigating || m.seq.Len() == 0 {
			return nil
		}
		if left {
			return m.commit(m.seq.Next())
		}
		if right {
			return m.commit(m.seq.Prev())
		}
	}
	return nil
}

// openMenu shows the step-jump overlay with the cursor on the current
// step. Opening never changes position.
func (m *Model) openMenu() {
	if m.seq.Len() == 0 {
		return
	}
	m.menuOpen = true
	m.menuIndex = m.seq.Index()
}

// controls builds the footer focus ring for the current state. The
// ring is closed: Tab from the last control wraps to the first.
func (m *Model) controls() []control {
	if m.phase == domain.Completed {
		return []control{
			{id: ctlAgain, label: "Start Over"},
			{id: ctlDone, label: "Done"},
		}
	}
	if m.seq.Len() == 0 {
		return []control{{id: ctlClose, label: "Close"}}
	}
	next := control{id: ctlNext, label: "Next"}
	if m.seq.IsLast() {
		next.label = "Finish"
	}
	return []control{
		{id: ctlClose, label: "Close"},
		{id: ctlPrev, label: "Previous", disabled: m.seq.IsFirst()},
		{id: ctlMenu, label: "Steps"},
		next,
	}
}

// cycleFocus moves focus delta positions around the ring, skipping
// disabled controls.
func (m *Model) cycleFocus(delta int) {
	ring := m.controls()
	cur := 0
	for i, c := range ring {
		if c.id == m.focus {
			cur = i
			break
		}
	}
	for range ring {
		cur = (cur + delta + len(ring)) % len(ring)
		if !ring[cur].disabled {
			m.focus = ring[cur].id
			return
		}
	}
}

// activate triggers the focused control.
func (m *Model) activate() tea.Cmd {
	ring := m.controls()
	var focused *control
	for i := range ring {
		if ring[i].id == m.focus {
			focused = &ring[i]
			break
		}
	}
	if focused == nil || focused.disabled {
		return nil
	}

	switch focused.id {
	case ctlClose, ctlDone:
		m.closeOnce()
	case ctlPrev:
		return m.commit(m.seq.Prev())
	case ctlMenu:
		m.openMenu()
	case ctlNext:
		if m.seq.IsLast() {
			m.finish()
			return nil
		}
		return m.commit(m.seq.Next())
	case ctlAgain:
		// Completion is terminal for this mount; Start Over on the
		// completion screen closes so the caller can remount fresh.
		m.closeOnce()
	}
	return nil
}
