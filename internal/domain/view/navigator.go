package view

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/eishan-studio/eishan/internal/domain/project"
)

// Default transition delays. The reveal delay is measured from the start of
// the transition, not from the commit, so the overlay dwells for a minimum
// time regardless of how fast the swap executes.
const (
	DefaultCoverDelay  = 800 * time.Millisecond
	DefaultRevealDelay = 1200 * time.Millisecond
)

// Phase is the transition sub-machine state: Idle -> Covering -> (commit)
// -> Revealing -> Idle. A request is dropped unless the phase is Idle.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseCovering  Phase = "covering"
	PhaseRevealing Phase = "revealing"
)

// SessionSource reports whether a session is currently present. The
// navigator consults presence only; it never reads or mutates the session.
type SessionSource interface {
	Present() bool
}

// Lifecycle receives enter/exit callbacks around each committed screen swap.
// Exit fires for the outgoing state before Enter fires for the incoming one,
// once per commit. Implementations carry per-screen setup such as scroll
// behavior and must be idempotent.
type Lifecycle interface {
	Exit(State)
	Enter(State)
}

// EventType tags navigator observer events.
type EventType string

const (
	// EventCover fires when the overlay is shown and a transition begins.
	EventCover EventType = "cover"
	// EventCommit fires when the visible state is swapped.
	EventCommit EventType = "commit"
	// EventReveal fires when the overlay is dismissed.
	EventReveal EventType = "reveal"
)

// Event describes a navigator state change delivered to observers.
type Event struct {
	Type       EventType
	State      State
	Transition *Transition
}

// Snapshot is a point-in-time copy of the navigator for read-side consumers.
type Snapshot struct {
	State   State
	Phase   Phase
	Overlay *Transition
	// Epoch increments on every commit; clients reset scroll when it changes.
	Epoch uint64
}

// Options configures a Navigator.
type Options struct {
	CoverDelay  time.Duration // zero means DefaultCoverDelay
	RevealDelay time.Duration // zero means DefaultRevealDelay
	Scheduler   Scheduler     // nil means the runtime timer
	Sessions    SessionSource // nil means no session is ever present
	Logger      *slog.Logger
}

// Navigator owns the single source of truth for the visible screen. Every
// navigation request passes through the access gate, then plays a two-phase
// timed transition: the overlay covers the screen, the state is swapped at
// the cover delay, and the overlay lifts at the reveal delay. At most one
// transition is in flight; requests during that window are dropped, never
// queued.
type Navigator struct {
	cover    time.Duration
	reveal   time.Duration
	sched    Scheduler
	sessions SessionSource
	logger   *slog.Logger

	mu         sync.Mutex
	state      State
	phase      Phase
	current    *Transition
	epoch      uint64
	lifecycles []Lifecycle
	observers  []func(Event)
}

// NewNavigator creates a navigator starting at the home screen.
func NewNavigator(opts Options) (*Navigator, error) {
	cover := opts.CoverDelay
	if cover == 0 {
		cover = DefaultCoverDelay
	}
	reveal := opts.RevealDelay
	if reveal == 0 {
		reveal = DefaultRevealDelay
	}
	if reveal <= cover {
		return nil, ErrInvalidDelays
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewScheduler()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Navigator{
		cover:    cover,
		reveal:   reveal,
		sched:    sched,
		sessions: opts.Sessions,
		logger:   logger,
		state:    State{Screen: ScreenHome},
		phase:    PhaseIdle,
	}, nil
}

// AddLifecycle registers enter/exit hooks for committed screen swaps.
func (n *Navigator) AddLifecycle(lc Lifecycle) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lifecycles = append(n.lifecycles, lc)
}

// Watch registers an observer for navigator events.
func (n *Navigator) Watch(fn func(Event)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, fn)
}

// Request asks for a navigation to a named screen. It reports whether the
// transition was accepted; requests made while another transition is in
// flight are silently dropped.
func (n *Navigator) Request(target Screen) bool {
	if _, ok := screenLabels[target]; !ok {
		return false
	}
	effective := Gate(target, n.sessionPresent())
	if effective != target {
		n.logger.Debug("protected screen downgraded", "target", target, "effective", effective)
	}
	return n.begin(State{Screen: effective})
}

// RequestProject navigates to the detail screen for a published project.
// Project detail is public, so the access gate does not apply.
func (n *Navigator) RequestProject(rec *project.Record) bool {
	if rec == nil {
		return false
	}
	return n.begin(State{Screen: ScreenProject, Project: rec})
}

// OnSessionChange implements the reactive redirect: when a session appears
// while an auth screen is active, the navigator autonomously requests the
// dashboard. The request is subject to the in-flight guard and is not
// retried if dropped. Session loss never moves the screen.
func (n *Navigator) OnSessionChange(present bool) {
	if !present {
		return
	}
	n.mu.Lock()
	screen := n.state.Screen
	n.mu.Unlock()
	if screen != ScreenLogin && screen != ScreenRegister {
		return
	}
	if !n.Request(ScreenDashboard) {
		n.logger.Debug("post-login redirect dropped, transition in flight")
	}
}

// State returns the active view state.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Phase returns the transition phase.
func (n *Navigator) Phase() Phase {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.phase
}

// Overlay returns the in-flight transition, if any.
func (n *Navigator) Overlay() (Transition, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Transition{}, false
	}
	return *n.current, true
}

// Snapshot returns a consistent copy of the navigator state.
func (n *Navigator) Snapshot() Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	snap := Snapshot{State: n.state, Phase: n.phase, Epoch: n.epoch}
	if n.current != nil {
		tr := *n.current
		snap.Overlay = &tr
	}
	return snap
}

func (n *Navigator) sessionPresent() bool {
	return n.sessions != nil && n.sessions.Present()
}

func (n *Navigator) begin(next State) bool {
	n.mu.Lock()
	if n.phase != PhaseIdle {
		n.mu.Unlock()
		n.logger.Debug("navigation dropped, transition in flight", "target", next.Screen)
		return false
	}
	tr := &Transition{To: next, Label: next.Label()}
	n.phase = PhaseCovering
	n.current = tr
	// Both phases are scheduled from the same instant; once started they run
	// to completion regardless of later events.
	n.sched.AfterFunc(n.cover, n.commit)
	n.sched.AfterFunc(n.reveal, n.dismiss)
	n.mu.Unlock()

	n.logger.Info("transition started", "target", next.Screen, "label", tr.Label)
	n.emit(Event{Type: EventCover, State: n.State(), Transition: tr})
	return true
}

func (n *Navigator) commit() {
	n.mu.Lock()
	if n.phase != PhaseCovering || n.current == nil {
		n.mu.Unlock()
		return
	}
	old := n.state
	n.state = n.current.To
	n.phase = PhaseRevealing
	n.epoch++
	tr := *n.current
	next := n.state
	lifecycles := slices.Clone(n.lifecycles)
	n.mu.Unlock()

	for _, lc := range lifecycles {
		lc.Exit(old)
	}
	for _, lc := range lifecycles {
		lc.Enter(next)
	}
	n.emit(Event{Type: EventCommit, State: next, Transition: &tr})
}

func (n *Navigator) dismiss() {
	n.mu.Lock()
	if n.phase != PhaseRevealing {
		n.mu.Unlock()
		return
	}
	n.phase = PhaseIdle
	n.current = nil
	state := n.state
	n.mu.Unlock()

	n.emit(Event{Type: EventReveal, State: state})
}

func (n *Navigator) emit(ev Event) {
	n.mu.Lock()
	observers := slices.Clone(n.observers)
	n.mu.Unlock()
	for _, fn := range observers {
		fn(ev)
	}
}
