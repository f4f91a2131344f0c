// Package action provides the cooperative scheduler that drives every
// time-based behaviour: timed actions queued on per-owner pipes, and a
// scheduler that ticks all live pipes once per frame.
//
// An Action moves through Pending, Active and Finished exactly once. What an
// action does at each step is supplied by an optional behaviour value that
// implements any of Starter, Updater, Finisher and Drawer.
package action

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bacon-invasion/internal/core"
)

// epsilon absorbs float drift when a countdown is decremented in many small steps.
const epsilon = 1e-9

// State is the lifecycle position of an Action.
type State int

const (
	Pending State = iota
	Active
	Finished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Starter is implemented by behaviours with a side effect at start.
type Starter interface {
	OnStart(a *Action)
}

// Updater is implemented by behaviours that change something every tick.
// dt is the part of the frame that fell inside the action's duration.
type Updater interface {
	OnUpdate(a *Action, dt float64)
}

// Finisher is implemented by behaviours with terminal side effects.
type Finisher interface {
	OnFinish(a *Action)
}

// Drawer is implemented by behaviours that render a transient visual.
type Drawer interface {
	Draw(a *Action, c Canvas)
}

// Canvas is the rendering collaborator used by overlay and text actions.
type Canvas interface {
	Overlay(c core.Color, alpha float64)
	Text(text string, pos core.Vec, c core.Color, alpha float64)
}

// Action is one timed unit of behaviour queued on a Pipe.
type Action struct {
	duration  float64
	remaining float64
	progress  float64
	state     State

	blocking  bool
	blockable bool

	behavior any
	pipe     *Pipe
}

// Option configures an Action at construction.
type Option func(*Action)

// NonBlocking lets later blockable actions run while this one is active.
func NonBlocking() Option {
	return func(a *Action) { a.blocking = false }
}

// Unblockable makes the action run every tick regardless of earlier blocking actions.
func Unblockable() Option {
	return func(a *Action) { a.blockable = false }
}

// New creates a pending action. Actions block and are blockable unless
// configured otherwise. behavior may be nil for a plain timer.
func New(duration float64, behavior any, opts ...Option) *Action {
	if duration < 0 || math.IsNaN(duration) {
		duration = 0
	}
	a := &Action{
		duration:  duration,
		remaining: duration,
		blocking:  true,
		blockable: true,
		behavior:  behavior,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Duration returns the configured length in seconds.
func (a *Action) Duration() float64 { return a.duration }

// Remaining returns the time left on the countdown.
func (a *Action) Remaining() float64 { return a.remaining }

// Progress returns the completion fraction in [0, 1].
func (a *Action) Progress() float64 { return a.progress }

// State returns the lifecycle state.
func (a *Action) State() State { return a.state }

// Blocking reports whether the action suppresses later blockable actions while active.
func (a *Action) Blocking() bool { return a.blocking }

// Blockable reports whether an earlier blocking action can skip this one.
func (a *Action) Blockable() bool { return a.blockable }

// Behavior returns the behaviour value passed to New.
func (a *Action) Behavior() any { return a.behavior }

// Pipe returns the owning pipe, or nil once the action has been detached.
func (a *Action) Pipe() *Pipe { return a.pipe }

// Start moves a pending action to Active and runs its start hook.
func (a *Action) Start() {
	if a.state != Pending {
		panic(fmt.Sprintf("action: start on %s action", a.state))
	}
	a.state = Active
	if s, ok := a.behavior.(Starter); ok {
		s.OnStart(a)
	}
}

// Update advances the countdown by dt and finishes the action once it runs out.
// A zero-duration action finishes on its first update.
func (a *Action) Update(dt float64) {
	if a.state != Active {
		panic(fmt.Sprintf("action: update on %s action", a.state))
	}

	if a.duration == 0 {
		a.progress = 1
		a.Finish()
		return
	}

	a.remaining -= dt
	step := dt
	if a.remaining < 0 {
		step = dt + a.remaining
	}
	done := a.remaining <= epsilon
	if done {
		a.progress = 1
	} else {
		a.progress = 1 - a.remaining/a.duration
	}

	if u, ok := a.behavior.(Updater); ok {
		u.OnUpdate(a, step)
	}
	if done && a.state == Active {
		a.Finish()
	}
}

// Finish applies terminal side effects and detaches the action from its pipe.
// Pending actions may be finished directly, which is how Pipe.Clear(true)
// drains entries that never ran. Finishing twice panics.
func (a *Action) Finish() {
	if a.state == Finished {
		panic("action: finish called twice")
	}
	a.state = Finished
	a.progress = 1
	if f, ok := a.behavior.(Finisher); ok {
		f.OnFinish(a)
	}
	if a.pipe != nil {
		a.pipe.remove(a)
	}
}

// Draw asks the behaviour to render itself, if it can.
func (a *Action) Draw(c Canvas) {
	if d, ok := a.behavior.(Drawer); ok {
		d.Draw(a, c)
	}
}
