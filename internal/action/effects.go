package action

import "github.com/vovakirdan/bacon-invasion/internal/core"

// CallTime selects when a Call fires.
type CallTime int

const (
	CallAtStart CallTime = iota
	CallAtEnd
)

// Call fires Fn once, at start or at finish. With CallAtEnd the action's
// duration is the delay before firing.
type Call struct {
	Fn   func()
	When CallTime
}

// After is shorthand for a deferred call that fires once delay has elapsed.
func After(delay float64, fn func(), opts ...Option) *Action {
	return New(delay, &Call{Fn: fn, When: CallAtEnd}, opts...)
}

func (c *Call) OnStart(*Action) {
	if c.When == CallAtStart && c.Fn != nil {
		c.Fn()
	}
}

func (c *Call) OnFinish(*Action) {
	if c.When == CallAtEnd && c.Fn != nil {
		c.Fn()
	}
}

// Fade selects the direction of an Overlay.
type Fade int

const (
	FadeIn  Fade = iota // transparent to MaxAlpha
	FadeOut             // MaxAlpha to transparent
)

// Overlay tints the whole screen with a colour whose opacity follows the
// action's progress.
type Overlay struct {
	Color    core.Color
	Fade     Fade
	MaxAlpha float64
}

// Alpha returns the current opacity in [0, MaxAlpha].
func (o *Overlay) Alpha(a *Action) float64 {
	full := o.MaxAlpha
	if full <= 0 {
		full = 1
	}
	if a.State() == Pending {
		if o.Fade == FadeOut {
			return full
		}
		return 0
	}
	if o.Fade == FadeOut {
		return core.Lerp(full, 0, a.Progress())
	}
	return core.Lerp(0, full, a.Progress())
}

func (o *Overlay) Draw(a *Action, c Canvas) {
	c.Overlay(o.Color, o.Alpha(a))
}

// Text shows a line of text that fades out over the action's duration.
type Text struct {
	Text  string
	Pos   core.Vec
	Color core.Color
}

// Alpha returns the current opacity in [0, 1].
func (t *Text) Alpha(a *Action) float64 {
	return core.Lerp(1, 0, a.Progress())
}

func (t *Text) Draw(a *Action, c Canvas) {
	c.Text(t.Text, t.Pos, t.Color, t.Alpha(a))
}
