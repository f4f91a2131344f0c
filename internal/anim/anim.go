// Package anim maps elapsed time to visual keys for frame animations.
package anim

import "math"

// Animation is a list of visual keys shown for FrameTime seconds each.
type Animation struct {
	Frames    []string
	FrameTime float64
	// PingPong plays forward then back without repeating the end frames.
	PingPong bool
	// Repeat loops the cycle; otherwise the animation rests on its final frame.
	Repeat  bool
	Reverse bool
	// Global animations follow the world clock instead of restarting when played.
	Global bool
}

// Static is a single-frame animation.
func Static(key string) Animation {
	return Animation{Frames: []string{key}, FrameTime: 1, Repeat: true, Global: true}
}

// Loop is a repeating animation over frames.
func Loop(frameTime float64, frames ...string) Animation {
	return Animation{Frames: frames, FrameTime: frameTime, Repeat: true}
}

// Cycle returns the number of frame slots in one pass.
func (a Animation) Cycle() int {
	n := len(a.Frames)
	if a.PingPong && n > 1 {
		return 2*n - 2
	}
	return n
}

// Duration returns the length of one pass in seconds.
func (a Animation) Duration() float64 {
	return float64(a.Cycle()) * a.FrameTime
}

// Done reports whether a non-repeating animation has finished at t.
func (a Animation) Done(t float64) bool {
	return !a.Repeat && t >= a.Duration()
}

// Index returns the frame index shown at elapsed time t.
func (a Animation) Index(t float64) int {
	n := len(a.Frames)
	if n == 0 {
		return -1
	}
	if n == 1 || a.FrameTime <= 0 {
		return 0
	}

	cycle := a.Cycle()
	i := int(math.Floor(math.Max(t, 0) / a.FrameTime))
	switch {
	case a.Repeat:
		i %= cycle
	case i >= cycle && a.PingPong:
		i = 0
	case i >= cycle:
		i = cycle - 1
	}

	if a.PingPong && i >= n {
		i = 2*n - 2 - i
	}
	if a.Reverse {
		i = n - 1 - i
	}
	return i
}

// Frame returns the visual key shown at elapsed time t, or "" when empty.
func (a Animation) Frame(t float64) string {
	i := a.Index(t)
	if i < 0 {
		return ""
	}
	return a.Frames[i]
}

// Set is a named collection of animations with one playing at a time.
type Set struct {
	anims   map[string]Animation
	current string
	started float64
}

// NewSet creates a set playing initial.
func NewSet(anims map[string]Animation, initial string) *Set {
	return &Set{anims: anims, current: initial}
}

// Current returns the name of the playing animation.
func (s *Set) Current() string { return s.current }

// Play switches to name, restarting its clock at now when it changes.
// Unknown names are ignored and reported with false.
func (s *Set) Play(name string, now float64) bool {
	if _, ok := s.anims[name]; !ok {
		return false
	}
	if name != s.current {
		s.current = name
		s.started = now
	}
	return true
}

// Restart resets the playing animation's clock.
func (s *Set) Restart(now float64) { s.started = now }

// Elapsed returns the time the current animation has been playing.
func (s *Set) Elapsed(now float64) float64 { return now - s.started }

// Animation returns the playing animation.
func (s *Set) Animation() Animation { return s.anims[s.current] }

// Frame returns the visual key for the playing animation at now.
func (s *Set) Frame(now float64) string {
	a, ok := s.anims[s.current]
	if !ok {
		return s.current
	}
	if a.Global {
		return a.Frame(now)
	}
	return a.Frame(now - s.started)
}
