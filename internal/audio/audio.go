// Package audio plays fire-and-forget sound effects. The world only ever calls
// Play(name, pos); a Speaker turns that into a short generated tone, quieter
// the further pos is from the listener.
package audio

import (
	"sync"

	"github.com/vovakirdan/bacon-invasion/internal/core"
)

// Sink receives sound requests. pos is nil for sounds without a location.
type Sink interface {
	Play(name string, pos *core.Vec)
}

// Nop discards every sound.
type Nop struct{}

// Play implements Sink.
func (Nop) Play(string, *core.Vec) {}

// Played is one request seen by a Recorder.
type Played struct {
	Name string
	Pos  *core.Vec
}

// Recorder keeps every request it receives. Useful for tests and replays.
type Recorder struct {
	mu     sync.Mutex
	played []Played
}

// Play implements Sink.
func (r *Recorder) Play(name string, pos *core.Vec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var p *core.Vec
	if pos != nil {
		v := *pos
		p = &v
	}
	r.played = append(r.played, Played{Name: name, Pos: p})
}

// Played returns a copy of the recorded requests.
func (r *Recorder) Played() []Played {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Played, len(r.played))
	copy(out, r.played)
	return out
}

// Count returns how many times name was played.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p.Name == name {
			n++
		}
	}
	return n
}

// Gain returns the playback gain for a sound at pos heard from listener.
// Unpositioned sounds play at full volume; positioned ones fade linearly to
// silence at hearing range.
func Gain(volume, hearing float64, listener core.Vec, pos *core.Vec) float64 {
	if volume <= 0 {
		return 0
	}
	if pos == nil || hearing <= 0 {
		return volume
	}
	d := core.Distance(listener, *pos)
	if d >= hearing {
		return 0
	}
	return volume * (1 - d/hearing)
}
