package world

import (
	"github.com/vovakirdan/bacon-invasion/internal/collision"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/levels"
)

// Level is one room of the station: a rectangle on the world map with its
// own collision space.
type Level struct {
	ID        string
	Name      string
	X, Y      int // world map cell
	Width     float64
	Height    float64
	ShowSpace bool

	space *collision.Space
	doors []*Door
}

func newLevel(def levels.Level) *Level {
	l := &Level{
		ID:        def.ID,
		Name:      def.Name,
		X:         def.X,
		Y:         def.Y,
		Width:     def.Width,
		Height:    def.Height,
		ShowSpace: def.ShowSpace,
	}
	l.space = collision.NewSpace(core.NewBox(0, 0, def.Width, def.Height), nil)
	return l
}

// Space returns the level's collision space.
func (l *Level) Space() *collision.Space { return l.space }

// Bounds returns the level rectangle.
func (l *Level) Bounds() core.Box { return l.space.Bounds() }

// Doors returns the doors placed in the level.
func (l *Level) Doors() []*Door {
	out := make([]*Door, len(l.doors))
	copy(out, l.doors)
	return out
}

// resolveX turns a structure coordinate into a level x: omitted values use
// fallback, negative values count from the right edge.
func (l *Level) resolveX(x *float64, fallback float64) float64 {
	if x == nil {
		return fallback
	}
	if *x < 0 {
		return l.Width + *x
	}
	return *x
}

// resolveY is resolveX for the vertical axis; omitted values stand on the floor.
func (l *Level) resolveY(y *float64, h float64) float64 {
	if y == nil {
		return l.floorY(h)
	}
	if *y < 0 {
		return l.Height + *y
	}
	return *y
}
