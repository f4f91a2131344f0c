// Package movement moves bodies through a collision.Space in unit sub-steps,
// stopping at the first blocker.
package movement

import (
	"math"

	"github.com/vovakirdan/bacon-invasion/internal/collision"
	"github.com/vovakirdan/bacon-invasion/internal/core"
)

// Mover is a body that the resolver can reposition.
type Mover interface {
	collision.Body
	Position() core.Vec
	SetPosition(p core.Vec)
	// Space returns the level the mover collides in, or nil to move freely.
	Space() *collision.Space
	Rules() collision.Rules
	Exceptions() []collision.Body
}

// CollisionRecorder is implemented by movers that remember what last blocked them.
type CollisionRecorder interface {
	SetLastCollision(b collision.Body)
}

// Move displaces m by (dx, dy), checking for collisions at every unit
// sub-step. On a block the mover stays at the last accepted sub-step and the
// blocker is returned. On success the mover lands exactly at start+(dx, dy)
// and Move returns nil. A zero displacement is a no-op.
func Move(m Mover, dx, dy float64, detailed bool) collision.Body {
	if dx == 0 && dy == 0 {
		return nil
	}

	start := m.Position()
	space := m.Space()
	if space == nil {
		m.SetPosition(start.Add(core.V(dx, dy)))
		return nil
	}

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	ax := dx / float64(steps)
	ay := dy / float64(steps)
	box := m.Box()
	rules := m.Rules()
	exceptions := m.Exceptions()

	for i := 1; i <= steps; i++ {
		// Positions are derived from the step index so rollback is exact.
		ox, oy := ax*float64(i), ay*float64(i)
		blocker := space.Query(collision.Query{
			Box:        box.Moved(ox, oy),
			Mover:      m,
			Exceptions: exceptions,
			Rules:      rules,
			Detailed:   detailed,
		})
		if blocker != nil {
			m.SetPosition(start.Add(core.V(ax*float64(i-1), ay*float64(i-1))))
			if r, ok := m.(CollisionRecorder); ok {
				r.SetLastCollision(blocker)
			}
			return blocker
		}
	}

	m.SetPosition(start.Add(core.V(dx, dy)))
	return nil
}

// MoveTowards moves m up to speed units along the straight line to target.
// Within speed of the target it moves exactly onto it.
func MoveTowards(m Mover, target core.Vec, speed float64, detailed bool) collision.Body {
	pos := m.Position()
	if core.Distance(pos, target) <= speed {
		d := target.Sub(pos)
		if b := Move(m, d.X, d.Y, detailed); b != nil {
			return b
		}
		m.SetPosition(target)
		return nil
	}
	angle := core.Angle(pos, target)
	dx := core.Round(math.Cos(angle)*speed, 6)
	dy := core.Round(math.Sin(angle)*speed, 6)
	return Move(m, dx, dy, detailed)
}

// MoveTowardsAxes approaches target one axis at a time: first horizontally,
// then vertically from wherever the first call stopped. Each call is
// independent, so a block on one axis still lets the other advance. The
// horizontal blocker wins when both axes are blocked.
func MoveTowardsAxes(m Mover, target core.Vec, speed float64) collision.Body {
	bx := MoveTowards(m, core.V(target.X, m.Position().Y), speed, false)
	by := MoveTowards(m, core.V(m.Position().X, target.Y), speed, false)
	if bx != nil {
		return bx
	}
	return by
}
