package world

import (
	"github.com/vovakirdan/bacon-invasion/internal/action"
	"github.com/vovakirdan/bacon-invasion/internal/anim"
	"github.com/vovakirdan/bacon-invasion/internal/collision"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/movement"
)

// Entity is anything the World updates each frame.
type Entity interface {
	Base() *Body
	Update(dt float64)
}

// Damageable entities take damage and can be stunned.
type Damageable interface {
	Entity
	Damage(amount float64)
	Stun(seconds float64)
	Health() float64
	Dead() bool
}

// Mobile entities move through their level.
type Mobile interface {
	Entity
	Move(dx, dy float64) collision.Body
	Speed() float64
}

// Interactable entities respond to the player's interact key.
type Interactable interface {
	Entity
	Interact(p *Player)
	// InteractRange is the extra horizontal reach beyond half the width.
	InteractRange() float64
}

// TimedEntity entities own an action pipe.
type TimedEntity interface {
	Entity
	Pipe() *action.Pipe
}

// InactiveUpdater entities keep running while their level is not active.
type InactiveUpdater interface {
	UpdateInactive(dt float64)
}

// LevelObserver entities hear about the player arriving or leaving.
type LevelObserver interface {
	LevelEntered()
	LevelLeft()
}

// Visual entities expose a visual key for the renderer.
type Visual interface {
	Visual(now float64) string
}

// Body is the state every entity shares: geometry, tags, collision
// behaviour, a pipe and its place in the World. It is what gets registered
// in a level's collision space.
type Body struct {
	world  *World
	owner  Entity
	handle Handle
	level  *Level

	pos     core.Vec
	w, h    float64
	lineage collision.Lineage
	solid   bool
	mask    *collision.Mask

	rules      collision.Rules
	exceptions []collision.Body
	last       collision.Body

	pipe    *action.Pipe
	anims   *anim.Set
	removed bool
}

func newBody(w, h float64, lineage collision.Lineage, solid bool) Body {
	return Body{w: w, h: h, lineage: lineage, solid: solid}
}

// Base implements Entity.
func (b *Body) Base() *Body { return b }

// Entity returns the entity that owns this body.
func (b *Body) Entity() Entity { return b.owner }

// Handle returns the entity's handle.
func (b *Body) Handle() Handle { return b.handle }

// World returns the owning world.
func (b *Body) World() *World { return b.world }

// Level returns the level the body is in.
func (b *Body) Level() *Level { return b.level }

// Removed reports whether the entity has left the world.
func (b *Body) Removed() bool { return b.removed }

// Box implements collision.Body.
func (b *Body) Box() core.Box { return core.NewBox(b.pos.X, b.pos.Y, b.w, b.h) }

// Lineage implements collision.Body.
func (b *Body) Lineage() collision.Lineage { return b.lineage }

// Solid implements collision.Body.
func (b *Body) Solid() bool { return b.solid && !b.removed }

// Mask implements collision.Body.
func (b *Body) Mask() *collision.Mask { return b.mask }

// Kind returns the most specific tag.
func (b *Body) Kind() collision.Tag {
	t, _ := b.lineage.Kind()
	return t
}

// Position implements movement.Mover.
func (b *Body) Position() core.Vec { return b.pos }

// SetPosition implements movement.Mover.
func (b *Body) SetPosition(p core.Vec) { b.pos = p }

// Size returns width and height.
func (b *Body) Size() (float64, float64) { return b.w, b.h }

// Center returns the centre of the body's box.
func (b *Body) Center() core.Vec { return b.Box().Center() }

// Space implements movement.Mover.
func (b *Body) Space() *collision.Space {
	if b.level == nil {
		return nil
	}
	return b.level.space
}

// Rules implements movement.Mover.
func (b *Body) Rules() collision.Rules { return b.rules }

// Exceptions implements movement.Mover.
func (b *Body) Exceptions() []collision.Body { return b.exceptions }

// SetLastCollision implements movement.CollisionRecorder.
func (b *Body) SetLastCollision(c collision.Body) { b.last = c }

// LastCollision returns the last body that blocked this one.
func (b *Body) LastCollision() collision.Body { return b.last }

// Pipe returns the entity's timeline.
func (b *Body) Pipe() *action.Pipe { return b.pipe }

// Visual implements Visual.
func (b *Body) Visual(now float64) string {
	if b.anims == nil {
		return TagName(b.Kind())
	}
	return b.anims.Frame(now)
}

// play switches animation, keeping the clock when it is already playing.
func (b *Body) play(name string) {
	if b.anims != nil {
		b.anims.Play(name, b.world.clock)
	}
}

// sound plays name at the body's centre.
func (b *Body) sound(name string) {
	c := b.Center()
	b.world.sink.Play(name, &c)
}

// move displaces the body through its level.
func (b *Body) move(dx, dy float64, detailed bool) collision.Body {
	return movement.Move(b, dx, dy, detailed)
}

// floorY returns the y that stands a body of height h on the level floor.
func (l *Level) floorY(h float64) float64 { return l.Height - h }

// entityOf resolves a collision body back to its entity.
func entityOf(c collision.Body) (Entity, bool) {
	b, ok := c.(*Body)
	if !ok || b.owner == nil {
		return nil, false
	}
	return b.owner, true
}

// horizontalGap is the distance between two boxes along x, 0 when they overlap.
func horizontalGap(a, b core.Box) float64 {
	if a.Right() <= b.X {
		return b.X - a.Right()
	}
	if b.Right() <= a.X {
		return a.X - b.Right()
	}
	return 0
}
