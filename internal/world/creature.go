package world

import (
	"github.com/vovakirdan/bacon-invasion/internal/action"
	"github.com/vovakirdan/bacon-invasion/internal/collision"
)

// Creature is a living body: health, stun and facing.
type Creature struct {
	Body

	health    float64
	maxHealth float64
	regen     float64 // health per second
	speed     float64 // units per second
	flinch    float64 // stun seconds per point of damage
	direction float64 // -1 facing left, 1 facing right
	stunned   float64
	dead      bool

	stepCooling bool
	onDeath     func()
}

func newCreature(w, h, health, speed float64, lineage collision.Lineage) Creature {
	return Creature{
		Body:      newBody(w, h, lineage, true),
		health:    health,
		maxHealth: health,
		speed:     speed,
		direction: 1,
	}
}

// Health implements Damageable.
func (c *Creature) Health() float64 { return c.health }

// MaxHealth returns the health ceiling.
func (c *Creature) MaxHealth() float64 { return c.maxHealth }

// Dead implements Damageable.
func (c *Creature) Dead() bool { return c.dead }

// Speed implements Mobile.
func (c *Creature) Speed() float64 { return c.speed }

// Direction returns -1 when facing left and 1 when facing right.
func (c *Creature) Direction() float64 { return c.direction }

// Stunned reports whether any stun is active.
func (c *Creature) Stunned() bool { return c.stunned > 0 }

// StunCount returns the number of overlapping stuns.
func (c *Creature) StunCount() int { return int(c.stunned) }

// ChangeHealth adds delta, clamped to the maximum. Reaching zero kills.
func (c *Creature) ChangeHealth(delta float64) {
	if c.dead {
		return
	}
	c.health = min(c.health+delta, c.maxHealth)
	if c.health <= 0 {
		c.health = 0
		c.die()
	}
}

// Damage implements Damageable. A flinching creature is stunned for
// amount*flinch seconds.
func (c *Creature) Damage(amount float64) {
	if c.dead || amount <= 0 {
		return
	}
	c.sound("hit")
	c.ChangeHealth(-amount)
	if !c.dead && c.flinch > 0 {
		c.Stun(amount * c.flinch)
	}
}

// Stun implements Damageable. Stuns stack: each one holds the counter up for
// its own duration.
func (c *Creature) Stun(seconds float64) {
	if c.dead || seconds <= 0 || c.pipe == nil {
		return
	}
	c.stunned++
	c.pipe.Add(action.New(seconds, &action.VarChange{
		Var:        action.FloatVar(&c.stunned),
		Target:     -1,
		Relative:   true,
		Accumulate: true,
		Apply:      action.AtEnd,
		Min:        action.Limit(0),
	}, action.NonBlocking(), action.Unblockable()))
}

// Move implements Mobile. Facing follows the sign of dx.
func (c *Creature) Move(dx, dy float64) collision.Body {
	if dx > 0 {
		c.direction = 1
	} else if dx < 0 {
		c.direction = -1
	}
	return c.move(dx, dy, false)
}

func (c *Creature) die() {
	if c.dead {
		return
	}
	c.dead = true
	c.solid = false
	c.sound("death")
	if c.onDeath != nil {
		c.onDeath()
	}
}

// updateCreature applies regeneration.
func (c *Creature) updateCreature(dt float64) {
	if c.regen > 0 && c.health < c.maxHealth {
		c.ChangeHealth(c.regen * dt)
	}
}

// footstep plays the step sound at most once per step interval.
func (c *Creature) footstep() {
	if c.stepCooling {
		return
	}
	c.stepCooling = true
	c.sound("step")
	c.pipe.Add(action.New(c.world.cfg.Combat.StepInterval, &action.Call{
		When: action.CallAtEnd,
		Fn:   func() { c.stepCooling = false },
	}, action.NonBlocking(), action.Unblockable()))
}
