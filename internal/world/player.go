package world

import (
	"math"

	"github.com/vovakirdan/bacon-invasion/internal/anim"
	"github.com/vovakirdan/bacon-invasion/internal/collision"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/movement"
)

// Player is the creature driven by input. It walks towards a target x that
// each left/right press pushes one stride further.
type Player struct {
	Creature

	targetX   *float64
	inventory *Inventory
}

func newPlayer(w *World) *Player {
	cfg := w.cfg.Player
	p := &Player{
		Creature:  newCreature(cfg.Width, cfg.Height, cfg.Health, cfg.Speed, creatureLineage.Extend(TagPlayer)),
		inventory: NewInventory(cfg.InventorySlots),
	}
	p.flinch = cfg.Flinch
	p.rules = collision.Rules{Tags: map[collision.Tag]bool{
		TagEntity:     false,
		TagLargeEnemy: true,
	}}
	p.anims = anim.NewSet(map[string]anim.Animation{
		"idle": anim.Static("player_idle"),
		"walk": anim.Loop(0.15, "player_walk0", "player_walk1"),
		"dead": anim.Static("player_dead"),
	}, "idle")
	p.onDeath = p.died
	return p
}

// Inventory returns the player's inventory.
func (p *Player) Inventory() *Inventory { return p.inventory }

// Target returns the walk target, if any.
func (p *Player) Target() (float64, bool) {
	if p.targetX == nil {
		return 0, false
	}
	return *p.targetX, true
}

// SetTarget sets the walk target x.
func (p *Player) SetTarget(x float64) { p.targetX = &x }

// ClearTarget drops the walk target.
func (p *Player) ClearTarget() { p.targetX = nil }

func (p *Player) equip(ids []string) {
	for _, id := range ids {
		it, err := p.world.CreateItem(ItemID(id), ItemArgs{})
		if err != nil {
			p.world.logger.Warn("skipping start item", "item", id, "err", err)
			continue
		}
		if err := p.inventory.Add(it); err != nil {
			p.world.logger.Warn("skipping start item", "item", id, "err", err)
		}
	}
}

func (p *Player) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		p.walk(-1)
	}
	if in.Has(core.ActionRight) {
		p.walk(1)
	}
	if in.Has(core.ActionStop) {
		p.targetX = nil
	}
	if in.Has(core.ActionNextItem) {
		p.inventory.Cycle(1)
	}
	if in.Has(core.ActionPrevItem) {
		p.inventory.Cycle(-1)
	}
	if in.Has(core.ActionUse) {
		p.useConsumable()
	}
	if in.Has(core.ActionFire) {
		p.Fire()
	}
	if in.Has(core.ActionInteract) {
		p.Interact()
	}
}

// walk pushes the target one stride in dir, kept inside the level.
func (p *Player) walk(dir float64) {
	x := p.pos.X
	if p.targetX != nil {
		x = *p.targetX
	}
	x += dir * p.world.cfg.Player.Stride
	x = core.ClampF(x, 0, p.level.Width-p.w)
	p.targetX = &x
	p.direction = dir
}

// Update implements Entity.
func (p *Player) Update(dt float64) {
	if p.dead {
		return
	}
	p.updateCreature(dt)
	p.inventory.tick(dt)

	if p.targetX == nil || p.Stunned() {
		p.play("idle")
		return
	}

	tx := *p.targetX
	if tx > p.pos.X {
		p.direction = 1
	} else if tx < p.pos.X {
		p.direction = -1
	}
	before := p.pos
	blocker := movement.MoveTowards(&p.Body, core.V(tx, p.pos.Y), p.speed*dt, false)
	if p.pos != before {
		p.footstep()
		p.play("walk")
	}
	if blocker != nil || math.Abs(p.pos.X-tx) < 1e-9 {
		p.targetX = nil
		p.play("idle")
	}
}

// Interact uses the nearest interactable structure in reach.
func (p *Player) Interact() bool {
	center := p.Center().X
	var (
		best Interactable
		gap  = math.Inf(1)
	)
	for _, e := range p.world.Entities(p.level) {
		it, ok := e.(Interactable)
		if !ok || e == Entity(p) {
			continue
		}
		b := e.Base()
		d := math.Abs(b.Center().X - center)
		if d <= b.w/2+it.InteractRange() && d < gap {
			best, gap = it, d
		}
	}
	if best == nil {
		return false
	}
	best.Interact(p)
	return true
}

// Fire shoots the selected gun towards the facing direction.
func (p *Player) Fire() bool {
	g, ok := p.inventory.Selected().(*Gun)
	if !ok {
		return false
	}
	return g.Fire(p)
}

// useConsumable selects the first consumable, which uses it.
func (p *Player) useConsumable() {
	for i, it := range p.inventory.slots {
		if _, ok := it.(Consumable); ok {
			if err := p.inventory.Select(i, p); err != nil {
				p.world.logger.Warn("cannot use item", "slot", i, "err", err)
			}
			return
		}
	}
}

func (p *Player) died() {
	w := p.world
	w.over = true
	p.targetX = nil
	p.play("dead")
	w.say("You died", core.V(w.active.Width/2, w.active.Height/4))
	w.logger.Info("player died", "level", w.active.Name, "kills", w.kills, "elapsed", w.clock)
}
