package world

import (
	"github.com/vovakirdan/bacon-invasion/internal/collision"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/movement"
)

const (
	pickupSize = 8
	signWidth  = 12
	signHeight = 16
)

// Pickup is an item lying in a level.
type Pickup struct {
	Body

	item ItemID
	name string
}

func newPickup(item ItemID, name string) *Pickup {
	return &Pickup{
		Body: newBody(pickupSize, pickupSize, structureLineage.Extend(TagPickup), false),
		item: item,
		name: name,
	}
}

// Item returns the id of the item that will be picked up.
func (pk *Pickup) Item() ItemID { return pk.item }

// Visual implements Visual.
func (pk *Pickup) Visual(float64) string { return "pickup_" + string(pk.item) }

// InteractRange implements Interactable.
func (pk *Pickup) InteractRange() float64 { return pk.world.cfg.Door.InteractMargin }

// Interact implements Interactable. Ammunition loads the matching gun
// directly; everything else goes into the inventory.
func (pk *Pickup) Interact(p *Player) {
	w := pk.world
	it, err := w.CreateItem(pk.item, ItemArgs{Name: pk.name})
	if err != nil {
		w.logger.Warn("pickup failed", "item", pk.item, "err", err)
		return
	}
	label := core.V(pk.Center().X, pk.pos.Y-8)

	if ammo, ok := it.(*AmmoPack); ok {
		g, ok := p.inventory.Gun(ammo.Gun())
		if !ok {
			w.say("No "+ammo.Gun()+" to load", label)
			return
		}
		g.Refill(ammo.Amount())
	} else if err := p.inventory.Add(it); err != nil {
		w.say("Inventory full", label)
		return
	}

	pk.sound("pickup")
	w.say("Picked up "+it.Name(), label)
	w.Remove(pk)
}

// Update implements Entity.
func (pk *Pickup) Update(float64) {}

// Sign shows a line of text when read.
type Sign struct {
	Body

	text string
}

func newSign(text string) *Sign {
	return &Sign{
		Body: newBody(signWidth, signHeight, structureLineage.Extend(TagSign), false),
		text: text,
	}
}

// Text returns the sign's message.
func (s *Sign) Text() string { return s.text }

// InteractRange implements Interactable.
func (s *Sign) InteractRange() float64 { return s.world.cfg.Door.InteractMargin }

// Interact implements Interactable.
func (s *Sign) Interact(*Player) {
	s.world.say(s.text, core.V(s.Center().X, s.pos.Y-8))
}

// Update implements Entity.
func (s *Sign) Update(float64) {}

// Projectile is a one-unit body swept along a shot's path.
type Projectile struct {
	Body
}

func newProjectile(holder *Body) *Projectile {
	p := &Projectile{Body: newBody(1, 1, entityLineage.Extend(TagProjectile), false)}
	p.mask = collision.FullMask(1, 1)
	p.rules = collision.Rules{Tags: map[collision.Tag]bool{
		TagEntity:   false,
		TagCreature: true,
	}}
	p.exceptions = []collision.Body{holder}
	return p
}

// sweep moves the projectile up to reach units towards target with
// pixel-level checks and returns what it hit.
func (p *Projectile) sweep(target core.Vec, reach float64) collision.Body {
	return movement.MoveTowards(&p.Body, target, reach, true)
}

// Update implements Entity.
func (p *Projectile) Update(float64) {}
