package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/registry"
)

// ItemID identifies an item constructor.
type ItemID string

const (
	ItemHandgun      ItemID = "handgun"
	ItemShotgun      ItemID = "shotgun"
	ItemStungun      ItemID = "stungun"
	ItemRevolver     ItemID = "revolver"
	ItemMedkit       ItemID = "medkit"
	ItemHandgunAmmo  ItemID = "handgun_ammo"
	ItemShotgunAmmo  ItemID = "shotgun_ammo"
	ItemRevolverAmmo ItemID = "revolver_ammo"
	ItemKey          ItemID = "key"
)

// Item is anything the inventory can hold.
type Item interface {
	ID() ItemID
	Name() string
}

// Stackable items share one slot.
type Stackable interface {
	Item
	Count() int
	Stack(n int)
}

// Consumable items are used up when selected.
type Consumable interface {
	Item
	// Use applies the item and reports whether it was spent.
	Use(p *Player) bool
}

// ItemArgs are passed to item constructors.
type ItemArgs struct {
	Config config.GameConfig
	Name   string // display name override, used by keys
}

var items = registry.New[ItemID, ItemArgs, Item]()

func init() {
	for _, id := range []ItemID{ItemHandgun, ItemShotgun, ItemStungun, ItemRevolver} {
		items.Register(id, string(id), newGun(id))
	}
	items.Register(ItemMedkit, "medkit", func(a ItemArgs) (Item, error) {
		return &Medkit{stack: stack{id: ItemMedkit, name: "medkit", count: 1}, heal: a.Config.Items.MedkitHeal}, nil
	})
	for id, pick := range map[ItemID]func(config.ItemsConfig) config.AmmoConfig{
		ItemHandgunAmmo:  func(c config.ItemsConfig) config.AmmoConfig { return c.HandgunAmmo },
		ItemShotgunAmmo:  func(c config.ItemsConfig) config.AmmoConfig { return c.ShotgunAmmo },
		ItemRevolverAmmo: func(c config.ItemsConfig) config.AmmoConfig { return c.RevolverAmmo },
	} {
		items.Register(id, string(id), func(a ItemArgs) (Item, error) {
			ammo := pick(a.Config.Items)
			return &AmmoPack{id: id, gun: ammo.Gun, amount: ammo.Amount}, nil
		})
	}
	items.Register(ItemKey, "key", func(a ItemArgs) (Item, error) {
		if a.Name == "" {
			return nil, fmt.Errorf("world: key needs a name")
		}
		return &Key{id: ItemKey, name: a.Name}, nil
	})
}

// ItemKinds lists the registered item ids.
func ItemKinds() []registry.Info[ItemID] { return items.List() }

// CreateItem builds an item from the registry with the World's tuning.
func (w *World) CreateItem(id ItemID, args ItemArgs) (Item, error) {
	args.Config = w.cfg
	it, err := items.Create(id, args)
	if err != nil {
		return nil, fmt.Errorf("world: cannot create item: %w", err)
	}
	return it, nil
}

type stack struct {
	id    ItemID
	name  string
	count int
}

func (s *stack) ID() ItemID   { return s.id }
func (s *stack) Name() string { return s.name }
func (s *stack) Count() int   { return s.count }
func (s *stack) Stack(n int)  { s.count += n }

// Medkit restores health.
type Medkit struct {
	stack
	heal float64
}

// Use implements Consumable. A medkit is kept when health is already full.
func (m *Medkit) Use(p *Player) bool {
	if p.dead || p.health >= p.maxHealth {
		return false
	}
	p.ChangeHealth(m.heal)
	p.sound("heal")
	return true
}

// Key opens key doors asking for its name.
type Key struct {
	id   ItemID
	name string
}

func (k *Key) ID() ItemID   { return k.id }
func (k *Key) Name() string { return k.name }

// AmmoPack refills a gun when picked up.
type AmmoPack struct {
	id     ItemID
	gun    string
	amount float64
}

func (a *AmmoPack) ID() ItemID   { return a.id }
func (a *AmmoPack) Name() string { return string(a.id) }

// Gun returns the name of the gun the pack loads.
func (a *AmmoPack) Gun() string { return a.gun }

// Amount returns the rounds in the pack.
func (a *AmmoPack) Amount() float64 { return a.amount }

// Gun fires projectiles swept through the holder's level.
type Gun struct {
	id       ItemID
	cfg      config.GunConfig
	ammo     float64
	cooldown float64
}

func newGun(id ItemID) func(ItemArgs) (Item, error) {
	return func(a ItemArgs) (Item, error) {
		cfg, ok := a.Config.Guns.Gun(string(id))
		if !ok {
			return nil, fmt.Errorf("world: no tuning for gun %s", id)
		}
		return &Gun{id: id, cfg: cfg, ammo: cfg.Ammo}, nil
	}
}

func (g *Gun) ID() ItemID   { return g.id }
func (g *Gun) Name() string { return string(g.id) }

// Ammo returns the rounds left.
func (g *Gun) Ammo() float64 { return g.ammo }

// Cooldown returns the seconds until the gun can fire again.
func (g *Gun) Cooldown() float64 { return g.cooldown }

// Refill adds rounds up to the gun's capacity.
func (g *Gun) Refill(n float64) {
	g.ammo = min(g.ammo+n, g.cfg.Ammo)
}

func (g *Gun) tick(dt float64, selected bool) {
	g.cooldown = max(0, g.cooldown-dt)
	if selected && g.cfg.Recharge > 0 {
		g.Refill(g.cfg.Recharge * dt)
	}
}

// Fire shoots from holder towards its facing direction. It reports whether
// a shot went off.
func (g *Gun) Fire(holder *Player) bool {
	if g.cooldown > 0 {
		return false
	}
	if g.ammo < 1 {
		holder.sound("empty")
		return false
	}
	g.ammo--
	g.cooldown = g.cfg.Cooldown

	if g.cfg.Damage == 0 && g.cfg.Stun > 0 {
		holder.sound("stun")
	} else {
		holder.sound("fire")
	}

	w := holder.world
	origin := core.V(holder.Center().X, holder.pos.Y+holder.h/3)
	base := 0.0
	if holder.direction < 0 {
		base = math.Pi
	}
	n := g.cfg.Projectiles
	for i := 0; i < n; i++ {
		angle := base
		if n > 1 {
			angle += g.cfg.Spread * (float64(i)/float64(n-1) - 0.5)
		}
		if g.cfg.Spread > 0 {
			angle += (w.rng.Float64() - 0.5) * g.cfg.Spread / float64(n)
		}
		target := origin.Add(core.V(math.Cos(angle), math.Sin(angle)).Scale(g.cfg.Range))
		g.shoot(holder, origin, target)
	}
	return true
}

// shoot sweeps one projectile and applies the hit.
func (g *Gun) shoot(holder *Player, origin, target core.Vec) {
	w := holder.world
	p := newProjectile(&holder.Body)
	p.pos = origin
	w.add(p, holder.level)
	hit := p.sweep(target, g.cfg.Range)
	w.Remove(p)

	e, ok := entityOf(hit)
	if !ok {
		return
	}
	d, ok := e.(Damageable)
	if !ok || d.Dead() {
		return
	}
	d.Damage(g.cfg.Damage)
	if g.cfg.Stun > 0 {
		d.Stun(g.cfg.Stun)
	}
}
