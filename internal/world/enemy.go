package world

import (
	"fmt"

	"github.com/vovakirdan/bacon-invasion/internal/action"
	"github.com/vovakirdan/bacon-invasion/internal/anim"
	"github.com/vovakirdan/bacon-invasion/internal/collision"
	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/movement"
	"github.com/vovakirdan/bacon-invasion/internal/registry"
)

// EnemyKind identifies an enemy constructor.
type EnemyKind string

const (
	BasicEnemy   EnemyKind = "basic_enemy"
	LargeEnemy   EnemyKind = "large_enemy"
	RecoverEnemy EnemyKind = "recover_enemy"
)

// SpawnArgs place a new enemy. A nil Y stands it on the floor.
type SpawnArgs struct {
	World *World
	Level *Level
	X     float64
	Y     *float64
}

var enemies = registry.New[EnemyKind, SpawnArgs, Entity]()

func init() {
	enemies.Register(BasicEnemy, "Bacon strip", newEnemy(BasicEnemy, TagBasicEnemy))
	enemies.Register(LargeEnemy, "Slab", newEnemy(LargeEnemy, TagLargeEnemy))
	enemies.Register(RecoverEnemy, "Crispy strip", newEnemy(RecoverEnemy, TagRecoverEnemy))
}

// EnemyKinds lists the registered enemy kinds.
func EnemyKinds() []registry.Info[EnemyKind] { return enemies.List() }

// SpawnEnemy builds an enemy through the registry and adds it to args.Level.
func (w *World) SpawnEnemy(kind EnemyKind, args SpawnArgs) (*Enemy, error) {
	args.World = w
	if args.Level == nil {
		return nil, fmt.Errorf("world: cannot spawn %s: %w", kind, ErrLevelNotFound)
	}
	e, err := enemies.Create(kind, args)
	if err != nil {
		return nil, fmt.Errorf("world: cannot spawn %s: %w", kind, err)
	}
	w.add(e, args.Level)
	return e.(*Enemy), nil
}

// Enemy is a hostile creature. Its behaviour is chosen by kind.
type Enemy struct {
	Creature

	kind      EnemyKind
	cfg       config.EnemyConfig
	attacking bool
	patrol    float64
}

func newEnemy(kind EnemyKind, tag collision.Tag) func(SpawnArgs) (Entity, error) {
	return func(a SpawnArgs) (Entity, error) {
		cfg, ok := a.World.cfg.Enemies.Kind(string(kind))
		if !ok {
			return nil, fmt.Errorf("world: no tuning for %s", kind)
		}
		e := &Enemy{
			Creature: newCreature(cfg.Width, cfg.Height, cfg.Health, cfg.Speed, enemyLineage.Extend(tag)),
			kind:     kind,
			cfg:      cfg,
			patrol:   1,
		}
		e.regen = cfg.Regen
		e.flinch = cfg.Flinch
		e.rules = collision.Rules{Tags: map[collision.Tag]bool{
			TagEntity: false,
			TagPlayer: true,
		}}
		e.mask = creatureMask(cfg.Width, cfg.Height)
		e.pos = core.V(a.X, a.Level.resolveY(a.Y, cfg.Height))
		e.anims = anim.NewSet(map[string]anim.Animation{
			"idle":   anim.Static(string(kind)),
			"walk":   anim.Loop(0.2, string(kind)+"_walk0", string(kind)+"_walk1"),
			"attack": anim.Static(string(kind) + "_attack"),
		}, "idle")
		e.onDeath = e.died
		return e, nil
	}
}

// EnemyKind returns the enemy kind.
func (e *Enemy) EnemyKind() EnemyKind { return e.kind }

// Attacking reports whether an attack windup is running.
func (e *Enemy) Attacking() bool { return e.attacking }

// Update implements Entity: chase the player one axis at a time and attack
// on contact.
func (e *Enemy) Update(dt float64) {
	if e.dead {
		return
	}
	e.updateCreature(dt)
	if e.Stunned() || e.attacking {
		return
	}

	p := e.world.player
	if p.dead || p.level != e.level {
		e.play("idle")
		return
	}

	target := core.V(p.pos.X, p.Box().Bottom()-e.h)
	if target.X > e.pos.X {
		e.direction = 1
	} else if target.X < e.pos.X {
		e.direction = -1
	}
	before := e.pos
	blocker := movement.MoveTowardsAxes(&e.Body, target, e.speed*dt)
	if e.pos != before {
		e.footstep()
		e.play("walk")
	} else {
		e.play("idle")
	}
	if blocker == collision.Body(&p.Body) && e.cfg.Attacks {
		e.attack()
	}
}

// UpdateInactive implements InactiveUpdater. Large enemies patrol their
// empty level, turning round whenever something blocks them.
func (e *Enemy) UpdateInactive(dt float64) {
	if e.dead || e.kind != LargeEnemy {
		return
	}
	e.updateCreature(dt)
	if e.Stunned() {
		return
	}
	if e.Move(e.patrol*e.speed*dt, 0) != nil {
		e.patrol = -e.patrol
	}
}

// attack starts a blocking windup that strikes when it finishes.
func (e *Enemy) attack() {
	e.attacking = true
	e.play("attack")
	e.pipe.Add(action.New(e.cfg.AttackTime, &action.Call{
		When: action.CallAtEnd,
		Fn:   e.strike,
	}))
}

func (e *Enemy) strike() {
	e.attacking = false
	if e.dead {
		return
	}
	e.sound("bleep1")
	p := e.world.player
	if p.dead || p.level != e.level {
		return
	}
	if horizontalGap(e.Box(), p.Box()) <= e.cfg.AttackRange {
		p.Damage(e.cfg.Damage)
	}
}

func (e *Enemy) died() {
	w := e.world
	w.kills++
	w.logger.Debug("enemy died", "kind", e.kind, "level", e.level.Name)
	w.add(newCorpse(e), e.level)
	w.Remove(e)
}

// creatureMask is a full rectangle with the two top corners cut.
func creatureMask(w, h float64) *collision.Mask {
	m := collision.FullMask(int(w), int(h))
	mw, _ := m.Size()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3-y; x++ {
			m.Set(x, y, false)
			m.Set(mw-1-x, y, false)
		}
	}
	return m
}
