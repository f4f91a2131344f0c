package world

import (
	"fmt"

	"github.com/vovakirdan/bacon-invasion/internal/action"
	"github.com/vovakirdan/bacon-invasion/internal/anim"
	"github.com/vovakirdan/bacon-invasion/internal/core"
)

// Corpse is what an enemy leaves behind. Corpses of respawning kinds get
// back up after a delay.
type Corpse struct {
	Body

	kind     EnemyKind
	respawns bool
	recover  anim.Animation
}

func newCorpse(e *Enemy) *Corpse {
	cfg := e.world.cfg.Corpse
	c := &Corpse{
		Body:     newBody(cfg.Width, cfg.Height, entityLineage.Extend(TagCorpse), false),
		kind:     e.kind,
		respawns: e.cfg.Respawns,
	}
	c.pos = core.V(e.Center().X-cfg.Width/2, e.Box().Bottom()-cfg.Height)

	frames := make([]string, max(cfg.Frames, 1))
	for i := range frames {
		frames[i] = fmt.Sprintf("corpse%d", i)
	}
	c.recover = anim.Animation{Frames: frames, FrameTime: cfg.FrameTime, Reverse: true}
	c.anims = anim.NewSet(map[string]anim.Animation{
		"idle":    anim.Static(frames[len(frames)-1]),
		"recover": c.recover,
	}, "idle")
	return c
}

// EnemyKind returns the kind of enemy that died here.
func (c *Corpse) EnemyKind() EnemyKind { return c.kind }

// Respawns reports whether the corpse will get back up.
func (c *Corpse) Respawns() bool { return c.respawns }

func (c *Corpse) spawned() {
	if !c.respawns {
		return
	}
	c.pipe.Add(action.After(c.world.cfg.Corpse.RecoverDelay, func() { c.play("recover") }))
	c.pipe.Add(action.After(c.recover.Duration(), c.respawn))
}

// respawn brings the enemy back a quarter width in from the corpse's edge
// and removes the corpse.
func (c *Corpse) respawn() {
	w := c.world
	if _, err := w.SpawnEnemy(c.kind, SpawnArgs{Level: c.level, X: c.pos.X + c.w/4}); err != nil {
		w.logger.Warn("respawn failed", "kind", c.kind, "err", err)
	} else {
		w.logger.Debug("enemy respawned", "kind", c.kind, "level", c.level.Name)
		c.sound("respawn")
	}
	w.Remove(c)
}

// Update implements Entity.
func (c *Corpse) Update(float64) {}
