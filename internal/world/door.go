package world

import (
	"github.com/vovakirdan/bacon-invasion/internal/action"
	"github.com/vovakirdan/bacon-invasion/internal/collision"
	"github.com/vovakirdan/bacon-invasion/internal/core"
)

// DoorState is the open/closed/locked state of a door.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
	DoorLocked
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpen:
		return "open"
	case DoorLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// DoorKind selects how a door is unlocked.
type DoorKind int

const (
	PlainDoor DoorKind = iota
	KeyDoor
	KeypadDoor
)

func (k DoorKind) lineage() collision.Lineage {
	switch k {
	case KeyDoor:
		return lockedLineage.Extend(TagKeyDoor)
	case KeypadDoor:
		return lockedLineage.Extend(TagKeypadDoor)
	default:
		return doorLineage
	}
}

// Door leads to another level. Doors come in linked pairs, one on each side.
type Door struct {
	Body

	kind      DoorKind
	target    string
	exit      *Door
	changePos core.Vec
	state     DoorState
	key       string
	code      string
}

func newDoor(w *World, kind DoorKind, target string) *Door {
	d := &Door{
		Body:   newBody(w.cfg.Door.Width, w.cfg.Door.Height, kind.lineage(), false),
		kind:   kind,
		target: target,
	}
	if kind != PlainDoor {
		d.state = DoorLocked
	}
	return d
}

// DoorKind returns how the door unlocks.
func (d *Door) DoorKind() DoorKind { return d.kind }

// State returns the door state.
func (d *Door) State() DoorState { return d.state }

// Target returns the name of the level the door leads to.
func (d *Door) Target() string { return d.target }

// Exit returns the paired door on the other side, or nil when unlinked.
func (d *Door) Exit() *Door { return d.exit }

// ChangePos is where the player lands after going through.
func (d *Door) ChangePos() core.Vec { return d.changePos }

// Key returns the name of the key that unlocks a key door.
func (d *Door) Key() string { return d.key }

// Visual implements Visual.
func (d *Door) Visual(float64) string { return "door_" + d.state.String() }

// InteractRange implements Interactable.
func (d *Door) InteractRange() float64 { return d.world.cfg.Door.InteractMargin }

// Interact implements Interactable.
func (d *Door) Interact(p *Player) {
	switch d.state {
	case DoorOpen:
	case DoorLocked:
		d.tryUnlock(p)
	default:
		d.Open()
	}
}

func (d *Door) tryUnlock(p *Player) {
	w := d.world
	switch d.kind {
	case KeyDoor:
		i, err := p.inventory.CheckForNamedItem(d.key)
		if err != nil {
			d.sound("locked")
			w.say("Locked. Needs "+d.key, d.label())
			return
		}
		p.inventory.RemoveIndex(i)
		d.Unlock()
		w.say("Unlocked with "+d.key, d.label())
	case KeypadDoor:
		w.RequestCode(d)
	default:
		d.Unlock()
	}
}

// TryCode unlocks a keypad door when code matches.
func (d *Door) TryCode(code string) bool {
	if d.kind != KeypadDoor || d.state != DoorLocked {
		return false
	}
	if code != d.code {
		d.sound("locked")
		d.world.say("Wrong code", d.label())
		return false
	}
	d.Unlock()
	d.world.say("Access granted", d.label())
	return true
}

// Unlock closes a locked door and its pair, leaving both ready to open.
func (d *Door) Unlock() {
	if d.state == DoorLocked {
		d.state = DoorClosed
		d.sound("unlock")
	}
	if d.exit != nil && d.exit.state == DoorLocked {
		d.exit.state = DoorClosed
	}
}

// Open starts the transition to the paired door's level: a fade to black,
// the level change and a fade back, queued on the global pipe.
func (d *Door) Open() {
	w := d.world
	if d.exit == nil {
		w.say("This door leads nowhere", d.label())
		return
	}
	d.state = DoorOpen
	d.sound("door")
	w.changing = true

	fade := w.cfg.Door.FadeTime
	w.global.Add(action.New(fade, &action.Overlay{Color: core.ColorBlack, Fade: action.FadeIn, MaxAlpha: 1}))
	w.global.Add(action.New(0, &LevelChange{World: w, Door: d}))
	w.global.Add(action.New(fade, &action.Overlay{Color: core.ColorBlack, Fade: action.FadeOut, MaxAlpha: 1}))
	w.global.Add(action.After(0, func() { w.changing = false }))
}

// LevelEntered implements LevelObserver. Doors left open swing shut.
func (d *Door) LevelEntered() {
	if d.state == DoorOpen {
		d.state = DoorClosed
	}
}

// LevelLeft implements LevelObserver.
func (d *Door) LevelLeft() {}

// Update implements Entity.
func (d *Door) Update(float64) {}

func (d *Door) label() core.Vec {
	return core.V(d.Center().X, d.pos.Y-8)
}

// LevelChange moves the player through Door. It is a zero-duration action
// that does its work when it starts.
type LevelChange struct {
	World *World
	Door  *Door
}

// OnStart implements action.Starter.
func (lc *LevelChange) OnStart(*action.Action) {
	w := lc.World
	exit := lc.Door.exit
	if exit == nil {
		w.logger.Warn("door has no exit", "level", lc.Door.level.Name, "target", lc.Door.target)
		return
	}
	if err := w.ChangeLevel(exit.level); err != nil {
		w.logger.Warn("level change failed", "target", lc.Door.target, "err", err)
		return
	}
	w.player.targetX = nil
	w.player.SetPosition(lc.Door.changePos)
}

// autoDoorX places a door with no x on the side of l facing t. Doors to a
// level in another map row sit over the grid cell where that level starts.
func (w *World) autoDoorX(l, t *Level) float64 {
	dw := w.cfg.Door.Width
	if t.Y == l.Y {
		if t.X > l.X {
			return l.Width - dw
		}
		return 0
	}
	g := w.cfg.Door.GridUnit
	return core.ClampF(float64(t.X-l.X)*g+g/2-dw/2, 0, l.Width-dw)
}

// exitDoorX places the far side of d in t so both doors line up on the map.
func (w *World) exitDoorX(d *Door, t *Level) float64 {
	l := d.level
	if t.Y == l.Y {
		if t.X < l.X {
			return t.Width - d.w
		}
		return 0
	}
	g := w.cfg.Door.GridUnit
	x := float64(l.X)*g + d.pos.X - float64(t.X)*g
	return core.ClampF(x, 0, t.Width-d.w)
}

// link pairs d with a door in its target level, creating the exit door when
// the target level does not declare one back.
func (w *World) link(d *Door) {
	if d.exit != nil {
		return
	}
	t, err := w.Level(d.target)
	if err != nil {
		w.logger.Warn("door target missing", "level", d.level.Name, "target", d.target)
		return
	}
	for _, o := range t.doors {
		if o.exit == nil && o.target == d.level.Name {
			w.pair(d, o)
			w.logger.Debug("door linked", "from", d.level.Name, "to", t.Name, "declared", true)
			return
		}
	}

	exit := newDoor(w, d.kind, d.level.Name)
	exit.state = d.state
	exit.key = d.key
	exit.code = d.code
	exit.pos = core.V(w.exitDoorX(d, t), t.floorY(exit.h))
	w.add(exit, t)
	t.doors = append(t.doors, exit)
	w.pair(d, exit)
	w.logger.Debug("door linked", "from", d.level.Name, "to", t.Name, "x", exit.pos.X)
}

func (w *World) pair(a, b *Door) {
	a.exit, b.exit = b, a
	a.changePos = w.landing(b)
	b.changePos = w.landing(a)
}

// landing is where the player stands when arriving through d.
func (w *World) landing(d *Door) core.Vec {
	pw, ph := w.cfg.Player.Width, w.cfg.Player.Height
	x := core.ClampF(d.Center().X-pw/2, 0, d.level.Width-pw)
	return core.V(x, d.level.floorY(ph))
}
