package world

import (
	"github.com/vovakirdan/bacon-invasion/internal/levels"
	"github.com/vovakirdan/bacon-invasion/internal/levels/formats"
)

// Structure kinds understood in level files.
const (
	KindDoor       = "door"
	KindKeyDoor    = "key_door"
	KindKeypadDoor = "keypad_door"
	KindEnemy      = "enemy"
	KindPickup     = "pickup"
	KindSign       = "sign"
)

// populate places def's structures in l. Problems with single structures
// are logged and skipped so one bad entry does not sink the level.
func (w *World) populate(l *Level, def levels.Level) {
	for i, s := range def.Structures {
		switch s.Kind {
		case KindDoor:
			w.placeDoor(l, s, PlainDoor)
		case KindKeyDoor:
			w.placeDoor(l, s, KeyDoor)
		case KindKeypadDoor:
			w.placeDoor(l, s, KeypadDoor)
		case KindEnemy:
			x := l.resolveX(s.X, l.Width/2)
			if _, err := w.SpawnEnemy(EnemyKind(s.Enemy), SpawnArgs{Level: l, X: x, Y: s.Y}); err != nil {
				w.logger.Warn("skipping enemy", "level", l.Name, "index", i, "err", err)
			}
		case KindPickup:
			if !items.Exists(ItemID(s.Item)) {
				w.logger.Warn("skipping pickup", "level", l.Name, "index", i, "item", s.Item)
				continue
			}
			pk := newPickup(ItemID(s.Item), s.Name)
			pk.pos.X = l.resolveX(s.X, l.Width/2)
			pk.pos.Y = l.resolveY(s.Y, pk.h)
			w.add(pk, l)
		case KindSign:
			sign := newSign(s.Text)
			sign.pos.X = l.resolveX(s.X, l.Width/2)
			sign.pos.Y = l.resolveY(s.Y, sign.h)
			w.add(sign, l)
		default:
			w.logger.Warn("unknown structure", "level", l.Name, "index", i, "kind", s.Kind)
		}
	}
}

func (w *World) placeDoor(l *Level, s formats.Structure, kind DoorKind) {
	t, err := w.Level(s.Target)
	if err != nil {
		w.logger.Warn("skipping door", "level", l.Name, "target", s.Target, "err", err)
		return
	}
	d := newDoor(w, kind, t.Name)
	d.key = s.Key
	d.code = s.Code
	d.pos.X = l.resolveX(s.X, w.autoDoorX(l, t))
	d.pos.Y = l.resolveY(s.Y, d.h)
	w.add(d, l)
	l.doors = append(l.doors, d)
}
