package world

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/bacon-invasion/internal/audio"
	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/levels"
	"github.com/vovakirdan/bacon-invasion/internal/levels/formats"
)

func fp(v float64) *float64 { return &v }

// testConfig allows long frames so tests can step in tenths of a second.
func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Timing.MaxDT = 1
	return cfg
}

func lvl(name string, x, y int, width float64, start bool, structures ...formats.Structure) levels.Level {
	return levels.Level{Level: formats.Level{
		ID:         name,
		Name:       name,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     64,
		Start:      start,
		Structures: structures,
	}}
}

func newTestWorld(t *testing.T, cfg config.GameConfig, defs ...levels.Level) (*World, *audio.Recorder) {
	t.Helper()
	rec := &audio.Recorder{}
	w, err := New(cfg, defs, WithSink(rec), WithSeed(7))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return w, rec
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func idle(w *World, seconds, dt float64) {
	for t := 0.0; t < seconds-1e-9; t += dt {
		w.Step(dt, core.NewInputFrame())
	}
}

func enemiesIn(w *World, l *Level) []*Enemy {
	var out []*Enemy
	for _, e := range w.Entities(l) {
		if en, ok := e.(*Enemy); ok {
			out = append(out, en)
		}
	}
	return out
}

func corpsesIn(w *World, l *Level) []*Corpse {
	var out []*Corpse
	for _, e := range w.Entities(l) {
		if c, ok := e.(*Corpse); ok {
			out = append(out, c)
		}
	}
	return out
}

func TestNewWorld(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(),
		lvl("A", 0, 0, 128, false),
		lvl("B", 1, 0, 128, true, formats.Structure{Kind: KindSign, X: fp(20), Text: "hello"}),
	)

	if w.ActiveLevel().Name != "B" {
		t.Errorf("ActiveLevel() = %s, expected start level B", w.ActiveLevel().Name)
	}
	p := w.Player()
	if p.Level() != w.ActiveLevel() {
		t.Error("player not placed in the start level")
	}
	if p.Position().Y != 32 {
		t.Errorf("player y = %v, expected standing on the floor at 32", p.Position().Y)
	}
	if got := len(p.Inventory().Items()); got != 4 {
		t.Errorf("start items = %d, expected 4", got)
	}
	if _, ok := p.Inventory().Selected().(*Gun); !ok {
		t.Errorf("Selected() = %v, expected a gun", p.Inventory().Selected())
	}

	if _, err := w.Level("missing"); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Level(missing) error = %v, expected ErrLevelNotFound", err)
	}
	if _, err := New(testConfig(), nil); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("New(no levels) error = %v, expected ErrLevelNotFound", err)
	}
}

func TestEmbeddedPackBuilds(t *testing.T) {
	defs, err := levels.Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	w, _ := newTestWorld(t, testConfig(), defs...)

	if w.ActiveLevel().Name != "Cryo I" {
		t.Errorf("start level = %s, expected Cryo I", w.ActiveLevel().Name)
	}
	for _, l := range w.Levels() {
		for _, d := range l.Doors() {
			if d.Exit() == nil {
				t.Errorf("door in %s to %s has no exit", l.Name, d.Target())
				continue
			}
			if d.Exit().Exit() != d {
				t.Errorf("door in %s is not paired both ways", l.Name)
			}
			if d.Exit().DoorKind() != d.DoorKind() {
				t.Errorf("exit of %s door has kind %v, expected %v", l.Name, d.Exit().DoorKind(), d.DoorKind())
			}
		}
	}
	corridor, _ := w.Level("Corridor")
	if got := len(enemiesIn(w, corridor)); got != 2 {
		t.Errorf("Corridor enemies = %d, expected 2", got)
	}
}

func TestHandlesGoStale(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(), lvl("A", 0, 0, 256, true))
	l := w.ActiveLevel()

	first, err := w.SpawnEnemy(BasicEnemy, SpawnArgs{Level: l, X: 100})
	if err != nil {
		t.Fatalf("SpawnEnemy() failed: %v", err)
	}
	h := first.Handle()
	if e, ok := w.Entity(h); !ok || e != Entity(first) {
		t.Fatalf("Entity(h) = %v, %v, expected the spawned enemy", e, ok)
	}

	w.Remove(first)
	w.Remove(first)
	if _, ok := w.Entity(h); ok {
		t.Error("Entity(h) resolved after removal")
	}
	if l.Space().Contains(&first.Body) {
		t.Error("removed enemy still registered in the space")
	}
	if !first.Pipe().Deleted() {
		t.Error("removed enemy's pipe not deleted")
	}

	second, _ := w.SpawnEnemy(BasicEnemy, SpawnArgs{Level: l, X: 120})
	if second.Handle() == h {
		t.Error("reused slot returned the stale handle")
	}
	if _, ok := w.Entity(h); ok {
		t.Error("stale handle resolved to the new occupant")
	}
	if _, ok := w.Entity(Handle{}); ok {
		t.Error("zero handle resolved")
	}

	if _, err := w.SpawnEnemy("dragon", SpawnArgs{Level: l}); err == nil {
		t.Error("SpawnEnemy(unknown) succeeded")
	}
}

func TestPlayerWalksOneStride(t *testing.T) {
	w, rec := newTestWorld(t, testConfig(), lvl("A", 0, 0, 256, true))
	p := w.Player()
	p.SetPosition(core.V(40, 32))

	w.Step(0.1, press(core.ActionRight))
	for i := 0; i < 20; i++ {
		w.Step(0.1, core.NewInputFrame())
	}

	if p.Position().X != 56 {
		t.Errorf("x = %v, expected exactly one stride to 56", p.Position().X)
	}
	if _, ok := p.Target(); ok {
		t.Error("target not cleared on arrival")
	}
	if p.Direction() != 1 {
		t.Errorf("Direction() = %v, expected 1", p.Direction())
	}
	if rec.Count("step") == 0 {
		t.Error("no footstep played while walking")
	}

	w.Step(0.1, press(core.ActionLeft))
	if x, _ := p.Target(); x != 40 {
		t.Errorf("target = %v, expected 40", x)
	}
	if p.Direction() != -1 {
		t.Errorf("Direction() = %v, expected -1", p.Direction())
	}
}

func TestFootstepCooldown(t *testing.T) {
	w, rec := newTestWorld(t, testConfig(), lvl("A", 0, 0, 512, true))
	p := w.Player()
	p.SetTarget(400)

	// 1s of walking with a 0.4s step interval.
	for i := 0; i < 10; i++ {
		w.Step(0.1, core.NewInputFrame())
	}

	if got := rec.Count("step"); got != 3 {
		t.Errorf("steps = %d, expected 3", got)
	}
}

func TestDeadPlayerEndsRun(t *testing.T) {
	w, rec := newTestWorld(t, testConfig(), lvl("A", 0, 0, 128, true))
	p := w.Player()

	p.Damage(100)

	if !p.Dead() || !w.Over() {
		t.Fatalf("Dead() = %v, Over() = %v, expected both true", p.Dead(), w.Over())
	}
	if p.Health() != 0 {
		t.Errorf("Health() = %v, expected 0", p.Health())
	}
	if rec.Count("death") != 1 {
		t.Errorf("death sound played %d times, expected 1", rec.Count("death"))
	}

	before := p.Position()
	w.Step(0.1, press(core.ActionRight))
	w.Step(0.1, core.NewInputFrame())
	if p.Position() != before {
		t.Error("dead player moved")
	}
	if !w.State().GameOver {
		t.Error("State().GameOver = false")
	}
}

func TestHealthClamp(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(), lvl("A", 0, 0, 128, true))
	p := w.Player()

	p.ChangeHealth(5)
	if p.Health() != p.MaxHealth() {
		t.Errorf("Health() = %v, expected clamped to %v", p.Health(), p.MaxHealth())
	}
	p.ChangeHealth(-3)
	if p.Health() != p.MaxHealth()-3 {
		t.Errorf("Health() = %v, expected %v", p.Health(), p.MaxHealth()-3)
	}
}

func TestStateSummary(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(), lvl("A", 0, 0, 128, true))
	idle(w, 0.5, 0.1)

	s := w.State()
	if s.Level != "A" || s.Health != 10 || s.Selected != "handgun" || s.Ammo != 50 {
		t.Errorf("State() = %+v, expected level A, health 10, handgun with 50", s)
	}
	if math.Abs(s.Elapsed-0.5) > 1e-9 {
		t.Errorf("Elapsed = %v, expected 0.5", s.Elapsed)
	}
}

func TestStepClampsFrameTime(t *testing.T) {
	cfg := config.DefaultGameConfig()
	w, _ := newTestWorld(t, cfg, lvl("A", 0, 0, 128, true))

	w.Step(5, core.NewInputFrame())
	w.Step(-1, core.NewInputFrame())

	if w.Clock() != cfg.Timing.MaxDT {
		t.Errorf("Clock() = %v, expected one clamped frame of %v", w.Clock(), cfg.Timing.MaxDT)
	}
}

func TestSignAndUnknownStructures(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(), lvl("A", 0, 0, 128, true,
		formats.Structure{Kind: KindSign, X: fp(40), Text: "Mind the grease"},
		formats.Structure{Kind: "fountain", X: fp(80)},
		formats.Structure{Kind: KindPickup, X: fp(90), Item: "unobtainium"},
	))
	p := w.Player()
	p.SetPosition(core.V(36, 32))

	canvas := &textCanvas{}
	idle(w, 3, 0.1)
	w.Step(0.1, press(core.ActionInteract))
	w.Step(0.1, core.NewInputFrame())
	w.Draw(canvas)

	found := false
	for _, text := range canvas.texts {
		if text == "Mind the grease" {
			found = true
		}
	}
	if !found {
		t.Errorf("drawn texts = %v, expected the sign text", canvas.texts)
	}
	if got := len(w.Entities(w.ActiveLevel())); got != 2 {
		t.Errorf("entities = %d, expected player and sign only", got)
	}
}

func TestMessagesReplaceEachOther(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(), lvl("Cellar", 0, 0, 128, true))
	p := w.Player()

	w.Step(0.1, core.NewInputFrame())
	p.Damage(100)

	if w.messages.Len() != 1 {
		t.Fatalf("messages.Len() = %d, expected 1", w.messages.Len())
	}
	canvas := &textCanvas{}
	w.Draw(canvas)

	died := false
	for _, text := range canvas.texts {
		switch text {
		case "You died":
			died = true
		case "Cellar":
			t.Error("level name still showing over the death message")
		}
	}
	if !died {
		t.Errorf("drawn texts = %v, expected \"You died\" right away", canvas.texts)
	}
}

type textCanvas struct {
	texts    []string
	overlays []float64
}

func (c *textCanvas) Overlay(_ core.Color, alpha float64) { c.overlays = append(c.overlays, alpha) }

func (c *textCanvas) Text(text string, _ core.Vec, _ core.Color, _ float64) {
	c.texts = append(c.texts, text)
}
