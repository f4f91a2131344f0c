// Package world holds the game state: levels, entities, the player and the
// scheduler that drives every timed effect. A World is an explicit context
// object; nothing in the package keeps global game state.
package world

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bacon-invasion/internal/action"
	"github.com/vovakirdan/bacon-invasion/internal/audio"
	"github.com/vovakirdan/bacon-invasion/internal/collision"
	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/levels"
)

// ErrLevelNotFound is returned when a level name does not resolve.
var ErrLevelNotFound = errors.New("world: level not found")

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithSink sets the sound sink. The default is audio.Nop.
func WithSink(s audio.Sink) Option {
	return func(w *World) { w.sink = s }
}

// WithSeed seeds the random source used for shot spread.
func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x5eed)) }
}

// World is one run of the game.
type World struct {
	cfg    config.GameConfig
	logger *log.Logger
	sink   audio.Sink
	rng    *rand.Rand

	sched    *action.Scheduler
	global   *action.Pipe
	messages *action.Pipe

	levels []*Level
	byName map[string]*Level
	active *Level

	entities arena
	player   *Player

	clock    float64
	kills    int
	changing bool
	prompt   *Door
	over     bool
}

// listener is implemented by sinks that attenuate by distance.
type listener interface {
	SetListener(p core.Vec)
}

// New builds a World from level definitions. The player starts in the level
// marked as start, or the first one.
func New(cfg config.GameConfig, defs []levels.Level, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := levels.Start(defs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLevelNotFound, err)
	}

	w := &World{
		cfg:    cfg,
		logger: log.New(io.Discard),
		sink:   audio.Nop{},
		rng:    rand.New(rand.NewPCG(1, 1)),
		sched:  action.NewScheduler(),
		byName: make(map[string]*Level, len(defs)),
	}
	for _, opt := range opts {
		opt(w)
	}

	// Both names are fixed and registered first, so neither can collide.
	w.global, _ = w.sched.NewPipe("global", w)
	w.messages, _ = w.sched.NewPipe("messages", w)

	for _, def := range defs {
		if _, dup := w.byName[def.Name]; dup {
			return nil, fmt.Errorf("world: duplicate level name %q", def.Name)
		}
		l := newLevel(def)
		w.levels = append(w.levels, l)
		w.byName[l.Name] = l
	}
	for i, def := range defs {
		w.populate(w.levels[i], def)
	}
	for _, l := range w.levels {
		for _, d := range l.Doors() {
			w.link(d)
		}
	}

	w.active = w.byName[start.Name]
	w.player = newPlayer(w)
	w.add(w.player, w.active)
	w.player.SetPosition(core.V(w.cfg.Player.Width, w.active.floorY(w.player.h)))
	w.player.equip(cfg.Player.StartItems)
	w.say(w.active.Name, core.V(w.active.Width/2, w.active.Height/4))

	w.logger.Info("world ready", "levels", len(w.levels), "start", w.active.Name, "entities", w.entities.len())
	return w, nil
}

// Config returns the tuning the World runs with.
func (w *World) Config() config.GameConfig { return w.cfg }

// Logger returns the World's logger.
func (w *World) Logger() *log.Logger { return w.logger }

// Scheduler returns the scheduler that owns every pipe.
func (w *World) Scheduler() *action.Scheduler { return w.sched }

// Global returns the pipe for transitions and level titles.
func (w *World) Global() *action.Pipe { return w.global }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Clock returns the simulated seconds since the run began.
func (w *World) Clock() float64 { return w.clock }

// Kills returns the number of enemies killed.
func (w *World) Kills() int { return w.kills }

// Over reports whether the player has died.
func (w *World) Over() bool { return w.over }

// Changing reports whether a level transition is running.
func (w *World) Changing() bool { return w.changing }

// ActiveLevel returns the level the player is in.
func (w *World) ActiveLevel() *Level { return w.active }

// Levels returns every level in definition order.
func (w *World) Levels() []*Level {
	out := make([]*Level, len(w.levels))
	copy(out, w.levels)
	return out
}

// Level looks a level up by name or file id.
func (w *World) Level(name string) (*Level, error) {
	if l, ok := w.byName[name]; ok {
		return l, nil
	}
	for _, l := range w.levels {
		if l.ID == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
}

// Entity resolves a handle. Stale handles return false.
func (w *World) Entity(h Handle) (Entity, bool) {
	return w.entities.get(h)
}

// Entities returns a snapshot of the entities in l, or of every entity when
// l is nil.
func (w *World) Entities(l *Level) []Entity {
	all := w.entities.snapshot()
	if l == nil {
		return all
	}
	out := all[:0]
	for _, e := range all {
		if e.Base().level == l {
			out = append(out, e)
		}
	}
	return out
}

// Spawn adds e to level l and returns its handle.
func (w *World) Spawn(e Entity, l *Level) Handle {
	return w.add(e, l)
}

func (w *World) add(e Entity, l *Level) Handle {
	b := e.Base()
	b.world = w
	b.owner = e
	b.level = l
	b.removed = false
	b.handle = w.entities.insert(e)

	name := fmt.Sprintf("%s#%d.%d", TagName(b.Kind()), b.handle.index, b.handle.gen)
	pipe, err := w.sched.NewPipe(name, e)
	if err != nil {
		panic(fmt.Sprintf("world: %v", err))
	}
	b.pipe = pipe
	if l != nil {
		l.space.Register(b)
	}
	if s, ok := e.(interface{ spawned() }); ok {
		s.spawned()
	}
	return b.handle
}

// Remove takes e out of the world: its handle goes stale, its pipe is
// deleted and it leaves its level's space. Removing twice is a no-op.
func (w *World) Remove(e Entity) {
	b := e.Base()
	if b.removed {
		return
	}
	b.removed = true
	if b.level != nil {
		b.level.space.Deregister(b)
	}
	if b.pipe != nil {
		b.pipe.Delete()
	}
	w.entities.remove(b.handle)
}

// Step advances the World by one frame.
func (w *World) Step(dt float64, in core.InputFrame) {
	dt = core.ClampF(dt, 0, w.cfg.Timing.MaxDT)
	w.clock += dt
	w.sched.Tick(dt)

	if !w.over && !w.changing && w.prompt == nil {
		w.player.handleInput(in)
	}

	for _, e := range w.entities.snapshot() {
		b := e.Base()
		if b.removed {
			continue
		}
		if b.level == w.active {
			e.Update(dt)
		} else if iu, ok := e.(InactiveUpdater); ok {
			iu.UpdateInactive(dt)
		}
	}

	if l, ok := w.sink.(listener); ok {
		l.SetListener(w.player.Center())
	}
}

// ChangeLevel moves the player into to, notifying observers in the level
// being left and the level being entered.
func (w *World) ChangeLevel(to *Level) error {
	if to == nil {
		return ErrLevelNotFound
	}
	from := w.active
	if from != nil {
		for _, e := range w.Entities(from) {
			if o, ok := e.(LevelObserver); ok {
				o.LevelLeft()
			}
		}
		from.space.Deregister(&w.player.Body)
	}

	w.player.level = to
	to.space.Register(&w.player.Body)
	w.active = to

	for _, e := range w.Entities(to) {
		if o, ok := e.(LevelObserver); ok {
			o.LevelEntered()
		}
	}
	w.global.Add(action.New(w.cfg.Combat.TextTime*2, &action.Text{
		Text:  to.Name,
		Pos:   core.V(to.Width/2, to.Height/4),
		Color: core.ColorBrightWhite,
	}))

	fromName := ""
	if from != nil {
		fromName = from.Name
	}
	w.logger.Info("level changed", "from", fromName, "to", to.Name)
	return nil
}

// say shows a message that fades over the configured text time.
func (w *World) say(text string, pos core.Vec) {
	// The newest message replaces whatever is still showing.
	w.messages.Clear(false)
	w.messages.Add(action.New(w.cfg.Combat.TextTime, &action.Text{
		Text:  text,
		Pos:   pos,
		Color: core.ColorBrightYellow,
	}))
}

// RequestCode opens the keypad prompt for d.
func (w *World) RequestCode(d *Door) {
	w.prompt = d
}

// Prompt returns the door waiting for a keypad code.
func (w *World) Prompt() (*Door, bool) {
	return w.prompt, w.prompt != nil
}

// SubmitCode closes the keypad prompt and tries code on its door.
func (w *World) SubmitCode(code string) bool {
	d := w.prompt
	w.prompt = nil
	if d == nil {
		return false
	}
	return d.TryCode(code)
}

// CancelPrompt closes the keypad prompt without trying a code.
func (w *World) CancelPrompt() {
	w.prompt = nil
}

// Drawable is what the renderer needs to show one entity.
type Drawable struct {
	Handle Handle
	Kind   collision.Tag
	Box    core.Box
	Visual string
	Facing float64
	Solid  bool
}

// Drawables lists the entities of the active level, player last.
func (w *World) Drawables() []Drawable {
	var out []Drawable
	for _, e := range w.Entities(w.active) {
		if e == Entity(w.player) {
			continue
		}
		out = append(out, drawableOf(e, w.clock))
	}
	return append(out, drawableOf(w.player, w.clock))
}

func drawableOf(e Entity, now float64) Drawable {
	b := e.Base()
	d := Drawable{
		Handle: b.handle,
		Kind:   b.Kind(),
		Box:    b.Box(),
		Solid:  b.Solid(),
		Facing: 1,
	}
	if v, ok := e.(Visual); ok {
		d.Visual = v.Visual(now)
	}
	if f, ok := e.(interface{ Direction() float64 }); ok {
		d.Facing = f.Direction()
	}
	return d
}

// Draw hands every pipe's drawable entry to c: overlays, titles and messages.
func (w *World) Draw(c action.Canvas) {
	for _, p := range w.sched.Pipes() {
		p.Draw(c)
	}
}

// State summarises the run for the frontend.
func (w *World) State() core.RunState {
	p := w.player
	s := core.RunState{
		Level:     w.active.Name,
		Health:    p.health,
		MaxHealth: p.maxHealth,
		Kills:     w.kills,
		Elapsed:   w.clock,
		Ammo:      -1,
		GameOver:  w.over,
		Prompt:    w.prompt != nil,
	}
	for _, it := range p.inventory.Items() {
		s.Items = append(s.Items, it.Name())
	}
	if it := p.inventory.Selected(); it != nil {
		s.Selected = it.Name()
		if g, ok := it.(*Gun); ok {
			s.Ammo = g.Ammo()
		}
	}
	return s
}
