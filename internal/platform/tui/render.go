package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/world"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// glyph is how one visual key looks on screen.
type glyph struct {
	r rune
	c core.Color
}

// glyphs maps visual key prefixes to glyphs. Longer prefixes are tried first.
var glyphs = []struct {
	prefix string
	glyph  glyph
}{
	{"player_dead", glyph{'x', core.ColorGray}},
	{"player", glyph{'@', core.ColorBrightWhite}},
	{"basic_enemy_attack", glyph{'B', core.ColorBrightRed}},
	{"basic_enemy", glyph{'b', core.ColorRed}},
	{"large_enemy", glyph{'L', core.ColorMagenta}},
	{"recover_enemy_attack", glyph{'R', core.ColorBrightRed}},
	{"recover_enemy", glyph{'r', core.ColorOrange}},
	{"corpse", glyph{'~', core.ColorRed}},
	{"door_open", glyph{' ', core.ColorDarkGray}},
	{"door_locked", glyph{'#', core.ColorBrightRed}},
	{"door", glyph{'|', core.ColorYellow}},
	{"pickup_medkit", glyph{'+', core.ColorBrightGreen}},
	{"pickup_key", glyph{'k', core.ColorBrightYellow}},
	{"pickup_", glyph{'=', core.ColorCyan}},
	{"sign", glyph{'?', core.ColorBrightCyan}},
}

func glyphFor(visual string) glyph {
	for _, g := range glyphs {
		if strings.HasPrefix(visual, g.prefix) {
			return g.glyph
		}
	}
	return glyph{'*', core.ColorWhite}
}

// hudRows is the number of screen rows below the level view.
const hudRows = 3

// Renderer draws a World onto a Screen. It implements action.Canvas so the
// World's overlays and texts land in the same frame.
type Renderer struct {
	screen *core.Screen
	view   config.ViewConfig

	// camera origin in world units and the level rectangle on screen
	camX float64
	area core.Rect
}

// NewRenderer creates a renderer over screen.
func NewRenderer(screen *core.Screen, view config.ViewConfig) *Renderer {
	return &Renderer{screen: screen, view: view}
}

// Screen returns the screen the renderer draws to.
func (r *Renderer) Screen() *core.Screen { return r.screen }

// Frame draws one frame of w: level bounds, entities, effects and the HUD.
func (r *Renderer) Frame(w *world.World, paused bool) {
	s := r.screen
	s.Clear()

	l := w.ActiveLevel()
	r.layout(l, w.Player().Center())

	s.DrawBox(core.NewRect(r.area.X-1, r.area.Y-1, r.area.W+2, r.area.H+2), core.ColorDarkGray)
	s.DrawHLine(r.area.X, r.area.Bottom(), r.area.W, '▀', core.ColorGray)

	if l.ShowSpace {
		for _, b := range l.Space().Bodies() {
			if b.Solid() {
				s.DrawBox(r.cells(b.Box()), core.ColorDarkGray)
			}
		}
	}

	for _, d := range w.Drawables() {
		r.drawEntity(d)
	}

	w.Draw(r)
	r.drawHUD(w.State(), paused)
}

// layout sizes the level view and scrolls the camera to keep focus centred.
func (r *Renderer) layout(l *world.Level, focus core.Vec) {
	sw, sh := r.screen.Width(), r.screen.Height()
	cols := int(math.Ceil(l.Width / r.view.UnitsPerCol))
	rows := int(math.Ceil(l.Height / r.view.UnitsPerRow))
	viewW := core.Clamp(cols, 1, max(sw-2, 1))
	viewH := core.Clamp(rows, 1, max(sh-hudRows-2, 1))

	span := float64(viewW) * r.view.UnitsPerCol
	r.camX = core.ClampF(focus.X-span/2, 0, math.Max(l.Width-span, 0))
	r.area = core.NewRect((sw-viewW)/2, max((sh-hudRows-viewH)/2, 1), viewW, viewH)
}

// cell converts a world position to a screen cell.
func (r *Renderer) cell(p core.Vec) (int, int) {
	x := r.area.X + int(math.Floor((p.X-r.camX)/r.view.UnitsPerCol))
	y := r.area.Y + int(math.Floor(p.Y/r.view.UnitsPerRow))
	return x, y
}

// cells converts a world box to screen cells, at least one cell in size.
func (r *Renderer) cells(b core.Box) core.Rect {
	x, y := r.cell(core.V(b.X, b.Y))
	w := max(int(math.Round(b.W/r.view.UnitsPerCol)), 1)
	h := max(int(math.Round(b.H/r.view.UnitsPerRow)), 1)
	return core.NewRect(x, y, w, h)
}

// visible clips a rect to the level area.
func (r *Renderer) visible(rc core.Rect) core.Rect {
	x0 := max(rc.X, r.area.X)
	y0 := max(rc.Y, r.area.Y)
	x1 := min(rc.Right(), r.area.Right())
	y1 := min(rc.Bottom(), r.area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (r *Renderer) drawEntity(d world.Drawable) {
	g := glyphFor(d.Visual)
	rc := r.visible(r.cells(d.Box))
	if rc.W == 0 {
		return
	}
	r.screen.DrawRect(rc, g.r, g.c)

	// Creatures show which way they face on their top row.
	if d.Kind == world.TagPlayer || d.Kind == world.TagBasicEnemy ||
		d.Kind == world.TagLargeEnemy || d.Kind == world.TagRecoverEnemy {
		face, x := '>', rc.Right()-1
		if d.Facing < 0 {
			face, x = '<', rc.X
		}
		r.screen.SetColored(x, rc.Y, face, g.c)
	}
}

// Overlay implements action.Canvas by shading the level view.
func (r *Renderer) Overlay(c core.Color, alpha float64) {
	switch {
	case alpha >= 0.95:
		r.screen.DrawRect(r.area, ' ', c)
	case alpha >= 0.6:
		r.shade('▓', c)
	case alpha >= 0.3:
		r.shade('▒', core.ColorDarkGray)
	case alpha > 0.05:
		r.shade(0, core.ColorGray)
	}
}

// shade recolours the level view, replacing blank cells with fill when set.
func (r *Renderer) shade(fill rune, c core.Color) {
	s := r.screen
	for y := r.area.Y; y < r.area.Bottom(); y++ {
		for x := r.area.X; x < r.area.Right(); x++ {
			ch := s.Get(x, y)
			if ch == ' ' && fill != 0 {
				ch = fill
			}
			s.SetColored(x, y, ch, c)
		}
	}
}

// Text implements action.Canvas. Texts fade to grey and vanish near the end.
func (r *Renderer) Text(text string, pos core.Vec, c core.Color, alpha float64) {
	if alpha < 0.15 {
		return
	}
	if alpha < 0.5 {
		c = core.ColorGray
	}
	x, y := r.cell(pos)
	x -= len([]rune(text)) / 2
	y = core.Clamp(y, r.area.Y, r.area.Bottom()-1)
	x = core.Clamp(x, 0, max(r.screen.Width()-len([]rune(text)), 0))
	r.screen.DrawText(x, y, text, c)
}

func (r *Renderer) drawHUD(st core.RunState, paused bool) {
	s := r.screen
	y := s.Height() - hudRows

	hp := fmt.Sprintf("HP %s", bar(st.Health, st.MaxHealth, 10))
	hpColor := core.ColorBrightGreen
	if st.Health <= st.MaxHealth/3 {
		hpColor = core.ColorBrightRed
	}
	s.DrawText(1, y, hp, hpColor)

	weapon := st.Selected
	if weapon == "" {
		weapon = "-"
	}
	if st.Ammo >= 0 {
		weapon = fmt.Sprintf("%s %d", weapon, int(st.Ammo))
	}
	info := fmt.Sprintf("%s | Kills %d | %s | %s", weapon, st.Kills, st.Level, clock(st.Elapsed))
	s.DrawText(len([]rune(hp))+3, y, info, core.ColorWhite)

	x := 1
	for _, it := range st.Items {
		c := core.ColorGray
		label := it
		if it == st.Selected {
			c = core.ColorBrightYellow
			label = "[" + it + "]"
		}
		s.DrawText(x, y+1, label, c)
		x += len([]rune(label)) + 1
	}

	help := "a/d walk  e use  space fire  tab item  u medkit  p pause  q quit"
	switch {
	case st.GameOver:
		s.DrawTextCentered(r.area.Y+r.area.H/2, "YOU DIED", core.ColorBrightRed)
		help = "r new run  b runs  q quit"
	case paused:
		s.DrawTextCentered(r.area.Y+r.area.H/2, "PAUSED", core.ColorBrightYellow)
	}
	s.DrawText(1, y+2, help, core.ColorDarkGray)
}

// bar draws a health bar of width cells.
func bar(v, maxV float64, width int) string {
	if maxV <= 0 {
		return strings.Repeat("░", width)
	}
	filled := core.Clamp(int(math.Ceil(v/maxV*float64(width))), 0, width)
	if v <= 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func clock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
