package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/foxtrail/internal/entity"
	"github.com/samdwyer/foxtrail/internal/gamedata"
	"github.com/samdwyer/foxtrail/internal/grid"
)

// offMap is drawn beyond the edges of the map.
const offMap = '~'

// pathMark is drawn on planned path cells.
const pathMark = '·'

// Actor is something drawn on top of the map.
type Actor struct {
	Pos   grid.Coord
	Glyph rune
	Color string // hex color; empty for the default
}

// Frame is everything one Render call draws.
type Frame struct {
	Map    grid.Map
	Player *entity.Character
	NPCs   []Actor
	Path   []grid.Coord
	Status string
}

// Canvas is the drawing surface a Renderer needs. *Screen implements it.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen Canvas
	styles map[rune]tcell.Style
}

// NewRenderer creates a new renderer for the given screen. Tile colors
// come from the registry; unknown symbols use the default style.
func NewRenderer(screen Canvas, tiles *gamedata.TileRegistry) *Renderer {
	r := &Renderer{
		screen: screen,
		styles: make(map[rune]tcell.Style),
	}
	for _, def := range tiles.All() {
		if style, err := def.Style(); err == nil {
			r.styles[def.SymbolRune()] = style
		}
	}
	return r
}

// Viewport returns the viewport Render uses for a frame centered on the
// player. The bottom screen row is kept for the status line.
func (r *Renderer) Viewport(center grid.Coord) Viewport {
	w, h := r.screen.Size()
	return NewViewport(center, w, max(h-1, 0))
}

// Render draws the map, path, characters and status line.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	view := r.Viewport(f.Player.Pos)

	// Map tiles
	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			c := view.ToMap(x, y)
			symbol := rune(offMap)
			if grid.InBounds(f.Map, c) {
				symbol = f.Map.Symbol(c)
			}
			r.screen.SetContent(x, y, symbol, r.tileStyle(symbol))
		}
	}

	// Planned path
	for _, c := range f.Path {
		if x, y, ok := view.ToScreen(c); ok {
			style := r.tileStyle(f.Map.Symbol(c)).Foreground(tcell.ColorYellow)
			r.screen.SetContent(x, y, pathMark, style)
		}
	}

	for _, a := range f.NPCs {
		if x, y, ok := view.ToScreen(a.Pos); ok {
			style := r.tileStyle(f.Map.Symbol(a.Pos)).Bold(true)
			if color, err := gamedata.ParseColor(a.Color); err == nil {
				style = style.Foreground(color)
			}
			r.screen.SetContent(x, y, a.Glyph, style)
		}
	}

	// Player on top
	if x, y, ok := view.ToScreen(f.Player.Pos); ok {
		style := r.tileStyle(f.Map.Symbol(f.Player.Pos)).
			Foreground(tcell.ColorOrange).
			Bold(true)
		r.screen.SetContent(x, y, FacingGlyph(f.Player.Facing), style)
	}

	_, h := r.screen.Size()
	r.RenderMessage(f.Status, h-1)
	r.screen.Show()
}

// FacingGlyph returns the arrow drawn for a character facing d.
func FacingGlyph(d entity.Direction) rune {
	switch d {
	case entity.Up:
		return '^'
	case entity.Right:
		return '>'
	case entity.Down:
		return 'v'
	case entity.Left:
		return '<'
	default:
		return '@'
	}
}

func (r *Renderer) tileStyle(symbol rune) tcell.Style {
	if style, ok := r.styles[symbol]; ok {
		return style
	}
	return tcell.StyleDefault
}

// RenderMessage displays a message at the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
