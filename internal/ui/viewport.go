package ui

import "github.com/samdwyer/foxtrail/internal/grid"

// Viewport maps screen cells to map cells. The followed character sits
// at the horizontal center, one row above the vertical center.
type Viewport struct {
	Origin        grid.Coord // map cell drawn at screen (0, 0)
	Width, Height int        // in screen cells
}

// NewViewport centers a width x height viewport on center.
func NewViewport(center grid.Coord, width, height int) Viewport {
	return Viewport{
		Origin: center.Add(-width/2, -max(height/2-1, 0)),
		Width:  width,
		Height: height,
	}
}

// ToMap returns the map cell under screen cell (x, y).
func (v Viewport) ToMap(x, y int) grid.Coord {
	return v.Origin.Add(x, y)
}

// ToScreen returns the screen cell showing map cell c. ok is false when c
// is outside the viewport.
func (v Viewport) ToScreen(c grid.Coord) (x, y int, ok bool) {
	x, y = c.Col-v.Origin.Col, c.Row-v.Origin.Row
	ok = x >= 0 && x < v.Width && y >= 0 && y < v.Height
	return x, y, ok
}
