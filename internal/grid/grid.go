package grid

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Map is read access to a rectangular array of cell symbols.
// Implementations must not change while a search is reading them.
type Map interface {
	Width() int
	Height() int
	// Symbol returns the symbol at c. c is always in bounds.
	Symbol(c Coord) rune
}

// neighborOffsets lists the 8 surrounding cells clockwise from north.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// InBounds reports whether c lies inside m.
func InBounds(m Map, c Coord) bool {
	return c.Col >= 0 && c.Col < m.Width() && c.Row >= 0 && c.Row < m.Height()
}

// Neighbors returns the in-bounds cells at Chebyshev distance 1 from c,
// clockwise from north.
func Neighbors(m Map, c Coord) []Coord {
	return AppendNeighbors(make([]Coord, 0, len(neighborOffsets)), m, c)
}

// AppendNeighbors is Neighbors appending to dst, for callers that reuse a buffer.
func AppendNeighbors(dst []Coord, m Map, c Coord) []Coord {
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if InBounds(m, n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Grid is an immutable Map backed by a dense row-major rune slice.
type Grid struct {
	width, height int
	cells         []rune
}

// New builds a Grid from rows of text. Every row must have the same
// number of runes. The input is copied.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]rune, 0, w*len(rows))
	for _, row := range rows {
		r := []rune(row)
		if len(r) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, r...)
	}
	return &Grid{width: w, height: len(rows), cells: cells}, nil
}

// Parse builds a Grid from newline-separated text. A trailing newline and
// carriage returns are ignored.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return New(strings.Split(text, "\n"))
}

// MustParse is Parse that panics on error. Intended for tests and fixed maps.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Symbol returns the symbol at c.
func (g *Grid) Symbol(c Coord) rune {
	return g.cells[c.Row*g.width+c.Col]
}

// Rows returns the grid as text rows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := range rows {
		rows[y] = string(g.cells[y*g.width : (y+1)*g.width])
	}
	return rows
}

// String returns the rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
