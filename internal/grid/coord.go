// Package grid provides a read-only view of a rectangular tile map and the
// rules that decide which of its cells a mover may enter.
package grid

import (
	"fmt"
	"math"
)

// Coord identifies a grid cell by column and row.
type Coord struct {
	Col, Row int
}

// C is shorthand for Coord{Col: col, Row: row}.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// Add returns the coordinate offset by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Less orders coordinates by column, then row.
func (c Coord) Less(o Coord) bool {
	if c.Col != o.Col {
		return c.Col < o.Col
	}
	return c.Row < o.Row
}

// String returns the coordinate as "(col, row)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Col, c.Row)
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Coord) float64 {
	return math.Hypot(float64(a.Col-b.Col), float64(a.Row-b.Row))
}

// Chebyshev returns max(|dc|, |dr|) between a and b.
func Chebyshev(a, b Coord) int {
	return max(abs(a.Col-b.Col), abs(a.Row-b.Row))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
