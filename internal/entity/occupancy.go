package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/foxtrail/internal/grid"
)

// Occupancy tracks which character stands on which cell.
type Occupancy interface {
	Occupant(c grid.Coord) (uuid.UUID, bool)
	Move(id uuid.UUID, from, to grid.Coord)
}

// Positions is a map-backed Occupancy. At most one character per cell.
type Positions map[grid.Coord]uuid.UUID

// Occupant returns the character standing at c, if any.
func (p Positions) Occupant(c grid.Coord) (uuid.UUID, bool) {
	id, ok := p[c]
	return id, ok
}

// Place puts a character on c.
func (p Positions) Place(id uuid.UUID, c grid.Coord) {
	p[c] = id
}

// Move relocates a character. A stale from is ignored.
func (p Positions) Move(id uuid.UUID, from, to grid.Coord) {
	if p[from] == id {
		delete(p, from)
	}
	p[to] = id
}
