package entity

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/foxtrail/internal/grid"
	"github.com/samdwyer/foxtrail/internal/pathfind"
)

// Character is anything that walks the forest: the player or an NPC.
// It implements grid.Mover, so it can be used as a passability rule.
type Character struct {
	ID     uuid.UUID
	Name   string
	Glyph  rune
	Pos    grid.Coord
	Facing Direction

	blocked   grid.BlockedSymbols
	occupancy Occupancy
}

// NewCharacter creates a character at pos. blocked lists the tile symbols
// it cannot enter.
func NewCharacter(name string, glyph rune, pos grid.Coord, blocked grid.BlockedSymbols) *Character {
	return &Character{
		ID:      uuid.New(),
		Name:    name,
		Glyph:   glyph,
		Pos:     pos,
		Facing:  Down,
		blocked: blocked,
	}
}

// SetOccupancy makes the character avoid cells held by others and report
// its own moves. The character's current cell is not registered here.
func (c *Character) SetOccupancy(o Occupancy) {
	c.occupancy = o
}

// Position returns the current column and row.
func (c *Character) Position() (int, int) {
	return c.Pos.Col, c.Pos.Row
}

// CanMoveTo implements grid.Mover.
func (c *Character) CanMoveTo(m grid.Map, dst grid.Coord) bool {
	if !grid.InBounds(m, dst) {
		return false
	}
	if c.blocked.Contains(m.Symbol(dst)) {
		return false
	}
	if c.occupancy != nil {
		if id, ok := c.occupancy.Occupant(dst); ok && id != c.ID {
			return false
		}
	}
	return true
}

// FaceTowards turns the character towards dst. Vertical movement wins
// over horizontal.
func (c *Character) FaceTowards(dst grid.Coord) {
	switch {
	case dst.Row > c.Pos.Row:
		c.Facing = Down
	case dst.Row < c.Pos.Row:
		c.Facing = Up
	case dst.Col > c.Pos.Col:
		c.Facing = Right
	case dst.Col < c.Pos.Col:
		c.Facing = Left
	}
}

// MoveTo faces towards dst and moves there without checking passability.
func (c *Character) MoveTo(dst grid.Coord) {
	c.FaceTowards(dst)
	if c.occupancy != nil {
		c.occupancy.Move(c.ID, c.Pos, dst)
	}
	c.Pos = dst
}

// Step faces d and moves one cell that way if possible. It reports
// whether the character moved.
func (c *Character) Step(m grid.Map, d Direction) bool {
	c.Facing = d
	dst := c.Pos.Add(d.Offset())
	if !c.CanMoveTo(m, dst) {
		return false
	}
	c.MoveTo(dst)
	return true
}

// MoveRandomly faces a random direction and steps that way if possible.
func (c *Character) MoveRandomly(m grid.Map, rng *rand.Rand) bool {
	return c.Step(m, Directions[rng.Intn(len(Directions))])
}

// FindPath plans a route from the character's position to dst, accepting
// any cell within the given Euclidean radius.
func (c *Character) FindPath(m grid.Map, dst grid.Coord, within float64, options ...pathfind.Option) (pathfind.Result, error) {
	return pathfind.Search(m, c.Query(dst, within), options...)
}

// Query returns the search query FindPath would run.
func (c *Character) Query(dst grid.Coord, within float64) pathfind.Query {
	return pathfind.Query{
		Source:      c.Pos,
		Destination: dst,
		Rule:        grid.Capability{Mover: c},
		Within:      within,
	}
}
