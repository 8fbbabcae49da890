package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/foxtrail/internal/grid"
)

// ErrStepBlocked means the next cell on the path can no longer be entered.
// The caller should plan a new path.
var ErrStepBlocked = errors.New("entity: next step blocked")

// Walker moves a character along a planned path, one cell per Step.
type Walker struct {
	path []grid.Coord
	next int
}

// NewWalker creates a walker for path. path[0] is the character's
// current cell, as returned by pathfind.Search.
func NewWalker(path []grid.Coord) *Walker {
	return &Walker{path: path, next: 1}
}

// Step moves c onto the next cell of the path. Stepping a finished walker
// does nothing.
func (w *Walker) Step(m grid.Map, c *Character) error {
	if w.Done() {
		return nil
	}
	dst := w.path[w.next]
	if !c.CanMoveTo(m, dst) {
		return fmt.Errorf("%w: %v", ErrStepBlocked, dst)
	}
	c.MoveTo(dst)
	w.next++
	return nil
}

// Done reports whether the path has been walked to its end.
func (w *Walker) Done() bool {
	return w.next >= len(w.path)
}

// Remaining returns the cells not yet stepped on.
func (w *Walker) Remaining() []grid.Coord {
	if w.Done() {
		return nil
	}
	return w.path[w.next:]
}

// Destination returns the last cell of the path.
func (w *Walker) Destination() grid.Coord {
	return w.path[len(w.path)-1]
}
