package entity

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/foxtrail/internal/grid"
	"github.com/samdwyer/foxtrail/internal/pathfind"
)

func TestDirectionRotate(t *testing.T) {
	tests := []struct {
		d    Direction
		r    Rotation
		want Direction
	}{
		{Up, Clockwise, Right},
		{Right, Clockwise, Down},
		{Down, Clockwise, Left},
		{Left, Clockwise, Up},
		{Up, CounterClockwise, Left},
		{Left, CounterClockwise, Down},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Rotate(tt.r), "%v.Rotate(%d)", tt.d, tt.r)
	}
}

func TestDirectionOffset(t *testing.T) {
	for _, d := range Directions {
		dc, dr := d.Offset()
		assert.Equal(t, 1, abs(dc)+abs(dr), "%v offset is not one orthogonal step", d)
	}
	dc, dr := Up.Offset()
	assert.Equal(t, [2]int{0, -1}, [2]int{dc, dr})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestFaceTowardsPrefersVertical(t *testing.T) {
	c := NewCharacter("fox", 'f', grid.C(2, 2), grid.Blocking("#"))
	tests := []struct {
		dst  grid.Coord
		want Direction
	}{
		{grid.C(3, 3), Down},
		{grid.C(1, 1), Up},
		{grid.C(3, 2), Right},
		{grid.C(1, 2), Left},
	}
	for _, tt := range tests {
		c.FaceTowards(tt.dst)
		assert.Equal(t, tt.want, c.Facing, "FaceTowards(%v)", tt.dst)
	}

	c.Facing = Left
	c.FaceTowards(c.Pos)
	assert.Equal(t, Left, c.Facing, "facing own cell keeps direction")
}

func TestCanMoveTo(t *testing.T) {
	m := grid.MustParse("..#\n.~.")
	fox := NewCharacter("fox", 'f', grid.C(0, 0), grid.Blocking("#~"))
	otter := NewCharacter("otter", 'o', grid.C(0, 1), grid.Blocking("#"))

	assert.True(t, fox.CanMoveTo(m, grid.C(1, 0)))
	assert.False(t, fox.CanMoveTo(m, grid.C(2, 0)))
	assert.False(t, fox.CanMoveTo(m, grid.C(1, 1)))
	assert.True(t, otter.CanMoveTo(m, grid.C(1, 1)))
	assert.False(t, fox.CanMoveTo(m, grid.C(-1, 0)))
	assert.False(t, fox.CanMoveTo(m, grid.C(0, 2)))

	occ := Positions{}
	occ.Place(fox.ID, fox.Pos)
	occ.Place(otter.ID, otter.Pos)
	fox.SetOccupancy(occ)
	otter.SetOccupancy(occ)

	assert.False(t, fox.CanMoveTo(m, otter.Pos), "occupied by another character")
	assert.True(t, fox.CanMoveTo(m, fox.Pos), "own cell")
}

func TestMoveToUpdatesOccupancy(t *testing.T) {
	occ := Positions{}
	c := NewCharacter("fox", 'f', grid.C(0, 0), grid.Blocking(""))
	c.SetOccupancy(occ)
	occ.Place(c.ID, c.Pos)

	c.MoveTo(grid.C(1, 0))

	_, stale := occ.Occupant(grid.C(0, 0))
	id, ok := occ.Occupant(grid.C(1, 0))
	assert.False(t, stale)
	assert.True(t, ok)
	assert.Equal(t, c.ID, id)
	assert.Equal(t, Right, c.Facing)
}

func TestPositionsMoveIgnoresStaleFrom(t *testing.T) {
	occ := Positions{}
	a, b := uuid.New(), uuid.New()
	occ.Place(a, grid.C(0, 0))
	occ.Move(b, grid.C(0, 0), grid.C(1, 1))

	id, _ := occ.Occupant(grid.C(0, 0))
	assert.Equal(t, a, id)
	id, _ = occ.Occupant(grid.C(1, 1))
	assert.Equal(t, b, id)
}

func TestStep(t *testing.T) {
	m := grid.MustParse("...\n.#.\n...")
	c := NewCharacter("fox", 'f', grid.C(1, 0), grid.Blocking("#"))

	assert.False(t, c.Step(m, Down))
	assert.Equal(t, grid.C(1, 0), c.Pos)
	assert.Equal(t, Down, c.Facing, "blocked step still turns")

	assert.True(t, c.Step(m, Left))
	assert.Equal(t, grid.C(0, 0), c.Pos)

	assert.False(t, c.Step(m, Up), "edge of the map")
}

func TestMoveRandomlyStaysPassable(t *testing.T) {
	m := grid.MustParse(".#...\n..#..\n#...#\n.....")
	c := NewCharacter("rabbit", 'r', grid.C(0, 0), grid.Blocking("#"))
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		c.MoveRandomly(m, rng)
		require.True(t, grid.InBounds(m, c.Pos))
		require.NotEqual(t, '#', m.Symbol(c.Pos), "walked into a tree at %v", c.Pos)
	}
}

func TestFindPathAvoidsCharacters(t *testing.T) {
	m := grid.MustParse("...\n...\n...")
	occ := Positions{}
	fox := NewCharacter("fox", 'f', grid.C(0, 1), grid.Blocking("#"))
	occ.Place(fox.ID, fox.Pos)
	fox.SetOccupancy(occ)

	// A wall of badgers down the middle column except the bottom cell.
	for row := 0; row < 2; row++ {
		occ.Place(uuid.New(), grid.C(1, row))
	}

	res, err := fox.FindPath(m, grid.C(2, 1), 0)
	require.NoError(t, err)
	assert.Contains(t, res.Path, grid.C(1, 2))

	occ.Place(uuid.New(), grid.C(1, 2))
	_, err = fox.FindPath(m, grid.C(2, 1), 0)
	assert.ErrorIs(t, err, pathfind.ErrNotFound)
}

func TestFindPathWithin(t *testing.T) {
	m := grid.MustParse(".....\n.....\n..#..")
	fox := NewCharacter("fox", 'f', grid.C(0, 0), grid.Blocking("#"))

	res, err := fox.FindPath(m, grid.C(2, 2), 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, grid.Euclidean(res.Path[len(res.Path)-1], grid.C(2, 2)), 1.0)
}

func TestWalker(t *testing.T) {
	m := grid.MustParse("....\n....")
	c := NewCharacter("fox", 'f', grid.C(0, 0), grid.Blocking("#"))
	res, err := c.FindPath(m, grid.C(3, 0), 0)
	require.NoError(t, err)

	w := NewWalker(res.Path)
	assert.Equal(t, grid.C(3, 0), w.Destination())
	assert.Len(t, w.Remaining(), 3)

	for !w.Done() {
		require.NoError(t, w.Step(m, c))
	}
	assert.Equal(t, grid.C(3, 0), c.Pos)
	assert.Equal(t, Right, c.Facing)
	assert.Nil(t, w.Remaining())
	assert.NoError(t, w.Step(m, c), "finished walker is a no-op")
}

func TestWalkerBlocked(t *testing.T) {
	occ := Positions{}
	m := grid.MustParse("...")
	c := NewCharacter("fox", 'f', grid.C(0, 0), grid.Blocking("#"))
	c.SetOccupancy(occ)
	occ.Place(c.ID, c.Pos)

	w := NewWalker([]grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0)})
	occ.Place(uuid.New(), grid.C(1, 0))

	err := w.Step(m, c)
	assert.True(t, errors.Is(err, ErrStepBlocked))
	assert.Equal(t, grid.C(0, 0), c.Pos)
	assert.False(t, w.Done())
}

func TestSingleCellPathIsDone(t *testing.T) {
	w := NewWalker([]grid.Coord{grid.C(4, 4)})
	assert.True(t, w.Done())
	assert.Equal(t, grid.C(4, 4), w.Destination())
}
