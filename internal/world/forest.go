package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/foxtrail/internal/grid"
	"github.com/samdwyer/foxtrail/internal/telemetry"
)

const (
	// Default forest dimensions
	DefaultWidth  = 30
	DefaultHeight = 30

	// Size bounds accepted by NewForest
	MinSize = 10
	MaxSize = 256

	// Tree line parameters
	minWalls   = 10
	maxWalls   = 40 // exclusive
	minWallLen = 4
)

var (
	// ErrBadSize indicates requested dimensions outside [MinSize, MaxSize].
	ErrBadSize = errors.New("world: bad forest size")
	// ErrCellCount indicates encoded cells that do not match width*height.
	ErrCellCount = errors.New("world: cell count does not match dimensions")
)

// Forest is the game map. It implements grid.Map.
type Forest struct {
	Tiles  [][]Tile
	width  int
	height int
	rng    *rand.Rand
}

// NewForest creates an open forest (all ground). A nil rng is seeded from
// the clock.
func NewForest(width, height int, rng *rand.Rand) (*Forest, error) {
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	f := newForest(width, height, rng)
	f.fill(TileGround)
	return f, nil
}

func newForest(width, height int, rng *rand.Rand) *Forest {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Forest{
		Tiles:  tiles,
		width:  width,
		height: height,
		rng:    rng,
	}
}

func (f *Forest) fill(t Tile) {
	for y := range f.Tiles {
		for x := range f.Tiles[y] {
			f.Tiles[y][x] = t
		}
	}
}

// FromCells decodes the row-major cell encoding used by the game server:
// 0 is ground, anything else is a tree.
func FromCells(width, height int, cells []int32) (*Forest, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrCellCount, len(cells), width, height)
	}
	f := newForest(width, height, nil)
	for i, cell := range cells {
		tile := TileGround
		if cell != 0 {
			tile = TileTree
		}
		f.Tiles[i/width][i%width] = tile
	}
	return f, nil
}

// FromGrid copies any grid.Map into a Forest, keeping its symbols.
func FromGrid(m grid.Map) *Forest {
	f := newForest(m.Width(), m.Height(), nil)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.Tiles[y][x] = Tile(m.Symbol(grid.C(x, y)))
		}
	}
	return f
}

// Parse builds a Forest from newline-separated rows of tile symbols.
func Parse(text string) (*Forest, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse forest: %w", err)
	}
	return FromGrid(g), nil
}

// Generate scatters straight lines of trees across the forest.
func (f *Forest) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "forest.generate")
	defer span.End()

	startTime := time.Now()

	walls := minWalls + f.rng.Intn(maxWalls-minWalls)
	for i := 0; i < walls; i++ {
		if f.rng.Intn(2) == 0 {
			f.plantVertical()
		} else {
			f.plantHorizontal()
		}
	}

	span.SetAttributes(
		attribute.Int("forest.width", f.width),
		attribute.Int("forest.height", f.height),
		attribute.Int("forest.wall_count", walls),
		attribute.Int("forest.tree_count", f.TreeCount()),
		attribute.Int64("forest.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// plantVertical plants a vertical tree line that fits inside the map.
func (f *Forest) plantVertical() {
	length := minWallLen + f.rng.Intn(f.height/2-minWallLen)
	x := f.rng.Intn(f.width)
	y := f.rng.Intn(f.height - length)
	for i := 0; i < length; i++ {
		f.Tiles[y+i][x] = TileTree
	}
}

// plantHorizontal plants a horizontal tree line that fits inside the map.
func (f *Forest) plantHorizontal() {
	length := minWallLen + f.rng.Intn(f.width/2-minWallLen)
	x := f.rng.Intn(f.width - length)
	y := f.rng.Intn(f.height)
	for i := 0; i < length; i++ {
		f.Tiles[y][x+i] = TileTree
	}
}

// Width implements grid.Map.
func (f *Forest) Width() int { return f.width }

// Height implements grid.Map.
func (f *Forest) Height() int { return f.height }

// Symbol implements grid.Map.
func (f *Forest) Symbol(c grid.Coord) rune {
	return f.Tiles[c.Row][c.Col].Rune()
}

// IsPassable returns true if the given position can be walked on.
func (f *Forest) IsPassable(c grid.Coord) bool {
	if c.Col < 0 || c.Col >= f.width || c.Row < 0 || c.Row >= f.height {
		return false
	}
	return f.Tiles[c.Row][c.Col].IsPassable()
}

// GetTile returns the tile at the given position, or water off the map.
func (f *Forest) GetTile(c grid.Coord) Tile {
	if c.Col < 0 || c.Col >= f.width || c.Row < 0 || c.Row >= f.height {
		return TileWater
	}
	return f.Tiles[c.Row][c.Col]
}

// TreeCount returns the number of tree tiles.
func (f *Forest) TreeCount() int {
	n := 0
	for y := range f.Tiles {
		for _, t := range f.Tiles[y] {
			if t == TileTree {
				n++
			}
		}
	}
	return n
}

// RandomOpenPoint returns a random passable position. ok is false when
// the forest has no passable tile.
func (f *Forest) RandomOpenPoint() (c grid.Coord, ok bool) {
	// Try random points until we find a passable one (max 100 attempts)
	for i := 0; i < 100; i++ {
		c = grid.C(f.rng.Intn(f.width), f.rng.Intn(f.height))
		if f.IsPassable(c) {
			return c, true
		}
	}

	// Fallback to the first passable tile in row-major order
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.Tiles[y][x].IsPassable() {
				return grid.C(x, y), true
			}
		}
	}
	return grid.Coord{}, false
}
