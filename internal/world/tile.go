// Package world provides the forest tile map and the ways to obtain one:
// procedural generation, text maps and the server's cell encoding.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileGround is open ground.
	TileGround Tile = '.'
	// TileTree blocks movement.
	TileTree Tile = '#'
	// TileWater blocks movement and fills everything beyond the map edge.
	TileWater Tile = '~'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileGround
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
