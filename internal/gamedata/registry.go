package gamedata

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/samdwyer/foxtrail/internal/grid"
)

// CharacterRegistry holds loaded character definitions and provides spawning utilities.
type CharacterRegistry struct {
	player      *CharacterDef
	characters  []CharacterDef
	totalWeight int
}

// NewCharacterRegistry creates a registry from loaded character definitions.
// playerID must name one of them.
func NewCharacterRegistry(playerID string, characters []CharacterDef) (*CharacterRegistry, error) {
	r := &CharacterRegistry{characters: characters}
	for i := range characters {
		r.totalWeight += characters[i].SpawnWeight
		if characters[i].ID == playerID {
			r.player = &characters[i]
		}
	}
	if r.player == nil {
		return nil, fmt.Errorf("player character %q not defined", playerID)
	}
	return r, nil
}

// LoadCharacterRegistry loads and creates a registry from the embedded characters.json.
func LoadCharacterRegistry() (*CharacterRegistry, error) {
	file, err := LoadCharacters()
	if err != nil {
		return nil, err
	}
	if len(file.Characters) == 0 {
		return nil, errors.New("no characters loaded from characters.json")
	}
	return NewCharacterRegistry(file.Player, file.Characters)
}

// MustLoadCharacterRegistry loads a registry, panicking on error.
func MustLoadCharacterRegistry() *CharacterRegistry {
	registry, err := LoadCharacterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Player returns the player character definition.
func (r *CharacterRegistry) Player() *CharacterDef {
	return r.player
}

// SpawnRandom selects a random NPC definition using weighted probability.
// Returns nil when no character has a positive spawn weight.
func (r *CharacterRegistry) SpawnRandom(rng *rand.Rand) *CharacterDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.characters {
		cumulative += r.characters[i].SpawnWeight
		if roll < cumulative {
			return &r.characters[i]
		}
	}

	// Unreachable while weights are non-negative
	return nil
}

// GetByID returns the character definition with the given ID, or nil if not found.
func (r *CharacterRegistry) GetByID(id string) *CharacterDef {
	for i := range r.characters {
		if r.characters[i].ID == id {
			return &r.characters[i]
		}
	}
	return nil
}

// Count returns the number of character types in the registry.
func (r *CharacterRegistry) Count() int {
	return len(r.characters)
}

// =============================================================================
// TileRegistry
// =============================================================================

// TileRegistry holds loaded tile definitions keyed by symbol.
type TileRegistry struct {
	tiles map[rune]*TileDef
	all   []TileDef
}

// NewTileRegistry creates a registry from loaded tile definitions.
func NewTileRegistry(tiles []TileDef) *TileRegistry {
	registry := &TileRegistry{
		tiles: make(map[rune]*TileDef, len(tiles)),
		all:   tiles,
	}
	for i := range tiles {
		registry.tiles[tiles[i].SymbolRune()] = &tiles[i]
	}
	return registry
}

// LoadTileRegistry loads and creates a registry from the embedded tiles.json.
func LoadTileRegistry() (*TileRegistry, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	return NewTileRegistry(tiles), nil
}

// MustLoadTileRegistry loads a registry, panicking on error.
func MustLoadTileRegistry() *TileRegistry {
	registry, err := LoadTileRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the tile definition for a symbol, or nil if unknown.
func (r *TileRegistry) Get(symbol rune) *TileDef {
	return r.tiles[symbol]
}

// Blocking returns the rule that blocks every tile marked blocksMovement.
func (r *TileRegistry) Blocking() grid.BlockedSymbols {
	var symbols []rune
	for i := range r.all {
		if r.all[i].BlocksMovement {
			symbols = append(symbols, r.all[i].SymbolRune())
		}
	}
	return grid.Blocking(string(symbols))
}

// All returns all tile definitions.
func (r *TileRegistry) All() []TileDef {
	return r.all
}
