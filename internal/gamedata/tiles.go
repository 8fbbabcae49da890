package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileDef describes how a map symbol looks and whether it blocks movement.
type TileDef struct {
	Symbol         string `json:"symbol"`         // Single map character (e.g., "#")
	Name           string `json:"name"`           // Display name (e.g., "Tree")
	Color          string `json:"color"`          // Foreground hex color
	Background     string `json:"background"`     // Background hex color
	BlocksMovement bool   `json:"blocksMovement"` // True if nobody can walk here
}

// SymbolRune returns the symbol as a rune.
func (t *TileDef) SymbolRune() rune {
	if len(t.Symbol) == 0 {
		return '?'
	}
	return []rune(t.Symbol)[0]
}

// Style returns the tcell style for drawing this tile.
func (t *TileDef) Style() (tcell.Style, error) {
	fg, err := ParseColor(t.Color)
	if err != nil {
		return tcell.StyleDefault, fmt.Errorf("tile %q foreground: %w", t.Name, err)
	}
	bg, err := ParseColor(t.Background)
	if err != nil {
		return tcell.StyleDefault, fmt.Errorf("tile %q background: %w", t.Name, err)
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg), nil
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}
