package gamedata

// Behavior names how a non-player character picks its destinations.
type Behavior string

const (
	BehaviorWander Behavior = "wander" // random steps
	BehaviorFollow Behavior = "follow" // paths towards the player
)

// CharacterDef defines a character type loaded from JSON.
type CharacterDef struct {
	ID          string   `json:"id"`          // Unique identifier (e.g., "fox")
	Name        string   `json:"name"`        // Display name (e.g., "Fox")
	Symbol      string   `json:"symbol"`      // Single character for rendering
	Color       string   `json:"color"`       // Hex color
	Blocked     string   `json:"blocked"`     // Tile symbols this character cannot enter
	Behavior    Behavior `json:"behavior"`    // Only meaningful for NPCs
	SpawnWeight int      `json:"spawnWeight"` // Relative NPC spawn chance; 0 never spawns
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *CharacterDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return []rune(c.Symbol)[0]
}

// CharactersFile represents the structure of characters.json.
type CharactersFile struct {
	Player     string         `json:"player"` // ID of the player character
	Characters []CharacterDef `json:"characters"`
}

// LoadCharacters loads character definitions from the embedded characters.json file.
func LoadCharacters() (CharactersFile, error) {
	return Load[CharactersFile]("characters.json")
}
