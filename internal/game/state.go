// Package game provides the session simulation, its configuration and the
// terminal game loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player moves with the keys.
	StateExplore State = iota
	// StateWalking means the player is following a planned path.
	StateWalking
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateWalking:
		return "walking"
	default:
		return "unknown"
	}
}
