package agent

import (
	"math"

	"github.com/samdwyer/foxtrail/internal/gamedata"
	"github.com/samdwyer/foxtrail/internal/grid"
)

// Intent is what an NPC wants to do on its next turn.
type Intent int

const (
	Idle Intent = iota
	Wander
	Follow
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case Idle:
		return "idle"
	case Wander:
		return "wander"
	case Follow:
		return "follow"
	default:
		return "unknown"
	}
}

// FollowDistance is the radius a follower tries to end up within:
// any of the eight cells around the target.
var FollowDistance = math.Sqrt2

// Decide picks an intent for an NPC at self given the player at target.
// Followers chase a target within radius and wander otherwise; once
// adjacent they wait.
func Decide(b gamedata.Behavior, self, target grid.Coord, radius float64) Intent {
	if b != gamedata.BehaviorFollow {
		return Wander
	}
	d := grid.Euclidean(self, target)
	switch {
	case d <= FollowDistance:
		return Idle
	case d <= radius:
		return Follow
	default:
		return Wander
	}
}
