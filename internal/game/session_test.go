package game

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/foxtrail/internal/agent"
	"github.com/samdwyer/foxtrail/internal/entity"
	"github.com/samdwyer/foxtrail/internal/gamedata"
	"github.com/samdwyer/foxtrail/internal/grid"
	"github.com/samdwyer/foxtrail/internal/pathfind"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), cfg, gamedata.MustLoadCharacterRegistry(), discard)
	require.NoError(t, err)
	return s
}

// gladeSession is a session on the glade map with the player at (0, 0)
// and nobody else around.
func gladeSession(t *testing.T) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.MapName = "glade"
	cfg.NPCs = 0
	s := newTestSession(t, cfg)
	s.Player().MoveTo(grid.C(0, 0))
	return s
}

func addNPC(s *Session, id string, at grid.Coord) *NPC {
	def := s.characters.GetByID(id)
	npc := &NPC{Character: s.spawn(def, at), Def: def}
	s.npcs = append(s.npcs, npc)
	return npc
}

// walk ticks until the player stops walking or the budget runs out.
func walk(s *Session, ticks int) {
	for i := 0; i < ticks && s.State() == StateWalking; i++ {
		s.Tick(context.Background(), s.cfg.MoveInterval.Milliseconds())
	}
}

func TestNewSessionGenerated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	a := newTestSession(t, cfg)
	b := newTestSession(t, cfg)

	assert.Equal(t, a.Forest().Tiles, b.Forest().Tiles, "same seed, same forest")
	assert.Equal(t, a.Player().Pos, b.Player().Pos, "same seed, same start")
	assert.True(t, a.Forest().IsPassable(a.Player().Pos))
	assert.Len(t, a.NPCs(), cfg.NPCs)
	assert.Equal(t, StateExplore, a.State())

	seen := map[grid.Coord]bool{a.Player().Pos: true}
	for _, npc := range a.NPCs() {
		assert.False(t, seen[npc.Pos], "two characters on %v", npc.Pos)
		seen[npc.Pos] = true
		assert.NotEqual(t, "fox", npc.Def.ID)
	}
}

func TestNewSessionBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapName = "nowhere"
	_, err := NewSession(context.Background(), cfg, gamedata.MustLoadCharacterRegistry(), discard)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.NPCs = -1
	_, err = NewSession(context.Background(), cfg, gamedata.MustLoadCharacterRegistry(), discard)
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestSetDestinationWalksThere(t *testing.T) {
	s := gladeSession(t)

	found, err := s.SetDestination(context.Background(), grid.C(9, 9))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, StateWalking, s.State())
	assert.NotEmpty(t, s.PlannedPath())

	walk(s, 100)
	assert.Equal(t, StateExplore, s.State())
	assert.Equal(t, grid.C(9, 9), s.Player().Pos)
	assert.Equal(t, "Arrived", s.Message())
	assert.Nil(t, s.PlannedPath())
}

func TestSetDestinationStepsOnInterval(t *testing.T) {
	s := gladeSession(t)
	_, err := s.SetDestination(context.Background(), grid.C(3, 0))
	require.NoError(t, err)

	half := s.cfg.MoveInterval.Milliseconds() / 2
	s.Tick(context.Background(), half)
	assert.Equal(t, grid.C(0, 0), s.Player().Pos, "no step before the interval")
	s.Tick(context.Background(), half)
	assert.Equal(t, grid.C(1, 0), s.Player().Pos)
	assert.Equal(t, 2*half, s.Clock())
}

func TestSetDestinationNoPath(t *testing.T) {
	s := gladeSession(t)

	// (2, 1) is a tree.
	found, err := s.SetDestination(context.Background(), grid.C(2, 1))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, StateExplore, s.State())
	assert.Equal(t, "No path to (2, 1)", s.Message())
}

func TestSetDestinationInvalid(t *testing.T) {
	s := gladeSession(t)
	_, err := s.SetDestination(context.Background(), grid.C(-1, 0))
	assert.ErrorIs(t, err, pathfind.ErrInvalidQuery)
}

func TestSetDestinationHere(t *testing.T) {
	s := gladeSession(t)
	found, err := s.SetDestination(context.Background(), grid.C(0, 0))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, StateExplore, s.State())
}

func TestWalkReplansAroundBlocker(t *testing.T) {
	s := gladeSession(t)
	_, err := s.SetDestination(context.Background(), grid.C(6, 0))
	require.NoError(t, err)

	// Someone steps onto the next cell of the path.
	next := s.PlannedPath()[0]
	s.occupancy.Place(uuid.New(), next)

	walk(s, 100)
	assert.Equal(t, grid.C(6, 0), s.Player().Pos)
}

func TestWalkGivesUpWhenWalledIn(t *testing.T) {
	s := gladeSession(t)
	_, err := s.SetDestination(context.Background(), grid.C(6, 0))
	require.NoError(t, err)

	for _, c := range grid.Neighbors(s.Forest(), s.Player().Pos) {
		s.occupancy.Place(uuid.New(), c)
	}

	walk(s, 5)
	assert.Equal(t, StateExplore, s.State())
	assert.Equal(t, grid.C(0, 0), s.Player().Pos)
	assert.Equal(t, "Path to (6, 0) is blocked", s.Message())
}

func TestMovePlayerCancelsWalk(t *testing.T) {
	s := gladeSession(t)
	_, err := s.SetDestination(context.Background(), grid.C(9, 9))
	require.NoError(t, err)

	assert.True(t, s.MovePlayer(entity.Down))
	assert.Equal(t, StateExplore, s.State())
	assert.Equal(t, grid.C(0, 1), s.Player().Pos)
	assert.Nil(t, s.PlannedPath())

	assert.False(t, s.MovePlayer(entity.Left), "map edge")
	assert.Equal(t, entity.Left, s.Player().Facing)
}

func TestFaceAndRotate(t *testing.T) {
	s := gladeSession(t)
	s.Face(entity.Up)
	s.Rotate(entity.Clockwise)
	assert.Equal(t, entity.Right, s.Player().Facing)
	s.Rotate(entity.CounterClockwise)
	s.Rotate(entity.CounterClockwise)
	assert.Equal(t, entity.Left, s.Player().Facing)
}

func TestScheduledEventsFireAfterPeriod(t *testing.T) {
	s := gladeSession(t)
	calls := 0
	s.events = append(s.events, &ScheduledEvent{
		Name:   "count",
		Period: 100,
		action: func(context.Context, int64) { calls++ },
	})

	s.Tick(context.Background(), 100)
	assert.Equal(t, 0, calls, "fires only once the period has fully passed")
	s.Tick(context.Background(), 1)
	assert.Equal(t, 1, calls)
	s.Tick(context.Background(), 100)
	assert.Equal(t, 1, calls)
	s.Tick(context.Background(), 1)
	assert.Equal(t, 2, calls)
}

func TestFollowerCatchesUp(t *testing.T) {
	s := gladeSession(t)
	badger := addNPC(s, "badger", grid.C(5, 0))

	turn := s.cfg.NPCInterval.Milliseconds() + 1
	for i := 0; i < 20; i++ {
		s.Tick(context.Background(), turn)
	}

	assert.LessOrEqual(t, grid.Euclidean(badger.Pos, s.Player().Pos), agent.FollowDistance)
	assert.NotEqual(t, s.Player().Pos, badger.Pos)
}

func TestFollowerOutOfRangeWanders(t *testing.T) {
	s := gladeSession(t)
	s.cfg.FollowRadius = 2
	badger := addNPC(s, "badger", grid.C(15, 9))

	turn := s.cfg.NPCInterval.Milliseconds() + 1
	for i := 0; i < 10; i++ {
		s.Tick(context.Background(), turn)
		assert.Nil(t, badger.walker)
	}
}

func TestWanderersStayOnGround(t *testing.T) {
	s := gladeSession(t)
	rabbit := addNPC(s, "rabbit", grid.C(8, 5))
	otter := addNPC(s, "otter", grid.C(1, 7))

	turn := s.cfg.NPCInterval.Milliseconds() + 1
	for i := 0; i < 100; i++ {
		s.Tick(context.Background(), turn)
		require.True(t, s.Forest().IsPassable(rabbit.Pos), "rabbit on %v", rabbit.Pos)
		require.NotEqual(t, '#', s.Forest().Symbol(otter.Pos), "otter in a tree at %v", otter.Pos)
		require.NotEqual(t, rabbit.Pos, otter.Pos)
		require.NotEqual(t, s.Player().Pos, rabbit.Pos)
	}
}

func TestReset(t *testing.T) {
	s := gladeSession(t)
	s.Tick(context.Background(), 1000)
	_, _ = s.SetDestination(context.Background(), grid.C(5, 5))

	require.NoError(t, s.Reset(context.Background()))
	assert.Zero(t, s.Clock())
	assert.Equal(t, StateExplore, s.State())
	assert.Nil(t, s.PlannedPath())

	id, ok := s.occupancy.Occupant(s.Player().Pos)
	assert.True(t, ok)
	assert.Equal(t, s.Player().ID, id)
}
