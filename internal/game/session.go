package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/foxtrail/data"
	"github.com/samdwyer/foxtrail/internal/agent"
	"github.com/samdwyer/foxtrail/internal/entity"
	"github.com/samdwyer/foxtrail/internal/gamedata"
	"github.com/samdwyer/foxtrail/internal/grid"
	"github.com/samdwyer/foxtrail/internal/pathfind"
	"github.com/samdwyer/foxtrail/internal/telemetry"
	"github.com/samdwyer/foxtrail/internal/world"
)

// ErrNoGround means the map has nowhere to place the player.
var ErrNoGround = errors.New("game: no open ground for the player")

// maxSpawnAttempts bounds the search for a free NPC cell.
const maxSpawnAttempts = 20

// NPC is a non-player character with its own path.
type NPC struct {
	*entity.Character
	Def    *gamedata.CharacterDef
	walker *entity.Walker
}

// ScheduledEvent runs its action every Period milliseconds of game time.
type ScheduledEvent struct {
	Name   string
	Period int64
	last   int64
	action func(ctx context.Context, now int64)
}

// Session is the headless simulation: the forest, the characters on it and
// the game clock. It is not safe for concurrent use.
type Session struct {
	cfg        Config
	rng        *rand.Rand
	logger     *slog.Logger
	characters *gamedata.CharacterRegistry
	planner    *agent.Planner

	forest    *world.Forest
	occupancy entity.Positions
	player    *entity.Character
	walker    *entity.Walker
	npcs      []*NPC
	events    []*ScheduledEvent

	clock    int64 // game time in milliseconds
	lastStep int64
	state    State
	message  string
}

// NewSession builds the forest and spawns the characters.
func NewSession(ctx context.Context, cfg Config, characters *gamedata.CharacterRegistry, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var searchOptions []pathfind.Option
	if cfg.ExpansionLimit > 0 {
		searchOptions = append(searchOptions, pathfind.WithExpansionLimit(cfg.ExpansionLimit))
	}

	s := &Session{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger.With("seed", seed),
		characters: characters,
		planner: agent.NewPlanner(
			agent.WithLogger(logger),
			agent.WithSearchOptions(searchOptions...),
		),
	}
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset builds a new map, respawns everyone and restarts the clock.
func (s *Session) Reset(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	forest, err := s.buildForest(ctx)
	if err != nil {
		return err
	}

	s.forest = forest
	s.occupancy = entity.Positions{}
	s.walker = nil
	s.npcs = nil
	s.clock, s.lastStep = 0, 0
	s.state = StateExplore
	s.message = ""

	start, ok := s.freeCell()
	if !ok {
		if start, ok = forest.RandomOpenPoint(); !ok {
			return ErrNoGround
		}
	}
	s.player = s.spawn(s.characters.Player(), start)

	for i := 0; i < s.cfg.NPCs; i++ {
		def := s.characters.SpawnRandom(s.rng)
		if def == nil {
			break
		}
		pos, ok := s.freeCell()
		if !ok {
			break
		}
		s.npcs = append(s.npcs, &NPC{Character: s.spawn(def, pos), Def: def})
	}

	s.events = []*ScheduledEvent{
		{Name: "npc.turn", Period: s.cfg.NPCInterval.Milliseconds(), action: s.npcTurn},
	}

	span.SetAttributes(
		attribute.Int("forest.width", forest.Width()),
		attribute.Int("forest.height", forest.Height()),
		attribute.Int("npc.count", len(s.npcs)),
		attribute.Int("player.start_x", start.Col),
		attribute.Int("player.start_y", start.Row),
	)
	s.logger.Info("session started",
		"width", forest.Width(),
		"height", forest.Height(),
		"npcs", len(s.npcs),
		"player", start)
	return nil
}

func (s *Session) buildForest(ctx context.Context) (*world.Forest, error) {
	if s.cfg.MapName != "" {
		g, err := data.LoadMap(s.cfg.MapName)
		if err != nil {
			return nil, fmt.Errorf("failed to load map: %w", err)
		}
		return world.FromGrid(g), nil
	}
	forest, err := world.NewForest(s.cfg.Width, s.cfg.Height, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create forest: %w", err)
	}
	forest.Generate(ctx)
	return forest, nil
}

func (s *Session) spawn(def *gamedata.CharacterDef, pos grid.Coord) *entity.Character {
	c := entity.NewCharacter(def.Name, def.SymbolRune(), pos, grid.Blocking(def.Blocked))
	c.SetOccupancy(s.occupancy)
	s.occupancy.Place(c.ID, pos)
	return c
}

// freeCell finds random ground nobody stands on.
func (s *Session) freeCell() (grid.Coord, bool) {
	for i := 0; i < maxSpawnAttempts; i++ {
		c := grid.C(s.rng.Intn(s.forest.Width()), s.rng.Intn(s.forest.Height()))
		if _, taken := s.occupancy.Occupant(c); !taken && s.forest.IsPassable(c) {
			return c, true
		}
	}
	return grid.Coord{}, false
}

// Forest returns the current map.
func (s *Session) Forest() *world.Forest { return s.forest }

// Player returns the player character.
func (s *Session) Player() *entity.Character { return s.player }

// NPCs returns the non-player characters.
func (s *Session) NPCs() []*NPC { return s.npcs }

// Clock returns the game time in milliseconds.
func (s *Session) Clock() int64 { return s.clock }

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Message returns the latest status message.
func (s *Session) Message() string { return s.message }

// PlannedPath returns the cells the player has yet to walk.
func (s *Session) PlannedPath() []grid.Coord {
	if s.walker == nil {
		return nil
	}
	return s.walker.Remaining()
}

// SetDestination plans a path for the player to dst and starts walking it.
// It reports whether a path was found; an error means dst is not a
// valid query at all.
func (s *Session) SetDestination(ctx context.Context, dst grid.Coord) (bool, error) {
	plan, err := s.planner.Plan(ctx, s.forest, agent.Request{
		Agent: "player",
		Query: s.player.Query(dst, 0),
	})
	if err != nil {
		return false, err
	}
	if !plan.Found() {
		s.message = fmt.Sprintf("No path to %v", dst)
		return false, nil
	}

	s.walker = entity.NewWalker(plan.Result.Path)
	s.lastStep = s.clock
	s.state = StateWalking
	s.message = fmt.Sprintf("Walking to %v (%d steps)", dst, len(plan.Result.Path)-1)
	if s.walker.Done() {
		s.stopWalking("Already there")
	}
	return true, nil
}

func (s *Session) stopWalking(msg string) {
	s.walker = nil
	s.state = StateExplore
	s.message = msg
}

// MovePlayer steps the player one cell and cancels any walk.
func (s *Session) MovePlayer(d entity.Direction) bool {
	if s.walker != nil {
		s.stopWalking("")
	}
	return s.player.Step(s.forest, d)
}

// Face turns the player without moving.
func (s *Session) Face(d entity.Direction) {
	s.player.Facing = d
}

// Rotate turns the player a quarter turn.
func (s *Session) Rotate(r entity.Rotation) {
	s.player.Facing = s.player.Facing.Rotate(r)
}

// Tick advances the game clock by elapsed milliseconds, steps the player
// along its path and runs due scheduled events.
func (s *Session) Tick(ctx context.Context, elapsed int64) {
	s.clock += elapsed

	if s.walker != nil && s.clock >= s.lastStep+s.cfg.MoveInterval.Milliseconds() {
		s.lastStep = s.clock
		s.stepPlayer(ctx)
	}

	for _, ev := range s.events {
		if s.clock > ev.last+ev.Period {
			ev.action(ctx, s.clock)
			ev.last = s.clock
		}
	}
}

func (s *Session) stepPlayer(ctx context.Context) {
	err := s.walker.Step(s.forest, s.player)
	switch {
	case errors.Is(err, entity.ErrStepBlocked):
		// Something moved into the way; plan around it once.
		dst := s.walker.Destination()
		s.logger.Debug("player path blocked", "at", s.player.Pos, "to", dst)
		if found, err := s.SetDestination(ctx, dst); err != nil || !found {
			s.stopWalking(fmt.Sprintf("Path to %v is blocked", dst))
		}
	case err != nil:
		s.stopWalking(err.Error())
	case s.walker.Done():
		s.stopWalking("Arrived")
	}
}

// npcTurn moves every NPC once. Followers that need a new path are planned
// together before anyone moves.
func (s *Session) npcTurn(ctx context.Context, _ int64) {
	intents := make([]agent.Intent, len(s.npcs))
	var (
		reqs    []agent.Request
		waiting []*NPC
	)
	for i, npc := range s.npcs {
		intents[i] = agent.Decide(npc.Def.Behavior, npc.Pos, s.player.Pos, s.cfg.FollowRadius)
		if intents[i] == agent.Follow && s.needsPlan(npc) {
			reqs = append(reqs, agent.Request{
				Agent: npc.ID.String(),
				Query: npc.Query(s.player.Pos, agent.FollowDistance),
			})
			waiting = append(waiting, npc)
		}
	}

	if len(reqs) > 0 {
		plans, err := s.planner.PlanAll(ctx, s.forest, reqs)
		if err != nil {
			s.logger.Warn("npc planning failed", "err", err)
		}
		for i, plan := range plans {
			waiting[i].walker = nil
			if plan.Found() {
				waiting[i].walker = entity.NewWalker(plan.Result.Path)
			}
		}
	}

	for i, npc := range s.npcs {
		switch intents[i] {
		case agent.Wander:
			npc.walker = nil
			npc.MoveRandomly(s.forest, s.rng)
		case agent.Follow:
			if npc.walker == nil {
				continue
			}
			if err := npc.walker.Step(s.forest, npc.Character); err != nil {
				npc.walker = nil
			}
		}
	}
}

// needsPlan reports whether a follower's path is missing, used up, or no
// longer ends next to the player.
func (s *Session) needsPlan(npc *NPC) bool {
	if npc.walker == nil || npc.walker.Done() {
		return true
	}
	return grid.Euclidean(npc.walker.Destination(), s.player.Pos) > agent.FollowDistance
}
