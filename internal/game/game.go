package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/foxtrail/internal/entity"
	"github.com/samdwyer/foxtrail/internal/gamedata"
	"github.com/samdwyer/foxtrail/internal/ui"
)

// tickInterval is the wall time between simulation ticks (about 30 per second).
const tickInterval = 33 * time.Millisecond

// Game is the interactive terminal front end over a Session.
type Game struct {
	cfg        Config
	logger     *slog.Logger
	screen     *ui.Screen
	renderer   *ui.Renderer
	characters *gamedata.CharacterRegistry
	session    *Session
	lastTick   time.Time
	running    bool
}

// New creates a new game instance.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	tiles, err := gamedata.LoadTileRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load tiles: %w", err)
	}
	characters, err := gamedata.LoadCharacterRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load characters: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:        cfg,
		logger:     logger,
		screen:     screen,
		renderer:   ui.NewRenderer(screen, tiles),
		characters: characters,
		running:    true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	session, err := NewSession(ctx, g.cfg, g.characters, g.logger)
	if err != nil {
		return err
	}
	g.session = session

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go g.screen.Pulse(ctx, tickInterval)
	g.lastTick = time.Now()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) render() {
	s := g.session
	npcs := make([]ui.Actor, 0, len(s.NPCs()))
	for _, npc := range s.NPCs() {
		npcs = append(npcs, ui.Actor{Pos: npc.Pos, Glyph: npc.Glyph, Color: npc.Def.Color})
	}

	status := fmt.Sprintf("%s %v facing %s", s.State(), s.Player().Pos, s.Player().Facing)
	if msg := s.Message(); msg != "" {
		status += " | " + msg
	}

	g.renderer.Render(ui.Frame{
		Map:    s.Forest(),
		Player: s.Player(),
		NPCs:   npcs,
		Path:   s.PlannedPath(),
		Status: status,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		now := time.Now()
		g.session.Tick(ctx, now.Sub(g.lastTick).Milliseconds())
		g.lastTick = now
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.MovePlayer(entity.Up)
	case tcell.KeyDown:
		g.session.MovePlayer(entity.Down)
	case tcell.KeyLeft:
		g.session.MovePlayer(entity.Left)
	case tcell.KeyRight:
		g.session.MovePlayer(entity.Right)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			g.session.MovePlayer(entity.Up)
		case 's', 'S':
			g.session.MovePlayer(entity.Down)
		case 'a', 'A':
			g.session.MovePlayer(entity.Left)
		case 'd', 'D':
			g.session.MovePlayer(entity.Right)
		case 'q', 'Q':
			g.session.Rotate(entity.CounterClockwise)
		case 'e', 'E':
			g.session.Rotate(entity.Clockwise)
		case 'r', 'R':
			if err := g.session.Reset(ctx); err != nil {
				g.logger.Error("failed to regenerate forest", "err", err)
				g.running = false
			}
		}
	}
}

// handleMouseEvent sends the player to the clicked cell.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	x, y, ok := ui.Click(ev)
	if !ok {
		return
	}
	view := g.renderer.Viewport(g.session.Player().Pos)
	if y >= view.Height {
		return
	}
	dst := view.ToMap(x, y)
	if _, err := g.session.SetDestination(ctx, dst); err != nil {
		// Clicked off the map
		g.logger.Debug("ignored destination", "dst", dst, "err", err)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
