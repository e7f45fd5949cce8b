// Package game provides the main game loop.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rascal/internal/entity"
	"github.com/samdwyer/rascal/internal/event"
	"github.com/samdwyer/rascal/internal/gamedata"
	"github.com/samdwyer/rascal/internal/telemetry"
	"github.com/samdwyer/rascal/internal/ui"
	"github.com/samdwyer/rascal/internal/world"
)

// Closing lines printed once the terminal is restored.
const (
	MessageStart   = "Kill all monsters!"
	MessageVictory = "You have killed all the monsters. You win!"
	MessageQuit    = "Bye!"
)

// Game holds the entire game state.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	world     *world.World
	sessionID string
	turns     int
}

// New creates a new game on the terminal, placing the encounter's monsters
// with a generator seeded from cfg.
func New(ctx context.Context, cfg Config) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	enc, err := gamedata.LoadEncounter()
	if err != nil {
		return nil, err
	}
	palette, err := enc.Palette()
	if err != nil {
		return nil, err
	}

	w, err := buildWorld(ctx, cfg.PlayerName, enc.Roster, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := newGame(screen, w, palette, cfg.MessageTurns)
	span.SetAttributes(
		attribute.String("game.session_id", g.sessionID),
		attribute.Int64("game.seed", seed),
		attribute.Int("game.monsters", len(enc.Roster)),
	)
	return g, nil
}

func newGame(screen *ui.Screen, w *world.World, palette gamedata.Palette, messageTurns int) *Game {
	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, palette, messageTurns),
		world:     w,
		sessionID: uuid.NewString(),
	}
}

// buildWorld places the player on the default map and spawns roster.
func buildWorld(ctx context.Context, playerName string, roster []string, rng *rand.Rand) (*world.World, error) {
	terrain, err := world.ParseTerrain(world.DefaultMap)
	if err != nil {
		return nil, fmt.Errorf("default map: %w", err)
	}

	monsters := make([]*entity.Actor, 0, len(roster))
	for _, id := range roster {
		kind, ok := entity.ParseKind(id)
		if !ok || !kind.IsMonster() {
			return nil, fmt.Errorf("unknown monster %q in roster", id)
		}
		monsters = append(monsters, entity.New(kind))
	}

	player := entity.NewPlayer(playerName, world.PlayerStart.X, world.PlayerStart.Y)
	return world.New(ctx, terrain, player, monsters, rng)
}

// Run executes the main game loop until the player quits, dies or wins, and
// returns the line to print once the terminal has been restored.
func (g *Game) Run(ctx context.Context) (string, error) {
	defer g.screen.Close()

	g.renderer.InitPaint(g.world)
	g.renderer.Message(MessageStart)
	g.screen.Show()

	for {
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return g.end(ctx, MessageQuit), nil
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			action, ok := ActionForKey(ev)
			if !ok {
				continue
			}
			if action == world.ActionQuit {
				return g.end(ctx, MessageQuit), nil
			}

			state := g.Step(ctx, action)
			g.renderer.Paint(g.world)

			switch state {
			case world.StatePlayerDead:
				return g.end(ctx, g.deathMessage()), nil
			case world.StateVictory:
				return g.end(ctx, MessageVictory), nil
			}
			g.renderer.Tick()
		}
	}
}

// Step applies one player action to the world.
func (g *Game) Step(ctx context.Context, action world.Action) world.State {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	state := g.world.Apply(action)
	g.turns++

	span.SetAttributes(
		attribute.String("game.session_id", g.sessionID),
		attribute.String("action", action.String()),
		attribute.Int("turn", g.turns),
		attribute.Int("player.hitpoints", g.world.PlayerHitpoints()),
		attribute.Int("monsters.live", len(g.world.Monsters())),
		attribute.String("state", state.String()),
	)
	return state
}

// deathMessage returns the text of the event that killed the player.
func (g *Game) deathMessage() string {
	if msg := g.renderer.DeathMessage(); msg != "" {
		return msg
	}
	return event.PlayerDead().Format()
}

// end records the outcome of the game and returns closing.
func (g *Game) end(ctx context.Context, closing string) string {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("game.session_id", g.sessionID),
		attribute.String("outcome", g.world.State().String()),
		attribute.Int("turns_taken", g.turns),
		attribute.Int("monsters_remaining", len(g.world.Monsters())),
	)
	span.End()
	return closing
}
