package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rascal/internal/combat"
	"github.com/samdwyer/rascal/internal/entity"
	"github.com/samdwyer/rascal/internal/event"
	"github.com/samdwyer/rascal/internal/telemetry"
)

var (
	// ErrPlayerBlocked is returned when the player's start cell is not floor.
	ErrPlayerBlocked = errors.New("player start is not a floor cell")
	// ErrNoRoom is returned when there are more monsters than free floor cells.
	ErrNoRoom = errors.New("not enough free floor for monsters")
)

// World owns the terrain, the player, the live monsters and everything a
// renderer needs to draw the latest turn.
type World struct {
	terrain  *Terrain
	player   *entity.Actor
	monsters []*entity.Actor // Live monsters in turn order
	redraw   map[Point]struct{}
	events   event.Queue
	state    State
	rng      *rand.Rand
}

// ActorView is what a renderer needs to draw one actor.
type ActorView struct {
	Point
	Symbol rune
	Kind   entity.Kind
}

// New creates a world with the player already positioned on terrain and
// scatters monsters over random free floor cells using rng.
func New(ctx context.Context, terrain *Terrain, player *entity.Actor, monsters []*entity.Actor, rng *rand.Rand) (*World, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.place_monsters")
	defer span.End()

	height, width := terrain.Dimensions()
	if player.X < 0 || player.X >= height || player.Y < 0 || player.Y >= width ||
		!terrain.IsPassable(player.X, player.Y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrPlayerBlocked, player.X, player.Y)
	}

	free := terrain.FloorCount() - 1
	if len(monsters) > free {
		return nil, fmt.Errorf("%w: %d monsters, %d cells", ErrNoRoom, len(monsters), free)
	}

	w := newWorld(terrain, player, rng)
	samples := w.RandomlyPlaceMonsters(monsters...)

	span.SetAttributes(
		attribute.Int("world.monster_count", len(monsters)),
		attribute.Int("world.free_cells", free),
		attribute.Int("world.placement_samples", samples),
	)
	return w, nil
}

func newWorld(terrain *Terrain, player *entity.Actor, rng *rand.Rand) *World {
	return &World{
		terrain:  terrain,
		player:   player,
		monsters: make([]*entity.Actor, 0),
		redraw:   make(map[Point]struct{}),
		state:    StateRunning,
		rng:      rng,
	}
}

// RandomlyPlaceMonsters puts each monster on a uniformly random occupiable
// cell, redrawing on walls and on cells already taken by the player or an
// earlier monster. Placed monsters join the live collection in order.
// It returns the number of cells sampled.
func (w *World) RandomlyPlaceMonsters(monsters ...*entity.Actor) int {
	height, width := w.terrain.Dimensions()
	samples := 0
	for _, m := range monsters {
		for {
			samples++
			x := w.rng.Intn(height)
			y := w.rng.Intn(width)
			if !w.Occupiable(x, y) {
				continue
			}
			m.SetPosition(x, y)
			w.monsters = append(w.monsters, m)
			break
		}
	}
	return samples
}

// Occupiable reports whether (x, y) is floor and not held by a live actor.
func (w *World) Occupiable(x, y int) bool {
	if !w.terrain.IsPassable(x, y) {
		return false
	}
	if w.player.At(x, y) {
		return false
	}
	return w.MonsterAt(x, y) == nil
}

// MonsterAt returns the live monster on (x, y), or nil.
func (w *World) MonsterAt(x, y int) *entity.Actor {
	for _, m := range w.monsters {
		if m.At(x, y) {
			return m
		}
	}
	return nil
}

// MovePlayerTo resolves the player's move by (dx, dy). A live monster on the
// target cell is attacked instead and the player stays put. Walls and other
// blocked cells leave everything unchanged.
func (w *World) MovePlayerTo(dx, dy int) {
	x := w.player.X + dx
	y := w.player.Y + dy

	if m := w.MonsterAt(x, y); m != nil {
		w.attackMonster(m)
		return
	}
	if w.Occupiable(x, y) {
		w.AddRedrawTerrain(Point{X: w.player.X, Y: w.player.Y})
		w.player.SetPosition(x, y)
	}
}

// attackMonster has the player strike m, removing it if it dies.
func (w *World) attackMonster(m *entity.Actor) {
	result := combat.Strike(w.player, m)
	if !result.Killed {
		return
	}
	w.AddRedrawTerrain(Point{X: m.X, Y: m.Y})
	w.removeMonster(m)
	w.events.Push(event.SlainMonster(m.Name))
}

func (w *World) removeMonster(m *entity.Actor) {
	if i := slices.Index(w.monsters, m); i >= 0 {
		w.monsters = slices.Delete(w.monsters, i, i+1)
	}
}

// RunMonsterActions gives every live monster its turn in collection order.
// Monsters next to the player attack; the rest step toward the player.
// Processing stops as soon as the player dies.
func (w *World) RunMonsterActions() {
	if !w.player.IsAlive() {
		return
	}

	for _, m := range w.monsters {
		if !m.AdjacentTo(w.player) {
			w.stepToward(m, w.player)
			continue
		}

		w.events.Push(event.MonsterAttack(m.Name, m.Attack))
		if result := combat.Strike(m, w.player); result.Killed {
			w.events.Push(event.PlayerSlainBy(m.Name))
			w.state = StatePlayerDead
			return
		}
	}
}

// stepToward moves m one cell along the axis with the larger distance to
// target, preferring rows on a tie. A blocked step is skipped.
func (w *World) stepToward(m, target *entity.Actor) {
	dx := target.X - m.X
	dy := target.Y - m.Y

	var sx, sy int
	if abs(dx) >= abs(dy) {
		sx = sign(dx)
	} else {
		sy = sign(dy)
	}

	x, y := m.X+sx, m.Y+sy
	if w.Occupiable(x, y) {
		w.AddRedrawTerrain(Point{X: m.X, Y: m.Y})
		m.SetPosition(x, y)
	}
}

// Apply runs one full turn for action: the player's move or attack, then the
// monsters' response unless the game just ended. Quit and unknown actions
// change nothing. It returns the state after the turn.
func (w *World) Apply(action Action) State {
	if w.state.IsOver() {
		return w.state
	}

	switch action {
	case ActionRest:
		w.RunMonsterActions()
	case ActionMoveNorth, ActionMoveSouth, ActionMoveEast, ActionMoveWest:
		dx, dy, _ := action.Delta()
		w.MovePlayerTo(dx, dy)
		if len(w.monsters) == 0 {
			w.state = StateVictory
			return w.state
		}
		w.RunMonsterActions()
	}
	return w.state
}

// State returns the current game state.
func (w *World) State() State {
	return w.state
}

// Dimensions returns the terrain's rows and columns.
func (w *World) Dimensions() (height, width int) {
	return w.terrain.Dimensions()
}

// TerrainCell returns the terrain glyph at (x, y).
func (w *World) TerrainCell(x, y int) rune {
	return w.terrain.Tile(x, y).Rune()
}

// Player returns the player actor.
func (w *World) Player() *entity.Actor {
	return w.player
}

// PlayerHitpoints returns the player's current hit points.
func (w *World) PlayerHitpoints() int {
	return w.player.Hitpoints
}

// Monsters returns the live monsters in turn order.
func (w *World) Monsters() []*entity.Actor {
	return slices.Clone(w.monsters)
}

// LiveActors returns the player followed by every live monster.
func (w *World) LiveActors() []ActorView {
	views := make([]ActorView, 0, len(w.monsters)+1)
	views = append(views, viewOf(w.player))
	for _, m := range w.monsters {
		views = append(views, viewOf(m))
	}
	return views
}

// DrainEvents returns this turn's events in order and clears the queue.
func (w *World) DrainEvents() []event.Event {
	return w.events.Drain()
}

func viewOf(a *entity.Actor) ActorView {
	return ActorView{
		Point:  Point{X: a.X, Y: a.Y},
		Symbol: a.Symbol,
		Kind:   a.Kind,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
