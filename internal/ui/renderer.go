package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rascal/internal/event"
	"github.com/samdwyer/rascal/internal/gamedata"
	"github.com/samdwyer/rascal/internal/world"
)

// Scene is the read side of the world that the renderer consumes.
// World coordinates are (row, column); the screen is (column, row).
type Scene interface {
	Dimensions() (height, width int)
	TerrainCell(x, y int) rune
	LiveActors() []world.ActorView
	PlayerHitpoints() int
	DrainRedrawPoints() []world.Point
	DrainEvents() []event.Event
}

// Renderer paints a Scene incrementally: the whole terrain once, then only
// the cells the world marks for redraw.
type Renderer struct {
	screen       *Screen
	palette      gamedata.Palette
	messageTurns int
	messageAge   int
	death        string // Text of the last death event seen
	height       int
	width        int
}

// NewRenderer creates a renderer for the given screen. A message is cleared
// once it has been shown for more than messageTurns turns.
func NewRenderer(screen *Screen, palette gamedata.Palette, messageTurns int) *Renderer {
	return &Renderer{
		screen:       screen,
		palette:      palette,
		messageTurns: messageTurns,
	}
}

// InitPaint draws every terrain cell and then the current turn.
func (r *Renderer) InitPaint(scene Scene) {
	r.height, r.width = scene.Dimensions()
	r.screen.Clear()

	for x := 0; x < r.height; x++ {
		for y := 0; y < r.width; y++ {
			r.paintTerrain(scene, x, y)
		}
	}
	r.Paint(scene)
}

// Paint redraws the cells marked since the last paint, every live actor,
// the status line and any new messages.
func (r *Renderer) Paint(scene Scene) {
	for _, p := range scene.DrainRedrawPoints() {
		r.paintTerrain(scene, p.X, p.Y)
	}

	actors := scene.LiveActors()
	// Player is first; draw it last so it is never hidden
	for i := len(actors) - 1; i >= 0; i-- {
		a := actors[i]
		style := tcell.StyleDefault.Foreground(r.palette.Color(a.Kind.String()))
		if i == 0 {
			style = style.Bold(true)
		}
		r.screen.SetContent(a.Y, a.X, a.Symbol, style)
	}

	r.drawLine(r.height, "HP "+strconv.Itoa(scene.PlayerHitpoints()), r.palette.Color("status"))

	for _, e := range scene.DrainEvents() {
		if e.IsDeath() {
			r.death = e.Format()
		}
		r.Message(e.Format())
	}

	r.screen.Show()
}

// Message replaces the message line and restarts its display count.
func (r *Renderer) Message(content string) {
	r.messageAge = 0
	r.drawLine(r.height+1, content, r.palette.Color("message"))
}

// Tick counts one finished turn and clears a message that has been on
// screen too long.
func (r *Renderer) Tick() {
	r.messageAge++
	if r.messageAge > r.messageTurns {
		r.Message("")
		r.screen.Show()
	}
}

// DeathMessage returns the text of the last death event painted, or "".
func (r *Renderer) DeathMessage() string {
	return r.death
}

func (r *Renderer) paintTerrain(scene Scene, x, y int) {
	glyph := scene.TerrainCell(x, y)
	r.screen.SetContent(y, x, glyph, r.terrainStyle(glyph))
}

// terrainStyle returns the style for a terrain glyph.
func (r *Renderer) terrainStyle(glyph rune) tcell.Style {
	switch world.Tile(glyph) {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(r.palette.Color("wall"))
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(r.palette.Color("floor"))
	default:
		return tcell.StyleDefault
	}
}

// drawLine writes text on row, truncated to the map width, and blanks the
// rest of the row.
func (r *Renderer) drawLine(row int, text string, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	runes := []rune(text)
	for col := 0; col < r.width; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		r.screen.SetContent(col, row, ch, style)
	}
}
