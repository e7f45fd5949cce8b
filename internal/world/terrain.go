package world

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrEmptyTerrain is returned when a layout has no rows.
	ErrEmptyTerrain = errors.New("terrain has no rows")
	// ErrRaggedTerrain is returned when layout rows differ in width.
	ErrRaggedTerrain = errors.New("terrain rows have varying widths")
	// ErrUnknownTile is returned for a layout character that is neither wall nor floor.
	ErrUnknownTile = errors.New("unknown terrain tile")
)

// Terrain is the immutable passability map. Rows are indexed by X and
// columns by Y.
type Terrain struct {
	tiles  [][]Tile
	height int
	width  int
}

// ParseTerrain builds a Terrain from a layout string with one row per line.
// Leading and trailing blank lines and the whitespace around each row are
// ignored, so the layout may be written as an indented raw string.
func ParseTerrain(layout string) (*Terrain, error) {
	lines := strings.Split(strings.TrimSpace(layout), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return nil, ErrEmptyTerrain
	}

	tiles := make([][]Tile, len(lines))
	widths := make([]int, 0, 1)
	for x, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]Tile, 0, len(line))
		for y, ch := range line {
			tile := Tile(ch)
			if tile != TileWall && tile != TileFloor {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownTile, ch, x, y)
			}
			row = append(row, tile)
		}
		tiles[x] = row
		if !slices.Contains(widths, len(row)) {
			widths = append(widths, len(row))
		}
	}

	if len(widths) != 1 {
		return nil, fmt.Errorf("%w: %v", ErrRaggedTerrain, widths)
	}

	return &Terrain{
		tiles:  tiles,
		height: len(tiles),
		width:  widths[0],
	}, nil
}

// MustParseTerrain parses a layout, panicking on error.
// Use this for built-in layouts that must be valid for the game to start.
func MustParseTerrain(layout string) *Terrain {
	t, err := ParseTerrain(layout)
	if err != nil {
		panic(err)
	}
	return t
}

// Dimensions returns the number of rows and columns.
func (t *Terrain) Dimensions() (height, width int) {
	return t.height, t.width
}

// Tile returns the tile at (x, y). Coordinates must be in bounds.
func (t *Terrain) Tile(x, y int) Tile {
	return t.tiles[x][y]
}

// IsPassable reports whether (x, y) is floor. Coordinates must be in bounds.
func (t *Terrain) IsPassable(x, y int) bool {
	return t.tiles[x][y].IsPassable()
}

// FloorCount returns the number of passable cells.
func (t *Terrain) FloorCount() int {
	n := 0
	for _, row := range t.tiles {
		for _, tile := range row {
			if tile.IsPassable() {
				n++
			}
		}
	}
	return n
}
