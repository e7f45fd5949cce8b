// Package world provides the map and the turn-by-turn simulation played on it.
package world

// Tile represents a single map cell.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = ' '
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Point is a map cell. X is the row and Y the column.
type Point struct {
	X, Y int
}
