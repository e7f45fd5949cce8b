package world

import (
	"errors"
	"testing"
)

func TestParseDefaultMap(t *testing.T) {
	terrain, err := ParseTerrain(DefaultMap)
	if err != nil {
		t.Fatalf("ParseTerrain(DefaultMap) failed: %v", err)
	}

	height, width := terrain.Dimensions()
	if height != 21 || width != 60 {
		t.Errorf("Dimensions() = (%d,%d), want (21,60)", height, width)
	}

	// Borders are walls
	for y := 0; y < width; y++ {
		if terrain.IsPassable(0, y) || terrain.IsPassable(height-1, y) {
			t.Fatalf("top/bottom border open at column %d", y)
		}
	}
	for x := 0; x < height; x++ {
		if terrain.IsPassable(x, 0) || terrain.IsPassable(x, width-1) {
			t.Fatalf("left/right border open at row %d", x)
		}
	}

	if !terrain.IsPassable(PlayerStart.X, PlayerStart.Y) {
		t.Error("player start should be floor")
	}
	if terrain.Tile(7, 24) != TileWall {
		t.Errorf("Tile(7,24) = %q, want wall", terrain.Tile(7, 24))
	}
}

func TestParseTerrainErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "", ErrEmptyTerrain},
		{"blank lines", "\n   \n", ErrEmptyTerrain},
		{"ragged", "####\n# #\n####", ErrRaggedTerrain},
		{"unknown tile", "###\n#x#\n###", ErrUnknownTile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTerrain(tt.layout)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseTerrain() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustParseTerrainPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseTerrain should panic on ragged rows")
		}
	}()
	MustParseTerrain("###\n#\n###")
}

func TestFloorCount(t *testing.T) {
	terrain := MustParseTerrain(`
		#####
		#   #
		# # #
		#####
	`)
	if got := terrain.FloorCount(); got != 5 {
		t.Errorf("FloorCount() = %d, want 5", got)
	}
}

func TestTileIsPassable(t *testing.T) {
	if TileWall.IsPassable() {
		t.Error("wall should not be passable")
	}
	if !TileFloor.IsPassable() {
		t.Error("floor should be passable")
	}
	if TileWall.Rune() != '#' || TileFloor.Rune() != ' ' {
		t.Error("unexpected tile glyphs")
	}
}
