package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// Palette maps a data identifier (an actor kind or "wall", "floor",
// "status", "message") to its display colour.
type Palette map[string]tcell.Color

// Color returns the colour for id, or white if the palette has none.
func (p Palette) Color(id string) tcell.Color {
	if c, ok := p[id]; ok {
		return c
	}
	return tcell.ColorWhite
}
