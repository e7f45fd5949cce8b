package world

import (
	"cmp"
	"slices"
)

// AddRedrawTerrain marks p as needing its terrain glyph repainted.
// Adding the same point twice has no extra effect.
func (w *World) AddRedrawTerrain(p Point) {
	w.redraw[p] = struct{}{}
}

// DrainRedrawPoints returns every point marked since the last drain, ordered
// by row then column, and clears the set.
func (w *World) DrainRedrawPoints() []Point {
	points := make([]Point, 0, len(w.redraw))
	for p := range w.redraw {
		points = append(points, p)
	}
	clear(w.redraw)

	slices.SortFunc(points, func(a, b Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return points
}
