// Package gamedata provides the embedded encounter data: which monsters
// spawn and how everything on the map is coloured.
package gamedata

import "embed"

// dataFS holds every JSON file in this directory.
//
//go:embed *.json
var dataFS embed.FS
