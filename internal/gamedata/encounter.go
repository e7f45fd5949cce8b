package gamedata

import (
	"errors"
	"fmt"
)

const encounterFile = "encounter.json"

// Encounter describes the monsters spawned at the start of a game and the
// colours used to draw the map.
type Encounter struct {
	Roster []string          `json:"roster"` // Monster kind IDs in turn order
	Colors map[string]string `json:"colors"` // Hex colours keyed by data identifier
}

// LoadEncounter loads the embedded encounter.json.
func LoadEncounter() (*Encounter, error) {
	enc, err := Load[Encounter](encounterFile)
	if err != nil {
		return nil, err
	}
	if len(enc.Roster) == 0 {
		return nil, errors.New("no monsters in encounter roster")
	}
	return &enc, nil
}

// MustLoadEncounter loads the encounter, panicking on error.
func MustLoadEncounter() *Encounter {
	enc, err := LoadEncounter()
	if err != nil {
		panic(err)
	}
	return enc
}

// Palette parses every colour in the encounter.
func (e *Encounter) Palette() (Palette, error) {
	p := make(Palette, len(e.Colors))
	for id, hex := range e.Colors {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", id, err)
		}
		p[id] = c
	}
	return p, nil
}
