// Package entity provides the player and the monsters that roam the map.
package entity

// Kind identifies which stat table entry an actor was built from.
type Kind int

const (
	KindPlayer Kind = iota
	KindRat
	KindGiantRat
	KindGoblin
)

// Stats are the starting values copied into every actor of a kind.
type Stats struct {
	ID        string // Data identifier (e.g., "giant_rat")
	Name      string // Name used in messages (e.g., "giant rat")
	Symbol    rune   // Display glyph
	Hitpoints int    // Starting hit points
	Attack    int    // Damage dealt per hit
}

var kindTable = map[Kind]Stats{
	KindPlayer:   {ID: "player", Name: "player", Symbol: '@', Hitpoints: 10, Attack: 1},
	KindRat:      {ID: "rat", Name: "rat", Symbol: 'r', Hitpoints: 1, Attack: 1},
	KindGiantRat: {ID: "giant_rat", Name: "giant rat", Symbol: 'R', Hitpoints: 2, Attack: 1},
	KindGoblin:   {ID: "goblin", Name: "goblin", Symbol: 'g', Hitpoints: 1, Attack: 2},
}

// Stats returns the stat table entry for the kind.
// Unknown kinds get a placeholder entry with no hit points.
func (k Kind) Stats() Stats {
	if s, ok := kindTable[k]; ok {
		return s
	}
	return Stats{ID: "unknown", Name: "unknown", Symbol: '?'}
}

// String returns the kind's data identifier.
func (k Kind) String() string {
	return k.Stats().ID
}

// IsMonster reports whether the kind is hostile to the player.
func (k Kind) IsMonster() bool {
	_, ok := kindTable[k]
	return ok && k != KindPlayer
}

// ParseKind looks up a kind by its data identifier.
func ParseKind(id string) (Kind, bool) {
	for k, s := range kindTable {
		if s.ID == id {
			return k, true
		}
	}
	return 0, false
}
