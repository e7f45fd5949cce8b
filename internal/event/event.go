// Package event records what happened during a turn so it can be shown to
// the player.
package event

import "fmt"

// Kind tags the variant of an Event.
type Kind int

const (
	// KindMonsterAttack - a monster hit the player
	KindMonsterAttack Kind = iota
	// KindSlainMonster - the player killed a monster
	KindSlainMonster
	// KindPlayerSlainBy - a monster killed the player
	KindPlayerSlainBy
	// KindPlayerDead - the player died with no known killer
	KindPlayerDead
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMonsterAttack:
		return "monster_attack"
	case KindSlainMonster:
		return "slain_monster"
	case KindPlayerSlainBy:
		return "player_slain_by"
	case KindPlayerDead:
		return "player_dead"
	default:
		return "unknown"
	}
}

// Event is an immutable record of something that happened this turn.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    Kind
	Monster string // Monster involved, if any
	Damage  int    // Damage dealt by the monster (KindMonsterAttack)
}

// MonsterAttack records monster hitting the player for damage.
func MonsterAttack(monster string, damage int) Event {
	return Event{Kind: KindMonsterAttack, Monster: monster, Damage: damage}
}

// SlainMonster records the player killing monster.
func SlainMonster(monster string) Event {
	return Event{Kind: KindSlainMonster, Monster: monster}
}

// PlayerSlainBy records monster killing the player.
func PlayerSlainBy(monster string) Event {
	return Event{Kind: KindPlayerSlainBy, Monster: monster}
}

// PlayerDead records the player's death.
func PlayerDead() Event {
	return Event{Kind: KindPlayerDead}
}

// IsDeath reports whether the event marks the end of the player.
func (e Event) IsDeath() bool {
	return e.Kind == KindPlayerSlainBy || e.Kind == KindPlayerDead
}

// Format renders the event as a single display line.
func (e Event) Format() string {
	switch e.Kind {
	case KindMonsterAttack:
		return fmt.Sprintf("The %s attacks you for %d damage!", e.Monster, e.Damage)
	case KindSlainMonster:
		return fmt.Sprintf("You have slain the %s!", e.Monster)
	case KindPlayerSlainBy:
		return fmt.Sprintf("You have been slain by a %s!", e.Monster)
	case KindPlayerDead:
		return "You have died!"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return e.Format()
}
