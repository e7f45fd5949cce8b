package entity

import "github.com/samdwyer/rascal/internal/combat"

// Actor is anything with a position and combat stats: the player or a monster.
// X is the map row and Y the map column.
type Actor struct {
	Kind      Kind
	Name      string
	Symbol    rune
	X, Y      int
	Hitpoints int
	Attack    int
}

// New creates an actor of the given kind by copying its stat table entry.
// The actor starts at (0, 0) until it is placed.
func New(kind Kind) *Actor {
	s := kind.Stats()
	return &Actor{
		Kind:      kind,
		Name:      s.Name,
		Symbol:    s.Symbol,
		Hitpoints: s.Hitpoints,
		Attack:    s.Attack,
	}
}

// NewPlayer creates the player with the given name at (x, y).
func NewPlayer(name string, x, y int) *Actor {
	p := New(KindPlayer)
	p.Name = name
	p.X, p.Y = x, y
	return p
}

// Position returns the actor's current row and column.
func (a *Actor) Position() (int, int) {
	return a.X, a.Y
}

// SetPosition moves the actor to (x, y) without any checks.
func (a *Actor) SetPosition(x, y int) {
	a.X = x
	a.Y = y
}

// At reports whether the actor stands on (x, y).
func (a *Actor) At(x, y int) bool {
	return a.X == x && a.Y == y
}

// AdjacentTo reports whether other is within one cell on both axes,
// diagonals included.
func (a *Actor) AdjacentTo(other *Actor) bool {
	return abs(a.X-other.X) <= 1 && abs(a.Y-other.Y) <= 1
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the actor's name.
func (a *Actor) GetName() string { return a.Name }

// GetAttack returns the damage the actor deals per hit.
func (a *Actor) GetAttack() int { return a.Attack }

// IsAlive returns true if the actor has hit points remaining.
func (a *Actor) IsAlive() bool { return a.Hitpoints > 0 }

// TakeDamage subtracts amount from the actor's hit points and returns the
// damage applied. Hit points may go below zero.
func (a *Actor) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	a.Hitpoints -= amount
	return amount
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Ensure Actor implements combat.Combatant
var _ combat.Combatant = (*Actor)(nil)
