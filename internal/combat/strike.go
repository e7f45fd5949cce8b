// Package combat resolves melee strikes between the player and monsters.
package combat

// Combatant is the interface for any entity that can trade blows.
// Both the player and monsters implement this interface.
type Combatant interface {
	GetName() string
	GetAttack() int
	IsAlive() bool
	TakeDamage(amount int) int // Returns actual damage taken
}

// Result contains the outcome of a single strike.
type Result struct {
	Attacker string
	Target   string
	Damage   int  // Damage dealt to the target
	Killed   bool // True if this strike took the target from alive to dead
}

// Strike has attacker hit target once for its full attack value.
// A target that is already dead is left untouched.
func Strike(attacker, target Combatant) Result {
	result := Result{
		Attacker: attacker.GetName(),
		Target:   target.GetName(),
	}
	if !target.IsAlive() {
		return result
	}

	result.Damage = target.TakeDamage(attacker.GetAttack())
	result.Killed = !target.IsAlive()
	return result
}
