// internal/component/enemy.go
package component

import "go-core-defense/internal/defs"

// Enemy is a live attacker marching toward the core.
type Enemy struct {
	Kind      defs.EnemyKind
	Class     defs.EnemyClass
	Armor     float64
	ScrapMult float64
	Shielded  bool // warded boss flavor, halves incoming damage

	// Death is a two-step transition: a killing hit sets IsDying and the
	// death animation counts down before MarkedForDeletion removes the
	// entity. Dying enemies are non-interactable.
	IsDying           bool
	DeathTimer        float64
	MarkedForDeletion bool

	// Special-behavior bookkeeping.
	ZigzagTimer float64
	ZigzagDir   float64 // +1 or -1, lateral direction
	RegenPerSec float64 // fraction of max HP per second
}

// Interactable reports whether the enemy can still be targeted or hit.
func (e *Enemy) Interactable() bool {
	return !e.IsDying && !e.MarkedForDeletion
}
