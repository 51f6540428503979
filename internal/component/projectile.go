// internal/component/projectile.go
package component

import (
	"image/color"

	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
)

// Projectile is one shot in flight. TargetID is a weak reference: when the
// target dies mid-flight the projectile transitions to ballistic travel
// (straight along its last velocity, colliding with any live enemy) instead
// of dereferencing a stale handle.
type Projectile struct {
	Mode     defs.AttackMode
	TargetID types.EntityID
	Speed    float64
	Damage   float64
	IsCrit   bool
	Color    color.RGBA
	Radius   float64

	Ballistic bool // homing target lost, traveling on last velocity

	// Piercing bookkeeping.
	PierceLeft  int
	DamageDecay float64
	HitIDs      []types.EntityID // enemies already struck, never re-hit
	HitsSoFar   int

	// Bouncing bookkeeping.
	BouncesLeft int
	BounceRange float64

	// Splitting bookkeeping.
	SplitAt    float64 // cumulative travel distance that triggers the split
	SplitCount int
	Traveled   float64
	IsChild    bool // split children never split again

	// Charged bookkeeping.
	BlastRadius float64

	TrailTick int // trail particles are emitted every Nth tick
}

// AlreadyHit reports whether the projectile has struck this enemy before.
func (p *Projectile) AlreadyHit(id types.EntityID) bool {
	for _, hit := range p.HitIDs {
		if hit == id {
			return true
		}
	}
	return false
}
