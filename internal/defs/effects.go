// internal/defs/effects.go
package defs

// EffectsBundle is the aggregate of every purchased skill node. It is a plain
// value: the skill tree recomputes it from scratch on demand, nodes fold
// themselves in via Apply. Multiplier fields start at 1, flats at 0.
type EffectsBundle struct {
	AllDamageMult   float64
	ClickDamageFlat float64
	AutoDamageFlat  float64
	CritChanceBonus float64
	CritDamageMult  float64
	FireRateMult    float64

	// DamageTakenMult stacks multiplicatively: each reduction node
	// multiplies in its own (1 - r).
	DamageTakenMult float64
	RegenPerSec     float64
	MaxHPBonus      float64
	LifestealPct    float64

	ScrapMult        float64
	EssenceDropBonus float64
	PrismDropBonus   float64
	CoreGainMult     float64
	StartingScrap    float64

	ExtraPierce         int
	ExtraBounce         int
	ExtraSplit          int
	ProjectileSpeedMult float64
	ExtraSatellites     int
}

// NewEffectsBundle returns the identity bundle (no nodes purchased).
func NewEffectsBundle() EffectsBundle {
	return EffectsBundle{
		AllDamageMult:       1,
		CritDamageMult:      1,
		FireRateMult:        1,
		DamageTakenMult:     1,
		ScrapMult:           1,
		CoreGainMult:        1,
		ProjectileSpeedMult: 1,
	}
}
