// internal/defs/types.go
package defs

import "image/color"

// AttackMode selects the projectile behavior of the equipped skin.
// Exhaustive switches over this enum replace the string-tagged dispatch
// the game grew out of.
type AttackMode int

const (
	AttackStandard AttackMode = iota
	AttackTwin
	AttackPiercing
	AttackBouncing
	AttackSplitting
	AttackCharged
	AttackOrbit
)

func (m AttackMode) String() string {
	switch m {
	case AttackStandard:
		return "standard"
	case AttackTwin:
		return "twin"
	case AttackPiercing:
		return "piercing"
	case AttackBouncing:
		return "bouncing"
	case AttackSplitting:
		return "splitting"
	case AttackCharged:
		return "charged"
	case AttackOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// EnemyKind enumerates the spawnable enemy variants.
type EnemyKind int

const (
	EnemyGrunt EnemyKind = iota
	EnemyRunner
	EnemySwarmling
	EnemyTank
	EnemyZigzag
	EnemyArmored
	EnemyRegenerator
	EnemyElite
	EnemyBoss
	EnemyShieldedBoss
)

// EnemyClass groups variants for reward and drop-table purposes.
type EnemyClass int

const (
	ClassNormal EnemyClass = iota
	ClassElite
	ClassBoss
)

// Currency identifies one of the game's currencies. Scrap is run-scoped,
// the rest persist across runs.
type Currency int

const (
	CurrencyScrap Currency = iota
	CurrencyCores
	CurrencyEssence
	CurrencyPrisms
)

// DamageSource tells the combat resolver which upgrade line feeds a hit.
type DamageSource int

const (
	SourceClick DamageSource = iota
	SourceAuto
)

// EnemyDefinition holds the static data for one enemy variant. Instances
// are stamped out by the spawner; definitions are never mutated.
type EnemyDefinition struct {
	Kind      EnemyKind
	Name      string
	Class     EnemyClass
	HPMult    float64
	SpeedMult float64
	Radius    float64
	Armor     float64
	ScrapMult float64
	Weight    int // weighted spawn chance among eligible variants
	MinWave   int // variant is ineligible below this level
	Color     color.RGBA

	// Special-behavior tuning; zero when the variant has no special.
	ZigzagPeriod float64 // seconds per lateral direction flip
	ZigzagSpeed  float64 // lateral speed in px/s
	RegenPerSec  float64 // self-heal fraction of max HP per second
}

// SpawnEntry is one row of the weighted spawn table.
type SpawnEntry struct {
	Kind   EnemyKind
	Weight int
}

// UpgradeDefinition is the template for a purchasable upgrade, both
// run-scoped and permanent. Cost for the n-th purchase is
// BaseCost * CostMult^n. Value maps a purchase count to the effect value.
type UpgradeDefinition struct {
	ID       string
	Name     string
	Desc     string
	BaseCost float64
	CostMult float64
	Max      int // 0 = unlimited
	Value    func(count int) float64
}

// SkillBranch is one of the four sectors of the skill tree.
type SkillBranch int

const (
	BranchCombat SkillBranch = iota
	BranchDefense
	BranchEconomy
	BranchArsenal
)

// SkillNodeDefinition describes one node of the skill tree. Apply folds the
// node's contribution at the given tier into the bundle; each node therefore
// carries its own combination rule (additive flat, multiplicative rate,
// composite multi-field).
type SkillNodeDefinition struct {
	ID       string
	Name     string
	Branch   SkillBranch
	MaxTier  int
	Costs    []float64 // essence cost per tier, Costs[0] buys tier 1
	Requires []string  // prerequisite node IDs
	Apply    func(tier int, b *EffectsBundle)
	Describe func(tier int) string
}

// SkinDefinition is a catalog entry for a cosmetic/attack skin.
type SkinDefinition struct {
	ID         string
	Name       string
	Mode       AttackMode
	DamageMult float64
	Price      float64
	PriceIn    Currency // CurrencyEssence or CurrencyPrisms
	Projectile color.RGBA
	Accent     color.RGBA

	// Mode parameters; meaningful fields depend on Mode.
	PierceCount   int
	DamageDecay   float64
	BounceCount   int
	BounceRange   float64
	SplitCount    int
	SplitDistance float64
	BlastRadius   float64
	OrbitCount    int
	OrbitCooldown float64
}
