// internal/defs/skills.go
package defs

import (
	"fmt"
	"math"
)

// SkillRootID is the central node. It is always unlocked at tier 1 and has
// no prerequisites; everything else hangs off the four branch entries.
const SkillRootID = "core_nexus"

// SkillNodeDefs is the full node catalog, keyed by ID. Branch entry nodes
// have no prerequisites and therefore start unlocked (at tier 0).
var SkillNodeDefs = map[string]SkillNodeDefinition{
	SkillRootID: {
		ID: SkillRootID, Name: "Core Nexus", Branch: BranchCombat, MaxTier: 1,
		Costs: []float64{0},
		Apply: func(tier int, b *EffectsBundle) {},
		Describe: func(tier int) string {
			return "The heart of the network. Already attuned."
		},
	},

	// --- Combat ---
	"combat_core": {
		ID: "combat_core", Name: "Combat Core", Branch: BranchCombat, MaxTier: 5,
		Costs: []float64{1, 2, 4, 7, 12},
		Apply: func(tier int, b *EffectsBundle) {
			b.AllDamageMult *= 1 + 0.05*float64(tier)
		},
		Describe: pctDesc("all damage", 0.05),
	},
	"sharp_rounds": {
		ID: "sharp_rounds", Name: "Sharp Rounds", Branch: BranchCombat, MaxTier: 5,
		Costs: []float64{2, 3, 5, 8, 13}, Requires: []string{"combat_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ClickDamageFlat += 4 * float64(tier)
		},
		Describe: flatDesc("click damage", 4),
	},
	"heavy_payload": {
		ID: "heavy_payload", Name: "Heavy Payload", Branch: BranchCombat, MaxTier: 5,
		Costs: []float64{2, 3, 5, 8, 13}, Requires: []string{"combat_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.AutoDamageFlat += 3 * float64(tier)
		},
		Describe: flatDesc("turret damage", 3),
	},
	"crit_eye": {
		ID: "crit_eye", Name: "Critical Eye", Branch: BranchCombat, MaxTier: 4,
		Costs: []float64{3, 5, 9, 15}, Requires: []string{"sharp_rounds"},
		Apply: func(tier int, b *EffectsBundle) {
			b.CritChanceBonus += 0.015 * float64(tier)
		},
		Describe: pctDesc("crit chance", 0.015),
	},
	"overcharge": {
		ID: "overcharge", Name: "Overcharge", Branch: BranchCombat, MaxTier: 3,
		Costs:    []float64{6, 11, 20},
		Requires: []string{"sharp_rounds", "heavy_payload"},
		// Composite node: feeds two bundle fields at once.
		Apply: func(tier int, b *EffectsBundle) {
			b.AllDamageMult *= math.Pow(1.03, float64(tier))
			b.FireRateMult *= math.Pow(1.02, float64(tier))
		},
		Describe: func(tier int) string {
			return fmt.Sprintf("+3%% damage and +2%% fire rate, compounding (tier %d)", tier)
		},
	},
	"executioner": {
		ID: "executioner", Name: "Executioner", Branch: BranchCombat, MaxTier: 3,
		Costs: []float64{8, 14, 25}, Requires: []string{"crit_eye"},
		Apply: func(tier int, b *EffectsBundle) {
			b.CritDamageMult *= 1 + 0.10*float64(tier)
		},
		Describe: pctDesc("crit damage", 0.10),
	},
	"rampage": {
		ID: "rampage", Name: "Rampage", Branch: BranchCombat, MaxTier: 4,
		Costs: []float64{5, 8, 13, 21}, Requires: []string{"heavy_payload"},
		Apply: func(tier int, b *EffectsBundle) {
			b.FireRateMult *= math.Pow(1.04, float64(tier))
		},
		Describe: pctDesc("fire rate", 0.04),
	},
	"annihilation": {
		ID: "annihilation", Name: "Annihilation", Branch: BranchCombat, MaxTier: 1,
		Costs: []float64{40}, Requires: []string{"overcharge", "executioner"},
		Apply: func(tier int, b *EffectsBundle) {
			b.AllDamageMult *= 1.25
		},
		Describe: func(tier int) string { return "+25% all damage" },
	},

	// --- Defense ---
	"defense_core": {
		ID: "defense_core", Name: "Defense Core", Branch: BranchDefense, MaxTier: 5,
		Costs: []float64{1, 2, 4, 7, 12},
		Apply: func(tier int, b *EffectsBundle) {
			b.MaxHPBonus += 15 * float64(tier)
		},
		Describe: flatDesc("max core HP", 15),
	},
	"thick_shell": {
		ID: "thick_shell", Name: "Thick Shell", Branch: BranchDefense, MaxTier: 5,
		Costs: []float64{2, 3, 5, 8, 13}, Requires: []string{"defense_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.DamageTakenMult *= 1 - 0.03*float64(tier)
		},
		Describe: pctDesc("damage reduction", 0.03),
	},
	"nanoweave": {
		ID: "nanoweave", Name: "Nanoweave", Branch: BranchDefense, MaxTier: 5,
		Costs: []float64{2, 3, 5, 8, 13}, Requires: []string{"defense_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.RegenPerSec += 0.4 * float64(tier)
		},
		Describe: flatDesc("HP/s regen", 0.4),
	},
	"leech_rounds": {
		ID: "leech_rounds", Name: "Leech Rounds", Branch: BranchDefense, MaxTier: 4,
		Costs: []float64{3, 5, 9, 15}, Requires: []string{"thick_shell"},
		Apply: func(tier int, b *EffectsBundle) {
			b.LifestealPct += 0.005 * float64(tier)
		},
		Describe: pctDesc("lifesteal", 0.005),
	},
	"bulwark": {
		ID: "bulwark", Name: "Bulwark", Branch: BranchDefense, MaxTier: 3,
		Costs: []float64{6, 11, 20}, Requires: []string{"thick_shell"},
		Apply: func(tier int, b *EffectsBundle) {
			b.DamageTakenMult *= 1 - 0.05*float64(tier)
		},
		Describe: pctDesc("damage reduction", 0.05),
	},
	"vital_surge": {
		ID: "vital_surge", Name: "Vital Surge", Branch: BranchDefense, MaxTier: 3,
		Costs: []float64{5, 9, 16}, Requires: []string{"nanoweave"},
		Apply: func(tier int, b *EffectsBundle) {
			b.MaxHPBonus += 30 * float64(tier)
		},
		Describe: flatDesc("max core HP", 30),
	},
	"vampiric_core": {
		ID: "vampiric_core", Name: "Vampiric Core", Branch: BranchDefense, MaxTier: 2,
		Costs: []float64{10, 22}, Requires: []string{"leech_rounds"},
		Apply: func(tier int, b *EffectsBundle) {
			b.LifestealPct += 0.01 * float64(tier)
		},
		Describe: pctDesc("lifesteal", 0.01),
	},
	"last_stand": {
		ID: "last_stand", Name: "Last Stand", Branch: BranchDefense, MaxTier: 1,
		Costs: []float64{35}, Requires: []string{"bulwark", "vital_surge"},
		Apply: func(tier int, b *EffectsBundle) {
			b.DamageTakenMult *= 0.92
			b.RegenPerSec += 1.5
		},
		Describe: func(tier int) string { return "8% damage reduction and +1.5 HP/s" },
	},

	// --- Economy ---
	"economy_core": {
		ID: "economy_core", Name: "Economy Core", Branch: BranchEconomy, MaxTier: 5,
		Costs: []float64{1, 2, 4, 7, 12},
		Apply: func(tier int, b *EffectsBundle) {
			b.ScrapMult *= 1 + 0.05*float64(tier)
		},
		Describe: pctDesc("scrap gain", 0.05),
	},
	"head_start": {
		ID: "head_start", Name: "Head Start", Branch: BranchEconomy, MaxTier: 4,
		Costs: []float64{2, 4, 7, 12}, Requires: []string{"economy_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.StartingScrap += 75 * float64(tier)
		},
		Describe: flatDesc("starting scrap", 75),
	},
	"essence_affinity": {
		ID: "essence_affinity", Name: "Essence Affinity", Branch: BranchEconomy, MaxTier: 4,
		Costs: []float64{3, 5, 9, 15}, Requires: []string{"economy_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.EssenceDropBonus += 0.01 * float64(tier)
		},
		Describe: pctDesc("essence drop chance", 0.01),
	},
	"prism_affinity": {
		ID: "prism_affinity", Name: "Prism Affinity", Branch: BranchEconomy, MaxTier: 3,
		Costs: []float64{6, 11, 20}, Requires: []string{"essence_affinity"},
		Apply: func(tier int, b *EffectsBundle) {
			b.PrismDropBonus += 0.002 * float64(tier)
		},
		Describe: pctDesc("prism drop chance", 0.002),
	},
	"golden_salvo": {
		ID: "golden_salvo", Name: "Golden Salvo", Branch: BranchEconomy, MaxTier: 4,
		Costs: []float64{4, 7, 12, 20}, Requires: []string{"head_start"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ScrapMult *= math.Pow(1.06, float64(tier))
		},
		Describe: pctDesc("scrap gain, compounding", 0.06),
	},
	"core_refinery": {
		ID: "core_refinery", Name: "Core Refinery", Branch: BranchEconomy, MaxTier: 3,
		Costs: []float64{8, 15, 28}, Requires: []string{"economy_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.CoreGainMult *= 1 + 0.10*float64(tier)
		},
		Describe: pctDesc("cores from prestige", 0.10),
	},
	"treasure_hunter": {
		ID: "treasure_hunter", Name: "Treasure Hunter", Branch: BranchEconomy, MaxTier: 2,
		Costs: []float64{12, 26}, Requires: []string{"prism_affinity"},
		Apply: func(tier int, b *EffectsBundle) {
			b.EssenceDropBonus += 0.015 * float64(tier)
			b.PrismDropBonus += 0.003 * float64(tier)
		},
		Describe: func(tier int) string {
			return fmt.Sprintf("+1.5%% essence and +0.3%% prism drops (tier %d)", tier)
		},
	},
	"hoarder": {
		ID: "hoarder", Name: "Hoarder", Branch: BranchEconomy, MaxTier: 1,
		Costs: []float64{30}, Requires: []string{"golden_salvo", "core_refinery"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ScrapMult *= 1.15
			b.StartingScrap += 150
		},
		Describe: func(tier int) string { return "+15% scrap and +150 starting scrap" },
	},

	// --- Arsenal ---
	"arsenal_core": {
		ID: "arsenal_core", Name: "Arsenal Core", Branch: BranchArsenal, MaxTier: 5,
		Costs: []float64{1, 2, 4, 7, 12},
		Apply: func(tier int, b *EffectsBundle) {
			b.FireRateMult *= 1 + 0.04*float64(tier)
		},
		Describe: pctDesc("fire rate", 0.04),
	},
	"swift_shots": {
		ID: "swift_shots", Name: "Swift Shots", Branch: BranchArsenal, MaxTier: 4,
		Costs: []float64{2, 4, 7, 12}, Requires: []string{"arsenal_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ProjectileSpeedMult *= 1 + 0.05*float64(tier)
		},
		Describe: pctDesc("projectile speed", 0.05),
	},
	"drill_tips": {
		ID: "drill_tips", Name: "Drill Tips", Branch: BranchArsenal, MaxTier: 2,
		Costs: []float64{8, 18}, Requires: []string{"arsenal_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ExtraPierce += tier
		},
		Describe: intDesc("pierce"),
	},
	"elastic_shells": {
		ID: "elastic_shells", Name: "Elastic Shells", Branch: BranchArsenal, MaxTier: 2,
		Costs: []float64{8, 18}, Requires: []string{"arsenal_core"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ExtraBounce += tier
		},
		Describe: intDesc("bounce"),
	},
	"fission_payload": {
		ID: "fission_payload", Name: "Fission Payload", Branch: BranchArsenal, MaxTier: 2,
		Costs: []float64{10, 22}, Requires: []string{"swift_shots"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ExtraSplit += tier
		},
		Describe: intDesc("split fragment"),
	},
	"satellite_array": {
		ID: "satellite_array", Name: "Satellite Array", Branch: BranchArsenal, MaxTier: 2,
		Costs: []float64{14, 30}, Requires: []string{"swift_shots"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ExtraSatellites += tier
		},
		Describe: intDesc("orbital satellite"),
	},
	"overdrive": {
		ID: "overdrive", Name: "Overdrive", Branch: BranchArsenal, MaxTier: 3,
		Costs: []float64{6, 11, 20}, Requires: []string{"swift_shots"},
		Apply: func(tier int, b *EffectsBundle) {
			b.FireRateMult *= math.Pow(1.05, float64(tier))
		},
		Describe: pctDesc("fire rate, compounding", 0.05),
	},
	"ballistics_lab": {
		ID: "ballistics_lab", Name: "Ballistics Lab", Branch: BranchArsenal, MaxTier: 1,
		Costs: []float64{36}, Requires: []string{"drill_tips", "elastic_shells"},
		Apply: func(tier int, b *EffectsBundle) {
			b.ExtraPierce++
			b.ExtraBounce++
			b.ProjectileSpeedMult *= 1.1
		},
		Describe: func(tier int) string {
			return "+1 pierce, +1 bounce, +10% projectile speed"
		},
	},
}

func pctDesc(what string, per float64) func(int) string {
	return func(tier int) string {
		return fmt.Sprintf("+%.1f%% %s (tier %d)", per*100*float64(tier), what, tier)
	}
}

func flatDesc(what string, per float64) func(int) string {
	return func(tier int) string {
		return fmt.Sprintf("+%.4g %s (tier %d)", per*float64(tier), what, tier)
	}
}

func intDesc(what string) func(int) string {
	return func(tier int) string {
		return fmt.Sprintf("+%d %s", tier, what)
	}
}
