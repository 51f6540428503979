// internal/defs/upgrades.go
package defs

import "math"

// Run-scoped upgrades, bought with scrap, reset on every run. IDs are
// referenced by the combat resolver and the session aggregate.
const (
	UpgradeClickDamage = "click_damage"
	UpgradeAutoDamage  = "auto_damage"
	UpgradeFireRate    = "fire_rate"
	UpgradeCritChance  = "crit_chance"
	UpgradeMaxHP       = "core_plating"
	UpgradeRegen       = "nanite_regen"
	UpgradeScrapGain   = "scrap_magnet"
)

// RunUpgradeDefs is the catalog of run upgrades, keyed by ID.
var RunUpgradeDefs = map[string]UpgradeDefinition{
	UpgradeClickDamage: {
		ID: UpgradeClickDamage, Name: "Focus Lens",
		Desc:     "+2 click damage per level",
		BaseCost: 10, CostMult: 1.35,
		Value: func(count int) float64 { return 5 + 2*float64(count) },
	},
	UpgradeAutoDamage: {
		ID: UpgradeAutoDamage, Name: "Turret Caliber",
		Desc:     "+1.5 turret damage per level",
		BaseCost: 15, CostMult: 1.4,
		Value: func(count int) float64 { return 3 + 1.5*float64(count) },
	},
	UpgradeFireRate: {
		ID: UpgradeFireRate, Name: "Servo Motors",
		Desc:     "+12% turret fire rate per level",
		BaseCost: 25, CostMult: 1.5, Max: 25,
		Value: func(count int) float64 { return 0.8 * math.Pow(1.12, float64(count)) },
	},
	UpgradeCritChance: {
		ID: UpgradeCritChance, Name: "Weak Point Scanner",
		Desc:     "+1.5% crit chance per level",
		BaseCost: 40, CostMult: 1.55, Max: 20,
		Value: func(count int) float64 { return 0.015 * float64(count) },
	},
	UpgradeMaxHP: {
		ID: UpgradeMaxHP, Name: "Core Plating",
		Desc:     "+20 max core HP per level",
		BaseCost: 30, CostMult: 1.45,
		Value: func(count int) float64 { return 20 * float64(count) },
	},
	UpgradeRegen: {
		ID: UpgradeRegen, Name: "Nanite Regen",
		Desc:     "+0.5 HP/s per level",
		BaseCost: 50, CostMult: 1.6, Max: 30,
		Value: func(count int) float64 { return 0.5 * float64(count) },
	},
	UpgradeScrapGain: {
		ID: UpgradeScrapGain, Name: "Scrap Magnet",
		Desc:     "+8% scrap per level",
		BaseCost: 60, CostMult: 1.5, Max: 40,
		Value: func(count int) float64 { return math.Pow(1.08, float64(count)) },
	},
}

// Permanent upgrades, bought with cores, survive prestige.
const (
	PermClickFlat  = "perm_click_flat"
	PermAutoMult   = "perm_auto_mult"
	PermCritBonus  = "perm_crit_bonus"
	PermCoreHP     = "perm_core_hp"
	PermStartScrap = "perm_start_scrap"
)

// PermanentUpgradeDefs is the catalog of permanent upgrades, keyed by ID.
var PermanentUpgradeDefs = map[string]UpgradeDefinition{
	PermClickFlat: {
		ID: PermClickFlat, Name: "Calibrated Trigger",
		Desc:     "+3 flat click damage per level",
		BaseCost: 2, CostMult: 1.8,
		Value: func(count int) float64 { return 3 * float64(count) },
	},
	PermAutoMult: {
		ID: PermAutoMult, Name: "Overclocked Turret",
		Desc:     "+10% turret damage per level",
		BaseCost: 3, CostMult: 2.0, Max: 25,
		Value: func(count int) float64 { return math.Pow(1.10, float64(count)) },
	},
	PermCritBonus: {
		ID: PermCritBonus, Name: "Targeting Matrix",
		Desc:     "+1% crit chance per level",
		BaseCost: 4, CostMult: 2.2, Max: 15,
		Value: func(count int) float64 { return 0.01 * float64(count) },
	},
	PermCoreHP: {
		ID: PermCoreHP, Name: "Reinforced Core",
		Desc:     "+25 max core HP per level",
		BaseCost: 3, CostMult: 1.9,
		Value: func(count int) float64 { return 25 * float64(count) },
	},
	PermStartScrap: {
		ID: PermStartScrap, Name: "Salvage Cache",
		Desc:     "+50 starting scrap per level",
		BaseCost: 2, CostMult: 1.7, Max: 20,
		Value: func(count int) float64 { return 50 * float64(count) },
	},
}
