// internal/defs/enemies.go
package defs

import "image/color"

// Base stats shared by every variant before multipliers. HP and scrap grow
// with the level the enemy spawns at.
const (
	EnemyBaseHP     = 20.0
	EnemyHPGrowth   = 0.22 // +22% of base per level
	EnemyBaseSpeed  = 55.0
	EnemyBaseScrap  = 5.0
	EnemyScrapGrow  = 0.10
	EnemyBaseRadius = 12.0
)

// EnemyDefs is the library of all enemy variants, keyed by kind.
var EnemyDefs = map[EnemyKind]EnemyDefinition{
	EnemyGrunt: {
		Kind: EnemyGrunt, Name: "Grunt", Class: ClassNormal,
		HPMult: 1.0, SpeedMult: 1.0, Radius: 1.0, ScrapMult: 1.0,
		Weight: 100, MinWave: 1,
		Color: color.RGBA{210, 80, 80, 255},
	},
	EnemyRunner: {
		Kind: EnemyRunner, Name: "Runner", Class: ClassNormal,
		HPMult: 0.6, SpeedMult: 1.9, Radius: 0.8, ScrapMult: 1.2,
		Weight: 55, MinWave: 2,
		Color: color.RGBA{240, 150, 60, 255},
	},
	EnemySwarmling: {
		Kind: EnemySwarmling, Name: "Swarmling", Class: ClassNormal,
		HPMult: 0.3, SpeedMult: 1.5, Radius: 0.55, ScrapMult: 0.5,
		Weight: 70, MinWave: 3,
		Color: color.RGBA{230, 110, 170, 255},
	},
	EnemyTank: {
		Kind: EnemyTank, Name: "Tank", Class: ClassNormal,
		HPMult: 3.2, SpeedMult: 0.55, Radius: 1.5, ScrapMult: 2.2,
		Weight: 35, MinWave: 4,
		Color: color.RGBA{150, 90, 200, 255},
	},
	EnemyZigzag: {
		Kind: EnemyZigzag, Name: "Zigzag", Class: ClassNormal,
		HPMult: 0.9, SpeedMult: 1.2, Radius: 0.9, ScrapMult: 1.5,
		Weight: 40, MinWave: 5,
		Color: color.RGBA{90, 210, 120, 255},
		ZigzagPeriod: 0.7, ZigzagSpeed: 120,
	},
	EnemyArmored: {
		Kind: EnemyArmored, Name: "Armored", Class: ClassNormal,
		HPMult: 1.8, SpeedMult: 0.8, Radius: 1.2, Armor: 5, ScrapMult: 2.0,
		Weight: 30, MinWave: 6,
		Color: color.RGBA{150, 150, 160, 255},
	},
	EnemyRegenerator: {
		Kind: EnemyRegenerator, Name: "Regenerator", Class: ClassNormal,
		HPMult: 1.6, SpeedMult: 0.9, Radius: 1.1, ScrapMult: 2.4,
		Weight: 25, MinWave: 8,
		Color: color.RGBA{110, 230, 210, 255},
		RegenPerSec: 0.04,
	},
	EnemyElite: {
		Kind: EnemyElite, Name: "Elite", Class: ClassElite,
		HPMult: 5.0, SpeedMult: 0.75, Radius: 1.6, Armor: 3, ScrapMult: 5.0,
		Weight: 12, MinWave: 10,
		Color: color.RGBA{250, 220, 90, 255},
	},
	EnemyBoss: {
		Kind: EnemyBoss, Name: "Boss", Class: ClassBoss,
		HPMult: 22.0, SpeedMult: 0.4, Radius: 2.6, Armor: 6, ScrapMult: 20.0,
		MinWave: BossMinWave,
		Color: color.RGBA{250, 70, 120, 255},
	},
	EnemyShieldedBoss: {
		Kind: EnemyShieldedBoss, Name: "Warded Boss", Class: ClassBoss,
		HPMult: 18.0, SpeedMult: 0.4, Radius: 2.6, Armor: 8, ScrapMult: 28.0,
		MinWave: BossMinWave,
		Color: color.RGBA{180, 90, 250, 255},
	},
}

// Bosses never enter the weighted roll; the spawner injects them on wave
// milestones. MinWave here only documents their first possible appearance.
const BossMinWave = 10

// SpawnTable feeds the weighted variant roll. Bosses are absent on purpose.
var SpawnTable = []SpawnEntry{
	{Kind: EnemyGrunt, Weight: 100},
	{Kind: EnemyRunner, Weight: 55},
	{Kind: EnemySwarmling, Weight: 70},
	{Kind: EnemyTank, Weight: 35},
	{Kind: EnemyZigzag, Weight: 40},
	{Kind: EnemyArmored, Weight: 30},
	{Kind: EnemyRegenerator, Weight: 25},
	{Kind: EnemyElite, Weight: 12},
}
