// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	// The core sits in the middle of the screen.
	CoreX      = float64(ScreenWidth) / 2
	CoreY      = float64(ScreenHeight) / 2
	CoreRadius = 42.0

	MaxDeltaTime = 0.06 // clamp for the ebiten frame delta

	BaseCoreHP    = 100.0
	CoreRegenBase = 0.0 // per second, before upgrades and skills

	// Spawn pacing. The live interval is
	// max(MinSpawnRate, BaseSpawnRate-level*SpawnRateDecrement) * pace.
	BaseSpawnRate      = 2.2
	MinSpawnRate       = 0.35
	SpawnRateDecrement = 0.045

	// Adaptive pacing band and blend weights.
	PaceMin          = 0.55
	PaceMax          = 1.9
	PaceSmoothing    = 1.6 // per-second exponential approach rate
	DangerSlowdown   = 0.8 // pace added when the core is at 0 HP
	DensitySlowdown  = 0.35
	EnemySoftCap     = 24
	GraceLevel       = 5     // levels before momentum starts speeding spawns up
	MomentumPerLevel = 0.025 // pace removed per level past grace
	MomentumCap      = 0.45

	SpawnMarginX    = 60.0 // enemies appear this far outside the screen edge
	OffscreenMargin = 80.0 // projectile cull bounds

	KillsPerLevel     = 8
	BossWaveInterval  = 10
	ShieldedBossWave  = 25
	BossShieldFactor  = 0.5 // damage multiplier against the shielded boss flavor
	DeathAnimDuration = 0.4

	CritMultiplier    = 2.5
	CorePrestigeBonus = 0.02 // damage multiplier per banked core
	ClickHitRadius    = 14.0 // extra slack around an enemy for tap hit tests
	HitFlashDuration  = 0.12

	ProjectileSpeed     = 420.0
	ProjectileRadius    = 5.0
	ChargedSpeedFactor  = 0.45
	ChargedRadiusFactor = 2.4
	TwinOffset          = 10.0 // lateral spacing between twin shots
	HitResolveRadius    = 12.0 // distance at which a homing shot connects
	TrailEveryNthTick   = 3

	OrbitRadius       = 95.0
	OrbitAngularSpeed = 1.4 // radians per second
	SatelliteRadius   = 7.0

	CollectibleLifespan  = 10.0
	CollectibleBobSpeed  = 3.0
	CollectibleBobHeight = 4.0
	CollectibleSeekSpeed = 520.0
	CollectibleRadius    = 9.0

	MaxParticles  = 512
	MaxFloaters   = 96
	MaxShockwaves = 24
	StarCount     = 90

	PrestigeYieldFactor = 0.15 // cores = floor(level^2 * factor * gain mult)
	PrestigeMinLevel    = 5

	FloaterLife   = 0.9
	FloaterRise   = 46.0
	ShockwaveLife = 0.35
)

// Rare-currency drop chances per enemy class.
const (
	EssenceChanceNormal = 0.02
	EssenceChanceElite  = 0.15
	EssenceChanceBoss   = 1.0
	PrismChanceNormal   = 0.002
	PrismChanceElite    = 0.03
	PrismChanceBoss     = 0.5
)

var (
	BackgroundColor = color.RGBA{12, 12, 22, 255}
	CoreColor       = color.RGBA{90, 200, 250, 255}
	CoreHurtColor   = color.RGBA{250, 110, 90, 255}
	StarColor       = color.RGBA{200, 200, 220, 255}

	TextLightColor = color.RGBA{230, 230, 240, 255}
	TextDimColor   = color.RGBA{140, 140, 160, 255}
	CritTextColor  = color.RGBA{255, 210, 80, 255}

	ScrapColor   = color.RGBA{230, 190, 90, 255}
	EssenceColor = color.RGBA{170, 110, 250, 255}
	PrismColor   = color.RGBA{110, 240, 220, 255}

	HealthBarBack  = color.RGBA{50, 25, 30, 255}
	HealthBarFront = color.RGBA{90, 220, 120, 255}
	PauseColor     = color.RGBA{220, 220, 230, 200}
)
