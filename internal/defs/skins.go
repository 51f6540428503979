// internal/defs/skins.go
package defs

import "image/color"

// DefaultSkinID is always unlocked and equipped on a fresh save.
const DefaultSkinID = "standard"

// SkinDefs is the skin catalog, keyed by ID. One skin per attack mode plus
// a premium standard variant with a raw damage bonus.
var SkinDefs = map[string]SkinDefinition{
	DefaultSkinID: {
		ID: DefaultSkinID, Name: "Standard Issue", Mode: AttackStandard,
		DamageMult: 1.0, Price: 0, PriceIn: CurrencyEssence,
		Projectile: color.RGBA{240, 240, 120, 255},
		Accent:     color.RGBA{90, 200, 250, 255},
	},
	"gemini": {
		ID: "gemini", Name: "Gemini", Mode: AttackTwin,
		DamageMult: 0.65, Price: 15, PriceIn: CurrencyEssence,
		Projectile: color.RGBA{120, 230, 240, 255},
		Accent:     color.RGBA{60, 160, 220, 255},
	},
	"lancer": {
		ID: "lancer", Name: "Lancer", Mode: AttackPiercing,
		DamageMult: 1.1, Price: 30, PriceIn: CurrencyEssence,
		PierceCount: 3, DamageDecay: 0.7,
		Projectile: color.RGBA{250, 150, 90, 255},
		Accent:     color.RGBA{220, 90, 60, 255},
	},
	"ricochet": {
		ID: "ricochet", Name: "Ricochet", Mode: AttackBouncing,
		DamageMult: 0.9, Price: 45, PriceIn: CurrencyEssence,
		BounceCount: 3, BounceRange: 220,
		Projectile: color.RGBA{140, 250, 140, 255},
		Accent:     color.RGBA{70, 200, 90, 255},
	},
	"cluster": {
		ID: "cluster", Name: "Cluster", Mode: AttackSplitting,
		DamageMult: 0.55, Price: 5, PriceIn: CurrencyPrisms,
		SplitCount: 3, SplitDistance: 160,
		Projectile: color.RGBA{250, 200, 120, 255},
		Accent:     color.RGBA{230, 150, 60, 255},
	},
	"nova": {
		ID: "nova", Name: "Nova", Mode: AttackCharged,
		DamageMult: 2.2, Price: 12, PriceIn: CurrencyPrisms,
		BlastRadius: 130,
		Projectile:  color.RGBA{210, 120, 250, 255},
		Accent:      color.RGBA{160, 70, 230, 255},
	},
	"sentinel": {
		ID: "sentinel", Name: "Sentinel", Mode: AttackOrbit,
		DamageMult: 0.8, Price: 20, PriceIn: CurrencyPrisms,
		OrbitCount: 3, OrbitCooldown: 1.1,
		Projectile: color.RGBA{120, 240, 220, 255},
		Accent:     color.RGBA{60, 200, 180, 255},
	},
	"aurum": {
		ID: "aurum", Name: "Aurum", Mode: AttackStandard,
		DamageMult: 1.35, Price: 40, PriceIn: CurrencyPrisms,
		Projectile: color.RGBA{255, 220, 90, 255},
		Accent:     color.RGBA{230, 180, 40, 255},
	},
}
