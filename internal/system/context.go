// internal/system/context.go
package system

import (
	"go-core-defense/internal/defs"
	"go-core-defense/internal/progress"
)

// SessionContext is what systems are allowed to see of the session
// aggregate. Keeping it an interface avoids a dependency on the app package
// and pins down the designated mutation paths: systems never touch the
// session state except through these methods.
type SessionContext interface {
	Level() int
	CoreHP() (hp, max float64)
	Cores() float64
	SkillEffects() defs.EffectsBundle
	EquippedSkin() defs.SkinDefinition
	RunUpgrades() *progress.Set
	PermanentUpgrades() *progress.Set

	HealCore(amount float64)
	AddScrap(amount float64)
	AddCurrency(c defs.Currency, amount float64)
	// AddKill bumps the kill counter and returns the new total.
	AddKill() int
	// AdvanceLevel bumps the level, dispatches LevelUp, returns the new level.
	AdvanceLevel() int
}
