// internal/progress/prestige.go
package progress

import (
	"math"

	"go-core-defense/internal/config"
)

// PrestigeYield converts the level a run reached into cores. Quadratic in
// level so deep runs dominate, scaled by the economy branch's CoreGainMult.
// Runs that end before PrestigeMinLevel yield nothing.
func PrestigeYield(level int, coreGainMult float64) float64 {
	if level < config.PrestigeMinLevel {
		return 0
	}
	raw := float64(level) * float64(level) * config.PrestigeYieldFactor * coreGainMult
	return math.Floor(raw)
}

// PrestigeDamageMult is the global multiplier earned from banked cores.
func PrestigeDamageMult(cores float64) float64 {
	return 1 + cores*config.CorePrestigeBonus
}
