// internal/interfaces/sinks.go
package interfaces

import "image/color"

// EffectsSink is the optional capability surface for visual feedback. Core
// systems call it instead of probing for renderer hooks; anything that does
// not care injects NopEffects and the simulation is unaffected.
type EffectsSink interface {
	// AddDamageNumber shows floating combat text at a world position.
	AddDamageNumber(x, y, value float64, crit bool)
	// EmitParticles requests a burst from a named preset. Requests past
	// the pool capacity are silently dropped.
	EmitParticles(preset string, x, y float64, tint color.RGBA)
	// AddShockwave spawns an expanding ring (blasts, breaches).
	AddShockwave(x, y, maxRadius float64)
}

// NopEffects is the no-op default sink.
type NopEffects struct{}

func (NopEffects) AddDamageNumber(x, y, value float64, crit bool)          {}
func (NopEffects) EmitParticles(preset string, x, y float64, _ color.RGBA) {}
func (NopEffects) AddShockwave(x, y, maxRadius float64)                    {}
