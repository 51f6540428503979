// internal/component/visual.go
package component

import "image/color"

// Renderable gives an entity a drawable circle. The render sink only reads
// these fields; the simulation never depends on how they are drawn.
type Renderable struct {
	Color     color.RGBA
	Radius    float64
	HasStroke bool
}

// DamageFlash marks an entity to be drawn in the hurt color for a moment.
type DamageFlash struct {
	Timer    float64
	Duration float64
}
