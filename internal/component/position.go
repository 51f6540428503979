// internal/component/position.go
package component

// Position is a point in screen space.
type Position struct {
	X, Y float64
}

// Velocity is a movement vector in px/s. Enemies use Speed toward the core;
// projectiles use the full vector.
type Velocity struct {
	X, Y  float64
	Speed float64
}
