// internal/component/satellite.go
package component

// Satellite is one orbiter of the orbit attack mode. Satellites are not
// projectiles: they revolve around the core forever and fire standard
// homing shots on their own cooldown.
type Satellite struct {
	Angle    float64 // current orbit angle in radians
	Radius   float64
	Cooldown float64 // seconds between shots
	Timer    float64 // time since the last shot
}
