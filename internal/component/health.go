// internal/component/health.go
package component

// Health tracks entity hit points.
type Health struct {
	Value float64
	Max   float64
}
