// internal/component/collectible.go
package component

import "go-core-defense/internal/defs"

// CollectiblePhase is the pickup's lifecycle stage.
type CollectiblePhase int

const (
	CollectibleIdle    CollectiblePhase = iota // bobbing in place, lifespan ticking
	CollectibleSeeking                         // collected, flying to the core
)

// Collectible is a rare-currency drop. It idles until clicked (or until its
// lifespan expires), then seeks the core and banks its amount on arrival.
type Collectible struct {
	Currency defs.Currency
	Amount   float64
	Phase    CollectiblePhase
	Lifespan float64
	BobPhase float64
	BaseY    float64
}
