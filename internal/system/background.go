// internal/system/background.go
package system

import (
	"go-core-defense/internal/config"
	"go-core-defense/internal/utils"
)

// Star is one background speck with its own drift speed and twinkle phase.
type Star struct {
	X, Y    float64
	Speed   float64
	Size    float64
	Twinkle float64
}

// StarfieldSystem scrolls a fixed set of stars downward, wrapping at the
// bottom edge. Purely cosmetic; it never touches the ECS.
type StarfieldSystem struct {
	stars []Star
}

func NewStarfieldSystem(rng *utils.PRNGService) *StarfieldSystem {
	stars := make([]Star, config.StarCount)
	for i := range stars {
		stars[i] = Star{
			X:       rng.Range(0, config.ScreenWidth),
			Y:       rng.Range(0, config.ScreenHeight),
			Speed:   rng.Range(4, 22),
			Size:    rng.Range(0.6, 2.0),
			Twinkle: rng.Range(0, 6.28),
		}
	}
	return &StarfieldSystem{stars: stars}
}

func (s *StarfieldSystem) Update(dt float64) {
	for i := range s.stars {
		st := &s.stars[i]
		st.Y += st.Speed * dt
		st.Twinkle += dt
		if st.Y > config.ScreenHeight {
			st.Y -= config.ScreenHeight
		}
	}
}

// Each visits every star, used by the renderer.
func (s *StarfieldSystem) Each(fn func(st *Star)) {
	for i := range s.stars {
		fn(&s.stars[i])
	}
}
