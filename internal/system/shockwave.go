// internal/system/shockwave.go
package system

import "go-core-defense/internal/config"

// Shockwave is an expanding ring drawn for blasts and core breaches.
type Shockwave struct {
	Active    bool
	X, Y      float64
	MaxRadius float64
	Life      float64
}

// ShockwaveSystem holds a bounded slab of rings.
type ShockwaveSystem struct {
	slots []Shockwave
}

func NewShockwaveSystem(capacity int) *ShockwaveSystem {
	return &ShockwaveSystem{slots: make([]Shockwave, capacity)}
}

// Add spawns a ring; drops it when full.
func (s *ShockwaveSystem) Add(x, y, maxRadius float64) {
	for i := range s.slots {
		if s.slots[i].Active {
			continue
		}
		s.slots[i] = Shockwave{
			Active:    true,
			X:         x,
			Y:         y,
			MaxRadius: maxRadius,
			Life:      config.ShockwaveLife,
		}
		return
	}
}

// Update expires rings; their radius is derived from remaining life.
func (s *ShockwaveSystem) Update(dt float64) {
	for i := range s.slots {
		if !s.slots[i].Active {
			continue
		}
		s.slots[i].Life -= dt
		if s.slots[i].Life <= 0 {
			s.slots[i].Active = false
		}
	}
}

// Progress returns the expansion progress in [0,1].
func (w *Shockwave) Progress() float64 {
	return 1 - w.Life/config.ShockwaveLife
}

// Each visits every active ring.
func (s *ShockwaveSystem) Each(fn func(*Shockwave)) {
	for i := range s.slots {
		if s.slots[i].Active {
			fn(&s.slots[i])
		}
	}
}

// Clear drops all rings (run reset).
func (s *ShockwaveSystem) Clear() {
	for i := range s.slots {
		s.slots[i].Active = false
	}
}
