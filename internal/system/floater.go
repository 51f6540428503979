// internal/system/floater.go
package system

import (
	"go-core-defense/internal/config"
)

// Floater is one floating damage number.
type Floater struct {
	Active bool
	X, Y   float64
	Value  float64
	Crit   bool
	Life   float64
}

// FloaterSystem holds a bounded slab of damage numbers. Like the particle
// pool, it silently drops new entries once full.
type FloaterSystem struct {
	slots []Floater
}

func NewFloaterSystem(capacity int) *FloaterSystem {
	return &FloaterSystem{slots: make([]Floater, capacity)}
}

// Add spawns a damage number; drops it when every slot is busy.
func (s *FloaterSystem) Add(x, y, value float64, crit bool) {
	for i := range s.slots {
		if s.slots[i].Active {
			continue
		}
		s.slots[i] = Floater{
			Active: true,
			X:      x,
			Y:      y,
			Value:  value,
			Crit:   crit,
			Life:   config.FloaterLife,
		}
		return
	}
}

// Update floats the numbers upward and expires them.
func (s *FloaterSystem) Update(dt float64) {
	for i := range s.slots {
		f := &s.slots[i]
		if !f.Active {
			continue
		}
		f.Life -= dt
		if f.Life <= 0 {
			f.Active = false
			continue
		}
		f.Y -= config.FloaterRise * dt
	}
}

// Each visits every active floater.
func (s *FloaterSystem) Each(fn func(*Floater)) {
	for i := range s.slots {
		if s.slots[i].Active {
			fn(&s.slots[i])
		}
	}
}

// Clear drops all floaters (run reset).
func (s *FloaterSystem) Clear() {
	for i := range s.slots {
		s.slots[i].Active = false
	}
}
