// internal/system/particle.go
package system

import (
	"image/color"
	"math"

	"go-core-defense/internal/utils"
)

// Particle is one pooled slot. Particles never exist outside the pool;
// other systems only request emission by preset name.
type Particle struct {
	Active   bool
	X, Y     float64
	VX, VY   float64
	Life     float64
	MaxLife  float64
	Size     float64
	Shrink   float64 // size lost per second
	Gravity  float64
	Drag     float64
	Additive bool // composite mode hint for the renderer
	Color    color.RGBA
}

// ParticlePreset is a behavioral profile: emission count, velocity
// distribution, decay and draw mode.
type ParticlePreset struct {
	Count      int
	SpeedMin   float64
	SpeedMax   float64
	Life       float64
	LifeJitter float64
	Size       float64
	Shrink     float64
	Gravity    float64
	Drag       float64
	Additive   bool
	UpwardBias float64 // radians subtracted from the spread center
}

// Presets is the catalog of particle profiles, requested by name. Unknown
// names no-op.
var Presets = map[string]ParticlePreset{
	"trail":  {Count: 1, SpeedMin: 5, SpeedMax: 20, Life: 0.35, LifeJitter: 0.1, Size: 2.5, Shrink: 5, Drag: 1.5, Additive: true},
	"impact": {Count: 6, SpeedMin: 40, SpeedMax: 140, Life: 0.3, LifeJitter: 0.15, Size: 3, Shrink: 7, Drag: 3},
	"death":  {Count: 14, SpeedMin: 60, SpeedMax: 220, Life: 0.55, LifeJitter: 0.2, Size: 4, Shrink: 5, Gravity: 180, Drag: 2},
	"blast":  {Count: 24, SpeedMin: 120, SpeedMax: 360, Life: 0.4, LifeJitter: 0.15, Size: 4, Shrink: 8, Additive: true},
	"pickup": {Count: 8, SpeedMin: 30, SpeedMax: 90, Life: 0.5, LifeJitter: 0.2, Size: 3, Shrink: 4, UpwardBias: 0.6, Additive: true},
	"heal":   {Count: 4, SpeedMin: 15, SpeedMax: 45, Life: 0.6, LifeJitter: 0.2, Size: 3, Shrink: 4, Gravity: -60, Additive: true},
	"breach": {Count: 18, SpeedMin: 80, SpeedMax: 260, Life: 0.5, LifeJitter: 0.2, Size: 5, Shrink: 8, Drag: 2},
}

// ParticleSystem is a fixed-capacity slot pool with a free-list, so acquire
// is O(1) and a frame never allocates. Emission requests past capacity are
// silently dropped; the pool never grows.
type ParticleSystem struct {
	slots []Particle
	free  []int
	rng   *utils.PRNGService
	live  int
}

// NewParticleSystem builds a pool of the given capacity.
func NewParticleSystem(capacity int, rng *utils.PRNGService) *ParticleSystem {
	s := &ParticleSystem{
		slots: make([]Particle, capacity),
		free:  make([]int, capacity),
		rng:   rng,
	}
	for i := range s.free {
		s.free[i] = capacity - 1 - i // pop order matches slot order
	}
	return s
}

// Emit spawns a burst from a named preset at a position. Drops whatever does
// not fit into the remaining capacity.
func (s *ParticleSystem) Emit(preset string, x, y float64, tint color.RGBA) {
	p, ok := Presets[preset]
	if !ok {
		return
	}
	for i := 0; i < p.Count; i++ {
		idx, ok := s.acquire()
		if !ok {
			return
		}
		angle := s.rng.Range(0, 2*math.Pi) - p.UpwardBias
		speed := s.rng.Range(p.SpeedMin, p.SpeedMax)
		life := p.Life + s.rng.Range(-p.LifeJitter, p.LifeJitter)
		if life < 0.05 {
			life = 0.05
		}
		s.slots[idx] = Particle{
			Active:   true,
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Life:     life,
			MaxLife:  life,
			Size:     p.Size,
			Shrink:   p.Shrink,
			Gravity:  p.Gravity,
			Drag:     p.Drag,
			Additive: p.Additive,
			Color:    tint,
		}
	}
}

func (s *ParticleSystem) acquire() (int, bool) {
	n := len(s.free)
	if n == 0 {
		return 0, false
	}
	idx := s.free[n-1]
	s.free = s.free[:n-1]
	s.live++
	return idx, true
}

func (s *ParticleSystem) release(idx int) {
	s.slots[idx].Active = false
	s.free = append(s.free, idx)
	s.live--
}

// Update advances every live particle and recycles expired slots.
func (s *ParticleSystem) Update(dt float64) {
	for i := range s.slots {
		p := &s.slots[i]
		if !p.Active {
			continue
		}
		p.Life -= dt
		if p.Life <= 0 {
			s.release(i)
			continue
		}
		p.VY += p.Gravity * dt
		if p.Drag > 0 {
			damp := 1 - p.Drag*dt
			if damp < 0 {
				damp = 0
			}
			p.VX *= damp
			p.VY *= damp
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Size -= p.Shrink * dt
		if p.Size <= 0.2 {
			s.release(i)
		}
	}
}

// Live returns the number of active particles.
func (s *ParticleSystem) Live() int {
	return s.live
}

// Capacity returns the fixed pool size.
func (s *ParticleSystem) Capacity() int {
	return len(s.slots)
}

// Each visits every active particle; the renderer is the only caller.
func (s *ParticleSystem) Each(fn func(*Particle)) {
	for i := range s.slots {
		if s.slots[i].Active {
			fn(&s.slots[i])
		}
	}
}

// Clear recycles every slot (run reset).
func (s *ParticleSystem) Clear() {
	for i := range s.slots {
		s.slots[i].Active = false
	}
	s.free = s.free[:0]
	for i := len(s.slots) - 1; i >= 0; i-- {
		s.free = append(s.free, i)
	}
	s.live = 0
}
