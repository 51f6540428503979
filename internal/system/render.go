// internal/system/render.go
package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/types"
)

// RenderSystem draws the world: starfield, core, enemies in spawn order,
// projectiles, satellites, collectibles, then the effect pools on top. It
// only reads simulation state.
type RenderSystem struct {
	ecs        *entity.ECS
	stars      *StarfieldSystem
	particles  *ParticleSystem
	floaters   *FloaterSystem
	shockwaves *ShockwaveSystem
	ctx        SessionContext
	face       font.Face
}

func NewRenderSystem(ecs *entity.ECS, stars *StarfieldSystem, particles *ParticleSystem,
	floaters *FloaterSystem, shockwaves *ShockwaveSystem, ctx SessionContext,
	face font.Face) *RenderSystem {
	return &RenderSystem{
		ecs:        ecs,
		stars:      stars,
		particles:  particles,
		floaters:   floaters,
		shockwaves: shockwaves,
		ctx:        ctx,
		face:       face,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	screen.Fill(config.BackgroundColor)

	s.stars.Each(func(st *Star) {
		c := config.StarColor
		c.A = uint8(120 + 100*math.Abs(math.Sin(st.Twinkle)))
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y), float32(st.Size), c, true)
	})

	s.drawCore(screen, gameTime)

	// Collectibles sit under enemies so drops never obscure targets.
	for id, col := range s.ecs.Collectibles {
		pos := s.ecs.Positions[id]
		rend := s.ecs.Renderables[id]
		if pos == nil || rend == nil {
			continue
		}
		c := rend.Color
		if col.Lifespan < 2.5 {
			// Blink as the pickup nears expiry.
			if math.Mod(col.Lifespan, 0.3) < 0.15 {
				c.A = 90
			}
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(rend.Radius), c, true)
	}

	// Enemies in spawn order, so later spawns draw on top and the click hit
	// test (which walks the same order in reverse) agrees with the picture.
	for _, id := range s.ecs.EnemyOrder {
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		rend := s.ecs.Renderables[id]
		if enemy == nil || pos == nil || rend == nil {
			continue
		}

		c := rend.Color
		radius := rend.Radius
		if enemy.IsDying {
			// Shrink and fade through the death animation.
			t := enemy.DeathTimer / config.DeathAnimDuration
			radius *= t
			c.A = uint8(255 * t)
		} else if flash := s.ecs.DamageFlashes[id]; flash != nil && flash.Duration > 0 {
			t := flash.Timer / flash.Duration
			c = lerpRGBA(c, color.RGBA{255, 255, 255, 255}, t)
		}

		if rend.HasStroke {
			stroke := config.CoreHurtColor
			if enemy.Shielded {
				stroke = config.EssenceColor
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(radius+2.5), stroke, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(radius), c, true)

		if !enemy.IsDying {
			s.drawEnemyHealth(screen, id, pos.X, pos.Y, radius)
		}
	}

	for id, rend := range s.ecs.Renderables {
		if _, ok := s.ecs.Projectiles[id]; ok {
			if pos := s.ecs.Positions[id]; pos != nil {
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(rend.Radius), rend.Color, true)
			}
			continue
		}
		if _, ok := s.ecs.Satellites[id]; ok {
			if pos := s.ecs.Positions[id]; pos != nil {
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(rend.Radius), rend.Color, true)
				vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(rend.Radius+2), 1, rend.Color, true)
			}
		}
	}

	s.particles.Each(func(p *Particle) {
		c := p.Color
		c.A = uint8(255 * p.Life / p.MaxLife)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), c, true)
	})

	s.shockwaves.Each(func(w *Shockwave) {
		t := w.Progress()
		c := config.CoreColor
		c.A = uint8(200 * (1 - t))
		vector.StrokeCircle(screen, float32(w.X), float32(w.Y), float32(w.MaxRadius*t), 2, c, true)
	})

	s.floaters.Each(func(f *Floater) {
		c := config.TextLightColor
		label := fmt.Sprintf("%.0f", f.Value)
		if f.Crit {
			c = config.CritTextColor
			label += "!"
		}
		c.A = uint8(255 * f.Life / config.FloaterLife)
		text.Draw(screen, label, s.face, int(f.X), int(f.Y), c)
	})
}

// drawCore renders the core with a slow pulse and a hurt tint that deepens
// as HP drops.
func (s *RenderSystem) drawCore(screen *ebiten.Image, gameTime float64) {
	hp, maxHP := s.ctx.CoreHP()
	frac := 0.0
	if maxHP > 0 {
		frac = hp / maxHP
	}

	pulse := config.CoreRadius * (1 + 0.04*math.Sin(gameTime*2.2))
	c := lerpRGBA(config.CoreHurtColor, config.CoreColor, frac)

	halo := c
	halo.A = 50
	vector.DrawFilledCircle(screen, float32(config.CoreX), float32(config.CoreY), float32(pulse*1.35), halo, true)
	vector.DrawFilledCircle(screen, float32(config.CoreX), float32(config.CoreY), float32(pulse), c, true)
	vector.StrokeCircle(screen, float32(config.CoreX), float32(config.CoreY), float32(pulse+3), 1.5, c, true)
}

// drawEnemyHealth draws a small bar above any enemy below full HP.
func (s *RenderSystem) drawEnemyHealth(screen *ebiten.Image, id types.EntityID, x, y, radius float64) {
	hp := s.ecs.Healths[id]
	if hp == nil || hp.Value >= hp.Max {
		return
	}
	w := radius * 2
	frac := hp.Value / hp.Max
	if frac < 0 {
		frac = 0
	}
	bx := float32(x - radius)
	by := float32(y - radius - 7)
	vector.DrawFilledRect(screen, bx, by, float32(w), 3, config.HealthBarBack, true)
	vector.DrawFilledRect(screen, bx, by, float32(w*frac), 3, config.HealthBarFront, true)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
