// internal/system/satellite.go
package system

import (
	"math"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/types"
)

// SatelliteSystem keeps the orbit skin's satellite ring sized and revolving,
// and fires standard homing shots from each satellite on its own cooldown.
type SatelliteSystem struct {
	ecs      *entity.ECS
	ctx      SessionContext
	combat   *CombatSystem
	launcher *ProjectileSystem
}

func NewSatelliteSystem(ecs *entity.ECS, ctx SessionContext, combat *CombatSystem,
	launcher *ProjectileSystem) *SatelliteSystem {
	return &SatelliteSystem{ecs: ecs, ctx: ctx, combat: combat, launcher: launcher}
}

func (s *SatelliteSystem) Update(dt float64) {
	skin := s.ctx.EquippedSkin()
	want := 0
	if skin.Mode == defs.AttackOrbit {
		want = skin.OrbitCount + s.ctx.SkillEffects().ExtraSatellites
	}
	s.reconcile(want, skin)

	for id, sat := range s.ecs.Satellites {
		sat.Angle = math.Mod(sat.Angle+config.OrbitAngularSpeed*dt, 2*math.Pi)
		pos := s.ecs.Positions[id]
		pos.X = config.CoreX + math.Cos(sat.Angle)*sat.Radius
		pos.Y = config.CoreY + math.Sin(sat.Angle)*sat.Radius

		sat.Timer -= dt
		if sat.Timer > 0 {
			continue
		}
		target := s.combat.closestEnemyTo(pos.X, pos.Y, 0)
		if target == 0 {
			continue
		}
		info := s.combat.Damage(defs.SourceAuto)
		info.Damage *= skin.DamageMult
		s.launcher.FireStandard(pos.X, pos.Y, target, info)
		sat.Timer = sat.Cooldown
	}
}

// reconcile adds or removes satellites until the ring matches the wanted
// count, then respaces the survivors evenly.
func (s *SatelliteSystem) reconcile(want int, skin defs.SkinDefinition) {
	have := len(s.ecs.Satellites)
	if have == want {
		return
	}
	for have > want {
		var victim types.EntityID
		for id := range s.ecs.Satellites {
			victim = id
			break
		}
		s.ecs.Remove(victim)
		have--
	}
	for have < want {
		id := s.ecs.NewEntity()
		s.ecs.Satellites[id] = &component.Satellite{
			Radius:   config.OrbitRadius,
			Cooldown: skin.OrbitCooldown,
		}
		s.ecs.Positions[id] = &component.Position{X: config.CoreX, Y: config.CoreY}
		s.ecs.Renderables[id] = &component.Renderable{
			Color:  skin.Accent,
			Radius: config.SatelliteRadius,
		}
		have++
	}

	// Re-space so the ring stays symmetric after any change.
	i := 0
	for _, sat := range s.ecs.Satellites {
		sat.Angle = 2 * math.Pi * float64(i) / float64(want)
		i++
	}
}

// Clear drops every satellite, used on run reset.
func (s *SatelliteSystem) Clear() {
	for id := range s.ecs.Satellites {
		s.ecs.Remove(id)
	}
}
