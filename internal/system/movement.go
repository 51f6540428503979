// internal/system/movement.go
package system

import (
	"math"

	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/utils"
)

// MovementSystem walks every live enemy toward the core, applies per-kind
// motion quirks, ticks regeneration and the death animation, and reports
// core breaches through the dispatcher. A breached enemy is removed in the
// same tick so it can never hit the core twice.
type MovementSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *MovementSystem) Update(dt float64) {
	for _, id := range s.ecs.EnemyOrder {
		enemy, ok := s.ecs.Enemies[id]
		if !ok {
			continue
		}

		if enemy.IsDying {
			enemy.DeathTimer -= dt
			if enemy.DeathTimer <= 0 {
				enemy.MarkedForDeletion = true
			}
			continue
		}

		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		hp := s.ecs.Healths[id]
		rend := s.ecs.Renderables[id]
		if pos == nil || vel == nil || hp == nil || rend == nil {
			continue
		}

		angle := utils.AngleTo(pos.X, pos.Y, config.CoreX, config.CoreY)
		vel.X = math.Cos(angle) * vel.Speed
		vel.Y = math.Sin(angle) * vel.Speed

		if enemy.ZigzagDir != 0 {
			def := defs.EnemyDefs[enemy.Kind]
			enemy.ZigzagTimer += dt
			if enemy.ZigzagTimer >= def.ZigzagPeriod {
				enemy.ZigzagTimer -= def.ZigzagPeriod
				enemy.ZigzagDir = -enemy.ZigzagDir
			}
			// Lateral oscillation perpendicular to the approach line.
			vel.X += math.Cos(angle+math.Pi/2) * def.ZigzagSpeed * enemy.ZigzagDir
			vel.Y += math.Sin(angle+math.Pi/2) * def.ZigzagSpeed * enemy.ZigzagDir
		}

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		if enemy.RegenPerSec > 0 && hp.Value < hp.Max {
			hp.Value = math.Min(hp.Max, hp.Value+hp.Max*enemy.RegenPerSec*dt)
		}

		if flash := s.ecs.DamageFlashes[id]; flash != nil {
			flash.Timer -= dt
			if flash.Timer <= 0 {
				delete(s.ecs.DamageFlashes, id)
			}
		}

		if utils.Dist(pos.X, pos.Y, config.CoreX, config.CoreY) <= config.CoreRadius+rend.Radius {
			s.dispatcher.Dispatch(event.Event{
				Type: event.EnemyReachedCore,
				Data: event.BreachData{ID: id, Damage: hp.Value},
			})
			s.ecs.Remove(id)
		}
	}
	s.ecs.CompactEnemies()
}
