// internal/system/collectible.go
package system

import (
	"math"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/interfaces"
	"go-core-defense/internal/types"
	"go-core-defense/internal/utils"
)

// CollectibleSystem runs the rare-currency pickups: idle bobbing with a
// lifespan, click-to-collect, and the seek flight that banks the amount when
// the pickup reaches the core.
type CollectibleSystem struct {
	ecs        *entity.ECS
	ctx        SessionContext
	dispatcher *event.Dispatcher
	sink       interfaces.EffectsSink
}

func NewCollectibleSystem(ecs *entity.ECS, ctx SessionContext, dispatcher *event.Dispatcher,
	sink interfaces.EffectsSink) *CollectibleSystem {
	return &CollectibleSystem{ecs: ecs, ctx: ctx, dispatcher: dispatcher, sink: sink}
}

func (s *CollectibleSystem) Update(dt float64) {
	for id, col := range s.ecs.Collectibles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.Remove(id)
			continue
		}

		switch col.Phase {
		case component.CollectibleIdle:
			col.Lifespan -= dt
			if col.Lifespan <= 0 {
				s.ecs.Remove(id)
				continue
			}
			col.BobPhase += config.CollectibleBobSpeed * dt
			pos.Y = col.BaseY + math.Sin(col.BobPhase)*config.CollectibleBobHeight

		case component.CollectibleSeeking:
			dist := utils.Dist(pos.X, pos.Y, config.CoreX, config.CoreY)
			step := config.CollectibleSeekSpeed * dt
			if dist <= step {
				s.ctx.AddCurrency(col.Currency, col.Amount)
				s.dispatcher.Dispatch(event.Event{
					Type: event.CurrencyDropped,
					Data: event.DropData{Currency: col.Currency, Amount: col.Amount},
				})
				if rend := s.ecs.Renderables[id]; rend != nil {
					s.sink.EmitParticles("pickup", config.CoreX, config.CoreY, rend.Color)
				}
				s.ecs.Remove(id)
				continue
			}
			angle := utils.AngleTo(pos.X, pos.Y, config.CoreX, config.CoreY)
			pos.X += math.Cos(angle) * step
			pos.Y += math.Sin(angle) * step
		}
	}
}

// ResolveClick collects the topmost idle pickup under the cursor, if any.
func (s *CollectibleSystem) ResolveClick(x, y float64) bool {
	var best types.EntityID
	bestDist := math.Inf(1)
	for id, col := range s.ecs.Collectibles {
		if col.Phase != component.CollectibleIdle {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		d := utils.Dist(x, y, pos.X, pos.Y)
		if d <= config.CollectibleRadius+config.ClickHitRadius && d < bestDist {
			bestDist = d
			best = id
		}
	}
	if best == 0 {
		return false
	}
	s.ecs.Collectibles[best].Phase = component.CollectibleSeeking
	return true
}
