// internal/entity/ecs.go
package entity

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
)

// ECS holds every live entity as parallel component maps keyed by EntityID.
// One simulation goroutine owns it; there is no locking.
//
// EnemyOrder keeps enemies in spawn order: the renderer draws it front to
// back and the click hit test walks it back to front (topmost first), so
// compaction must be stable, not swap-remove.
type ECS struct {
	NextID types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Satellites    map[types.EntityID]*component.Satellite
	Collectibles  map[types.EntityID]*component.Collectible
	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash

	EnemyOrder []types.EntityID
}

// NewECS creates an empty entity store. IDs start at 1; 0 is the nil entity.
func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Satellites:    make(map[types.EntityID]*component.Satellite),
		Collectibles:  make(map[types.EntityID]*component.Collectible),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
	}
}

// NewEntity allocates a fresh entity ID.
func (e *ECS) NewEntity() types.EntityID {
	id := e.NextID
	e.NextID++
	return id
}

// Remove deletes an entity from every component map. Enemy-order compaction
// is a separate pass (CompactEnemies) so removal during iteration stays safe.
func (e *ECS) Remove(id types.EntityID) {
	delete(e.Positions, id)
	delete(e.Velocities, id)
	delete(e.Healths, id)
	delete(e.Enemies, id)
	delete(e.Projectiles, id)
	delete(e.Satellites, id)
	delete(e.Collectibles, id)
	delete(e.Renderables, id)
	delete(e.DamageFlashes, id)
}

// CompactEnemies removes marked enemies from the store and stable-partitions
// EnemyOrder in place, preserving draw order without allocating a new slice.
func (e *ECS) CompactEnemies() {
	keep := e.EnemyOrder[:0]
	for _, id := range e.EnemyOrder {
		enemy, ok := e.Enemies[id]
		if !ok {
			continue
		}
		if enemy.MarkedForDeletion {
			e.Remove(id)
			continue
		}
		keep = append(keep, id)
	}
	// Zero the tail so removed IDs do not pin anything.
	for i := len(keep); i < len(e.EnemyOrder); i++ {
		e.EnemyOrder[i] = 0
	}
	e.EnemyOrder = keep
}

// AliveEnemies counts enemies that can still be targeted.
func (e *ECS) AliveEnemies() int {
	n := 0
	for _, enemy := range e.Enemies {
		if enemy.Interactable() {
			n++
		}
	}
	return n
}

// BossAlive reports whether any boss-class enemy is currently live. At most
// one may exist at a time; the spawner checks this before injecting one.
func (e *ECS) BossAlive() bool {
	for _, enemy := range e.Enemies {
		if enemy.Class == defs.ClassBoss && !enemy.MarkedForDeletion {
			return true
		}
	}
	return false
}
