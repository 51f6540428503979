// internal/system/projectile.go
package system

import (
	"math"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/interfaces"
	"go-core-defense/internal/types"
	"go-core-defense/internal/utils"
)

// splitSpreadRad is the angular fan between split children.
const splitSpreadRad = 0.45

// ProjectileSystem runs the per-projectile state machine: homing with
// ballistic fallback, piercing with exponential decay, bouncing, splitting,
// charged AoE, plus spawning for all of them. Kill crediting happens inside
// CombatSystem.HitEnemy, so every kill — splash included — reports exactly
// once.
type ProjectileSystem struct {
	ecs    *entity.ECS
	combat *CombatSystem
	ctx    SessionContext
	sink   interfaces.EffectsSink
}

func NewProjectileSystem(ecs *entity.ECS, combat *CombatSystem, ctx SessionContext,
	sink interfaces.EffectsSink) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:    ecs,
		combat: combat,
		ctx:    ctx,
		sink:   sink,
	}
}

// Fire launches the equipped skin's attack pattern from (x,y) at a target.
func (s *ProjectileSystem) Fire(skin defs.SkinDefinition, x, y float64, target types.EntityID, info DamageInfo) {
	fx := s.ctx.SkillEffects()
	speed := config.ProjectileSpeed * fx.ProjectileSpeedMult

	switch skin.Mode {
	case defs.AttackStandard:
		s.spawnHoming(defs.AttackStandard, x, y, target, info, speed, skin)

	case defs.AttackTwin:
		// Two shots offset perpendicular to the firing line.
		angle := s.angleToTarget(x, y, target)
		ox := math.Cos(angle+math.Pi/2) * config.TwinOffset
		oy := math.Sin(angle+math.Pi/2) * config.TwinOffset
		s.spawnHoming(defs.AttackTwin, x+ox, y+oy, target, info, speed, skin)
		s.spawnHoming(defs.AttackTwin, x-ox, y-oy, target, info, speed, skin)

	case defs.AttackPiercing:
		id := s.spawnStraight(defs.AttackPiercing, x, y, s.angleToTarget(x, y, target), info, speed, skin)
		proj := s.ecs.Projectiles[id]
		proj.PierceLeft = skin.PierceCount + fx.ExtraPierce
		proj.DamageDecay = skin.DamageDecay

	case defs.AttackBouncing:
		id := s.spawnHoming(defs.AttackBouncing, x, y, target, info, speed, skin)
		proj := s.ecs.Projectiles[id]
		proj.BouncesLeft = skin.BounceCount + fx.ExtraBounce
		proj.BounceRange = skin.BounceRange

	case defs.AttackSplitting:
		id := s.spawnStraight(defs.AttackSplitting, x, y, s.angleToTarget(x, y, target), info, speed, skin)
		proj := s.ecs.Projectiles[id]
		proj.SplitAt = skin.SplitDistance
		proj.SplitCount = skin.SplitCount + fx.ExtraSplit

	case defs.AttackCharged:
		id := s.spawnHoming(defs.AttackCharged, x, y, target, info, speed*config.ChargedSpeedFactor, skin)
		proj := s.ecs.Projectiles[id]
		proj.Radius = config.ProjectileRadius * config.ChargedRadiusFactor
		proj.BlastRadius = skin.BlastRadius
		if rend := s.ecs.Renderables[id]; rend != nil {
			rend.Radius = proj.Radius
		}

	case defs.AttackOrbit:
		// Orbit mode never fires directly; satellites call FireStandard.
	}
}

// FireStandard launches a single standard homing shot (satellites, split
// children use spawn helpers directly).
func (s *ProjectileSystem) FireStandard(x, y float64, target types.EntityID, info DamageInfo) {
	fx := s.ctx.SkillEffects()
	skin := s.ctx.EquippedSkin()
	s.spawnHoming(defs.AttackStandard, x, y, target, info, config.ProjectileSpeed*fx.ProjectileSpeedMult, skin)
}

func (s *ProjectileSystem) angleToTarget(x, y float64, target types.EntityID) float64 {
	if pos, ok := s.ecs.Positions[target]; ok {
		return utils.AngleTo(x, y, pos.X, pos.Y)
	}
	return 0
}

func (s *ProjectileSystem) spawnHoming(mode defs.AttackMode, x, y float64, target types.EntityID,
	info DamageInfo, speed float64, skin defs.SkinDefinition) types.EntityID {
	id := s.ecs.NewEntity()
	angle := s.angleToTarget(x, y, target)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Projectiles[id] = &component.Projectile{
		Mode:     mode,
		TargetID: target,
		Speed:    speed,
		Damage:   info.Damage,
		IsCrit:   info.IsCrit,
		Color:    skin.Projectile,
		Radius:   config.ProjectileRadius,
	}
	s.ecs.Velocities[id] = &component.Velocity{
		X: math.Cos(angle) * speed,
		Y: math.Sin(angle) * speed,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  skin.Projectile,
		Radius: config.ProjectileRadius,
	}
	return id
}

func (s *ProjectileSystem) spawnStraight(mode defs.AttackMode, x, y, angle float64,
	info DamageInfo, speed float64, skin defs.SkinDefinition) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Projectiles[id] = &component.Projectile{
		Mode:      mode,
		Speed:     speed,
		Damage:    info.Damage,
		IsCrit:    info.IsCrit,
		Color:     skin.Projectile,
		Radius:    config.ProjectileRadius,
		Ballistic: true, // straight modes never home
	}
	s.ecs.Velocities[id] = &component.Velocity{
		X: math.Cos(angle) * speed,
		Y: math.Sin(angle) * speed,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  skin.Projectile,
		Radius: config.ProjectileRadius,
	}
	return id
}

// Update advances every projectile one tick.
func (s *ProjectileSystem) Update(dt float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			s.ecs.Remove(id)
			continue
		}

		switch proj.Mode {
		case defs.AttackStandard, defs.AttackTwin, defs.AttackCharged:
			s.updateHoming(id, proj, pos, vel, dt)
		case defs.AttackBouncing:
			s.updateBouncing(id, proj, pos, vel, dt)
		case defs.AttackPiercing:
			s.updatePiercing(id, proj, pos, vel, dt)
		case defs.AttackSplitting:
			s.updateSplitting(id, proj, pos, vel, dt)
		case defs.AttackOrbit:
			// Satellites are not projectiles; nothing carries this mode.
			s.ecs.Remove(id)
			continue
		}

		// The hit handlers may have removed the projectile already.
		if proj, ok := s.ecs.Projectiles[id]; ok {
			s.emitTrail(proj, pos)
			if s.offscreen(pos) {
				s.ecs.Remove(id)
			}
		}
	}
}

// updateHoming recalculates velocity toward a live target every tick and
// resolves the hit once within a tick's travel. A dead target flips the
// projectile into ballistic travel: straight flight that collides with any
// live enemy it touches.
func (s *ProjectileSystem) updateHoming(id types.EntityID, proj *component.Projectile,
	pos *component.Position, vel *component.Velocity, dt float64) {

	if !proj.Ballistic {
		if !s.targetAlive(proj.TargetID) {
			proj.Ballistic = true
		} else {
			targetPos := s.ecs.Positions[proj.TargetID]
			dist := utils.Dist(pos.X, pos.Y, targetPos.X, targetPos.Y)
			if dist <= proj.Speed*dt || dist < config.HitResolveRadius {
				s.resolveHit(id, proj, proj.TargetID, pos)
				return
			}
			angle := utils.AngleTo(pos.X, pos.Y, targetPos.X, targetPos.Y)
			vel.X = math.Cos(angle) * proj.Speed
			vel.Y = math.Sin(angle) * proj.Speed
		}
	}

	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
	proj.Traveled += proj.Speed * dt

	if proj.Ballistic {
		if hit := s.firstOverlap(proj, pos); hit != 0 {
			s.resolveHit(id, proj, hit, pos)
		}
	}
}

func (s *ProjectileSystem) updateBouncing(id types.EntityID, proj *component.Projectile,
	pos *component.Position, vel *component.Velocity, dt float64) {

	if s.targetAlive(proj.TargetID) {
		targetPos := s.ecs.Positions[proj.TargetID]
		dist := utils.Dist(pos.X, pos.Y, targetPos.X, targetPos.Y)
		if dist <= proj.Speed*dt || dist < config.HitResolveRadius {
			s.bounceHit(id, proj, proj.TargetID, pos)
			return
		}
		angle := utils.AngleTo(pos.X, pos.Y, targetPos.X, targetPos.Y)
		vel.X = math.Cos(angle) * proj.Speed
		vel.Y = math.Sin(angle) * proj.Speed
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		return
	}

	// Target died before the bounce landed: retarget if budget remains,
	// otherwise coast ballistically.
	if next := s.nearestUnhit(proj, pos, proj.BounceRange); next != 0 && proj.BouncesLeft > 0 {
		proj.TargetID = next
		return
	}
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
	if hit := s.firstOverlap(proj, pos); hit != 0 {
		s.bounceHit(id, proj, hit, pos)
	}
}

func (s *ProjectileSystem) bounceHit(id types.EntityID, proj *component.Projectile,
	target types.EntityID, pos *component.Position) {

	s.combat.HitEnemy(target, DamageInfo{Damage: proj.Damage, IsCrit: proj.IsCrit})
	proj.HitIDs = append(proj.HitIDs, target)

	if proj.BouncesLeft <= 0 {
		s.ecs.Remove(id)
		return
	}
	next := s.nearestUnhit(proj, pos, proj.BounceRange)
	if next == 0 {
		s.ecs.Remove(id)
		return
	}
	proj.BouncesLeft--
	proj.TargetID = next
}

func (s *ProjectileSystem) updatePiercing(id types.EntityID, proj *component.Projectile,
	pos *component.Position, vel *component.Velocity, dt float64) {

	pos.X += vel.X * dt
	pos.Y += vel.Y * dt

	// Strike every unvisited enemy the shot overlaps this tick, with
	// exponential damage decay per hit already taken.
	for enemyID, enemy := range s.ecs.Enemies {
		if !enemy.Interactable() || proj.AlreadyHit(enemyID) {
			continue
		}
		epos := s.ecs.Positions[enemyID]
		rend := s.ecs.Renderables[enemyID]
		if epos == nil || rend == nil {
			continue
		}
		reach := rend.Radius + proj.Radius
		if utils.DistSq(pos.X, pos.Y, epos.X, epos.Y) > reach*reach {
			continue
		}
		dmg := proj.Damage * math.Pow(proj.DamageDecay, float64(proj.HitsSoFar))
		s.combat.HitEnemy(enemyID, DamageInfo{Damage: dmg, IsCrit: proj.IsCrit})
		proj.HitIDs = append(proj.HitIDs, enemyID)
		proj.HitsSoFar++
		proj.PierceLeft--
		if proj.PierceLeft <= 0 {
			s.ecs.Remove(id)
			return
		}
	}
}

func (s *ProjectileSystem) updateSplitting(id types.EntityID, proj *component.Projectile,
	pos *component.Position, vel *component.Velocity, dt float64) {

	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
	proj.Traveled += proj.Speed * dt

	// Children are plain ballistic shots; only the parent splits.
	if proj.IsChild {
		if hit := s.firstOverlap(proj, pos); hit != 0 {
			s.resolveHit(id, proj, hit, pos)
		}
		return
	}
	if proj.Traveled < proj.SplitAt {
		return
	}

	heading := math.Atan2(vel.Y, vel.X)
	n := proj.SplitCount
	skin := s.ctx.EquippedSkin()
	for i := 0; i < n; i++ {
		fan := heading + splitSpreadRad*(float64(i)-float64(n-1)/2)
		childID := s.spawnStraight(defs.AttackSplitting, pos.X, pos.Y, fan,
			DamageInfo{Damage: proj.Damage, IsCrit: proj.IsCrit}, proj.Speed, skin)
		child := s.ecs.Projectiles[childID]
		child.IsChild = true
		// Each fragment homes on the nearest live enemy when one exists;
		// otherwise it keeps its fan heading ballistically.
		if target := s.combat.closestEnemyTo(pos.X, pos.Y, 0); target != 0 {
			child.Mode = defs.AttackStandard
			child.Ballistic = false
			child.TargetID = target
		}
	}
	s.sink.EmitParticles("impact", pos.X, pos.Y, proj.Color)
	s.ecs.Remove(id)
}

// resolveHit lands a homing/ballistic shot. Charged shots additionally
// splash half the direct roll to every other live enemy inside the blast
// radius; the primary target is excluded so it is never counted twice.
func (s *ProjectileSystem) resolveHit(id types.EntityID, proj *component.Projectile,
	target types.EntityID, pos *component.Position) {

	s.combat.HitEnemy(target, DamageInfo{Damage: proj.Damage, IsCrit: proj.IsCrit})

	if proj.Mode == defs.AttackCharged {
		splash := DamageInfo{Damage: proj.Damage / 2, IsCrit: proj.IsCrit}
		for enemyID, enemy := range s.ecs.Enemies {
			if enemyID == target || !enemy.Interactable() {
				continue
			}
			epos := s.ecs.Positions[enemyID]
			if epos == nil {
				continue
			}
			if utils.DistSq(pos.X, pos.Y, epos.X, epos.Y) <= proj.BlastRadius*proj.BlastRadius {
				s.combat.HitEnemy(enemyID, splash)
			}
		}
		s.sink.AddShockwave(pos.X, pos.Y, proj.BlastRadius)
		s.sink.EmitParticles("blast", pos.X, pos.Y, proj.Color)
	} else {
		s.sink.EmitParticles("impact", pos.X, pos.Y, proj.Color)
	}
	s.ecs.Remove(id)
}

// firstOverlap finds any live enemy the projectile currently touches,
// skipping already-hit ones.
func (s *ProjectileSystem) firstOverlap(proj *component.Projectile, pos *component.Position) types.EntityID {
	for enemyID, enemy := range s.ecs.Enemies {
		if !enemy.Interactable() || proj.AlreadyHit(enemyID) {
			continue
		}
		epos := s.ecs.Positions[enemyID]
		rend := s.ecs.Renderables[enemyID]
		if epos == nil || rend == nil {
			continue
		}
		reach := rend.Radius + proj.Radius
		if utils.DistSq(pos.X, pos.Y, epos.X, epos.Y) <= reach*reach {
			return enemyID
		}
	}
	return 0
}

// nearestUnhit finds the closest live enemy within range that the
// projectile has not struck yet.
func (s *ProjectileSystem) nearestUnhit(proj *component.Projectile, pos *component.Position, maxRange float64) types.EntityID {
	var best types.EntityID
	bestDist := maxRange * maxRange
	for enemyID, enemy := range s.ecs.Enemies {
		if !enemy.Interactable() || proj.AlreadyHit(enemyID) {
			continue
		}
		epos := s.ecs.Positions[enemyID]
		if epos == nil {
			continue
		}
		d := utils.DistSq(pos.X, pos.Y, epos.X, epos.Y)
		if d <= bestDist {
			bestDist = d
			best = enemyID
		}
	}
	return best
}

func (s *ProjectileSystem) targetAlive(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	enemy, ok := s.ecs.Enemies[id]
	return ok && enemy.Interactable() && s.ecs.Positions[id] != nil
}

// emitTrail throttles trail particles to every Nth tick per projectile.
func (s *ProjectileSystem) emitTrail(proj *component.Projectile, pos *component.Position) {
	proj.TrailTick++
	if proj.TrailTick%config.TrailEveryNthTick == 0 {
		s.sink.EmitParticles("trail", pos.X, pos.Y, proj.Color)
	}
}

func (s *ProjectileSystem) offscreen(pos *component.Position) bool {
	m := config.OffscreenMargin
	return pos.X < -m || pos.X > config.ScreenWidth+m ||
		pos.Y < -m || pos.Y > config.ScreenHeight+m
}
