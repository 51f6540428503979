// internal/system/combat.go
package system

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/interfaces"
	"go-core-defense/internal/progress"
	"go-core-defense/internal/types"
	"go-core-defense/internal/utils"
)

// DamageInfo is one resolved damage roll.
type DamageInfo struct {
	Damage float64
	IsCrit bool
}

// CombatSystem is the single damage authority: it rolls damage for clicks
// and the auto turret, applies hits to enemies and owns the turret's fire
// cooldown. Nothing else mutates enemy HP.
type CombatSystem struct {
	ecs        *entity.ECS
	ctx        SessionContext
	rng        *utils.PRNGService
	sink       interfaces.EffectsSink
	dispatcher *event.Dispatcher
	launcher   *ProjectileSystem

	fireCooldown float64
}

func NewCombatSystem(ecs *entity.ECS, ctx SessionContext, rng *utils.PRNGService,
	sink interfaces.EffectsSink, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:        ecs,
		ctx:        ctx,
		rng:        rng,
		sink:       sink,
		dispatcher: dispatcher,
	}
}

// AttachLauncher wires the projectile engine after construction; the two
// systems reference each other (turret fires shots, shots resolve hits).
func (s *CombatSystem) AttachLauncher(launcher *ProjectileSystem) {
	s.launcher = launcher
}

// Damage rolls one hit for the given source. The order of operations is
// load-bearing for reproducibility:
// base -> permanent flat/mult -> crit roll -> prestige mult ->
// skill all-damage mult -> skill source flat -> skill crit-damage mult.
func (s *CombatSystem) Damage(source defs.DamageSource) DamageInfo {
	ups := s.ctx.RunUpgrades()
	perms := s.ctx.PermanentUpgrades()
	fx := s.ctx.SkillEffects()

	var dmg float64
	switch source {
	case defs.SourceClick:
		dmg = ups.Value(defs.UpgradeClickDamage)
		dmg += perms.Value(defs.PermClickFlat)
	case defs.SourceAuto:
		dmg = ups.Value(defs.UpgradeAutoDamage)
		dmg *= perms.MultValue(defs.PermAutoMult)
	}

	critChance := ups.Value(defs.UpgradeCritChance) +
		perms.Value(defs.PermCritBonus) +
		fx.CritChanceBonus
	isCrit := s.rng.Float64() < critChance
	if isCrit {
		dmg *= config.CritMultiplier
	}

	dmg *= progress.PrestigeDamageMult(s.ctx.Cores())
	dmg *= fx.AllDamageMult
	switch source {
	case defs.SourceClick:
		dmg += fx.ClickDamageFlat
	case defs.SourceAuto:
		dmg += fx.AutoDamageFlat
	}
	if isCrit {
		dmg *= fx.CritDamageMult
	}

	return DamageInfo{Damage: dmg, IsCrit: isCrit}
}

// HitEnemy applies a resolved roll to an enemy. Returns true exactly once
// per enemy, on the frame HP first crosses zero; the enemy then plays its
// death animation instead of disappearing.
func (s *CombatSystem) HitEnemy(id types.EntityID, info DamageInfo) bool {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || !enemy.Interactable() {
		return false
	}
	health := s.ecs.Healths[id]
	pos := s.ecs.Positions[id]
	if health == nil || pos == nil {
		return false
	}

	dmg := info.Damage
	if enemy.Shielded {
		dmg *= config.BossShieldFactor
	}
	// Armor reduces but never fully negates a hit.
	loss := dmg - enemy.Armor
	if enemy.Armor > 0 && dmg > 0 && loss < 1 {
		loss = 1
	}
	health.Value -= loss

	s.ecs.DamageFlashes[id] = &component.DamageFlash{
		Timer:    config.HitFlashDuration,
		Duration: config.HitFlashDuration,
	}

	fx := s.ctx.SkillEffects()
	if fx.LifestealPct > 0 {
		// HealCore clamps against max core HP.
		s.ctx.HealCore(loss * fx.LifestealPct)
	}

	s.sink.AddDamageNumber(pos.X, pos.Y, loss, info.IsCrit)

	if health.Value <= 0 {
		enemy.IsDying = true
		enemy.DeathTimer = config.DeathAnimDuration
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{
			ID:   id,
			Kind: enemy.Kind,
			X:    pos.X,
			Y:    pos.Y,
		}})
		return true
	}
	return false
}

// Update runs the auto turret: once the cooldown elapses it fires the
// equipped skin's attack at the pre-scanned closest enemy. The orbit skin
// fires through its satellites instead (see SatelliteSystem).
func (s *CombatSystem) Update(dt float64, closest types.EntityID) {
	if s.fireCooldown > 0 {
		s.fireCooldown -= dt
	}

	skin := s.ctx.EquippedSkin()
	if skin.Mode == defs.AttackOrbit {
		return
	}
	if s.fireCooldown > 0 || closest == 0 || s.launcher == nil {
		return
	}
	if enemy, ok := s.ecs.Enemies[closest]; !ok || !enemy.Interactable() {
		return
	}

	info := s.Damage(defs.SourceAuto)
	info.Damage *= skin.DamageMult
	s.launcher.Fire(skin, config.CoreX, config.CoreY, closest, info)

	fx := s.ctx.SkillEffects()
	rate := s.ctx.RunUpgrades().Value(defs.UpgradeFireRate) * fx.FireRateMult
	if rate <= 0 {
		rate = 0.1
	}
	s.fireCooldown = 1.0 / rate
}

// ResolveClick runs a tap at (x,y) through the same resolver as auto fire.
// Enemies are tested topmost-drawn-first with an expanded radius; at most
// one enemy takes the hit.
func (s *CombatSystem) ResolveClick(x, y float64) bool {
	order := s.ecs.EnemyOrder
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		enemy, ok := s.ecs.Enemies[id]
		if !ok || !enemy.Interactable() {
			continue
		}
		pos := s.ecs.Positions[id]
		rend := s.ecs.Renderables[id]
		if pos == nil || rend == nil {
			continue
		}
		hitR := rend.Radius + config.ClickHitRadius
		if utils.DistSq(x, y, pos.X, pos.Y) > hitR*hitR {
			continue
		}
		info := s.Damage(defs.SourceClick)
		s.HitEnemy(id, info)
		s.sink.EmitParticles("impact", pos.X, pos.Y, rend.Color)
		return true
	}
	return false
}

// ClosestEnemy scans for the nearest targetable enemy to the core. The scan
// runs once per tick and its result feeds both the turret and satellites.
func (s *CombatSystem) ClosestEnemy() types.EntityID {
	return s.closestEnemyTo(config.CoreX, config.CoreY, 0)
}

func (s *CombatSystem) closestEnemyTo(x, y float64, exclude types.EntityID) types.EntityID {
	var best types.EntityID
	bestDist := -1.0
	for id, enemy := range s.ecs.Enemies {
		if id == exclude || !enemy.Interactable() {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		d := utils.DistSq(x, y, pos.X, pos.Y)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = id
		}
	}
	return best
}
