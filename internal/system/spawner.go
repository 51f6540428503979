// internal/system/spawner.go
package system

import (
	"math"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/internal/utils"
)

// SpawnerSystem owns enemy pressure: the adaptive pace factor, the spawn
// timer, the weighted variant roll, boss wave injection, and (as the
// EnemyKilled listener) rewards, drops and level advancement.
type SpawnerSystem struct {
	ecs        *entity.ECS
	ctx        SessionContext
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	pace       float64
	spawnTimer float64
	bossWave   int // last wave a boss was injected for
}

func NewSpawnerSystem(ecs *entity.ECS, ctx SessionContext, rng *utils.PRNGService,
	dispatcher *event.Dispatcher) *SpawnerSystem {
	s := &SpawnerSystem{
		ecs:        ecs,
		ctx:        ctx,
		rng:        rng,
		dispatcher: dispatcher,
		pace:       1.0,
	}
	dispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// Pace exposes the current adaptive factor for the HUD and tests.
func (s *SpawnerSystem) Pace() float64 { return s.pace }

// Reset restores run-start pacing.
func (s *SpawnerSystem) Reset() {
	s.pace = 1.0
	s.spawnTimer = 0
	s.bossWave = 0
}

func (s *SpawnerSystem) Update(dt float64) {
	s.updatePace(dt)

	level := s.ctx.Level()

	// Boss waves are injected outside the normal timer, one boss at a time.
	if level%config.BossWaveInterval == 0 && level > s.bossWave && !s.ecs.BossAlive() {
		kind := defs.EnemyBoss
		if level >= config.ShieldedBossWave {
			kind = defs.EnemyShieldedBoss
		}
		s.Spawn(kind)
		s.bossWave = level
	}

	s.spawnTimer -= dt
	if s.spawnTimer > 0 {
		return
	}

	if kind, ok := s.rng.ChooseWeighted(defs.SpawnTable, func(k defs.EnemyKind) bool {
		return level >= defs.EnemyDefs[k].MinWave
	}); ok {
		s.Spawn(kind)
	}

	interval := math.Max(config.MinSpawnRate,
		config.BaseSpawnRate-float64(level)*config.SpawnRateDecrement)
	s.spawnTimer = interval * s.pace
}

// updatePace blends core danger, field density and level momentum into a
// target factor, then eases the live factor toward it. The factor scales the
// spawn interval: above 1 the game backs off, below 1 it leans in.
func (s *SpawnerSystem) updatePace(dt float64) {
	hp, maxHP := s.ctx.CoreHP()
	danger := 0.0
	if maxHP > 0 {
		danger = 1 - hp/maxHP
	}
	density := utils.Clamp(float64(s.ecs.AliveEnemies())/config.EnemySoftCap, 0, 1)

	momentum := 0.0
	if lvl := s.ctx.Level(); lvl > config.GraceLevel {
		momentum = math.Min(float64(lvl-config.GraceLevel)*config.MomentumPerLevel,
			config.MomentumCap)
	}

	target := 1 + danger*config.DangerSlowdown + density*config.DensitySlowdown - momentum
	target = utils.Clamp(target, config.PaceMin, config.PaceMax)

	s.pace += (target - s.pace) * math.Min(config.PaceSmoothing*dt, 1)
}

// Spawn stamps out one enemy of the given kind at a random point just
// outside the screen edge, with HP scaled to the current level.
func (s *SpawnerSystem) Spawn(kind defs.EnemyKind) types.EntityID {
	def := defs.EnemyDefs[kind]
	level := s.ctx.Level()

	hp := defs.EnemyBaseHP * (1 + defs.EnemyHPGrowth*float64(level-1)) * def.HPMult

	x, y := s.edgePoint()
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: defs.EnemyBaseSpeed * def.SpeedMult}
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	enemy := &component.Enemy{
		Kind:        kind,
		Class:       def.Class,
		Armor:       def.Armor,
		ScrapMult:   def.ScrapMult,
		Shielded:    kind == defs.EnemyShieldedBoss,
		RegenPerSec: def.RegenPerSec,
	}
	if def.ZigzagPeriod > 0 {
		enemy.ZigzagDir = 1
		if s.rng.Float64() < 0.5 {
			enemy.ZigzagDir = -1
		}
	}
	s.ecs.Enemies[id] = enemy
	s.ecs.EnemyOrder = append(s.ecs.EnemyOrder, id)
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Color,
		Radius:    defs.EnemyBaseRadius * def.Radius,
		HasStroke: def.Class != defs.ClassNormal,
	}
	return id
}

// edgePoint picks a uniform point just off one of the four screen edges.
func (s *SpawnerSystem) edgePoint() (float64, float64) {
	switch s.rng.Intn(4) {
	case 0: // top
		return s.rng.Range(0, config.ScreenWidth), -config.SpawnMarginX
	case 1: // bottom
		return s.rng.Range(0, config.ScreenWidth), config.ScreenHeight + config.SpawnMarginX
	case 2: // left
		return -config.SpawnMarginX, s.rng.Range(0, config.ScreenHeight)
	default: // right
		return config.ScreenWidth + config.SpawnMarginX, s.rng.Range(0, config.ScreenHeight)
	}
}

// OnEvent handles EnemyKilled: scrap reward, rare-currency drop rolls, the
// kill counter and level advancement.
func (s *SpawnerSystem) OnEvent(e event.Event) {
	kill, ok := e.Data.(event.KillData)
	if !ok {
		return
	}
	def := defs.EnemyDefs[kill.Kind]
	level := s.ctx.Level()
	fx := s.ctx.SkillEffects()

	scrap := defs.EnemyBaseScrap * (1 + float64(level)*defs.EnemyScrapGrow) *
		def.ScrapMult *
		s.ctx.RunUpgrades().MultValue(defs.UpgradeScrapGain) *
		fx.ScrapMult
	s.ctx.AddScrap(scrap)

	s.rollDrop(def.Class, kill.X, kill.Y, fx)

	if s.ctx.AddKill()%config.KillsPerLevel == 0 {
		s.ctx.AdvanceLevel()
	}
}

func (s *SpawnerSystem) rollDrop(class defs.EnemyClass, x, y float64, fx defs.EffectsBundle) {
	var essenceChance, prismChance float64
	switch class {
	case defs.ClassNormal:
		essenceChance, prismChance = config.EssenceChanceNormal, config.PrismChanceNormal
	case defs.ClassElite:
		essenceChance, prismChance = config.EssenceChanceElite, config.PrismChanceElite
	case defs.ClassBoss:
		essenceChance, prismChance = config.EssenceChanceBoss, config.PrismChanceBoss
	}
	essenceChance += fx.EssenceDropBonus
	prismChance += fx.PrismDropBonus

	// At most one drop per kill; essence is checked first.
	if s.rng.Float64() < essenceChance {
		s.spawnCollectible(defs.CurrencyEssence, 1, x, y)
		return
	}
	if s.rng.Float64() < prismChance {
		s.spawnCollectible(defs.CurrencyPrisms, 1, x, y)
	}
}

func (s *SpawnerSystem) spawnCollectible(c defs.Currency, amount, x, y float64) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Collectibles[id] = &component.Collectible{
		Currency: c,
		Amount:   amount,
		Phase:    component.CollectibleIdle,
		Lifespan: config.CollectibleLifespan,
		BobPhase: s.rng.Range(0, 2*math.Pi),
		BaseY:    y,
	}
	tint := config.EssenceColor
	if c == defs.CurrencyPrisms {
		tint = config.PrismColor
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: tint, Radius: config.CollectibleRadius}
}
