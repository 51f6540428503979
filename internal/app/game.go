// internal/app/game.go
package app

import (
	"image/color"
	"log"
	"math"
	"sort"

	"golang.org/x/image/font"

	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/progress"
	"go-core-defense/internal/save"
	"go-core-defense/internal/skills"
	"go-core-defense/internal/system"
	"go-core-defense/internal/utils"
)

// Game is the session aggregate: it owns every piece of run and profile
// state, wires the systems together and drives the tick. All cross-system
// access flows through it, either as system.SessionContext (simulation
// state) or as the effects sink (visual feedback).
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	Starfield         *system.StarfieldSystem
	SpawnerSystem     *system.SpawnerSystem
	CombatSystem      *system.CombatSystem
	ProjectileSystem  *system.ProjectileSystem
	SatelliteSystem   *system.SatelliteSystem
	MovementSystem    *system.MovementSystem
	CollectibleSystem *system.CollectibleSystem
	Particles         *system.ParticleSystem
	Floaters          *system.FloaterSystem
	Shockwaves        *system.ShockwaveSystem
	RenderSystem      *system.RenderSystem

	SaveManager *save.Manager
	SkillTree   *skills.Tree

	runUpgrades  *progress.Set
	permUpgrades *progress.Set

	// Run-scoped state, wiped on reset and prestige.
	scrap  float64
	level  int
	kills  int
	coreHP float64

	// Profile state, persisted across runs.
	cores         float64
	essence       float64
	prisms        float64
	equippedSkin  string
	unlockedSkins map[string]bool

	// cachedFx is recomputed only when the tree changes; the hot path reads
	// the copy.
	cachedFx defs.EffectsBundle

	gameTime float64
	paused   bool
	gameOver bool
}

// NewGame builds a fully wired session and restores the persisted profile.
func NewGame(saveManager *save.Manager, face font.Face, seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		SaveManager:     saveManager,
		SkillTree:       skills.NewTree(),
		runUpgrades:     progress.NewSet(defs.RunUpgradeDefs),
		permUpgrades:    progress.NewSet(defs.PermanentUpgradeDefs),
		equippedSkin:    defs.DefaultSkinID,
		unlockedSkins:   map[string]bool{defs.DefaultSkinID: true},
		level:           1,
	}

	g.Starfield = system.NewStarfieldSystem(rng)
	g.Particles = system.NewParticleSystem(config.MaxParticles, rng)
	g.Floaters = system.NewFloaterSystem(config.MaxFloaters)
	g.Shockwaves = system.NewShockwaveSystem(config.MaxShockwaves)

	g.CombatSystem = system.NewCombatSystem(ecs, g, rng, g, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.CombatSystem, g, g)
	g.CombatSystem.AttachLauncher(g.ProjectileSystem)
	g.SatelliteSystem = system.NewSatelliteSystem(ecs, g, g.CombatSystem, g.ProjectileSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, dispatcher)
	g.SpawnerSystem = system.NewSpawnerSystem(ecs, g, rng, dispatcher)
	g.CollectibleSystem = system.NewCollectibleSystem(ecs, g, dispatcher, g)
	g.RenderSystem = system.NewRenderSystem(ecs, g.Starfield, g.Particles,
		g.Floaters, g.Shockwaves, g, face)

	dispatcher.Subscribe(event.EnemyReachedCore, g)
	dispatcher.Subscribe(event.EnemyKilled, g)
	dispatcher.Subscribe(event.CurrencyDropped, g)

	g.restoreProfile(saveManager.Load())
	g.scrap = g.startingScrap()
	g.coreHP = g.MaxCoreHP()

	return g
}

func (g *Game) restoreProfile(snap *save.Snapshot) {
	g.cores = snap.Cores
	g.essence = snap.Essence
	g.prisms = snap.Prisms
	g.permUpgrades.Restore(snap.PermanentUpgrades)
	g.SkillTree.Restore(snap.SkillTree)
	g.cachedFx = g.SkillTree.Effects()

	g.unlockedSkins = map[string]bool{defs.DefaultSkinID: true}
	for _, id := range snap.UnlockedSkins {
		if _, ok := defs.SkinDefs[id]; ok {
			g.unlockedSkins[id] = true
		}
	}
	if g.unlockedSkins[snap.EquippedSkin] {
		g.equippedSkin = snap.EquippedSkin
	}
}

// persist writes the profile. Save errors are logged, never fatal.
func (g *Game) persist() {
	unlocked := make([]string, 0, len(g.unlockedSkins))
	for id := range g.unlockedSkins {
		unlocked = append(unlocked, id)
	}
	sort.Strings(unlocked)

	snap := &save.Snapshot{
		Version:           save.CurrentVersion,
		Cores:             g.cores,
		Essence:           g.essence,
		Prisms:            g.prisms,
		EquippedSkin:      g.equippedSkin,
		UnlockedSkins:     unlocked,
		PermanentUpgrades: g.permUpgrades.Snapshot(),
		SkillTree:         g.SkillTree.Snapshot(),
	}
	if err := g.SaveManager.Save(snap); err != nil {
		log.Printf("save: %v", err)
	}
}

// Update runs one simulation tick. The system order is fixed; damage
// resolution happens before movement so a killing blow lands the tick it
// was rolled.
func (g *Game) Update(dt float64) {
	if g.paused {
		return
	}
	g.gameTime += dt
	g.Starfield.Update(dt)
	if g.gameOver {
		// The field keeps animating behind the game-over overlay.
		g.Particles.Update(dt)
		g.Floaters.Update(dt)
		g.Shockwaves.Update(dt)
		return
	}

	g.SpawnerSystem.Update(dt)
	closest := g.CombatSystem.ClosestEnemy()
	g.CombatSystem.Update(dt, closest)
	g.updateRegen(dt)
	g.MovementSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.SatelliteSystem.Update(dt)
	g.Particles.Update(dt)
	g.Floaters.Update(dt)
	g.Shockwaves.Update(dt)
	g.CollectibleSystem.Update(dt)
}

func (g *Game) updateRegen(dt float64) {
	regen := config.CoreRegenBase +
		g.runUpgrades.Value(defs.UpgradeRegen) +
		g.cachedFx.RegenPerSec
	if regen > 0 && g.coreHP < g.MaxCoreHP() {
		g.HealCore(regen * dt)
	}
}

// HandleClick resolves a tap: collectibles first, then the topmost enemy.
func (g *Game) HandleClick(x, y float64) {
	if g.paused || g.gameOver {
		return
	}
	if g.CollectibleSystem.ResolveClick(x, y) {
		return
	}
	g.CombatSystem.ResolveClick(x, y)
}

// OnEvent handles the session-level consequences of simulation events.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyReachedCore:
		breach, ok := e.Data.(event.BreachData)
		if !ok {
			return
		}
		g.coreHP -= breach.Damage * g.cachedFx.DamageTakenMult
		if g.coreHP < 0 {
			g.coreHP = 0
		}
		g.Particles.Emit("breach", config.CoreX, config.CoreY, config.CoreHurtColor)
		g.Shockwaves.Add(config.CoreX, config.CoreY, config.CoreRadius*2.2)
		if g.coreHP <= 0 && !g.gameOver {
			g.gameOver = true
			g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
			g.persist()
		}

	case event.EnemyKilled:
		kill, ok := e.Data.(event.KillData)
		if !ok {
			return
		}
		g.Particles.Emit("death", kill.X, kill.Y, defs.EnemyDefs[kill.Kind].Color)

	case event.CurrencyDropped:
		g.persist()
	}
}

// --- system.SessionContext ---

func (g *Game) Level() int { return g.level }

func (g *Game) CoreHP() (float64, float64) { return g.coreHP, g.MaxCoreHP() }

func (g *Game) Cores() float64 { return g.cores }

func (g *Game) SkillEffects() defs.EffectsBundle { return g.cachedFx }

func (g *Game) EquippedSkin() defs.SkinDefinition { return defs.SkinDefs[g.equippedSkin] }

func (g *Game) RunUpgrades() *progress.Set { return g.runUpgrades }

func (g *Game) PermanentUpgrades() *progress.Set { return g.permUpgrades }

func (g *Game) HealCore(amount float64) {
	g.coreHP = math.Min(g.coreHP+amount, g.MaxCoreHP())
}

func (g *Game) AddScrap(amount float64) { g.scrap += amount }

func (g *Game) AddCurrency(c defs.Currency, amount float64) {
	switch c {
	case defs.CurrencyScrap:
		g.scrap += amount
	case defs.CurrencyCores:
		g.cores += amount
	case defs.CurrencyEssence:
		g.essence += amount
	case defs.CurrencyPrisms:
		g.prisms += amount
	}
}

func (g *Game) AddKill() int {
	g.kills++
	return g.kills
}

func (g *Game) AdvanceLevel() int {
	g.level++
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelUp})
	return g.level
}

// --- interfaces.EffectsSink ---

func (g *Game) AddDamageNumber(x, y, value float64, crit bool) {
	g.Floaters.Add(x, y, value, crit)
}

func (g *Game) EmitParticles(preset string, x, y float64, tint color.RGBA) {
	g.Particles.Emit(preset, x, y, tint)
}

func (g *Game) AddShockwave(x, y, maxRadius float64) {
	g.Shockwaves.Add(x, y, maxRadius)
}

// --- derived state ---

// MaxCoreHP folds the base pool, both upgrade lines and the skill tree.
func (g *Game) MaxCoreHP() float64 {
	return config.BaseCoreHP +
		g.permUpgrades.Value(defs.PermCoreHP) +
		g.runUpgrades.Value(defs.UpgradeMaxHP) +
		g.cachedFx.MaxHPBonus
}

func (g *Game) startingScrap() float64 {
	return g.permUpgrades.Value(defs.PermStartScrap) + g.cachedFx.StartingScrap
}

func (g *Game) Scrap() float64    { return g.scrap }
func (g *Game) Essence() float64  { return g.essence }
func (g *Game) Prisms() float64   { return g.prisms }
func (g *Game) Kills() int        { return g.kills }
func (g *Game) GameTime() float64 { return g.gameTime }
func (g *Game) IsPaused() bool    { return g.paused }
func (g *Game) IsGameOver() bool  { return g.gameOver }

func (g *Game) SetPaused(paused bool) { g.paused = paused }

// --- purchases ---

// BuyRunUpgrade spends scrap on a run upgrade. Buying core plating also
// grants the HP difference immediately.
func (g *Game) BuyRunUpgrade(id string) bool {
	before := g.MaxCoreHP()
	_, ok := g.runUpgrades.Purchase(id, &g.scrap)
	if ok && id == defs.UpgradeMaxHP {
		g.coreHP += g.MaxCoreHP() - before
	}
	return ok
}

// BuyPermanentUpgrade spends cores and persists.
func (g *Game) BuyPermanentUpgrade(id string) bool {
	_, ok := g.permUpgrades.Purchase(id, &g.cores)
	if ok {
		g.persist()
	}
	return ok
}

// BuySkillNode spends essence on a skill tier and refreshes the cached
// effects bundle.
func (g *Game) BuySkillNode(id string) skills.Reason {
	_, reason := g.SkillTree.Purchase(id, &g.essence)
	if reason == skills.ReasonOK {
		g.cachedFx = g.SkillTree.Effects()
		g.persist()
	}
	return reason
}

// BuySkin unlocks a catalog skin with its listed currency.
func (g *Game) BuySkin(id string) bool {
	def, ok := defs.SkinDefs[id]
	if !ok || g.unlockedSkins[id] {
		return false
	}
	wallet := &g.essence
	if def.PriceIn == defs.CurrencyPrisms {
		wallet = &g.prisms
	}
	if *wallet < def.Price {
		return false
	}
	*wallet -= def.Price
	g.unlockedSkins[id] = true
	g.persist()
	return true
}

// EquipSkin switches the active skin. The satellite ring reconciles on the
// next tick.
func (g *Game) EquipSkin(id string) bool {
	if !g.unlockedSkins[id] {
		return false
	}
	g.equippedSkin = id
	g.persist()
	return true
}

// SkinUnlocked reports whether the profile owns a skin.
func (g *Game) SkinUnlocked(id string) bool { return g.unlockedSkins[id] }

// --- run lifecycle ---

// Reset wipes the run and starts over. Callers invoke it between ticks
// (from input handling), never mid-Update.
func (g *Game) Reset() {
	g.clearField()
	g.runUpgrades.Reset()
	g.SpawnerSystem.Reset()
	g.scrap = g.startingScrap()
	g.level = 1
	g.kills = 0
	g.coreHP = g.MaxCoreHP()
	g.gameOver = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunReset})
}

// PrestigeYield previews the cores the current run would convert into.
func (g *Game) PrestigeYield() float64 {
	return progress.PrestigeYield(g.level, g.cachedFx.CoreGainMult)
}

// Prestige converts the run into cores and resets. Returns false below the
// minimum level.
func (g *Game) Prestige() bool {
	yield := g.PrestigeYield()
	if yield <= 0 {
		return false
	}
	g.cores += yield
	g.EventDispatcher.Dispatch(event.Event{Type: event.Prestiged})
	g.persist()
	g.Reset()
	return true
}

// clearField removes every entity and drains the effect pools.
func (g *Game) clearField() {
	for id := range g.ECS.Positions {
		g.ECS.Remove(id)
	}
	g.SatelliteSystem.Clear()
	g.ECS.EnemyOrder = g.ECS.EnemyOrder[:0]
	g.Particles.Clear()
	g.Floaters.Clear()
	g.Shockwaves.Clear()
}

// ClearEnemies removes all enemies without touching projectiles or pools.
func (g *Game) ClearEnemies() {
	for id := range g.ECS.Enemies {
		g.ECS.Remove(id)
	}
	g.ECS.EnemyOrder = g.ECS.EnemyOrder[:0]
}

// SetWave jumps the run to a level. Debug hook, bound to a console key.
func (g *Game) SetWave(level int, clearEnemies bool) {
	if level < 1 {
		level = 1
	}
	g.level = level
	if clearEnemies {
		g.ClearEnemies()
	}
}
