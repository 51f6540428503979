// internal/system/combat_test.go
package system

import (
	"math"
	"testing"

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

// stubContext is a minimal SessionContext for system tests.
type stubContext struct {
	level int
	hp    float64
	maxHP float64
	cores float64
	fx    defs.EffectsBundle
	skin  defs.SkinDefinition
	run   *progress.Set
	perm  *progress.Set

	healed     float64
	scrap      float64
	currencies map[defs.Currency]float64
	kills      int
}

func newStubContext() *stubContext {
	return &stubContext{
		level:      1,
		hp:         100,
		maxHP:      100,
		fx:         defs.NewEffectsBundle(),
		skin:       defs.SkinDefs[defs.DefaultSkinID],
		run:        progress.NewSet(defs.RunUpgradeDefs),
		perm:       progress.NewSet(defs.PermanentUpgradeDefs),
		currencies: make(map[defs.Currency]float64),
	}
}

func (c *stubContext) Level() int                         { return c.level }
func (c *stubContext) CoreHP() (float64, float64)         { return c.hp, c.maxHP }
func (c *stubContext) Cores() float64                     { return c.cores }
func (c *stubContext) SkillEffects() defs.EffectsBundle   { return c.fx }
func (c *stubContext) EquippedSkin() defs.SkinDefinition  { return c.skin }
func (c *stubContext) RunUpgrades() *progress.Set         { return c.run }
func (c *stubContext) PermanentUpgrades() *progress.Set   { return c.perm }
func (c *stubContext) HealCore(amount float64)            { c.healed += amount }
func (c *stubContext) AddScrap(amount float64)            { c.scrap += amount }
func (c *stubContext) AddKill() int                       { c.kills++; return c.kills }
func (c *stubContext) AddCurrency(cur defs.Currency, amount float64) {
	c.currencies[cur] += amount
}
func (c *stubContext) AdvanceLevel() int { c.level++; return c.level }

// newCombatRig wires a combat system with its projectile launcher over a
// fresh store. Seeded rng keeps crit rolls reproducible.
func newCombatRig(ctx *stubContext) (*entity.ECS, *CombatSystem, *ProjectileSystem, *event.Dispatcher) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(1)
	combat := NewCombatSystem(ecs, ctx, rng, interfaces.NopEffects{}, dispatcher)
	launcher := NewProjectileSystem(ecs, combat, ctx, interfaces.NopEffects{})
	combat.AttachLauncher(launcher)
	return ecs, combat, launcher, dispatcher
}

func addEnemy(ecs *entity.ECS, x, y, hp, armor float64, shielded bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: 0}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{
		Kind: defs.EnemyGrunt, Class: defs.ClassNormal,
		Armor: armor, ScrapMult: 1, Shielded: shielded,
	}
	ecs.EnemyOrder = append(ecs.EnemyOrder, id)
	ecs.Renderables[id] = &component.Renderable{Radius: 12}
	return id
}

func TestDamageOrdering(t *testing.T) {
	ctx := newStubContext()
	ctx.run.Restore([]progress.CountRecord{{ID: defs.UpgradeClickDamage, Count: 2}})  // 5+2*2 = 9
	ctx.perm.Restore([]progress.CountRecord{{ID: defs.PermClickFlat, Count: 3}})      // 3*3 = 9
	ctx.cores = 50                                                                     // mult 2.0
	ctx.fx.AllDamageMult = 1.5
	ctx.fx.ClickDamageFlat = 7

	_, combat, _, _ := newCombatRig(ctx)

	// Crit chance is zero, so the roll is deterministic:
	// (9+9) * 2.0 * 1.5 + 7 = 61.
	info := combat.Damage(defs.SourceClick)
	if info.IsCrit {
		t.Fatalf("crit rolled with zero crit chance")
	}
	if math.Abs(info.Damage-61) > 1e-9 {
		t.Errorf("click damage = %v, want 61", info.Damage)
	}
}

func TestDamageAutoUsesMultiplierLine(t *testing.T) {
	ctx := newStubContext()
	ctx.run.Restore([]progress.CountRecord{{ID: defs.UpgradeAutoDamage, Count: 2}}) // 3+1.5*2 = 6
	ctx.perm.Restore([]progress.CountRecord{{ID: defs.PermAutoMult, Count: 5}})     // 1.10^5
	_, combat, _, _ := newCombatRig(ctx)

	want := 6 * math.Pow(1.10, 5)
	info := combat.Damage(defs.SourceAuto)
	if math.Abs(info.Damage-want) > 1e-9 {
		t.Errorf("auto damage = %v, want %v", info.Damage, want)
	}
}

func TestGuaranteedCrit(t *testing.T) {
	ctx := newStubContext()
	ctx.fx.CritChanceBonus = 1.0 // always crits
	ctx.fx.CritDamageMult = 1.5
	_, combat, _, _ := newCombatRig(ctx)

	// base click 5, crit x2.5, then the skill crit multiplier.
	want := 5 * config.CritMultiplier * 1.5
	info := combat.Damage(defs.SourceClick)
	if !info.IsCrit {
		t.Fatalf("no crit with 100%% crit chance")
	}
	if math.Abs(info.Damage-want) > 1e-9 {
		t.Errorf("crit damage = %v, want %v", info.Damage, want)
	}
}

func TestHitEnemyArmorFloor(t *testing.T) {
	ctx := newStubContext()
	ecs, combat, _, _ := newCombatRig(ctx)
	id := addEnemy(ecs, 300, 300, 50, 5, false)

	// Armor 5 against a 3-damage hit still chips 1 HP.
	combat.HitEnemy(id, DamageInfo{Damage: 3})
	if got := ecs.Healths[id].Value; got != 49 {
		t.Errorf("hp = %v, want 49", got)
	}

	// A heavier hit loses exactly the armor value.
	combat.HitEnemy(id, DamageInfo{Damage: 20})
	if got := ecs.Healths[id].Value; got != 34 {
		t.Errorf("hp = %v, want 34", got)
	}
}

func TestHitEnemyShieldedHalving(t *testing.T) {
	ctx := newStubContext()
	ecs, combat, _, _ := newCombatRig(ctx)
	id := addEnemy(ecs, 300, 300, 100, 0, true)

	combat.HitEnemy(id, DamageInfo{Damage: 40})
	if got := ecs.Healths[id].Value; got != 80 {
		t.Errorf("hp = %v, want 80 after halved hit", got)
	}
}

func TestHitEnemyLifestealHealsProportionally(t *testing.T) {
	ctx := newStubContext()
	ctx.fx.LifestealPct = 0.5
	ecs, combat, _, _ := newCombatRig(ctx)
	id := addEnemy(ecs, 300, 300, 1000, 0, false)

	combat.HitEnemy(id, DamageInfo{Damage: 200})
	if ctx.healed != 100 {
		t.Errorf("healed = %v, want 100 (half of damage dealt)", ctx.healed)
	}
}

func TestHitEnemyWeakHitNotInflatedWithoutArmor(t *testing.T) {
	ctx := newStubContext()
	ecs, combat, _, _ := newCombatRig(ctx)
	id := addEnemy(ecs, 300, 300, 1000, 0, false)

	combat.HitEnemy(id, DamageInfo{Damage: 0.4})
	if hp := ecs.Healths[id].Value; hp != 999.6 {
		t.Errorf("hp = %v, want 999.6; the floor only applies against armor", hp)
	}
}

func TestKilledExactlyOnce(t *testing.T) {
	ctx := newStubContext()
	ecs, combat, _, dispatcher := newCombatRig(ctx)
	id := addEnemy(ecs, 300, 300, 10, 0, false)

	kills := 0
	dispatcher.Subscribe(event.EnemyKilled, listenerFunc(func(e event.Event) { kills++ }))

	if !combat.HitEnemy(id, DamageInfo{Damage: 50}) {
		t.Fatalf("killing blow not reported")
	}
	if !ecs.Enemies[id].IsDying {
		t.Errorf("enemy not transitioned to dying")
	}
	// Dying enemies are out of the fight: no second report, no more damage.
	if combat.HitEnemy(id, DamageInfo{Damage: 50}) {
		t.Errorf("second killing blow reported")
	}
	if kills != 1 {
		t.Errorf("EnemyKilled dispatched %d times, want 1", kills)
	}
}

func TestResolveClickPicksTopmost(t *testing.T) {
	ctx := newStubContext()
	ecs, combat, _, _ := newCombatRig(ctx)
	bottom := addEnemy(ecs, 300, 300, 100, 0, false)
	top := addEnemy(ecs, 304, 300, 100, 0, false) // overlaps, spawned later

	if !combat.ResolveClick(302, 300) {
		t.Fatalf("click on overlapping enemies missed")
	}
	if ecs.Healths[top].Value >= 100 {
		t.Errorf("topmost enemy untouched")
	}
	if ecs.Healths[bottom].Value < 100 {
		t.Errorf("click fell through to the bottom enemy")
	}
}

func TestAutoFireSpawnsProjectileAndCooldown(t *testing.T) {
	ctx := newStubContext()
	ecs, combat, _, _ := newCombatRig(ctx)
	addEnemy(ecs, 900, 450, 100, 0, false)

	closest := combat.ClosestEnemy()
	if closest == 0 {
		t.Fatalf("closest-enemy scan found nothing")
	}

	combat.Update(0.016, closest)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("projectiles after first tick = %d, want 1", len(ecs.Projectiles))
	}
	// The cooldown gate holds on the next tick.
	combat.Update(0.016, closest)
	if len(ecs.Projectiles) != 1 {
		t.Errorf("turret fired through its cooldown")
	}
}

func TestOrbitSkinSuppressesTurret(t *testing.T) {
	ctx := newStubContext()
	ctx.skin = defs.SkinDefs["sentinel"]
	ecs, combat, _, _ := newCombatRig(ctx)
	addEnemy(ecs, 900, 450, 100, 0, false)

	combat.Update(0.016, combat.ClosestEnemy())
	if len(ecs.Projectiles) != 0 {
		t.Errorf("central turret fired while the orbit skin was equipped")
	}
}

// listenerFunc adapts a func to event.Listener.
type listenerFunc func(event.Event)

func (f listenerFunc) OnEvent(e event.Event) { f(e) }
