// internal/app/game_test.go
package app

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/event"
	"go-core-defense/internal/progress"
	"go-core-defense/internal/save"
	"go-core-defense/internal/skills"
)

// newTestGame builds a session over a nil store (in-memory profile only)
// and a bitmap face, so no display or asset is touched.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(save.NewManager(nil), basicfont.Face7x13, 1)
}

// listenerFunc adapts a func to event.Listener.
type listenerFunc func(event.Event)

func (f listenerFunc) OnEvent(e event.Event) { f(e) }

func breach(damage float64) event.Event {
	return event.Event{Type: event.EnemyReachedCore, Data: event.BreachData{Damage: damage}}
}

func TestBreachDrainsCore(t *testing.T) {
	g := newTestGame(t)
	if hp, max := g.CoreHP(); hp != config.BaseCoreHP || max != config.BaseCoreHP {
		t.Fatalf("fresh core = %v/%v, want %v/%v", hp, max, config.BaseCoreHP, config.BaseCoreHP)
	}

	g.EventDispatcher.Dispatch(breach(30))
	if hp, _ := g.CoreHP(); hp != config.BaseCoreHP-30 {
		t.Errorf("core after breach = %v, want %v", hp, config.BaseCoreHP-30)
	}
	if g.IsGameOver() {
		t.Errorf("game over with the core still standing")
	}
}

func TestGameOverFiresExactlyOnce(t *testing.T) {
	g := newTestGame(t)

	overs := 0
	g.EventDispatcher.Subscribe(event.GameOver, listenerFunc(func(event.Event) { overs++ }))

	// Overkill clamps to zero, and further breaches never re-trigger.
	g.EventDispatcher.Dispatch(breach(10_000))
	g.EventDispatcher.Dispatch(breach(10_000))

	if hp, _ := g.CoreHP(); hp != 0 {
		t.Errorf("core hp = %v, want 0 after overkill", hp)
	}
	if !g.IsGameOver() {
		t.Fatalf("game over flag not set")
	}
	if overs != 1 {
		t.Errorf("GameOver dispatched %d times, want 1", overs)
	}
}

func TestResetRestoresRunState(t *testing.T) {
	g := newTestGame(t)
	g.AddScrap(500)
	g.SetWave(12, false)
	g.EventDispatcher.Dispatch(breach(10_000))

	g.Reset()

	if g.IsGameOver() {
		t.Errorf("game over survived reset")
	}
	if g.Level() != 1 {
		t.Errorf("level after reset = %d, want 1", g.Level())
	}
	if g.Scrap() != 0 {
		t.Errorf("scrap after reset = %v, want the starting 0", g.Scrap())
	}
	if hp, max := g.CoreHP(); hp != max {
		t.Errorf("core after reset = %v/%v, want full", hp, max)
	}
	if len(g.ECS.Enemies) != 0 || len(g.ECS.Projectiles) != 0 {
		t.Errorf("field not cleared on reset")
	}
}

func TestPrestigeConvertsAndResets(t *testing.T) {
	g := newTestGame(t)

	g.SetWave(4, false)
	if g.Prestige() {
		t.Fatalf("prestige allowed below the minimum level")
	}

	g.SetWave(10, false)
	want := progress.PrestigeYield(10, 1)
	if got := g.PrestigeYield(); got != want {
		t.Fatalf("yield preview = %v, want %v", got, want)
	}
	if !g.Prestige() {
		t.Fatalf("prestige refused at level 10")
	}
	if g.Cores() != want {
		t.Errorf("cores after prestige = %v, want %v", g.Cores(), want)
	}
	if g.Level() != 1 {
		t.Errorf("level after prestige = %d, want 1", g.Level())
	}
}

func TestBuyCorePlatingGrantsHPImmediately(t *testing.T) {
	g := newTestGame(t)
	g.AddScrap(10_000)
	_, before := g.CoreHP()

	if !g.BuyRunUpgrade(defs.UpgradeMaxHP) {
		t.Fatalf("plating purchase refused with a full wallet")
	}
	hp, max := g.CoreHP()
	if max <= before {
		t.Fatalf("max hp did not grow: %v -> %v", before, max)
	}
	if hp != max {
		t.Errorf("hp = %v after purchase at full health, want the new max %v", hp, max)
	}
}

func TestSkinPurchaseAndEquip(t *testing.T) {
	g := newTestGame(t)
	g.AddCurrency(defs.CurrencyEssence, 100)

	if g.EquipSkin("gemini") {
		t.Fatalf("equipped a locked skin")
	}
	if !g.BuySkin("gemini") {
		t.Fatalf("purchase refused with sufficient essence")
	}
	if g.Essence() != 85 {
		t.Errorf("essence after purchase = %v, want 85", g.Essence())
	}
	if g.BuySkin("gemini") {
		t.Errorf("re-bought an owned skin")
	}
	if !g.EquipSkin("gemini") {
		t.Errorf("could not equip an owned skin")
	}
	if g.EquippedSkin().ID != "gemini" {
		t.Errorf("equipped = %q, want gemini", g.EquippedSkin().ID)
	}
}

func TestSkillPurchaseRefreshesEffects(t *testing.T) {
	g := newTestGame(t)
	g.AddCurrency(defs.CurrencyEssence, 100)

	before := g.SkillEffects().AllDamageMult
	if r := g.BuySkillNode("combat_core"); r != skills.ReasonOK {
		t.Fatalf("combat_core purchase refused: %v", r)
	}
	if after := g.SkillEffects().AllDamageMult; after <= before {
		t.Errorf("cached effects not refreshed: %v -> %v", before, after)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.SetPaused(true)
	for i := 0; i < 300; i++ {
		g.Update(0.016)
	}
	if len(g.ECS.Enemies) != 0 {
		t.Errorf("enemies spawned while paused")
	}
	if g.GameTime() != 0 {
		t.Errorf("game clock advanced to %v while paused", g.GameTime())
	}
	g.SetPaused(false)
	for i := 0; i < 300; i++ {
		g.Update(0.016)
	}
	if len(g.ECS.Enemies) == 0 {
		t.Errorf("nothing spawned after unpausing")
	}
}

// TestTickSmoke runs a few simulated seconds end to end: spawner, combat,
// movement, projectiles and pools all ticking together.
func TestHealCoreClampsToMax(t *testing.T) {
	g := newTestGame(t)
	g.HealCore(10000)
	if hp, maxHP := g.CoreHP(); hp != maxHP {
		t.Errorf("hp = %v, want clamped to max %v", hp, maxHP)
	}
}

func TestTickSmoke(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 1800; i++ { // about 30 seconds
		g.Update(0.016)
		g.HandleClick(config.CoreX+40, config.CoreY)
	}
	if g.GameTime() == 0 {
		t.Fatalf("clock never advanced")
	}
	if len(g.ECS.Enemies) == 0 && g.Kills() == 0 && !g.IsGameOver() {
		t.Errorf("30 simulated seconds produced no enemies, kills or defeat")
	}
}
