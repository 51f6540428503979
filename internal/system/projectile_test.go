// internal/system/projectile_test.go
package system

import (
	"math"
	"testing"

	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
)

// stepUntil advances the projectile system until the predicate holds or the
// time budget runs out.
func stepUntil(launcher *ProjectileSystem, budget float64, done func() bool) bool {
	const dt = 0.005
	for elapsed := 0.0; elapsed < budget; elapsed += dt {
		launcher.Update(dt)
		if done() {
			return true
		}
	}
	return done()
}

func TestHomingShotHitsTarget(t *testing.T) {
	ctx := newStubContext()
	ecs, combat, launcher, _ := newCombatRig(ctx)
	target := addEnemy(ecs, 800, 450, 100, 0, false)

	launcher.Fire(defs.SkinDefs[defs.DefaultSkinID], config.CoreX, config.CoreY, target, DamageInfo{Damage: 10})
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ecs.Projectiles))
	}

	hit := stepUntil(launcher, 2.0, func() bool { return ecs.Healths[target].Value < 100 })
	if !hit {
		t.Fatalf("homing shot never connected")
	}
	if len(ecs.Projectiles) != 0 {
		t.Errorf("projectile survived its own impact")
	}
	_ = combat
}

func TestBallisticFallbackOnDeadTarget(t *testing.T) {
	ctx := newStubContext()
	ecs, _, launcher, _ := newCombatRig(ctx)
	target := addEnemy(ecs, 800, 450, 100, 0, false)
	bystander := addEnemy(ecs, 1000, 450, 100, 0, false) // further along the same line

	launcher.Fire(defs.SkinDefs[defs.DefaultSkinID], config.CoreX, config.CoreY, target, DamageInfo{Damage: 10})

	// The target dies mid-flight.
	ecs.Enemies[target].IsDying = true

	var projID types.EntityID
	for id := range ecs.Projectiles {
		projID = id
	}
	launcher.Update(0.005)
	if proj := ecs.Projectiles[projID]; proj == nil || !proj.Ballistic {
		t.Fatalf("projectile did not fall back to ballistic travel")
	}

	hit := stepUntil(launcher, 3.0, func() bool { return ecs.Healths[bystander].Value < 100 })
	if !hit {
		t.Errorf("ballistic shot missed the enemy on its line")
	}
}

func TestOffscreenCull(t *testing.T) {
	ctx := newStubContext()
	ecs, _, launcher, _ := newCombatRig(ctx)
	target := addEnemy(ecs, 1100, 450, 100, 0, false)

	launcher.Fire(defs.SkinDefs[defs.DefaultSkinID], config.CoreX, config.CoreY, target, DamageInfo{Damage: 10})
	// Remove the target entirely: the shot goes ballistic with nothing to hit
	// and must die at the screen margin, not fly forever.
	ecs.Remove(target)
	ecs.EnemyOrder = ecs.EnemyOrder[:0]

	gone := stepUntil(launcher, 5.0, func() bool { return len(ecs.Projectiles) == 0 })
	if !gone {
		t.Errorf("projectile never culled offscreen")
	}
}

func TestPiercingDecaySequence(t *testing.T) {
	ctx := newStubContext()
	ecs, _, launcher, _ := newCombatRig(ctx)

	// Three enemies on the firing line, far enough apart for separate hits.
	first := addEnemy(ecs, 700, 450, 1000, 0, false)
	second := addEnemy(ecs, 780, 450, 1000, 0, false)
	third := addEnemy(ecs, 860, 450, 1000, 0, false)

	skin := defs.SkinDefs["lancer"] // pierce 3, decay 0.7
	launcher.Fire(skin, config.CoreX, config.CoreY, first, DamageInfo{Damage: 100})

	done := stepUntil(launcher, 3.0, func() bool { return len(ecs.Projectiles) == 0 })
	if !done {
		t.Fatalf("piercing shot never exhausted its budget")
	}

	wantLoss := []float64{100, 70, 49} // 100 * 0.7^n per hit
	for i, id := range []types.EntityID{first, second, third} {
		loss := 1000 - ecs.Healths[id].Value
		if math.Abs(loss-wantLoss[i]) > 1e-6 {
			t.Errorf("enemy %d loss = %v, want %v", i, loss, wantLoss[i])
		}
	}
}

func TestPiercingNeverRehitsSameEnemy(t *testing.T) {
	ctx := newStubContext()
	ecs, _, launcher, _ := newCombatRig(ctx)
	only := addEnemy(ecs, 700, 450, 1000, 0, false)

	skin := defs.SkinDefs["lancer"]
	launcher.Fire(skin, config.CoreX, config.CoreY, only, DamageInfo{Damage: 100})
	stepUntil(launcher, 3.0, func() bool { return len(ecs.Projectiles) == 0 })

	if loss := 1000 - ecs.Healths[only].Value; loss != 100 {
		t.Errorf("single enemy lost %v to one piercing pass, want 100", loss)
	}
}

func TestBouncingRetargetsAndExhaustsBudget(t *testing.T) {
	ctx := newStubContext()
	ecs, _, launcher, _ := newCombatRig(ctx)
	first := addEnemy(ecs, 700, 450, 1000, 0, false)
	second := addEnemy(ecs, 760, 450, 1000, 0, false)
	third := addEnemy(ecs, 820, 450, 1000, 0, false)

	skin := defs.SkinDefs["ricochet"]
	skin.BounceCount = 1 // one bounce: two hits total
	launcher.Fire(skin, config.CoreX, config.CoreY, first, DamageInfo{Damage: 50})

	done := stepUntil(launcher, 3.0, func() bool { return len(ecs.Projectiles) == 0 })
	if !done {
		t.Fatalf("bouncing shot never finished")
	}
	if loss := 1000 - ecs.Healths[first].Value; loss != 50 {
		t.Errorf("first enemy loss = %v, want 50", loss)
	}
	if loss := 1000 - ecs.Healths[second].Value; loss != 50 {
		t.Errorf("bounce target loss = %v, want 50", loss)
	}
	if loss := 1000 - ecs.Healths[third].Value; loss != 0 {
		t.Errorf("third enemy hit despite an exhausted bounce budget, loss %v", loss)
	}
}

func TestSplittingSpawnsChildrenAtDistance(t *testing.T) {
	ctx := newStubContext()
	ecs, _, launcher, _ := newCombatRig(ctx)
	target := addEnemy(ecs, 1100, 450, 1000, 0, false)

	skin := defs.SkinDefs["cluster"] // 3 children at 160 px
	launcher.Fire(skin, config.CoreX, config.CoreY, target, DamageInfo{Damage: 30})

	split := stepUntil(launcher, 2.0, func() bool {
		n := 0
		for _, p := range ecs.Projectiles {
			if p.IsChild {
				n++
			}
		}
		return n == skin.SplitCount
	})
	if !split {
		t.Fatalf("parent never split into %d children", skin.SplitCount)
	}
	// The parent itself is gone after splitting.
	for _, p := range ecs.Projectiles {
		if !p.IsChild {
			t.Errorf("parent projectile survived its own split")
		}
	}
}

func TestChargedSplashHalfDamageExcludesPrimary(t *testing.T) {
	ctx := newStubContext()
	ecs, _, launcher, _ := newCombatRig(ctx)
	primary := addEnemy(ecs, 700, 450, 1000, 0, false)
	near := addEnemy(ecs, 750, 450, 1000, 0, false)  // inside the 130 px blast
	far := addEnemy(ecs, 1100, 450, 1000, 0, false)  // outside

	skin := defs.SkinDefs["nova"]
	launcher.Fire(skin, config.CoreX, config.CoreY, primary, DamageInfo{Damage: 100})

	done := stepUntil(launcher, 3.0, func() bool { return len(ecs.Projectiles) == 0 })
	if !done {
		t.Fatalf("charged shot never resolved")
	}
	if loss := 1000 - ecs.Healths[primary].Value; loss != 100 {
		t.Errorf("primary loss = %v, want the full 100 (no double count)", loss)
	}
	if loss := 1000 - ecs.Healths[near].Value; loss != 50 {
		t.Errorf("splash loss = %v, want 50", loss)
	}
	if loss := 1000 - ecs.Healths[far].Value; loss != 0 {
		t.Errorf("out-of-radius enemy lost %v", loss)
	}
}

func TestTwinFiresTwoShots(t *testing.T) {
	ctx := newStubContext()
	ecs, _, launcher, _ := newCombatRig(ctx)
	target := addEnemy(ecs, 800, 450, 1000, 0, false)

	launcher.Fire(defs.SkinDefs["gemini"], config.CoreX, config.CoreY, target, DamageInfo{Damage: 10})
	if len(ecs.Projectiles) != 2 {
		t.Errorf("twin mode spawned %d shots, want 2", len(ecs.Projectiles))
	}
}
