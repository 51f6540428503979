// internal/skills/tree_test.go
package skills

import (
	"math"
	"testing"

	"go-core-defense/internal/defs"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// testCatalog builds a small chain a -> b -> c plus the root, so unlock
// propagation is observable without the full catalog.
func testCatalog() map[string]defs.SkillNodeDefinition {
	noop := func(tier int, b *defs.EffectsBundle) {}
	desc := func(tier int) string { return "" }
	return map[string]defs.SkillNodeDefinition{
		defs.SkillRootID: {
			ID: defs.SkillRootID, MaxTier: 1, Costs: []float64{0},
			Apply: noop, Describe: desc,
		},
		"a": {
			ID: "a", MaxTier: 3, Costs: []float64{1, 2, 4},
			Apply: noop, Describe: desc,
		},
		"b": {
			ID: "b", MaxTier: 2, Costs: []float64{2, 3}, Requires: []string{"a"},
			Apply: noop, Describe: desc,
		},
		"c": {
			ID: "c", MaxTier: 1, Costs: []float64{5}, Requires: []string{"b"},
			Apply: noop, Describe: desc,
		},
	}
}

func TestNewTreeInitialState(t *testing.T) {
	tree := NewTree()

	root := tree.State(defs.SkillRootID)
	if root == nil || root.Tier != 1 || !root.Unlocked {
		t.Fatalf("root state = %+v, want tier 1 unlocked", root)
	}

	// Branch entries have no prerequisites: unlocked but unpurchased.
	for _, id := range []string{"combat_core", "defense_core", "economy_core", "arsenal_core"} {
		st := tree.State(id)
		if st == nil || !st.Unlocked || st.Tier != 0 {
			t.Errorf("%s state = %+v, want unlocked at tier 0", id, st)
		}
	}

	// Deeper nodes start locked.
	if st := tree.State("sharp_rounds"); st.Unlocked {
		t.Errorf("sharp_rounds starts unlocked, want locked")
	}
}

func TestCanPurchaseRejections(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(tree *Tree)
		id        string
		available float64
		want      Reason
	}{
		{"unknown node", func(*Tree) {}, "nonsense", 100, ReasonNodeNotFound},
		{"locked prerequisite", func(*Tree) {}, "b", 100, ReasonPrerequisitesNotMet},
		{
			"insufficient essence", func(*Tree) {}, "a", 0.5,
			ReasonInsufficientCurrency,
		},
		{
			"max tier", func(tree *Tree) {
				wallet := 100.0
				tree.Purchase("a", &wallet)
				tree.Purchase("a", &wallet)
				tree.Purchase("a", &wallet)
			}, "a", 100, ReasonMaxTierReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTreeFrom(testCatalog())
			tt.setup(tree)
			check := tree.CanPurchase(tt.id, tt.available)
			if check.Allowed || check.Reason != tt.want {
				t.Errorf("CanPurchase(%s) = %+v, want reason %v", tt.id, check, tt.want)
			}
		})
	}
}

func TestShortfallIsExact(t *testing.T) {
	tree := NewTreeFrom(testCatalog())
	check := tree.CanPurchase("a", 0.25)
	if check.Reason != ReasonInsufficientCurrency {
		t.Fatalf("reason = %v, want insufficient", check.Reason)
	}
	if !almostEqual(check.Shortfall, 0.75) {
		t.Errorf("shortfall = %v, want 0.75", check.Shortfall)
	}
	if check.NextTier != 1 {
		t.Errorf("next tier = %d, want 1", check.NextTier)
	}
}

func TestPurchaseDeductsAndUnlocks(t *testing.T) {
	tree := NewTreeFrom(testCatalog())
	wallet := 10.0

	cost, reason := tree.Purchase("a", &wallet)
	if reason != ReasonOK || cost != 1 {
		t.Fatalf("Purchase(a) = (%v, %v), want (1, ok)", cost, reason)
	}
	if wallet != 9 {
		t.Errorf("wallet = %v, want 9", wallet)
	}
	if st := tree.State("b"); !st.Unlocked {
		t.Errorf("b still locked after buying its prerequisite")
	}
	if st := tree.State("c"); st.Unlocked {
		t.Errorf("c unlocked early; its prerequisite has tier 0")
	}

	// Tier costs walk the Costs slice.
	cost, reason = tree.Purchase("a", &wallet)
	if reason != ReasonOK || cost != 2 {
		t.Fatalf("second Purchase(a) = (%v, %v), want (2, ok)", cost, reason)
	}
	if tree.State("a").Tier != 2 {
		t.Errorf("a tier = %d, want 2", tree.State("a").Tier)
	}
}

func TestPurchaseFailureLeavesWalletUntouched(t *testing.T) {
	tree := NewTreeFrom(testCatalog())
	wallet := 0.5
	if _, reason := tree.Purchase("a", &wallet); reason != ReasonInsufficientCurrency {
		t.Fatalf("reason = %v, want insufficient", reason)
	}
	if wallet != 0.5 {
		t.Errorf("wallet = %v, want 0.5", wallet)
	}
	if tree.State("a").Tier != 0 {
		t.Errorf("tier changed on a failed purchase")
	}
}

// Buying the combat branch entry at tier 1 yields the 5% damage bonus.
func TestCombatCoreFirstTier(t *testing.T) {
	tree := NewTree()
	wallet := 10.0

	cost, reason := tree.Purchase("combat_core", &wallet)
	if reason != ReasonOK {
		t.Fatalf("Purchase(combat_core) = %v, want ok", reason)
	}
	if cost != 1 || wallet != 9 {
		t.Fatalf("cost = %v wallet = %v, want 1 and 9", cost, wallet)
	}
	fx := tree.Effects()
	if !almostEqual(fx.AllDamageMult, 1.05) {
		t.Errorf("AllDamageMult = %v, want 1.05", fx.AllDamageMult)
	}
}

func TestEffectsCombinationRules(t *testing.T) {
	tree := NewTree()
	wallet := 1000.0

	buy := func(id string, times int) {
		t.Helper()
		for i := 0; i < times; i++ {
			if _, reason := tree.Purchase(id, &wallet); reason != ReasonOK {
				t.Fatalf("Purchase(%s) #%d = %v", id, i+1, reason)
			}
		}
	}

	buy("combat_core", 2)   // all damage *1.10
	buy("sharp_rounds", 3)  // click +12
	buy("defense_core", 1)  // unlock chain
	buy("thick_shell", 2)   // taken *(1-0.06)
	buy("nanoweave", 1)     // unlock vital_surge path not needed
	buy("bulwark", 1)       // taken *(1-0.05)

	fx := tree.Effects()
	if !almostEqual(fx.AllDamageMult, 1.10) {
		t.Errorf("AllDamageMult = %v, want 1.10", fx.AllDamageMult)
	}
	if !almostEqual(fx.ClickDamageFlat, 12) {
		t.Errorf("ClickDamageFlat = %v, want 12", fx.ClickDamageFlat)
	}
	// Damage reduction stacks multiplicatively on the (1-r) factors.
	if !almostEqual(fx.DamageTakenMult, 0.94*0.95) {
		t.Errorf("DamageTakenMult = %v, want %v", fx.DamageTakenMult, 0.94*0.95)
	}
}

// Effects builds a fresh bundle each call; mutating one result must not
// leak into the next.
func TestEffectsPurity(t *testing.T) {
	tree := NewTree()
	wallet := 10.0
	tree.Purchase("combat_core", &wallet)

	first := tree.Effects()
	first.AllDamageMult = 99
	second := tree.Effects()
	if !almostEqual(second.AllDamageMult, 1.05) {
		t.Errorf("AllDamageMult = %v after mutating a previous bundle, want 1.05", second.AllDamageMult)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	tree := NewTreeFrom(testCatalog())
	wallet := 100.0
	tree.Purchase("a", &wallet)
	tree.Purchase("a", &wallet)
	tree.Purchase("b", &wallet)

	records := tree.Snapshot()
	restored := NewTreeFrom(testCatalog())
	restored.Restore(records)

	for _, id := range []string{defs.SkillRootID, "a", "b", "c"} {
		want, got := tree.State(id), restored.State(id)
		if want.Tier != got.Tier || want.Unlocked != got.Unlocked {
			t.Errorf("%s: restored %+v, want %+v", id, got, want)
		}
	}
}

// Legacy saves may carry stale unlock flags; Restore re-derives them from
// tiers and prerequisites, cascading down the chain in one call.
func TestRestoreSelfHealsUnlockFlags(t *testing.T) {
	tree := NewTreeFrom(testCatalog())
	tree.Restore([]NodeRecord{
		{ID: "a", Tier: 1, Unlocked: false},
		{ID: "b", Tier: 1, Unlocked: false},
	})

	if st := tree.State("a"); !st.Unlocked || st.Tier != 1 {
		t.Errorf("a = %+v, want tier 1 unlocked", st)
	}
	if st := tree.State("b"); !st.Unlocked || st.Tier != 1 {
		t.Errorf("b = %+v, want tier 1 unlocked", st)
	}
	// c has tier 0 but both links above it are live now.
	if st := tree.State("c"); !st.Unlocked {
		t.Errorf("c stayed locked; the unlock scan should have cascaded to it")
	}
}

func TestRestoreClampsTierAndIgnoresUnknownNodes(t *testing.T) {
	tree := NewTreeFrom(testCatalog())
	tree.Restore([]NodeRecord{
		{ID: "a", Tier: 99},
		{ID: "deleted_node", Tier: 3},
	})
	if tier := tree.State("a").Tier; tier != 3 {
		t.Errorf("a tier = %d, want clamped to 3", tier)
	}
}

func TestFullCatalogCostsMatchMaxTier(t *testing.T) {
	for id, def := range defs.SkillNodeDefs {
		if len(def.Costs) != def.MaxTier {
			t.Errorf("%s: %d costs for max tier %d", id, len(def.Costs), def.MaxTier)
		}
		for _, req := range def.Requires {
			if _, ok := defs.SkillNodeDefs[req]; !ok {
				t.Errorf("%s requires unknown node %s", id, req)
			}
		}
	}
}
