// internal/progress/progress_test.go
package progress

import (
	"math"
	"testing"

	"go-core-defense/internal/defs"
)

func testCatalog() map[string]defs.UpgradeDefinition {
	return map[string]defs.UpgradeDefinition{
		"flat": {
			ID: "flat", BaseCost: 10, CostMult: 1.5, Max: 3,
			Value: func(n int) float64 { return float64(2 * n) },
		},
		"mult": {
			ID: "mult", BaseCost: 5, CostMult: 2,
			Value: func(n int) float64 { return math.Pow(1.1, float64(n)) },
		},
	}
}

func TestCostGeometricSeries(t *testing.T) {
	set := NewSet(testCatalog())
	wallet := 1e6

	wantCosts := []float64{10, 15, 22.5}
	for i, want := range wantCosts {
		cost, ok := set.Purchase("flat", &wallet)
		if !ok {
			t.Fatalf("purchase #%d refused", i+1)
		}
		if math.Abs(cost-want) > 1e-9 {
			t.Errorf("purchase #%d cost = %v, want %v", i+1, cost, want)
		}
	}
}

func TestPurchaseCapAndWallet(t *testing.T) {
	set := NewSet(testCatalog())
	wallet := 1e6
	for i := 0; i < 3; i++ {
		set.Purchase("flat", &wallet)
	}

	before := wallet
	if _, ok := set.Purchase("flat", &wallet); ok {
		t.Errorf("purchase past the cap succeeded")
	}
	if wallet != before {
		t.Errorf("wallet changed on a refused purchase")
	}

	wallet = 3 // below the base cost of 5
	if _, ok := set.Purchase("mult", &wallet); ok {
		t.Errorf("purchase with a short wallet succeeded")
	}
	if wallet != 3 {
		t.Errorf("wallet = %v after refused purchase, want 3", wallet)
	}
}

func TestValueDegradation(t *testing.T) {
	set := NewSet(testCatalog())
	if got := set.Value("missing"); got != 0 {
		t.Errorf("Value(missing) = %v, want 0", got)
	}
	if got := set.MultValue("missing"); got != 1 {
		t.Errorf("MultValue(missing) = %v, want 1", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	set := NewSet(testCatalog())
	wallet := 1e6
	set.Purchase("flat", &wallet)
	set.Purchase("flat", &wallet)

	records := set.Snapshot()
	if len(records) != 1 || records[0].ID != "flat" || records[0].Count != 2 {
		t.Fatalf("snapshot = %+v, want single flat:2 record", records)
	}

	restored := NewSet(testCatalog())
	restored.Restore([]CountRecord{
		{ID: "flat", Count: 99},           // clamped to cap
		{ID: "mult", Count: -1},           // ignored
		{ID: "removed_upgrade", Count: 4}, // ignored
	})
	if got := restored.Count("flat"); got != 3 {
		t.Errorf("restored flat count = %d, want clamped 3", got)
	}
	if got := restored.Count("mult"); got != 0 {
		t.Errorf("restored mult count = %d, want 0", got)
	}
}

func TestPrestigeYield(t *testing.T) {
	tests := []struct {
		name  string
		level int
		mult  float64
		want  float64
	}{
		{"below minimum", 4, 1, 0},
		{"at minimum", 5, 1, 3},    // floor(25 * 0.15)
		{"level ten", 10, 1, 15},   // floor(100 * 0.15)
		{"gain mult", 10, 2, 30},
		{"deep run", 40, 1, 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrestigeYield(tt.level, tt.mult); got != tt.want {
				t.Errorf("PrestigeYield(%d, %v) = %v, want %v", tt.level, tt.mult, got, tt.want)
			}
		})
	}
}

func TestPrestigeDamageMult(t *testing.T) {
	if got := PrestigeDamageMult(0); got != 1 {
		t.Errorf("PrestigeDamageMult(0) = %v, want 1", got)
	}
	if got := PrestigeDamageMult(50); got != 2 {
		t.Errorf("PrestigeDamageMult(50) = %v, want 2", got)
	}
}
