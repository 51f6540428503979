// internal/progress/upgrades.go
package progress

import (
	"math"
	"sort"

	"go-core-defense/internal/defs"
)

// UpgradeState pairs an immutable template with a purchase count. Run
// upgrades are cloned fresh each run; permanent upgrades live for the whole
// save.
type UpgradeState struct {
	Def   defs.UpgradeDefinition
	Count int
}

// Cost is the price of the next purchase: BaseCost * CostMult^Count.
func (u *UpgradeState) Cost() float64 {
	return u.Def.BaseCost * math.Pow(u.Def.CostMult, float64(u.Count))
}

// Maxed reports whether the upgrade hit its cap (0 = uncapped).
func (u *UpgradeState) Maxed() bool {
	return u.Def.Max > 0 && u.Count >= u.Def.Max
}

// Value is the current effect value under the template's valuation.
func (u *UpgradeState) Value() float64 {
	return u.Def.Value(u.Count)
}

// Set is a collection of upgrade states over one catalog.
type Set struct {
	states map[string]*UpgradeState
}

// NewSet clones the catalog into a zero-count state set.
func NewSet(catalog map[string]defs.UpgradeDefinition) *Set {
	s := &Set{states: make(map[string]*UpgradeState, len(catalog))}
	for id, def := range catalog {
		s.states[id] = &UpgradeState{Def: def}
	}
	return s
}

// Get returns the state for an upgrade, or nil when the ID is unknown.
func (s *Set) Get(id string) *UpgradeState {
	return s.states[id]
}

// Value resolves an upgrade's current effect. Unknown IDs degrade to zero
// effect instead of failing: the catalog is closed, a miss is a data bug,
// not a runtime condition worth crashing the frame for.
func (s *Set) Value(id string) float64 {
	if st, ok := s.states[id]; ok {
		return st.Value()
	}
	return 0
}

// MultValue is Value for multiplier-type upgrades: unknown IDs degrade to
// the identity multiplier.
func (s *Set) MultValue(id string) float64 {
	if st, ok := s.states[id]; ok {
		return st.Value()
	}
	return 1
}

// Count returns the purchase count, zero for unknown IDs.
func (s *Set) Count(id string) int {
	if st, ok := s.states[id]; ok {
		return st.Count
	}
	return 0
}

// Purchase buys one level if the wallet covers the cost and the cap allows.
// Returns the price paid and whether the purchase happened.
func (s *Set) Purchase(id string, wallet *float64) (float64, bool) {
	st, ok := s.states[id]
	if !ok || st.Maxed() {
		return 0, false
	}
	cost := st.Cost()
	if *wallet < cost {
		return 0, false
	}
	*wallet -= cost
	st.Count++
	return cost, true
}

// Reset zeroes every purchase count (run restart).
func (s *Set) Reset() {
	for _, st := range s.states {
		st.Count = 0
	}
}

// CountRecord is the persistence row for one permanent upgrade.
type CountRecord struct {
	ID    string `yaml:"id"`
	Count int    `yaml:"count"`
}

// Snapshot exports non-zero counts as ID-sorted records.
func (s *Set) Snapshot() []CountRecord {
	records := make([]CountRecord, 0, len(s.states))
	for id, st := range s.states {
		if st.Count > 0 {
			records = append(records, CountRecord{ID: id, Count: st.Count})
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

// Restore resets the set and applies saved counts, clamping to caps and
// skipping IDs that no longer exist.
func (s *Set) Restore(records []CountRecord) {
	s.Reset()
	for _, rec := range records {
		st, ok := s.states[rec.ID]
		if !ok || rec.Count < 0 {
			continue
		}
		count := rec.Count
		if st.Def.Max > 0 && count > st.Def.Max {
			count = st.Def.Max
		}
		st.Count = count
	}
}
