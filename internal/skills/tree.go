// internal/skills/tree.go
package skills

import (
	"sort"

	"go-core-defense/internal/defs"
)

// Reason explains a rejected purchase. Rejections are values, never errors:
// the node catalog is closed at build time, so nothing here is fatal.
type Reason int

const (
	ReasonOK Reason = iota
	ReasonNodeNotFound
	ReasonMaxTierReached
	ReasonPrerequisitesNotMet
	ReasonInsufficientCurrency
)

func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonNodeNotFound:
		return "node not found"
	case ReasonMaxTierReached:
		return "max tier reached"
	case ReasonPrerequisitesNotMet:
		return "prerequisites not met"
	case ReasonInsufficientCurrency:
		return "insufficient essence"
	default:
		return "unknown"
	}
}

// NodeState is the mutable pairing of a node definition.
type NodeState struct {
	Tier     int
	Unlocked bool
}

// NodeRecord is the persistence row for one node.
type NodeRecord struct {
	ID       string `yaml:"id"`
	Tier     int    `yaml:"tier"`
	Unlocked bool   `yaml:"unlocked"`
}

// PurchaseCheck is the result of CanPurchase.
type PurchaseCheck struct {
	Allowed   bool
	Reason    Reason
	Cost      float64
	NextTier  int
	Shortfall float64 // exact missing amount on ReasonInsufficientCurrency
}

// Tree owns per-node tier/unlock state over the immutable node catalog.
type Tree struct {
	nodes  map[string]defs.SkillNodeDefinition
	states map[string]*NodeState
}

// NewTree builds a fresh tree: every node locked at tier 0, except the root
// (unlocked at tier 1) and zero-prerequisite nodes (unlocked at tier 0).
func NewTree() *Tree {
	return NewTreeFrom(defs.SkillNodeDefs)
}

// NewTreeFrom builds a tree over an explicit catalog; tests use small ones.
func NewTreeFrom(catalog map[string]defs.SkillNodeDefinition) *Tree {
	t := &Tree{
		nodes:  catalog,
		states: make(map[string]*NodeState, len(catalog)),
	}
	t.resetStates()
	return t
}

func (t *Tree) resetStates() {
	for id, def := range t.nodes {
		st := &NodeState{}
		if id == defs.SkillRootID {
			st.Tier = 1
			st.Unlocked = true
		} else if len(def.Requires) == 0 {
			st.Unlocked = true
		}
		t.states[id] = st
	}
}

// State returns the live state for a node, or nil when the ID is unknown.
func (t *Tree) State(id string) *NodeState {
	return t.states[id]
}

// CheckPrerequisites reports whether every prerequisite of the node is
// unlocked with tier >= 1. Zero prerequisites is trivially true.
func (t *Tree) CheckPrerequisites(id string) bool {
	def, ok := t.nodes[id]
	if !ok {
		return false
	}
	for _, req := range def.Requires {
		st, ok := t.states[req]
		if !ok || !st.Unlocked || st.Tier < 1 {
			return false
		}
	}
	return true
}

// CanPurchase validates buying the next tier of a node against the available
// essence without mutating anything.
func (t *Tree) CanPurchase(id string, available float64) PurchaseCheck {
	def, ok := t.nodes[id]
	if !ok {
		return PurchaseCheck{Reason: ReasonNodeNotFound}
	}
	st := t.states[id]
	if st.Tier >= def.MaxTier {
		return PurchaseCheck{Reason: ReasonMaxTierReached}
	}
	if !st.Unlocked || !t.CheckPrerequisites(id) {
		return PurchaseCheck{Reason: ReasonPrerequisitesNotMet}
	}
	cost := def.Costs[st.Tier] // Costs[n] buys tier n+1
	if available < cost {
		return PurchaseCheck{
			Reason:    ReasonInsufficientCurrency,
			Cost:      cost,
			NextTier:  st.Tier + 1,
			Shortfall: cost - available,
		}
	}
	return PurchaseCheck{Allowed: true, Reason: ReasonOK, Cost: cost, NextTier: st.Tier + 1}
}

// Purchase re-validates, deducts the cost from the wallet, bumps the tier
// and runs the unlock scan over the whole catalog. The scan repeats until it
// makes no further change, so every node made eligible by this purchase —
// including chains — unlocks within the same call.
func (t *Tree) Purchase(id string, wallet *float64) (float64, Reason) {
	check := t.CanPurchase(id, *wallet)
	if !check.Allowed {
		return 0, check.Reason
	}
	*wallet -= check.Cost
	st := t.states[id]
	st.Tier++
	st.Unlocked = true
	t.unlockScan()
	return check.Cost, ReasonOK
}

// unlockScan flips Unlocked on every node whose prerequisites are satisfied.
// Iterates to a fixed point; tiers are never touched.
func (t *Tree) unlockScan() {
	for changed := true; changed; {
		changed = false
		for id, st := range t.states {
			if !st.Unlocked && t.CheckPrerequisites(id) {
				st.Unlocked = true
				changed = true
			}
		}
	}
}

// Effects aggregates every purchased node into a single bundle. Recomputed
// from scratch on each call; with ~34 nodes this is cheaper than keeping an
// incremental cache correct.
func (t *Tree) Effects() defs.EffectsBundle {
	b := defs.NewEffectsBundle()
	for id, st := range t.states {
		if st.Tier <= 0 {
			continue
		}
		def := t.nodes[id]
		def.Apply(st.Tier, &b)
	}
	return b
}

// Snapshot exports every node's state as ID-sorted records.
func (t *Tree) Snapshot() []NodeRecord {
	records := make([]NodeRecord, 0, len(t.states))
	for id, st := range t.states {
		records = append(records, NodeRecord{ID: id, Tier: st.Tier, Unlocked: st.Unlocked})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

// Restore resets the tree to defaults, applies the saved tiers and re-runs
// the unlock scan. Unlock flags in the records are deliberately not trusted:
// stale or corrupted flags from old saves self-heal because eligibility is
// re-derived from tiers and prerequisites.
func (t *Tree) Restore(records []NodeRecord) {
	t.resetStates()
	for _, rec := range records {
		st, ok := t.states[rec.ID]
		if !ok {
			continue // node removed from the catalog; ignore silently
		}
		def := t.nodes[rec.ID]
		tier := rec.Tier
		if tier > def.MaxTier {
			tier = def.MaxTier
		}
		if tier > st.Tier {
			st.Tier = tier
		}
		if st.Tier > 0 {
			st.Unlocked = true
		}
	}
	t.unlockScan()
}
