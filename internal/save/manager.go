// internal/save/manager.go
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"go-core-defense/internal/defs"
	"go-core-defense/internal/progress"
	"go-core-defense/internal/skills"
)

// CurrentVersion is the schema version written by this build. Version 1
// predates skins and the skill tree; loading it fills those with defaults.
const CurrentVersion = 2

// Storage keys inside the gdata store.
const (
	saveObject   = "savegame"
	saveProperty = "meta"
)

// Snapshot is the flat meta-progression blob. Run-scoped state is never
// saved: a reload always starts a fresh run against persistent meta.
type Snapshot struct {
	Version int     `yaml:"version"`
	Cores   float64 `yaml:"cores"`
	Essence float64 `yaml:"essence"`
	Prisms  float64 `yaml:"prisms"`

	EquippedSkin  string   `yaml:"equippedSkin"`
	UnlockedSkins []string `yaml:"unlockedSkins"`

	PermanentUpgrades []progress.CountRecord `yaml:"permanentUpgrades"`
	SkillTree         []skills.NodeRecord    `yaml:"skillTree"`
}

// DefaultSnapshot is the fresh-profile state.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Version:       CurrentVersion,
		EquippedSkin:  defs.DefaultSkinID,
		UnlockedSkins: []string{defs.DefaultSkinID},
	}
}

// Manager is the persistence bridge. A nil gdata manager degrades to
// memory-only operation: every Load yields defaults, Save is a no-op. The
// simulation never notices either way.
type Manager struct {
	store *gdata.Manager
}

// NewManager wraps a gdata store; pass nil for the degraded mode.
func NewManager(store *gdata.Manager) *Manager {
	return &Manager{store: store}
}

// Load reads and decodes the snapshot. Missing or corrupt blobs are warned
// about and replaced with defaults — persistence failures are never fatal.
func (m *Manager) Load() *Snapshot {
	if m.store == nil {
		return DefaultSnapshot()
	}
	if !m.store.ObjectPropExists(saveObject, saveProperty) {
		return DefaultSnapshot()
	}
	data, err := m.store.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		log.Printf("[save] failed to load snapshot: %v (using defaults)", err)
		return DefaultSnapshot()
	}
	snap, err := Decode(data)
	if err != nil {
		log.Printf("[save] %v (using defaults)", err)
		return DefaultSnapshot()
	}
	return snap
}

// Save encodes and writes the snapshot.
func (m *Manager) Save(snap *Snapshot) error {
	if m.store == nil {
		return nil
	}
	snap.Version = CurrentVersion
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := m.store.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Decode parses a snapshot blob and migrates legacy schemas. A v1 blob has
// no skin or skill-tree fields; those come back as defaults. Unlock state in
// the skill-tree records is re-derived downstream (Tree.Restore), so stale
// flags in old saves cannot leak through.
func Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("corrupt snapshot: %w", err)
	}
	migrate(&snap)
	return &snap, nil
}

func migrate(snap *Snapshot) {
	if snap.EquippedSkin == "" {
		snap.EquippedSkin = defs.DefaultSkinID
	}
	if len(snap.UnlockedSkins) == 0 {
		snap.UnlockedSkins = []string{defs.DefaultSkinID}
	}
	// Negative balances can only come from tampered saves; clamp instead of
	// carrying them into the session.
	if snap.Cores < 0 {
		snap.Cores = 0
	}
	if snap.Essence < 0 {
		snap.Essence = 0
	}
	if snap.Prisms < 0 {
		snap.Prisms = 0
	}
	snap.Version = CurrentVersion
}
