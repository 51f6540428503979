// internal/save/manager_test.go
package save

import (
	"testing"

	"gopkg.in/yaml.v3"

	"go-core-defense/internal/defs"
	"go-core-defense/internal/progress"
	"go-core-defense/internal/skills"
)

func TestDecodeRoundTrip(t *testing.T) {
	orig := &Snapshot{
		Version:      CurrentVersion,
		Cores:        42,
		Essence:      7,
		Prisms:       3,
		EquippedSkin: "lancer",
		UnlockedSkins: []string{
			defs.DefaultSkinID, "lancer",
		},
		PermanentUpgrades: []progress.CountRecord{
			{ID: defs.PermClickFlat, Count: 5},
		},
		SkillTree: []skills.NodeRecord{
			{ID: "combat_core", Tier: 2, Unlocked: true},
		},
	}

	data, err := yaml.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Cores != 42 || got.Essence != 7 || got.Prisms != 3 {
		t.Errorf("currencies = %v/%v/%v, want 42/7/3", got.Cores, got.Essence, got.Prisms)
	}
	if got.EquippedSkin != "lancer" || len(got.UnlockedSkins) != 2 {
		t.Errorf("skins = %v %v", got.EquippedSkin, got.UnlockedSkins)
	}
	if len(got.PermanentUpgrades) != 1 || got.PermanentUpgrades[0].Count != 5 {
		t.Errorf("permanent upgrades = %+v", got.PermanentUpgrades)
	}
	if len(got.SkillTree) != 1 || got.SkillTree[0].Tier != 2 {
		t.Errorf("skill tree = %+v", got.SkillTree)
	}
}

// A version-1 blob predates skins and the skill tree; decoding it must fill
// the missing fields with defaults and stamp the current version.
func TestDecodeLegacyV1(t *testing.T) {
	blob := []byte("version: 1\ncores: 12\nessence: 4\n")

	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Version != CurrentVersion {
		t.Errorf("version = %d, want %d", got.Version, CurrentVersion)
	}
	if got.Cores != 12 || got.Essence != 4 {
		t.Errorf("currencies lost in migration: %v/%v", got.Cores, got.Essence)
	}
	if got.EquippedSkin != defs.DefaultSkinID {
		t.Errorf("equipped skin = %q, want default", got.EquippedSkin)
	}
	if len(got.UnlockedSkins) != 1 || got.UnlockedSkins[0] != defs.DefaultSkinID {
		t.Errorf("unlocked skins = %v, want just the default", got.UnlockedSkins)
	}
	if len(got.SkillTree) != 0 {
		t.Errorf("skill tree = %+v, want empty", got.SkillTree)
	}
}

func TestDecodeCorruptBlob(t *testing.T) {
	if _, err := Decode([]byte("{{{not yaml")); err == nil {
		t.Errorf("corrupt blob decoded without error")
	}
}

func TestDecodeClampsNegativeBalances(t *testing.T) {
	blob := []byte("version: 2\ncores: -5\nessence: -1\nprisms: -9\n")
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Cores != 0 || got.Essence != 0 || got.Prisms != 0 {
		t.Errorf("negative balances survived: %v/%v/%v", got.Cores, got.Essence, got.Prisms)
	}
}

// Without a backing store the manager degrades to defaults on load and
// silently accepts saves.
func TestNilStoreDegradation(t *testing.T) {
	m := NewManager(nil)

	snap := m.Load()
	if snap.EquippedSkin != defs.DefaultSkinID || snap.Cores != 0 {
		t.Errorf("nil-store load = %+v, want fresh defaults", snap)
	}
	if err := m.Save(snap); err != nil {
		t.Errorf("nil-store save returned %v, want nil", err)
	}
}
