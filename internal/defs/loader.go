// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// enemyOverride is the on-disk tuning row. Only non-zero fields replace the
// built-in values, so a file can retune a single stat.
type enemyOverride struct {
	Kind      string  `json:"kind"`
	HPMult    float64 `json:"hp_mult"`
	SpeedMult float64 `json:"speed_mult"`
	Armor     float64 `json:"armor"`
	ScrapMult float64 `json:"scrap_mult"`
	Weight    int     `json:"weight"`
	MinWave   int     `json:"min_wave"`
}

var kindsByName = map[string]EnemyKind{
	"grunt":         EnemyGrunt,
	"runner":        EnemyRunner,
	"swarmling":     EnemySwarmling,
	"tank":          EnemyTank,
	"zigzag":        EnemyZigzag,
	"armored":       EnemyArmored,
	"regenerator":   EnemyRegenerator,
	"elite":         EnemyElite,
	"boss":          EnemyBoss,
	"shielded_boss": EnemyShieldedBoss,
}

// LoadEnemyOverrides reads a JSON tuning file and folds it into EnemyDefs
// and the spawn table. The built-in tables stay authoritative when the file
// is absent; a missing file is not an error for callers that treat tuning
// as optional.
func LoadEnemyOverrides(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy tuning file: %w", err)
	}

	var rows []enemyOverride
	if err := json.Unmarshal(file, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal enemy tuning: %w", err)
	}

	for _, row := range rows {
		kind, ok := kindsByName[row.Kind]
		if !ok {
			return fmt.Errorf("unknown enemy kind %q in %s", row.Kind, path)
		}
		def := EnemyDefs[kind]
		if row.HPMult > 0 {
			def.HPMult = row.HPMult
		}
		if row.SpeedMult > 0 {
			def.SpeedMult = row.SpeedMult
		}
		if row.Armor > 0 {
			def.Armor = row.Armor
		}
		if row.ScrapMult > 0 {
			def.ScrapMult = row.ScrapMult
		}
		if row.Weight > 0 {
			def.Weight = row.Weight
		}
		if row.MinWave > 0 {
			def.MinWave = row.MinWave
		}
		EnemyDefs[kind] = def

		for i := range SpawnTable {
			if SpawnTable[i].Kind == kind && row.Weight > 0 {
				SpawnTable[i].Weight = row.Weight
			}
		}
	}
	return nil
}
