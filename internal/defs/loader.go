// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a tower configuration file and replaces the
// built-in TowerDefs library. Optional: without the file the built-in
// tables are used as-is.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	lib := make(map[string]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		lib[def.ID] = def
	}
	TowerDefs = lib
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// built-in EnemyDefs library.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		lib[def.ID] = def
	}
	EnemyDefs = lib
	return nil
}

// ScaledHealth returns an enemy's hit points at the given level.
// Рост линейный от базы, чтобы бюджет волны считался по одному уровню.
func ScaledHealth(def EnemyDefinition, level int, perLevel float64) int {
	if level < 1 {
		level = 1
	}
	return int(float64(def.Health) * (1 + float64(level-1)*perLevel))
}

// ScaledBounty returns an enemy's kill reward at the given level.
func ScaledBounty(def EnemyDefinition, level int, perLevel float64) int {
	if level < 1 {
		level = 1
	}
	return int(float64(def.Bounty) * (1 + float64(level-1)*perLevel))
}
