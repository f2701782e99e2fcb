// internal/app/savegame.go
package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Bassie1994/Towerz-sub000/internal/defs"
)

// SavedTower — кортеж, достаточный для полного восстановления башни.
type SavedTower struct {
	DefID    string              `json:"def_id"`
	Col      int                 `json:"col"`
	Row      int                 `json:"row"`
	Level    int                 `json:"level"`
	Invested int                 `json:"invested"`
	Priority defs.TargetPriority `json:"priority"`
}

// SaveGame — сохраняемое состояние сессии. Занятость сетки и flow field
// не сохраняются: при загрузке они выводятся заново из списка башен.
type SaveGame struct {
	Wave    int          `json:"wave"`
	Balance int          `json:"balance"`
	Lives   int          `json:"lives"`
	Clock   float64      `json:"clock"`
	Towers  []SavedTower `json:"towers"`
}

// Snapshot собирает сохранение из текущего состояния. Вызывается между
// тиками; середины кадра снапшот не видит.
func (g *Game) Snapshot() SaveGame {
	save := SaveGame{
		Wave:    g.WaveSystem.WaveNumber(),
		Balance: g.Economy.Balance(),
		Lives:   g.lives,
		Clock:   g.clock,
	}
	for _, tower := range g.ECS.Towers {
		save.Towers = append(save.Towers, SavedTower{
			DefID:    tower.DefID,
			Col:      tower.Cell.Col,
			Row:      tower.Cell.Row,
			Level:    tower.Level,
			Invested: tower.Invested,
			Priority: tower.Priority,
		})
	}
	return save
}

// Save сериализует сохранение в JSON.
func (g *Game) Save() ([]byte, error) {
	return json.MarshalIndent(g.Snapshot(), "", "  ")
}

// SaveToFile пишет сохранение на диск.
func (g *Game) SaveToFile(path string) error {
	data, err := g.Save()
	if err != nil {
		return fmt.Errorf("failed to serialize save: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

// Load применяет сохранение целиком: состояние сначала сбрасывается,
// затем перестраивается. Инкрементальных правок живого состояния нет.
func (g *Game) Load(data []byte) error {
	var save SaveGame
	if err := json.Unmarshal(data, &save); err != nil {
		return fmt.Errorf("failed to parse save: %w", err)
	}

	if err := g.init(); err != nil {
		return err
	}

	// Башни восстанавливаются через обычное размещение, но бесплатно:
	// деньги уже учтены в сохранённом балансе.
	for _, st := range save.Towers {
		restored, err := g.restoreTower(st)
		if err != nil {
			return fmt.Errorf("failed to restore tower %s at (%d,%d): %w", st.DefID, st.Col, st.Row, err)
		}
		_ = restored
	}

	g.WaveSystem.SetWaveNumber(save.Wave)
	g.Economy.SetBalance(save.Balance)
	g.lives = save.Lives
	g.clock = save.Clock
	if g.lives <= 0 {
		g.phase = PhaseGameOver
	} else {
		g.phase = PhasePreparing
	}
	return nil
}

// LoadFromFile читает сохранение с диска и применяет его.
func (g *Game) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read save file: %w", err)
	}
	return g.Load(data)
}
