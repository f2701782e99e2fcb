// internal/app/debug_report.go
package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Bassie1994/Towerz-sub000/internal/types"
)

// BuildDebugReport собирает текстовый срез состояния сессии —
// для вставки в баг-репорт.
func (g *Game) BuildDebugReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Towerz debug report ===\n")
	fmt.Fprintf(&b, "phase=%s wave=%d/%d clock=%.2f speed=x%.0f\n",
		g.phase, g.WaveSystem.WaveNumber(), g.WaveSystem.TotalWaves(), g.clock, g.Speed())
	fmt.Fprintf(&b, "lives=%d balance=%d earned=%d spent=%d\n",
		g.lives, g.Economy.Balance(), g.Economy.TotalEarned(), g.Economy.TotalSpent())

	towerIDs := make([]types.EntityID, 0, len(g.ECS.Towers))
	for id := range g.ECS.Towers {
		towerIDs = append(towerIDs, id)
	}
	sort.Slice(towerIDs, func(i, j int) bool { return towerIDs[i] < towerIDs[j] })
	fmt.Fprintf(&b, "towers (%d):\n", len(towerIDs))
	for _, id := range towerIDs {
		t := g.ECS.Towers[id]
		fmt.Fprintf(&b, "  #%d %s cell=(%d,%d) lvl=%d invested=%d prio=%s\n",
			id, t.DefID, t.Cell.Col, t.Cell.Row, t.Level, t.Invested, t.Priority)
	}

	enemyIDs := make([]types.EntityID, 0, len(g.ECS.Enemies))
	for id := range g.ECS.Enemies {
		enemyIDs = append(enemyIDs, id)
	}
	sort.Slice(enemyIDs, func(i, j int) bool { return enemyIDs[i] < enemyIDs[j] })
	fmt.Fprintf(&b, "enemies (%d):\n", len(enemyIDs))
	for _, id := range enemyIDs {
		e := g.ECS.Enemies[id]
		pos := g.ECS.Positions[id]
		hp := g.ECS.Healths[id]
		if pos == nil || hp == nil {
			continue
		}
		fmt.Fprintf(&b, "  #%d %s lvl=%d hp=%d/%d pos=(%.0f,%.0f)\n",
			id, e.DefID, e.Level, hp.Current, hp.Max, pos.X, pos.Y)
	}
	return b.String()
}

// CopyDebugReport кладёт отчёт в системный буфер обмена.
func (g *Game) CopyDebugReport() error {
	return clipboard.WriteAll(g.BuildDebugReport())
}
