// internal/system/buff.go
package system

import (
	"math"

	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// BuffSystem применяет ауры башен поддержки к боевым башням в радиусе.
// Пересчёт идемпотентен: каждый кадр множители сбрасываются к 1.0 и
// применяются заново, поэтому источник, повторно входящий в радиус,
// не раскручивает стак.
type BuffSystem struct {
	ecs    *entity.ECS
	layout grid.Layout
}

func NewBuffSystem(ecs *entity.ECS, layout grid.Layout) *BuffSystem {
	return &BuffSystem{ecs: ecs, layout: layout}
}

func (s *BuffSystem) Update() {
	// Шаг 1: сброс.
	for _, tower := range s.ecs.Towers {
		tower.ResetBuffs()
	}

	// Шаг 2: каждая башня поддержки баффает боевые башни в радиусе.
	// Бафф — добавка к множителю, несколько источников складываются.
	for supportID, support := range s.ecs.Towers {
		def, ok := defs.TowerDefs[support.DefID]
		if !ok || def.Archetype != defs.ArchetypeSupport {
			continue
		}
		rangeCells := TowerRange(def, support)

		for targetID, target := range s.ecs.Towers {
			if targetID == supportID {
				continue
			}
			targetDef, ok := defs.TowerDefs[target.DefID]
			if !ok || targetDef.Archetype == defs.ArchetypeSupport {
				continue
			}
			dc := float64(support.Cell.Col - target.Cell.Col)
			dr := float64(support.Cell.Row - target.Cell.Row)
			if math.Sqrt(dc*dc+dr*dr) > rangeCells {
				continue
			}
			target.BuffDamage += def.BuffDamage
			target.BuffFireRate += def.BuffFireRate
			target.BuffRange += def.BuffRange
		}
	}
}
