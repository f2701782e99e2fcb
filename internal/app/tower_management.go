// internal/app/tower_management.go
package app

import (
	"math"

	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/system"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// ActionError — отклонённое действие игрока. Не мутация не случилась,
// не авария: UI сам решает, как показать причину.
type ActionError struct {
	Reason string
}

func (e *ActionError) Error() string { return e.Reason }

func reject(reason string) *ActionError { return &ActionError{Reason: reason} }

// ValidatePlacement проверяет клетку под башню. Порядок проверок
// фиксирован, побеждает первый отказ; состояние не меняется.
func (g *Game) ValidatePlacement(cell grid.Position) *ActionError {
	switch {
	case !g.Grid.IsValidPosition(cell):
		return reject("outside the field")
	case g.Grid.IsSpawnZone(cell):
		return reject("cannot build in the spawn zone")
	case g.Grid.IsExitZone(cell):
		return reject("cannot build in the exit zone")
	case g.Grid.HasTower(cell):
		return reject("cell is occupied")
	case !g.Grid.IsWalkable(cell):
		return reject("cell is not buildable")
	case !g.Grid.TestBlockCell(cell):
		return reject("would block all paths")
	}
	return nil
}

// PlaceTower строит башню. Оплата и мутация сетки атомарны: либо
// происходят обе, либо ни одной.
func (g *Game) PlaceTower(defID string, cell grid.Position) (types.EntityID, *ActionError) {
	def, ok := defs.TowerDefs[defID]
	if !ok {
		return 0, reject("unknown tower type")
	}
	if err := g.ValidatePlacement(cell); err != nil {
		return 0, err
	}
	if !g.Economy.Spend(def.Cost) {
		g.Dispatcher.Dispatch(event.Event{Type: event.PurchaseFailed, Data: defID})
		return 0, reject("insufficient funds")
	}

	g.Grid.BlockCell(cell)

	id := g.ECS.NewEntity()
	x, y := g.Layout.CellCenter(cell)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	tower := &component.Tower{
		DefID:    defID,
		Cell:     cell,
		Invested: def.Cost,
		Priority: defs.PriorityFirst,
		LastFire: -math.MaxFloat64,
	}
	tower.ResetBuffs()
	g.ECS.Towers[id] = tower
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(g.Layout.CellSize * def.Visuals.RadiusFactor),
		HasStroke: true,
	}

	g.Dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerEventData{ID: id}})
	return id, nil
}

// restoreTower ставит башню из сохранения: без оплаты, с уровнем и
// вложениями из кортежа. Занятость сетки выводится здесь же.
func (g *Game) restoreTower(st SavedTower) (types.EntityID, error) {
	cell := grid.Position{Col: st.Col, Row: st.Row}
	if _, ok := defs.TowerDefs[st.DefID]; !ok {
		return 0, reject("unknown tower type")
	}
	if err := g.ValidatePlacement(cell); err != nil {
		return 0, err
	}
	def := defs.TowerDefs[st.DefID]

	g.Grid.BlockCell(cell)
	id := g.ECS.NewEntity()
	x, y := g.Layout.CellCenter(cell)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	tower := &component.Tower{
		DefID:    st.DefID,
		Cell:     cell,
		Level:    st.Level,
		Invested: st.Invested,
		Priority: st.Priority,
		LastFire: -math.MaxFloat64,
	}
	if tower.Priority == "" {
		tower.Priority = defs.PriorityFirst
	}
	tower.ResetBuffs()
	g.ECS.Towers[id] = tower
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(g.Layout.CellSize * def.Visuals.RadiusFactor),
		HasStroke: true,
	}
	return id, nil
}

// SellTower продаёт башню: освобождает клетку и возвращает часть
// вложенного с амортизацией.
func (g *Game) SellTower(id types.EntityID) *ActionError {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return reject("no such tower")
	}
	g.Economy.Earn(SellValue(tower.Invested))
	g.Grid.UnblockCell(tower.Cell)
	g.ECS.RemoveEntity(id)
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: event.TowerEventData{ID: id}})
	return nil
}

// UpgradeTower повышает уровень башни. Оплата атомарна с изменением
// характеристик: при нехватке денег не происходит ничего.
func (g *Game) UpgradeTower(id types.EntityID) *ActionError {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return reject("no such tower")
	}
	def, ok := defs.TowerDefs[tower.DefID]
	if !ok {
		return reject("unknown tower type")
	}
	cost, ok := system.UpgradeCost(def, tower)
	if !ok {
		return reject("already at max level")
	}
	if !g.Economy.Spend(cost) {
		g.Dispatcher.Dispatch(event.Event{Type: event.PurchaseFailed, Data: tower.DefID})
		return reject("insufficient funds")
	}
	tower.Level++
	tower.Invested += cost
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerEventData{ID: id}})
	return nil
}

// SetTowerPriority меняет политику выбора цели у башни.
func (g *Game) SetTowerPriority(id types.EntityID, priority defs.TargetPriority) *ActionError {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return reject("no such tower")
	}
	tower.Priority = priority
	return nil
}

// TowerAt возвращает башню на клетке, если она там есть.
func (g *Game) TowerAt(cell grid.Position) (types.EntityID, bool) {
	for id, tower := range g.ECS.Towers {
		if tower.Cell == cell {
			return id, true
		}
	}
	return 0, false
}
