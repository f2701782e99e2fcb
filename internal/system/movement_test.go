package system

import (
	"testing"

	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

type movementFixture struct {
	sys        *MovementSystem
	ecs        *entity.ECS
	grid       *grid.Grid
	layout     grid.Layout
	dispatcher *event.Dispatcher
	rec        *eventRecorder
}

func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()
	g, err := grid.NewGrid(20, 5, 1, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.EnemyLeaked, rec)
	layout := grid.Layout{CellSize: 10}
	flow := grid.NewFlowField(g)
	return &movementFixture{
		sys:        NewMovementSystem(ecs, g, flow, layout, dispatcher),
		ecs:        ecs,
		grid:       g,
		layout:     layout,
		dispatcher: dispatcher,
		rec:        rec,
	}
}

func (f *movementFixture) addWalker(col, row int, speed float64) types.EntityID {
	id := f.ecs.NewEntity()
	x, y := f.layout.CellCenter(grid.Position{Col: col, Row: row})
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Velocities[id] = &component.Velocity{BaseSpeed: speed, SlowFactor: 1.0}
	f.ecs.Steerings[id] = &component.Steering{}
	f.ecs.Enemies[id] = &component.Enemy{Category: defs.CategoryInfantry}
	return id
}

func TestMovement_WalkerAdvancesTowardExit(t *testing.T) {
	f := newMovementFixture(t)
	id := f.addWalker(5, 2, 80)

	startX := f.ecs.Positions[id].X
	now := 0.0
	for i := 0; i < 60; i++ {
		now += 0.016
		f.sys.Update(0.016, now)
	}
	if f.ecs.Positions[id].X <= startX {
		t.Fatalf("walker should move east toward the exit: %f -> %f", startX, f.ecs.Positions[id].X)
	}
}

func TestMovement_SlowedWalkerCoversLessGround(t *testing.T) {
	f := newMovementFixture(t)
	fast := f.addWalker(3, 1, 80)
	slow := f.addWalker(3, 3, 80)
	ApplySlow(f.ecs.Velocities[slow], 0.5, 100, 0)

	fastStart := f.ecs.Positions[fast].X
	slowStart := f.ecs.Positions[slow].X
	now := 0.0
	for i := 0; i < 60; i++ {
		now += 0.016
		f.sys.Update(0.016, now)
	}
	fastDist := f.ecs.Positions[fast].X - fastStart
	slowDist := f.ecs.Positions[slow].X - slowStart
	if slowDist >= fastDist {
		t.Fatalf("slowed walker should cover less ground: %f vs %f", slowDist, fastDist)
	}
}

func TestMovement_SlowExpiresByClock(t *testing.T) {
	f := newMovementFixture(t)
	id := f.addWalker(3, 2, 80)
	ApplySlow(f.ecs.Velocities[id], 0.5, 1.0, 0)

	// Один тик после истечения срока — множитель снят.
	f.sys.Update(0.016, 2.0)
	if f.ecs.Velocities[id].SlowFactor != 1.0 {
		t.Fatalf("expired slow should reset the factor, got %f", f.ecs.Velocities[id].SlowFactor)
	}
}

func TestMovement_DeadEnemiesDoNotMove(t *testing.T) {
	f := newMovementFixture(t)
	id := f.addWalker(5, 2, 80)
	f.ecs.Enemies[id].Dead = true

	x := f.ecs.Positions[id].X
	f.sys.Update(0.016, 0.016)
	if f.ecs.Positions[id].X != x {
		t.Fatal("dead enemy must not be advanced")
	}
}

func TestMovement_WalkerNeverEntersBlockedCell(t *testing.T) {
	f := newMovementFixture(t)
	// Стенка с дыркой: агент должен пройти в обход, не сквозь.
	for row := 0; row < 4; row++ {
		f.grid.BlockCell(grid.Position{Col: 10, Row: row})
	}
	id := f.addWalker(8, 1, 80)

	now := 0.0
	for i := 0; i < 600; i++ {
		now += 0.016
		f.sys.Update(0.016, now)
		pos := f.ecs.Positions[id]
		cell := f.layout.WorldToCell(pos.X, pos.Y)
		if !f.grid.IsWalkable(cell) {
			t.Fatalf("walker entered blocked cell %v at tick %d", cell, i)
		}
		if f.ecs.Enemies[id].ReachedEnd {
			return
		}
	}
	t.Fatal("walker never reached the exit around the wall")
}

func TestMovement_ExitDispatchesLeak(t *testing.T) {
	f := newMovementFixture(t)
	id := f.addWalker(18, 2, 100)

	now := 0.0
	for i := 0; i < 120 && !f.ecs.Enemies[id].ReachedEnd; i++ {
		now += 0.016
		f.sys.Update(0.016, now)
	}
	if !f.ecs.Enemies[id].ReachedEnd {
		t.Fatal("walker next to the exit should reach it")
	}
	if f.rec.count(event.EnemyLeaked) != 1 {
		t.Fatalf("exactly one leak event expected, got %d", f.rec.count(event.EnemyLeaked))
	}
	// Дошедший агент больше не двигается и событие не повторяет.
	f.sys.Update(0.016, now+0.016)
	if f.rec.count(event.EnemyLeaked) != 1 {
		t.Fatal("leak must not be dispatched twice")
	}
}

func TestMovement_FlyingCrossesBlockedCells(t *testing.T) {
	f := newMovementFixture(t)
	// Сплошная стена: наземному пути нет, летающий игнорирует.
	for row := 0; row < 5; row++ {
		f.grid.BlockCell(grid.Position{Col: 10, Row: row})
	}
	id := f.ecs.NewEntity()
	x, y := f.layout.CellCenter(grid.Position{Col: 5, Row: 2})
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Velocities[id] = &component.Velocity{BaseSpeed: 120, SlowFactor: 1.0}
	f.ecs.Steerings[id] = &component.Steering{}
	f.ecs.Enemies[id] = &component.Enemy{Category: defs.CategoryFlying}

	now := 0.0
	for i := 0; i < 600 && !f.ecs.Enemies[id].ReachedEnd; i++ {
		now += 0.016
		f.sys.Update(0.016, now)
	}
	if !f.ecs.Enemies[id].ReachedEnd {
		t.Fatal("flying enemy should reach the exit over the wall")
	}
}

func TestMovement_SeparationPushesApart(t *testing.T) {
	f := newMovementFixture(t)
	a := f.addWalker(5, 2, 80)
	b := f.addWalker(5, 2, 80)
	// Небольшое смещение, чтобы направление расталкивания было определено.
	f.ecs.Positions[b].Y += 2

	f.sys.Update(0.016, 0.016)
	dy := f.ecs.Positions[b].Y - f.ecs.Positions[a].Y
	if dy < 2 {
		t.Fatalf("overlapping walkers should separate, vertical gap %f", dy)
	}
	_ = config.SeparationRadius
}
