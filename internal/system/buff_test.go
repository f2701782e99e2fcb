package system

import (
	"math"
	"testing"

	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

func addBuffTower(ecs *entity.ECS, defID string, col, row int) types.EntityID {
	id := ecs.NewEntity()
	tower := &component.Tower{DefID: defID, Cell: grid.Position{Col: col, Row: row}}
	tower.ResetBuffs()
	ecs.Towers[id] = tower
	return id
}

func TestBuffSystem_SupportBuffsAllStats(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewBuffSystem(ecs, grid.Layout{CellSize: 10})
	addBuffTower(ecs, "TOWER_BANNER", 5, 5)
	arrow := addBuffTower(ecs, "TOWER_ARROW", 6, 5)

	sys.Update()
	def := defs.TowerDefs["TOWER_BANNER"]
	tower := ecs.Towers[arrow]
	if math.Abs(tower.BuffDamage-(1+def.BuffDamage)) > 1e-9 {
		t.Fatalf("damage buff: got %f", tower.BuffDamage)
	}
	if math.Abs(tower.BuffFireRate-(1+def.BuffFireRate)) > 1e-9 {
		t.Fatalf("fire rate buff: got %f", tower.BuffFireRate)
	}
	if math.Abs(tower.BuffRange-(1+def.BuffRange)) > 1e-9 {
		t.Fatalf("range buff: got %f", tower.BuffRange)
	}

	// Бафф дальности должен доходить до эффективной характеристики.
	arrowDef := defs.TowerDefs["TOWER_ARROW"]
	want := arrowDef.Range * (1 + def.BuffRange)
	if got := TowerRange(arrowDef, tower); math.Abs(got-want) > 1e-9 {
		t.Fatalf("effective range: got %f, want %f", got, want)
	}
}

func TestBuffSystem_OutOfRangeStaysNeutral(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewBuffSystem(ecs, grid.Layout{CellSize: 10})
	addBuffTower(ecs, "TOWER_BANNER", 0, 0)
	far := addBuffTower(ecs, "TOWER_ARROW", 10, 10)

	sys.Update()
	tower := ecs.Towers[far]
	if tower.BuffDamage != 1.0 || tower.BuffFireRate != 1.0 || tower.BuffRange != 1.0 {
		t.Fatalf("tower outside the aura must stay neutral: %+v", tower)
	}
}

func TestBuffSystem_RepeatUpdateDoesNotStack(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewBuffSystem(ecs, grid.Layout{CellSize: 10})
	addBuffTower(ecs, "TOWER_BANNER", 5, 5)
	arrow := addBuffTower(ecs, "TOWER_ARROW", 6, 5)

	sys.Update()
	sys.Update()
	def := defs.TowerDefs["TOWER_BANNER"]
	if math.Abs(ecs.Towers[arrow].BuffDamage-(1+def.BuffDamage)) > 1e-9 {
		t.Fatalf("repeated recompute must not stack, got %f", ecs.Towers[arrow].BuffDamage)
	}
}

func TestBuffSystem_SupportDoesNotBuffSupport(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewBuffSystem(ecs, grid.Layout{CellSize: 10})
	addBuffTower(ecs, "TOWER_BANNER", 5, 5)
	other := addBuffTower(ecs, "TOWER_BANNER", 6, 5)

	sys.Update()
	if ecs.Towers[other].BuffDamage != 1.0 {
		t.Fatal("support towers must not amplify each other")
	}
}
