package grid

import "testing"

func mustGrid(t *testing.T, width, height, spawnWidth, exitWidth, exitHeight int) *Grid {
	t.Helper()
	g, err := NewGrid(width, height, spawnWidth, exitWidth, exitHeight)
	if err != nil {
		t.Fatalf("NewGrid(%d,%d): %v", width, height, err)
	}
	return g
}

func TestNewGrid_DegenerateDimensions(t *testing.T) {
	if _, err := NewGrid(0, 0, 1, 1, 1); err == nil {
		t.Fatal("expected error for zero-sized grid")
	}
	if _, err := NewGrid(10, 5, 0, 1, 1); err == nil {
		t.Fatal("expected error for zero spawn width")
	}
	if _, err := NewGrid(10, 5, 6, 5, 1); err == nil {
		t.Fatal("expected error when zones do not fit")
	}
	if _, err := NewGrid(10, 5, 1, 1, 6); err == nil {
		t.Fatal("expected error when exit is taller than the field")
	}
}

func TestGrid_Zones(t *testing.T) {
	g := mustGrid(t, 10, 5, 2, 1, 3)

	if !g.IsSpawnZone(Position{Col: 0, Row: 0}) || !g.IsSpawnZone(Position{Col: 1, Row: 4}) {
		t.Fatal("leftmost columns should be spawn zone")
	}
	if g.IsSpawnZone(Position{Col: 2, Row: 0}) {
		t.Fatal("column 2 should not be spawn zone")
	}

	// Выход — последняя колонка, вертикально по центру.
	r := g.ExitRect()
	if r.MinCol != 9 || r.MaxCol != 9 {
		t.Fatalf("exit should occupy the last column, got cols [%d,%d]", r.MinCol, r.MaxCol)
	}
	if r.MinRow != 1 || r.MaxRow != 3 {
		t.Fatalf("exit should be vertically centered, got rows [%d,%d]", r.MinRow, r.MaxRow)
	}
	if !g.IsExitZone(Position{Col: 9, Row: 2}) {
		t.Fatal("exit rect cell should be exit zone")
	}
	if g.IsExitZone(Position{Col: 9, Row: 0}) {
		t.Fatal("corner outside exit rect should not be exit zone")
	}
}

func TestGrid_BlockUnblock(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 1)
	p := Position{Col: 4, Row: 2}

	gen := g.Generation()
	g.BlockCell(p)
	if g.IsWalkable(p) {
		t.Fatal("blocked cell should not be walkable")
	}
	if !g.HasTower(p) {
		t.Fatal("blocked cell should carry a tower")
	}
	if g.Generation() == gen {
		t.Fatal("blocking should bump the generation counter")
	}

	gen = g.Generation()
	g.UnblockCell(p)
	if !g.IsWalkable(p) {
		t.Fatal("unblocked cell should be walkable again")
	}
	if g.HasTower(p) {
		t.Fatal("unblocked cell should not carry a tower")
	}
	if g.Generation() == gen {
		t.Fatal("unblocking should bump the generation counter")
	}
}

func TestGrid_BlockOutsideField(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 1)
	gen := g.Generation()
	g.BlockCell(Position{Col: -1, Row: 0})
	g.BlockCell(Position{Col: 10, Row: 0})
	if g.Generation() != gen {
		t.Fatal("blocking outside the field should be a no-op")
	}
}

func TestGrid_SpawnAndExitCells(t *testing.T) {
	g := mustGrid(t, 10, 5, 2, 1, 3)
	if got := len(g.SpawnCells()); got != 10 {
		t.Fatalf("expected 10 spawn cells, got %d", got)
	}
	if got := len(g.ExitCells()); got != 3 {
		t.Fatalf("expected 3 exit cells, got %d", got)
	}
}

func TestGrid_Reset(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 1)
	p := Position{Col: 3, Row: 3}
	g.BlockCell(p)
	g.Reset()
	if !g.IsWalkable(p) || g.HasTower(p) {
		t.Fatal("reset should clear all occupancy")
	}
}
