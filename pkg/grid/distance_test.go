package grid

import "testing"

func TestDistanceField_ExitIsZero(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 3)
	df := g.ComputeDistanceField()
	for _, p := range g.ExitCells() {
		if d := df.At(p); d != 0 {
			t.Fatalf("exit cell %v should have distance 0, got %d", p, d)
		}
	}
}

func TestDistanceField_ManhattanOnEmptyField(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 1)
	df := g.ComputeDistanceField()
	// Выход — (9,2). На пустом поле BFS даёт манхэттенское расстояние.
	if d := df.At(Position{Col: 0, Row: 2}); d != 9 {
		t.Fatalf("expected distance 9, got %d", d)
	}
	if d := df.At(Position{Col: 9, Row: 0}); d != 2 {
		t.Fatalf("expected distance 2, got %d", d)
	}
}

func TestDistanceField_NeighborMonotonicity(t *testing.T) {
	g := mustGrid(t, 12, 6, 1, 1, 2)
	// Стенка с одной дыркой — путь должен огибать.
	for row := 0; row < 5; row++ {
		g.BlockCell(Position{Col: 6, Row: row})
	}
	df := g.ComputeDistanceField()

	// У каждой достижимой небыходной клетки есть сосед строго ближе к выходу.
	for col := 0; col < g.Width(); col++ {
		for row := 0; row < g.Height(); row++ {
			p := Position{Col: col, Row: row}
			d := df.At(p)
			if d <= 0 {
				continue
			}
			found := false
			for _, off := range neighborOffsets {
				n := Position{Col: col + off[0], Row: row + off[1]}
				if nd := df.At(n); nd != Unreachable && nd < d {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("cell %v (distance %d) has no downhill neighbor", p, d)
			}
		}
	}
}

func TestDistanceField_SealedPocketUnreachable(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 1)
	// Запечатанный карман вокруг (0,0): справа и снизу стены.
	g.BlockCell(Position{Col: 1, Row: 0})
	g.BlockCell(Position{Col: 0, Row: 1})
	df := g.ComputeDistanceField()
	if df.Reachable(Position{Col: 0, Row: 0}) {
		t.Fatal("sealed cell should be unreachable")
	}
	if !g.CanReachExit(Position{Col: 5, Row: 2}) {
		t.Fatal("open cell should still reach the exit")
	}
}

func TestTestBlockCell_RejectsSealingMove(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 1)
	// Стенка на всю высоту, кроме одной дырки в ряду 4.
	for row := 0; row < 4; row++ {
		g.BlockCell(Position{Col: 5, Row: row})
	}
	gap := Position{Col: 5, Row: 4}

	if g.TestBlockCell(gap) {
		t.Fatal("closing the last gap must be rejected")
	}
	// Проверка «что если» не оставляет следов.
	if !g.IsWalkable(gap) {
		t.Fatal("probe must restore the cell")
	}
	if g.TestBlockCell(Position{Col: 7, Row: 2}) != true {
		t.Fatal("blocking a harmless cell should be allowed")
	}
}

func TestTestBlockCell_DoesNotTouchGeneration(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 1)
	gen := g.Generation()
	g.TestBlockCell(Position{Col: 4, Row: 2})
	if g.Generation() != gen {
		t.Fatal("what-if probe must not invalidate derived fields")
	}
}

func TestTestBlockCell_AlreadyBlocked(t *testing.T) {
	g := mustGrid(t, 10, 5, 1, 1, 1)
	p := Position{Col: 4, Row: 2}
	g.BlockCell(p)
	if g.TestBlockCell(p) {
		t.Fatal("probing an occupied cell should fail")
	}
}
