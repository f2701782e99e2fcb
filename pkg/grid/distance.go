// pkg/grid/distance.go
package grid

// Unreachable — маркер клетки, из которой нет пути к выходу.
const Unreachable = -1

// DistanceField — расстояние до выхода для каждой клетки.
// Производные данные: строится целиком по текущему состоянию Grid.
type DistanceField struct {
	width, height int
	dist          [][]int
}

// ComputeDistanceField запускает многоисточниковый BFS от всех клеток
// зоны выхода по 4-связному графу проходимых клеток. O(width*height).
func (g *Grid) ComputeDistanceField() *DistanceField {
	df := &DistanceField{width: g.width, height: g.height}
	df.dist = make([][]int, g.width)
	for x := range df.dist {
		df.dist[x] = make([]int, g.height)
		for y := range df.dist[x] {
			df.dist[x][y] = Unreachable
		}
	}

	// Все клетки выхода — источники с расстоянием 0.
	queue := make([]Position, 0, g.width*g.height)
	for _, p := range g.ExitCells() {
		if !g.IsWalkable(p) {
			continue
		}
		df.dist[p.Col][p.Row] = 0
		queue = append(queue, p)
	}

	head := 0
	for head < len(queue) {
		cur := queue[head]
		head++
		d := df.dist[cur.Col][cur.Row]
		for _, off := range neighborOffsets {
			next := Position{Col: cur.Col + off[0], Row: cur.Row + off[1]}
			if !g.IsWalkable(next) {
				continue
			}
			if df.dist[next.Col][next.Row] != Unreachable {
				continue
			}
			df.dist[next.Col][next.Row] = d + 1
			queue = append(queue, next)
		}
	}
	return df
}

// At возвращает расстояние до выхода (Unreachable, если пути нет).
func (df *DistanceField) At(p Position) int {
	if p.Col < 0 || p.Col >= df.width || p.Row < 0 || p.Row >= df.height {
		return Unreachable
	}
	return df.dist[p.Col][p.Row]
}

// Reachable сообщает, достижим ли выход из клетки.
func (df *DistanceField) Reachable(p Position) bool {
	return df.At(p) != Unreachable
}

// CanReachExit — достижим ли выход из клетки при текущей занятости.
func (g *Grid) CanReachExit(from Position) bool {
	return g.ComputeDistanceField().Reachable(from)
}

// TestBlockCell — проверка «что если»: блокируем клетку, пересчитываем
// достижимость для каждой клетки зоны спавна, возвращаем всё как было.
// Именно этот инвариант не даёт лабиринту наглухо запечатать карту.
// Мутация не видна снаружи: generation не трогаем, состояние
// восстанавливается до возврата.
func (g *Grid) TestBlockCell(p Position) bool {
	if !g.IsValidPosition(p) || g.blocked[p.Col][p.Row] {
		return false
	}
	g.blocked[p.Col][p.Row] = true
	df := g.ComputeDistanceField()
	ok := true
	for _, s := range g.SpawnCells() {
		if !df.Reachable(s) {
			ok = false
			break
		}
	}
	g.blocked[p.Col][p.Row] = false
	return ok
}
