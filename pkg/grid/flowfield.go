// pkg/grid/flowfield.go
package grid

import "math"

// Vec — двумерный вектор направления.
type Vec struct {
	X, Y float64
}

// Len возвращает длину вектора.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Add — покомпонентная сумма.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale — умножение на скаляр.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Normalized возвращает единичный вектор. Для нулевого вектора ok=false:
// нормализация нуля дала бы NaN, вызывающий сам подставляет направление
// по умолчанию.
func (v Vec) Normalized() (Vec, bool) {
	l := v.Len()
	if l < 1e-9 {
		return Vec{}, false
	}
	return Vec{X: v.X / l, Y: v.Y / l}, true
}

// FlowField — векторное поле «шаг к выходу», производное от DistanceField.
// Перестраивается лениво: любой BlockCell/UnblockCell двигает generation
// сетки, и при первом обращении поле пересчитывается целиком. Несколько
// мутаций за один кадр схлопываются в один пересчёт.
type FlowField struct {
	grid       *Grid
	dirs       [][]Vec
	defined    [][]bool
	dist       *DistanceField
	generation uint64
	built      bool
}

// NewFlowField создаёт поле поверх сетки. Само построение откладывается
// до первого запроса направления.
func NewFlowField(g *Grid) *FlowField {
	return &FlowField{grid: g}
}

// ensure перестраивает поле, если сетка менялась с прошлого построения.
func (f *FlowField) ensure() {
	if f.built && f.generation == f.grid.Generation() {
		return
	}
	f.rebuild()
}

func (f *FlowField) rebuild() {
	g := f.grid
	f.dist = g.ComputeDistanceField()
	f.dirs = make([][]Vec, g.width)
	f.defined = make([][]bool, g.width)
	for x := range f.dirs {
		f.dirs[x] = make([]Vec, g.height)
		f.defined[x] = make([]bool, g.height)
	}

	for col := 0; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			p := Position{Col: col, Row: row}
			d := f.dist.At(p)
			if d == Unreachable {
				continue
			}
			if d == 0 {
				// Клетка выхода: направление не нужно, но считается определённым,
				// чтобы интерполяция рядом с выходом не теряла вес.
				f.defined[col][row] = true
				continue
			}
			// Сосед со строго меньшим расстоянием; порядок обхода фиксирован,
			// поэтому при равных кандидатах выбор детерминирован.
			best := d
			var dir Vec
			for _, off := range neighborOffsets {
				n := Position{Col: col + off[0], Row: row + off[1]}
				nd := f.dist.At(n)
				if nd != Unreachable && nd < best {
					best = nd
					dir = Vec{X: float64(off[0]), Y: float64(off[1])}
				}
			}
			if best < d {
				f.dirs[col][row] = dir
				f.defined[col][row] = true
			}
		}
	}

	f.generation = g.Generation()
	f.built = true
}

// DirectionAt возвращает единичный вектор к выходу из клетки.
// ok=false для недостижимых клеток и клеток вне поля.
func (f *FlowField) DirectionAt(p Position) (Vec, bool) {
	f.ensure()
	if !f.grid.IsValidPosition(p) || !f.defined[p.Col][p.Row] {
		return Vec{}, false
	}
	return f.dirs[p.Col][p.Row], true
}

// DistanceAt возвращает расстояние до выхода из клетки.
func (f *FlowField) DistanceAt(p Position) int {
	f.ensure()
	return f.dist.At(p)
}

// InterpolatedDirection билинейно смешивает направления четырёх окружающих
// центров клеток. Координаты — непрерывные, в единицах клеток. Соседи без
// направления выводятся из суммы весом, а не роняют выборку; если веса не
// осталось или сумма нулевая — ok=false.
func (f *FlowField) InterpolatedDirection(fx, fy float64) (Vec, bool) {
	f.ensure()

	// Сдвигаемся в пространство центров клеток: центр (c,r) лежит в (c+0.5, r+0.5).
	px := fx - 0.5
	py := fy - 0.5
	x0 := int(math.Floor(px))
	y0 := int(math.Floor(py))
	tx := px - float64(x0)
	ty := py - float64(y0)

	weights := [4]float64{
		(1 - tx) * (1 - ty), // (x0, y0)
		tx * (1 - ty),       // (x0+1, y0)
		(1 - tx) * ty,       // (x0, y0+1)
		tx * ty,             // (x0+1, y0+1)
	}
	cells := [4]Position{
		{Col: x0, Row: y0},
		{Col: x0 + 1, Row: y0},
		{Col: x0, Row: y0 + 1},
		{Col: x0 + 1, Row: y0 + 1},
	}

	var sum Vec
	totalWeight := 0.0
	for i, cell := range cells {
		if !f.grid.IsValidPosition(cell) || !f.defined[cell.Col][cell.Row] {
			continue
		}
		sum = sum.Add(f.dirs[cell.Col][cell.Row].Scale(weights[i]))
		totalWeight += weights[i]
	}
	if totalWeight < 1e-9 {
		return Vec{}, false
	}
	return sum.Normalized()
}
