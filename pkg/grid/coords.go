// pkg/grid/coords.go
package grid

import "math"

// Layout задаёт отображение сетки в мировые (пиксельные) координаты.
// Симуляция работает в пикселях, сетка — в клетках; вся конвертация здесь.
type Layout struct {
	CellSize float64
	OriginX  float64
	OriginY  float64
}

// CellCenter возвращает мировые координаты центра клетки.
func (l Layout) CellCenter(p Position) (float64, float64) {
	x := l.OriginX + (float64(p.Col)+0.5)*l.CellSize
	y := l.OriginY + (float64(p.Row)+0.5)*l.CellSize
	return x, y
}

// WorldToCell прищёлкивает мировую точку к клетке.
func (l Layout) WorldToCell(x, y float64) Position {
	return Position{
		Col: int(math.Floor((x - l.OriginX) / l.CellSize)),
		Row: int(math.Floor((y - l.OriginY) / l.CellSize)),
	}
}

// WorldToField переводит мировую точку в непрерывные координаты поля
// (в единицах клеток) для интерполированной выборки из flow field.
func (l Layout) WorldToField(x, y float64) (float64, float64) {
	return (x - l.OriginX) / l.CellSize, (y - l.OriginY) / l.CellSize
}

// ContainsWorld сообщает, лежит ли мировая точка внутри игрового поля.
func (l Layout) ContainsWorld(g *Grid, x, y float64) bool {
	return g.IsValidPosition(l.WorldToCell(x, y))
}

// CellRectWorld возвращает мировые границы прямоугольника клеток
// (minX, minY, maxX, maxY). Используется для проверки выхода.
func (l Layout) CellRectWorld(r Rect) (float64, float64, float64, float64) {
	minX := l.OriginX + float64(r.MinCol)*l.CellSize
	minY := l.OriginY + float64(r.MinRow)*l.CellSize
	maxX := l.OriginX + float64(r.MaxCol+1)*l.CellSize
	maxY := l.OriginY + float64(r.MaxRow+1)*l.CellSize
	return minX, minY, maxX, maxY
}
