// pkg/grid/grid.go
package grid

import "fmt"

// Position — координаты клетки (колонка, ряд). Сравнивается по значению.
type Position struct {
	Col, Row int
}

// neighborOffsets — фиксированный порядок обхода соседей (4-связность).
// Порядок важен: он детерминированно разрешает ничьи при построении
// flow field, чтобы движение агентов было воспроизводимым в тестах.
var neighborOffsets = [4][2]int{
	{1, 0},  // восток
	{-1, 0}, // запад
	{0, 1},  // юг
	{0, -1}, // север
}

// Grid — сетка проходимости игрового поля. Единственный источник правды
// о занятости клеток; flow field только читает её и перестраивается целиком.
type Grid struct {
	width, height int
	blocked       [][]bool
	tower         [][]bool

	spawnWidth int
	exitRect   Rect

	// generation растёт при каждой мутации; по нему FlowField
	// понимает, что его данные устарели.
	generation uint64
}

// Rect — прямоугольник клеток [MinCol, MaxCol] x [MinRow, MaxRow], включительно.
type Rect struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

// Contains сообщает, лежит ли клетка внутри прямоугольника.
func (r Rect) Contains(p Position) bool {
	return p.Col >= r.MinCol && p.Col <= r.MaxCol && p.Row >= r.MinRow && p.Row <= r.MaxRow
}

// NewGrid создаёт пустую сетку. Вырожденные размеры — фатальная ошибка
// конфигурации, единственный невосстановимый случай в симуляции.
func NewGrid(width, height, spawnWidth, exitWidth, exitHeight int) (*Grid, error) {
	if width < 3 || height < 1 {
		return nil, fmt.Errorf("grid: degenerate dimensions %dx%d", width, height)
	}
	if spawnWidth < 1 || exitWidth < 1 || exitHeight < 1 {
		return nil, fmt.Errorf("grid: degenerate zones (spawn %d, exit %dx%d)", spawnWidth, exitWidth, exitHeight)
	}
	if spawnWidth+exitWidth > width || exitHeight > height {
		return nil, fmt.Errorf("grid: zones do not fit into %dx%d field", width, height)
	}

	blocked := make([][]bool, width)
	tower := make([][]bool, width)
	for x := range blocked {
		blocked[x] = make([]bool, height)
		tower[x] = make([]bool, height)
	}

	exitTop := (height - exitHeight) / 2
	return &Grid{
		width:      width,
		height:     height,
		blocked:    blocked,
		tower:      tower,
		spawnWidth: spawnWidth,
		exitRect: Rect{
			MinCol: width - exitWidth,
			MaxCol: width - 1,
			MinRow: exitTop,
			MaxRow: exitTop + exitHeight - 1,
		},
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Generation — счётчик мутаций, по нему инвалидируется flow field.
func (g *Grid) Generation() uint64 { return g.generation }

// IsValidPosition — проверка границ поля.
func (g *Grid) IsValidPosition(p Position) bool {
	return p.Col >= 0 && p.Col < g.width && p.Row >= 0 && p.Row < g.height
}

// IsWalkable — можно ли пройти через клетку.
func (g *Grid) IsWalkable(p Position) bool {
	return g.IsValidPosition(p) && !g.blocked[p.Col][p.Row]
}

// HasTower — стоит ли на клетке башня.
func (g *Grid) HasTower(p Position) bool {
	return g.IsValidPosition(p) && g.tower[p.Col][p.Row]
}

// IsSpawnZone — входит ли клетка в зону появления врагов.
func (g *Grid) IsSpawnZone(p Position) bool {
	return g.IsValidPosition(p) && p.Col < g.spawnWidth
}

// IsExitZone — входит ли клетка в зону выхода.
func (g *Grid) IsExitZone(p Position) bool {
	return g.IsValidPosition(p) && g.exitRect.Contains(p)
}

// ExitRect возвращает прямоугольник зоны выхода.
func (g *Grid) ExitRect() Rect { return g.exitRect }

// BlockCell занимает клетку башней. O(1); инвалидирует flow field.
func (g *Grid) BlockCell(p Position) {
	if !g.IsValidPosition(p) {
		return
	}
	g.blocked[p.Col][p.Row] = true
	g.tower[p.Col][p.Row] = true
	g.generation++
}

// UnblockCell освобождает клетку. O(1); инвалидирует flow field.
func (g *Grid) UnblockCell(p Position) {
	if !g.IsValidPosition(p) {
		return
	}
	g.blocked[p.Col][p.Row] = false
	g.tower[p.Col][p.Row] = false
	g.generation++
}

// SpawnCells возвращает все клетки зоны спавна в фиксированном порядке.
func (g *Grid) SpawnCells() []Position {
	cells := make([]Position, 0, g.spawnWidth*g.height)
	for col := 0; col < g.spawnWidth; col++ {
		for row := 0; row < g.height; row++ {
			cells = append(cells, Position{Col: col, Row: row})
		}
	}
	return cells
}

// ExitCells возвращает все клетки зоны выхода.
func (g *Grid) ExitCells() []Position {
	cells := make([]Position, 0, (g.exitRect.MaxCol-g.exitRect.MinCol+1)*(g.exitRect.MaxRow-g.exitRect.MinRow+1))
	for col := g.exitRect.MinCol; col <= g.exitRect.MaxCol; col++ {
		for row := g.exitRect.MinRow; row <= g.exitRect.MaxRow; row++ {
			cells = append(cells, Position{Col: col, Row: row})
		}
	}
	return cells
}

// Reset очищает все клетки (новая игровая сессия).
func (g *Grid) Reset() {
	for x := range g.blocked {
		for y := range g.blocked[x] {
			g.blocked[x][y] = false
			g.tower[x][y] = false
		}
	}
	g.generation++
}
