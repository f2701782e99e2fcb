// internal/system/movement.go
package system

import (
	"math"

	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// defaultHeading — направление по умолчанию (к выходу, на восток).
// Подставляется вместо NaN при нормализации нулевого вектора и там,
// где flow field не определён.
var defaultHeading = grid.Vec{X: 1, Y: 0}

// MovementSystem ведёт врагов по полю: следование за flow field,
// локальное расталкивание, центрирование в коридорах, детект застревания
// и аварийное восстановление. Летающие идут к выходу по прямой и не
// заглядывают ни в сетку, ни в flow field.
type MovementSystem struct {
	ecs        *entity.ECS
	grid       *grid.Grid
	flow       *grid.FlowField
	layout     grid.Layout
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, g *grid.Grid, flow *grid.FlowField, layout grid.Layout, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, grid: g, flow: flow, layout: layout, dispatcher: dispatcher}
}

// Update продвигает всех живых врагов на deltaTime секунд.
// now — часы симуляции (накопленные замасштабированные дельты).
func (s *MovementSystem) Update(deltaTime, now float64) {
	if deltaTime <= 0 {
		return
	}
	for id, enemy := range s.ecs.Enemies {
		if enemy.Dead || enemy.ReachedEnd {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		steer, hasSteer := s.ecs.Steerings[id]
		if !hasPos || !hasVel || !hasSteer {
			continue
		}

		// Шаг 1: снять истёкшее замедление.
		if vel.SlowFactor < 1.0 && now >= vel.SlowExpiry {
			vel.SlowFactor = 1.0
		}

		if enemy.Category == defs.CategoryFlying {
			s.updateFlying(id, enemy, pos, vel, steer, deltaTime, now)
			continue
		}
		if steer.InRecovery {
			s.updateRecovery(id, enemy, pos, vel, steer, deltaTime, now)
			continue
		}
		s.updateGround(id, enemy, pos, vel, steer, deltaTime, now)
	}
}

// updateGround — обычный режим следования наземного агента.
func (s *MovementSystem) updateGround(id types.EntityID, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, steer *component.Steering, deltaTime, now float64) {
	// Шаг 2: желаемое направление из flow field.
	fx, fy := s.layout.WorldToField(pos.X, pos.Y)
	desired, ok := s.flow.InterpolatedDirection(fx, fy)
	if !ok {
		desired = defaultHeading
	}

	// Шаг 3: расталкивание с ближайшими агентами (приблизительное,
	// бюджет соседей на кадр ограничен).
	separation := s.separationImpulse(id, pos)

	// Шаг 4: центрирование в коридоре и отталкивание от стен вплотную.
	centering := s.centeringImpulse(pos)

	// Шаг 5: сумма, нормализация, низкочастотный фильтр против дрожания.
	combined := desired.
		Add(separation.Scale(config.SeparationWeight)).
		Add(centering)
	heading, ok := combined.Normalized()
	if !ok {
		heading = desired
	}
	if prev := steer.Heading; prev.Len() > 0 {
		blended := heading.Scale(config.HeadingSmoothing).Add(prev.Scale(1 - config.HeadingSmoothing))
		if h, ok := blended.Normalized(); ok {
			heading = h
		}
	}
	steer.Heading = heading

	// Шаг 6: продвижение.
	speed := vel.EffectiveSpeed(now)
	oldX, oldY := pos.X, pos.Y
	newX := pos.X + heading.X*speed*deltaTime
	newY := pos.Y + heading.Y*speed*deltaTime

	// Шаг 7: коррекция столкновений.
	newX, newY = s.correctCollision(pos, heading, speed, deltaTime, newX, newY)
	pos.X, pos.Y = newX, newY

	// Шаг 8: детект застревания.
	dx, dy := pos.X-oldX, pos.Y-oldY
	if math.Sqrt(dx*dx+dy*dy) < config.StuckSpeedThreshold*deltaTime {
		steer.StuckTime += deltaTime
		if steer.StuckTime >= config.StuckTimeout {
			s.enterRecovery(pos, steer)
		}
	} else {
		steer.StuckTime = 0
	}

	// Шаг 9: проверка выхода.
	s.checkExit(id, enemy, pos)
}

// updateFlying — прямолинейный полёт к якорю выхода с лёгким вилянием.
func (s *MovementSystem) updateFlying(id types.EntityID, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, steer *component.Steering, deltaTime, now float64) {
	minX, minY, maxX, maxY := s.layout.CellRectWorld(s.grid.ExitRect())
	anchorX := (minX + maxX) / 2
	anchorY := (minY + maxY) / 2

	// Направление пересчитывается каждый кадр, без кэша.
	dir, ok := grid.Vec{X: anchorX - pos.X, Y: anchorY - pos.Y}.Normalized()
	if !ok {
		dir = defaultHeading
	}
	// Перпендикулярное виляние — чисто косметика, на баланс не влияет.
	wobble := config.FlyingWobbleAmplitude * math.Sin(now*config.FlyingWobbleFrequency+steer.WobblePhase)
	perp := grid.Vec{X: -dir.Y, Y: dir.X}
	heading, ok := dir.Add(perp.Scale(wobble)).Normalized()
	if !ok {
		heading = dir
	}
	steer.Heading = heading

	speed := vel.EffectiveSpeed(now)
	pos.X += heading.X * speed * deltaTime
	pos.Y += heading.Y * speed * deltaTime

	s.checkExit(id, enemy, pos)
}

// updateRecovery — аварийный режим: шагаем от центра клетки к центру
// клетки по направлениям flow field, без локального расталкивания.
// Гарантированно завершается: либо кончился лимит клеток, либо поле
// не дало направления — и мы возвращаемся к обычному следованию.
func (s *MovementSystem) updateRecovery(id types.EntityID, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, steer *component.Steering, deltaTime, now float64) {
	tx, ty := s.layout.CellCenter(steer.RecoveryTarget)
	dir, ok := grid.Vec{X: tx - pos.X, Y: ty - pos.Y}.Normalized()
	speed := vel.EffectiveSpeed(now)
	step := speed * deltaTime

	dist := math.Hypot(tx-pos.X, ty-pos.Y)
	if !ok || dist <= step {
		// Дошли до центра клетки; выбираем следующую или выходим из режима.
		pos.X, pos.Y = tx, ty
		if steer.RecoveryLeft <= 0 {
			steer.InRecovery = false
			steer.StuckTime = 0
			s.checkExit(id, enemy, pos)
			return
		}
		cellDir, ok := s.flow.DirectionAt(steer.RecoveryTarget)
		if !ok {
			steer.InRecovery = false
			steer.StuckTime = 0
			return
		}
		steer.RecoveryTarget = grid.Position{
			Col: steer.RecoveryTarget.Col + int(cellDir.X),
			Row: steer.RecoveryTarget.Row + int(cellDir.Y),
		}
		steer.RecoveryLeft--
		return
	}

	steer.Heading = dir
	pos.X += dir.X * step
	pos.Y += dir.Y * step
	s.checkExit(id, enemy, pos)
}

func (s *MovementSystem) enterRecovery(pos *component.Position, steer *component.Steering) {
	steer.InRecovery = true
	steer.RecoveryTarget = s.layout.WorldToCell(pos.X, pos.Y)
	steer.RecoveryLeft = config.RecoveryCellCount
	steer.StuckTime = 0
}

// separationImpulse суммирует отталкивание от соседей в радиусе.
// Обходит карту врагов как есть: порядок случайный, но больше
// MaxSeparationNeighbors соседей за кадр не учитывается.
func (s *MovementSystem) separationImpulse(id types.EntityID, pos *component.Position) grid.Vec {
	var impulse grid.Vec
	neighbors := 0
	for otherID, other := range s.ecs.Enemies {
		if otherID == id || other.Dead || other.ReachedEnd || other.Category == defs.CategoryFlying {
			continue
		}
		otherPos, ok := s.ecs.Positions[otherID]
		if !ok {
			continue
		}
		dx := pos.X - otherPos.X
		dy := pos.Y - otherPos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist >= config.SeparationRadius {
			continue
		}
		if dist < 1e-6 {
			// Полное совпадение позиций: толкаем в сторону по умолчанию.
			impulse = impulse.Add(defaultHeading)
		} else {
			w := 1 - dist/config.SeparationRadius
			impulse = impulse.Add(grid.Vec{X: dx / dist, Y: dy / dist}.Scale(w))
		}
		neighbors++
		if neighbors >= config.MaxSeparationNeighbors {
			break
		}
	}
	return impulse
}

// centeringImpulse оценивает ширину коридора сканом по четырём
// кардинальным направлениям и подруливает к середине, если агента
// снесло за внутреннюю четверть. Вплотную прижатая стена даёт более
// сильный немедленный толчок от себя.
func (s *MovementSystem) centeringImpulse(pos *component.Position) grid.Vec {
	cell := s.layout.WorldToCell(pos.X, pos.Y)
	var impulse grid.Vec

	// Скан свободных клеток по обеим осям.
	left := s.freeSpan(cell, -1, 0)
	right := s.freeSpan(cell, 1, 0)
	up := s.freeSpan(cell, 0, -1)
	down := s.freeSpan(cell, 0, 1)

	cx, cy := s.layout.CellCenter(cell)

	// Горизонтальный коридор: середина и полуширина по X.
	midX := cx + float64(right-left)*s.layout.CellSize/2
	halfW := (float64(left+right) + 1) * s.layout.CellSize / 2
	if offset := pos.X - midX; math.Abs(offset) > halfW*config.CorridorDeadZone {
		impulse.X -= config.CenteringWeight * offset / halfW
	}

	// Вертикальный коридор.
	midY := cy + float64(down-up)*s.layout.CellSize/2
	halfH := (float64(up+down) + 1) * s.layout.CellSize / 2
	if offset := pos.Y - midY; math.Abs(offset) > halfH*config.CorridorDeadZone {
		impulse.Y -= config.CenteringWeight * offset / halfH
	}

	// Толчок от непосредственно прилегающих заблокированных клеток.
	for _, off := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := grid.Position{Col: cell.Col + off[0], Row: cell.Row + off[1]}
		if s.grid.IsValidPosition(n) && !s.grid.IsWalkable(n) {
			nx, ny := s.layout.CellCenter(n)
			if away, ok := (grid.Vec{X: pos.X - nx, Y: pos.Y - ny}).Normalized(); ok {
				impulse = impulse.Add(away.Scale(config.WallPushWeight))
			}
		}
	}
	return impulse
}

// freeSpan считает свободные клетки от cell в направлении (dc,dr),
// не дальше CorridorScanCells.
func (s *MovementSystem) freeSpan(cell grid.Position, dc, dr int) int {
	span := 0
	for i := 1; i <= config.CorridorScanCells; i++ {
		n := grid.Position{Col: cell.Col + dc*i, Row: cell.Row + dr*i}
		if !s.grid.IsWalkable(n) {
			break
		}
		span++
	}
	return span
}

// correctCollision не пускает агента в заблокированную клетку: сначала
// перебор запасных смещений со сносом к стороне выхода, затем скольжение
// вдоль препятствия по вектору от центра клетки к агенту.
func (s *MovementSystem) correctCollision(pos *component.Position, heading grid.Vec, speed, deltaTime, newX, newY float64) (float64, float64) {
	target := s.layout.WorldToCell(newX, newY)
	if s.grid.IsWalkable(target) {
		return newX, newY
	}

	step := speed * deltaTime
	// Запасные направления: боковые и диагональные шаги со смещением
	// к восточной (выходной) стороне карты.
	candidates := []grid.Vec{
		{X: heading.X, Y: 0},
		{X: 0, Y: heading.Y},
		{X: 0.7, Y: heading.Y * 0.7},
		{X: 0.7, Y: -heading.Y * 0.7},
		{X: 1, Y: 0},
	}
	for _, cand := range candidates {
		dir, ok := cand.Normalized()
		if !ok {
			continue
		}
		cx := pos.X + dir.X*step
		cy := pos.Y + dir.Y*step
		if s.grid.IsWalkable(s.layout.WorldToCell(cx, cy)) {
			return cx, cy
		}
	}

	// Скольжение вдоль поверхности препятствия.
	bx, by := s.layout.CellCenter(target)
	if away, ok := (grid.Vec{X: pos.X - bx, Y: pos.Y - by}).Normalized(); ok {
		sx := pos.X + away.X*step*0.5
		sy := pos.Y + away.Y*step*0.5
		if s.grid.IsWalkable(s.layout.WorldToCell(sx, sy)) {
			return sx, sy
		}
	}
	// Остаёмся на месте; детект застревания добьёт остальное.
	return pos.X, pos.Y
}

// checkExit переводит агента в терминальное состояние «дошёл», когда он
// оказался внутри прямоугольника выхода (обе координаты, не только столбец).
func (s *MovementSystem) checkExit(id types.EntityID, enemy *component.Enemy, pos *component.Position) {
	minX, minY, maxX, maxY := s.layout.CellRectWorld(s.grid.ExitRect())
	if pos.X >= minX && pos.X <= maxX && pos.Y >= minY && pos.Y <= maxY {
		enemy.ReachedEnd = true
		s.dispatcher.Dispatch(event.Event{
			Type: event.EnemyLeaked,
			Data: event.EnemyEventData{ID: id, Bounty: enemy.Bounty},
		})
	}
}
