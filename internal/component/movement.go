// internal/component/movement.go
package component

import "github.com/Bassie1994/Towerz-sub000/pkg/grid"

// Position — компонент позиции (мировые координаты, пиксели).
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости. Замедление хранится парой
// (множитель, срок действия по часам симуляции).
type Velocity struct {
	BaseSpeed  float64
	SlowFactor float64 // 1.0 — замедления нет
	SlowExpiry float64 // значение часов симуляции, после которого множитель сбрасывается
}

// EffectiveSpeed возвращает скорость с учётом активного замедления.
func (v *Velocity) EffectiveSpeed(now float64) float64 {
	if v.SlowFactor < 1.0 && now < v.SlowExpiry {
		return v.BaseSpeed * v.SlowFactor
	}
	return v.BaseSpeed
}

// Steering — переходное состояние руления агента.
type Steering struct {
	Heading grid.Vec // направление прошлого кадра, вход низкочастотного фильтра

	// Детект застревания.
	StuckTime float64

	// Режим восстановления: грубая навигация по центрам клеток.
	InRecovery     bool
	RecoveryTarget grid.Position
	RecoveryLeft   int // сколько клеток осталось пройти до возврата к обычному следованию

	// Фаза синусоидального виляния летающих.
	WobblePhase float64
}
