// internal/component/tower.go
package component

import (
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// Tower — башня на клетке. Боевые характеристики не хранятся: они
// каждый раз выводятся из базовых значений defs по уровню и баффам,
// чтобы математика уровней воспроизводилась из одного числа.
type Tower struct {
	DefID string
	Cell  grid.Position
	Level int // 0..MaxTowerLevel

	// Сколько всего денег вложено (покупка + все апгрейды); база для продажи.
	Invested int

	// Внешние баффы от башен поддержки. Пересчитываются системой баффов
	// каждый кадр со сбросом к 1.0, поэтому повторный вход источника в
	// радиус не накапливает множитель.
	BuffDamage   float64
	BuffFireRate float64
	BuffRange    float64

	// Слабая ссылка на цель: перед использованием перепроверяется по
	// живой коллекции, мёртвая цель означает «цели нет».
	TargetID types.EntityID

	Priority defs.TargetPriority

	LastFire  float64 // часы симуляции на момент последнего выстрела
	AimAngle  float64 // для презентации
	PulseTime float64 // таймер тика для башен замедления
}

// ResetBuffs возвращает множители к нейтральным. Вызывается системой
// баффов в начале каждого пересчёта.
func (t *Tower) ResetBuffs() {
	t.BuffDamage = 1.0
	t.BuffFireRate = 1.0
	t.BuffRange = 1.0
}
