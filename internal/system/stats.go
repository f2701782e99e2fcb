// internal/system/stats.go
package system

import (
	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
)

// Боевые характеристики башни всегда выводятся из базовых значений
// библиотеки: база × (1 + уровень × прирост) × внешний бафф. Рост
// линейный от базы, а не от предыдущего уровня, поэтому характеристика
// воспроизводится из одного номера уровня.

// TowerDamage возвращает эффективный урон башни.
func TowerDamage(def defs.TowerDefinition, t *component.Tower) float64 {
	return def.Damage * (1 + float64(t.Level)*config.DamagePerLevel) * buffOrOne(t.BuffDamage)
}

// TowerRange возвращает эффективный радиус в клетках.
func TowerRange(def defs.TowerDefinition, t *component.Tower) float64 {
	return def.Range * (1 + float64(t.Level)*config.RangePerLevel) * buffOrOne(t.BuffRange)
}

// TowerFireRate возвращает эффективную скорострельность (выстрелов в секунду).
func TowerFireRate(def defs.TowerDefinition, t *component.Tower) float64 {
	return def.FireRate * (1 + float64(t.Level)*config.FireRatePerLevel) * buffOrOne(t.BuffFireRate)
}

// buffOrOne страхует от ненициализированного множителя.
func buffOrOne(m float64) float64 {
	if m <= 0 {
		return 1.0
	}
	return m
}

// UpgradeCost возвращает цену следующего апгрейда или ok=false на
// максимальном уровне. Цена растёт с уровнем как доля базовой стоимости.
func UpgradeCost(def defs.TowerDefinition, t *component.Tower) (int, bool) {
	if t.Level >= config.MaxTowerLevel {
		return 0, false
	}
	fraction := config.UpgradeCostFractions[len(config.UpgradeCostFractions)-1]
	if t.Level < len(config.UpgradeCostFractions) {
		fraction = config.UpgradeCostFractions[t.Level]
	}
	return int(float64(def.Cost) * fraction), true
}
