// internal/component/projectile.go
package component

import "github.com/Bassie1994/Towerz-sub000/internal/types"

// Projectile — летящий снаряд. Цель — слабая ссылка: если она умерла
// в полёте, снаряд долетает до последней известной точки и взрывается там.
type Projectile struct {
	TargetID types.EntityID
	LastX    float64 // последняя известная позиция цели
	LastY    float64

	Speed            float64
	Damage           int
	ArmorPenetration int

	// Для осколочных снарядов: радиус и коэффициент линейного спада.
	SplashRadius  float64
	SplashFalloff float64

	// Осколочные не бьют летающих; фильтр категории переносится со башни.
	CanHitFlying bool
}
