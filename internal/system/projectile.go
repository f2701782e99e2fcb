// internal/system/projectile.go
package system

import (
	"math"

	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
)

// ProjectileSystem ведёт снаряды к целям и разрешает попадания.
// Если цель умерла в полёте, снаряд долетает до её последней известной
// позиции: для одиночного урона это промах, для осколочного — взрыв
// по области всё равно происходит.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *ProjectileSystem) Update(deltaTime, now float64) {
	if deltaTime <= 0 {
		return
	}
	for id, proj := range s.ecs.Projectiles {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}

		// Обновляем последнюю известную позицию, пока цель жива.
		targetAlive := false
		if _, ok := s.ecs.AliveEnemy(proj.TargetID); ok {
			if tpos, ok := s.ecs.Positions[proj.TargetID]; ok {
				proj.LastX = tpos.X
				proj.LastY = tpos.Y
				targetAlive = true
			}
		}

		dx := proj.LastX - pos.X
		dy := proj.LastY - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		step := proj.Speed * deltaTime

		if dist > step {
			pos.X += dx / dist * step
			pos.Y += dy / dist * step
			continue
		}

		// Долетели.
		pos.X, pos.Y = proj.LastX, proj.LastY
		if proj.SplashRadius > 0 {
			s.resolveSplash(id, proj.Damage, proj.ArmorPenetration, pos.X, pos.Y, proj.SplashRadius, proj.SplashFalloff, proj.CanHitFlying)
		} else if targetAlive {
			ApplyDamage(s.ecs, s.dispatcher, proj.TargetID, proj.Damage, proj.ArmorPenetration)
		}
		s.ecs.RemoveEntity(id)
	}
}

// resolveSplash бьёт всех подходящих врагов в радиусе от точки взрыва с
// линейным спадом по расстоянию: damage * (1 - фракция * falloff).
func (s *ProjectileSystem) resolveSplash(projID types.EntityID, damage, armorPen int, x, y, radius, falloff float64, canHitFlying bool) {
	for enemyID := range s.ecs.Enemies {
		enemy, ok := s.ecs.AliveEnemy(enemyID)
		if !ok {
			continue
		}
		if !canHitFlying && enemy.Category == defs.CategoryFlying {
			continue
		}
		pos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		dist := math.Hypot(pos.X-x, pos.Y-y)
		if dist > radius {
			continue
		}
		scaled := float64(damage) * (1 - dist/radius*falloff)
		if scaled < 1 {
			scaled = 1
		}
		ApplyDamage(s.ecs, s.dispatcher, enemyID, int(math.Round(scaled)), armorPen)
	}
}
