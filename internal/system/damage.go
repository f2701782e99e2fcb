// internal/system/damage.go
package system

import (
	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
)

// MitigatedDamage применяет формулу брони с убывающей отдачей:
// reduction = armor / (armor + ArmorSoftCap). Снижение асимптотически
// стремится к 100%, но никогда её не достигает; пробитие вычитается из
// брони до формулы, ниже нуля броня не уходит.
func MitigatedDamage(amount, armor, armorPenetration int) int {
	if amount <= 0 {
		return 0
	}
	effective := armor - armorPenetration
	if effective < 0 {
		effective = 0
	}
	reduction := float64(effective) / (float64(effective) + config.ArmorSoftCap)
	dealt := int(float64(amount) * (1 - reduction))
	if dealt < 1 {
		// Любая положительная атака наносит хотя бы единицу.
		dealt = 1
	}
	return dealt
}

// ApplyDamage наносит урон врагу с учётом брони. Переход в смерть
// идемпотентен: повторные вызовы по мёртвой цели — no-op.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID, amount, armorPenetration int) {
	enemy, ok := ecs.AliveEnemy(id)
	if !ok {
		return
	}
	health, ok := ecs.Healths[id]
	if !ok {
		return
	}

	health.Current -= MitigatedDamage(amount, enemy.Armor, armorPenetration)
	if health.Current <= 0 {
		health.Current = 0
		enemy.Dead = true
		dispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyEventData{ID: id, Bounty: enemy.Bounty},
		})
	}
}

// ApplySlow накладывает замедление. Правило стака: сильнейший множитель
// и самый поздний срок действия выигрывают независимо — слабое повторное
// замедление продлевает сильное.
func ApplySlow(vel *component.Velocity, factor, duration, now float64) {
	if now >= vel.SlowExpiry {
		vel.SlowFactor = 1.0
	}
	if factor < vel.SlowFactor {
		vel.SlowFactor = factor
	}
	if expiry := now + duration; expiry > vel.SlowExpiry {
		vel.SlowExpiry = expiry
	}
}
