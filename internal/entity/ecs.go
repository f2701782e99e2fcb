// internal/entity/ecs.go
package entity

import (
	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
)

// ECS — карты компонентов по идентификаторам сущностей.
type ECS struct {
	NextID types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Steerings   map[types.EntityID]*component.Steering
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	BeamShots   map[types.EntityID]*component.BeamShot
	Renderables map[types.EntityID]*component.Renderable

	Wave *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Steerings:   make(map[types.EntityID]*component.Steering),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		BeamShots:   make(map[types.EntityID]*component.BeamShot),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Steerings, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.BeamShots, id)
	delete(ecs.Renderables, id)
}

// AliveEnemy возвращает врага, если он существует и ещё жив.
// Общая защита от повисших ссылок: мёртвая цель — это «цели нет».
func (ecs *ECS) AliveEnemy(id types.EntityID) (*component.Enemy, bool) {
	enemy, ok := ecs.Enemies[id]
	if !ok || enemy.Dead || enemy.ReachedEnd {
		return nil, false
	}
	return enemy, true
}
