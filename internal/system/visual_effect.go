// internal/system/visual_effect.go
package system

import "github.com/Bassie1994/Towerz-sub000/internal/entity"

// VisualEffectSystem гасит короткоживущие следы (лучи) по TTL.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, beam := range s.ecs.BeamShots {
		beam.TTL -= deltaTime
		if beam.TTL <= 0 {
			s.ecs.RemoveEntity(id)
		}
	}
}
