// internal/system/combat.go
package system

import (
	"log"
	"math"

	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// CombatSystem управляет прицеливанием и атакой башен. Разрешение атаки
// диспетчеризуется по архетипу через таблицу, а не через иерархию типов:
// вариант — это данные плюс чистая функция.
type CombatSystem struct {
	ecs        *entity.ECS
	grid       *grid.Grid
	flow       *grid.FlowField
	layout     grid.Layout
	dispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, g *grid.Grid, flow *grid.FlowField, layout grid.Layout, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, grid: g, flow: flow, layout: layout, dispatcher: dispatcher}
}

// attackResolver разрешает один выстрел конкретного архетипа.
type attackResolver func(s *CombatSystem, towerID types.EntityID, tower *component.Tower, def defs.TowerDefinition, targetID types.EntityID, now float64)

var attackResolvers = map[defs.TowerArchetype]attackResolver{
	defs.ArchetypeProjectile: (*CombatSystem).fireProjectile,
	defs.ArchetypeSplash:     (*CombatSystem).fireProjectile,
	defs.ArchetypeHitscan:    (*CombatSystem).fireHitscan,
	defs.ArchetypeBeam:       (*CombatSystem).fireBeam,
}

func (s *CombatSystem) Update(deltaTime, now float64) {
	tc := targetContext{ecs: s.ecs, grid: s.grid, flow: s.flow, layout: s.layout, now: now}

	for towerID, tower := range s.ecs.Towers {
		def, ok := defs.TowerDefs[tower.DefID]
		if !ok {
			log.Printf("CombatSystem: no tower definition for %q", tower.DefID)
			continue
		}

		switch def.Archetype {
		case defs.ArchetypeSupport:
			// Баффы пересчитывает BuffSystem.
			continue
		case defs.ArchetypeSlowField:
			s.updateSlowField(tower, def, deltaTime, now)
			continue
		}

		towerPos, ok := s.ecs.Positions[towerID]
		if !ok {
			continue
		}
		rangePx := TowerRange(def, tower) * s.layout.CellSize
		cands := collectCandidates(s.ecs, towerPos, rangePx, def.CanHitFlying)

		// Повисшая ссылка на цель лечится повторным отбором: если прежняя
		// цель умерла или ушла из радиуса, просто выбираем заново.
		var targetID types.EntityID
		var found bool
		if def.Archetype == defs.ArchetypeSplash {
			targetID, found = SelectSplashTarget(cands, def.SplashRadius*s.layout.CellSize)
		} else {
			targetID, found = SelectTarget(tc, cands, tower.Priority)
		}
		if !found {
			tower.TargetID = 0
			continue
		}
		tower.TargetID = targetID

		// Прицеливание мгновенное, без ограничения скорости поворота.
		if tpos, ok := s.ecs.Positions[targetID]; ok {
			tower.AimAngle = math.Atan2(tpos.Y-towerPos.Y, tpos.X-towerPos.X)
		}

		rate := TowerFireRate(def, tower)
		if rate <= 0 {
			continue
		}
		if now-tower.LastFire < 1.0/rate {
			continue
		}

		resolver, ok := attackResolvers[def.Archetype]
		if !ok {
			log.Printf("CombatSystem: no attack resolver for archetype %q", def.Archetype)
			continue
		}
		resolver(s, towerID, tower, def, targetID, now)
		tower.LastFire = now
		s.dispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: event.TowerEventData{ID: towerID}})
	}
}

// fireProjectile создаёт снаряд, летящий к цели. Осколочные снаряды несут
// радиус и спад; фильтр по летающим едет вместе со снарядом, чтобы
// осколки не задевали недопустимую категорию.
func (s *CombatSystem) fireProjectile(towerID types.EntityID, tower *component.Tower, def defs.TowerDefinition, targetID types.EntityID, now float64) {
	towerPos := s.ecs.Positions[towerID]
	targetPos, ok := s.ecs.Positions[targetID]
	if towerPos == nil || !ok {
		return
	}

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID:         targetID,
		LastX:            targetPos.X,
		LastY:            targetPos.Y,
		Speed:            config.ProjectileSpeed,
		Damage:           int(math.Round(TowerDamage(def, tower))),
		ArmorPenetration: def.ArmorPenetration,
		SplashRadius:     def.SplashRadius * s.layout.CellSize,
		SplashFalloff:    def.SplashFalloff,
		CanHitFlying:     def.CanHitFlying,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: config.ProjectileRadius,
	}
}

// fireHitscan наносит урон мгновенно.
func (s *CombatSystem) fireHitscan(towerID types.EntityID, tower *component.Tower, def defs.TowerDefinition, targetID types.EntityID, now float64) {
	damage := int(math.Round(TowerDamage(def, tower)))
	ApplyDamage(s.ecs, s.dispatcher, targetID, damage, def.ArmorPenetration)
}

// fireBeam пробивает лучом всех подходящих врагов, чьё перпендикулярное
// расстояние до луча меньше полуширины. Луч идёт от башни через цель
// на всю эффективную дальность.
func (s *CombatSystem) fireBeam(towerID types.EntityID, tower *component.Tower, def defs.TowerDefinition, targetID types.EntityID, now float64) {
	towerPos := s.ecs.Positions[towerID]
	targetPos, ok := s.ecs.Positions[targetID]
	if towerPos == nil || !ok {
		return
	}

	dir, ok := (grid.Vec{X: targetPos.X - towerPos.X, Y: targetPos.Y - towerPos.Y}).Normalized()
	if !ok {
		return
	}
	rangePx := TowerRange(def, tower) * s.layout.CellSize
	damage := int(math.Round(TowerDamage(def, tower)))

	cands := collectCandidates(s.ecs, towerPos, rangePx, def.CanHitFlying)
	for _, c := range cands {
		// Проекция на луч: позади башни и дальше дальности не бьём.
		relX := c.pos.X - towerPos.X
		relY := c.pos.Y - towerPos.Y
		along := relX*dir.X + relY*dir.Y
		if along < 0 || along > rangePx {
			continue
		}
		perp := math.Abs(relX*dir.Y - relY*dir.X)
		if perp > def.BeamWidth {
			continue
		}
		ApplyDamage(s.ecs, s.dispatcher, c.id, damage, def.ArmorPenetration)
	}

	// След луча для отрисовки.
	beamID := s.ecs.NewEntity()
	s.ecs.BeamShots[beamID] = &component.BeamShot{
		FromX: towerPos.X, FromY: towerPos.Y,
		ToX: towerPos.X + dir.X*rangePx, ToY: towerPos.Y + dir.Y*rangePx,
		TTL: 0.12,
	}
}

// updateSlowField — башня замедления: без урона и без цели, по таймеру
// тика накрывает замедлением всех в радиусе.
func (s *CombatSystem) updateSlowField(tower *component.Tower, def defs.TowerDefinition, deltaTime, now float64) {
	tower.PulseTime += deltaTime
	if tower.PulseTime < config.SlowPulseInterval {
		return
	}
	tower.PulseTime = 0

	towerX, towerY := s.layout.CellCenter(tower.Cell)
	rangePx := TowerRange(def, tower) * s.layout.CellSize
	cands := collectCandidates(s.ecs, &component.Position{X: towerX, Y: towerY}, rangePx, def.CanHitFlying)
	for _, c := range cands {
		if vel, ok := s.ecs.Velocities[c.id]; ok {
			ApplySlow(vel, def.SlowFactor, def.SlowDuration, now)
		}
	}
}
