// internal/system/targeting.go
package system

import (
	"math"
	"sort"

	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// candidate — враг, прошедший отбор по радиусу и категории.
type candidate struct {
	id  types.EntityID
	pos *component.Position
}

// collectCandidates отбирает живых врагов в эффективном радиусе башни.
// Фильтр категории (например, «не бьёт летающих») применяется здесь,
// на этапе отбора, а не при нанесении урона: башня не должна тратить
// свою скорострельность на недопустимую цель.
// Список отсортирован по ID — дальше все политики решают ничьи
// детерминированно, порядком перебора.
func collectCandidates(ecs *entity.ECS, towerPos *component.Position, rangePx float64, canHitFlying bool) []candidate {
	var out []candidate
	for id, enemy := range ecs.Enemies {
		if enemy.Dead || enemy.ReachedEnd {
			continue
		}
		if !canHitFlying && enemy.Category == defs.CategoryFlying {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if math.Hypot(pos.X-towerPos.X, pos.Y-towerPos.Y) > rangePx {
			continue
		}
		out = append(out, candidate{id: id, pos: pos})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// targetContext — данные, нужные политикам для оценки кандидата.
type targetContext struct {
	ecs    *entity.ECS
	grid   *grid.Grid
	flow   *grid.FlowField
	layout grid.Layout
	now    float64
}

// progressScore оценивает, насколько далеко враг прошёл по полю:
// чем меньше расстояние до выхода, тем больше прогресс. Для летающих,
// которые в сетку не заглядывают, берём евклидово расстояние до якоря выхода.
func (tc targetContext) progressScore(c candidate) float64 {
	if enemy, ok := tc.ecs.Enemies[c.id]; ok && enemy.Category == defs.CategoryFlying {
		minX, minY, maxX, maxY := tc.layout.CellRectWorld(tc.grid.ExitRect())
		return -math.Hypot((minX+maxX)/2-c.pos.X, (minY+maxY)/2-c.pos.Y)
	}
	d := tc.flow.DistanceAt(tc.layout.WorldToCell(c.pos.X, c.pos.Y))
	if d == grid.Unreachable {
		return math.Inf(-1)
	}
	return -float64(d)
}

// SelectTarget выбирает одну цель по политике приоритета. При равных
// оценках побеждает первый в порядке перебора (кандидаты отсортированы
// по ID, так что выбор воспроизводим).
func SelectTarget(tc targetContext, cands []candidate, priority defs.TargetPriority) (types.EntityID, bool) {
	if len(cands) == 0 {
		return 0, false
	}

	score := func(c candidate) float64 {
		switch priority {
		case defs.PriorityLast:
			return -tc.progressScore(c)
		case defs.PriorityStrongest:
			if h, ok := tc.ecs.Healths[c.id]; ok {
				return float64(h.Current)
			}
			return math.Inf(-1)
		case defs.PriorityWeakest:
			if h, ok := tc.ecs.Healths[c.id]; ok {
				return -float64(h.Current)
			}
			return math.Inf(-1)
		case defs.PriorityFastest:
			if v, ok := tc.ecs.Velocities[c.id]; ok {
				return v.EffectiveSpeed(tc.now)
			}
			return math.Inf(-1)
		default: // PriorityFirst
			return tc.progressScore(c)
		}
	}

	best := cands[0]
	bestScore := score(best)
	for _, c := range cands[1:] {
		if sc := score(c); sc > bestScore {
			best = c
			bestScore = sc
		}
	}
	return best.id, true
}

// SelectSplashTarget — переопределение прицеливания для осколочных башен:
// вместо политики игрока берётся цель, вокруг которой в радиусе осколков
// больше всего кандидатов. Ничья решается порядком перебора.
func SelectSplashTarget(cands []candidate, splashRadiusPx float64) (types.EntityID, bool) {
	if len(cands) == 0 {
		return 0, false
	}
	best := cands[0]
	bestCovered := -1
	for _, c := range cands {
		covered := 0
		for _, other := range cands {
			if math.Hypot(other.pos.X-c.pos.X, other.pos.Y-c.pos.Y) <= splashRadiusPx {
				covered++
			}
		}
		if covered > bestCovered {
			best = c
			bestCovered = covered
		}
	}
	return best.id, true
}
