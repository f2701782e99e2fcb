// internal/system/wave.go
package system

import (
	"log"
	"sort"

	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/utils"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// WaveSystem — планировщик спавна и автомат завершения волны.
// Волна завершена, когда очередь спавна пуста И живых врагов ноль —
// конъюнкция точная: убийство предпоследнего врага при одном
// невыпущенном волну не закрывает.
type WaveSystem struct {
	ecs        *entity.ECS
	grid       *grid.Grid
	layout     grid.Layout
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	waveNumber    int
	totalWaves    int
	activeEnemies int
	active        bool
}

func NewWaveSystem(ecs *entity.ECS, g *grid.Grid, layout grid.Layout, dispatcher *event.Dispatcher, rng *utils.PRNGService, totalWaves int) *WaveSystem {
	ws := &WaveSystem{
		ecs:        ecs,
		grid:       g,
		layout:     layout,
		dispatcher: dispatcher,
		rng:        rng,
		totalWaves: totalWaves,
	}
	dispatcher.Subscribe(event.EnemyKilled, ws)
	dispatcher.Subscribe(event.EnemyLeaked, ws)
	return ws
}

func (s *WaveSystem) WaveNumber() int { return s.waveNumber }
func (s *WaveSystem) TotalWaves() int { return s.totalWaves }
func (s *WaveSystem) Active() bool    { return s.active }

// LiveEnemies — живые враги текущей волны (для UI).
func (s *WaveSystem) LiveEnemies() int { return s.activeEnemies }

// AllWavesDone сообщает, исчерпаны ли все волны.
func (s *WaveSystem) AllWavesDone() bool {
	return s.waveNumber >= s.totalWaves && !s.active
}

// StartNextWave запускает следующую волну. No-op, если волна уже идёт
// или волны исчерпаны (возвращает false).
func (s *WaveSystem) StartNextWave(now float64) bool {
	if s.active || s.waveNumber >= s.totalWaves {
		return false
	}
	s.waveNumber++

	def := GenerateWave(s.waveNumber)
	queue := flattenGroups(def.Groups)
	s.ecs.Wave = &component.Wave{
		Number:    def.Number,
		StartedAt: now,
		Queue:     queue,
	}
	s.active = true
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: def.Number})
	return true
}

// flattenGroups разворачивает группы в плоскую очередь, отсортированную
// по задержке от старта волны.
func flattenGroups(groups []SpawnGroup) []component.SpawnEntry {
	var queue []component.SpawnEntry
	offset := 0.0
	for _, g := range groups {
		for i := 0; i < g.Count; i++ {
			queue = append(queue, component.SpawnEntry{
				EnemyID:        g.EnemyID,
				Level:          g.Level,
				Delay:          offset + float64(i)*g.SpawnInterval,
				HealthOverride: g.HealthOverride,
			})
		}
		if g.Count > 0 {
			offset += float64(g.Count-1)*g.SpawnInterval + g.DelayAfter
		}
	}
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].Delay < queue[j].Delay })
	return queue
}

// Update выпускает все записи очереди с истёкшей задержкой, но не больше
// SpawnsPerFrameCap за кадр: остаток переезжает на следующий кадр, чтобы
// пачка записей с одной меткой не давала всплеск времени кадра.
func (s *WaveSystem) Update(deltaTime, now float64) {
	wave := s.ecs.Wave
	if !s.active || wave == nil {
		return
	}

	spawned := 0
	for !wave.QueueEmpty() && spawned < config.SpawnsPerFrameCap {
		entry := wave.Queue[wave.Next]
		if now-wave.StartedAt < entry.Delay {
			break
		}
		wave.Next++
		s.spawnEnemy(entry)
		spawned++
	}

	if wave.QueueEmpty() && s.activeEnemies == 0 {
		s.active = false
		finished := wave.Number
		s.ecs.Wave = nil
		s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: finished})
	}
}

// spawnEnemy создаёт агента в случайной клетке зоны спавна. Жёсткий
// потолок живых агентов защищает кадр: лишние спавны тихо отбрасываются.
func (s *WaveSystem) spawnEnemy(entry component.SpawnEntry) {
	def, ok := defs.EnemyDefs[entry.EnemyID]
	if !ok {
		log.Printf("WaveSystem: no enemy definition for %q", entry.EnemyID)
		return
	}
	if s.activeEnemies >= config.MaxLiveEnemies {
		log.Printf("WaveSystem: live enemy cap reached, dropping spawn of %s", entry.EnemyID)
		return
	}

	spawnCells := s.grid.SpawnCells()
	cell := spawnCells[s.rng.Intn(len(spawnCells))]
	x, y := s.layout.CellCenter(cell)

	health := defs.ScaledHealth(def, entry.Level, config.EnemyHealthPerLevel)
	if entry.HealthOverride > 0 {
		health = entry.HealthOverride
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{BaseSpeed: def.Speed, SlowFactor: 1.0}
	s.ecs.Steerings[id] = &component.Steering{WobblePhase: s.rng.Float64() * 6.28}
	s.ecs.Healths[id] = &component.Health{Current: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:    def.ID,
		Category: def.Category,
		Level:    entry.Level,
		Armor:    def.Armor,
		Bounty:   defs.ScaledBounty(def, entry.Level, config.EnemyBountyPerLevel),
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.CellSize * def.Visuals.RadiusFactor),
		HasStroke: def.Category == defs.CategoryBoss,
	}
	s.activeEnemies++
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyEventData{ID: id}})
}

// OnEvent ведёт счётчик живых врагов по событиям смерти и прохода.
func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyLeaked:
		if s.activeEnemies > 0 {
			s.activeEnemies--
		}
	}
}

// Reset возвращает планировщик к началу (полный рестарт игры).
func (s *WaveSystem) Reset() {
	s.waveNumber = 0
	s.activeEnemies = 0
	s.active = false
	s.ecs.Wave = nil
}

// SetWaveNumber восстанавливает индекс волны при загрузке сохранения.
func (s *WaveSystem) SetWaveNumber(n int) {
	if n < 0 {
		n = 0
	}
	s.waveNumber = n
	s.activeEnemies = 0
	s.active = false
	s.ecs.Wave = nil
}
