// internal/app/game.go
package app

import (
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/system"
	"github.com/Bassie1994/Towerz-sub000/internal/utils"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// Phase — состояние игрового автомата.
type Phase int

const (
	PhasePreparing Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhasePreparing:
		return "preparing"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	case PhaseVictory:
		return "victory"
	}
	return "unknown"
}

// Game — верхнеуровневый оркестратор: владеет всем разделяемым
// состоянием (сетка, списки сущностей, баланс) и раздаёт его системам
// по ссылке каждый кадр. Часы симуляции — накопленные замасштабированные
// дельты, настоящее время внутрь симуляции не проникает.
type Game struct {
	ECS        *entity.ECS
	Grid       *grid.Grid
	Flow       *grid.FlowField
	Layout     grid.Layout
	Economy    *Economy
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService

	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	BuffSystem         *system.BuffSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem

	phase    Phase
	lives    int
	clock    float64
	speedIdx int
	seed     int64
}

// NewGame собирает игровую сессию. Вырожденная конфигурация поля —
// единственная невосстановимая ошибка, она всплывает сразу.
func NewGame(seed int64) (*Game, error) {
	g := &Game{seed: seed}
	if err := g.init(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) init() error {
	fieldGrid, err := grid.NewGrid(config.GridWidth, config.GridHeight, config.SpawnZoneWidth, config.ExitZoneWidth, config.ExitZoneHeight)
	if err != nil {
		return err
	}

	g.ECS = entity.NewECS()
	g.Grid = fieldGrid
	g.Flow = grid.NewFlowField(fieldGrid)
	g.Layout = grid.Layout{
		CellSize: config.CellSize,
		OriginX:  config.FieldOffsetX,
		OriginY:  config.FieldOffsetY,
	}
	g.Economy = NewEconomy(config.StartingMoney)
	g.Dispatcher = event.NewDispatcher()
	g.Rng = utils.NewPRNGService(g.seed)

	g.MovementSystem = system.NewMovementSystem(g.ECS, g.Grid, g.Flow, g.Layout, g.Dispatcher)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.Grid, g.Flow, g.Layout, g.Dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, g.Dispatcher)
	g.BuffSystem = system.NewBuffSystem(g.ECS, g.Layout)
	g.WaveSystem = system.NewWaveSystem(g.ECS, g.Grid, g.Layout, g.Dispatcher, g.Rng, config.TotalWaves)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.ECS)

	g.phase = PhasePreparing
	g.lives = config.StartingLives
	g.clock = 0
	g.speedIdx = 0

	g.Dispatcher.Subscribe(event.EnemyKilled, g)
	g.Dispatcher.Subscribe(event.EnemyLeaked, g)
	g.Dispatcher.Subscribe(event.WaveEnded, g)
	return nil
}

func (g *Game) Phase() Phase    { return g.phase }
func (g *Game) Lives() int      { return g.lives }
func (g *Game) Clock() float64  { return g.clock }
func (g *Game) Speed() float64  { return config.SpeedMultipliers[g.speedIdx] }
func (g *Game) SpeedIndex() int { return g.speedIdx }

// Update — один логический тик. Порядок фиксирован: планирование волны →
// агенты → башни → снаряды → производное состояние. На паузе и в
// терминальных состояниях часы заморожены ровно: тик не происходит.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if g.phase == PhasePaused || g.phase == PhaseGameOver || g.phase == PhaseVictory {
		return
	}

	// Множитель скорости масштабирует дельту до накопления, не задним числом.
	dt := deltaTime * g.Speed()
	g.clock += dt
	now := g.clock

	g.WaveSystem.Update(dt, now)
	g.MovementSystem.Update(dt, now)
	g.BuffSystem.Update()
	g.CombatSystem.Update(dt, now)
	g.ProjectileSystem.Update(dt, now)
	g.VisualEffectSystem.Update(dt)
	g.removeFinishedEnemies()
}

// removeFinishedEnemies убирает из симуляции мёртвых и дошедших.
// Событие уже отправлено в момент перехода; здесь только уборка.
func (g *Game) removeFinishedEnemies() {
	for id, enemy := range g.ECS.Enemies {
		if enemy.Dead || enemy.ReachedEnd {
			g.ECS.RemoveEntity(id)
		}
	}
}

// StartNextWave — запрос старта волны от ввода. preparing → playing.
func (g *Game) StartNextWave() bool {
	if g.phase != PhasePreparing {
		return false
	}
	if !g.WaveSystem.StartNextWave(g.clock) {
		return false
	}
	g.phase = PhasePlaying
	return true
}

// TogglePause — явный переключатель playing ⇄ paused; из других
// состояний — no-op.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhasePlaying
	}
}

// CycleSpeed переключает множитель скорости по кругу.
func (g *Game) CycleSpeed() {
	g.speedIdx = (g.speedIdx + 1) % len(config.SpeedMultipliers)
}

// Restart — полный перезапуск: каждая подсистема пересоздаётся с нуля.
// Единственный выход из терминальных состояний.
func (g *Game) Restart() {
	// init не может упасть: конфигурация уже проходила валидацию.
	_ = g.init()
}

// OnEvent — реакции оркестратора на события симуляции.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyEventData); ok {
			g.Economy.Earn(data.Bounty)
		}
	case event.EnemyLeaked:
		// Утечки могут дойти и после поражения — ниже нуля не опускаемся.
		g.lives--
		if g.lives < 0 {
			g.lives = 0
		}
		if g.lives == 0 && g.phase == PhasePlaying {
			g.phase = PhaseGameOver
		}
	case event.WaveEnded:
		waveNumber, _ := e.Data.(int)
		g.Economy.Earn(WaveCompletionBonus(waveNumber))
		if g.phase != PhasePlaying {
			return
		}
		if g.WaveSystem.AllWavesDone() {
			g.phase = PhaseVictory
		} else {
			g.phase = PhasePreparing
		}
	}
}
