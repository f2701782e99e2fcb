// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/Bassie1994/Towerz-sub000/internal/app"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/system"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/internal/ui"
	"github.com/Bassie1994/Towerz-sub000/pkg/render"
)

const savePath = "savegame.json"

// buildOrder — порядок башен на горячих клавишах 1..6.
var buildOrder = []string{
	"TOWER_ARROW",
	"TOWER_SNIPER",
	"TOWER_CANNON",
	"TOWER_BEAM",
	"TOWER_FROST",
	"TOWER_BANNER",
}

// priorityCycle — порядок перебора политик прицеливания клавишей T.
var priorityCycle = []defs.TargetPriority{
	defs.PriorityFirst,
	defs.PriorityLast,
	defs.PriorityStrongest,
	defs.PriorityWeakest,
	defs.PriorityFastest,
}

// GameState — основное игровое состояние: владеет симуляцией, рендером
// и переводит ввод игрока в запросы к ней.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.GridRenderer
	face     font.Face

	waveIndicator *ui.WaveIndicator
	pauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	infoPanel     *ui.InfoPanel

	selectedBuild string         // тип башни для постройки ("" — ничего)
	selectedTower types.EntityID // выделенная башня (0 — нет)
	lastError     string
	lastErrorAt   time.Time
}

func NewGameState(sm *StateMachine, face font.Face) *GameState {
	game, err := app.NewGame(time.Now().UnixNano())
	if err != nil {
		log.Fatalf("create game: %v", err)
	}
	return &GameState{
		sm:            sm,
		game:          game,
		renderer:      render.NewGridRenderer(game, face),
		face:          face,
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2-30, 36, config.TotalWaves),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-config.IndicatorOffsetX, config.SpeedButtonY, 9),
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-config.SpeedButtonOffsetX, config.SpeedButtonY, config.SpeedButtonSize),
		infoPanel:     ui.NewInfoPanel(buildOrder),
		selectedBuild: buildOrder[0],
	}
}

func (s *GameState) Enter() {}
func (s *GameState) Exit()  {}

// Game отдаёт симуляцию (нужно PauseState).
func (s *GameState) Game() *app.Game { return s.game }

func (s *GameState) Update(deltaTime float64) {
	s.handleKeyboard()
	s.handleMouse()
	s.game.Update(deltaTime)

	if s.game.Phase() == app.PhasePaused {
		s.pauseButton.SetPaused(true)
		s.sm.SetState(NewPauseState(s.sm, s))
	}
}

func (s *GameState) handleKeyboard() {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6} {
		if inpututil.IsKeyJustPressed(key) && i < len(buildOrder) {
			s.selectedBuild = buildOrder[i]
			s.selectedTower = 0
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.game.StartNextWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.game.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		s.game.CycleSpeed()
		s.speedButton.SetState(s.game.SpeedIndex())
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		s.selectedTowerAction(func(id types.EntityID) *app.ActionError { return s.game.UpgradeTower(id) })
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		if s.selectedTowerAction(func(id types.EntityID) *app.ActionError { return s.game.SellTower(id) }) {
			s.selectedTower = 0
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		s.cyclePriority()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.selectedTower = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.game.Restart()
		s.selectedTower = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		if err := s.game.SaveToFile(savePath); err != nil {
			s.showError(err.Error())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		if err := s.game.LoadFromFile(savePath); err != nil {
			s.showError(err.Error())
		}
		s.selectedTower = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := s.game.CopyDebugReport(); err != nil {
			log.Printf("copy debug report: %v", err)
		}
	}
}

func (s *GameState) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			s.selectedTower = 0
		}
		return
	}
	mx, my := ebiten.CursorPosition()

	if s.pauseButton.Contains(mx, my) {
		s.game.TogglePause()
		return
	}
	if s.speedButton.Contains(mx, my) {
		s.game.CycleSpeed()
		s.speedButton.Advance()
		s.speedButton.SetState(s.game.SpeedIndex())
		return
	}

	if !s.game.Layout.ContainsWorld(s.game.Grid, float64(mx), float64(my)) {
		return
	}
	cell := s.game.Layout.WorldToCell(float64(mx), float64(my))

	// Клик по башне — выделение; по пустой клетке — постройка.
	if id, ok := s.game.TowerAt(cell); ok {
		s.selectedTower = id
		return
	}
	if s.selectedBuild == "" {
		return
	}
	if id, actErr := s.game.PlaceTower(s.selectedBuild, cell); actErr != nil {
		s.showError(actErr.Error())
	} else {
		s.selectedTower = id
	}
}

func (s *GameState) selectedTowerAction(fn func(types.EntityID) *app.ActionError) bool {
	if s.selectedTower == 0 {
		return false
	}
	if actErr := fn(s.selectedTower); actErr != nil {
		s.showError(actErr.Error())
		return false
	}
	return true
}

func (s *GameState) cyclePriority() {
	tower, ok := s.game.ECS.Towers[s.selectedTower]
	if !ok {
		return
	}
	next := priorityCycle[0]
	for i, p := range priorityCycle {
		if p == tower.Priority {
			next = priorityCycle[(i+1)%len(priorityCycle)]
			break
		}
	}
	if actErr := s.game.SetTowerPriority(s.selectedTower, next); actErr != nil {
		s.showError(actErr.Error())
	}
}

func (s *GameState) showError(msg string) {
	s.lastError = msg
	s.lastErrorAt = time.Now()
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.selectedTower)

	s.waveIndicator.Draw(screen, s.face, s.game.WaveSystem.WaveNumber())
	s.pauseButton.Draw(screen)
	s.speedButton.Draw(screen, s.face)
	s.infoPanel.Draw(screen, s.face, s.snapshot())

	switch s.game.Phase() {
	case app.PhaseGameOver:
		render.DrawOverlayTint(screen, config.PausedTintColor)
		text.Draw(screen, "GAME OVER — press R to restart", s.face, config.ScreenWidth/2-140, config.ScreenHeight/2, config.TextLightColor)
	case app.PhaseVictory:
		render.DrawOverlayTint(screen, config.PausedTintColor)
		text.Draw(screen, "VICTORY — press R to play again", s.face, config.ScreenWidth/2-140, config.ScreenHeight/2, config.TextLightColor)
	}
}

// snapshot собирает данные кадра для панели.
func (s *GameState) snapshot() ui.Snapshot {
	snap := ui.Snapshot{
		Money:         s.game.Economy.Balance(),
		Lives:         s.game.Lives(),
		PhaseLabel:    s.phaseLabel(),
		SelectedDefID: s.selectedBuild,
	}
	if s.lastError != "" && time.Since(s.lastErrorAt) < 3*time.Second {
		snap.ActionError = s.lastError
	}
	tower, ok := s.game.ECS.Towers[s.selectedTower]
	if !ok {
		return snap
	}
	def, ok := defs.TowerDefs[tower.DefID]
	if !ok {
		return snap
	}
	snap.HasTower = true
	snap.TowerName = def.Name
	snap.TowerLevel = tower.Level
	snap.TowerDamage = system.TowerDamage(def, tower)
	snap.TowerRange = system.TowerRange(def, tower)
	snap.TowerRate = system.TowerFireRate(def, tower)
	snap.UpgradeCost, snap.Upgradeable = system.UpgradeCost(def, tower)
	snap.SellValue = app.SellValue(tower.Invested)
	snap.PriorityName = string(tower.Priority)
	return snap
}

func (s *GameState) phaseLabel() string {
	switch s.game.Phase() {
	case app.PhasePreparing:
		return "SPACE — next wave"
	case app.PhasePlaying:
		return fmt.Sprintf("wave %d: %d alive", s.game.WaveSystem.WaveNumber(), s.game.WaveSystem.LiveEnemies())
	default:
		return s.game.Phase().String()
	}
}
