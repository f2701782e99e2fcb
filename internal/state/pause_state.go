// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/Bassie1994/Towerz-sub000/internal/app"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/pkg/render"
)

var _ State = (*PauseState)(nil)

// PauseState рисует замёрзший игровой экран под затемнением. Симуляция
// не обновляется: игровое время стоит, пока состояние активно.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}
func (s *PauseState) Exit()  {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		game := s.previous.Game()
		if game.Phase() == app.PhasePaused {
			game.TogglePause()
		}
		s.previous.pauseButton.SetPaused(false)
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	render.DrawOverlayTint(screen, config.PausedTintColor)
	text.Draw(screen, "PAUSED", s.previous.face, config.ScreenWidth/2-36, config.ScreenHeight/2, config.TextLightColor)
}
