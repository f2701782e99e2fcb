// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm   *StateMachine
	face font.Face
}

func NewMenuState(sm *StateMachine, face font.Face) *MenuState {
	return &MenuState{sm: sm, face: face}
}

func (m *MenuState) Enter() {}
func (m *MenuState) Exit()  {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.face))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "TOWERZ", m.face, config.ScreenWidth/2-40, config.ScreenHeight/2-40, config.TextLightColor)
	text.Draw(screen, "press SPACE to start", m.face, config.ScreenWidth/2-90, config.ScreenHeight/2, config.TextLightColor)
}
