// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
)

// SpeedButton переключает скорость игры по кругу. Цвет кружка кодирует
// текущее состояние, после клика кнопка коротко пульсирует.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	CurrentState  int
	lastClickTime time.Time
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, face font.Face) {
	elapsed := time.Since(b.lastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := b.Size * float32(scale)

	c := config.SpeedButtonColors[b.CurrentState%len(config.SpeedButtonColors)]
	vector.DrawFilledCircle(screen, b.X, b.Y, radius, c, true)
	vector.StrokeCircle(screen, b.X, b.Y, radius, 2, config.TextLightColor, true)

	label := fmt.Sprintf("x%g", config.SpeedMultipliers[b.CurrentState%len(config.SpeedMultipliers)])
	text.Draw(screen, label, face, int(b.X)-9, int(b.Y)+5, config.TextDarkColor)
}

func (b *SpeedButton) Contains(mx, my int) bool {
	dx := float64(mx) - float64(b.X)
	dy := float64(my) - float64(b.Y)
	return dx*dx+dy*dy <= float64(b.Size*1.5)*float64(b.Size*1.5)
}

func (b *SpeedButton) Advance() {
	b.CurrentState = (b.CurrentState + 1) % len(config.SpeedMultipliers)
	b.lastClickTime = time.Now()
}

func (b *SpeedButton) SetState(state int) {
	b.CurrentState = state % len(config.SpeedMultipliers)
}
