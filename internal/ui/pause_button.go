// internal/ui/pause_button.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
)

// PauseButton — кнопка паузы. На паузе показывает стрелку "play",
// после клика коротко пульсирует.
type PauseButton struct {
	X, Y          float32
	Size          float32
	IsPaused      bool
	lastClickTime time.Time
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.lastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play) из трёх штрихов
		x0, y0 := b.X-size*0.6, b.Y-size
		x1, y1 := b.X-size*0.6, b.Y+size
		x2, y2 := b.X+size, b.Y
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, config.TextLightColor, true)
		vector.StrokeLine(screen, x1, y1, x2, y2, 3, config.TextLightColor, true)
		vector.StrokeLine(screen, x2, y2, x0, y0, 3, config.TextLightColor, true)
	} else {
		// Два прямоугольника (pause)
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, config.TextLightColor, false)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, config.TextLightColor, false)
	}
}

// Contains — попадание по кругу: форма составная, круг проще и щедрее.
func (b *PauseButton) Contains(mx, my int) bool {
	dx := float64(mx) - float64(b.X)
	dy := float64(my) - float64(b.Y)
	return dx*dx+dy*dy <= float64(b.Size*1.5)*float64(b.Size*1.5)
}

func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.lastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
