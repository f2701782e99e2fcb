// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y       int
	Color      color.Color
	BossColor  color.Color
	totalWaves int
}

func NewWaveIndicator(x, y, totalWaves int) *WaveIndicator {
	return &WaveIndicator{
		X:          x,
		Y:          y,
		Color:      config.TextLightColor,
		BossColor:  color.RGBA{230, 70, 70, 255},
		totalWaves: totalWaves,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber int) {
	if waveNumber <= 0 {
		text.Draw(screen, "—", face, i.X, i.Y, i.Color)
		return
	}
	c := i.Color
	if waveNumber%config.BossWavePeriod == 0 {
		c = i.BossColor // красный для босс-волн
	}
	label := fmt.Sprintf("%s / %s", toRoman(waveNumber), toRoman(i.totalWaves))
	text.Draw(screen, label, face, i.X, i.Y, c)
}
