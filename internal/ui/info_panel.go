// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
)

// InfoPanel — нижняя панель: ресурсы, палитра строительства, карточка
// выделенной башни и строка последней ошибки действия.
type InfoPanel struct {
	Height float32

	// BuildOrder задаёт порядок горячих клавиш 1..N.
	BuildOrder []string
}

func NewInfoPanel(buildOrder []string) *InfoPanel {
	return &InfoPanel{Height: 96, BuildOrder: buildOrder}
}

// Snapshot — всё, что панель показывает за кадр. Собирается в GameState,
// панель сама в симуляцию не лезет.
type Snapshot struct {
	Money         int
	Lives         int
	PhaseLabel    string
	SelectedDefID string // выбранный к постройке тип
	ActionError   string

	// Карточка выделенной башни; HasTower=false — карточки нет.
	HasTower     bool
	TowerName    string
	TowerLevel   int
	TowerDamage  float64
	TowerRange   float64
	TowerRate    float64
	UpgradeCost  int
	Upgradeable  bool
	SellValue    int
	PriorityName string
}

func (p *InfoPanel) Draw(screen *ebiten.Image, face font.Face, snap Snapshot) {
	top := float32(config.ScreenHeight) - p.Height
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, p.Height, config.WalkableColor, false)
	vector.StrokeLine(screen, 0, top, config.ScreenWidth, top, 1, config.GridLineColor, false)

	baseY := int(top) + 24
	text.Draw(screen, fmt.Sprintf("$ %d", snap.Money), face, 20, baseY, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Lives %d", snap.Lives), face, 20, baseY+26, config.TextLightColor)
	text.Draw(screen, snap.PhaseLabel, face, 20, baseY+52, config.TextLightColor)

	// Палитра: номер, имя, цена. Выбранный тип подсвечен.
	x := 190
	for i, defID := range p.BuildOrder {
		def, ok := defs.TowerDefs[defID]
		if !ok {
			continue
		}
		label := fmt.Sprintf("[%d] %s $%d", i+1, def.Name, def.Cost)
		c := config.TextLightColor
		if defID == snap.SelectedDefID {
			c = def.Visuals.Color
		}
		text.Draw(screen, label, face, x, baseY+13*(i%2)*2, c)
		if i%2 == 1 {
			x += 190
		}
	}

	// Карточка выделенной башни — справа.
	if snap.HasTower {
		cx := config.ScreenWidth - 380
		text.Draw(screen, fmt.Sprintf("%s  L%d", snap.TowerName, snap.TowerLevel), face, cx, baseY, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("dmg %.0f  rng %.1f  rate %.2f", snap.TowerDamage, snap.TowerRange, snap.TowerRate), face, cx, baseY+22, config.TextLightColor)
		upgrade := "max level"
		if snap.Upgradeable {
			upgrade = fmt.Sprintf("[U]pgrade $%d", snap.UpgradeCost)
		}
		text.Draw(screen, fmt.Sprintf("%s   [X] sell $%d", upgrade, snap.SellValue), face, cx, baseY+44, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("[T]arget: %s", snap.PriorityName), face, cx, baseY+66, config.TextLightColor)
	}

	if snap.ActionError != "" {
		text.Draw(screen, snap.ActionError, face, 190, baseY+66, config.BlockedColor)
	}
}
