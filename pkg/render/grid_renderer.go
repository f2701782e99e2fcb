// pkg/render/grid_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/Bassie1994/Towerz-sub000/internal/app"
	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/system"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
	"github.com/Bassie1994/Towerz-sub000/pkg/grid"
)

// GridRenderer рисует поле и все сущности симуляции. Читает состояние
// каждый кадр; обратно в симуляцию ничего не пишет.
type GridRenderer struct {
	game     *app.Game
	fontFace font.Face
	mapImage *ebiten.Image // предрендеренная статичная подложка поля
	mapGen   uint64
}

func NewGridRenderer(game *app.Game, fontFace font.Face) *GridRenderer {
	return &GridRenderer{game: game, fontFace: fontFace}
}

// ensureMapImage перерисовывает подложку, когда менялась занятость сетки.
func (r *GridRenderer) ensureMapImage() {
	g := r.game.Grid
	if r.mapImage != nil && r.mapGen == g.Generation() {
		return
	}
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	}
	r.mapImage.Fill(config.BackgroundColor)

	layout := r.game.Layout
	for col := 0; col < g.Width(); col++ {
		for row := 0; row < g.Height(); row++ {
			cell := grid.Position{Col: col, Row: row}
			cx, cy := layout.CellCenter(cell)
			x := float32(cx - layout.CellSize/2)
			y := float32(cy - layout.CellSize/2)
			size := float32(layout.CellSize)

			fill := config.WalkableColor
			switch {
			case g.IsSpawnZone(cell):
				fill = config.SpawnZoneColor
			case g.IsExitZone(cell):
				fill = config.ExitZoneColor
			case !g.IsWalkable(cell):
				fill = config.BlockedColor
			}
			vector.DrawFilledRect(r.mapImage, x, y, size, size, fill, false)
			vector.StrokeRect(r.mapImage, x, y, size, size, 1, config.GridLineColor, false)
		}
	}
	r.mapGen = g.Generation()
}

// Draw рисует кадр: подложка, башни, враги, снаряды, лучи.
func (r *GridRenderer) Draw(screen *ebiten.Image, selected types.EntityID) {
	r.ensureMapImage()
	screen.DrawImage(r.mapImage, nil)

	ecs := r.game.ECS

	// Связи баффов и круг радиуса выделенной башни — под сущностями.
	if tower, ok := ecs.Towers[selected]; ok {
		if def, ok := defs.TowerDefs[tower.DefID]; ok {
			x, y := r.game.Layout.CellCenter(tower.Cell)
			radius := system.TowerRange(def, tower) * r.game.Layout.CellSize
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), config.RangeColor, true)
		}
	}

	for id, tower := range ecs.Towers {
		renderable, ok := ecs.Renderables[id]
		if !ok {
			continue
		}
		x, y := r.game.Layout.CellCenter(tower.Cell)
		vector.DrawFilledCircle(screen, float32(x), float32(y), renderable.Radius, renderable.Color, true)
		if renderable.HasStroke {
			vector.StrokeCircle(screen, float32(x), float32(y), renderable.Radius, 2, config.TextLightColor, true)
		}
		// Ствол показывает направление прицеливания.
		if def, ok := defs.TowerDefs[tower.DefID]; ok && def.Archetype != defs.ArchetypeSupport && def.Archetype != defs.ArchetypeSlowField {
			bx := x + math.Cos(tower.AimAngle)*float64(renderable.Radius)*1.4
			by := y + math.Sin(tower.AimAngle)*float64(renderable.Radius)*1.4
			vector.StrokeLine(screen, float32(x), float32(y), float32(bx), float32(by), 3, renderable.Color, true)
		}
		if tower.Level > 0 {
			text.Draw(screen, fmt.Sprintf("%d", tower.Level), r.fontFace, int(x)-3, int(y)+4, config.TextDarkColor)
		}
	}

	for id, enemy := range ecs.Enemies {
		pos, hasPos := ecs.Positions[id]
		renderable, hasRend := ecs.Renderables[id]
		if !hasPos || !hasRend || enemy.Dead || enemy.ReachedEnd {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), renderable.Radius, renderable.Color, true)
		if renderable.HasStroke {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), renderable.Radius, 2, config.TextLightColor, true)
		}
		r.drawHealthBar(screen, pos.X, pos.Y-float64(renderable.Radius)-7, id)
	}

	for id := range ecs.Projectiles {
		pos, hasPos := ecs.Positions[id]
		renderable, hasRend := ecs.Renderables[id]
		if !hasPos || !hasRend {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), renderable.Radius, renderable.Color, true)
	}

	for _, beam := range ecs.BeamShots {
		vector.StrokeLine(screen, float32(beam.FromX), float32(beam.FromY), float32(beam.ToX), float32(beam.ToY), 2, config.BeamColor, true)
	}
}

func (r *GridRenderer) drawHealthBar(screen *ebiten.Image, x, y float64, id types.EntityID) {
	health, ok := r.game.ECS.Healths[id]
	if !ok || health.Max <= 0 {
		return
	}
	const barWidth, barHeight = 22.0, 4.0
	frac := float64(health.Current) / float64(health.Max)
	vector.DrawFilledRect(screen, float32(x-barWidth/2), float32(y), barWidth, barHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, float32(x-barWidth/2), float32(y), float32(barWidth*frac), barHeight, config.HealthFillColor, false)
}

// DrawOverlayTint затемняет экран (пауза, конец игры).
func DrawOverlayTint(screen *ebiten.Image, c color.Color) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, c, false)
}
