// internal/component/render.go
package component

import "image/color"

// Renderable — как рисовать сущность. Симуляция это поле не читает.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
