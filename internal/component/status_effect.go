// internal/component/status_effect.go
package component

// BeamShot — короткоживущий след луча для отрисовки.
type BeamShot struct {
	FromX, FromY float64
	ToX, ToY     float64
	TTL          float64
}
