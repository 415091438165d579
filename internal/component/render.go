// internal/component/render.go
package component

import "image/color"

// Renderable — визуальное представление сущности для рендерера.
// Radius одновременно служит радиусом коллизии.
type Renderable struct {
	Color  color.RGBA
	Radius float64
}
