// component/render.go
package component

import "image/color"

// Shape — форма, которой рисуется сущность.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeRect
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Shape     Shape
	HasStroke bool
}
