// internal/ui/score_box.go
package ui

import (
	"go-side-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScoreBox — круглая плашка со счётом.
type ScoreBox struct {
	X, Y   float32
	Radius float32
	value  int
}

func NewScoreBox(x, y, radius float32) *ScoreBox {
	return &ScoreBox{X: x, Y: y, Radius: radius}
}

func (s *ScoreBox) SetValue(v int) {
	s.value = v
}

func (s *ScoreBox) Value() int {
	return s.value
}

func (s *ScoreBox) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, s.X, s.Y, s.Radius, config.ScoreBoxColor, true)
	vector.StrokeCircle(screen, s.X, s.Y, s.Radius, config.StrokeWidth, config.StrokeColor, true)
	DrawCentered(screen, FormatNumber(s.value), DefaultFace, int(s.X), int(s.Y), config.TextLightColor)
}
