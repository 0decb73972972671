// internal/ui/health_bar.go
package ui

import (
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const healthBarBorder = 2

// HealthBar показывает долю здоровья игрока и плавно меняет её.
type HealthBar struct {
	X, Y          float32
	Width, Height float32
	tween         *utils.Tween
}

// NewHealthBar создает полную полосу здоровья.
func NewHealthBar(x, y, width, height float32) *HealthBar {
	return &HealthBar{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		tween:  utils.NewTween(1, config.HealthBarTweenTime),
	}
}

// SetFraction запускает переход к новому значению.
func (b *HealthBar) SetFraction(f float64) {
	b.tween.Set(utils.Clamp(f, 0, 1))
}

func (b *HealthBar) Update(deltaTime float64) {
	b.tween.Update(deltaTime)
}

// Draw отрисовывает подложку, заполнение и рамку.
func (b *HealthBar) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, config.HealthBarHolderColor, true)

	fillWidth := float32(float64(b.Width-healthBarBorder*2) * b.tween.Value())
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, b.X+healthBarBorder, b.Y+healthBarBorder, fillWidth, b.Height-healthBarBorder*2, config.HealthBarFillColor, true)
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, config.StrokeColor, true)
}
