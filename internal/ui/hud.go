// internal/ui/hud.go
package ui

import (
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что HUD соответствует интерфейсу коллаборатора
var _ interfaces.HUD = (*HUD)(nil)

// HUD собирает счёт и полосу здоровья игровой сессии.
type HUD struct {
	Score  *ScoreBox
	Health *HealthBar
}

func NewHUD() *HUD {
	return &HUD{
		Score: NewScoreBox(
			config.ScoreBoxX+config.ScoreBoxRadius,
			config.ScoreBoxY+config.ScoreBoxRadius,
			config.ScoreBoxRadius,
		),
		Health: NewHealthBar(config.HealthBarX, config.HealthBarY, config.HealthBarWidth, config.HealthBarHeight),
	}
}

func (h *HUD) SetScore(value int) {
	h.Score.SetValue(value)
}

func (h *HUD) SetHealthFraction(value float64) {
	h.Health.SetFraction(value)
}

func (h *HUD) Update(deltaTime float64) {
	h.Health.Update(deltaTime)
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.Health.Draw(screen)
	h.Score.Draw(screen)
}
