// internal/state/menu_state.go
package state

import (
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка перед первой игрой
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.TransitionTo(config.StateGame)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, "SIDE SHOOTER", ui.DefaultFace, cx, cy-config.StateTextLineHeight, config.TextLightColor)
	ui.DrawCentered(screen, "arrows to move, X to fire", ui.DefaultFace, cx, cy+config.StateTextLineHeight, config.TextLightColor)
	ui.DrawCentered(screen, "press SPACE to start", ui.DefaultFace, cx, cy+3*config.StateTextLineHeight, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
