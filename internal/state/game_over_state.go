// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-side-shooter/internal/config"
	"go-side-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState показывает итоги и по пробелу начинает новую игру.
type GameOverState struct {
	sm      *StateMachine
	results *Results
}

func NewGameOverState(sm *StateMachine, results *Results) *GameOverState {
	return &GameOverState{sm: sm, results: results}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.TransitionTo(config.StateGame)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	line := config.StateTextLineHeight
	ui.DrawCentered(screen, "GAME OVER", ui.DefaultFace, cx, cy-2*line, config.TextLightColor)
	ui.DrawCentered(screen, "Score: "+ui.FormatNumber(s.results.Score), ui.DefaultFace, cx, cy, config.TextLightColor)
	ui.DrawCentered(screen, fmt.Sprintf("Waves survived: %d  Time: %.0fs", s.results.Waves, s.results.GameTime), ui.DefaultFace, cx, cy+line, config.TextLightColor)
	ui.DrawCentered(screen, "Best: "+ui.FormatNumber(s.results.Best), ui.DefaultFace, cx, cy+2*line, config.TextLightColor)
	ui.DrawCentered(screen, "press SPACE to play again", ui.DefaultFace, cx, cy+4*line, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
