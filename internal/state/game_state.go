// internal/state/game_state.go
package state

import (
	"fmt"

	game "go-side-shooter/internal/app"
	"go-side-shooter/internal/component"
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/defs"
	"go-side-shooter/internal/ui"
	"go-side-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Deps — общие для всех сессий зависимости игровых состояний.
type Deps struct {
	Settings *config.Settings
	Enemies  *defs.EnemyLibrary
	Logger   *zap.Logger
	Results  *Results
}

// GameState — состояние игры. Каждый экземпляр владеет одной сессией.
type GameState struct {
	sm         *StateMachine
	deps       Deps
	game       *game.Game
	hud        *ui.HUD
	renderer   *render.ActorRenderer
	background *render.Background
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	palette := &render.Palette{
		Background:  config.BackgroundColor,
		Stripe:      config.BackgroundStripe,
		Stroke:      config.StrokeColor,
		Burst:       config.BurstColor,
		StrokeWidth: config.StrokeWidth,
	}
	return &GameState{
		sm:         sm,
		deps:       deps,
		renderer:   render.NewActorRenderer(palette),
		background: render.NewBackground(config.ScreenWidth, config.ScreenHeight, config.BackgroundScrollStep, palette),
	}
}

// Enter начинает новую сессию. После паузы продолжается прежняя.
func (g *GameState) Enter() {
	if g.game != nil && !g.game.IsOver() {
		return
	}
	g.hud = ui.NewHUD()
	g.game = game.NewGame(game.Options{
		Settings: g.deps.Settings,
		Enemies:  g.deps.Enemies,
		HUD:      g.hud,
		States:   g.sm,
		Logger:   g.deps.Logger,
	})
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime, pollControls())
	g.hud.Update(deltaTime)
	g.background.Update()
}

// pollControls снимает состояние клавиатуры за кадр.
func pollControls() component.Controls {
	return component.Controls{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:  ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.background.Draw(screen)
	g.renderer.Draw(screen, g.game.ECS)
	g.hud.Draw(screen)

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Wave: %d  Enemies: %d", g.game.Waves(), g.game.ECS.Count(component.FactionEnemy)),
		config.ScreenWidth-200, config.ScreenHeight-20)
}

func (g *GameState) Exit() {
	if g.game.IsOver() && g.deps.Results != nil {
		g.deps.Results.Record(g.game.Score(), g.game.Waves(), g.game.GameTime())
	}
}
