// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-side-shooter/internal/app"
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config/game.toml", "path to the settings file")
	skipMenu := flag.Bool("skip-menu", false, "start straight into a game session")
	flag.Parse()

	res, err := app.Bootstrap(*configPath)
	if err != nil {
		return err
	}
	log := res.Logger
	defer func() { _ = log.Sync() }()

	results := &state.Results{}
	deps := state.Deps{
		Settings: res.Settings,
		Enemies:  res.Enemies,
		Logger:   log,
		Results:  results,
	}

	sm := state.NewStateMachine(log) // Создаём машину состояний
	sm.Register(config.StateMenu, func() state.State { return state.NewMenuState(sm) })
	sm.Register(config.StateGame, func() state.State { return state.NewGameState(sm, deps) })
	sm.Register(config.StateGameOver, func() state.State { return state.NewGameOverState(sm, results) })

	if *skipMenu {
		sm.SetState(state.NewGameState(sm, deps))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	log.Info("starting",
		zap.Int("width", config.ScreenWidth),
		zap.Int("height", config.ScreenHeight),
		zap.Int64("seed", res.Settings.Seed))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Side Shooter")
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
