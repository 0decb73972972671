// cmd/sim/main.go
//
// Headless run of one game session driven by the autopilot.
package main

import (
	"flag"
	"fmt"
	"os"

	"go-side-shooter/internal/app"
	"go-side-shooter/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config/game.toml", "path to the settings file")
	seed := flag.Int64("seed", 0, "RNG seed, overrides the settings file when non-zero")
	seconds := flag.Float64("seconds", 300, "maximum simulated game time")
	fps := flag.Int("fps", 60, "simulated frames per second")
	flag.Parse()

	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	res, err := app.Bootstrap(*configPath)
	if err != nil {
		return err
	}
	log := res.Logger
	defer func() { _ = log.Sync() }()

	if *seed != 0 {
		res.Settings.Seed = *seed
	}
	rng := utils.NewPRNGService(res.Settings.Seed)

	g := app.NewGame(app.Options{
		Settings: res.Settings,
		Enemies:  res.Enemies,
		Logger:   log,
		Rng:      rng,
	})

	dt := 1 / float64(*fps)
	for g.GameTime() < *seconds && !g.IsOver() {
		g.Update(dt, app.Autopilot(g))
	}

	player := g.Player()
	stats := g.Stats()
	log.Info("simulation finished",
		zap.Int64("seed", rng.Seed()),
		zap.Int("score", g.Score()),
		zap.Int("waves", g.Waves()),
		zap.Int("ticks", g.Ticks()),
		zap.Float64("game_time", g.GameTime()),
		zap.Int("health", player.Health.Current),
		zap.Int("enemies_spawned", stats.EnemiesSpawned),
		zap.Int("player_shots", stats.PlayerShots),
		zap.Int("enemy_shots", stats.EnemyShots),
		zap.Int("player_pool", g.PlayerShots.Len()),
		zap.Int("enemy_pool", g.EnemyShots.Len()),
		zap.Bool("game_over", g.IsOver()))

	p := message.NewPrinter(language.English)
	p.Printf("score %d after %d ticks (%.1fs, %d waves)\n", g.Score(), g.Ticks(), g.GameTime(), g.Waves())
	p.Printf("%d enemies spawned, %d player shots, %d enemy shots\n", stats.EnemiesSpawned, stats.PlayerShots, stats.EnemyShots)
	return nil
}
