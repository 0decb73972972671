// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	MaxDeltaTime = 0.06

	PlayerHitDamage        = 1
	PlayerRadius           = 28.0
	EnemyRadius            = 22.0
	ProjectileRadius       = 6.0
	PlayerFireAnimDuration = 3.0 / 14.0 // три кадра при 14 fps
	BackgroundScrollStep   = 0.5        // пикселей за кадр

	BurstParticles     = 4
	BurstDuration      = 2.0
	BurstAlphaStart    = 1.0
	BurstAlphaEnd      = 0.2
	BurstParticleSpeed = 60.0

	HealthBarX          = 120
	HealthBarY          = 40
	HealthBarWidth      = 200
	HealthBarHeight     = 18
	HealthBarTweenTime  = 0.35
	ScoreBoxX           = 20
	ScoreBoxY           = 20
	ScoreBoxRadius      = 35.0
	StateTextLineHeight = 18
)

// Имена состояний для StateMachine.TransitionTo.
const (
	StateMenu     = "menu"
	StateGame     = "game"
	StateGameOver = "gameOver"
)

var (
	BackgroundColor      = color.RGBA{20, 20, 30, 255}
	BackgroundStripe     = color.RGBA{35, 35, 55, 255}
	PlayerColor          = color.RGBA{70, 130, 180, 255}
	EnemyColor           = color.RGBA{220, 60, 60, 255}
	PlayerBulletColor    = color.RGBA{255, 215, 0, 255}
	EnemyBulletColor     = color.RGBA{255, 120, 40, 255}
	BurstColor           = color.RGBA{180, 50, 230, 255}
	StrokeColor          = color.RGBA{240, 240, 240, 255}
	TextLightColor       = color.RGBA{240, 240, 240, 255}
	HealthBarFillColor   = color.RGBA{50, 205, 50, 255}
	HealthBarHolderColor = color.RGBA{70, 100, 120, 220}
	ScoreBoxColor        = color.RGBA{70, 100, 120, 220}
	StrokeWidth          = float32(2.0)
)

// Settings holds the tunables that can be overridden from a TOML file.
type Settings struct {
	Seed        int64            `toml:"seed"` // 0 = time based
	EnemiesFile string           `toml:"enemies_file"`
	World       WorldConfig      `toml:"world"`
	Spawn       SpawnConfig      `toml:"spawn"`
	Player      PlayerConfig     `toml:"player"`
	Projectile  ProjectileConfig `toml:"projectile"`
	Logging     LoggingConfig    `toml:"logging"`
}

type WorldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type SpawnConfig struct {
	InitialChance   float64       `toml:"initial_chance"`
	GrowthFactor    float64       `toml:"growth_factor"`
	WaveInterval    time.Duration `toml:"wave_interval"`
	BandOffset      float64       `toml:"band_offset"` // distance right of the world edge
	BandWidth       float64       `toml:"band_width"`
	EnemyFireChance float64       `toml:"enemy_fire_chance"`
	EnemyFireDelay  time.Duration `toml:"enemy_fire_delay"`
	Prewarm         int           `toml:"prewarm"`
}

type PlayerConfig struct {
	Health      int           `toml:"health"`
	Speed       float64       `toml:"speed"`
	Drag        float64       `toml:"drag"`
	FireGate    time.Duration `toml:"fire_gate"`
	StartX      float64       `toml:"start_x"`
	StartY      float64       `toml:"start_y"`
	FireOffsetX float64       `toml:"fire_offset_x"`
	FireOffsetY float64       `toml:"fire_offset_y"`
}

type ProjectileConfig struct {
	PlayerSpeed float64 `toml:"player_speed"`
	EnemySpeed  float64 `toml:"enemy_speed"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML settings file on top of Defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (s *Settings) Validate() error {
	switch {
	case s.World.Width <= 0 || s.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %vx%v", s.World.Width, s.World.Height)
	case s.Spawn.InitialChance <= 0:
		return fmt.Errorf("spawn.initial_chance must be positive, got %v", s.Spawn.InitialChance)
	case s.Spawn.GrowthFactor < 1:
		return fmt.Errorf("spawn.growth_factor must be >= 1, got %v", s.Spawn.GrowthFactor)
	case s.Spawn.WaveInterval <= 0:
		return fmt.Errorf("spawn.wave_interval must be positive, got %v", s.Spawn.WaveInterval)
	case s.Player.Health <= 0:
		return fmt.Errorf("player.health must be positive, got %d", s.Player.Health)
	}
	return nil
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		EnemiesFile: "assets/data/enemies.yaml",
		World: WorldConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
		Spawn: SpawnConfig{
			InitialChance:   0.02,
			GrowthFactor:    1.2,
			WaveInterval:    20 * time.Second,
			BandOffset:      100,
			BandWidth:       400,
			EnemyFireChance: 0.5,
			EnemyFireDelay:  3500 * time.Millisecond,
			Prewarm:         5,
		},
		Player: PlayerConfig{
			Health:      10,
			Speed:       100,
			Drag:        35,
			FireGate:    250 * time.Millisecond,
			StartX:      80,
			StartY:      ScreenHeight / 2,
			FireOffsetX: PlayerRadius,
			FireOffsetY: 0,
		},
		Projectile: ProjectileConfig{
			PlayerSpeed: 400,
			EnemySpeed:  250,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
