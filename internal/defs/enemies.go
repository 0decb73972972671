// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Weight          int     `yaml:"weight"`           // relative spawn weight
	Speed           float64 `yaml:"speed"`            // pixels per second, towards the player side
	Radius          float64 `yaml:"radius"`           // collision radius
	BounceStep      float64 `yaml:"bounce_step"`      // sine phase advance per frame
	BounceAmplitude float64 `yaml:"bounce_amplitude"` // y offset per frame at the sine peak
	Visuals         Visuals `yaml:"visuals"`
}

// Visuals describes how an enemy is drawn.
type Visuals struct {
	Color     RGBA `yaml:"color"`
	HasStroke bool `yaml:"has_stroke"`
}

// RGBA is a color as it appears in data files: [r, g, b, a].
type RGBA [4]uint8

// DefaultEnemyID is the built-in enemy used when no table is loaded.
const DefaultEnemyID = "ENEMY_DRONE"

// DefaultEnemies is used when no definitions file is available.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{
			ID:              DefaultEnemyID,
			Name:            "Drone",
			Weight:          1,
			Speed:           175,
			Radius:          22,
			BounceStep:      0.02,
			BounceAmplitude: 1,
			Visuals: Visuals{
				Color:     RGBA{220, 60, 60, 255},
				HasStroke: true,
			},
		},
	}
}
