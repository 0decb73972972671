package app

import (
	"os"
	"path/filepath"
	"testing"

	"go-side-shooter/internal/component"
	"go-side-shooter/internal/defs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBootstrapFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "game.toml")
	writeFile(t, cfgPath, `
enemies_file = "`+filepath.ToSlash(filepath.Join(dir, "missing.yaml"))+`"

[logging]
level = "error"
`)

	res, err := Bootstrap(cfgPath)
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if res.Enemies.Len() != 1 {
		t.Errorf("enemies = %d, want the built-in drone", res.Enemies.Len())
	}
	if _, ok := res.Enemies.Get(defs.DefaultEnemyID); !ok {
		t.Errorf("built-in drone missing")
	}
	if res.Settings.Spawn.InitialChance != 0.02 {
		t.Errorf("spawn chance = %v", res.Settings.Spawn.InitialChance)
	}
}

func TestBootstrapMissingConfig(t *testing.T) {
	res, err := Bootstrap(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if res.Settings.Player.Health != 10 {
		t.Errorf("player health = %d, want default 10", res.Settings.Player.Health)
	}
}

func TestBootstrapLoadsEnemyTable(t *testing.T) {
	dir := t.TempDir()
	enemiesPath := filepath.Join(dir, "enemies.yaml")
	writeFile(t, enemiesPath, `
enemies:
  - id: ENEMY_DRONE
    name: Drone
    weight: 3
    speed: 175
    radius: 22
    bounce_step: 0.02
    bounce_amplitude: 1
  - id: ENEMY_HEAVY
    name: Heavy
    weight: 1
    speed: 110
    radius: 30
`)
	cfgPath := filepath.Join(dir, "game.toml")
	writeFile(t, cfgPath, `
enemies_file = "`+filepath.ToSlash(enemiesPath)+`"

[logging]
level = "error"
`)

	res, err := Bootstrap(cfgPath)
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if res.Enemies.Len() != 2 {
		t.Fatalf("enemies = %d, want 2", res.Enemies.Len())
	}

	g := NewGame(Options{Settings: res.Settings, Enemies: res.Enemies, Logger: res.Logger})
	if n := g.ECS.Count(component.FactionEnemy); n != 5 {
		t.Errorf("prewarmed enemies = %d, want 5", n)
	}
}

func TestBootstrapRejectsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	badConfig := filepath.Join(dir, "bad.toml")
	writeFile(t, badConfig, "seed = \"not a number\"")
	if _, err := Bootstrap(badConfig); err == nil {
		t.Error("Bootstrap() accepted a broken config")
	}

	badEnemies := filepath.Join(dir, "bad.yaml")
	writeFile(t, badEnemies, "enemies: [")
	cfg := filepath.Join(dir, "game.toml")
	writeFile(t, cfg, `
enemies_file = "`+filepath.ToSlash(badEnemies)+`"

[logging]
level = "error"
`)
	if _, err := Bootstrap(cfg); err == nil {
		t.Error("Bootstrap() accepted a broken enemy table")
	}
}

func TestAutopilotAlignsWithNearestEnemy(t *testing.T) {
	s := toughSettings(9)
	s.Spawn.Prewarm = 0
	g := NewGame(Options{Settings: s})
	player := g.Player()

	if in := Autopilot(g); !in.Fire || in.Up || in.Down {
		t.Errorf("no enemies: controls = %+v", in)
	}

	near := g.SpawnSystem.SpawnEnemy()
	near.Position.X, near.Position.Y = player.Position.X+200, player.Position.Y-100
	far := g.SpawnSystem.SpawnEnemy()
	far.Position.X, far.Position.Y = player.Position.X+600, player.Position.Y+100
	behind := g.SpawnSystem.SpawnEnemy()
	behind.Position.X, behind.Position.Y = player.Position.X-50, player.Position.Y+100

	if in := Autopilot(g); !in.Up || in.Down {
		t.Errorf("controls = %+v, want Up towards the nearest enemy ahead", in)
	}

	near.Position.Y = player.Position.Y + 3
	if in := Autopilot(g); in.Up || in.Down {
		t.Errorf("controls = %+v, want hold inside dead zone", in)
	}
}

func TestAutopilotScoresInSimulation(t *testing.T) {
	g := NewGame(Options{Settings: toughSettings(77)})
	for i := 0; i < 60*60 && !g.IsOver(); i++ {
		g.Update(1.0/60, Autopilot(g))
	}
	if g.Score() == 0 {
		t.Error("autopilot did not destroy a single enemy in a minute")
	}
}
