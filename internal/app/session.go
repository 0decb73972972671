// internal/app/session.go
package app

import (
	"math"
	"time"

	"go-side-shooter/internal/clock"
	"go-side-shooter/internal/component"
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/defs"
	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/event"
	"go-side-shooter/internal/interfaces"
	"go-side-shooter/internal/system"
	"go-side-shooter/internal/utils"

	"go.uber.org/zap"
)

// Options — коллабораторы сессии. Пустые поля заменяются значениями по умолчанию.
type Options struct {
	Settings *config.Settings
	Enemies  *defs.EnemyLibrary
	HUD      interfaces.HUD
	States   interfaces.StateTransitioner
	Logger   *zap.Logger
	Rng      interfaces.Random
}

// Stats — счётчики событий сессии для отчёта симулятора.
type Stats struct {
	EnemiesSpawned int
	PlayerShots    int
	EnemyShots     int
}

// Game — контекст одной игровой сессии. Создаётся заново при каждом входе в состояние игры.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Clock              *clock.Scheduler
	Rng                interfaces.Random
	PhysicsSystem      *system.PhysicsSystem
	PlayerShots        *system.ProjectilePool
	EnemyShots         *system.ProjectilePool
	SpawnSystem        *system.SpawnSystem
	PlayerSystem       *system.PlayerSystem
	MovementSystem     *system.MovementSystem
	CollisionSystem    *system.CollisionSystem
	VisualEffectSystem *system.VisualEffectSystem

	settings *config.Settings
	log      *zap.Logger
	stats    Stats
	gameTime float64
	ticks    int
	over     bool
}

// NewGame собирает системы сессии, создаёт игрока и первых врагов.
func NewGame(opts Options) *Game {
	if opts.Settings == nil {
		opts.Settings = config.Defaults()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.HUD == nil {
		opts.HUD = noopHUD{}
	}
	if opts.States == nil {
		opts.States = noopStates{}
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(opts.Settings.Seed)
	}
	s := opts.Settings

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	timers := clock.NewScheduler()
	physics := system.NewPhysicsSystem(ecs, s.World.Width, s.World.Height)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Clock:           timers,
		Rng:             opts.Rng,
		PhysicsSystem:   physics,
		settings:        s,
		log:             opts.Logger,
	}
	g.PlayerShots = system.NewProjectilePool(ecs, physics, eventDispatcher,
		component.FactionPlayerProjectile, s.Projectile.PlayerSpeed, config.ProjectileRadius, config.PlayerBulletColor)
	// Один пул на всех врагов.
	g.EnemyShots = system.NewProjectilePool(ecs, physics, eventDispatcher,
		component.FactionEnemyProjectile, s.Projectile.EnemySpeed, config.ProjectileRadius, config.EnemyBulletColor)

	g.SpawnSystem = system.NewSpawnSystem(system.SpawnSystemDeps{
		ECS:             ecs,
		Rng:             opts.Rng,
		Timers:          timers,
		EnemyShots:      g.EnemyShots,
		EventDispatcher: eventDispatcher,
		Library:         opts.Enemies,
		Config:          s.Spawn,
		WorldWidth:      s.World.Width,
		WorldHeight:     s.World.Height,
		Log:             opts.Logger,
	})
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.PlayerShots, eventDispatcher, s.Player)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CollisionSystem = system.NewCollisionSystem(ecs, physics, opts.HUD, opts.States, eventDispatcher, opts.Logger)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameOver, listener)
	eventDispatcher.Subscribe(event.WaveAdvanced, listener)
	eventDispatcher.Subscribe(event.PlayerDamaged, listener)
	eventDispatcher.Subscribe(event.EnemySpawned, listener)
	eventDispatcher.Subscribe(event.ProjectileFired, listener)

	player := g.PlayerSystem.Spawn()
	opts.HUD.SetScore(ecs.Score)
	opts.HUD.SetHealthFraction(player.Health.Fraction())
	g.SpawnSystem.Start()

	g.log.Info("session started",
		zap.Int("enemies", ecs.Count(component.FactionEnemy)),
		zap.Float64("spawn_chance", ecs.Spawn.Chance))
	return g
}

// Update продвигает сессию на один кадр. Порядок фаз фиксирован:
// таймеры, появление врагов, игрок, движение и физика, столкновения,
// эффекты, очистка уничтоженных.
func (g *Game) Update(deltaTime float64, in component.Controls) {
	if g.over {
		return
	}
	g.ticks++
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	// Время планировщика считается от суммы кадров, чтобы не копить ошибку округления.
	target := time.Duration(math.Round(g.gameTime * float64(time.Second)))
	g.Clock.Advance(target - g.Clock.Now())

	g.SpawnSystem.Update()
	g.PlayerSystem.Update(deltaTime, in)
	g.MovementSystem.Update()
	g.PhysicsSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.VisualEffectSystem.Update(deltaTime)
	g.ECS.FlushDestroyQueue()
}

func (g *Game) Score() int { return g.ECS.Score }

func (g *Game) Waves() int { return g.ECS.Spawn.Waves }

// Ticks возвращает число обработанных кадров.
func (g *Game) Ticks() int { return g.ticks }

// GameTime возвращает игровое время в секундах.
func (g *Game) GameTime() float64 { return g.gameTime }

// IsOver сообщает, что игрок погиб и сессия больше не обновляется.
func (g *Game) IsOver() bool { return g.over }

// Stats возвращает счётчики появившихся врагов и выстрелов.
func (g *Game) Stats() Stats { return g.stats }

// Player возвращает актёра игрока.
func (g *Game) Player() *component.Actor { return g.ECS.Player() }

// GameEventListener обрабатывает события, важные для сессии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		l.game.over = true
	case event.WaveAdvanced:
		if data, ok := e.Data.(event.WaveData); ok {
			l.game.log.Info("wave advanced", zap.Int("wave", data.Wave), zap.Float64("spawn_chance", data.Chance))
		}
	case event.EnemySpawned:
		l.game.stats.EnemiesSpawned++
		if data, ok := e.Data.(event.ActorData); ok {
			l.game.log.Debug("enemy spawned", zap.Uint64("id", uint64(data.ID)), zap.Float64("x", data.X), zap.Float64("y", data.Y))
		}
	case event.ProjectileFired:
		data, ok := e.Data.(event.ActorData)
		if !ok {
			return
		}
		a, ok := l.game.ECS.Actor(data.ID)
		if !ok {
			return
		}
		if a.Faction == component.FactionPlayerProjectile {
			l.game.stats.PlayerShots++
		} else {
			l.game.stats.EnemyShots++
		}
	case event.PlayerDamaged:
		if data, ok := e.Data.(event.HealthData); ok {
			l.game.log.Debug("player damaged", zap.Int("health", data.Current), zap.Int("max", data.Max))
		}
	}
}

type noopHUD struct{}

func (noopHUD) SetScore(int)              {}
func (noopHUD) SetHealthFraction(float64) {}

type noopStates struct{}

func (noopStates) TransitionTo(string) {}
