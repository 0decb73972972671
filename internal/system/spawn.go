// internal/system/spawn.go
package system

import (
	"image/color"

	"go-side-shooter/internal/component"
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/defs"
	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/event"
	"go-side-shooter/internal/interfaces"

	"go.uber.org/zap"
)

// SpawnSystemDeps — зависимости SpawnSystem.
type SpawnSystemDeps struct {
	ECS             *entity.ECS
	Rng             interfaces.Random
	Timers          interfaces.Scheduler
	EnemyShots      *ProjectilePool
	EventDispatcher *event.Dispatcher
	Library         *defs.EnemyLibrary
	Config          config.SpawnConfig
	WorldWidth      float64
	WorldHeight     float64
	Log             *zap.Logger
}

// SpawnSystem раз в кадр решает, появится ли новый враг, и по таймеру волн
// повышает вероятность появления.
type SpawnSystem struct {
	ecs             *entity.ECS
	rng             interfaces.Random
	timers          interfaces.Scheduler
	enemyShots      *ProjectilePool
	eventDispatcher *event.Dispatcher
	library         *defs.EnemyLibrary
	weights         []int
	cfg             config.SpawnConfig
	worldWidth      float64
	worldHeight     float64
	log             *zap.Logger
}

func NewSpawnSystem(deps SpawnSystemDeps) *SpawnSystem {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Library == nil {
		lib, err := defs.NewEnemyLibrary(defs.DefaultEnemies())
		if err != nil {
			panic(err)
		}
		deps.Library = lib
	}
	weights := make([]int, 0, deps.Library.Len())
	for _, def := range deps.Library.All() {
		weights = append(weights, def.Weight)
	}
	return &SpawnSystem{
		ecs:             deps.ECS,
		rng:             deps.Rng,
		timers:          deps.Timers,
		enemyShots:      deps.EnemyShots,
		eventDispatcher: deps.EventDispatcher,
		library:         deps.Library,
		weights:         weights,
		cfg:             deps.Config,
		worldWidth:      deps.WorldWidth,
		worldHeight:     deps.WorldHeight,
		log:             deps.Log,
	}
}

// Start выставляет начальный шанс, запускает таймер волн и
// заранее создаёт первых врагов.
func (s *SpawnSystem) Start() {
	s.ecs.Spawn.Chance = s.cfg.InitialChance
	s.ecs.Spawn.Waves = 0
	s.timers.Every(s.cfg.WaveInterval, s.IncrementWave)
	for i := 0; i < s.cfg.Prewarm; i++ {
		s.SpawnEnemy()
	}
}

// Update бросает кубик один раз за кадр.
func (s *SpawnSystem) Update() {
	if s.rng.Float64() < s.ecs.Spawn.Chance {
		s.SpawnEnemy()
	}
}

// IncrementWave умножает шанс появления на коэффициент роста.
// Шанс не ограничивается: при значении выше 1 враг появляется каждый кадр.
func (s *SpawnSystem) IncrementWave() {
	s.ecs.Spawn.Chance *= s.cfg.GrowthFactor
	s.ecs.Spawn.Waves++
	s.log.Debug("wave advanced",
		zap.Int("wave", s.ecs.Spawn.Waves),
		zap.Float64("spawn_chance", s.ecs.Spawn.Chance))
	s.dispatch(event.WaveAdvanced, event.WaveData{Wave: s.ecs.Spawn.Waves, Chance: s.ecs.Spawn.Chance})
}

// SpawnEnemy создаёт врага в полосе справа от видимого мира.
func (s *SpawnSystem) SpawnEnemy() *component.Actor {
	def := s.pickDefinition()
	x := s.worldWidth + s.cfg.BandOffset + s.rng.Float64()*s.cfg.BandWidth
	y := s.rng.Float64() * s.worldHeight

	actor := &component.Actor{
		Faction:         component.FactionEnemy,
		Position:        component.Position{X: x, Y: y},
		Velocity:        component.Velocity{X: -def.Speed},
		Radius:          def.Radius,
		Alive:           true,
		OutOfBoundsKill: true,
	}
	id := s.ecs.AddActor(actor)

	enemy := &component.Enemy{
		DefID:           def.ID,
		BounceTick:      s.rng.Float64() * 2,
		BounceStep:      def.BounceStep,
		BounceAmplitude: def.BounceAmplitude,
	}
	s.ecs.Enemies[id] = enemy
	c := def.Visuals.Color
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]},
		Shape:     component.ShapeCircle,
		HasStroke: def.Visuals.HasStroke,
	}

	if s.rng.Float64() < s.cfg.EnemyFireChance {
		enemy.WillFire = true
		s.timers.After(s.cfg.EnemyFireDelay, func() { s.fireFrom(actor) })
	}

	s.dispatch(event.EnemySpawned, event.ActorData{ID: id, X: x, Y: y})
	return actor
}

// fireFrom стреляет от имени врага, если тот ещё жив.
func (s *SpawnSystem) fireFrom(enemy *component.Actor) {
	if !s.ecs.IsAlive(enemy.ID) {
		return
	}
	s.enemyShots.Fire(enemy.Position.X, enemy.Position.Y, -1)
}

func (s *SpawnSystem) pickDefinition() defs.EnemyDefinition {
	all := s.library.All()
	if len(all) == 1 {
		return all[0]
	}
	return all[s.rng.ChooseWeighted(s.weights)]
}

func (s *SpawnSystem) dispatch(t event.EventType, data any) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
