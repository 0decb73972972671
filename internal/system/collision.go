// internal/system/collision.go
package system

import (
	"go-side-shooter/internal/component"
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/event"
	"go-side-shooter/internal/interfaces"
	"go-side-shooter/internal/utils"

	"go.uber.org/zap"
)

// CollisionSystem разбирает пары пересечений от физики: сбитые враги дают очки,
// столкновения с игроком отнимают здоровье.
type CollisionSystem struct {
	ecs             *entity.ECS
	physics         interfaces.Physics
	hud             interfaces.HUD
	states          interfaces.StateTransitioner
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
	gameOver        bool
}

func NewCollisionSystem(ecs *entity.ECS, physics interfaces.Physics, hud interfaces.HUD,
	states interfaces.StateTransitioner, eventDispatcher *event.Dispatcher, log *zap.Logger) *CollisionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CollisionSystem{
		ecs:             ecs,
		physics:         physics,
		hud:             hud,
		states:          states,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// Update обрабатывает три отслеживаемые пары групп в фиксированном порядке.
func (s *CollisionSystem) Update() {
	for _, p := range s.physics.Overlaps(component.FactionEnemy, component.FactionPlayerProjectile) {
		s.DamageEnemy(p.A, p.B)
	}
	for _, p := range s.physics.Overlaps(component.FactionPlayer, component.FactionEnemy) {
		s.DamagePlayer(p.A, p.B)
	}
	for _, p := range s.physics.Overlaps(component.FactionPlayer, component.FactionEnemyProjectile) {
		s.DamagePlayer(p.A, p.B)
	}
}

// DamageEnemy уничтожает врага и снаряд игрока и начисляет очко.
// Пара с уже мёртвым участником пропускается.
func (s *CollisionSystem) DamageEnemy(enemy, bullet *component.Actor) bool {
	if enemy == nil || bullet == nil || !enemy.Alive || !bullet.Alive {
		return false
	}

	// Вспышка частиц на месте врага
	s.dispatch(event.EnemyDestroyed, event.ActorData{ID: enemy.ID, X: enemy.Position.X, Y: enemy.Position.Y})

	s.physics.Kill(enemy)
	s.physics.Kill(bullet)
	s.ecs.Score++
	s.hud.SetScore(s.ecs.Score)
	return true
}

// DamagePlayer отнимает у игрока единицу здоровья и убирает врага или снаряд.
// Первое обнуление здоровья переводит игру в состояние gameOver, дальнейшие пары игнорируются.
func (s *CollisionSystem) DamagePlayer(player, hitter *component.Actor) bool {
	if s.gameOver || player == nil || hitter == nil || player.Health == nil {
		return false
	}
	if !player.Alive || !hitter.Alive {
		return false
	}

	player.Health.Damage(config.PlayerHitDamage)
	s.physics.Kill(hitter)
	s.hud.SetHealthFraction(utils.Clamp(player.Health.Fraction(), 0, 1))
	s.dispatch(event.PlayerDamaged, event.HealthData{Current: player.Health.Current, Max: player.Health.Max})

	if player.Health.IsDepleted() {
		s.gameOver = true
		s.log.Info("game over",
			zap.Int("score", s.ecs.Score),
			zap.Int("waves", s.ecs.Spawn.Waves))
		s.dispatch(event.GameOver, event.HealthData{Current: player.Health.Current, Max: player.Health.Max})
		s.states.TransitionTo(config.StateGameOver)
	}
	return true
}

// GameOver сообщает, что переход в gameOver уже случился.
func (s *CollisionSystem) GameOver() bool {
	return s.gameOver
}

func (s *CollisionSystem) dispatch(t event.EventType, data any) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
