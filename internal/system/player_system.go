// internal/system/player_system.go
package system

import (
	"go-side-shooter/internal/component"
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/event"
	"go-side-shooter/internal/utils"
)

// PlayerSystem отвечает за управление кораблём игрока, стрельбу и анимацию выстрела.
type PlayerSystem struct {
	ecs             *entity.ECS
	shots           *ProjectilePool
	eventDispatcher *event.Dispatcher
	cfg             config.PlayerConfig
}

func NewPlayerSystem(ecs *entity.ECS, shots *ProjectilePool, eventDispatcher *event.Dispatcher, cfg config.PlayerConfig) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, shots: shots, eventDispatcher: eventDispatcher, cfg: cfg}
}

// Spawn создаёт игрока с полным здоровьем.
func (s *PlayerSystem) Spawn() *component.Actor {
	actor := &component.Actor{
		Faction:  component.FactionPlayer,
		Position: component.Position{X: s.cfg.StartX, Y: s.cfg.StartY},
		Radius:   config.PlayerRadius,
		Alive:    true,
		Health:   component.NewHealth(s.cfg.Health),
	}
	id := s.ecs.AddActor(actor)
	s.ecs.PlayerID = id
	s.ecs.Players[id] = &component.Player{
		Speed: s.cfg.Speed,
		Drag:  s.cfg.Drag,
		Anim:  component.AnimFlying,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Shape:     component.ShapeCircle,
		HasStroke: true,
	}
	return actor
}

func (s *PlayerSystem) Update(deltaTime float64, in component.Controls) {
	actor := s.ecs.Player()
	player, ok := s.ecs.Players[s.ecs.PlayerID]
	if actor == nil || !ok || !actor.Alive {
		return
	}

	s.steer(actor, player, deltaTime, in)
	s.updateAnimation(actor, player, deltaTime)

	if player.FireCooldown > 0 {
		player.FireCooldown -= deltaTime
	}
	if in.Fire && player.FireCooldown <= 0 {
		s.shots.Fire(actor.Position.X+s.cfg.FireOffsetX, actor.Position.Y+s.cfg.FireOffsetY, 1)
		player.FireCooldown = s.cfg.FireGate.Seconds()
		player.Anim = component.AnimFiring
		player.AnimTimer = config.PlayerFireAnimDuration
	}
}

// steer задаёт скорость по нажатым клавишам. Без нажатия скорость гасится торможением.
func (s *PlayerSystem) steer(actor *component.Actor, player *component.Player, deltaTime float64, in component.Controls) {
	drag := player.Drag * deltaTime

	switch {
	case in.Right:
		actor.Velocity.X = player.Speed
	case in.Left:
		actor.Velocity.X = -player.Speed
	default:
		actor.Velocity.X = utils.Approach(actor.Velocity.X, drag)
	}

	switch {
	case in.Down:
		actor.Velocity.Y = player.Speed
	case in.Up:
		actor.Velocity.Y = -player.Speed
	default:
		actor.Velocity.Y = utils.Approach(actor.Velocity.Y, drag)
	}
}

// updateAnimation возвращает игрока из Firing во Flying по окончании анимации выстрела.
func (s *PlayerSystem) updateAnimation(actor *component.Actor, player *component.Player, deltaTime float64) {
	if player.Anim != component.AnimFiring {
		return
	}
	player.AnimTimer -= deltaTime
	if player.AnimTimer > 0 {
		return
	}
	player.AnimTimer = 0
	player.Anim = component.AnimFlying
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.FireAnimationFinished,
			Data: event.ActorData{ID: actor.ID, X: actor.Position.X, Y: actor.Position.Y},
		})
	}
}
