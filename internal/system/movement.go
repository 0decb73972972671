// internal/system/movement.go
package system

import (
	"math"

	"go-side-shooter/internal/entity"
)

// MovementSystem раскачивает врагов по синусоиде поверх их прямолинейного полёта.
// Шаг фазы задаётся на кадр, а не на секунду.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	for id, enemy := range s.ecs.Enemies {
		actor, ok := s.ecs.Actors[id]
		if !ok || !actor.Alive {
			continue
		}
		enemy.BounceTick += enemy.BounceStep
		actor.Position.Y += math.Sin(enemy.BounceTick) * enemy.BounceAmplitude
	}
}
