// internal/system/physics.go
package system

import (
	"go-side-shooter/internal/component"
	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/interfaces"
	"go-side-shooter/internal/utils"
)

// Убеждаемся, что PhysicsSystem соответствует интерфейсу коллаборатора
var _ interfaces.Physics = (*PhysicsSystem)(nil)

// PhysicsSystem двигает актёров по скорости, держит игрока в границах мира,
// убивает вылетевших и сообщает попарные пересечения.
// Актёр, ещё не входивший в мир, живёт снаружи, только пока летит к нему.
type PhysicsSystem struct {
	ecs           *entity.ECS
	width, height float64
}

func NewPhysicsSystem(ecs *entity.ECS, width, height float64) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, width: width, height: height}
}

func (s *PhysicsSystem) Update(deltaTime float64) {
	for _, a := range s.ecs.Actors {
		if !a.Alive {
			continue
		}
		a.Position.X += a.Velocity.X * deltaTime
		a.Position.Y += a.Velocity.Y * deltaTime

		if a.Faction == component.FactionPlayer {
			s.collideWorldBounds(a)
			continue
		}

		if !a.OutOfBoundsKill {
			continue
		}
		switch {
		case s.InBounds(a):
			a.EnteredWorld = true
		case a.EnteredWorld || !s.onTheWayIn(a):
			s.Kill(a)
		}
	}
}

// onTheWayIn сообщает, что актёр снаружи мира летит к нему: за каждым краем,
// который он пересекает, скорость направлена внутрь. Всё остальное снаружи
// уже не войдёт в мир.
func (s *PhysicsSystem) onTheWayIn(a *component.Actor) bool {
	left := a.Position.X+a.Radius < 0
	right := a.Position.X-a.Radius > s.width
	top := a.Position.Y+a.Radius < 0
	bottom := a.Position.Y-a.Radius > s.height

	switch {
	case left && a.Velocity.X <= 0, right && a.Velocity.X >= 0:
		return false
	case top && a.Velocity.Y <= 0, bottom && a.Velocity.Y >= 0:
		return false
	}
	return true
}

// collideWorldBounds не выпускает актёра за края мира и гасит скорость о стену.
func (s *PhysicsSystem) collideWorldBounds(a *component.Actor) {
	x := utils.Clamp(a.Position.X, a.Radius, s.width-a.Radius)
	y := utils.Clamp(a.Position.Y, a.Radius, s.height-a.Radius)
	if x != a.Position.X {
		a.Position.X = x
		a.Velocity.X = 0
	}
	if y != a.Position.Y {
		a.Position.Y = y
		a.Velocity.Y = 0
	}
}

// InBounds сообщает, пересекает ли актёр прямоугольник мира.
func (s *PhysicsSystem) InBounds(a *component.Actor) bool {
	return a.Position.X+a.Radius >= 0 && a.Position.X-a.Radius <= s.width &&
		a.Position.Y+a.Radius >= 0 && a.Position.Y-a.Radius <= s.height
}

// Overlaps возвращает все пары живых актёров групп a и b, чьи круги пересекаются.
// Порядок детерминирован: по ID актёра первой группы, затем второй.
func (s *PhysicsSystem) Overlaps(a, b component.Faction) []interfaces.Pair {
	groupA := s.ecs.Group(a)
	groupB := s.ecs.Group(b)
	var pairs []interfaces.Pair
	for _, x := range groupA {
		for _, y := range groupB {
			if x == y {
				continue
			}
			dx := x.Position.X - y.Position.X
			dy := x.Position.Y - y.Position.Y
			r := x.Radius + y.Radius
			if dx*dx+dy*dy < r*r {
				pairs = append(pairs, interfaces.Pair{A: x, B: y})
			}
		}
	}
	return pairs
}

// Kill убирает актёра из игры. Снаряды остаются в пуле мёртвыми,
// враги удаляются из реестра в конце кадра.
func (s *PhysicsSystem) Kill(a *component.Actor) {
	if a == nil || !a.Alive {
		return
	}
	if a.Faction == component.FactionEnemy {
		s.ecs.MarkForDestruction(a.ID)
		return
	}
	a.Alive = false
}

// Revive возвращает актёра в игру, сохраняя его идентичность.
func (s *PhysicsSystem) Revive(a *component.Actor) {
	a.Alive = true
	a.EnteredWorld = false
}
