// internal/app/autopilot.go
package app

import (
	"math"

	"go-side-shooter/internal/component"
)

const autopilotDeadZone = 8.0

// Autopilot выбирает ближайшего врага впереди игрока, выравнивается с ним
// по вертикали и стреляет без остановки. Используется симулятором.
func Autopilot(g *Game) component.Controls {
	in := component.Controls{Fire: true}
	player := g.Player()
	if player == nil || !player.Alive {
		return in
	}

	var target *component.Actor
	best := math.Inf(1)
	for _, e := range g.ECS.Group(component.FactionEnemy) {
		dx := e.Position.X - player.Position.X
		if dx <= 0 || dx >= best {
			continue
		}
		best = dx
		target = e
	}
	if target == nil {
		return in
	}

	switch dy := target.Position.Y - player.Position.Y; {
	case dy > autopilotDeadZone:
		in.Down = true
	case dy < -autopilotDeadZone:
		in.Up = true
	}
	return in
}
