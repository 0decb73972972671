package system

import (
	"go-side-shooter/internal/component"
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/interfaces"
)

// recordingHUD запоминает всё, что ядро отправило в интерфейс.
type recordingHUD struct {
	scores    []int
	fractions []float64
}

func (h *recordingHUD) SetScore(v int)              { h.scores = append(h.scores, v) }
func (h *recordingHUD) SetHealthFraction(v float64) { h.fractions = append(h.fractions, v) }

type recordingStates struct {
	names []string
}

func (s *recordingStates) TransitionTo(name string) { s.names = append(s.names, name) }

// sequenceRandom выдаёт заранее заданные значения по кругу.
type sequenceRandom struct {
	values []float64
	i      int
	picks  int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func (r *sequenceRandom) Intn(n int) int { return 0 }

func (r *sequenceRandom) ChooseWeighted(weights []int) int {
	r.picks++
	return 0
}

// scriptedPhysics подменяет обнаружение пересечений заранее заданными парами,
// сохраняя настоящие Kill и Revive.
type scriptedPhysics struct {
	*PhysicsSystem
	pairs map[[2]component.Faction][]interfaces.Pair
}

func newScriptedPhysics(ecs *entity.ECS) *scriptedPhysics {
	return &scriptedPhysics{
		PhysicsSystem: NewPhysicsSystem(ecs, config.ScreenWidth, config.ScreenHeight),
		pairs:         make(map[[2]component.Faction][]interfaces.Pair),
	}
}

func (p *scriptedPhysics) report(a, b *component.Actor) {
	key := [2]component.Faction{a.Faction, b.Faction}
	p.pairs[key] = append(p.pairs[key], interfaces.Pair{A: a, B: b})
}

func (p *scriptedPhysics) Overlaps(a, b component.Faction) []interfaces.Pair {
	return p.pairs[[2]component.Faction{a, b}]
}

func addEnemy(ecs *entity.ECS, x, y float64) *component.Actor {
	a := &component.Actor{
		Faction:         component.FactionEnemy,
		Position:        component.Position{X: x, Y: y},
		Velocity:        component.Velocity{X: -175},
		Radius:          config.EnemyRadius,
		Alive:           true,
		OutOfBoundsKill: true,
	}
	id := ecs.AddActor(a)
	ecs.Enemies[id] = &component.Enemy{}
	return a
}

func addPlayer(ecs *entity.ECS, health int) *component.Actor {
	a := &component.Actor{
		Faction:  component.FactionPlayer,
		Position: component.Position{X: 100, Y: 100},
		Radius:   config.PlayerRadius,
		Alive:    true,
		Health:   component.NewHealth(health),
	}
	ecs.PlayerID = ecs.AddActor(a)
	ecs.Players[a.ID] = &component.Player{Speed: 100, Drag: 35}
	return a
}
