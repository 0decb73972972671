package system

import (
	"math"
	"testing"

	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/event"
)

func TestBurstFadesAndExpires(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	vfx := NewVisualEffectSystem(ecs, d)

	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.ActorData{ID: 7, X: 50, Y: 60}})

	if len(ecs.Bursts) != 1 {
		t.Fatalf("bursts = %d, want 1", len(ecs.Bursts))
	}
	burst := func() float64 {
		for _, b := range ecs.Bursts {
			if len(b.Particles) != 4 {
				t.Errorf("particles = %d, want 4", len(b.Particles))
			}
			return b.Alpha()
		}
		return -1
	}
	if a := burst(); a != 1 {
		t.Errorf("initial alpha = %v, want 1", a)
	}

	vfx.Update(1)
	if a := burst(); math.Abs(a-0.6) > 1e-9 {
		t.Errorf("alpha at half life = %v, want 0.6", a)
	}
	for _, b := range ecs.Bursts {
		for _, p := range b.Particles {
			if p.Position.X == 50 && p.Position.Y == 60 {
				t.Error("particle did not move")
			}
		}
	}

	vfx.Update(1)
	if len(ecs.Bursts) != 0 {
		t.Errorf("burst alive after its lifetime")
	}
}

func TestMovementBouncesEnemies(t *testing.T) {
	ecs := entity.NewECS()
	enemy := addEnemy(ecs, 500, 300)
	ecs.Enemies[enemy.ID].BounceStep = 0.02
	ecs.Enemies[enemy.ID].BounceAmplitude = 1
	dead := addEnemy(ecs, 500, 300)
	dead.Alive = false
	ecs.Enemies[dead.ID].BounceStep = 0.02
	ecs.Enemies[dead.ID].BounceAmplitude = 1

	NewMovementSystem(ecs).Update()

	if want := 300 + math.Sin(0.02); enemy.Position.Y != want {
		t.Errorf("y = %v, want %v", enemy.Position.Y, want)
	}
	if ecs.Enemies[enemy.ID].BounceTick != 0.02 {
		t.Errorf("tick = %v, want 0.02", ecs.Enemies[enemy.ID].BounceTick)
	}
	if dead.Position.Y != 300 {
		t.Error("dead enemy moved")
	}
}
