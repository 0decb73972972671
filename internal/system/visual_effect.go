// internal/system/visual_effect.go
package system

import (
	"math"

	"go-side-shooter/internal/component"
	"go-side-shooter/internal/config"
	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/event"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки частиц.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов
// и подписывает её на уничтожение врагов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	}
	return s
}

// OnEvent реализует интерфейс event.Listener.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	if data, ok := e.Data.(event.ActorData); ok {
		s.Explode(data.X, data.Y)
	}
}

// Explode создаёт вспышку из нескольких частиц, разлетающихся из точки.
func (s *VisualEffectSystem) Explode(x, y float64) {
	id := s.ecs.NewEntity()
	burst := &component.Burst{
		Particles:  make([]component.Particle, config.BurstParticles),
		Duration:   config.BurstDuration,
		AlphaStart: config.BurstAlphaStart,
		AlphaEnd:   config.BurstAlphaEnd,
	}
	for i := range burst.Particles {
		angle := math.Pi/4 + 2*math.Pi*float64(i)/float64(config.BurstParticles)
		burst.Particles[i] = component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{
				X: math.Cos(angle) * config.BurstParticleSpeed,
				Y: math.Sin(angle) * config.BurstParticleSpeed,
			},
		}
	}
	s.ecs.Bursts[id] = burst
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, burst := range s.ecs.Bursts {
		burst.Timer += deltaTime
		if burst.Timer >= burst.Duration {
			// Эффект завершился, удаляем его
			s.ecs.RemoveEntity(id)
			continue
		}
		for i := range burst.Particles {
			p := &burst.Particles[i]
			p.Position.X += p.Velocity.X * deltaTime
			p.Position.Y += p.Velocity.Y * deltaTime
		}
	}
}
