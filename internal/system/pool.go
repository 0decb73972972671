// internal/system/pool.go
package system

import (
	"image/color"

	"go-side-shooter/internal/component"
	"go-side-shooter/internal/entity"
	"go-side-shooter/internal/event"
	"go-side-shooter/internal/interfaces"
	"go-side-shooter/internal/types"
)

// ProjectilePool переиспользует снаряды одной фракции вместо
// неограниченного выделения новых.
type ProjectilePool struct {
	id              types.EntityID
	ecs             *entity.ECS
	physics         interfaces.Physics
	eventDispatcher *event.Dispatcher
	faction         component.Faction
	speed           float64
	radius          float64
	color           color.RGBA
	slots           []*component.Actor
}

func NewProjectilePool(ecs *entity.ECS, physics interfaces.Physics, eventDispatcher *event.Dispatcher,
	faction component.Faction, speed, radius float64, c color.RGBA) *ProjectilePool {
	return &ProjectilePool{
		id:              ecs.NewEntity(), // номер пула, которым помечаются его снаряды
		ecs:             ecs,
		physics:         physics,
		eventDispatcher: eventDispatcher,
		faction:         faction,
		speed:           speed,
		radius:          radius,
		color:           c,
	}
}

// Fire выпускает снаряд из точки (originX, originY). direction — знак
// движения по оси X. Если в пуле есть мёртвый снаряд, он переиспользуется;
// новый выделяется только когда мёртвых нет. Никогда не завершается неудачей.
func (p *ProjectilePool) Fire(originX, originY, direction float64) *component.Actor {
	proj := p.firstDead()
	if proj != nil {
		proj.Position = component.Position{X: originX, Y: originY}
		proj.Velocity = component.Velocity{X: direction * p.speed}
		p.physics.Revive(proj)
	} else {
		proj = p.allocate(originX, originY, direction)
	}

	if p.eventDispatcher != nil {
		p.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileFired,
			Data: event.ActorData{ID: proj.ID, X: originX, Y: originY},
		})
	}
	return proj
}

func (p *ProjectilePool) firstDead() *component.Actor {
	for _, slot := range p.slots {
		if !slot.Alive {
			return slot
		}
	}
	return nil
}

func (p *ProjectilePool) allocate(originX, originY, direction float64) *component.Actor {
	proj := &component.Actor{
		Faction:         p.faction,
		Position:        component.Position{X: originX, Y: originY},
		Velocity:        component.Velocity{X: direction * p.speed},
		Radius:          p.radius,
		Alive:           true,
		OutOfBoundsKill: true,
	}
	id := p.ecs.AddActor(proj)
	p.ecs.Projectiles[id] = &component.Projectile{Pool: p.id, Slot: len(p.slots)}
	p.ecs.Renderables[id] = &component.Renderable{Color: p.color, Shape: component.ShapeRect}
	p.slots = append(p.slots, proj)
	return proj
}

// Release возвращает снаряд в пул. Чужие снаряды игнорируются.
func (p *ProjectilePool) Release(proj *component.Actor) {
	if !p.Owns(proj) {
		return
	}
	p.physics.Kill(proj)
}

// Owns сообщает, выдан ли снаряд этим пулом.
func (p *ProjectilePool) Owns(proj *component.Actor) bool {
	if proj == nil {
		return false
	}
	rec, ok := p.ecs.Projectiles[proj.ID]
	if !ok || rec.Pool != p.id || rec.Slot >= len(p.slots) {
		return false
	}
	return p.slots[rec.Slot] == proj
}

// Len возвращает размер пула: живые и мёртвые снаряды.
func (p *ProjectilePool) Len() int {
	return len(p.slots)
}

// Live возвращает число летящих снарядов.
func (p *ProjectilePool) Live() int {
	n := 0
	for _, slot := range p.slots {
		if slot.Alive {
			n++
		}
	}
	return n
}

// Faction возвращает фракцию снарядов пула.
func (p *ProjectilePool) Faction() component.Faction {
	return p.faction
}
