// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-side-shooter/internal/component"
	"go-side-shooter/internal/types"
)

// ECS — реестр актёров одной игровой сессии. Владеет всеми актёрами,
// разбитыми по фракциям, и очередью на удаление, которая сбрасывается в конце кадра.
type ECS struct {
	GameTime     float64
	NextID       types.EntityID
	Actors       map[types.EntityID]*component.Actor
	Enemies      map[types.EntityID]*component.Enemy
	Projectiles  map[types.EntityID]*component.Projectile
	Renderables  map[types.EntityID]*component.Renderable
	Bursts       map[types.EntityID]*component.Burst
	Players      map[types.EntityID]*component.Player
	PlayerID     types.EntityID
	Spawn        *component.SpawnState
	Score        int
	groups       map[component.Faction]map[types.EntityID]*component.Actor
	destroyQueue []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Actors:      make(map[types.EntityID]*component.Actor),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Bursts:      make(map[types.EntityID]*component.Burst),
		Players:     make(map[types.EntityID]*component.Player),
		Spawn:       &component.SpawnState{},
		groups: map[component.Faction]map[types.EntityID]*component.Actor{
			component.FactionPlayer:           {},
			component.FactionEnemy:            {},
			component.FactionPlayerProjectile: {},
			component.FactionEnemyProjectile:  {},
		},
		destroyQueue: make([]types.EntityID, 0, 64),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddActor выдаёт актёру идентификатор и регистрирует его в группе фракции.
func (ecs *ECS) AddActor(a *component.Actor) types.EntityID {
	a.ID = ecs.NewEntity()
	ecs.Actors[a.ID] = a
	ecs.groupOf(a.Faction)[a.ID] = a
	return a.ID
}

// Actor возвращает актёра, если он ещё зарегистрирован.
func (ecs *ECS) Actor(id types.EntityID) (*component.Actor, bool) {
	a, ok := ecs.Actors[id]
	return a, ok
}

// IsAlive сообщает, зарегистрирован ли актёр и жив ли он.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	a, ok := ecs.Actors[id]
	return ok && a.Alive
}

// Player возвращает актёра игрока.
func (ecs *ECS) Player() *component.Actor {
	return ecs.Actors[ecs.PlayerID]
}

// Group возвращает живых актёров фракции в порядке создания.
func (ecs *ECS) Group(f component.Faction) []*component.Actor {
	group := ecs.groupOf(f)
	out := make([]*component.Actor, 0, len(group))
	for _, a := range group {
		if a.Alive {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count возвращает число живых актёров фракции.
func (ecs *ECS) Count(f component.Faction) int {
	n := 0
	for _, a := range ecs.groupOf(f) {
		if a.Alive {
			n++
		}
	}
	return n
}

// MarkForDestruction ставит актёра в очередь на удаление в конце кадра.
// Актёр сразу перестаёт считаться живым.
func (ecs *ECS) MarkForDestruction(id types.EntityID) {
	a, ok := ecs.Actors[id]
	if !ok {
		return
	}
	a.Alive = false
	ecs.destroyQueue = append(ecs.destroyQueue, id)
}

// FlushDestroyQueue удаляет все помеченные сущности из всех хранилищ.
func (ecs *ECS) FlushDestroyQueue() int {
	n := 0
	for _, id := range ecs.destroyQueue {
		if ecs.RemoveEntity(id) {
			n++
		}
	}
	ecs.destroyQueue = ecs.destroyQueue[:0]
	return n
}

// RemoveEntity сразу удаляет сущность из всех хранилищ.
func (ecs *ECS) RemoveEntity(id types.EntityID) bool {
	a, ok := ecs.Actors[id]
	if ok {
		delete(ecs.groupOf(a.Faction), id)
		delete(ecs.Actors, id)
	}
	_, hadBurst := ecs.Bursts[id]
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	delete(ecs.Bursts, id)
	delete(ecs.Players, id)
	return ok || hadBurst
}

func (ecs *ECS) groupOf(f component.Faction) map[types.EntityID]*component.Actor {
	g, ok := ecs.groups[f]
	if !ok {
		g = make(map[types.EntityID]*component.Actor)
		ecs.groups[f] = g
	}
	return g
}
