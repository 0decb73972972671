// internal/component/actor.go
package component

import "go-side-shooter/internal/types"

// Faction — группа, к которой принадлежит актёр. Определяет,
// какие пары пересечений проверяются и какие правила урона применяются.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
	FactionPlayerProjectile
	FactionEnemyProjectile
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	case FactionPlayerProjectile:
		return "playerProjectile"
	case FactionEnemyProjectile:
		return "enemyProjectile"
	default:
		return "unknown"
	}
}

// IsProjectile сообщает, относится ли фракция к снарядам.
func (f Faction) IsProjectile() bool {
	return f == FactionPlayerProjectile || f == FactionEnemyProjectile
}

// Actor — любая живая игровая сущность: игрок, враг или снаряд.
type Actor struct {
	ID       types.EntityID
	Faction  Faction
	Position Position
	Velocity Velocity
	Radius   float64
	Alive    bool
	Health   *Health // есть только у игрока

	// OutOfBoundsKill — убить актёра, когда он покидает границы мира.
	OutOfBoundsKill bool
	// EnteredWorld выставляется, как только актёр впервые оказался внутри мира.
	// Выход за границы засчитывается только после входа.
	EnteredWorld bool
}
