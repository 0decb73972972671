// internal/event/types.go
package event

import "go-side-shooter/internal/types"

const (
	EnemySpawned          EventType = "EnemySpawned"          // Враг появился
	EnemyDestroyed        EventType = "EnemyDestroyed"        // Враг сбит снарядом игрока
	ProjectileFired       EventType = "ProjectileFired"       // Снаряд выпущен из пула
	PlayerDamaged         EventType = "PlayerDamaged"         // Игрок получил урон
	WaveAdvanced          EventType = "WaveAdvanced"          // Шанс появления врагов вырос
	FireAnimationFinished EventType = "FireAnimationFinished" // Анимация выстрела закончилась
	GameOver              EventType = "GameOver"              // Здоровье игрока закончилось
)

// ActorData — данные событий о конкретном актёре.
type ActorData struct {
	ID   types.EntityID
	X, Y float64
}

// HealthData — здоровье игрока после урона.
type HealthData struct {
	Current, Max int
}

// WaveData — номер волны и новый шанс появления.
type WaveData struct {
	Wave   int
	Chance float64
}
