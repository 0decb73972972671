// internal/interfaces/collaborators.go
package interfaces

import (
	"time"

	"go-side-shooter/internal/component"
)

// Pair — пара пересекающихся актёров. A относится к первой группе запроса, B — ко второй.
type Pair struct {
	A, B *component.Actor
}

// Physics — физический коллаборатор: сообщает пересечения и прячет/возвращает актёров.
type Physics interface {
	Overlaps(a, b component.Faction) []Pair
	Kill(actor *component.Actor)
	Revive(actor *component.Actor)
}

// HUD получает новые значения счёта и здоровья.
type HUD interface {
	SetScore(value int)
	SetHealthFraction(value float64)
}

// StateTransitioner переключает состояние игры по имени.
type StateTransitioner interface {
	TransitionTo(name string)
}

// Scheduler — коллаборатор таймеров.
type Scheduler interface {
	After(d time.Duration, fn func())
	Every(p time.Duration, fn func())
}

// Random — источник случайных чисел. Подменяется в тестах.
type Random interface {
	Float64() float64
	Intn(n int) int
	ChooseWeighted(weights []int) int
}
