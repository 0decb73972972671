// internal/state/state.go
package state

import (
	"go-side-shooter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Убеждаемся, что StateMachine соответствует интерфейсу коллаборатора
var _ interfaces.StateTransitioner = (*StateMachine)(nil)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Factory создаёт новое состояние при каждом переходе.
type Factory func() State

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current   State
	factories map[string]Factory
	pending   string
	log       *zap.Logger
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(log *zap.Logger) *StateMachine {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateMachine{
		factories: make(map[string]Factory),
		log:       log,
	}
}

// Register связывает имя состояния с его фабрикой.
func (sm *StateMachine) Register(name string, factory Factory) {
	sm.factories[name] = factory
}

// TransitionTo запрашивает переход по имени. Переход выполняется после
// текущего Update, чтобы состояние не подменялось посреди кадра.
func (sm *StateMachine) TransitionTo(name string) {
	if _, ok := sm.factories[name]; !ok {
		sm.log.Warn("unknown state", zap.String("state", name))
		return
	}
	sm.pending = name
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	if sm.pending != "" {
		name := sm.pending
		sm.pending = ""
		sm.log.Debug("state transition", zap.String("state", name))
		sm.SetState(sm.factories[name]())
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}
