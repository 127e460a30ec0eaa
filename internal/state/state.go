// internal/state/state.go
package state

import (
	"candy-defense/internal/app"
	"candy-defense/internal/defs"
	"candy-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Session is what every screen needs to build or rebuild a game.
type Session struct {
	Lib   *defs.Library
	Faces ui.Faces
	// NewGame builds a wired game (sink, event listeners) for a difficulty.
	NewGame           func(difficulty string) (*app.Game, error)
	DefaultDifficulty string
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
