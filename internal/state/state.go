// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
)

// State is one screen of the windowed frontend.
type State interface {
	Enter()
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// Env is what every state needs to build a session.
type Env struct {
	Settings *config.Settings
	Waves    defs.WaveTable
	Face     font.Face
}

// StateMachine holds the current state.
type StateMachine struct {
	Env     Env
	current State
}

func NewStateMachine(env Env) *StateMachine {
	return &StateMachine{Env: env}
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update() error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update()
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
