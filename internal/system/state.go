package system

import (
	"log/slog"
	"time"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/timer"
)

// WaveTransition is how long the cleared screen shows before the next wave.
const WaveTransition = 1500 * time.Millisecond

// StateSystem moves the session between playing, wave cleared and game over.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	waves           interfaces.WaveController
	formation       interfaces.FormationStatus
	score           *ScoreSystem
	transition      *timer.Cooldown
	log             *slog.Logger
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher, clock timer.Clock,
	waves interfaces.WaveController, formation interfaces.FormationStatus, score *ScoreSystem) *StateSystem {
	return &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		waves:           waves,
		formation:       formation,
		score:           score,
		transition:      timer.NewCooldown(clock, WaveTransition),
		log:             slog.With("system", "state"),
	}
}

func (s *StateSystem) Update() error {
	switch s.world.Phase {
	case component.PhasePlaying:
		if s.score.Lives <= 0 || s.invaded() {
			s.switchTo(component.PhaseGameOver, event.GameOver)
			return nil
		}
		if s.formation.Empty() {
			s.switchTo(component.PhaseWaveCleared, event.WaveCleared)
			s.transition.Reset()
		}
	case component.PhaseWaveCleared:
		if s.transition.CheckFinished() {
			if err := s.waves.StartWave(s.waves.Current() + 1); err != nil {
				return err
			}
			s.world.Phase = component.PhasePlaying
		}
	}
	return nil
}

// invaded reports whether the formation has come down to the player.
func (s *StateSystem) invaded() bool {
	player := s.world.Player
	if player == nil {
		return false
	}
	bottom, ok := s.formation.BottomEdge()
	return ok && bottom >= player.Y()
}

func (s *StateSystem) switchTo(phase component.GamePhase, t event.EventType) {
	s.world.Phase = phase
	s.log.Info("phase changed", "phase", phase.String(), "wave", s.waves.Current(), "score", s.score.Score)
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: event.WaveData{Number: s.waves.Current()}})
}

// Current returns the phase in play.
func (s *StateSystem) Current() component.GamePhase {
	return s.world.Phase
}
