package component

// GamePhase is the top level state of a session.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseWaveCleared
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWaveCleared:
		return "wave_cleared"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
