// internal/interfaces/game_context.go
package interfaces

// WaveController starts waves and knows which one is in play.
type WaveController interface {
	StartWave(n int) error
	Current() int
}

// FormationStatus is what phase control needs to know about the formation.
type FormationStatus interface {
	Empty() bool
	// BottomEdge is the lowest bottom edge of the live ships, false if none.
	BottomEdge() (int, bool)
}
