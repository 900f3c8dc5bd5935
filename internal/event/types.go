package event

import "go-space-invaders/internal/types"

const (
	BulletFired    EventType = "BulletFired"    // BulletFiredData
	EnemyDestroyed EventType = "EnemyDestroyed" // EnemyDestroyedData
	PlayerHit      EventType = "PlayerHit"      // nil
	BonusSpawned   EventType = "BonusSpawned"   // types.EntityID
	BonusEscaped   EventType = "BonusEscaped"   // types.EntityID
	WaveStarted    EventType = "WaveStarted"    // WaveData
	WaveCleared    EventType = "WaveCleared"    // WaveData
	GameOver       EventType = "GameOver"       // WaveData
)

// BulletFiredData describes a new bullet.
type BulletFiredData struct {
	BulletID types.EntityID
	ByPlayer bool
}

// EnemyDestroyedData carries the score of a hit, read once at the moment of
// destruction.
type EnemyDestroyedData struct {
	ShipID types.EntityID
	Points int
	Bonus  bool
}

// WaveData identifies a wave.
type WaveData struct {
	Number int
}
