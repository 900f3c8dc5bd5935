package component

import "time"

// LifecycleStage tracks a destroyed entity until the collector drops it.
type LifecycleStage int

const (
	StageActive LifecycleStage = iota
	StageExploding
	StageRemovable
)

// Lifecycle belongs to the collector, not to the entity it describes.
type Lifecycle struct {
	Stage          LifecycleStage
	ExplodingSince time.Time
}

// Explode moves an active entity into the exploding stage. Later calls keep
// the first timestamp.
func (l *Lifecycle) Explode(now time.Time) {
	if l.Stage != StageActive {
		return
	}
	l.Stage = StageExploding
	l.ExplodingSince = now
}

// Advance marks the entity removable once the explosion has been shown for d.
func (l *Lifecycle) Advance(now time.Time, d time.Duration) {
	if l.Stage == StageExploding && now.Sub(l.ExplodingSince) >= d {
		l.Stage = StageRemovable
	}
}
