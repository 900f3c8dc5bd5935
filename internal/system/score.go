package system

import (
	"go-space-invaders/internal/event"
)

// ScoreSystem aggregates the session's score and counters from events.
type ScoreSystem struct {
	Score          int
	Lives          int
	LivesLost      int
	ShipsDestroyed int
	BonusDestroyed int
	ShotsFired     int
	EnemyShots     int
	BonusEscaped   int
}

func NewScoreSystem(eventDispatcher *event.Dispatcher, lives int) *ScoreSystem {
	s := &ScoreSystem{Lives: lives}
	eventDispatcher.SubscribeAll(s, event.EnemyDestroyed, event.PlayerHit, event.BulletFired, event.BonusEscaped)
	return s
}

func (s *ScoreSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		data := e.Data.(event.EnemyDestroyedData)
		s.Score += data.Points
		s.ShipsDestroyed++
		if data.Bonus {
			s.BonusDestroyed++
		}
	case event.PlayerHit:
		if s.Lives > 0 {
			s.Lives--
		}
		s.LivesLost++
	case event.BulletFired:
		if e.Data.(event.BulletFiredData).ByPlayer {
			s.ShotsFired++
		} else {
			s.EnemyShots++
		}
	case event.BonusEscaped:
		s.BonusEscaped++
	}
}

// Accuracy is the share of player shots that destroyed something.
func (s *ScoreSystem) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShipsDestroyed) / float64(s.ShotsFired)
}
