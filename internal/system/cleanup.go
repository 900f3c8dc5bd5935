package system

import (
	"time"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/timer"
)

// CleanupSystem collects destroyed ships once their explosion has been on
// screen long enough.
type CleanupSystem struct {
	world     *entity.World
	clock     timer.Clock
	formation *FormationSystem
	display   time.Duration
}

func NewCleanupSystem(world *entity.World, clock timer.Clock, formation *FormationSystem, display time.Duration) *CleanupSystem {
	return &CleanupSystem{
		world:     world,
		clock:     clock,
		formation: formation,
		display:   display,
	}
}

func (s *CleanupSystem) Update() {
	now := s.clock.Now()
	for _, id := range s.world.SortedShipIDs() {
		ship := s.world.Ships[id]
		if !ship.IsDestroyed() {
			continue
		}

		lc, ok := s.world.Lifecycles[id]
		if !ok {
			lc = &component.Lifecycle{}
			s.world.Lifecycles[id] = lc
		}
		lc.Explode(now)
		lc.Advance(now, s.display)

		if lc.Stage == component.StageRemovable {
			s.world.RemoveShip(id)
			s.formation.Remove(id)
		}
	}
}
