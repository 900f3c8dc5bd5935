package system

import (
	"log/slog"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/timer"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
)

// BonusSystem sends the special ship across the top of the screen from time
// to time.
type BonusSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	clock           timer.Clock
	settings        *config.Settings
	log             *slog.Logger

	cooldown *timer.Cooldown
	active   types.EntityID
}

func NewBonusSystem(world *entity.World, eventDispatcher *event.Dispatcher, clock timer.Clock,
	rng *utils.PRNGService, settings *config.Settings) *BonusSystem {
	return &BonusSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		clock:           clock,
		settings:        settings,
		log:             slog.With("system", "bonus"),
		cooldown:        timer.NewRandomCooldown(clock, settings.Bonus.Interval, settings.Bonus.Variance, rng),
	}
}

func (s *BonusSystem) Update() {
	if s.active != 0 {
		if _, ok := s.world.Ships[s.active]; !ok {
			// Collected after its explosion.
			s.active = 0
			s.cooldown.Reset()
		}
	}

	if s.active == 0 {
		if s.cooldown.CheckFinished() {
			s.spawn()
		}
		return
	}

	ship := s.world.Ships[s.active]
	if ship.IsDestroyed() {
		return
	}
	ship.Move(s.settings.Bonus.Speed, 0)
	ship.Update()

	if ship.X() > s.settings.Screen.Width {
		id := s.active
		s.world.RemoveShip(id)
		s.active = 0
		s.cooldown.Reset()
		s.log.Debug("bonus ship escaped", "id", id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.BonusEscaped, Data: id})
	}
}

// Reset removes a live bonus ship and restarts the spawn interval.
func (s *BonusSystem) Reset() {
	if s.active != 0 {
		s.world.RemoveShip(s.active)
		s.active = 0
	}
	s.cooldown.Reset()
}

func (s *BonusSystem) spawn() {
	ship := entity.NewBonusShip(s.clock)
	s.active = s.world.AddShip(ship)
	s.world.Bonus = s.active
	s.log.Debug("bonus ship spawned", "id", s.active)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BonusSpawned, Data: s.active})
}
