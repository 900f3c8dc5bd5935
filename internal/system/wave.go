package system

import (
	"fmt"
	"log/slog"

	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// WaveSystem sets up the playfield for each wave.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	waves           defs.WaveTable
	formation       *FormationSystem
	projectiles     *ProjectileSystem
	bonus           *BonusSystem
	current         int
	log             *slog.Logger
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, waves defs.WaveTable,
	formation *FormationSystem, projectiles *ProjectileSystem, bonus *BonusSystem) *WaveSystem {
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		waves:           waves,
		formation:       formation,
		projectiles:     projectiles,
		bonus:           bonus,
		log:             slog.With("system", "wave"),
	}
}

// StartWave clears the playfield and builds the formation of wave n.
func (s *WaveSystem) StartWave(n int) error {
	def, err := s.waves.For(n)
	if err != nil {
		return fmt.Errorf("starting wave %d: %w", n, err)
	}

	s.bonus.Reset()
	s.world.ClearShips()
	s.projectiles.Clear()
	s.formation.Build(def)
	s.current = n

	s.log.Info("wave started", "wave", n, "columns", def.Columns, "rows", def.Rows)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: n}})
	return nil
}

// Current is the number of the wave in play.
func (s *WaveSystem) Current() int {
	return s.current
}
