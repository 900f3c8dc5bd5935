// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"
	"time"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/timer"
	"go-space-invaders/internal/utils"
)

// Options tune how a Game is assembled.
type Options struct {
	// Clock drives every cooldown. Nil means the game keeps its own manual
	// clock and advances it by one tick duration per Update.
	Clock timer.Clock
	// Waves overrides the built-in wave table.
	Waves defs.WaveTable
}

// Game holds the session state and the systems that step it.
type Game struct {
	Settings        *config.Settings
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	PlayerSystem     *system.PlayerSystem
	FormationSystem  *system.FormationSystem
	BonusSystem      *system.BonusSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	CleanupSystem    *system.CleanupSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem
	ScoreSystem      *system.ScoreSystem

	clock  timer.Clock
	manual *timer.ManualClock
	tick   uint64
}

// NewGame wires the world and systems and starts the first wave.
func NewGame(settings *config.Settings, opts Options) (*Game, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: nil settings", config.ErrInvalidSettings)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}
	waves := opts.Waves
	if waves == nil {
		waves = defs.DefaultWaves
	}
	if err := waves.Validate(); err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}
	if err := waves.CheckShootingVariance(settings.Formation.ShootingVariance); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidSettings, err)
	}

	g := &Game{
		Settings:        settings,
		World:           entity.NewWorld(),
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(settings.Seed),
		clock:           opts.Clock,
	}
	if g.clock == nil {
		g.manual = timer.NewManualClock(time.Unix(0, 0))
		g.clock = g.manual
	}

	w, d := g.World, g.EventDispatcher
	g.ProjectileSystem = system.NewProjectileSystem(w, d, settings.Screen.Height)
	g.FormationSystem = system.NewFormationSystem(w, g.clock, g.Rng, settings, g.ProjectileSystem)
	g.BonusSystem = system.NewBonusSystem(w, d, g.clock, g.Rng, settings)
	g.PlayerSystem = system.NewPlayerSystem(w, settings, g.ProjectileSystem)
	g.CombatSystem = system.NewCombatSystem(w, d, g.ProjectileSystem)
	g.CleanupSystem = system.NewCleanupSystem(w, g.clock, g.FormationSystem, settings.Effects.ExplosionDuration)
	g.ScoreSystem = system.NewScoreSystem(d, settings.Player.Lives)
	g.WaveSystem = system.NewWaveSystem(w, d, waves, g.FormationSystem, g.ProjectileSystem, g.BonusSystem)
	g.StateSystem = system.NewStateSystem(w, d, g.clock, g.WaveSystem, g.FormationSystem, g.ScoreSystem)

	g.createPlayer()
	if err := g.WaveSystem.StartWave(1); err != nil {
		return nil, err
	}

	slog.Debug("game created", "seed", g.Rng.Seed(), "manual_clock", g.manual != nil)
	return g, nil
}

func (g *Game) createPlayer() {
	p := g.Settings.Player
	x := g.Settings.Screen.Width/2 - config.ShipWidth/2
	y := g.Settings.Screen.Height - config.BottomMargin
	g.World.Player = entity.NewShip(g.clock, x, y, p.Speed, p.ShootCooldown, p.DestructionCooldown)
}

// Update steps the session by one tick.
func (g *Game) Update(input component.Input) error {
	if g.World.Phase == component.PhaseGameOver {
		return nil
	}
	if g.manual != nil {
		g.manual.Advance(g.Settings.TickDuration())
	}
	g.tick++

	if g.World.Phase == component.PhasePlaying {
		g.PlayerSystem.Update(input)
		g.FormationSystem.Update()
		g.BonusSystem.Update()
		g.ProjectileSystem.Update()
		g.CombatSystem.Update()
	}
	g.CleanupSystem.Update()
	return g.StateSystem.Update()
}

// Tick is the number of updates run so far.
func (g *Game) Tick() uint64 { return g.tick }

// Clock is the time source of every cooldown in the session.
func (g *Game) Clock() timer.Clock { return g.clock }

// Score returns the score keeper.
func (g *Game) Score() *system.ScoreSystem { return g.ScoreSystem }

// Wave returns the current wave number.
func (g *Game) Wave() int { return g.WaveSystem.Current() }

// Phase returns the current session phase.
func (g *Game) Phase() component.GamePhase { return g.World.Phase }

// IsOver reports whether the session has ended.
func (g *Game) IsOver() bool { return g.World.Phase == component.PhaseGameOver }
