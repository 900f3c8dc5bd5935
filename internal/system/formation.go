package system

import (
	"log/slog"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/timer"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
)

type direction int

const (
	dirRight direction = 1
	dirLeft  direction = -1
)

// FormationSystem moves the enemy grid and makes its bottom row shoot.
type FormationSystem struct {
	world       *entity.World
	clock       timer.Clock
	rng         *utils.PRNGService
	settings    *config.Settings
	projectiles *ProjectileSystem
	log         *slog.Logger

	columns       [][]types.EntityID // Each column top to bottom
	wave          defs.WaveDefinition
	direction     direction
	moveCooldown  *timer.Cooldown
	shootCooldown *timer.Cooldown
}

func NewFormationSystem(world *entity.World, clock timer.Clock, rng *utils.PRNGService,
	settings *config.Settings, projectiles *ProjectileSystem) *FormationSystem {
	return &FormationSystem{
		world:       world,
		clock:       clock,
		rng:         rng,
		settings:    settings,
		projectiles: projectiles,
		log:         slog.With("system", "formation"),
	}
}

// Build lays out a fresh grid for the wave. Ships of a previous grid must be
// cleared from the world beforehand.
func (s *FormationSystem) Build(wave defs.WaveDefinition) {
	fs := s.settings.Formation
	s.wave = wave
	s.direction = dirRight
	s.columns = make([][]types.EntityID, wave.Columns)

	for col := 0; col < wave.Columns; col++ {
		s.columns[col] = make([]types.EntityID, 0, wave.Rows)
		for row := 0; row < wave.Rows; row++ {
			x := fs.StartX + col*fs.SpacingX
			y := fs.StartY + row*fs.SpacingY
			ship := entity.NewEnemyShip(s.clock, x, y, wave.RowSprite(row))
			s.columns[col] = append(s.columns[col], s.world.AddShip(ship))
		}
	}

	s.moveCooldown = timer.NewCooldown(s.clock, wave.MoveInterval)
	s.shootCooldown = timer.NewRandomCooldown(s.clock, wave.ShootInterval, fs.ShootingVariance, s.rng)
	s.log.Debug("formation built", "wave", wave.Number, "columns", wave.Columns, "rows", wave.Rows)
}

func (s *FormationSystem) Update() {
	if s.moveCooldown == nil {
		return
	}
	if s.moveCooldown.CheckFinished() {
		s.moveCooldown.Reset()
		s.step()
	}

	for _, col := range s.columns {
		for _, id := range col {
			if ship, ok := s.world.Ships[id]; ok {
				ship.Update()
			}
		}
	}

	s.shoot()
}

// step moves the live ships sideways, or down and back once the grid would
// cross the screen margin.
func (s *FormationSystem) step() {
	left, right, ok := s.horizontalExtent()
	if !ok {
		return
	}

	fs := s.settings.Formation
	dx, dy := int(s.direction)*fs.XSpeed, 0
	switch {
	case s.direction == dirRight && right+fs.XSpeed > s.settings.Screen.Width-fs.Margin:
		dx, dy = 0, fs.Descent
		s.direction = dirLeft
	case s.direction == dirLeft && left-fs.XSpeed < fs.Margin:
		dx, dy = 0, fs.Descent
		s.direction = dirRight
	}

	s.eachLive(func(_ types.EntityID, ship *entity.EnemyShip) {
		ship.Move(dx, dy)
	})
}

func (s *FormationSystem) shoot() {
	if len(s.columns) == 0 || !s.shootCooldown.CheckFinished() {
		return
	}

	shooters := s.Shooters()
	if len(shooters) == 0 {
		return
	}
	s.shootCooldown.Reset()

	shooter := s.world.Ships[shooters[s.rng.Intn(len(shooters))]]
	x := shooter.X() + shooter.Width()/2
	y := shooter.Y() + shooter.Height()
	s.projectiles.Fire(x, y, s.settings.Formation.BulletSpeed)
}

// Shooters returns the bottom-most live ship of every column.
func (s *FormationSystem) Shooters() []types.EntityID {
	var out []types.EntityID
	for _, col := range s.columns {
		for i := len(col) - 1; i >= 0; i-- {
			if ship, ok := s.world.Ships[col[i]]; ok && !ship.IsDestroyed() {
				out = append(out, col[i])
				break
			}
		}
	}
	return out
}

// Remove forgets a ship that the collector dropped from the world.
func (s *FormationSystem) Remove(id types.EntityID) {
	for c, col := range s.columns {
		for i, member := range col {
			if member == id {
				s.columns[c] = append(col[:i:i], col[i+1:]...)
				return
			}
		}
	}
}

// LiveCount is the number of ships not yet destroyed.
func (s *FormationSystem) LiveCount() int {
	n := 0
	s.eachLive(func(types.EntityID, *entity.EnemyShip) { n++ })
	return n
}

// Empty reports whether every ship has been destroyed.
func (s *FormationSystem) Empty() bool {
	return s.LiveCount() == 0
}

// BottomEdge returns the lowest edge of the live ships.
func (s *FormationSystem) BottomEdge() (int, bool) {
	bottom, found := 0, false
	s.eachLive(func(_ types.EntityID, ship *entity.EnemyShip) {
		if b := ship.Y() + ship.Height(); !found || b > bottom {
			bottom, found = b, true
		}
	})
	return bottom, found
}

// Wave returns the definition the grid was built from.
func (s *FormationSystem) Wave() defs.WaveDefinition {
	return s.wave
}

func (s *FormationSystem) horizontalExtent() (left, right int, ok bool) {
	s.eachLive(func(_ types.EntityID, ship *entity.EnemyShip) {
		l, r := ship.X(), ship.X()+ship.Width()
		if !ok || l < left {
			left = l
		}
		if !ok || r > right {
			right = r
		}
		ok = true
	})
	return left, right, ok
}

func (s *FormationSystem) eachLive(fn func(types.EntityID, *entity.EnemyShip)) {
	for _, col := range s.columns {
		for _, id := range col {
			if ship, ok := s.world.Ships[id]; ok && !ship.IsDestroyed() {
				fn(id, ship)
			}
		}
	}
}
