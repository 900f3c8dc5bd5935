// internal/system/player_system.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
)

// PlayerSystem applies input to the player ship.
type PlayerSystem struct {
	world       *entity.World
	settings    *config.Settings
	projectiles *ProjectileSystem
}

func NewPlayerSystem(world *entity.World, settings *config.Settings, projectiles *ProjectileSystem) *PlayerSystem {
	return &PlayerSystem{world: world, settings: settings, projectiles: projectiles}
}

func (s *PlayerSystem) Update(input component.Input) {
	ship := s.world.Player
	if ship == nil {
		return
	}
	ship.Update()
	if ship.IsDestroyed() {
		return
	}

	width := s.settings.Screen.Width
	atRight := ship.X()+ship.Width()+ship.Speed() > width-1
	atLeft := ship.X()-ship.Speed() < 1

	if input.Right && !input.Left && !atRight {
		ship.MoveRight()
	}
	if input.Left && !input.Right && !atLeft {
		ship.MoveLeft()
	}

	if input.Fire && ship.Shoot() {
		x, y := ship.Muzzle()
		s.projectiles.Fire(x, y, s.settings.Player.BulletSpeed)
	}
}
