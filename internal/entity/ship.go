package entity

import (
	"time"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/timer"
)

// Ship is the player's cannon.
type Ship struct {
	Entity
	speed               int
	shootingCooldown    *timer.Cooldown
	destructionCooldown *timer.Cooldown
}

// NewShip creates the player ship. It can shoot straight away.
func NewShip(clock timer.Clock, x, y, speed int, shootEvery, destroyedFor time.Duration) *Ship {
	s := &Ship{
		Entity:              newEntity(x, y, config.ShipWidth, config.ShipHeight, config.Green),
		speed:               speed,
		shootingCooldown:    timer.NewFinishedCooldown(clock, shootEvery),
		destructionCooldown: timer.NewFinishedCooldown(clock, destroyedFor),
	}
	s.sprite = defs.Ship
	return s
}

// MoveRight moves the ship one step right.
func (s *Ship) MoveRight() {
	s.x += s.speed
}

// MoveLeft moves the ship one step left.
func (s *Ship) MoveLeft() {
	s.x -= s.speed
}

// Speed returns the horizontal step.
func (s *Ship) Speed() int {
	return s.speed
}

// Shoot consumes the shooting cooldown. It reports false while the cooldown
// runs or the ship is destroyed; the caller spawns the bullet otherwise.
func (s *Ship) Shoot() bool {
	if s.IsDestroyed() || !s.shootingCooldown.CheckFinished() {
		return false
	}
	s.shootingCooldown.Reset()
	return true
}

// Muzzle is the point bullets leave from.
func (s *Ship) Muzzle() (int, int) {
	return s.x + s.width/2, s.y
}

// Update shows the wreck sprite while the ship is respawning.
func (s *Ship) Update() {
	if s.IsDestroyed() {
		s.sprite = defs.ShipDestroyed
	} else {
		s.sprite = defs.Ship
	}
}

// Destroy starts the destruction interval.
func (s *Ship) Destroy() {
	s.destructionCooldown.Reset()
	s.sprite = defs.ShipDestroyed
}

// IsDestroyed reports whether the destruction interval is still running.
func (s *Ship) IsDestroyed() bool {
	return !s.destructionCooldown.CheckFinished()
}
