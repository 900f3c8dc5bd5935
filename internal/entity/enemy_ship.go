package entity

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/timer"
)

// EnemyShip is a formation or bonus enemy. It animates between the two frames
// of its tier and turns into an explosion once destroyed.
type EnemyShip struct {
	Entity
	animationCooldown *timer.Cooldown
	destroyed         bool
	bonus             bool
	pointValue        int
}

// NewEnemyShip creates a formation ship. The point value follows from the
// sprite's tier, 0 for sprites outside the tier table.
func NewEnemyShip(clock timer.Clock, x, y int, sprite defs.SpriteType) *EnemyShip {
	s := &EnemyShip{
		Entity:            newEntity(x, y, config.EnemyShipWidth, config.EnemyShipHeight, config.White),
		animationCooldown: timer.NewCooldown(clock, config.AnimationInterval),
		pointValue:        defs.PointValue(sprite),
	}
	s.sprite = sprite
	return s
}

// NewBonusShip creates the special ship. It starts left of the screen and has
// to be moved in before it can be seen or hit.
func NewBonusShip(clock timer.Clock) *EnemyShip {
	s := &EnemyShip{
		Entity: newEntity(config.BonusShipStartX, config.BonusShipStartY,
			config.BonusShipWidth, config.BonusShipHeight, config.Red),
		animationCooldown: timer.NewCooldown(clock, config.AnimationInterval),
		pointValue:        defs.BonusPoints,
		bonus:             true,
	}
	s.sprite = defs.EnemyShipSpecial
	return s
}

// PointValue returns the score awarded for destroying the ship.
func (s *EnemyShip) PointValue() int {
	return s.pointValue
}

// Move shifts the ship without any bounds check.
func (s *EnemyShip) Move(dx, dy int) {
	s.x += dx
	s.y += dy
}

// Update flips the animation frame once per cooldown interval. Ships without
// an animation pair, destroyed ships included, keep their sprite.
func (s *EnemyShip) Update() {
	if !s.animationCooldown.CheckFinished() {
		return
	}
	s.animationCooldown.Reset()

	if next, ok := defs.NextFrame(s.sprite); ok {
		s.sprite = next
	}
}

// Destroy marks the ship as hit and shows the explosion. Calling it again
// changes nothing.
func (s *EnemyShip) Destroy() {
	s.destroyed = true
	s.sprite = defs.Explosion
}

// IsDestroyed reports whether the ship has been hit.
func (s *EnemyShip) IsDestroyed() bool {
	return s.destroyed
}

// IsBonus reports whether this is the special ship.
func (s *EnemyShip) IsBonus() bool {
	return s.bonus
}
