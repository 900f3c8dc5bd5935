package entity

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
)

// Bullet moves vertically at a constant signed speed. Positive speed is down.
type Bullet struct {
	Entity
	speed int
}

// NewBullet creates a bullet and picks its sprite from the direction of speed.
func NewBullet(x, y, speed int) *Bullet {
	b := &Bullet{
		Entity: newEntity(x, y, config.BulletWidth, config.BulletHeight, config.White),
		speed:  speed,
	}
	b.SetSprite()
	return b
}

// SetSprite derives the sprite from the current speed: upward bullets belong
// to the player, everything else, including zero speed, to the enemy.
func (b *Bullet) SetSprite() {
	if b.speed < 0 {
		b.sprite = defs.Bullet
	} else {
		b.sprite = defs.EnemyBullet
	}
}

// Update moves the bullet by one tick. Leaving the screen is the caller's
// concern.
func (b *Bullet) Update() {
	b.y += b.speed
}

// SetSpeed changes the speed. The sprite is kept until SetSprite is called.
func (b *Bullet) SetSpeed(speed int) {
	b.speed = speed
}

// Speed returns the signed speed.
func (b *Bullet) Speed() int {
	return b.speed
}

// IsPlayerBullet reports whether the bullet travels upward.
func (b *Bullet) IsPlayerBullet() bool {
	return b.speed < 0
}
