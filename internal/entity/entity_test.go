package entity

import (
	"testing"
	"time"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/timer"
)

func newClock() *timer.ManualClock {
	return timer.NewManualClock(time.Unix(0, 0))
}

func TestBulletSpriteFromSpeed(t *testing.T) {
	tests := []struct {
		speed int
		want  defs.SpriteType
	}{
		{-12, defs.Bullet},
		{-1, defs.Bullet},
		{0, defs.EnemyBullet},
		{1, defs.EnemyBullet},
		{4, defs.EnemyBullet},
	}

	for _, tt := range tests {
		b := NewBullet(0, 0, tt.speed)
		if got := b.Sprite(); got != tt.want {
			t.Errorf("NewBullet(speed=%d).Sprite() = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestBulletConstruction(t *testing.T) {
	b := NewBullet(5, 7, 3)
	if b.Width() != 6 || b.Height() != 10 {
		t.Errorf("bullet size = %dx%d, want 6x10", b.Width(), b.Height())
	}
	if b.Color() != config.White {
		t.Errorf("bullet color = %v, want white", b.Color())
	}
	if b.Speed() != 3 {
		t.Errorf("Speed() = %d, want 3", b.Speed())
	}
}

func TestBulletUpdate(t *testing.T) {
	b := NewBullet(10, 10, -12)
	for i := 0; i < 3; i++ {
		b.Update()
	}
	if x, y := b.Position(); x != 10 || y != -26 {
		t.Errorf("Position() after 3 updates = (%d, %d), want (10, -26)", x, y)
	}
	if b.Width() != 6 || b.Height() != 10 {
		t.Errorf("size changed to %dx%d", b.Width(), b.Height())
	}
}

func TestBulletSetSpeedKeepsSprite(t *testing.T) {
	b := NewBullet(0, 0, -6)
	b.SetSpeed(4)

	if b.Speed() != 4 {
		t.Errorf("Speed() = %d, want 4", b.Speed())
	}
	if b.Sprite() != defs.Bullet {
		t.Errorf("Sprite() after SetSpeed = %v, want unchanged %v", b.Sprite(), defs.Bullet)
	}
	b.SetSprite()
	if b.Sprite() != defs.EnemyBullet {
		t.Errorf("Sprite() after SetSprite = %v, want %v", b.Sprite(), defs.EnemyBullet)
	}
}

func TestEnemyShipScenarioB1(t *testing.T) {
	s := NewEnemyShip(newClock(), 100, 50, defs.EnemyShipB1)

	if x, y := s.Position(); x != 100 || y != 50 {
		t.Errorf("Position() = (%d, %d), want (100, 50)", x, y)
	}
	if s.Width() != 24 || s.Height() != 16 {
		t.Errorf("size = %dx%d, want 24x16", s.Width(), s.Height())
	}
	if s.Color() != config.White {
		t.Errorf("Color() = %v, want white", s.Color())
	}
	if s.PointValue() != 20 {
		t.Errorf("PointValue() = %d, want 20", s.PointValue())
	}
	if s.IsDestroyed() {
		t.Error("new ship is destroyed")
	}
}

func TestBonusShipScenario(t *testing.T) {
	s := NewBonusShip(newClock())

	if x, y := s.Position(); x != -32 || y != 60 {
		t.Errorf("Position() = (%d, %d), want (-32, 60)", x, y)
	}
	if s.Width() != 32 || s.Height() != 14 {
		t.Errorf("size = %dx%d, want 32x14", s.Width(), s.Height())
	}
	if s.Color() != config.Red {
		t.Errorf("Color() = %v, want red", s.Color())
	}
	if s.Sprite() != defs.EnemyShipSpecial {
		t.Errorf("Sprite() = %v, want %v", s.Sprite(), defs.EnemyShipSpecial)
	}
	if s.PointValue() != 100 {
		t.Errorf("PointValue() = %d, want 100", s.PointValue())
	}
	if !s.IsBonus() {
		t.Error("IsBonus() = false")
	}
}

func TestEnemyShipPointValues(t *testing.T) {
	tests := []struct {
		sprite defs.SpriteType
		want   int
	}{
		{defs.EnemyShipA1, 10},
		{defs.EnemyShipA2, 10},
		{defs.EnemyShipB1, 20},
		{defs.EnemyShipB2, 20},
		{defs.EnemyShipC1, 30},
		{defs.EnemyShipC2, 30},
		{defs.Explosion, 0},
		{defs.Bullet, 0},
		{defs.SpriteNone, 0},
	}

	for _, tt := range tests {
		s := NewEnemyShip(newClock(), 0, 0, tt.sprite)
		if got := s.PointValue(); got != tt.want {
			t.Errorf("PointValue(%v) = %d, want %d", tt.sprite, got, tt.want)
		}
	}
}

func TestEnemyShipAnimation(t *testing.T) {
	clock := newClock()
	s := NewEnemyShip(clock, 0, 0, defs.EnemyShipA1)

	s.Update()
	if s.Sprite() != defs.EnemyShipA1 {
		t.Fatalf("Update() before interval changed sprite to %v", s.Sprite())
	}

	want := []defs.SpriteType{defs.EnemyShipA2, defs.EnemyShipA1, defs.EnemyShipA2}
	for i, w := range want {
		clock.Advance(config.AnimationInterval)
		s.Update()
		// Extra calls within the same interval are no-ops.
		s.Update()
		if s.Sprite() != w {
			t.Errorf("frame %d = %v, want %v", i, s.Sprite(), w)
		}
	}
}

func TestEnemyShipAnimationPairs(t *testing.T) {
	tests := []struct {
		from, to defs.SpriteType
	}{
		{defs.EnemyShipB1, defs.EnemyShipB2},
		{defs.EnemyShipC2, defs.EnemyShipC1},
		{defs.EnemyShipSpecial, defs.EnemyShipSpecial},
	}

	for _, tt := range tests {
		clock := newClock()
		s := NewEnemyShip(clock, 0, 0, tt.from)
		clock.Advance(config.AnimationInterval)
		s.Update()
		if s.Sprite() != tt.to {
			t.Errorf("%v after one interval = %v, want %v", tt.from, s.Sprite(), tt.to)
		}
	}
}

func TestEnemyShipDestroy(t *testing.T) {
	clock := newClock()
	s := NewEnemyShip(clock, 0, 0, defs.EnemyShipC1)

	s.Destroy()
	s.Destroy()
	if !s.IsDestroyed() {
		t.Fatal("IsDestroyed() = false after Destroy")
	}
	if s.Sprite() != defs.Explosion {
		t.Fatalf("Sprite() = %v, want %v", s.Sprite(), defs.Explosion)
	}

	clock.Advance(5 * config.AnimationInterval)
	s.Update()
	if s.Sprite() != defs.Explosion {
		t.Errorf("Update() on destroyed ship changed sprite to %v", s.Sprite())
	}
	if s.PointValue() != 30 {
		t.Errorf("PointValue() after Destroy = %d, want 30", s.PointValue())
	}
}

func TestEnemyShipMove(t *testing.T) {
	s := NewEnemyShip(newClock(), 10, 10, defs.EnemyShipA1)
	s.Move(-50, 3)
	if x, y := s.Position(); x != -40 || y != 13 {
		t.Errorf("Position() = (%d, %d), want (-40, 13)", x, y)
	}
	if s.Sprite() != defs.EnemyShipA1 {
		t.Errorf("Move changed sprite to %v", s.Sprite())
	}
}

func TestCollides(t *testing.T) {
	ship := NewEnemyShip(newClock(), 100, 100, defs.EnemyShipA1)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 110, 105, true},
		{"left edge overlap", 95, 100, true},
		{"touching right edge", 124, 100, false},
		{"below", 100, 116, false},
		{"far away", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBullet(tt.x, tt.y, -1)
			if got := b.Collides(&ship.Entity); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}
