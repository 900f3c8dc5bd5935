// internal/system/projectile.go
package system

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
)

// BulletPool recycles bullets between shots.
type BulletPool struct {
	free []*entity.Bullet
}

func NewBulletPool() *BulletPool {
	return &BulletPool{}
}

// Get returns a bullet at (x, y) moving at speed, reusing a recycled one when
// possible. A reused bullet gets its sprite re-derived explicitly because
// SetSpeed alone keeps the old one.
func (p *BulletPool) Get(x, y, speed int) *entity.Bullet {
	n := len(p.free)
	if n == 0 {
		return entity.NewBullet(x, y, speed)
	}
	b := p.free[n-1]
	p.free = p.free[:n-1]
	b.SetPosition(x, y)
	b.SetSpeed(speed)
	b.SetSprite()
	return b
}

// Recycle hands bullets back to the pool.
func (p *BulletPool) Recycle(bullets ...*entity.Bullet) {
	for _, b := range bullets {
		if b != nil {
			p.free = append(p.free, b)
		}
	}
}

// Size is the number of bullets waiting for reuse.
func (p *BulletPool) Size() int {
	return len(p.free)
}

// ProjectileSystem moves bullets and culls the ones that left the playfield.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	pool            *BulletPool
	top, bottom     int
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher, screenHeight int) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		pool:            NewBulletPool(),
		top:             config.HUDHeight,
		bottom:          screenHeight,
	}
}

// Fire spawns a bullet horizontally centered on x.
func (s *ProjectileSystem) Fire(x, y, speed int) types.EntityID {
	b := s.pool.Get(x-config.BulletWidth/2, y, speed)
	id := s.world.AddBullet(b)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BulletFired,
		Data: event.BulletFiredData{BulletID: id, ByPlayer: b.IsPlayerBullet()},
	})
	return id
}

func (s *ProjectileSystem) Update() {
	for _, id := range s.world.SortedBulletIDs() {
		b := s.world.Bullets[id]
		b.Update()
		if b.Y() < s.top || b.Y() > s.bottom {
			s.Remove(id)
		}
	}
}

// Remove takes a bullet out of play and returns it to the pool.
func (s *ProjectileSystem) Remove(id types.EntityID) {
	s.pool.Recycle(s.world.RemoveBullet(id))
}

// Clear removes every bullet in play.
func (s *ProjectileSystem) Clear() {
	s.pool.Recycle(s.world.ClearBullets()...)
}

// Pool exposes the bullet pool.
func (s *ProjectileSystem) Pool() *BulletPool {
	return s.pool
}
