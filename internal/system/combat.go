package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// CombatSystem detects bullet hits and tells the hit entity it is destroyed.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, projectiles *ProjectileSystem) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		projectiles:     projectiles,
	}
}

func (s *CombatSystem) Update() {
	shipIDs := s.world.SortedShipIDs()

	for _, bulletID := range s.world.SortedBulletIDs() {
		bullet := s.world.Bullets[bulletID]

		if !bullet.IsPlayerBullet() {
			player := s.world.Player
			if player != nil && !player.IsDestroyed() && bullet.Collides(&player.Entity) {
				player.Destroy()
				s.projectiles.Remove(bulletID)
				s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit})
			}
			continue
		}

		for _, shipID := range shipIDs {
			ship, ok := s.world.Ships[shipID]
			if !ok || ship.IsDestroyed() || !bullet.Collides(&ship.Entity) {
				continue
			}
			// Points are read before Destroy so the award happens exactly once.
			points := ship.PointValue()
			ship.Destroy()
			s.projectiles.Remove(bulletID)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyDestroyed,
				Data: event.EnemyDestroyedData{ShipID: shipID, Points: points, Bonus: ship.IsBonus()},
			})
			break
		}
	}
}
