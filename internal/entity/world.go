// internal/entity/world.go
package entity

import (
	"sort"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/types"
)

// World is the active set of entities. The driver owns it: entities never see
// it and never reference one another.
type World struct {
	NextID     types.EntityID
	Ships      map[types.EntityID]*EnemyShip
	Bullets    map[types.EntityID]*Bullet
	Lifecycles map[types.EntityID]*component.Lifecycle
	Player     *Ship
	Bonus      types.EntityID
	Phase      component.GamePhase
}

func NewWorld() *World {
	return &World{
		NextID:     1,
		Ships:      make(map[types.EntityID]*EnemyShip),
		Bullets:    make(map[types.EntityID]*Bullet),
		Lifecycles: make(map[types.EntityID]*component.Lifecycle),
		Phase:      component.PhasePlaying,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddShip registers a ship and returns its ID.
func (w *World) AddShip(s *EnemyShip) types.EntityID {
	id := w.NewEntity()
	w.Ships[id] = s
	return id
}

// AddBullet registers a bullet and returns its ID.
func (w *World) AddBullet(b *Bullet) types.EntityID {
	id := w.NewEntity()
	w.Bullets[id] = b
	return id
}

// RemoveShip drops a ship and its bookkeeping.
func (w *World) RemoveShip(id types.EntityID) {
	delete(w.Ships, id)
	delete(w.Lifecycles, id)
	if w.Bonus == id {
		w.Bonus = 0
	}
}

// RemoveBullet drops a bullet and returns it for reuse.
func (w *World) RemoveBullet(id types.EntityID) *Bullet {
	b := w.Bullets[id]
	delete(w.Bullets, id)
	return b
}

// BonusShip returns the special ship if one is live.
func (w *World) BonusShip() *EnemyShip {
	if w.Bonus == 0 {
		return nil
	}
	return w.Ships[w.Bonus]
}

// SortedShipIDs returns ship IDs in creation order.
func (w *World) SortedShipIDs() []types.EntityID {
	return sortedIDs(w.Ships)
}

// SortedBulletIDs returns bullet IDs in creation order.
func (w *World) SortedBulletIDs() []types.EntityID {
	return sortedIDs(w.Bullets)
}

// ClearBullets removes every bullet, returning them for reuse.
func (w *World) ClearBullets() []*Bullet {
	out := make([]*Bullet, 0, len(w.Bullets))
	for _, id := range w.SortedBulletIDs() {
		out = append(out, w.RemoveBullet(id))
	}
	return out
}

// ClearShips removes every enemy, the bonus ship included.
func (w *World) ClearShips() {
	for id := range w.Ships {
		w.RemoveShip(id)
	}
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
