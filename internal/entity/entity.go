// Package entity holds the movable objects of the playfield and the
// driver-owned world that collects them.
package entity

import (
	"image"
	"image/color"

	"go-space-invaders/internal/defs"
)

// Entity is the positioned, sized and sprited base embedded by every object
// on the playfield. Size is fixed at construction.
type Entity struct {
	x, y          int
	width, height int
	color         color.RGBA
	sprite        defs.SpriteType
}

func newEntity(x, y, width, height int, c color.RGBA) Entity {
	return Entity{x: x, y: y, width: width, height: height, color: c}
}

// Position returns the top-left corner.
func (e *Entity) Position() (int, int) {
	return e.x, e.y
}

// X returns the left edge.
func (e *Entity) X() int { return e.x }

// Y returns the top edge.
func (e *Entity) Y() int { return e.y }

// SetPosition places the entity, used when a pooled object is reissued.
func (e *Entity) SetPosition(x, y int) {
	e.x, e.y = x, y
}

// Width returns the collision box width.
func (e *Entity) Width() int { return e.width }

// Height returns the collision box height.
func (e *Entity) Height() int { return e.height }

// Color returns the tint the sprite is drawn with.
func (e *Entity) Color() color.RGBA { return e.color }

// Sprite returns the current sprite type.
func (e *Entity) Sprite() defs.SpriteType { return e.sprite }

// Bounds returns the collision box.
func (e *Entity) Bounds() image.Rectangle {
	return image.Rect(e.x, e.y, e.x+e.width, e.y+e.height)
}

// Collides reports whether the two collision boxes overlap.
func (e *Entity) Collides(other *Entity) bool {
	return e.Bounds().Overlaps(other.Bounds())
}
