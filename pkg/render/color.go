// pkg/render/color.go
package render

import (
	"image/color"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
)

// SpriteColor picks the draw color of an entity. Explosions use their own
// tint whatever the entity's color is.
func SpriteColor(s defs.SpriteType, entityColor color.RGBA) color.RGBA {
	if s == defs.Explosion {
		return config.ExplosionColor
	}
	return entityColor
}

// DarkenColor scales the brightness of a color by factor.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
