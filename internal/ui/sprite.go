package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/defs"
	"go-space-invaders/pkg/render"
)

// DrawSprite paints sprite s with raylib, one scale×scale square per bitmap
// cell.
func DrawSprite(s defs.SpriteType, c color.RGBA, x, y, scale int) {
	bm := render.SpriteBitmap(s)
	if bm == nil {
		return
	}
	tint := ColorToRL(render.SpriteColor(s, c))
	bm.Each(func(cx, cy int) {
		rl.DrawRectangle(int32(x+cx*scale), int32(y+cy*scale), int32(scale), int32(scale), tint)
	})
}
