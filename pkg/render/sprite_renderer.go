package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/defs"
)

// SpriteRenderer draws sprite bitmaps with ebiten. Each bitmap is rasterized
// once, in white, and tinted per draw.
type SpriteRenderer struct {
	scale  int
	images map[defs.SpriteType]*ebiten.Image
}

func NewSpriteRenderer(scale int) *SpriteRenderer {
	return &SpriteRenderer{
		scale:  scale,
		images: make(map[defs.SpriteType]*ebiten.Image),
	}
}

// Draw paints sprite s with its top-left corner at (x, y).
func (r *SpriteRenderer) Draw(screen *ebiten.Image, s defs.SpriteType, c color.RGBA, x, y int) {
	img := r.image(s)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(SpriteColor(s, c))
	screen.DrawImage(img, op)
}

func (r *SpriteRenderer) image(s defs.SpriteType) *ebiten.Image {
	if img, ok := r.images[s]; ok {
		return img
	}
	bm := SpriteBitmap(s)
	if bm == nil {
		return nil
	}

	w, h := bm.Width*r.scale, bm.Height*r.scale
	pix := make([]byte, 4*w*h)
	bm.Each(func(cx, cy int) {
		for dy := 0; dy < r.scale; dy++ {
			for dx := 0; dx < r.scale; dx++ {
				i := 4 * ((cy*r.scale+dy)*w + cx*r.scale + dx)
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xff, 0xff, 0xff, 0xff
			}
		}
	})

	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	r.images[s] = img
	return img
}
