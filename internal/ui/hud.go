// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/pkg/render"
)

// HUD is the status strip above the playfield.
type HUD struct {
	face    font.Face
	sprites *render.SpriteRenderer
	width   int
}

func NewHUD(face font.Face, screenWidth int) *HUD {
	return &HUD{
		face:    face,
		sprites: render.NewSpriteRenderer(1),
		width:   screenWidth,
	}
}

// Draw shows score on the left, the wave in roman numerals in the middle and
// one small ship per remaining life on the right.
func (h *HUD) Draw(screen *ebiten.Image, score, lives, wave int) {
	baseline := config.HUDHeight/2 + config.HUDFontSize/2

	text.Draw(screen, fmt.Sprintf("SCORE %05d", score), h.face, 10, baseline, config.TextLightColor)

	if label := toRoman(wave); label != "" {
		w := text.BoundString(h.face, label).Dx()
		text.Draw(screen, label, h.face, (h.width-w)/2, baseline, config.TextLightColor)
	}

	iconW := config.ShipWidth / config.SpriteScale
	x := h.width - 10 - iconW
	for i := 0; i < lives; i++ {
		h.sprites.Draw(screen, defs.Ship, config.Green, x, baseline-config.ShipHeight/config.SpriteScale)
		x -= iconW + 4
	}
}

// DrawBanner centers lines of text on the screen. A non-nil shade is painted
// over the whole screen first.
func DrawBanner(screen *ebiten.Image, face font.Face, shade color.Color, lines ...string) {
	b := screen.Bounds()
	if shade != nil {
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), shade, false)
	}

	lineHeight := face.Metrics().Height.Ceil() + 6
	y := b.Dy()/2 - lineHeight*len(lines)/2 + lineHeight
	for _, line := range lines {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (b.Dx()-w)/2, y, config.TextLightColor)
		y += lineHeight
	}
}
