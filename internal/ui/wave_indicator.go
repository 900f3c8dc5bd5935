package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WaveIndicator draws the raylib viewer's status line: score, lives and the
// wave number in roman numerals.
type WaveIndicator struct {
	X, Y         float32
	FontSize     float32
	Color        rl.Color
	OutlineColor rl.Color
}

func NewWaveIndicator(x, y, fontSize float32, c color.Color) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		FontSize:     fontSize,
		Color:        ColorToRL(c),
		OutlineColor: rl.Black,
	}
}

// Draw renders the indicator. The wave label is centered on X.
func (i *WaveIndicator) Draw(font rl.Font, score, lives, wave int) {
	rl.DrawTextEx(font, fmt.Sprintf("SCORE %05d", score), rl.NewVector2(10, i.Y), i.FontSize, 1, i.Color)
	livesText := fmt.Sprintf("LIVES %d", lives)
	lw := rl.MeasureTextEx(font, livesText, i.FontSize, 1)
	rl.DrawTextEx(font, livesText, rl.NewVector2(2*i.X-10-lw.X, i.Y), i.FontSize, 1, i.Color)

	label := toRoman(wave)
	if label == "" {
		return
	}
	size := rl.MeasureTextEx(font, label, i.FontSize, 1)
	x := i.X - size.X/2
	for dy := float32(-1); dy <= 1; dy++ {
		for dx := float32(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			rl.DrawTextEx(font, label, rl.NewVector2(x+dx, i.Y+dy), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, label, rl.NewVector2(x, i.Y), i.FontSize, 1, i.Color)
}

// ColorToRL converts any color to raylib's representation.
func ColorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
