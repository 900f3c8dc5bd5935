// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

// Fixed entity geometry and timing. Collision boxes are in screen pixels.
const (
	BulletWidth  = 3 * 2
	BulletHeight = 5 * 2

	EnemyShipWidth  = 12 * 2
	EnemyShipHeight = 8 * 2

	BonusShipWidth  = 16 * 2
	BonusShipHeight = 7 * 2
	BonusShipStartX = -32
	BonusShipStartY = 60

	ShipWidth  = 13 * 2
	ShipHeight = 8 * 2

	AnimationInterval = 500 * time.Millisecond

	// Sprite bitmaps are drawn with this many screen pixels per bitmap cell.
	SpriteScale = 2

	HUDHeight    = 40
	HUDFontSize  = 14
	BottomMargin = 30
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Green = color.RGBA{0, 255, 0, 255}

	BackgroundColor = color.RGBA{0, 0, 0, 255}
	HUDLineColor    = color.RGBA{0, 255, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	ExplosionColor  = color.RGBA{255, 200, 60, 255}
)
