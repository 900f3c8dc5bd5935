// internal/system/render.go
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/pkg/render"
)

// RenderSystem draws the playfield with ebiten.
type RenderSystem struct {
	world   *entity.World
	sprites *render.SpriteRenderer
	width   int
}

func NewRenderSystem(world *entity.World, screenWidth int) *RenderSystem {
	return &RenderSystem{
		world:   world,
		sprites: render.NewSpriteRenderer(config.SpriteScale),
		width:   screenWidth,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.StrokeLine(screen, 0, config.HUDHeight, float32(s.width), config.HUDHeight, 1, config.HUDLineColor, false)

	for _, id := range s.world.SortedShipIDs() {
		s.drawEntity(screen, &s.world.Ships[id].Entity)
	}
	for _, id := range s.world.SortedBulletIDs() {
		s.drawEntity(screen, &s.world.Bullets[id].Entity)
	}
	if p := s.world.Player; p != nil {
		s.drawEntity(screen, &p.Entity)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, e *entity.Entity) {
	x, y := e.Position()
	s.sprites.Draw(screen, e.Sprite(), e.Color(), x, y)
}
