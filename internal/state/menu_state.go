// internal/state/menu_state.go
package state

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
)

// MenuState is the title screen. It lists the enemy tiers and waits for
// Space.
type MenuState struct {
	sm      *StateMachine
	sprites *render.SpriteRenderer
	frames  int
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm, sprites: render.NewSpriteRenderer(config.SpriteScale)}
}

func (m *MenuState) Enter() {
	m.frames = 0
}

func (m *MenuState) Update() error {
	m.frames++
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs, err := NewGameState(m.sm)
		if err != nil {
			return err
		}
		m.sm.SetState(gs)
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.sm.Env.Face
	w := screen.Bounds().Dx()

	title := "SPACE INVADERS"
	text.Draw(screen, title, face, (w-text.BoundString(face, title).Dx())/2, 120, config.Green)

	y := 190
	rows := []struct {
		sprite defs.SpriteType
		points int
	}{
		{defs.EnemyShipSpecial, defs.BonusPoints},
		{defs.EnemyShipC1, defs.PointValue(defs.EnemyShipC1)},
		{defs.EnemyShipB1, defs.PointValue(defs.EnemyShipB1)},
		{defs.EnemyShipA1, defs.PointValue(defs.EnemyShipA1)},
	}
	for _, row := range rows {
		c := config.White
		if row.sprite == defs.EnemyShipSpecial {
			c = config.Red
		}
		m.sprites.Draw(screen, row.sprite, c, w/2-80, y-12)
		text.Draw(screen, "= "+pointsLabel(row.points), face, w/2-30, y, config.TextLightColor)
		y += 40
	}

	// The prompt pulses once a second.
	t := float32(math.Sin(float64(m.frames)*2*math.Pi/float64(m.sm.Env.Settings.Screen.TargetTPS))+1) / 2
	prompt := render.DarkenColor(config.TextLightColor, float64(utils.Lerp(0.25, 1, t)))
	msg := "PRESS SPACE"
	text.Draw(screen, msg, face, (w-text.BoundString(face, msg).Dx())/2, y+40, prompt)
}

func (m *MenuState) Exit() {
	slog.Debug("leaving menu")
}

func pointsLabel(points int) string {
	if points == defs.BonusPoints {
		return "? MYSTERY"
	}
	return fmt.Sprintf("%d POINTS", points)
}
