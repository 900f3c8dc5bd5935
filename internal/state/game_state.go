// internal/state/game_state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/ui"
)

// GameState runs a session from keyboard input.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *system.RenderSystem
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine) (*GameState, error) {
	g, err := app.NewGame(sm.Env.Settings, app.Options{Waves: sm.Env.Waves})
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	w := sm.Env.Settings.Screen.Width
	return &GameState{
		sm:       sm,
		game:     g,
		renderer: system.NewRenderSystem(g.World, w),
		hud:      ui.NewHUD(sm.Env.Face, w),
	}, nil
}

func (g *GameState) Enter() {}

// Game exposes the running session.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	if err := g.game.Update(readInput()); err != nil {
		return err
	}
	if g.game.IsOver() {
		slog.Info("session finished", "score", g.game.Score().Score, "wave", g.game.Wave(), "ticks", g.game.Tick())
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
	return nil
}

func readInput() component.Input {
	return component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	score := g.game.Score()
	g.hud.Draw(screen, score.Score, score.Lives, g.game.Wave())

	if g.game.Phase() == component.PhaseWaveCleared {
		ui.DrawBanner(screen, g.sm.Env.Face, nil, fmt.Sprintf("WAVE %d CLEARED", g.game.Wave()))
	}
}

func (g *GameState) Exit() {}

// PauseState freezes the session. The clock is the game's own, so cooldowns
// do not run out while paused.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

var _ State = (*PauseState)(nil)

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {
	slog.Debug("paused", "tick", s.previous.game.Tick())
}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.previous)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	ui.DrawBanner(screen, s.sm.Env.Face, config.OverlayColor, "PAUSED", "P TO RESUME")
}

func (s *PauseState) Exit() {}

// GameOverState shows the final score until Enter is pressed.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
}

func NewGameOverState(sm *StateMachine, previous *GameState) *GameOverState {
	return &GameOverState{sm: sm, previous: previous}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewMenuState(s.sm))
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	sc := s.previous.game.Score()
	ui.DrawBanner(screen, s.sm.Env.Face, config.OverlayColor,
		"GAME OVER",
		fmt.Sprintf("SCORE %d", sc.Score),
		fmt.Sprintf("ACCURACY %.0f%%", sc.Accuracy()*100),
		"ENTER FOR MENU")
}

func (s *GameOverState) Exit() {}
