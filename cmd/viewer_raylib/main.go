// cmd/viewer_raylib/main.go
package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/timer"
	"go-space-invaders/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to settings YAML (empty = embedded defaults)")
	wavesPath := flag.String("waves", "", "Path to wave definitions YAML (empty = built-in waves)")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot play")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.SlogLevel()})))

	var waves defs.WaveTable
	if *wavesPath != "" {
		if waves, err = defs.LoadWaveDefinitions(*wavesPath); err != nil {
			slog.Error("failed to load waves", "path", *wavesPath, "error", err)
			os.Exit(1)
		}
	}

	// The viewer runs on wall-clock time.
	g, err := app.NewGame(settings, app.Options{Clock: timer.NewSystemClock(), Waves: waves})
	if err != nil {
		slog.Error("failed to start session", "error", err)
		os.Exit(1)
	}
	var pilot *app.Autopilot
	if *autoplay {
		pilot = app.NewAutopilot(g.Rng)
	}

	w, h := settings.Screen.Width, settings.Screen.Height
	rl.InitWindow(int32(w), int32(h), "Space Invaders | raylib viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Screen.TargetTPS))

	font := rl.GetFontDefault()
	indicator := ui.NewWaveIndicator(float32(w)/2, 12, 20, config.TextLightColor)

	for !rl.WindowShouldClose() {
		var in component.Input
		if pilot != nil {
			in = pilot.Input(g)
		} else {
			in = component.Input{
				Left:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
				Right: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
				Fire:  rl.IsKeyDown(rl.KeySpace),
			}
		}
		if err := g.Update(in); err != nil {
			slog.Error("update failed", "error", err)
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(ui.ColorToRL(config.BackgroundColor))
		rl.DrawLine(0, config.HUDHeight, int32(w), config.HUDHeight, ui.ColorToRL(config.HUDLineColor))
		drawWorld(g.World)

		score := g.Score()
		indicator.Draw(font, score.Score, score.Lives, g.Wave())
		if g.IsOver() {
			msg := "GAME OVER"
			tw := rl.MeasureText(msg, 40)
			rl.DrawText(msg, int32(w)/2-tw/2, int32(h)/2-20, 40, rl.Red)
		}
		rl.EndDrawing()
	}
	slog.Info("viewer closed", "score", g.Score().Score, "wave", g.Wave())
}

func drawWorld(world *entity.World) {
	draw := func(e *entity.Entity) {
		x, y := e.Position()
		ui.DrawSprite(e.Sprite(), e.Color(), x, y, config.SpriteScale)
	}
	for _, id := range world.SortedShipIDs() {
		draw(&world.Ships[id].Entity)
	}
	for _, id := range world.SortedBulletIDs() {
		draw(&world.Bullets[id].Entity)
	}
	if world.Player != nil {
		draw(&world.Player.Entity)
	}
}
