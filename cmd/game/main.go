// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/state"
	"go-space-invaders/internal/telemetry"
	"go-space-invaders/pkg/render"
)

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "Path to settings YAML (empty = embedded defaults)")
	wavesPath := flag.String("waves", "", "Path to wave definitions YAML (empty = built-in waves)")
	headless := flag.Bool("headless", false, "Run an autopilot session without a window")
	maxTicks := flag.Int("max-ticks", 0, "Stop a headless run after N ticks (0 = until game over)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = from settings)")
	outputDir := flag.String("output-dir", "", "Directory for the telemetry CSV and a settings snapshot")
	pprofAddr := flag.String("pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	settings := config.Cfg()
	if *seed != 0 {
		settings.Seed = *seed
	}

	opts := &slog.HandlerOptions{Level: settings.SlogLevel()}
	if *headless {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	}

	var waves defs.WaveTable
	if *wavesPath != "" {
		var err error
		if waves, err = defs.LoadWaveDefinitions(*wavesPath); err != nil {
			slog.Error("failed to load waves", "path", *wavesPath, "error", err)
			os.Exit(1)
		}
	}

	if *pprofAddr != "" {
		go func() {
			slog.Info("pprof listening", "addr", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				slog.Error("pprof server stopped", "error", err)
			}
		}()
	}

	if *headless {
		if err := runHeadless(settings, waves, *maxTicks, *outputDir); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	face, err := render.NewHUDFace(config.HUDFontSize)
	if err != nil {
		slog.Error("failed to load font", "error", err)
		os.Exit(1)
	}
	sm := state.NewStateMachine(state.Env{Settings: settings, Waves: waves, Face: face})
	sm.SetState(state.NewMenuState(sm))

	ebiten.SetWindowSize(settings.Screen.Width, settings.Screen.Height)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetTPS(settings.Screen.TargetTPS)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, width: settings.Screen.Width, height: settings.Screen.Height}); err != nil {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}

func runHeadless(settings *config.Settings, waves defs.WaveTable, maxTicks int, outputDir string) error {
	g, err := app.NewGame(settings, app.Options{Waves: waves})
	if err != nil {
		return err
	}

	var out io.Writer
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		if err := settings.WriteYAML(filepath.Join(outputDir, "settings.yaml")); err != nil {
			return err
		}
		if err := writeWaves(filepath.Join(outputDir, "waves.yaml"), waves); err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(outputDir, "telemetry.csv"))
		if err != nil {
			return fmt.Errorf("creating telemetry file: %w", err)
		}
		defer f.Close()
		out = f
	}
	rec := telemetry.NewRecorder(g.EventDispatcher, g.Clock(), g.Score(), out)
	defer rec.Close()
	pilot := app.NewAutopilot(g.Rng)

	slog.Info("starting headless session", "seed", g.Rng.Seed(), "max_ticks", maxTicks)
	for !g.IsOver() {
		if maxTicks > 0 && g.Tick() >= uint64(maxTicks) {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
		if err := g.Update(pilot.Input(g)); err != nil {
			return err
		}
	}
	if err := rec.Err(); err != nil {
		return err
	}

	sum := rec.Summary()
	slog.Info("session summary",
		"ticks", g.Tick(),
		"waves", sum.Waves,
		"score", sum.FinalScore,
		"accuracy", sum.Accuracy,
		"mean_wave_sec", sum.MeanWaveSec,
		"stddev_wave_sec", sum.StdDevWaveSec,
		"ships_per_sec", sum.MeanShipsPerSec,
	)
	return nil
}

// writeWaves snapshots the wave table the run used.
func writeWaves(path string, waves defs.WaveTable) error {
	if waves == nil {
		waves = defs.DefaultWaves
	}
	data, err := defs.MarshalWaveDefinitions(waves)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing wave snapshot: %w", err)
	}
	return nil
}
