package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the tunable game parameters.
type Settings struct {
	LogLevel  string            `yaml:"log_level"`
	Seed      int64             `yaml:"seed"` // 0 = time based
	Screen    ScreenSettings    `yaml:"screen"`
	Player    PlayerSettings    `yaml:"player"`
	Formation FormationSettings `yaml:"formation"`
	Bonus     BonusSettings     `yaml:"bonus"`
	Effects   EffectSettings    `yaml:"effects"`
}

// ScreenSettings holds display and tick settings.
type ScreenSettings struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetTPS int `yaml:"target_tps"`
}

// PlayerSettings holds the player ship parameters.
type PlayerSettings struct {
	Lives               int           `yaml:"lives"`
	Speed               int           `yaml:"speed"`        // Pixels per tick
	BulletSpeed         int           `yaml:"bullet_speed"` // Negative = up
	ShootCooldown       time.Duration `yaml:"shoot_cooldown"`
	DestructionCooldown time.Duration `yaml:"destruction_cooldown"`
}

// FormationSettings holds the enemy grid parameters.
type FormationSettings struct {
	StartX           int           `yaml:"start_x"`
	StartY           int           `yaml:"start_y"`
	SpacingX         int           `yaml:"spacing_x"`
	SpacingY         int           `yaml:"spacing_y"`
	XSpeed           int           `yaml:"x_speed"`
	Descent          int           `yaml:"descent"`
	Margin           int           `yaml:"margin"`
	BulletSpeed      int           `yaml:"bullet_speed"`
	ShootingVariance time.Duration `yaml:"shooting_variance"`
}

// BonusSettings holds the special ship parameters.
type BonusSettings struct {
	Interval time.Duration `yaml:"interval"`
	Variance time.Duration `yaml:"variance"`
	Speed    int           `yaml:"speed"`
}

// EffectSettings holds visual effect timings.
type EffectSettings struct {
	ExplosionDuration time.Duration `yaml:"explosion_duration"`
}

// TickDuration is the simulated length of one tick.
func (s *Settings) TickDuration() time.Duration {
	return time.Second / time.Duration(s.Screen.TargetTPS)
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (s *Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate rejects settings the game cannot run with.
func (s *Settings) Validate() error {
	switch {
	case s.Screen.Width <= 0 || s.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidSettings, s.Screen.Width, s.Screen.Height)
	case s.Screen.TargetTPS <= 0:
		return fmt.Errorf("%w: target_tps must be positive", ErrInvalidSettings)
	case s.Player.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidSettings)
	case s.Player.BulletSpeed >= 0:
		return fmt.Errorf("%w: player bullet_speed must be negative", ErrInvalidSettings)
	case s.Formation.BulletSpeed <= 0:
		return fmt.Errorf("%w: formation bullet_speed must be positive", ErrInvalidSettings)
	case s.Formation.SpacingX <= 0 || s.Formation.SpacingY <= 0:
		return fmt.Errorf("%w: formation spacing must be positive", ErrInvalidSettings)
	case s.Formation.ShootingVariance < 0:
		return fmt.Errorf("%w: formation shooting_variance must not be negative", ErrInvalidSettings)
	case s.Bonus.Interval <= 0:
		return fmt.Errorf("%w: bonus interval must be positive", ErrInvalidSettings)
	case s.Bonus.Variance < 0 || s.Bonus.Variance >= s.Bonus.Interval:
		return fmt.Errorf("%w: bonus variance %v must be in [0, %v)", ErrInvalidSettings, s.Bonus.Variance, s.Bonus.Interval)
	}
	return nil
}

var global *Settings

// Init loads settings from path, or uses the embedded defaults if path is empty.
func Init(path string) error {
	s, err := Load(path)
	if err != nil {
		return err
	}
	global = s
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global settings. Panics if Init was not called.
func Cfg() *Settings {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Settings {
	s, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return s
}

// Load reads a YAML file over the embedded defaults. Fields missing from the
// file keep their default value.
func Load(path string) (*Settings, error) {
	s := &Settings{}
	if err := yaml.Unmarshal(defaultsYAML, s); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteYAML saves the settings, e.g. next to a telemetry run.
func (s *Settings) WriteYAML(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
