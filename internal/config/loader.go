package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no explicit
// config path is given.
const EnvConfigPath = "INVADERS_CONFIG"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadInvaders loads Alien Invasion configuration.
// Search order: customPath -> $INVADERS_CONFIG -> ~/.invaders/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default.
// Files are layered over the defaults, so a file may override only some keys.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	if customPath == "" {
		customPath = GetEnv(EnvConfigPath, "")
	}

	// Explicit paths must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseInvaders(data)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseInvaders(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/invaders.yaml"); err == nil {
		if cfg, err := parseInvaders(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseInvaders(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseInvaders decodes YAML over the defaults and validates the result.
func parseInvaders(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that caps, speeds and sizes are positive.
// A screen too small for the fleet is not an error; the fleet is simply empty.
func (c InvadersConfig) Validate() error {
	s := c.Settings
	if s.BulletsAllowed <= 0 {
		return fmt.Errorf("%w: bullets_allowed must be positive, got %d", ErrInvalidConfig, s.BulletsAllowed)
	}
	if s.FleetDirection != 1 && s.FleetDirection != -1 {
		return fmt.Errorf("%w: fleet_direction must be 1 or -1, got %d", ErrInvalidConfig, s.FleetDirection)
	}
	if s.ShipsLimit < 0 {
		return fmt.Errorf("%w: ships_limit must not be negative, got %d", ErrInvalidConfig, s.ShipsLimit)
	}
	if s.HitPauseMS < 0 {
		return fmt.Errorf("%w: hit_pause_ms must not be negative, got %d", ErrInvalidConfig, s.HitPauseMS)
	}
	for i, v := range s.BgColor {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: bg_color[%d] out of range: %d", ErrInvalidConfig, i, v)
		}
	}
	if err := c.Terminal.validate("terminal"); err != nil {
		return err
	}
	if err := c.Window.validate("window"); err != nil {
		return err
	}
	if c.Window.ScreenWidth <= 0 || c.Window.ScreenHeight <= 0 {
		return fmt.Errorf("%w: window screen size must be positive, got %dx%d",
			ErrInvalidConfig, c.Window.ScreenWidth, c.Window.ScreenHeight)
	}
	return nil
}

func (p InvadersProfile) validate(name string) error {
	if p.FleetDropSpeed <= 0 {
		return fmt.Errorf("%w: %s.fleet_drop_speed must be positive, got %d", ErrInvalidConfig, name, p.FleetDropSpeed)
	}
	entities := []struct {
		kind string
		e    EntityConfig
	}{
		{"ship", p.Ship},
		{"bullet", p.Bullet},
		{"alien", p.Alien},
	}
	for _, ent := range entities {
		if ent.e.Width <= 0 || ent.e.Height <= 0 {
			return fmt.Errorf("%w: %s.%s size must be positive, got %dx%d",
				ErrInvalidConfig, name, ent.kind, ent.e.Width, ent.e.Height)
		}
		if ent.e.Speed <= 0 {
			return fmt.Errorf("%w: %s.%s.speed must be positive, got %g",
				ErrInvalidConfig, name, ent.kind, ent.e.Speed)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ApplyInvadersPreset adjusts the starting rules for a difficulty preset.
// Presets only change the session's starting values; nothing ramps up mid-game.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Settings.ShipsLimit = 5
		cfg.Settings.BulletsAllowed = 5
	case DifficultyNormal:
		cfg.Settings.ShipsLimit = 3
		cfg.Settings.BulletsAllowed = 3
	case DifficultyHard:
		cfg.Settings.ShipsLimit = 2
		cfg.Settings.BulletsAllowed = 1
	}
}
