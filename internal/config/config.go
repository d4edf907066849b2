// Package config provides YAML-based configuration loading for the invaders game.
package config

// InvadersConfig contains all configuration for the Alien Invasion game.
// Values are fixed for the duration of a session; there is no hot reload.
type InvadersConfig struct {
	Settings InvadersSettings `yaml:"settings"`
	Terminal InvadersProfile  `yaml:"terminal"`
	Window   WindowProfile    `yaml:"window"`
}

// InvadersSettings holds rules shared by every frontend.
type InvadersSettings struct {
	BulletsAllowed int    `yaml:"bullets_allowed"` // Cap on live bullets
	FleetDirection int    `yaml:"fleet_direction"` // 1 = right, -1 = left
	ShipsLimit     int    `yaml:"ships_limit"`     // Starting ships_left
	HitPauseMS     int    `yaml:"hit_pause_ms"`    // Freeze after losing a ship
	BgColor        [3]int `yaml:"bg_color"`        // RGB background (window frontend)
}

// InvadersProfile holds entity dimensions and speeds for one coordinate system.
// Terminal sizes are in cells, window sizes in pixels; speeds are per tick.
type InvadersProfile struct {
	FleetDropSpeed int          `yaml:"fleet_drop_speed"`
	Ship           EntityConfig `yaml:"ship"`
	Bullet         EntityConfig `yaml:"bullet"`
	Alien          EntityConfig `yaml:"alien"`
}

// WindowProfile is the pixel profile plus the window geometry.
type WindowProfile struct {
	InvadersProfile `yaml:",inline"`
	ScreenWidth     int  `yaml:"screen_width"`
	ScreenHeight    int  `yaml:"screen_height"`
	Fullscreen      bool `yaml:"fullscreen"`
}

// EntityConfig defines the box and speed of one entity kind.
type EntityConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// DifficultyPreset represents a named starting configuration.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Unknown values yield "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
