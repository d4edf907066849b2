package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in Alien Invasion configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file fails to parse.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Settings: InvadersSettings{
			BulletsAllowed: 3,
			FleetDirection: 1,
			ShipsLimit:     3,
			HitPauseMS:     750,
			BgColor:        [3]int{0, 0, 0},
		},
		Terminal: InvadersProfile{
			FleetDropSpeed: 1,
			Ship:           EntityConfig{Width: 3, Height: 1, Speed: 0.75},
			Bullet:         EntityConfig{Width: 1, Height: 1, Speed: 0.6},
			Alien:          EntityConfig{Width: 3, Height: 1, Speed: 0.05},
		},
		Window: WindowProfile{
			InvadersProfile: InvadersProfile{
				FleetDropSpeed: 10,
				Ship:           EntityConfig{Width: 60, Height: 48, Speed: 6},
				Bullet:         EntityConfig{Width: 3, Height: 15, Speed: 8},
				Alien:          EntityConfig{Width: 60, Height: 40, Speed: 2},
			},
			ScreenWidth:  1200,
			ScreenHeight: 800,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
