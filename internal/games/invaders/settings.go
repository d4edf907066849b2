package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Settings is the per-session rule set. Everything is fixed at session start
// except FleetDirection, which only Fleet.OnEdgeHit may flip.
type Settings struct {
	ScreenW        int
	ScreenH        int
	BulletsAllowed int
	FleetDropSpeed int
	FleetDirection int // Always +1 or -1
	ShipsLimit     int
	HitPause       time.Duration
	BgColor        [3]uint8
}

// Dims describes the box and per-tick speed of one entity kind.
type Dims struct {
	W, H  int
	Speed float64
}

// Profile bundles the entity dimensions for one coordinate system.
type Profile struct {
	FleetDropSpeed int
	Ship           Dims
	Bullet         Dims
	Alien          Dims
}

// TerminalProfile converts the cell-based profile from configuration.
func TerminalProfile(cfg config.InvadersConfig) Profile {
	return profileFrom(cfg.Terminal)
}

// WindowProfile converts the pixel-based profile from configuration.
func WindowProfile(cfg config.InvadersConfig) Profile {
	return profileFrom(cfg.Window.InvadersProfile)
}

func profileFrom(p config.InvadersProfile) Profile {
	return Profile{
		FleetDropSpeed: p.FleetDropSpeed,
		Ship:           dimsFrom(p.Ship),
		Bullet:         dimsFrom(p.Bullet),
		Alien:          dimsFrom(p.Alien),
	}
}

func dimsFrom(e config.EntityConfig) Dims {
	return Dims{W: e.Width, H: e.Height, Speed: e.Speed}
}

// NewSettings builds the session settings for the given screen bounds.
func NewSettings(cfg config.InvadersConfig, p Profile, screenW, screenH int) *Settings {
	s := cfg.Settings
	return &Settings{
		ScreenW:        screenW,
		ScreenH:        screenH,
		BulletsAllowed: s.BulletsAllowed,
		FleetDropSpeed: p.FleetDropSpeed,
		FleetDirection: normalizeDirection(s.FleetDirection),
		ShipsLimit:     s.ShipsLimit,
		HitPause:       time.Duration(s.HitPauseMS) * time.Millisecond,
		BgColor:        [3]uint8{uint8(s.BgColor[0]), uint8(s.BgColor[1]), uint8(s.BgColor[2])}, //#nosec G115 -- validated 0..255
	}
}

func normalizeDirection(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}
