// Package invaders implements the Alien Invasion simulation: a ship firing up
// at a descending, side-scrolling fleet. The package is pure logic; frontends
// feed it decoded intents and draw its snapshots.
package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameState constants
const (
	StateActive   = "active"    // Simulation running
	StateHitPause = "hit_pause" // Ship just lost; frozen until the pause deadline
	StatePaused   = "paused"    // Paused by the player
	StateGameOver = "gameover"  // No ships left; terminal
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// LoadConfig loads the configuration selected via SetConfigPath and
// SetDifficultyPreset. On error the defaults are returned with the error.
func LoadConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(configPath)
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game implements the Alien Invasion state machine.
type Game struct {
	// Game objects
	ship    *Ship
	bullets []*Bullet
	fleet   *Fleet

	// Game state
	state      string
	score      int
	shipsLeft  int
	gameActive bool
	tickCount  int
	wave       int // Fleets wiped out this session
	kills      int
	pauseUntil time.Time
	quitting   bool

	// Configuration
	runtime     core.RuntimeConfig
	cfg         config.InvadersConfig
	fixedConfig bool // Config supplied by the caller rather than loaded on Reset
	windowed    bool // Use the pixel profile instead of the cell profile
	profile     Profile
	settings    *Settings
	now         func() time.Time
}

// New creates a terminal game. Configuration is loaded on every Reset.
func New() *Game {
	return &Game{now: time.Now}
}

// NewWithConfig creates a terminal game with an explicit configuration.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true, now: time.Now}
}

// NewWindowed creates a game that uses the pixel profile of cfg.
func NewWindowed(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true, windowed: true, now: time.Now}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// SetClock replaces the time source used for the hit pause deadline.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// Reset starts a new session for the given screen bounds.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedConfig {
		// loadGameConfig in cmd/invaders logs this error once at startup
		g.cfg, _ = LoadConfig()
	}

	if g.windowed {
		g.profile = WindowProfile(g.cfg)
	} else {
		g.profile = TerminalProfile(g.cfg)
	}
	g.settings = NewSettings(g.cfg, g.profile, runtime.ScreenW, runtime.ScreenH)

	g.state = StateActive
	g.score = 0
	g.shipsLeft = g.settings.ShipsLimit
	g.gameActive = true
	g.tickCount = 0
	g.wave = 0
	g.kills = 0
	g.pauseUntil = time.Time{}
	g.quitting = false

	g.ship = NewShip(g.profile.Ship, runtime.ScreenW, runtime.ScreenH)
	g.bullets = make([]*Bullet, 0, g.settings.BulletsAllowed)
	g.fleet = NewFleet(g.settings, g.profile.Ship.H, g.profile.Alien)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Quit wins over everything, including the hit pause
	if in.Has(core.ActionQuit) {
		g.quitting = true
	}
	if g.quitting || g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateHitPause {
		if g.now().Before(g.pauseUntil) {
			return core.StepResult{State: g.State()}
		}
		g.state = StateActive
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StateActive
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.applyInput(in)
	g.ship.Update(g.settings.ScreenW)
	g.updateBullets()
	g.checkBulletAlienCollisions()
	g.updateAliens()

	return core.StepResult{State: g.State()}
}

// applyInput copies held movement onto the ship and handles the fire pulse.
func (g *Game) applyInput(in core.InputFrame) {
	g.ship.MovingLeft = in.Has(core.ActionLeft)
	g.ship.MovingRight = in.Has(core.ActionRight)

	if in.Has(core.ActionFire) {
		g.fireBullet()
	}
}

// fireBullet adds a bullet unless the cap is reached; extra presses are dropped.
func (g *Game) fireBullet() {
	if len(g.bullets) >= g.settings.BulletsAllowed {
		return
	}
	g.bullets = append(g.bullets, NewBullet(g.ship, g.profile.Bullet))
}

// updateBullets moves bullets and drops the ones that left the screen.
func (g *Game) updateBullets() {
	live := g.bullets[:0]
	for _, b := range g.bullets {
		b.Update()
		if !b.OffScreen() {
			live = append(live, b)
		}
	}
	g.bullets = live
}

// checkBulletAlienCollisions scores hits and starts a new wave when the fleet is gone.
func (g *Game) checkBulletAlienCollisions() {
	var killed int
	g.bullets, g.fleet.Aliens, killed = ResolveBulletAlien(g.bullets, g.fleet.Aliens)
	g.score += killed
	g.kills += killed

	if g.fleet.Empty() {
		if killed > 0 {
			g.wave++
		}
		g.bullets = g.bullets[:0]
		g.fleet.Regenerate()
	}
}

// updateAliens moves the fleet and checks whether it reached the player.
// A ship collision and a bottom breach in the same tick cost a single ship.
func (g *Game) updateAliens() {
	if g.fleet.Advance() {
		g.fleet.OnEdgeHit()
	}

	if CheckShipAlien(g.ship, g.fleet.Aliens) || CheckAliensBottom(g.fleet.Aliens, g.settings.ScreenH) {
		g.shipHit()
	}
}

// shipHit spends a ship. Losing the last one ends the game with the board frozen;
// otherwise the board is rebuilt and the simulation pauses briefly.
func (g *Game) shipHit() {
	if g.shipsLeft > 0 {
		g.shipsLeft--
	}
	if g.shipsLeft == 0 {
		g.gameActive = false
		g.state = StateGameOver
		return
	}

	g.fleet.Clear()
	g.bullets = g.bullets[:0]
	g.fleet.Regenerate()
	g.ship.Center(g.settings.ScreenW, g.settings.ScreenH)

	g.state = StateHitPause
	g.pauseUntil = g.now().Add(g.settings.HitPause)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.shipsLeft,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused || g.state == StateHitPause,
		Quitting: g.quitting,
	}
}

// Settings returns a copy of the session settings.
func (g *Game) Settings() Settings {
	return *g.settings
}

// GameActive reports whether the session is still being simulated.
func (g *Game) GameActive() bool {
	return g.gameActive
}

// Wave returns how many fleets have been wiped out this session.
func (g *Game) Wave() int {
	return g.wave
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
