// Package window runs the game in a desktop window with real held-key input.
// The ebiten frontend is only compiled with the "ebiten" build tag; the session
// logic in this file is shared by both builds.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the ebiten tag, rebuild with -tags ebiten")

// Palette for entities and text.
var (
	ShipColor    = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	AlienColor   = color.RGBA{R: 90, G: 230, B: 90, A: 255}
	BulletColor  = color.RGBA{R: 255, G: 230, B: 80, A: 255}
	OverlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 190}
)

// Debug font metrics used by ebitenutil.DebugPrintAt.
const (
	glyphW    = 6
	glyphH    = 16
	hudMargin = 10
)

// Options configures a window session.
type Options struct {
	Config   config.InvadersConfig
	Store    *storage.Store // Optional
	Player   string
	TickRate int
	Logger   *log.Logger // Optional; defaults to the global logger
}

// Key is a physical key the window frontend reads.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyA
	KeyD
	KeySpace
	KeyP
	KeyR
	KeyQ
	KeyEscape
)

// KeyState reports keyboard state for the current frame.
type KeyState interface {
	// Pressed reports whether k is down right now.
	Pressed(k Key) bool
	// JustPressed reports whether k went down this frame.
	JustPressed(k Key) bool
}

// Decode turns the keyboard state into one tick of intents.
// Movement follows the keys while they are down; everything else fires once per press.
func Decode(keys KeyState, frame *core.InputFrame) {
	frame.Clear()

	if keys.Pressed(KeyLeft) || keys.Pressed(KeyA) {
		frame.Set(core.ActionLeft)
	}
	if keys.Pressed(KeyRight) || keys.Pressed(KeyD) {
		frame.Set(core.ActionRight)
	}
	if keys.JustPressed(KeySpace) {
		frame.Set(core.ActionFire)
	}
	if keys.JustPressed(KeyP) {
		frame.Set(core.ActionPause)
	}
	if keys.JustPressed(KeyR) {
		frame.Set(core.ActionRestart)
	}
	if keys.JustPressed(KeyQ) || keys.JustPressed(KeyEscape) {
		frame.Set(core.ActionQuit)
	}
}

// Session drives one windowed game: input, stepping, restarts and score saving.
type Session struct {
	game       *invaders.Game
	store      *storage.Store
	player     string
	runtime    core.RuntimeConfig
	frame      core.InputFrame
	state      core.GameState
	scoreSaved bool
	logger     *log.Logger
}

// NewSession starts a windowed game of the given pixel size.
func NewSession(opts Options, width, height int) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		game:   invaders.NewWindowed(opts.Config),
		store:  opts.Store,
		player: opts.Player,
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: opts.TickRate,
		},
		frame:  core.NewInputFrame(),
		logger: logger,
	}
	s.game.Reset(s.runtime)
	s.state = s.game.State()
	return s
}

// Update runs one tick. It reports true when the player asked to quit.
func (s *Session) Update(keys KeyState) (quit bool) {
	Decode(keys, &s.frame)

	if s.frame.Has(core.ActionRestart) && s.state.GameOver {
		s.game.Reset(s.runtime)
		s.state = s.game.State()
		s.scoreSaved = false
		s.logger.Debug("new game", "player", s.player)
		return false
	}

	result := s.game.Step(s.frame)
	s.state = result.State
	if s.state.Quitting {
		return true
	}

	s.saveScore()
	return false
}

// saveScore records the final score once per game over.
func (s *Session) saveScore() {
	if !s.state.GameOver || s.scoreSaved {
		return
	}
	s.scoreSaved = true

	s.logger.Info("game over", "player", s.player, "score", s.state.Score, "waves", s.game.Wave())
	if s.store == nil || s.state.Score <= 0 {
		return
	}
	if _, err := s.store.SaveScore(s.game.ID(), s.player, s.state.Score, s.game.Wave()); err != nil {
		s.logger.Warn("could not save score", "error", err)
	}
}

// Snapshot returns the current frame for drawing.
func (s *Session) Snapshot() invaders.Snapshot {
	return s.game.Snapshot()
}

// Background returns the configured background color.
func (s *Session) Background() color.RGBA {
	bg := s.game.Settings().BgColor
	return color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: 255}
}

// TextColor picks black or white text, whichever reads better on the background.
func (s *Session) TextColor() color.RGBA {
	bg := s.Background()
	luma := (299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)) / 1000
	if luma > 128 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// HUD returns the score line and the remaining ships line.
func HUD(snap invaders.Snapshot) (score, ships string) {
	return fmt.Sprintf("Score: %d", snap.Score), fmt.Sprintf("Remaining Ships: %d", snap.ShipsLeft)
}

// HUDOrigins places the score at the top right with the ships line below it.
func HUDOrigins(width int, score, ships string) (scoreAt, shipsAt image.Point) {
	scoreAt = image.Pt(width-hudMargin-glyphW*len(score), hudMargin)
	shipsAt = image.Pt(width-hudMargin-glyphW*len(ships), hudMargin+glyphH)
	return scoreAt, shipsAt
}

// Overlay returns the centered message for the current state, if any.
func Overlay(snap invaders.Snapshot) (title, subtitle string, ok bool) {
	switch snap.State {
	case invaders.StateHitPause:
		return "SHIP HIT!", fmt.Sprintf("Ships left: %d", snap.ShipsLeft), true
	case invaders.StatePaused:
		return "PAUSED", "Press P to resume", true
	case invaders.StateGameOver:
		return "GAME OVER", fmt.Sprintf("Score: %d   R restart   Q quit", snap.Score), true
	}
	return "", "", false
}
