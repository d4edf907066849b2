//go:build ebiten

package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var keyCodes = map[Key][]ebiten.Key{
	KeyLeft:   {ebiten.KeyArrowLeft},
	KeyRight:  {ebiten.KeyArrowRight},
	KeyA:      {ebiten.KeyA},
	KeyD:      {ebiten.KeyD},
	KeySpace:  {ebiten.KeySpace},
	KeyP:      {ebiten.KeyP},
	KeyR:      {ebiten.KeyR},
	KeyQ:      {ebiten.KeyQ},
	KeyEscape: {ebiten.KeyEscape},
}

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k Key) bool {
	for _, code := range keyCodes[k] {
		if ebiten.IsKeyPressed(code) {
			return true
		}
	}
	return false
}

func (ebitenKeys) JustPressed(k Key) bool {
	for _, code := range keyCodes[k] {
		if inpututil.IsKeyJustPressed(code) {
			return true
		}
	}
	return false
}

// app adapts a Session to ebiten.Game.
type app struct {
	session *Session
	width   int
	height  int
}

func (a *app) Update() error {
	if a.session.Update(ebitenKeys{}) {
		return ebiten.Termination
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(a.session.Background())

	snap := a.session.Snapshot()
	for _, r := range snap.Aliens {
		fillRect(screen, r, AlienColor)
	}
	fillRect(screen, snap.Ship, ShipColor)
	for _, r := range snap.Bullets {
		fillRect(screen, r, BulletColor)
	}

	score, ships := HUD(snap)
	scoreAt, shipsAt := HUDOrigins(a.width, score, ships)
	ebitenutil.DebugPrintAt(screen, score, scoreAt.X, scoreAt.Y)
	ebitenutil.DebugPrintAt(screen, ships, shipsAt.X, shipsAt.Y)

	if title, subtitle, ok := Overlay(snap); ok {
		a.drawOverlay(screen, title, subtitle)
	}
}

func (a *app) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	boxW := glyphW*max(len(title), len(subtitle)) + 4*hudMargin
	boxH := 3*glyphH + 2*hudMargin
	x := (a.width - boxW) / 2
	y := (a.height - boxH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), OverlayColor, false)
	ebitenutil.DebugPrintAt(screen, title, (a.width-glyphW*len(title))/2, y+hudMargin)
	ebitenutil.DebugPrintAt(screen, subtitle, (a.width-glyphW*len(subtitle))/2, y+hudMargin+2*glyphH)
}

func (a *app) Layout(int, int) (int, int) {
	return a.width, a.height
}

func fillRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Run opens the game window and blocks until the player quits or closes it.
func Run(opts Options) error {
	w := opts.Config.Window
	width, height := w.ScreenWidth, w.ScreenHeight
	if w.Fullscreen {
		if m := ebiten.Monitor(); m != nil {
			width, height = m.Size()
		}
		ebiten.SetFullscreen(true)
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Alien Invasion")

	session := NewSession(opts, width, height)
	session.logger.Info("window opened", "width", width, "height", height, "fullscreen", w.Fullscreen)

	err := ebiten.RunGame(&app{session: session, width: width, height: height})
	session.logger.Info("window closed")
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
