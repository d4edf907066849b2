package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	ShipSprite  = "/A\\"
	AlienSprite = "{@}"
	BulletChar  = '|'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	for _, r := range snap.Aliens {
		drawSprite(dst, r, AlienSprite, core.ColorBrightGreen)
	}
	drawSprite(dst, snap.Ship, ShipSprite, core.ColorCyan)
	for _, r := range snap.Bullets {
		dst.DrawRect(r, BulletChar, core.ColorBrightYellow)
	}

	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

// drawSprite fills r with the sprite's runes, repeating them across wide boxes.
func drawSprite(dst *core.Screen, r core.Rect, sprite string, c core.Color) {
	runes := []rune(sprite)
	for y := r.Y; y < r.Bottom(); y++ {
		for i := range r.W {
			dst.SetColor(r.X+i, y, runes[i%len(runes)], c)
		}
	}
}

// renderHUD draws the score and the remaining ships right-aligned on the top row.
// Row 1 already belongs to the fleet, so both lines share row 0.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf("Score: %d   Remaining Ships: %d", snap.Score, snap.ShipsLeft)
	dst.DrawTextRight(0, 1, hud, core.ColorBrightWhite)
}

// renderOverlay draws state messages.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.State {
	case StateHitPause:
		drawCenteredBox(dst, "SHIP HIT!", fmt.Sprintf("Ships left: %d", snap.ShipsLeft))
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  |  Q quit", snap.Score))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
