package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Boxed is anything with a bounding box that can take part in a hit test.
type Boxed interface {
	Box() core.Rect
}

// Ship is the player's cannon. It sits on the bottom edge and only moves sideways.
type Ship struct {
	X, Y        float64
	W, H        int
	Speed       float64
	MovingLeft  bool
	MovingRight bool
}

// NewShip creates a ship centered on the bottom edge of the screen.
func NewShip(d Dims, screenW, screenH int) *Ship {
	s := &Ship{W: d.W, H: d.H, Speed: d.Speed}
	s.Center(screenW, screenH)
	return s
}

// Box returns the ship's bounding box.
func (s *Ship) Box() core.Rect {
	return core.RectAt(s.X, s.Y, s.W, s.H)
}

// Center puts the ship back at bottom-center and drops any held movement.
func (s *Ship) Center(screenW, screenH int) {
	s.X = float64(screenW-s.W) / 2
	s.Y = float64(screenH - s.H)
	s.MovingLeft = false
	s.MovingRight = false
}

// Update applies held movement, keeping the ship inside [0, screenW].
// Holding both directions cancels out.
func (s *Ship) Update(screenW int) {
	if s.MovingRight {
		s.X += s.Speed
	}
	if s.MovingLeft {
		s.X -= s.Speed
	}
	s.X = core.ClampF(s.X, 0, float64(screenW-s.W))
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	X, Y  float64
	W, H  int
	Speed float64
}

// NewBullet spawns a bullet whose top edge is centered on the ship's top edge.
func NewBullet(ship *Ship, d Dims) *Bullet {
	return &Bullet{
		X:     ship.X + float64(ship.W-d.W)/2,
		Y:     ship.Y,
		W:     d.W,
		H:     d.H,
		Speed: d.Speed,
	}
}

// Box returns the bullet's bounding box.
func (b *Bullet) Box() core.Rect {
	return core.RectAt(b.X, b.Y, b.W, b.H)
}

// Update moves the bullet up by its speed.
func (b *Bullet) Update() {
	b.Y -= b.Speed
}

// OffScreen reports whether the bullet's bottom edge has left the top of the screen.
func (b *Bullet) OffScreen() bool {
	return b.Box().Bottom() <= 0
}

// Alien is one member of the fleet.
type Alien struct {
	X, Y     float64
	W, H     int
	Row, Col int // Grid cell the alien was created in
}

// Box returns the alien's bounding box.
func (a *Alien) Box() core.Rect {
	return core.RectAt(a.X, a.Y, a.W, a.H)
}

// Update moves the alien sideways by direction*speed.
func (a *Alien) Update(direction int, speed float64) {
	a.X += float64(direction) * speed
}

// TouchesEdge reports whether the alien has reached the screen edge it is heading to.
func (a *Alien) TouchesEdge(screenW, direction int) bool {
	box := a.Box()
	if direction > 0 {
		return box.Right() >= screenW
	}
	return box.X <= 0
}
