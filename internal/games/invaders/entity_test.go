package invaders

import "testing"

func TestShipStartsBottomCenter(t *testing.T) {
	s := NewShip(Dims{W: 3, H: 1, Speed: 1}, 80, 24)

	box := s.Box()
	if box.X != 38 || box.Y != 23 {
		t.Errorf("ship box at (%d, %d), expected (38, 23)", box.X, box.Y)
	}
}

func TestShipUpdateClamps(t *testing.T) {
	tests := []struct {
		name        string
		x           float64
		left, right bool
		wantX       float64
	}{
		{"idle", 10, false, false, 10},
		{"right", 10, false, true, 12},
		{"left", 10, true, false, 8},
		{"both cancel", 10, true, true, 10},
		{"right wall", 76, false, true, 77},
		{"left wall", 1, true, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Ship{X: tc.x, Y: 23, W: 3, H: 1, Speed: 2, MovingLeft: tc.left, MovingRight: tc.right}
			s.Update(80)
			if s.X != tc.wantX {
				t.Errorf("x = %g, expected %g", s.X, tc.wantX)
			}
		})
	}
}

func TestShipCenterClearsMovement(t *testing.T) {
	s := &Ship{X: 0, Y: 0, W: 4, H: 2, MovingLeft: true, MovingRight: true}
	s.Center(100, 50)

	if s.X != 48 || s.Y != 48 {
		t.Errorf("centered at (%g, %g), expected (48, 48)", s.X, s.Y)
	}
	if s.MovingLeft || s.MovingRight {
		t.Error("Center() should clear held movement")
	}
}

func TestBulletSpawnAndTravel(t *testing.T) {
	ship := &Ship{X: 38, Y: 23, W: 3, H: 1}
	b := NewBullet(ship, Dims{W: 1, H: 1, Speed: 1})

	if b.X != 39 || b.Y != 23 {
		t.Fatalf("bullet spawned at (%g, %g), expected (39, 23)", b.X, b.Y)
	}

	for range 23 {
		b.Update()
	}
	if b.Y != 0 || b.OffScreen() {
		t.Fatalf("bullet at y=0 should still be on screen")
	}
	b.Update()
	if !b.OffScreen() {
		t.Error("bullet above the top edge should be off screen")
	}
}

func TestAlienTouchesEdge(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		dir  int
		want bool
	}{
		{"right edge heading right", 77, 1, true},
		{"right edge heading left", 77, -1, false},
		{"left edge heading left", 0, -1, true},
		{"left edge heading right", 0, 1, false},
		{"middle", 40, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &Alien{X: tc.x, Y: 3, W: 3, H: 1}
			if got := a.TouchesEdge(80, tc.dir); got != tc.want {
				t.Errorf("TouchesEdge() = %v, expected %v", got, tc.want)
			}
		})
	}
}
