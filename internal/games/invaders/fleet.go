package invaders

// FleetSize returns how many alien columns and rows fit on the screen.
// Each alien uses its own width and height as the gutter around it, and the
// bottom keeps room for the ship plus a two-alien gap. Counts never go negative.
func FleetSize(s *Settings, shipHeight int, d Dims) (cols, rows int) {
	if d.W <= 0 || d.H <= 0 {
		return 0, 0
	}
	availableX := s.ScreenW - 2*d.W
	cols = availableX / (2 * d.W)

	availableY := s.ScreenH - 3*d.H - shipHeight
	rows = availableY / (2 * d.H)

	return max(cols, 0), max(rows, 0)
}

// CreateFleet lays out a fresh grid of aliens in row-major order.
// The result depends only on its arguments, so repeated calls are identical.
func CreateFleet(s *Settings, shipHeight int, d Dims) []*Alien {
	cols, rows := FleetSize(s, shipHeight, d)
	aliens := make([]*Alien, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			aliens = append(aliens, &Alien{
				X:   float64(d.W + 2*d.W*col),
				Y:   float64(d.H + 2*d.H*row),
				W:   d.W,
				H:   d.H,
				Row: row,
				Col: col,
			})
		}
	}
	return aliens
}

// Fleet owns the live aliens and drives their collective movement.
type Fleet struct {
	settings   *Settings
	dims       Dims
	shipHeight int

	Aliens []*Alien
}

// NewFleet creates a fleet manager with a freshly laid out wave.
func NewFleet(s *Settings, shipHeight int, d Dims) *Fleet {
	f := &Fleet{settings: s, dims: d, shipHeight: shipHeight}
	f.Regenerate()
	return f
}

// Regenerate replaces the current aliens with a new full wave.
// The fleet direction is left as it is.
func (f *Fleet) Regenerate() {
	f.Aliens = CreateFleet(f.settings, f.shipHeight, f.dims)
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	f.Aliens = f.Aliens[:0]
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.Aliens)
}

// Empty reports whether the wave has been wiped out.
func (f *Fleet) Empty() bool {
	return len(f.Aliens) == 0
}

// Advance moves every alien one tick in the current direction and reports
// whether any alien now touches the edge it is moving toward.
func (f *Fleet) Advance() (edgeHit bool) {
	dir := f.settings.FleetDirection
	for _, a := range f.Aliens {
		a.Update(dir, f.dims.Speed)
	}
	for _, a := range f.Aliens {
		if a.TouchesEdge(f.settings.ScreenW, dir) {
			return true
		}
	}
	return false
}

// OnEdgeHit drops the whole fleet by the drop speed and reverses its direction.
func (f *Fleet) OnEdgeHit() {
	for _, a := range f.Aliens {
		a.Y += float64(f.settings.FleetDropSpeed)
	}
	f.settings.FleetDirection = -f.settings.FleetDirection
}
