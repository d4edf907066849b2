package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Snapshot is an immutable view of one tick, handed to renderers and tests.
// Slices are freshly allocated; mutating them does not affect the game.
type Snapshot struct {
	Tick           uint64
	State          string
	Score          int
	ShipsLeft      int
	GameActive     bool
	FleetDirection int
	Wave           int
	Kills          int

	Ship    core.Rect
	Bullets []core.Rect // In firing order
	Aliens  []core.Rect // Row-major creation order, minus the dead
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]core.Rect, len(g.bullets))
	for i, b := range g.bullets {
		bullets[i] = b.Box()
	}
	aliens := make([]core.Rect, len(g.fleet.Aliens))
	for i, a := range g.fleet.Aliens {
		aliens[i] = a.Box()
	}

	return Snapshot{
		Tick:           uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:          g.state,
		Score:          g.score,
		ShipsLeft:      g.shipsLeft,
		GameActive:     g.gameActive,
		FleetDirection: g.settings.FleetDirection,
		Wave:           g.wave,
		Kills:          g.kills,
		Ship:           g.ship.Box(),
		Bullets:        bullets,
		Aliens:         aliens,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipsLeft)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FleetDirection) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)          //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	h = hashRect(h, snap.Ship)
	for _, r := range snap.Bullets {
		h = hashRect(h, r)
	}
	for _, r := range snap.Aliens {
		h = hashRect(h, r)
	}
	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + uint64(r.X) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.Y) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.W) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.H) //#nosec G115 -- hash computation
	return h
}
