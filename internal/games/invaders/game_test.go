package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

// newTestGame starts an 80x24 terminal session on a fake clock.
func newTestGame(t *testing.T, mutate func(*config.InvadersConfig)) (*Game, *fakeClock) {
	t.Helper()

	cfg := config.DefaultInvadersConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	g.SetClock(clock.Now)
	g.Reset(testRuntime)
	return g, clock
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetStartsActive(t *testing.T) {
	g, _ := newTestGame(t, nil)
	snap := g.Snapshot()

	if snap.State != StateActive || !snap.GameActive {
		t.Errorf("expected an active session, got state %q active=%v", snap.State, snap.GameActive)
	}
	if snap.ShipsLeft != 3 {
		t.Errorf("ShipsLeft = %d, expected 3", snap.ShipsLeft)
	}
	if len(snap.Aliens) != 120 {
		t.Errorf("expected 120 aliens, got %d", len(snap.Aliens))
	}
	if len(snap.Bullets) != 0 {
		t.Errorf("expected no bullets, got %d", len(snap.Bullets))
	}
	if snap.Ship.X != 38 || snap.Ship.Y != 23 {
		t.Errorf("ship at (%d, %d), expected (38, 23)", snap.Ship.X, snap.Ship.Y)
	}
}

func TestFireRespectsBulletCap(t *testing.T) {
	g, _ := newTestGame(t, nil)

	fire := input(core.ActionFire)
	for i := range 30 {
		g.Step(fire)
		n := len(g.bullets)
		if n > g.settings.BulletsAllowed {
			t.Fatalf("tick %d: %d bullets exceeds cap %d", i, n, g.settings.BulletsAllowed)
		}
		if i == 2 && n != 3 {
			t.Fatalf("expected 3 bullets after 3 fire presses, got %d", n)
		}
	}
}

func TestHeldMovement(t *testing.T) {
	g, _ := newTestGame(t, nil)
	startX := g.ship.X

	g.Step(input(core.ActionRight))
	if g.ship.X != startX+0.75 {
		t.Errorf("ship x = %g after moving right, expected %g", g.ship.X, startX+0.75)
	}

	g.Step(input())
	if g.ship.X != startX+0.75 {
		t.Errorf("releasing the key should stop the ship, x = %g", g.ship.X)
	}

	for range 200 {
		g.Step(input(core.ActionLeft))
	}
	if g.ship.X != 0 {
		t.Errorf("ship should stop at the left wall, x = %g", g.ship.X)
	}
}

func TestBulletKillScores(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.fleet.Aliens = []*Alien{
		{X: 9, Y: 5, W: 3, H: 1},
		{X: 30, Y: 5, W: 3, H: 1},
	}
	g.bullets = []*Bullet{{X: 10, Y: 6, W: 1, H: 1, Speed: 1}}

	g.Step(input())

	snap := g.Snapshot()
	if snap.Score != 1 || snap.Kills != 1 {
		t.Errorf("score=%d kills=%d, expected 1 and 1", snap.Score, snap.Kills)
	}
	if len(snap.Bullets) != 0 {
		t.Errorf("the bullet should be spent, %d left", len(snap.Bullets))
	}
	if len(snap.Aliens) != 1 || snap.Aliens[0].X != 30 {
		t.Errorf("expected only the alien at x=30 to survive, got %+v", snap.Aliens)
	}
	if snap.Wave != 0 {
		t.Errorf("wave = %d, expected 0", snap.Wave)
	}
}

func TestWaveClearedRegeneratesFleet(t *testing.T) {
	g, _ := newTestGame(t, nil)
	full := len(CreateFleet(g.settings, g.profile.Ship.H, g.profile.Alien))

	g.fleet.Aliens = []*Alien{{X: 9, Y: 5, W: 3, H: 1}}
	g.bullets = []*Bullet{
		{X: 10, Y: 6, W: 1, H: 1, Speed: 1},
		{X: 60, Y: 15, W: 1, H: 1, Speed: 1},
	}

	g.Step(input())

	snap := g.Snapshot()
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if len(snap.Aliens) != full {
		t.Errorf("expected a fresh fleet of %d, got %d", full, len(snap.Aliens))
	}
	if len(snap.Bullets) != 0 {
		t.Errorf("bullets should be cleared on a new wave, got %d", len(snap.Bullets))
	}
	if snap.Wave != 1 {
		t.Errorf("wave = %d, expected 1", snap.Wave)
	}
}

func TestFleetEdgeHitInGame(t *testing.T) {
	g, _ := newTestGame(t, func(cfg *config.InvadersConfig) {
		cfg.Terminal.Alien.Speed = 0.5
	})
	g.fleet.Aliens = []*Alien{{X: 76.5, Y: 5, W: 3, H: 1}}

	g.Step(input())

	if g.settings.FleetDirection != -1 {
		t.Errorf("direction = %d, expected -1", g.settings.FleetDirection)
	}
	if a := g.fleet.Aliens[0]; a.X != 77 || a.Y != 6 {
		t.Errorf("alien at (%g, %g), expected (77, 6)", a.X, a.Y)
	}

	g.Step(input())
	if g.settings.FleetDirection != -1 {
		t.Errorf("fleet turned back immediately, direction = %d", g.settings.FleetDirection)
	}
	if a := g.fleet.Aliens[0]; a.X != 76.5 {
		t.Errorf("alien x = %g, expected 76.5", a.X)
	}
}

// tallShip leaves a row between the bottom edge and the top of the ship so a
// ship collision can happen without a bottom breach.
func tallShip(cfg *config.InvadersConfig) {
	cfg.Terminal.Ship.Height = 2
}

func TestShipHitStartsPause(t *testing.T) {
	g, clock := newTestGame(t, tallShip)
	full := len(CreateFleet(g.settings, g.profile.Ship.H, g.profile.Alien))

	g.fleet.Aliens = []*Alien{{X: 38, Y: 22, W: 3, H: 1}}
	g.bullets = []*Bullet{{X: 60, Y: 10, W: 1, H: 1, Speed: 1}}

	g.Step(input(core.ActionRight))

	snap := g.Snapshot()
	if snap.ShipsLeft != 2 {
		t.Fatalf("ShipsLeft = %d, expected 2", snap.ShipsLeft)
	}
	if snap.State != StateHitPause || !snap.GameActive {
		t.Fatalf("expected hit pause with the game active, got %q active=%v", snap.State, snap.GameActive)
	}
	if len(snap.Aliens) != full {
		t.Errorf("expected a fresh fleet of %d, got %d", full, len(snap.Aliens))
	}
	if len(snap.Bullets) != 0 {
		t.Errorf("bullets should be cleared, got %d", len(snap.Bullets))
	}
	if snap.Ship.X != 38 || snap.Ship.Y != 22 {
		t.Errorf("ship should be re-centered, got (%d, %d)", snap.Ship.X, snap.Ship.Y)
	}
	if g.ship.MovingLeft || g.ship.MovingRight {
		t.Error("ship movement should be cleared after a hit")
	}
	if !g.State().Paused {
		t.Error("State().Paused should be true during the hit pause")
	}

	// Frozen until the deadline, whatever the input
	frozen := snap.Hash()
	clock.Advance(749 * time.Millisecond)
	for range 5 {
		g.Step(input(core.ActionFire, core.ActionLeft))
	}
	if after := g.Snapshot(); after.Hash() != frozen {
		t.Fatalf("game advanced during the hit pause: tick %d -> %d", snap.Tick, after.Tick)
	}

	clock.Advance(time.Millisecond)
	g.Step(input())

	after := g.Snapshot()
	if after.State != StateActive {
		t.Errorf("expected active after the pause, got %q", after.State)
	}
	if after.Tick != snap.Tick+1 {
		t.Errorf("tick = %d, expected %d", after.Tick, snap.Tick+1)
	}
}

func TestQuitDuringHitPause(t *testing.T) {
	g, _ := newTestGame(t, tallShip)
	g.fleet.Aliens = []*Alien{{X: 38, Y: 22, W: 3, H: 1}}
	g.Step(input())

	if g.state != StateHitPause {
		t.Fatalf("expected hit pause, got %q", g.state)
	}

	res := g.Step(input(core.ActionQuit))
	if !res.State.Quitting {
		t.Error("quit should be honored during the hit pause")
	}
}

func TestBottomBreachCostsShip(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.fleet.Aliens = []*Alien{{X: 5, Y: 23, W: 3, H: 1}}

	g.Step(input())

	if g.shipsLeft != 2 {
		t.Errorf("ShipsLeft = %d, expected 2", g.shipsLeft)
	}
	if g.state != StateHitPause {
		t.Errorf("state = %q, expected %q", g.state, StateHitPause)
	}
}

func TestCollisionAndBreachSameTickCostOneShip(t *testing.T) {
	g, _ := newTestGame(t, nil)
	// Overlaps the ship on the bottom row: both checks fire
	g.fleet.Aliens = []*Alien{{X: 38, Y: 23, W: 3, H: 1}}

	g.Step(input())

	if g.shipsLeft != 2 {
		t.Errorf("ShipsLeft = %d, expected 2", g.shipsLeft)
	}
}

func TestLastShipEndsGame(t *testing.T) {
	g, _ := newTestGame(t, func(cfg *config.InvadersConfig) {
		tallShip(cfg)
		cfg.Settings.ShipsLimit = 1
	})
	g.fleet.Aliens = []*Alien{{X: 38, Y: 22, W: 3, H: 1}}

	g.Step(input())

	snap := g.Snapshot()
	if snap.ShipsLeft != 0 || snap.GameActive || snap.State != StateGameOver {
		t.Fatalf("expected game over with 0 ships, got ships=%d active=%v state=%q",
			snap.ShipsLeft, snap.GameActive, snap.State)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
	if len(snap.Aliens) != 1 {
		t.Errorf("the board should be left as it was, got %d aliens", len(snap.Aliens))
	}

	frozen := snap.Hash()
	for range 50 {
		g.Step(input(core.ActionFire, core.ActionRight, core.ActionPause))
	}
	if after := g.Snapshot(); after.Hash() != frozen {
		t.Error("the game kept simulating after game over")
	}
}

func TestThreeShipsCountDown(t *testing.T) {
	g, clock := newTestGame(t, tallShip)

	for want := 2; want >= 0; want-- {
		g.fleet.Aliens = []*Alien{{X: 38, Y: 22, W: 3, H: 1}}
		g.Step(input())
		if g.shipsLeft != want {
			t.Fatalf("ShipsLeft = %d, expected %d", g.shipsLeft, want)
		}
		clock.Advance(g.settings.HitPause)
		g.Step(input())
	}

	if g.GameActive() || g.shipsLeft < 0 {
		t.Errorf("expected game over with no ships, active=%v ships=%d", g.GameActive(), g.shipsLeft)
	}
}

func TestPlayerPauseToggle(t *testing.T) {
	g, _ := newTestGame(t, nil)

	g.Step(input(core.ActionPause))
	if g.state != StatePaused {
		t.Fatalf("state = %q, expected %q", g.state, StatePaused)
	}
	for range 10 {
		g.Step(input(core.ActionFire))
	}
	if g.tickCount != 0 || len(g.bullets) != 0 {
		t.Errorf("paused game advanced: tick=%d bullets=%d", g.tickCount, len(g.bullets))
	}

	g.Step(input(core.ActionPause))
	if g.state != StateActive || g.tickCount != 1 {
		t.Errorf("expected active at tick 1, got %q at tick %d", g.state, g.tickCount)
	}
}

func TestQuitStopsSimulation(t *testing.T) {
	g, _ := newTestGame(t, nil)

	res := g.Step(input(core.ActionQuit, core.ActionFire))
	if !res.State.Quitting {
		t.Fatal("expected Quitting after quit intent")
	}
	if g.tickCount != 0 || len(g.bullets) != 0 {
		t.Error("the quit tick should not be simulated")
	}
}

func TestDegenerateScreenHasEmptyFleet(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 6, ScreenH: 24, TickRate: 60})

	for range 20 {
		g.Step(input(core.ActionFire))
	}

	if g.fleet.Len() != 0 {
		t.Errorf("expected an empty fleet, got %d aliens", g.fleet.Len())
	}
	if g.Wave() != 0 || g.score != 0 {
		t.Errorf("an empty fleet is not a cleared wave: wave=%d score=%d", g.Wave(), g.score)
	}
	if !g.GameActive() {
		t.Error("the session should stay active")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t, func(cfg *config.InvadersConfig) {
		cfg.Settings.ShipsLimit = 1
	})
	g.fleet.Aliens = []*Alien{{X: 5, Y: 23, W: 3, H: 1}}
	g.Step(input())
	if g.GameActive() {
		t.Fatal("expected game over")
	}

	g.Reset(testRuntime)

	snap := g.Snapshot()
	if !snap.GameActive || snap.ShipsLeft != 1 || snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("Reset() did not start a fresh session: %+v", snap)
	}
	if snap.FleetDirection != 1 {
		t.Errorf("direction = %d, expected 1", snap.FleetDirection)
	}
}

func TestDeterminism(t *testing.T) {
	g1, _ := newTestGame(t, nil)
	g2, _ := newTestGame(t, nil)

	for i := range 600 {
		var in core.InputFrame
		switch {
		case i%7 == 0:
			in = input(core.ActionFire)
		case i%50 < 20:
			in = input(core.ActionLeft)
		case i%50 < 40:
			in = input(core.ActionRight, core.ActionFire)
		default:
			in = input()
		}
		g1.Step(in)
		g2.Step(in)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("state mismatch: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g, _ := newTestGame(t, nil)
	snap := g.Snapshot()
	snap.Aliens[0].X = -100

	if g.fleet.Aliens[0].X == -100 {
		t.Error("mutating a snapshot changed the game")
	}
}

func TestWindowedProfile(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	g := NewWindowed(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 1200, ScreenH: 800, TickRate: 60})

	// cols = (1200 - 120) / 120 = 9, rows = (800 - 120 - 48) / 80 = 7
	if n := g.fleet.Len(); n != 63 {
		t.Errorf("expected 63 aliens, got %d", n)
	}
	if box := g.ship.Box(); box.W != 60 || box.Y != 752 {
		t.Errorf("unexpected ship box %+v", box)
	}
}

func TestGameInterface(t *testing.T) {
	g := New()
	if g.ID() != "invaders" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() != "Alien Invasion" {
		t.Errorf("Title() = %q", g.Title())
	}
}
