package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// recordingGame is a registry.Game that records its inputs and reports a fixed state.
type recordingGame struct {
	inputs []core.InputFrame
	resets []core.RuntimeConfig
	state  core.GameState
	wave   int
}

func (g *recordingGame) ID() string    { return "tui_stub" }
func (g *recordingGame) Title() string { return "Stub" }
func (g *recordingGame) Wave() int     { return g.wave }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *recordingGame) State() core.GameState { return g.state }

func init() {
	registry.Register("tui_stub", func() registry.Game { return &recordingGame{} })
}

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

func newTestModel(t *testing.T, store *storage.Store) (GameModel, *recordingGame, *time.Time) {
	t.Helper()

	g := &recordingGame{}
	m := NewGameModel(g, store, testCfg, "ann")
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	m.Init()
	return m, g, &now
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelReservesHelpRow(t *testing.T) {
	_, g, _ := newTestModel(t, nil)

	if len(g.resets) != 1 {
		t.Fatalf("expected one reset, got %d", len(g.resets))
	}
	if got := g.resets[0]; got.ScreenW != 80 || got.ScreenH != 23 {
		t.Errorf("game got %dx%d, expected 80x23", got.ScreenW, got.ScreenH)
	}
}

func TestGameModelHeldMovement(t *testing.T) {
	m, g, now := newTestModel(t, nil)

	m, _ = send(t, m, keyRunes("a"))
	m, _ = send(t, m, TickMsg{})
	*now = now.Add(DefaultHoldInitial)
	m, _ = send(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("left should be held on the first tick")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("left should be released once the hold window passed")
	}
}

func TestGameModelFireIsOnePulse(t *testing.T) {
	m, g, _ := newTestModel(t, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, TickMsg{})

	if !g.inputs[0].Has(core.ActionFire) || g.inputs[1].Has(core.ActionFire) {
		t.Errorf("fire should reach exactly one tick: %v, %v", g.inputs[0].Actions, g.inputs[1].Actions)
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, cmd := send(t, m, keyRunes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model should render nothing")
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	m, g, _ := newTestModel(t, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.state.Paused = true
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	m, g, _ := newTestModel(t, nil)

	// Restart is ignored while playing
	m, _ = send(t, m, keyRunes("r"))
	m, _ = send(t, m, TickMsg{})
	if len(g.resets) != 1 {
		t.Fatalf("restart during play should not reset, resets=%d", len(g.resets))
	}

	g.state.GameOver = true
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, keyRunes("r"))
	m, _ = send(t, m, TickMsg{})

	if len(g.resets) != 2 {
		t.Errorf("expected a reset after game over, resets=%d", len(g.resets))
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g, _ := newTestModel(t, store)
	g.state = core.GameState{Score: 7, GameOver: true}
	g.wave = 2

	for range 3 {
		m, _ = send(t, m, TickMsg{})
	}

	scores, err := store.TopScores("tui_stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved score, got %d", len(scores))
	}
	if got := scores[0]; got.Player != "ann" || got.Score != 7 || got.Waves != 2 {
		t.Errorf("saved %+v", got)
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g, _ := newTestModel(t, store)
	g.state = core.GameState{GameOver: true}
	send(t, m, TickMsg{})

	if high, _ := store.HighScore("tui_stub"); high != 0 {
		t.Errorf("a zero score should not be saved, got %d", high)
	}
}

func TestGameModelViewIncludesHelp(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	view := m.View()
	if !strings.HasPrefix(view, "stub") {
		t.Errorf("view should start with the game frame: %q", view[:min(len(view), 20)])
	}
	if !strings.Contains(view, "fire") || !strings.Contains(view, "quit") {
		t.Error("view should end with the key help")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "Hi", core.ColorGreen)
	s.DrawText(0, 1, "there")

	out := RenderScreen(s)
	if !strings.Contains(out, "Hi") || !strings.Contains(out, "there") {
		t.Errorf("rendered screen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestSessionFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, "tui_stub", testCfg, "ann")

	step := func(msg tea.Msg) {
		t.Helper()
		m, _ = m.Update(msg)
	}
	view := func() sessionView {
		t.Helper()
		return m.(SessionModel).view
	}

	// Menu: Play, High Scores, Quit
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if view() != viewScores {
		t.Fatalf("expected the scoreboard, got view %d", view())
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Stub") {
		t.Error("scoreboard should show the game title")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if view() != viewMenu {
		t.Fatalf("expected the menu after back, got view %d", view())
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if view() != viewGame {
		t.Fatalf("expected the game, got view %d", view())
	}

	step(TickMsg{})
	step(keyRunes("p"))
	step(TickMsg{})
	step(tea.KeyMsg{Type: tea.KeyEsc})
	// The stub never pauses, so back is ignored
	if view() != viewGame {
		t.Errorf("back during play should be ignored, got view %d", view())
	}

	step(keyRunes("q"))
	if !m.(SessionModel).quitting {
		t.Error("q in game should end the session")
	}
}
