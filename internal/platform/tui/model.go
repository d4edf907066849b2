package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// waveCounter is implemented by games that count cleared waves.
type waveCounter interface {
	Wave() int
}

// GameModel is the Bubble Tea model that drives one game at a fixed tick rate.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	hold       *HoldTracker
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState
	now        func() time.Time

	standalone bool // Quit the program on back-to-menu instead of handing control back
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a game model for the given game. Scores are saved under player.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		store:      store,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		hold:       NewHoldTracker(DefaultHoldInitial, DefaultHoldRepeat),
		keyMapper:  NewKeyMapper(),
		help:       h,
		now:        time.Now,
	}
	m.screen = core.NewScreen(m.playfield().ScreenW, m.playfield().ScreenH)
	return m
}

// playfield returns the runtime config handed to the game, minus the help row.
func (m GameModel) playfield() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Init starts the session and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.playfield())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if err := m.saveScreenshot(); err != nil {
			return m, tea.Printf("screenshot failed: %v", err)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
	case action.Held():
		m.hold.Press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	field := m.playfield()
	m.screen.Resize(field.ScreenW, field.ScreenH)
	m.help.Width = msg.Width

	// The fleet layout depends on the screen size, so a live session restarts
	if !m.gameState.GameOver {
		m.game.Reset(field)
		m.hold.ReleaseAll()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.playfield())
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.hold.ReleaseAll()
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Apply(&m.inputFrame, m.now())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.saveScore()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the final score once per game over.
func (m *GameModel) saveScore() {
	if !m.gameState.GameOver || m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	waves := 0
	if wc, ok := m.game.(waveCounter); ok {
		waves = wc.Wave()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score, waves)
}

// saveScreenshot writes the current frame as plain text under ~/.invaders/screenshots.
func (m *GameModel) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
// It reports whether the player asked to go back to the menu instead.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, player)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(GameModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
