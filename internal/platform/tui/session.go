package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// sessionView is the screen a session is currently showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game or scoreboard -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	gameID     string
	view       sessionView
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session for player that plays gameID.
func NewSessionModel(store *storage.Store, gameID string, cfg core.RuntimeConfig, player string) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		player: player,
		gameID: gameID,
		menu:   NewMenuModel(store, gameID, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuChoicePlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			// Only registered games are ever handed to a session
			m.menu = NewMenuModel(m.store, m.gameID, m.config)
			return m, nil
		}
		gameModel := NewGameModel(game, m.store, m.config, m.player)
		m.gameModel = &gameModel
		m.view = viewGame
		return m, m.gameModel.Init()

	case MenuChoiceScores:
		title := m.gameID
		for _, info := range registry.List() {
			if info.ID == m.gameID {
				title = info.Title
			}
		}
		sb := NewScoreboardModel(m.store, m.gameID, title, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.view = viewScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		// Ticks already in flight are dropped by the menu
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when showing the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu returns to a fresh title menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.store, m.gameID, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, gameID string, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(
		NewSessionModel(store, gameID, cfg, player),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
