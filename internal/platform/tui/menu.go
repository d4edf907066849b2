package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem is one line of the title menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var defaultMenuItems = []MenuItem{
	{Label: "Play", Choice: MenuChoicePlay},
	{Label: "High Scores", Choice: MenuChoiceScores},
	{Label: "Quit", Choice: MenuChoiceQuit},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	highScore int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. The store is only read for the high score.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     defaultMenuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(centerStyled("A L I E N   I N V A S I O N", menuTitleStyle, m.width))
	b.WriteString("\n")
	b.WriteString("\n")

	if m.highScore > 0 {
		b.WriteString(centerStyled(fmt.Sprintf("High score: %d", m.highScore), menuDimStyle, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		label, style := "  "+item.Label, lipgloss.NewStyle()
		if i == m.cursor {
			label, style = "> "+item.Label, menuCursor
		}
		b.WriteString(centerStyled(label, style, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", menuDimStyle, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text by its plain width, then applies style.
func centerStyled(text string, style lipgloss.Style, width int) string {
	padding := max((width-lipgloss.Width(text))/2, 0)
	return strings.Repeat(" ", padding) + style.Render(text)
}
