package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu and scoreboard",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, Esc returns to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	loadGameConfig()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, gameID, terminalConfig(), playerName()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
