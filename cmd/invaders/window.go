package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/window"
)

var flagFullscreen bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window with real held-key movement.

The window frontend needs a binary built with the ebiten tag:
  go build -tags ebiten ./cmd/invaders

Controls:
  Left/Right/A/D  - Move (while held)
  Space           - Fire
  P               - Pause
  R               - Restart (after game over)
  Q/Esc           - Quit

Examples:
  invaders window
  invaders window --fullscreen
  invaders window --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Fill the primary monitor")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg := loadGameConfig()
	if flagFullscreen {
		cfg.Window.Fullscreen = true
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	err := window.Run(window.Options{
		Config:   cfg,
		Store:    store,
		Player:   playerName(),
		TickRate: flagFPS,
		Logger:   logger,
	})
	if errors.Is(err, window.ErrUnavailable) {
		return fmt.Errorf("%w (try 'invaders play' for the terminal version)", err)
	}
	return err
}
