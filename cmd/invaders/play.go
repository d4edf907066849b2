package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right/A/D/H/L  - Move
  Space/Up/W          - Fire
  P                   - Pause
  R                   - Restart (after game over)
  Q/Ctrl+C            - Quit

Terminals do not report key releases, so holding a direction keeps
moving until the key stops repeating.

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml
  invaders play --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalConfig builds the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// openStore opens the scores database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	loadGameConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig(), playerName()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
