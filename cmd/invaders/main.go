// invaders is a fixed-timestep Alien Invasion shooter for the terminal and the desktop.
//
// Usage:
//
//	invaders play             - Play in the terminal
//	invaders window           - Play in a desktop window (build with -tags ebiten)
//	invaders menu             - Start menu with scoreboard
//	invaders serve            - Start SSH server for remote play
//	invaders scores           - Show high scores
//	invaders list             - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	// Also registers the game
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

const gameID = "invaders"

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Alien Invasion - shoot down the fleet before it lands",
	Long: `Alien Invasion is a fixed-timestep arcade shooter. A fleet of aliens
sweeps across the screen, dropping a row every time it touches an edge.
Shoot them all to call in the next wave; lose your ships and it's over.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games

Examples:
  invaders play
  invaders play --difficulty hard
  invaders window --fullscreen
  invaders serve --ssh :2222
  invaders scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadGameConfig applies the CLI config flags and loads the result.
// A broken config is reported and the defaults are used instead.
func loadGameConfig() config.InvadersConfig {
	if flagDifficulty != "" && config.ParseDifficulty(flagDifficulty) == "" {
		log.Warn("unknown difficulty, using config values", "difficulty", flagDifficulty)
	}
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	cfg, err := invaders.LoadConfig()
	if err != nil {
		log.Warn("could not load config, using defaults", "error", err)
	}
	return cfg
}

// playerName picks the name scores are saved under.
func playerName() string {
	return config.GetEnv("USER", "")
}
