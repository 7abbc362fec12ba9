// pacman is a terminal Pac-Man built on a deterministic simulation core.
//
// Usage:
//
//	pacman play              - Play in the current terminal
//	pacman serve             - Start SSH server for remote play
//	pacman web               - Start WebSocket snapshot server
//	pacman scores            - Show the high score table
//
// Global flags:
//
//	--fps <rate>    - Raw simulation ticks per second (default: 24)
//	--seed <value>  - PRNG seed for reproducible games (0 = time-based)
//	--db <path>     - Scores database path (default: ~/.pacman/scores.db)
//	--config <path> - Custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   uint64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A terminal Pac-Man with a deterministic, replayable simulation core.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  web      - Start WebSocket snapshot server
  scores   - View high scores

Examples:
  pacman play
  pacman play --difficulty hard
  pacman serve --ssh :2222
  pacman web --addr :8080
  pacman scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config, default 24)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "PRNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the YAML config and overlays the global flags.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	if cfg.Game.TickRate <= 0 {
		cfg.Game.TickRate = 24
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = "~/.pacman/scores.db"
	}

	return cfg
}
