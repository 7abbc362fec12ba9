package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  WASD/Arrows - Move
  Mouse click - Walk to the clicked cell
  P/Esc/Space - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 lives, slower ghosts
  normal - 3 lives, standard speed
  hard   - 2 lives, faster ghosts

Examples:
  pacman play
  pacman play --difficulty hard
  pacman play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	preset := cfg.Difficulty
	if flagDifficulty != "" {
		preset = config.DifficultyPreset(flagDifficulty)
	}
	settings := config.SettingsForPreset(preset)

	runtime := core.RuntimeConfig{
		TickRate:     cfg.Game.TickRate,
		Seed:         cfg.Game.Seed,
		Lives:        settings.Lives,
		UpdatePeriod: settings.UpdatePeriod,
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var saver tui.ScoreSaver
	if store != nil {
		saver = store
	}
	runErr := tui.Run(saver, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
