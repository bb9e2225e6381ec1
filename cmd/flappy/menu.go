package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a game ends, you return to the menu to play again.
The best score carries over between variants.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

func runMenu(_ *cobra.Command, _ []string) {
	hsFile, high := loadHighScore()
	best := high

	store := openStore()

	cfg := runtimeConfig(best)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := loadGame(menuResult.GameID, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		var sound audio.Sink = audio.Silent{}
		if !flagMute {
			sound = audio.ForVariant(game.Config().Sound, audio.NewBell(os.Stderr))
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		cfg.HighScore = best

		res, err := tui.Run(game, cfg, tui.Options{
			Store:  store,
			Sound:  sound,
			Logger: logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		best = max(best, res.HighScore)
	}

	if store != nil {
		store.Close()
	}
	saveHighScore(hsFile, high, best)
}
