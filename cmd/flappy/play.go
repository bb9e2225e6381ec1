package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: $FLAPPY_VARIANT or bird).

Controls:
  Space/Up/W  - Jump
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play drone
  flappy play orb --seed 42
  flappy play bird --config ./my-bird.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := variantArg(args)

	game, err := loadGame(variant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available variants.")
		os.Exit(1)
	}

	hsFile, high := loadHighScore()

	store := openStore()

	var sound audio.Sink = audio.Silent{}
	if !flagMute {
		sound = audio.ForVariant(game.Config().Sound, audio.NewBell(os.Stderr))
	}

	res, runErr := tui.Run(game, runtimeConfig(high), tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})

	// Close store and persist before potential exit
	if store != nil {
		store.Close()
	}
	saveHighScore(hsFile, high, res.HighScore)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
