// flappy is a terminal side-scroller: fly a bird or drone through the gaps
// of scrolling pylons.
//
// Usage:
//
//	flappy list                 - List available variants
//	flappy play [variant]       - Play a variant
//	flappy menu                 - Pick variants interactively
//	flappy scores [variant]     - Show run history
//	flappy simulate [variant]   - Run a variant headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--highscore <path>    - Set high score file (default: ~/.flappy/high_score.txt)
//	--log-level <level>   - Set log level (default: info)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagLogLevel  string

	settings = config.LoadSettings()
	logger   = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "flappy",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the pylons in your terminal",
	Long: `Flappy is a terminal side-scroller. Jump to stay aloft and fly
through the gaps between scrolling pylons. Every gap you clear scores a
point, and the best score survives between sessions.

Available commands:
  list      - Show all variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  scores    - View run history
  simulate  - Run a variant without a terminal

Examples:
  flappy list
  flappy play bird
  flappy menu
  flappy scores drone
  flappy simulate storm --autopilot --ticks 6000`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			logger.Warn("unknown log level, using info", "level", flagLogLevel)
			level = log.InfoLevel
		}
		logger.SetLevel(level)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", settings.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", settings.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", settings.HighScorePath, "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", settings.LogLevel, "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// variantArg returns the variant named on the command line, or the
// configured default.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return settings.Variant
}

// loadGame builds the game for a variant through the registry, applying a
// custom config file when one is given.
func loadGame(variant, customPath string) (*flappy.Game, error) {
	g, err := registry.Create(variant, customPath)
	if err != nil {
		return nil, err
	}
	game, ok := g.(*flappy.Game)
	if !ok {
		return nil, fmt.Errorf("variant %q is not a flappy game", variant)
	}
	warnUnreachableTrigger(variant, game.Config())
	return game, nil
}

// warnUnreachableTrigger logs when the exact pass-through test can never
// award a point with this obstacle geometry.
func warnUnreachableTrigger(variant string, cfg config.FlappyConfig) {
	trigger := cfg.Scoring.Trigger
	if trigger != "" && trigger != config.TriggerExact {
		return
	}
	if !cfg.ExactTriggerReachable() {
		logger.Warn("obstacles never line up with the entity; exact scoring will not award points",
			"variant", variant, "hint", "set scoring.trigger: crossing")
	}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(high int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	rc.HighScore = high
	return rc
}

// loadHighScore reads the persisted best score. Any failure yields 0.
func loadHighScore() (*storage.HighScoreFile, int) {
	file, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		logger.Warn("high score file unavailable", "err", err)
		return nil, 0
	}
	high, err := file.Load()
	if err != nil {
		logger.Warn("could not read high score, starting from 0", "path", file.Path(), "err", err)
		return file, 0
	}
	logger.Debug("loaded high score", "path", file.Path(), "score", high)
	return file, high
}

// saveHighScore writes the best of the loaded and reached scores. It is
// called once at exit. Failures are logged and the best score returned.
func saveHighScore(file *storage.HighScoreFile, loaded, reached int) int {
	best := max(loaded, reached)
	if file == nil {
		return best
	}
	if err := file.Save(best); err != nil {
		logger.Warn("could not save high score", "path", file.Path(), "err", err)
		return best
	}
	logger.Debug("saved high score", "path", file.Path(), "score", best)
	return best
}

// openStore opens the run history. The game works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
