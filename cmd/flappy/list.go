package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered variant with its entity shape and rules.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Shape", "Rules")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----", "-----")

	for _, g := range games {
		shape, rules := "?", "?"
		if cfg, err := config.Load(g.ID, ""); err == nil {
			shape = cfg.Entity.Shape
			rules = describeRules(cfg)
		}
		fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, shape, rules)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play <id>' to play a variant.")
}

func describeRules(cfg config.FlappyConfig) string {
	rules := "instant reset"
	if cfg.Rules.GameOver {
		rules = "game over"
	}
	if cfg.Sound.Enabled {
		rules += ", sound"
	}
	if cfg.Scoring.Trigger == config.TriggerCrossing {
		rules += ", crossing"
	}
	return rules
}
