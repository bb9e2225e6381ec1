// Package flappy implements the side-scrolling obstacle game shared by all
// flappy variants: a bird or drone that falls at a constant rate, jumps on
// demand, and must fly through the gaps of scrolling pylons.
//
// Session is the pure simulation. Skin draws its snapshots. Game ties the
// two together for the platform through the registry.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Game runs one variant for the platform.
type Game struct {
	variant string
	cfg     config.FlappyConfig
	session *Session
	skin    *Skin
	rc      core.RuntimeConfig
}

// Load creates a game for a built-in variant. configPath overrides the
// usual config search path when set.
func Load(variant, configPath string) (*Game, error) {
	cfg, err := config.Load(variant, configPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(variant, cfg), nil
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(variant string, cfg config.FlappyConfig) *Game {
	return &Game{variant: variant, cfg: cfg}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name of the variant.
func (g *Game) Title() string {
	return g.cfg.Title
}

// Config returns the variant configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset starts a fresh session. The best score already reached by this
// game is kept when it beats the one in cfg.
func (g *Game) Reset(rc core.RuntimeConfig) {
	high := rc.HighScore
	if g.session != nil {
		high = core.Max(high, g.session.HighScore())
	}
	g.rc = rc
	g.session = NewSession(g.cfg, rc.Seed, high)
	g.skin = NewSkin(g.cfg.Title, g.cfg.Skin, g.cfg.World, rc.Seed+1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.rc)
	}
	events := g.session.Step(in)
	if g.session.State() == StatePlaying && !core.HasEvent(events, core.EventRestart) {
		g.skin.Advance()
	}
	return core.StepResult{
		State:  g.session.GameState(),
		Events: events,
	}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		dst.Clear()
		return
	}
	g.skin.Render(dst, g.session.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{HighScore: g.rc.HighScore}
	}
	return g.session.GameState()
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{World: g.cfg.World}
	}
	return g.session.Snapshot()
}

// Session returns the running session, or nil before the first Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Register every built-in variant with the registry
func init() {
	for _, id := range config.Variants() {
		title := id
		if cfg, err := config.Builtin(id); err == nil {
			title = cfg.Title
		}
		registry.Register(id, title, func(configPath string) (registry.Game, error) {
			return Load(id, configPath)
		})
	}
}
