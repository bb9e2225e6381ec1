// Package registry maps variant IDs to game factories.
// Variants register themselves in init() functions so the CLI and menu can
// list and start them by ID. Registration only records the factory; games
// are built, and their configuration read, on Create.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is what the loop driver runs. Implementations hold no terminal
// state; the platform maps keys to actions, drives ticks, and displays
// the screen buffer.
type Game interface {
	// ID returns the variant identifier used by the CLI and score storage.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh session. RuntimeConfig carries the seed and the
	// best score loaded at startup.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick, applying the queued
	// actions, and reports the resulting state and events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the current score, best score and phase.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance. configPath names a custom config
// file; empty means the game's own search path.
type Factory func(configPath string) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	order     []string
	mu        sync.RWMutex
)

// Register adds a game factory under a display title.
// Panics on a duplicate ID.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
	order = append(order, id)
}

// List returns all registered games in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	return result
}

// IDs returns the registered IDs sorted alphabetically.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, len(order))
	copy(ids, order)
	sort.Strings(ids)
	return ids
}

// Create instantiates a game by ID, optionally from a custom config file.
func Create(id, configPath string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	g, err := f(configPath)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return g, nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
