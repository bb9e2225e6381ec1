package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Jump       key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Jump, k.Restart}, {k.Screenshot, k.Quit}}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up/w", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MenuKeyMap defines the variant picker bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	Game GameKeyMap
	Menu MenuKeyMap
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Game: DefaultGameKeyMap(),
		Menu: DefaultMenuKeyMap(),
	}
}

// MapKey translates a key message to a game action.
// Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Game.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Game.Jump):
		return core.ActionJump
	case key.Matches(msg, km.Game.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapKeyToFrame queues the action for a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	frame.Set(action)
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Menu.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Menu.Up):
		return MenuActionUp
	case key.Matches(msg, km.Menu.Down):
		return MenuActionDown
	case key.Matches(msg, km.Menu.Select):
		return MenuActionSelect
	case key.Matches(msg, km.Menu.Scores):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
