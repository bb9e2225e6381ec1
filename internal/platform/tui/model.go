package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options are the optional collaborators of a game run.
type Options struct {
	Store         *storage.Store // Run history, nil to skip recording
	Sound         audio.Sink     // Cue player, nil for silence
	Logger        *log.Logger    // Receives warnings after the program exits
	ScreenshotDir string         // Defaults to ~/.flappy/screenshots
}

// Result summarizes a finished game run.
type Result struct {
	Score     int
	HighScore int
	Runs      int
}

// notice is a warning held back until the terminal is released.
type notice struct {
	msg     string
	keyvals []any
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runTicks   int  // Ticks in the current run
	runNewHigh bool // The current run fired NewHighScore
	runs       int
	notices    *[]notice
}

// NewModel creates a model for the given game.
// The bottom row of the terminal is used for key help.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Silent{}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		keys:       NewKeyMapper(),
		help:       h,
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  core.GameState{HighScore: cfg.HighScore},
		notices:    &[]notice{},
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues actions for the next tick. Quit takes effect at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Game.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. The world is scaled to fit,
// so the game itself keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game one tick with all queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if !wasOver {
		m.runTicks++
	}
	audio.Dispatch(m.opts.Sound, result.Events)

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventNewHighScore:
			m.runNewHigh = true
		case core.EventRunOver:
			m.recordRun(ev.Score)
		case core.EventRestart:
			m.runTicks = 0
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores a finished run once and starts counting the next.
func (m *Model) recordRun(score int) {
	m.runs++
	if m.opts.Store != nil {
		_, err := m.opts.Store.SaveRun(storage.Run{
			Variant: m.game.ID(),
			Score:   score,
			Ticks:   m.runTicks,
			NewHigh: m.runNewHigh,
		})
		if err != nil {
			m.warn("could not record run", "err", err)
		}
	}
	m.runTicks = 0
	m.runNewHigh = false
}

func (m *Model) warn(msg string, keyvals ...any) {
	*m.notices = append(*m.notices, notice{msg: msg, keyvals: keyvals})
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.warn("could not save screenshot", "err", err)
			return
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("could not save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("could not save screenshot", "err", err)
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current frame and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Game))
}

// Result returns the outcome so far.
func (m Model) Result() Result {
	st := m.game.State()
	return Result{
		Score:     st.Score,
		HighScore: st.HighScore,
		Runs:      m.runs,
	}
}

// flushNotices logs held-back warnings.
func (m Model) flushNotices() {
	if m.opts.Logger == nil {
		return
	}
	for _, n := range *m.notices {
		m.opts.Logger.Warn(n.msg, n.keyvals...)
	}
	*m.notices = (*m.notices)[:0]
}

// Run plays the game until the player quits and returns the outcome.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.flushNotices()
		return m.Result(), err
	}
	return model.Result(), err
}
