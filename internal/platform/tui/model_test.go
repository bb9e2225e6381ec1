package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// scriptedGame replays canned events and records the input it receives.
type scriptedGame struct {
	resets int
	frames [][]core.Action
	script map[int][]core.Event // Tick number (1-based) -> events
	state  core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{HighScore: cfg.HighScore}
}
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, append([]core.Action(nil), in.Actions...))
	events := g.script[len(g.frames)]
	for _, e := range events {
		switch e.Kind {
		case core.EventPoint:
			g.state.Score = e.Score
			g.state.HighScore = core.Max(g.state.HighScore, e.Score)
		case core.EventRunOver:
			g.state.GameOver = true
		case core.EventRestart:
			g.state.GameOver = false
			g.state.Score = 0
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func newTestModel(g *scriptedGame, opts Options) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 12, TickRate: 60, Seed: 1, HighScore: 4}, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if len(g.frames) != 0 {
		t.Fatal("keys must not step the game")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.frames) != 1 || len(g.frames[0]) != 2 {
		t.Fatalf("expected one frame with two jumps, got %v", g.frames)
	}

	update(t, m, TickMsg{})
	if len(g.frames[1]) != 0 {
		t.Errorf("frame should be drained after a tick, got %v", g.frames[1])
	}
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}

	update(t, m, TickMsg{})
	if len(g.frames) != 0 {
		t.Error("no ticks after quit")
	}
}

func TestModelDispatchesSound(t *testing.T) {
	g := &scriptedGame{script: map[int][]core.Event{
		1: {{Kind: core.EventJump}},
		2: {{Kind: core.EventPoint, Score: 1}, {Kind: core.EventCollision, Score: 1}, {Kind: core.EventRunOver, Score: 1}},
	}}
	rec := &audio.Recorder{}
	m := newTestModel(g, Options{Sound: rec})

	m, _ = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	played := rec.Played()
	if len(played) != 2 || played[0] != core.EventJump || played[1] != core.EventCollision {
		t.Errorf("played %v, expected [Jump Collision]", played)
	}
}

func TestModelRecordsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &scriptedGame{script: map[int][]core.Event{
		3: {{Kind: core.EventPoint, Score: 5}, {Kind: core.EventNewHighScore, Score: 5}},
		4: {{Kind: core.EventCollision, Score: 5}, {Kind: core.EventRunOver, Score: 5}},
		6: {{Kind: core.EventRestart}},
		8: {{Kind: core.EventCollision}, {Kind: core.EventRunOver, Score: 0}},
	}}
	m := newTestModel(g, Options{Store: store})

	for i := 0; i < 8; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 recorded runs, got %d", len(runs))
	}
	if runs[0].Score != 5 || runs[0].Ticks != 4 || !runs[0].NewHigh {
		t.Errorf("first run = %+v, expected score 5 over 4 ticks with a new high", runs[0])
	}
	if runs[1].Score != 0 || runs[1].NewHigh || runs[1].Ticks != 2 {
		t.Errorf("second run = %+v, expected score 0 over 2 ticks", runs[1])
	}

	res := m.Result()
	if res.Runs != 2 || res.HighScore != 5 {
		t.Errorf("Result() = %+v", res)
	}
}

func TestModelDefersWarnings(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	store.Close() // Saving will fail

	var buf bytes.Buffer
	logger := log.New(&buf)
	g := &scriptedGame{script: map[int][]core.Event{
		1: {{Kind: core.EventCollision}, {Kind: core.EventRunOver}},
	}}
	m := newTestModel(g, Options{Store: store, Logger: logger})

	m, _ = update(t, m, TickMsg{})
	if buf.Len() != 0 {
		t.Fatal("warnings must wait until the terminal is released")
	}

	m.flushNotices()
	if !strings.Contains(buf.String(), "could not record run") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&scriptedGame{}, Options{})

	view := m.View()
	if !strings.Contains(view, "scripted") {
		t.Errorf("view missing game frame: %q", view)
	}
	if !strings.Contains(view, "jump") || !strings.Contains(view, "quit") {
		t.Errorf("view missing key help: %q", view)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(&scriptedGame{}, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "scripted_") {
		t.Fatalf("expected one screenshot, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "scripted") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestModelInitCarriesHighScore(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{})

	if g.resets != 1 || g.State().HighScore != 4 {
		t.Errorf("Init should reset with the loaded high score, got %+v", g.State())
	}
	if m.Result().HighScore != 4 {
		t.Errorf("Result().HighScore = %d", m.Result().HighScore)
	}
}

func TestModelQuitFromGameOverReportsBest(t *testing.T) {
	g := &scriptedGame{script: map[int][]core.Event{
		1: {{Kind: core.EventPoint, Score: 9}, {Kind: core.EventNewHighScore, Score: 9}},
		2: {{Kind: core.EventCollision, Score: 9}, {Kind: core.EventRunOver, Score: 9}},
	}}
	m := newTestModel(g, Options{})

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	if !g.State().GameOver {
		t.Fatal("game should be over after the scripted collision")
	}

	m, _ = update(t, m, runeKey('q'))
	res := m.Result()
	if res.HighScore != 9 || res.Score != 9 || res.Runs != 1 {
		t.Errorf("Result() = %+v, expected high 9 score 9 runs 1", res)
	}
}
