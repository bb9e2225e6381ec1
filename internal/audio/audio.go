// Package audio turns simulation events into sound cues. Playback is
// fire-and-forget: sinks never report errors back to the game loop.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sink plays the cue for one event kind.
type Sink interface {
	Play(kind core.EventKind)
}

// IsCue reports whether an event kind has a sound cue.
func IsCue(kind core.EventKind) bool {
	switch kind {
	case core.EventJump, core.EventCollision, core.EventNewHighScore:
		return true
	}
	return false
}

// Dispatch plays the cue of every event that has one, in order.
func Dispatch(sink Sink, events []core.Event) {
	if sink == nil {
		return
	}
	for _, e := range events {
		if IsCue(e.Kind) {
			sink.Play(e.Kind)
		}
	}
}

// filter passes through only the cues a variant enables.
type filter struct {
	cfg  config.SoundConfig
	next Sink
}

// ForVariant wraps sink so that only the cues enabled in cfg reach it.
// A variant with sound disabled gets a silent sink.
func ForVariant(cfg config.SoundConfig, sink Sink) Sink {
	if !cfg.Enabled || sink == nil {
		return Silent{}
	}
	return &filter{cfg: cfg, next: sink}
}

func (f *filter) Play(kind core.EventKind) {
	var on bool
	switch kind {
	case core.EventJump:
		on = f.cfg.Jump
	case core.EventCollision:
		on = f.cfg.Collision
	case core.EventNewHighScore:
		on = f.cfg.NewHighScore
	}
	if on {
		f.next.Play(kind)
	}
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.EventKind) {}

// Bell rings the terminal bell. Every cue sounds the same; the collision
// cue rings twice.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w, usually the controlling terminal.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings the bell.
func (b *Bell) Play(kind core.EventKind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	seq := "\a"
	if kind == core.EventCollision {
		seq = "\a\a"
	}
	//nolint:errcheck // Fire-and-forget
	io.WriteString(b.w, seq)
}

// Logger reports cues to a logger at debug level.
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a sink that logs cues.
func NewLogger(logger *log.Logger) *Logger {
	return &Logger{logger: logger}
}

// Play logs the cue.
func (l *Logger) Play(kind core.EventKind) {
	l.logger.Debug("sound cue", "cue", cueName(kind))
}

// cueName returns the asset-style name of a cue.
func cueName(kind core.EventKind) string {
	switch kind {
	case core.EventJump:
		return "tap"
	case core.EventCollision:
		return "game_over"
	case core.EventNewHighScore:
		return "new_high_score"
	}
	return kind.String()
}

// Multi plays every cue on all sinks in order.
type Multi []Sink

// Play forwards the cue.
func (m Multi) Play(kind core.EventKind) {
	for _, s := range m {
		s.Play(kind)
	}
}

// Recorder remembers cues. Useful in tests and headless runs.
type Recorder struct {
	mu     sync.Mutex
	played []core.EventKind
}

// Play records the cue.
func (r *Recorder) Play(kind core.EventKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, kind)
}

// Played returns a copy of the recorded cues.
func (r *Recorder) Played() []core.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.EventKind, len(r.played))
	copy(out, r.played)
	return out
}

// Count returns how many times a cue was played.
func (r *Recorder) Count(kind core.EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, k := range r.played {
		if k == kind {
			n++
		}
	}
	return n
}
