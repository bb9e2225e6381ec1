package audio

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func allEvents() []core.Event {
	return []core.Event{
		{Kind: core.EventJump},
		{Kind: core.EventPoint, Score: 1},
		{Kind: core.EventNewHighScore, Score: 1},
		{Kind: core.EventCollision, Score: 1},
		{Kind: core.EventRunOver, Score: 1},
		{Kind: core.EventRestart},
	}
}

func TestDispatchOnlyCues(t *testing.T) {
	rec := &Recorder{}
	Dispatch(rec, allEvents())

	expected := []core.EventKind{core.EventJump, core.EventNewHighScore, core.EventCollision}
	if got := rec.Played(); !reflect.DeepEqual(got, expected) {
		t.Errorf("played %v, expected %v", got, expected)
	}

	Dispatch(nil, allEvents()) // Must not panic
}

func TestForVariant(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SoundConfig
		expected []core.EventKind
	}{
		{"disabled", config.SoundConfig{Enabled: false, Jump: true, Collision: true}, nil},
		{"collision only", config.SoundConfig{Enabled: true, Collision: true}, []core.EventKind{core.EventCollision}},
		{"all cues", config.SoundConfig{Enabled: true, Jump: true, Collision: true, NewHighScore: true},
			[]core.EventKind{core.EventJump, core.EventNewHighScore, core.EventCollision}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &Recorder{}
			Dispatch(ForVariant(tc.cfg, rec), allEvents())

			got := rec.Played()
			if len(got) != len(tc.expected) {
				t.Fatalf("played %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("cue %d = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)

	bell.Play(core.EventJump)
	bell.Play(core.EventCollision)

	if buf.String() != "\a\a\a" {
		t.Errorf("bell wrote %q", buf.String())
	}
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	NewLogger(logger).Play(core.EventJump)

	out := buf.String()
	if !strings.Contains(out, "sound cue") || !strings.Contains(out, "tap") {
		t.Errorf("log output = %q", out)
	}
}

func TestMultiAndRecorderCount(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	m := Multi{a, b}

	m.Play(core.EventJump)
	m.Play(core.EventJump)
	m.Play(core.EventCollision)

	for _, r := range []*Recorder{a, b} {
		if r.Count(core.EventJump) != 2 || r.Count(core.EventCollision) != 1 {
			t.Errorf("unexpected cues %v", r.Played())
		}
	}
}

func TestSilent(t *testing.T) {
	var s Sink = Silent{}
	s.Play(core.EventCollision)
	if IsCue(core.EventPoint) || !IsCue(core.EventNewHighScore) {
		t.Error("IsCue mismatch")
	}
}
