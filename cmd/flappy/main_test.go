package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// captureLog sends the command logger to a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestSaveHighScoreKeepsBest(t *testing.T) {
	captureLog(t)
	path := filepath.Join(t.TempDir(), "high_score.txt")
	file, err := storage.NewHighScoreFile(path)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name            string
		loaded, reached int
		expected        int
	}{
		{"session below loaded", 7, 3, 7},
		{"session beat loaded", 7, 12, 12},
		{"nothing played", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := saveHighScore(file, tc.loaded, tc.reached); got != tc.expected {
				t.Errorf("saveHighScore() = %d, expected %d", got, tc.expected)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != strings.TrimSpace(string(data)) || string(data) == "" {
				t.Fatalf("file should hold a bare integer, got %q", data)
			}
			stored, err := file.Load()
			if err != nil || stored != tc.expected {
				t.Errorf("stored %d (%v), expected %d", stored, err, tc.expected)
			}
		})
	}
}

func TestSaveHighScoreFailureIsWarning(t *testing.T) {
	buf := captureLog(t)

	// A directory cannot be overwritten as a file
	dir := t.TempDir()
	file, err := storage.NewHighScoreFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := saveHighScore(file, 3, 5); got != 5 {
		t.Errorf("saveHighScore() = %d, expected 5", got)
	}
	if !strings.Contains(buf.String(), "could not save high score") {
		t.Errorf("expected a warning, got %q", buf.String())
	}

	if got := saveHighScore(nil, 8, 2); got != 8 {
		t.Errorf("saveHighScore(nil) = %d, expected 8", got)
	}
}

func TestLoadGameUsesRegistry(t *testing.T) {
	captureLog(t)
	t.Setenv("HOME", t.TempDir())

	game, err := loadGame(config.VariantOrb, "")
	if err != nil {
		t.Fatalf("loadGame failed: %v", err)
	}
	if game.ID() != config.VariantOrb || game.Config().Entity.Shape != config.ShapeCircle {
		t.Errorf("unexpected game %q shape %q", game.ID(), game.Config().Entity.Shape)
	}

	if _, err := loadGame("pong", ""); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestLoadGameWarnsWhenExactScoringCannotFire(t *testing.T) {
	buf := captureLog(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "fast.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  scroll_speed: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadGame(config.VariantClassic, path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "exact scoring will not award points") {
		t.Errorf("expected a warning for speed 3, got %q", buf.String())
	}

	buf.Reset()
	if err := os.WriteFile(path, []byte("obstacles:\n  scroll_speed: 3\nscoring:\n  trigger: crossing\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadGame(config.VariantClassic, path); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("crossing trigger should not warn, got %q", buf.String())
	}
}
