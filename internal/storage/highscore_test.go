package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreRoundTrip(t *testing.T) {
	for _, score := range []int{0, 1, 42, 123456} {
		f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "high_score.txt"))
		if err != nil {
			t.Fatal(err)
		}
		if err := f.Save(score); err != nil {
			t.Fatalf("Save(%d) failed: %v", score, err)
		}
		got, err := f.Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if got != score {
			t.Errorf("round trip %d -> %d", score, got)
		}
	}
}

func TestHighScoreFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	f, _ := NewHighScoreFile(path)

	if err := f.Save(17); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(8); err != nil { // Overwrites
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "8" {
		t.Errorf("file content = %q, expected bare decimal", data)
	}
}

func TestHighScoreMissingFile(t *testing.T) {
	f, _ := NewHighScoreFile(filepath.Join(t.TempDir(), "missing.txt"))

	got, err := f.Load()
	if err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
	if got != 0 {
		t.Errorf("missing file = %d, expected 0", got)
	}
}

func TestHighScoreBadContent(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected int
		wantErr  bool
	}{
		{"garbage", "not a number", 0, true},
		{"empty", "", 0, true},
		{"negative", "-5", 0, true},
		{"trailing newline", "12\n", 12, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
				t.Fatal(err)
			}
			f, _ := NewHighScoreFile(path)

			got, err := f.Load()
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("Load() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestHighScoreUnreadable(t *testing.T) {
	dir := t.TempDir()
	f, _ := NewHighScoreFile(dir) // A directory cannot be read as a file

	got, err := f.Load()
	if err == nil {
		t.Error("expected error reading a directory")
	}
	if got != 0 {
		t.Errorf("unreadable file = %d, expected 0", got)
	}
}

func TestHighScoreSaveCreatesDirectories(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := NewHighScoreFile("~/.flappy/high_score.txt")
	if err != nil {
		t.Fatal(err)
	}
	if f.Path() != filepath.Join(home, ".flappy", "high_score.txt") {
		t.Errorf("Path() = %q", f.Path())
	}
	if err := f.Save(3); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got, _ := f.Load(); got != 3 {
		t.Errorf("Load() = %d, expected 3", got)
	}
}
