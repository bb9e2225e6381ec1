package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateHome points the user config directory at an empty temp dir.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoadBuiltinVariants(t *testing.T) {
	isolateHome(t)

	for _, id := range Variants() {
		t.Run(id, func(t *testing.T) {
			cfg, err := Load(id, "")
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", id, err)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("built-in %q does not validate: %v", id, err)
			}
			if cfg.Obstacles.Count != 3 || cfg.Obstacles.ScrollSpeed != 2 {
				t.Errorf("%q: expected 3 obstacles at speed 2, got %d at %d", id, cfg.Obstacles.Count, cfg.Obstacles.ScrollSpeed)
			}
			if cfg.Obstacles.MinOffset != -150 || cfg.Obstacles.MaxOffset != 150 {
				t.Errorf("%q: offset range = [%d, %d]", id, cfg.Obstacles.MinOffset, cfg.Obstacles.MaxOffset)
			}
			if !cfg.ExactTriggerReachable() {
				t.Errorf("%q: exact trigger should be reachable with default spacing", id)
			}
		})
	}
}

func TestLoadVariantDifferences(t *testing.T) {
	isolateHome(t)

	classic, err := Load(VariantClassic, "")
	if err != nil {
		t.Fatal(err)
	}
	bird, err := Load(VariantBird, "")
	if err != nil {
		t.Fatal(err)
	}

	if classic.Entity.Shape != ShapeBox || classic.Obstacles.Width != 50 || classic.Entity.StartY != 150 {
		t.Errorf("classic should be a box at y=150 with 50-wide pipes, got %+v / %+v", classic.Entity, classic.Obstacles)
	}
	if classic.Rules.GameOver || classic.Sound.Enabled {
		t.Error("classic resets instantly and is silent")
	}
	if bird.Entity.Shape != ShapeCircle || bird.Entity.StartY != 300 || !bird.Rules.GameOver {
		t.Errorf("bird should be a circle at y=300 with a game over state, got %+v", bird.Entity)
	}
	if !bird.Sound.Jump || !bird.Sound.NewHighScore {
		t.Error("bird should play jump and new high score cues")
	}
}

func TestLoadUnknownVariant(t *testing.T) {
	if _, err := Load("pong", ""); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "fast.yaml")
	data := "obstacles:\n  scroll_speed: 5\nscoring:\n  trigger: crossing\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantClassic, path)
	if err != nil {
		t.Fatalf("Load with custom path failed: %v", err)
	}
	if cfg.Obstacles.ScrollSpeed != 5 {
		t.Errorf("scroll speed = %d, expected 5", cfg.Obstacles.ScrollSpeed)
	}
	if cfg.Scoring.Trigger != TriggerCrossing {
		t.Errorf("trigger = %q, expected crossing", cfg.Scoring.Trigger)
	}
	// Untouched fields keep the variant default
	if cfg.Obstacles.Width != 50 || cfg.Entity.X != 50 {
		t.Errorf("partial override lost defaults: %+v", cfg.Obstacles)
	}
	// 250, 550, 850 and the recycle distance 350 are all multiples of 5
	if !cfg.ExactTriggerReachable() {
		t.Error("speed 5 lands on x=50 from every start and from the recycle point")
	}
}

func TestExactTriggerReachable(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*FlappyConfig)
		expected bool
	}{
		{"classic", func(*FlappyConfig) {}, true},
		{"speed 5", func(c *FlappyConfig) { c.Obstacles.ScrollSpeed = 5 }, true},
		{"speed 3 misses x=50", func(c *FlappyConfig) { c.Obstacles.ScrollSpeed = 3 }, false},
		{"odd spacing", func(c *FlappyConfig) { c.Obstacles.Spacing = 301 }, false},
		{"odd world width", func(c *FlappyConfig) { c.World.Width = 401 }, false},
		{"zero speed", func(c *FlappyConfig) { c.Obstacles.ScrollSpeed = 0 }, false},
		{
			// 21 is odd, but it is left of the entity and first scores from 400
			"first obstacle behind entity",
			func(c *FlappyConfig) {
				c.Obstacles.Count = 2
				c.Obstacles.FirstX = 21
				c.Obstacles.Spacing = 129
			},
			true,
		},
		{
			"behind entity but recycle point lands",
			func(c *FlappyConfig) {
				c.Obstacles.FirstX = -100
				c.Obstacles.Spacing = 250
			},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.modify(&cfg)
			if got := cfg.ExactTriggerReachable(); got != tc.expected {
				t.Errorf("ExactTriggerReachable() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "obstacles: [unterminated"},
		{"empty offset range", "obstacles:\n  min_offset: 10\n  max_offset: -10\n"},
		{"zero speed", "obstacles:\n  scroll_speed: 0\n"},
		{"unknown shape", "entity:\n  shape: triangle\n"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(VariantDrone, path); err == nil {
				t.Errorf("case %d: expected error for %s", i, tc.name)
			}
		})
	}

	if _, err := Load(VariantDrone, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".flappy", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "orb.yaml"), []byte("title: My Orb\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantOrb, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "My Orb" {
		t.Errorf("user config not applied, title = %q", cfg.Title)
	}
}

func TestLoadReportsBrokenSearchPathFiles(t *testing.T) {
	t.Run("user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		dir := filepath.Join(home, ".flappy", "configs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(dir, "storm.yaml")
		if err := os.WriteFile(path, []byte("obstacles:\n  gap: -5\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(VariantStorm, "")
		if err == nil {
			t.Fatal("expected error for invalid user config")
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error should name the file, got %v", err)
		}
		if cfg.Obstacles.Gap != 200 {
			t.Errorf("failed load should return the embedded default, gap = %d", cfg.Obstacles.Gap)
		}
	})

	t.Run("local configs directory", func(t *testing.T) {
		isolateHome(t)
		dir := t.TempDir()
		t.Chdir(dir)
		if err := os.Mkdir("configs", 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join("configs", "drone.yaml"), []byte("world: [broken"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(VariantDrone, ""); err == nil {
			t.Error("expected error for unparsable local config")
		}
		// Other variants are unaffected
		if _, err := Load(VariantOrb, ""); err != nil {
			t.Errorf("orb has no local file and should load: %v", err)
		}
	})

	t.Run("local file applied", func(t *testing.T) {
		isolateHome(t)
		t.Chdir(t.TempDir())
		if err := os.Mkdir("configs", 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join("configs", "bird.yaml"), []byte("title: Local Bird\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(VariantBird, "")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Title != "Local Bird" {
			t.Errorf("local config not applied, title = %q", cfg.Title)
		}
	})
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.Count = 0
	cfg.Entity.Size = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "obstacle count") || !strings.Contains(msg, "entity size") {
		t.Errorf("error should mention both problems, got %q", msg)
	}
}

func TestDefaultFlappyConfigMatchesClassicYAML(t *testing.T) {
	isolateHome(t)

	fromYAML, err := Load(VariantClassic, "")
	if err != nil {
		t.Fatal(err)
	}
	hard := DefaultFlappyConfig()
	if fromYAML.Entity != hard.Entity || fromYAML.Obstacles != hard.Obstacles || fromYAML.World != hard.World {
		t.Errorf("hardcoded fallback drifted from classic.yaml:\n%+v\n%+v", fromYAML, hard)
	}
}
