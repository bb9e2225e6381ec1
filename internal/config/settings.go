package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadSettings.
const (
	EnvHighScoreFile = "FLAPPY_HIGHSCORE_FILE"
	EnvDBPath        = "FLAPPY_DB"
	EnvFPS           = "FLAPPY_FPS"
	EnvLogLevel      = "FLAPPY_LOG_LEVEL"
	EnvVariant       = "FLAPPY_VARIANT"
)

// Settings are process-wide options that seed the CLI flag defaults.
type Settings struct {
	HighScorePath string
	DBPath        string
	TickRate      int
	LogLevel      string
	Variant       string
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		HighScorePath: "~/.flappy/high_score.txt",
		DBPath:        "~/.flappy/scores.db",
		TickRate:      60,
		LogLevel:      "info",
		Variant:       VariantBird,
	}
}

// LoadSettings resolves settings from the process environment, then from
// the given dotenv files (".env" when none are given), then defaults.
// Missing or unreadable dotenv files are ignored.
func LoadSettings(envFiles ...string) Settings {
	fileVals, err := godotenv.Read(envFiles...)
	if err != nil {
		fileVals = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		if v, ok := fileVals[key]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		return "", false
	}

	s := DefaultSettings()
	if v, ok := lookup(EnvHighScoreFile); ok {
		s.HighScorePath = v
	}
	if v, ok := lookup(EnvDBPath); ok {
		s.DBPath = v
	}
	if v, ok := lookup(EnvFPS); ok {
		if fps, err := strconv.Atoi(v); err == nil && fps > 0 {
			s.TickRate = fps
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		s.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvVariant); ok && IsVariant(v) {
		s.Variant = v
	}
	return s
}
