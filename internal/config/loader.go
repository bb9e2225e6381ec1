package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.flappy/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// Files are applied on top of the embedded default, so partial files work.
// The first file found wins; a file that exists but does not parse or
// validate is reported rather than skipped.
func Load(variant, customPath string) (FlappyConfig, error) {
	if !IsVariant(variant) {
		return FlappyConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	base, err := embeddedDefault(variant)
	if err != nil {
		return FlappyConfig{}, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseOver(base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// A missing file falls through; a broken one is an error.
	for _, path := range []string{
		userConfigPath(variant + ".yaml"),
		filepath.Join("configs", variant+".yaml"),
	} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := parseOver(base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	return base, nil
}

// embeddedDefault parses the embedded YAML for a variant.
func embeddedDefault(variant string) (FlappyConfig, error) {
	data := GetDefaultYAML(variant)
	if data == nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed is missing
	}
	cfg, err := parseOver(FlappyConfig{}, data)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("config: embedded %s default: %w", variant, err)
	}
	return cfg, nil
}

// parseOver decodes data on top of base and validates the result.
func parseOver(base FlappyConfig, data []byte) (FlappyConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
