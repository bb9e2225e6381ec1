package config

import (
	"embed"
	"fmt"
	"path"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Variant identifiers, in menu order.
const (
	VariantClassic = "classic"
	VariantDrone   = "drone"
	VariantOrb     = "orb"
	VariantStorm   = "storm"
	VariantBird    = "bird"
)

// Variants returns the identifiers of all built-in variants.
func Variants() []string {
	return []string{VariantClassic, VariantDrone, VariantOrb, VariantStorm, VariantBird}
}

// IsVariant reports whether id names a built-in variant.
func IsVariant(id string) bool {
	for _, v := range Variants() {
		if v == id {
			return true
		}
	}
	return false
}

// DefaultFlappyConfig returns the classic configuration.
// Used when the embedded YAML cannot be read.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Title: "Flappy Bird",
		World: WorldConfig{
			Width:  400,
			Height: 600,
		},
		Entity: EntityConfig{
			Shape:         ShapeBox,
			Size:          30,
			X:             50,
			StartY:        150,
			Gravity:       2,
			JumpImpulse:   10,
			Deceleration:  1,
			FallThreshold: -10,
		},
		Obstacles: ObstacleConfig{
			Count:       3,
			FirstX:      300,
			Spacing:     300,
			Width:       50,
			Height:      300,
			Gap:         200,
			MinOffset:   -150,
			MaxOffset:   150,
			ScrollSpeed: 2,
		},
		Scoring: ScoringConfig{
			Trigger: TriggerExact,
		},
		Rules: RulesConfig{
			GameOver: false,
		},
		Skin: SkinConfig{
			Entity:   "green",
			Obstacle: "green",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant, or nil.
func GetDefaultYAML(variant string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", variant+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// Builtin returns the embedded configuration of a variant without looking
// at any file on disk.
func Builtin(variant string) (FlappyConfig, error) {
	if !IsVariant(variant) {
		return FlappyConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}
	return embeddedDefault(variant)
}
