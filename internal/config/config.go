// Package config provides YAML-based game configuration loading for the
// flappy variants and environment-based process settings.
package config

import (
	"errors"
	"fmt"
)

// Entity shapes.
const (
	ShapeBox    = "box"
	ShapeCircle = "circle"
)

// Pass-through triggers.
const (
	TriggerExact    = "exact"    // obstacle.x == entity.x
	TriggerCrossing = "crossing" // previous x > entity.x >= current x
)

// FlappyConfig contains all configuration for one flappy variant.
type FlappyConfig struct {
	Title     string         `yaml:"title"`
	World     WorldConfig    `yaml:"world"`
	Entity    EntityConfig   `yaml:"entity"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Rules     RulesConfig    `yaml:"rules"`
	Sound     SoundConfig    `yaml:"sound"`
	Skin      SkinConfig     `yaml:"skin"`
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EntityConfig defines the controllable entity and its motion constants.
type EntityConfig struct {
	Shape         string  `yaml:"shape"` // "box" or "circle"
	Size          float64 `yaml:"size"`  // Box side or circle radius
	X             int     `yaml:"x"`
	StartY        float64 `yaml:"start_y"`
	Gravity       float64 `yaml:"gravity"`        // Constant free-fall drift per tick
	JumpImpulse   float64 `yaml:"jump_impulse"`   // Upward velocity set by a jump
	Deceleration  float64 `yaml:"deceleration"`   // Velocity lost per tick while jumping
	FallThreshold float64 `yaml:"fall_threshold"` // Jump ends once velocity drops below this
}

// ObstacleConfig defines the obstacle field.
type ObstacleConfig struct {
	Count       int `yaml:"count"`
	FirstX      int `yaml:"first_x"`
	Spacing     int `yaml:"spacing"`
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Gap         int `yaml:"gap"`
	MinOffset   int `yaml:"min_offset"`
	MaxOffset   int `yaml:"max_offset"`
	ScrollSpeed int `yaml:"scroll_speed"`
}

// ScoringConfig selects the pass-through test.
type ScoringConfig struct {
	Trigger string `yaml:"trigger"`
}

// RulesConfig selects what happens on collision.
type RulesConfig struct {
	// GameOver pauses on a Game Over card until restart.
	// When false the run resets instantly and play continues.
	GameOver bool `yaml:"game_over"`
}

// SoundConfig selects which events produce audio cues.
type SoundConfig struct {
	Enabled      bool `yaml:"enabled"`
	Jump         bool `yaml:"jump"`
	Collision    bool `yaml:"collision"`
	NewHighScore bool `yaml:"new_high_score"`
}

// SkinConfig describes the presentation of a variant.
type SkinConfig struct {
	Entity    string `yaml:"entity"` // Palette color names, see core.ParseColor
	Obstacle  string `yaml:"obstacle"`
	Cloud     string `yaml:"cloud"`
	Mountain  string `yaml:"mountain"`
	Clouds    int    `yaml:"clouds"`    // Number of background clouds
	Mountains bool   `yaml:"mountains"` // Draw the mountain silhouette
	Eye       bool   `yaml:"eye"`       // Draw an eye on the entity
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}

	switch c.Entity.Shape {
	case ShapeBox, ShapeCircle:
	default:
		errs = append(errs, fmt.Errorf("unknown entity shape %q", c.Entity.Shape))
	}
	if c.Entity.Size <= 0 {
		errs = append(errs, fmt.Errorf("entity size must be positive, got %v", c.Entity.Size))
	}
	if c.Entity.JumpImpulse <= 0 {
		errs = append(errs, fmt.Errorf("jump impulse must be positive, got %v", c.Entity.JumpImpulse))
	}
	if c.Entity.Deceleration <= 0 {
		errs = append(errs, fmt.Errorf("deceleration must be positive, got %v", c.Entity.Deceleration))
	}

	o := c.Obstacles
	if o.Count <= 0 {
		errs = append(errs, fmt.Errorf("obstacle count must be positive, got %d", o.Count))
	}
	if o.Width <= 0 || o.Gap <= 0 || o.Height < 0 {
		errs = append(errs, fmt.Errorf("invalid obstacle geometry width=%d height=%d gap=%d", o.Width, o.Height, o.Gap))
	}
	if o.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scroll speed must be positive, got %d", o.ScrollSpeed))
	}
	if o.Count > 1 && o.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("obstacle spacing must be positive, got %d", o.Spacing))
	}
	if o.MinOffset > o.MaxOffset {
		errs = append(errs, fmt.Errorf("offset range [%d, %d] is empty", o.MinOffset, o.MaxOffset))
	}

	switch c.Scoring.Trigger {
	case "", TriggerExact, TriggerCrossing:
	default:
		errs = append(errs, fmt.Errorf("unknown scoring trigger %q", c.Scoring.Trigger))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}

// ExactTriggerReachable reports whether every obstacle lands exactly on the
// entity's x while scrolling. An obstacle that starts left of the entity is
// first scored after it recycles, so only the recycle point decides for it.
// When this is false, the exact pass-through trigger never awards points
// for some obstacle.
func (c FlappyConfig) ExactTriggerReachable() bool {
	speed := c.Obstacles.ScrollSpeed
	if speed <= 0 {
		return false
	}
	reaches := func(x int) bool {
		d := x - c.Entity.X
		return d >= 0 && d%speed == 0
	}
	if !reaches(c.World.Width) {
		return false
	}
	for i := 0; i < c.Obstacles.Count; i++ {
		x := c.Obstacles.FirstX + i*c.Obstacles.Spacing
		if x >= c.Entity.X && !reaches(x) {
			return false
		}
	}
	return true
}
