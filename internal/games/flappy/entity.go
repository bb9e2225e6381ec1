package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Shape is the collision shape of the entity.
type Shape int

const (
	ShapeBox    Shape = iota // Square with its top-left corner at (X, Y)
	ShapeCircle              // Circle centered at (X, Y)
)

// String returns the config name of the shape.
func (s Shape) String() string {
	if s == ShapeCircle {
		return config.ShapeCircle
	}
	return config.ShapeBox
}

// Motion holds the constants of the jump and fall model.
type Motion struct {
	Gravity       float64 // Constant drift per tick while not jumping
	JumpImpulse   float64 // Velocity set by Jump
	Deceleration  float64 // Velocity lost per tick while jumping
	FallThreshold float64 // Jumping ends once velocity drops below this
}

// Entity is the player-controlled bird or drone.
// X never changes. Y grows downward.
type Entity struct {
	X        int
	Y        float64
	Velocity float64 // Upward speed while jumping
	Jumping  bool
	Shape    Shape
	Size     float64 // Box side or circle radius
	motion   Motion
}

// NewEntity creates an entity at its configured start position.
func NewEntity(cfg config.EntityConfig) *Entity {
	shape := ShapeBox
	if cfg.Shape == config.ShapeCircle {
		shape = ShapeCircle
	}
	return &Entity{
		X:     cfg.X,
		Y:     cfg.StartY,
		Shape: shape,
		Size:  cfg.Size,
		motion: Motion{
			Gravity:       cfg.Gravity,
			JumpImpulse:   cfg.JumpImpulse,
			Deceleration:  cfg.Deceleration,
			FallThreshold: cfg.FallThreshold,
		},
	}
}

// Jump starts a jump, replacing any jump in progress.
func (e *Entity) Jump() {
	e.Jumping = true
	e.Velocity = e.motion.JumpImpulse
}

// Update advances the entity by one tick.
//
// While jumping the velocity decays by the deceleration and is applied
// upward; once it drops below the fall threshold the jump ends. Otherwise
// the entity drifts down at the constant gravity rate.
func (e *Entity) Update() {
	if !e.Jumping {
		e.Y += e.motion.Gravity
		return
	}
	e.Velocity -= e.motion.Deceleration
	e.Y -= e.Velocity
	if e.Velocity < e.motion.FallThreshold {
		e.Jumping = false
	}
}

// Extent returns the collision extent of the entity.
func (e *Entity) Extent() core.Box {
	x := float64(e.X)
	if e.Shape == ShapeCircle {
		return core.BoxAround(x, e.Y, e.Size)
	}
	return core.BoxAt(x, e.Y, e.Size, e.Size)
}
