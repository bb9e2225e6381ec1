package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// EntityView is a read-only copy of the entity.
type EntityView struct {
	X       int
	Y       float64
	Shape   Shape
	Size    float64
	Jumping bool
	Rising  bool // Jumping with positive velocity
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	World        config.WorldConfig
	Entity       EntityView
	Obstacles    []Obstacle
	Score        int
	HighScore    int
	State        State
	NewHighScore bool
	Tick         int
}

// GameOver reports whether the snapshot was taken in the GameOver state.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Snapshot captures the current session for rendering.
func (s *Session) Snapshot() Snapshot {
	e := s.round.entity
	return Snapshot{
		World: s.cfg.World,
		Entity: EntityView{
			X:       e.X,
			Y:       e.Y,
			Shape:   e.Shape,
			Size:    e.Size,
			Jumping: e.Jumping,
			Rising:  e.Jumping && e.Velocity > 0,
		},
		Obstacles:    s.round.field.Obstacles(),
		Score:        s.tracker.Score(),
		HighScore:    s.tracker.High(),
		State:        s.state,
		NewHighScore: s.tracker.Latched(),
		Tick:         s.ticks,
	}
}
