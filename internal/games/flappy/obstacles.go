package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is a pair of pylons with one gap between them.
// Everything above UpperEdge and below LowerEdge is solid.
type Obstacle struct {
	X      int // Left edge, decreases as the field scrolls
	Y      int // Vertical offset
	Width  int
	Height int
	Gap    int
}

// UpperEdge returns the top of the gap.
func (o Obstacle) UpperEdge() int {
	return o.Y + o.Height
}

// LowerEdge returns the bottom of the gap.
func (o Obstacle) LowerEdge() int {
	return o.Y + o.Height + o.Gap
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() int {
	return o.X + o.Width
}

// Field holds a fixed set of obstacles that are recycled in place once
// they leave the left side of the world.
type Field struct {
	obstacles []Obstacle
	cfg       config.ObstacleConfig
	worldW    int
	rng       *rand.Rand
}

// NewField creates cfg.Count obstacles staggered from cfg.FirstX, each with
// a random offset drawn from rng.
func NewField(cfg config.ObstacleConfig, worldW int, rng *rand.Rand) *Field {
	f := &Field{
		obstacles: make([]Obstacle, cfg.Count),
		cfg:       cfg,
		worldW:    worldW,
		rng:       rng,
	}
	for i := range f.obstacles {
		f.obstacles[i] = Obstacle{
			X:      cfg.FirstX + i*cfg.Spacing,
			Y:      f.randomOffset(),
			Width:  cfg.Width,
			Height: cfg.Height,
			Gap:    cfg.Gap,
		}
	}
	return f
}

// randomOffset draws uniformly from [MinOffset, MaxOffset].
func (f *Field) randomOffset() int {
	return f.cfg.MinOffset + f.rng.Intn(f.cfg.MaxOffset-f.cfg.MinOffset+1)
}

// Len returns the number of obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// At returns the i-th obstacle.
func (f *Field) At(i int) Obstacle {
	return f.obstacles[i]
}

// Obstacles returns a copy of all obstacles.
func (f *Field) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Advance scrolls the i-th obstacle one tick and recycles it to the right
// edge with a fresh offset once it is fully off screen.
// Returns the x before the move and whether the obstacle was recycled.
func (f *Field) Advance(i int) (prevX int, recycled bool) {
	o := &f.obstacles[i]
	prevX = o.X
	o.X -= f.cfg.ScrollSpeed
	if o.Right() < 0 {
		o.X = f.worldW
		o.Y = f.randomOffset()
		recycled = true
	}
	return prevX, recycled
}
