package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Scenery constants in world units.
const (
	CloudWidth     = 60
	CloudHeight    = 20
	CloudSpeed     = 1
	MountainPeriod = 200
	MountainBase   = 40
	MountainPeak   = 140
)

// Cloud is a background cloud drifting left.
type Cloud struct {
	X, Y int
}

// Scenery is purely decorative background state. It has its own random
// source so it never disturbs the simulation.
type Scenery struct {
	clouds []Cloud
	world  config.WorldConfig
	rng    *rand.Rand
}

// NewScenery spreads n clouds across the upper third of the world.
func NewScenery(n int, world config.WorldConfig, seed int64) *Scenery {
	s := &Scenery{
		clouds: make([]Cloud, n),
		world:  world,
		rng:    rand.New(rand.NewSource(seed)),
	}
	for i := range s.clouds {
		s.clouds[i] = Cloud{
			X: s.rng.Intn(world.Width + 1),
			Y: s.cloudY(),
		}
	}
	return s
}

func (s *Scenery) cloudY() int {
	band := s.world.Height / 3
	if band <= 0 {
		return 0
	}
	return s.rng.Intn(band)
}

// Advance moves clouds one tick and respawns those that left the world
// at the right edge with a new height.
func (s *Scenery) Advance() {
	for i := range s.clouds {
		c := &s.clouds[i]
		c.X -= CloudSpeed
		if c.X+CloudWidth < 0 {
			c.X = s.world.Width
			c.Y = s.cloudY()
		}
	}
}

// Clouds returns a copy of the clouds.
func (s *Scenery) Clouds() []Cloud {
	out := make([]Cloud, len(s.clouds))
	copy(out, s.clouds)
	return out
}

// MountainHeight returns the height of the mountain silhouette at world x,
// a repeating row of peaks.
func MountainHeight(x int) int {
	p := x % MountainPeriod
	if p < 0 {
		p += MountainPeriod
	}
	half := MountainPeriod / 2
	dist := p - half
	if dist < 0 {
		dist = -dist
	}
	return MountainBase + (MountainPeak-MountainBase)*(half-dist)/half
}
