package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Collides reports whether an entity extent hits an obstacle.
// The entity must overlap the obstacle horizontally and reach outside
// the gap vertically.
func Collides(e core.Box, o Obstacle) bool {
	outside := e.Top < float64(o.UpperEdge()) || e.Bottom > float64(o.LowerEdge())
	overlap := e.Right > float64(o.X) && e.Left < float64(o.Right())
	return outside && overlap
}

// passedThrough reports whether an obstacle that moved from prevX to curX
// this tick counts as passed by an entity at entityX.
func passedThrough(trigger string, entityX, prevX, curX int) bool {
	if trigger == config.TriggerCrossing {
		return prevX > entityX && curX <= entityX
	}
	return curX == entityX
}
