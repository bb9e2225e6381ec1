package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Policy decides whether to jump on the next tick.
type Policy func(Snapshot) bool

// JumpEvery returns a policy that jumps on every n-th tick.
// A non-positive n never jumps.
func JumpEvery(n int) Policy {
	return func(s Snapshot) bool {
		return n > 0 && s.Tick%n == 0
	}
}

// Autopilot jumps whenever the entity is below the middle of the next gap
// and is not already rising.
func Autopilot(s Snapshot) bool {
	e := s.Entity
	if e.Rising {
		return false
	}

	left, center := float64(e.X), e.Y
	if e.Shape == ShapeCircle {
		left -= e.Size
	} else {
		center += e.Size / 2
	}

	var next *Obstacle
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if float64(o.Right()) < left {
			continue
		}
		if next == nil || o.X < next.X {
			next = o
		}
	}
	if next == nil {
		return center > float64(s.World.Height)/2
	}

	target := float64(next.UpperEdge()+next.LowerEdge()) / 2
	return center > target
}

// Summary totals a headless run.
type Summary struct {
	Ticks     int
	Runs      int
	Points    int
	Jumps     int
	Score     int
	HighScore int
	NewHigh   bool // A new best score was set at some point
}

// Simulate drives the session for the given number of ticks without a
// terminal. The policy chooses jumps; a finished run restarts immediately.
func Simulate(s *Session, ticks int, p Policy) Summary {
	return SimulateWith(s, ticks, p, nil)
}

// SimulateWith is Simulate with a callback that sees the events of every
// tick that produced any.
func SimulateWith(s *Session, ticks int, p Policy, onEvents func([]core.Event)) Summary {
	var sum Summary
	frame := core.NewInputFrame()

	for i := 0; i < ticks; i++ {
		frame.Clear()
		if s.State() == StateGameOver {
			frame.Set(core.ActionRestart)
		} else if p != nil && p(s.Snapshot()) {
			frame.Set(core.ActionJump)
		}

		events := s.Step(frame)
		if onEvents != nil && len(events) > 0 {
			onEvents(events)
		}
		for _, ev := range events {
			switch ev.Kind {
			case core.EventJump:
				sum.Jumps++
			case core.EventPoint:
				sum.Points++
			case core.EventRunOver:
				sum.Runs++
			case core.EventNewHighScore:
				sum.NewHigh = true
			}
		}
		sum.Ticks++
	}

	sum.Score = s.Score()
	sum.HighScore = s.HighScore()
	return sum
}
