package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the phase of a session.
type State int

const (
	StatePlaying  State = iota // Simulation advancing
	StateGameOver              // Frozen until restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateGameOver {
		return "GameOver"
	}
	return "Playing"
}

// round is everything that is replaced wholesale when a run starts.
type round struct {
	entity *Entity
	field  *Field
}

// Session is one simulation: a round in progress, the score tracker that
// outlives rounds, and the random source shared by all of them.
type Session struct {
	cfg     config.FlappyConfig
	rng     *rand.Rand
	round   round
	tracker *Tracker
	state   State
	ticks   int
	runs    int
}

// NewSession starts a session in the Playing state.
func NewSession(cfg config.FlappyConfig, seed int64, high int) *Session {
	s := &Session{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		tracker: NewTracker(high),
	}
	s.newRound()
	return s
}

// newRound replaces the entity and obstacles and starts a new run.
func (s *Session) newRound() {
	s.round = round{
		entity: NewEntity(s.cfg.Entity),
		field:  NewField(s.cfg.Obstacles, s.cfg.World.Width, s.rng),
	}
	s.tracker.NewRun()
	s.state = StatePlaying
}

// Step advances the session by one tick.
//
// Queued actions are applied in order first: Jump while playing, Restart
// while over. Quit is left to the loop driver. While over, nothing else
// moves, and a restart tick only builds the new round so its first frame
// shows the initial positions. Otherwise the entity moves, then every obstacle scrolls and is
// checked for a hit and a pass. Only the first hit of a tick counts.
func (s *Session) Step(in core.InputFrame) []core.Event {
	var events []core.Event
	restarted := false

	for _, a := range in.Actions {
		switch a {
		case core.ActionJump:
			if s.state == StatePlaying {
				s.round.entity.Jump()
				events = append(events, core.Event{Kind: core.EventJump, Score: s.tracker.Score()})
			}
		case core.ActionRestart:
			if s.state == StateGameOver {
				s.newRound()
				restarted = true
				events = append(events, core.Event{Kind: core.EventRestart})
			}
		}
	}

	if restarted || s.state == StateGameOver {
		return events
	}

	s.ticks++
	e := s.round.entity
	e.Update()
	extent := e.Extent()

	hit := false
	f := s.round.field
	for i := 0; i < f.Len(); i++ {
		prevX, _ := f.Advance(i)
		o := f.At(i)

		if !hit && Collides(extent, o) {
			hit = true
			events = append(events, core.Event{Kind: core.EventCollision, Score: s.tracker.Score()})
		}

		if passedThrough(s.cfg.Scoring.Trigger, e.X, prevX, o.X) {
			newHigh := s.tracker.Award()
			events = append(events, core.Event{Kind: core.EventPoint, Score: s.tracker.Score()})
			if newHigh {
				events = append(events, core.Event{Kind: core.EventNewHighScore, Score: s.tracker.Score()})
			}
		}
	}

	if hit {
		s.runs++
		events = append(events, core.Event{Kind: core.EventRunOver, Score: s.tracker.Score()})
		if s.cfg.Rules.GameOver {
			e.Jumping = false
			s.state = StateGameOver
		} else {
			s.newRound()
		}
	}

	return events
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Score returns the score of the current run.
func (s *Session) Score() int { return s.tracker.Score() }

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int { return s.tracker.High() }

// NewHighScore reports whether the current run set a new best score.
func (s *Session) NewHighScore() bool { return s.tracker.Latched() }

// Ticks returns the number of simulated (non-frozen) ticks.
func (s *Session) Ticks() int { return s.ticks }

// Runs returns the number of runs that ended in a collision.
func (s *Session) Runs() int { return s.runs }

// Config returns the configuration the session was built from.
func (s *Session) Config() config.FlappyConfig { return s.cfg }

// GameState returns the platform view of the session.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:        s.tracker.Score(),
		HighScore:    s.tracker.High(),
		GameOver:     s.state == StateGameOver,
		NewHighScore: s.tracker.Latched(),
	}
}
