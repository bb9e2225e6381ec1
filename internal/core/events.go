package core

// EventKind identifies a discrete thing that happened during a tick.
type EventKind int

const (
	EventJump         EventKind = iota // Entity received a jump impulse
	EventCollision                     // Entity hit an obstacle
	EventNewHighScore                  // Score passed the previous best (once per run)
	EventPoint                         // An obstacle was passed
	EventRunOver                       // A run ended; Score holds its final score
	EventRestart                       // A new run started after game over
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "Jump"
	case EventCollision:
		return "Collision"
	case EventNewHighScore:
		return "NewHighScore"
	case EventPoint:
		return "Point"
	case EventRunOver:
		return "RunOver"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Event is emitted by a game step. Consumers (audio, storage) must not
// feed anything back into the simulation.
type Event struct {
	Kind  EventKind
	Score int // Score at the time of the event
}

// HasEvent reports whether events contains at least one event of kind k.
func HasEvent(events []Event, k EventKind) bool {
	for _, e := range events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
