package flappy

// Tracker keeps the current score and the best score of the process.
// The best score never decreases. The new-high-score latch fires at most
// once per run and is cleared when a new run starts.
type Tracker struct {
	score   int
	high    int
	latched bool
}

// NewTracker creates a tracker seeded with a previously saved best score.
func NewTracker(high int) *Tracker {
	if high < 0 {
		high = 0
	}
	return &Tracker{high: high}
}

// Award adds one point. It returns true the first time in this run the
// score passes the best score.
func (t *Tracker) Award() bool {
	t.score++
	if t.score <= t.high {
		return false
	}
	t.high = t.score
	if t.latched {
		return false
	}
	t.latched = true
	return true
}

// NewRun zeroes the score and clears the latch.
func (t *Tracker) NewRun() {
	t.score = 0
	t.latched = false
}

// Score returns the score of the current run.
func (t *Tracker) Score() int { return t.score }

// High returns the best score.
func (t *Tracker) High() int { return t.high }

// Latched reports whether the current run set a new best score.
func (t *Tracker) Latched() bool { return t.latched }
