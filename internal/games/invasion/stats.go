package invasion

// Stats tracks the scoreboard values of a session.
type Stats struct {
	Score     int
	Level     int
	ShipsLeft int
	HighScore int // Kept for the lifetime of the process

	shipLimit int
}

// NewStats creates stats with a zero high score and resets the rest.
func NewStats(s *Settings) *Stats {
	st := &Stats{shipLimit: s.ShipLimit}
	st.ResetStats()
	return st
}

// ResetStats reinitializes everything except the high score.
func (st *Stats) ResetStats() {
	st.ShipsLeft = st.shipLimit
	st.Score = 0
	st.Level = 1
}

// AddScore adds points and updates the high score when it is beaten.
// Reports whether a new high score was set.
func (st *Stats) AddScore(points int) bool {
	st.Score += points
	return st.checkHighScore()
}

func (st *Stats) checkHighScore() bool {
	if st.Score > st.HighScore {
		st.HighScore = st.Score
		return true
	}
	return false
}
