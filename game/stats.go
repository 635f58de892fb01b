package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionStats records one run of the game. Nothing is written to disk;
// the caller prints the summary when the session ends.
type SessionStats struct {
	ID        string
	StartTime time.Time
	Ticks     int
	Fruits    int
}

func newSessionStats() SessionStats {
	return SessionStats{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Summary formats the session for the end-of-game printout.
func (s SessionStats) Summary() string {
	return fmt.Sprintf("session %s: %d fruits eaten over %d ticks (%.1fs)",
		s.ID, s.Fruits, s.Ticks, time.Since(s.StartTime).Seconds())
}
