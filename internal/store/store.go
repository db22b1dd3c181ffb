// internal/store/store.go
//
// Persistence interface for finished games.
// Only outcomes are kept (won/lost, attempt count, time taken); scored
// guesses are never stored.
//
// Implementations:
//   - memory (this package): process-lifetime only.
//   - SQLite (sqlite.go): local file, survives restarts.

package store

import (
	"context"
	"time"
)

// Mode is how the target was chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// Outcome is the record of one finished game.
type Outcome struct {
	Mode       Mode
	Date       string        // daily.DateKey of the finish time
	Target     string        // solution word (lowercase)
	Won        bool
	Attempts   int           // valid guesses used
	Elapsed    time.Duration // first prompt to last guess
	FinishedAt time.Time
}

// Stats summarizes every recorded outcome.
type Stats struct {
	Played        int         `json:"played"`
	Wins          int         `json:"wins"`
	CurrentStreak int         `json:"currentStreak"`
	MaxStreak     int         `json:"maxStreak"`
	Distribution  map[int]int `json:"distribution"` // attempts → wins
}

// WinRate returns wins/played as a percentage, 0 when nothing was played.
func (s Stats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}

// Store defines the persistence interface for game outcomes.
type Store interface {
	// Record appends a finished game.
	Record(ctx context.Context, o Outcome) error

	// Stats summarizes all recorded games, oldest first.
	Stats(ctx context.Context) (Stats, error)

	// PlayedDaily reports whether a daily game was already finished on date.
	PlayedDaily(ctx context.Context, date string) (bool, error)
}

// result is the per-game slice of an outcome that drives Stats.
type result struct {
	won      bool
	attempts int
}

// summarize folds results in chronological order.
func summarize(results []result) Stats {
	st := Stats{Distribution: make(map[int]int)}
	for _, r := range results {
		st.Played++
		if r.won {
			st.Wins++
			st.CurrentStreak++
			st.Distribution[r.attempts]++
		} else {
			st.CurrentStreak = 0
		}
		st.MaxStreak = max(st.MaxStreak, st.CurrentStreak)
	}
	return st
}
