// internal/game/types.go
//
// Core type definitions for a single game.
// Defines:
//   - State: playing, won or lost.
//   - Validator: the word check a guess must pass before it is scored.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"errors"
	"time"

	"github.com/robalobadob/wordle/internal/score"
)

// MaxGuesses is the number of valid guesses a game allows.
const MaxGuesses = 6

var (
	ErrFinished      = errors.New("game finished")
	ErrNotInWordList = errors.New("not in word list")
)

// State is the coarse status of a game.
type State string

const (
	Playing State = "playing"
	Won     State = "won"
	Lost    State = "lost"
)

func (s State) String() string { return string(s) }

// Validator reports whether a guess is a recognized word.
// *words.Dictionary satisfies it.
type Validator interface {
	IsValidWord(candidate string) bool
}

// Game holds the state of a single game session.
type Game struct {
	target     string         // The solution word (always lowercase).
	maxGuesses int            // Maximum number of valid guesses (typically 6).
	validator  Validator      // nil accepts any 5-letter guess.
	history    []score.Result // Scored guesses so far, in order.
	letters    map[rune]score.Mark
	state      State
	startedAt  time.Time
	finishedAt time.Time
	now        func() time.Time
}
