// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create new games around a fixed target.
//   - Validate guesses against the word lists before they are scored.
//   - Score guesses with package score.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Rejected guesses do not count as attempts and produce no result.
//   - A Game is owned by one player loop; it is not safe for concurrent use.
package game

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/robalobadob/wordle/internal/score"
)

// Option customizes a Game.
type Option func(*Game)

// WithValidator sets the word check applied to every guess.
func WithValidator(v Validator) Option {
	return func(g *Game) { g.validator = v }
}

// WithMaxGuesses overrides MaxGuesses. Values below 1 are ignored.
func WithMaxGuesses(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxGuesses = n
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// New constructs a new game for target.
func New(target string, opts ...Option) (*Game, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if utf8.RuneCountInString(target) != score.WordLen {
		return nil, fmt.Errorf("target %q: %w", target, score.ErrLengthMismatch)
	}
	g := &Game{
		target:     target,
		maxGuesses: MaxGuesses,
		letters:    make(map[rune]score.Mark),
		state:      Playing,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.startedAt = g.now()
	return g, nil
}

// Guess validates and scores a guess, mutating the game state.
// Returns: the scored guess, the new state, or an error.
//
// Validation rules:
//   - Game must not be finished (ErrFinished).
//   - Guess must be accepted by the validator (ErrNotInWordList).
//   - Guess must be exactly 5 letters (score.ErrLengthMismatch).
//
// State transitions:
//   - If every letter is CorrectSpot → Won.
//   - Else if the number of guesses reaches the limit → Lost.
func (g *Game) Guess(word string) (score.Result, State, error) {
	if g.state != Playing {
		return score.Result{}, g.state, ErrFinished
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if g.validator != nil && !g.validator.IsValidWord(word) {
		return score.Result{}, g.state, fmt.Errorf("%q: %w", word, ErrNotInWordList)
	}

	res, err := score.Score(g.target, word)
	if err != nil {
		return score.Result{}, g.state, err
	}
	g.history = append(g.history, res)
	g.remember(res)

	if res.Solved() {
		g.finish(Won)
	} else if len(g.history) >= g.maxGuesses {
		g.finish(Lost)
	}
	return res, g.state, nil
}

func (g *Game) finish(s State) {
	g.state = s
	g.finishedAt = g.now()
}

// remember keeps the best mark seen for each guessed letter.
func (g *Game) remember(res score.Result) {
	for _, l := range res {
		if prev, ok := g.letters[l.Char]; !ok || rank(l.Mark) > rank(prev) {
			g.letters[l.Char] = l.Mark
		}
	}
}

func rank(m score.Mark) int {
	switch m {
	case score.CorrectSpot:
		return 2
	case score.WrongSpot:
		return 1
	default:
		return 0
	}
}

// Target returns the solution word.
func (g *Game) Target() string { return g.target }

// State reports the current state.
func (g *Game) State() State { return g.state }

// Attempts is the number of valid guesses made so far.
func (g *Game) Attempts() int { return len(g.history) }

// MaxGuesses is the configured guess limit.
func (g *Game) MaxGuesses() int { return g.maxGuesses }

// Remaining is the number of guesses left.
func (g *Game) Remaining() int { return g.maxGuesses - len(g.history) }

// History returns a copy of the scored guesses.
func (g *Game) History() []score.Result {
	return append([]score.Result(nil), g.history...)
}

// Letters returns a copy of the best mark seen per letter.
func (g *Game) Letters() map[rune]score.Mark {
	out := make(map[rune]score.Mark, len(g.letters))
	for k, v := range g.letters {
		out[k] = v
	}
	return out
}

// Duration is the time from creation to the end of the game, or to now
// while it is still being played.
func (g *Game) Duration() time.Duration {
	if g.state == Playing {
		return g.now().Sub(g.startedAt)
	}
	return g.finishedAt.Sub(g.startedAt)
}
