package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/score"
	"github.com/robalobadob/wordle/internal/words"
)

var dict = words.New(
	[]string{"truth", "slate", "fence"},
	[]string{"title", "tails", "tarry", "stale", "sound", "image", "souls"},
)

func TestGuessWins(t *testing.T) {
	rq := require.New(t)

	g, err := game.New("truth", game.WithValidator(dict))
	rq.NoError(err)
	rq.Equal(game.Playing, g.State())

	res, state, err := g.Guess("title")
	rq.NoError(err)
	rq.Equal(game.Playing, state)
	rq.Equal("G-Y--", res.Pattern())

	res, state, err = g.Guess("TRUTH")
	rq.NoError(err)
	rq.Equal(game.Won, state)
	rq.True(res.Solved())
	rq.Equal(2, g.Attempts())
	rq.Equal(4, g.Remaining())

	_, state, err = g.Guess("slate")
	rq.ErrorIs(err, game.ErrFinished)
	rq.Equal(game.Won, state)
	rq.Equal(2, g.Attempts())
}

func TestGuessLosesAfterSixValidGuesses(t *testing.T) {
	rq := require.New(t)

	g, err := game.New("truth", game.WithValidator(dict))
	rq.NoError(err)

	guesses := []string{"slate", "sound", "image", "souls", "stale"}
	for _, w := range guesses {
		_, state, err := g.Guess(w)
		rq.NoError(err)
		rq.Equal(game.Playing, state)
	}

	// Invalid words are re-prompted and never counted.
	_, state, err := g.Guess("xoxox")
	rq.ErrorIs(err, game.ErrNotInWordList)
	rq.Equal(game.Playing, state)
	rq.Equal(5, g.Attempts())

	_, state, err = g.Guess("tails")
	rq.NoError(err)
	rq.Equal(game.Lost, state)
	rq.Equal(game.MaxGuesses, g.Attempts())
	rq.Zero(g.Remaining())

	_, _, err = g.Guess("truth")
	rq.ErrorIs(err, game.ErrFinished)
}

func TestGuessWithoutValidatorStillChecksLength(t *testing.T) {
	rq := require.New(t)

	g, err := game.New("fence")
	rq.NoError(err)

	_, _, err = g.Guess("fen")
	rq.ErrorIs(err, score.ErrLengthMismatch)
	rq.Zero(g.Attempts())

	res, _, err := g.Guess("eeece")
	rq.NoError(err)
	rq.Equal("-G-GG", res.Pattern())
}

func TestNewRejectsBadTarget(t *testing.T) {
	rq := require.New(t)

	_, err := game.New("toolong")
	rq.ErrorIs(err, score.ErrLengthMismatch)

	g, err := game.New("  SLATE ")
	rq.NoError(err)
	rq.Equal("slate", g.Target())
}

func TestWithMaxGuesses(t *testing.T) {
	rq := require.New(t)

	g, err := game.New("truth", game.WithMaxGuesses(1))
	rq.NoError(err)
	rq.Equal(1, g.MaxGuesses())

	_, state, err := g.Guess("slate")
	rq.NoError(err)
	rq.Equal(game.Lost, state)

	g, err = game.New("truth", game.WithMaxGuesses(0))
	rq.NoError(err)
	rq.Equal(game.MaxGuesses, g.MaxGuesses())
}

func TestHistoryAndLetters(t *testing.T) {
	rq := require.New(t)

	g, err := game.New("truth", game.WithValidator(dict))
	rq.NoError(err)

	_, _, err = g.Guess("tarry")
	rq.NoError(err)
	_, _, err = g.Guess("title")
	rq.NoError(err)

	hist := g.History()
	rq.Len(hist, 2)
	rq.Equal("tarry", hist[0].Word())
	rq.Equal("title", hist[1].Word())

	hist[0] = score.Result{}
	rq.Equal("tarry", g.History()[0].Word())

	letters := g.Letters()
	rq.Equal(score.CorrectSpot, letters['t'])
	rq.Equal(score.WrongSpot, letters['r'])
	rq.Equal(score.NotPresent, letters['a'])
	rq.Equal(score.NotPresent, letters['e'])
	_, seen := letters['z']
	rq.False(seen)
}

func TestDuration(t *testing.T) {
	rq := require.New(t)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := func() time.Time { return now }

	g, err := game.New("slate", game.WithClock(clock))
	rq.NoError(err)

	now = now.Add(30 * time.Second)
	rq.Equal(30*time.Second, g.Duration())

	_, state, err := g.Guess("slate")
	rq.NoError(err)
	rq.Equal(game.Won, state)

	now = now.Add(time.Hour)
	rq.Equal(30*time.Second, g.Duration())
}
