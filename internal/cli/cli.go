// internal/cli/cli.go
//
// Interactive game loop.
// Responsibilities:
//   - Start games with a target from the dictionary (or the daily pick).
//   - Prompt until a guess passes the word check, then score it.
//   - Render tiles, announce a win, always reveal the target at the end.
//   - Record outcomes and print running statistics.
//
// Input ends the loop cleanly on EOF or context cancellation.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/score"
	"github.com/robalobadob/wordle/internal/store"
)

// Dictionary is what the loop needs from the word lists.
// *words.Dictionary satisfies it.
type Dictionary interface {
	game.Validator
	daily.Answers
	SelectTarget() (string, error)
}

// errQuit signals the player closed the input.
var errQuit = errors.New("quit")

// Runner plays games against one dictionary.
type Runner struct {
	dict    Dictionary
	results store.Store
	in      io.Reader
	out     io.Writer
	colors  palette

	mode      store.Mode
	dailySalt string
	games     int // 0 plays until input ends
	now       func() time.Time
}

// Option customizes a Runner.
type Option func(*Runner)

func WithInput(r io.Reader) Option  { return func(rn *Runner) { rn.in = r } }
func WithOutput(w io.Writer) Option { return func(rn *Runner) { rn.out = w } }
func WithColor(on bool) Option      { return func(rn *Runner) { rn.colors = newPalette(on) } }

// WithDaily plays a single game on today's deterministic target.
func WithDaily(salt string) Option {
	return func(rn *Runner) {
		rn.mode = store.ModeDaily
		rn.dailySalt = salt
		rn.games = 1
	}
}

// WithGames limits how many games Run plays. 0 means no limit.
func WithGames(n int) Option { return func(rn *Runner) { rn.games = n } }

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(rn *Runner) { rn.now = now } }

// New builds a Runner reading stdin and writing stdout by default.
func New(dict Dictionary, results store.Store, opts ...Option) *Runner {
	rn := &Runner{
		dict:    dict,
		results: results,
		in:      os.Stdin,
		out:     os.Stdout,
		colors:  newPalette(false),
		mode:    store.ModeRandom,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(rn)
	}
	return rn
}

// Run plays games until the configured count is reached, the input ends or
// ctx is cancelled.
func (rn *Runner) Run(ctx context.Context) error {
	lines := newLineReader(rn.in)
	defer lines.stop()

	if rn.mode == store.ModeDaily {
		date := daily.DateKey(rn.now())
		played, err := rn.results.PlayedDaily(ctx, date)
		if err != nil {
			return fmt.Errorf("check daily: %w", err)
		}
		if played {
			fmt.Fprintf(rn.out, "You already played the daily Wordle for %s.\n", date)
			return nil
		}
	}

	for n := 0; rn.games == 0 || n < rn.games; n++ {
		err := rn.play(ctx, lines)
		if errors.Is(err, errQuit) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (rn *Runner) target() (string, error) {
	if rn.mode == store.ModeDaily {
		return daily.Target(rn.dict, rn.now(), rn.dailySalt)
	}
	return rn.dict.SelectTarget()
}

// play runs one game to completion.
func (rn *Runner) play(ctx context.Context, lines *lineReader) error {
	fmt.Fprintln(rn.out, "Starting new Wordle...")

	target, err := rn.target()
	if err != nil {
		return fmt.Errorf("select target: %w", err)
	}
	g, err := game.New(target, game.WithValidator(rn.dict), game.WithClock(rn.now))
	if err != nil {
		return err
	}
	log.Debug().Str("mode", string(rn.mode)).Msg("game started")

	for g.State() == game.Playing {
		fmt.Fprintf(rn.out, "Enter guess #%d: \n", g.Attempts()+1)
		line, err := lines.next(ctx)
		if err != nil {
			fmt.Fprintf(rn.out, "The wordle was: %s.\n", g.Target())
			return err
		}

		res, state, err := g.Guess(line)
		if errors.Is(err, game.ErrNotInWordList) || errors.Is(err, score.ErrLengthMismatch) {
			fmt.Fprintln(rn.out, "That is not a valid word")
			continue
		}
		if err != nil {
			return err
		}
		log.Debug().Int("attempt", g.Attempts()).Str("pattern", res.Pattern()).Msg("guess scored")

		fmt.Fprintf(rn.out, "Score: %s\n", rn.colors.row(res))
		if absent := absentLetters(g.Letters()); absent != "" && state == game.Playing {
			fmt.Fprintf(rn.out, "Not in word: %s\n", absent)
		}
		if state == game.Won {
			fmt.Fprintf(rn.out, "Congratulations! You solved it in %d attempts.\n", g.Attempts())
		}
	}
	fmt.Fprintf(rn.out, "The wordle was: %s.\n\n", g.Target())

	rn.record(ctx, g)
	return nil
}

// record persists the outcome and prints stats. Failures are logged, never fatal.
func (rn *Runner) record(ctx context.Context, g *game.Game) {
	now := rn.now()
	o := store.Outcome{
		Mode:       rn.mode,
		Date:       daily.DateKey(now),
		Target:     g.Target(),
		Won:        g.State() == game.Won,
		Attempts:   g.Attempts(),
		Elapsed:    g.Duration(),
		FinishedAt: now,
	}
	log.Info().Str("mode", string(o.Mode)).Bool("won", o.Won).Int("attempts", o.Attempts).
		Dur("elapsed", o.Elapsed).Msg("game finished")

	if err := rn.results.Record(ctx, o); err != nil {
		log.Warn().Err(err).Msg("record outcome")
		return
	}
	st, err := rn.results.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load stats")
		return
	}
	printStats(rn.out, st, g.MaxGuesses())
	fmt.Fprintln(rn.out)
}

// lineReader delivers input lines so a blocked read can be abandoned when
// the context is cancelled.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error // set before lines is closed
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string), done: make(chan struct{})}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-lr.done:
				return
			}
		}
		lr.err = sc.Err()
	}()
	return lr
}

// next returns the next line, errQuit at EOF, or ctx.Err().
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", fmt.Errorf("read input: %w", lr.err)
			}
			return "", errQuit
		}
		return line, nil
	}
}

func (lr *lineReader) stop() { close(lr.done) }
