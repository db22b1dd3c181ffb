package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/fatih/color"

	"github.com/robalobadob/wordle/internal/score"
	"github.com/robalobadob/wordle/internal/store"
)

// palette renders tiles either as coloured blocks or, with colour off, as
// bracketed letters: [X] correct, (X) present, " X " absent.
type palette struct {
	enabled bool
	correct *color.Color
	present *color.Color
	absent  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		enabled: enabled,
		correct: color.New(color.Bold, color.FgBlack, color.BgGreen),
		present: color.New(color.Bold, color.FgBlack, color.BgYellow),
		absent:  color.New(color.Bold, color.FgWhite, color.BgHiBlack),
	}
	for _, c := range []*color.Color{p.correct, p.present, p.absent} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) tile(l score.Letter) string {
	ch := unicode.ToUpper(l.Char)
	if !p.enabled {
		switch l.Mark {
		case score.CorrectSpot:
			return fmt.Sprintf("[%c]", ch)
		case score.WrongSpot:
			return fmt.Sprintf("(%c)", ch)
		default:
			return fmt.Sprintf(" %c ", ch)
		}
	}
	switch l.Mark {
	case score.CorrectSpot:
		return p.correct.Sprintf(" %c ", ch)
	case score.WrongSpot:
		return p.present.Sprintf(" %c ", ch)
	default:
		return p.absent.Sprintf(" %c ", ch)
	}
}

func (p palette) row(res score.Result) string {
	var b strings.Builder
	for _, l := range res {
		b.WriteString(p.tile(l))
	}
	return b.String()
}

// absentLetters lists, sorted, every guessed letter known not to be in the target.
func absentLetters(letters map[rune]score.Mark) string {
	var out []string
	for r, m := range letters {
		if m == score.NotPresent {
			out = append(out, string(r))
		}
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}

func printStats(w io.Writer, st store.Stats, maxGuesses int) {
	fmt.Fprintf(w, "Played: %d  Win %%: %d  Current streak: %d  Max streak: %d\n",
		st.Played, st.WinRate(), st.CurrentStreak, st.MaxStreak)
	for i := 1; i <= maxGuesses; i++ {
		n := st.Distribution[i]
		fmt.Fprintf(w, "%d: %s%d\n", i, strings.Repeat("#", n), n)
	}
}
