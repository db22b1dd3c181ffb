// internal/score/score.go
//
// Guess scoring for a single target/guess pair.
// Responsibilities:
//   - Reject inputs that are not exactly WordLen letters.
//   - Classify each guess letter with the two-pass algorithm below.
//   - Decide whether a scored guess solves the puzzle.
//
// Everything here is pure and safe to call from any number of goroutines.

package score

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrLengthMismatch is returned when a target or guess is not WordLen letters.
var ErrLengthMismatch = errors.New("word must be exactly 5 letters")

// Score classifies every letter of guess against target.
//
// Pass 1:
//   - Mark exact matches CorrectSpot, everything else provisionally NotPresent.
//
// Pass 2 (left to right, CorrectSpot tiles skipped):
//   - If the letter is not in the target at all, it stays NotPresent.
//   - Otherwise it becomes WrongSpot only while the target still has more
//     copies of the letter than the result has already claimed (CorrectSpot
//     or WrongSpot, counted over all five positions).
//
// Pass 1 finishes before pass 2 starts, so exact matches always claim their
// copy first and duplicates resolve leftmost-first.
//
// Letters are compared after lowercasing; the result carries lowercase letters.
func Score(target, guess string) (Result, error) {
	t, err := toWord(target)
	if err != nil {
		return Result{}, fmt.Errorf("target %q: %w", target, err)
	}
	g, err := toWord(guess)
	if err != nil {
		return Result{}, fmt.Errorf("guess %q: %w", guess, err)
	}

	var res Result

	// First pass: exact matches.
	for i := 0; i < WordLen; i++ {
		res[i].Char = g[i]
		if g[i] == t[i] {
			res[i].Mark = CorrectSpot
		} else {
			res[i].Mark = NotPresent
		}
	}

	// Second pass: partial matches, bounded by the target's letter count.
	for i := 0; i < WordLen; i++ {
		if res[i].Mark == CorrectSpot {
			continue
		}
		occurrences := t.count(g[i])
		if occurrences == 0 {
			continue
		}
		if occurrences > res.claimed(g[i]) {
			res[i].Mark = WrongSpot
		}
	}
	return res, nil
}

// IsSolved reports true if all marks are CorrectSpot.
func IsSolved(r Result) bool {
	for _, l := range r {
		if l.Mark != CorrectSpot {
			return false
		}
	}
	return true
}

// word is a fixed-size, lowercased letter array.
type word [WordLen]rune

// toWord copies s into a word without allocating.
func toWord(s string) (word, error) {
	var w word
	if utf8.RuneCountInString(s) != WordLen {
		return w, ErrLengthMismatch
	}
	i := 0
	for _, r := range s {
		w[i] = unicode.ToLower(r)
		i++
	}
	return w, nil
}

func (w word) count(c rune) int {
	n := 0
	for _, r := range w {
		if r == c {
			n++
		}
	}
	return n
}

// claimed counts positions holding c that are already CorrectSpot or WrongSpot.
func (r *Result) claimed(c rune) int {
	n := 0
	for _, l := range r {
		if l.Char == c && (l.Mark == CorrectSpot || l.Mark == WrongSpot) {
			n++
		}
	}
	return n
}
