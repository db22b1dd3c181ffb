// internal/score/types.go
//
// Core type definitions for guess scoring.
// Defines:
//   - Mark: per-letter classification of a guess.
//   - Letter: one guess letter paired with its Mark.
//   - Result: a full, position-aligned scored guess.

package score

import "strings"

// WordLen is the number of letters in every target and guess.
const WordLen = 5

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter matches the target at the same position.
//   - "present": letter occurs in the target but not every occurrence is
//     already claimed.
//   - "absent":  letter does not occur in the target, or all of its
//     occurrences are claimed elsewhere.
type Mark string

const (
	CorrectSpot Mark = "correct"
	WrongSpot   Mark = "present"
	NotPresent  Mark = "absent"
)

// Letter is one guess letter with its classification.
type Letter struct {
	Char rune `json:"char"`
	Mark Mark `json:"mark"`
}

// Result is a scored guess. It is a value type, so copies never alias.
type Result [WordLen]Letter

// Solved reports whether every letter is CorrectSpot.
func (r Result) Solved() bool { return IsSolved(r) }

// Word returns the guessed word.
func (r Result) Word() string {
	var b strings.Builder
	for _, l := range r {
		b.WriteRune(l.Char)
	}
	return b.String()
}

// Pattern renders the marks as a compact string: 'G' correct, 'Y' present, '-' absent.
func (r Result) Pattern() string {
	var b [WordLen]byte
	for i, l := range r {
		switch l.Mark {
		case CorrectSpot:
			b[i] = 'G'
		case WrongSpot:
			b[i] = 'Y'
		default:
			b[i] = '-'
		}
	}
	return string(b[:])
}
