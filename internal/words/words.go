// internal/words/words.go
//
// Dictionary of solution and accepted-guess words.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// A Dictionary is built once and never mutated afterwards; share it by
// pointer between games and goroutines without locking.

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/internal/score"
)

// ErrEmptyDictionary is returned when there is no answer to choose from.
var ErrEmptyDictionary = errors.New("words: answers list is empty")

// Picker returns an index in [0, n).
type Picker func(n int) (int, error)

// Option customizes a Dictionary.
type Option func(*Dictionary)

// WithPicker replaces the crypto/rand based index picker.
func WithPicker(p Picker) Option {
	return func(d *Dictionary) { d.pick = p }
}

// Dictionary answers the two questions the game asks of its word lists:
// "give me a target" and "is this a word".
type Dictionary struct {
	answers    []string            // canonical answers, unique, in input order
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
	pick       Picker
}

// New builds a Dictionary from raw lists. Entries are trimmed and lowercased;
// anything that is not 5 letters a–z is dropped, as are duplicates.
func New(answers, allowed []string, opts ...Option) *Dictionary {
	ans := normalize(answers)
	d := &Dictionary{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(append(append([]string{}, ans...), normalize(allowed)...)),
		pick:       cryptoPick,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SelectTarget returns a uniformly random answer.
func (d *Dictionary) SelectTarget() (string, error) {
	if len(d.answers) == 0 {
		return "", ErrEmptyDictionary
	}
	i, err := d.pick(len(d.answers))
	if err != nil {
		return "", err
	}
	return d.answers[i], nil
}

// IsValidWord reports whether candidate is a valid guess (answers ∪ guesses).
// Malformed input simply returns false.
func (d *Dictionary) IsValidWord(candidate string) bool {
	_, ok := d.allowedSet[canonical(candidate)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[canonical(w)]
	return ok
}

// Answer returns the answer at index i, or ErrEmptyDictionary if there are
// none. i is reduced modulo the list length.
func (d *Dictionary) Answer(i int) (string, error) {
	if len(d.answers) == 0 {
		return "", ErrEmptyDictionary
	}
	i %= len(d.answers)
	if i < 0 {
		i += len(d.answers)
	}
	return d.answers[i], nil
}

// Answers returns a copy of the answer list.
func (d *Dictionary) Answers() []string {
	return append([]string(nil), d.answers...)
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowedSet)
}

// canonical is the single case policy used for every lookup.
func canonical(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

func normalize(list []string) []string {
	out := lo.Map(list, func(w string, _ int) string { return canonical(w) })
	out = lo.Filter(out, func(w string, _ int) bool { return isWord(w) })
	return lo.Uniq(out)
}

// isWord reports whether s is score.WordLen lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) != score.WordLen {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func toSet(list []string) map[string]struct{} {
	return lo.SliceToMap(list, func(w string) (string, struct{}) { return w, struct{}{} })
}

func cryptoPick(n int) (int, error) {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(nBig.Int64()), nil
}
