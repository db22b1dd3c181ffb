// Package daily picks the same target for everyone on a given UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Answers is the part of the dictionary the daily pick needs.
type Answers interface {
	Stats() (answersCount int, allowedCount int)
	Answer(i int) (string, error)
}

// Target returns the answer for date. It fails with the dictionary's
// empty-list error when there are no answers.
func Target(dict Answers, date time.Time, salt string) (string, error) {
	n, _ := dict.Stats()
	return dict.Answer(WordIndex(date, salt, n))
}
