// Package daily picks the answer of the day from the answer list.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const dateLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ParseDate reads a YYYY-MM-DD key.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("daily: date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as the modulus source
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Answer returns the answer for date, or false when answers is empty.
func Answer(date time.Time, salt string, answers []words.Word) (words.Word, bool) {
	if len(answers) == 0 {
		return words.Word{}, false
	}
	return answers[WordIndex(date, salt, len(answers))], true
}
