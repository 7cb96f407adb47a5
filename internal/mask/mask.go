// apps/go-solver/internal/mask/mask.go
//
// Feedback masks for a guess against a secret word.
//
// Defines:
//   - Correctness: per-letter result (Wrong / Misplaced / Correct).
//   - Mask: five Correctness values, with a base-3 index in [0, Patterns).
//   - Compute: the two-pass scoring algorithm.
//   - Guess.Matches: consistency test of a candidate against observed feedback.
//
// Duplicate letters: a letter is marked Misplaced at most as many times as it
// still occurs unmatched in the secret, assigned left to right. For some
// secrets another assignment would describe the same information, but only the
// left-to-right one is ever produced or accepted.

package mask

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Correctness is the evaluation of a single letter in a guess.
type Correctness uint8

const (
	Wrong     Correctness = iota // gray
	Misplaced                    // yellow
	Correct                      // green
)

// Patterns is the number of distinct masks (3^5).
const Patterns = 243

var ErrBadMask = errors.New("mask: literal must be 5 characters of '-', '+' or '#'")

// Mask is the feedback for one guess, one entry per letter position.
type Mask [words.Length]Correctness

// Compute scores guess against secret.
//
// Pass 1 marks exact matches and reserves those secret slots.
// Pass 2 gives each remaining guess letter the leftmost unreserved secret slot
// holding the same letter, marking it Misplaced; otherwise it stays Wrong.
func Compute(secret, guess words.Word) Mask {
	var m Mask
	var used [words.Length]bool

	for i := 0; i < words.Length; i++ {
		if guess[i] == secret[i] {
			m[i] = Correct
			used[i] = true
		}
	}

	for i := 0; i < words.Length; i++ {
		if m[i] == Correct {
			continue
		}
		if claim(guess[i], secret, &used) {
			m[i] = Misplaced
		}
	}
	return m
}

// claim reserves the leftmost unused slot of secret holding letter.
func claim(letter byte, secret words.Word, used *[words.Length]bool) bool {
	for j := 0; j < words.Length; j++ {
		if !used[j] && secret[j] == letter {
			used[j] = true
			return true
		}
	}
	return false
}

// Index encodes m as a base-3 number, position 0 most significant.
func (m Mask) Index() int {
	idx := 0
	for _, c := range m {
		idx = idx*3 + int(c)
	}
	return idx
}

// FromIndex is the inverse of Index.
func FromIndex(idx int) Mask {
	var m Mask
	for i := words.Length - 1; i >= 0; i-- {
		m[i] = Correctness(idx % 3)
		idx /= 3
	}
	return m
}

// Solved reports whether every letter is Correct.
func (m Mask) Solved() bool {
	for _, c := range m {
		if c != Correct {
			return false
		}
	}
	return true
}

// Parse reads a mask literal: '-' Wrong, '+' Misplaced, '#' Correct.
func Parse(s string) (Mask, error) {
	var m Mask
	if len(s) != words.Length {
		return m, fmt.Errorf("%w: %q", ErrBadMask, s)
	}
	for i := 0; i < words.Length; i++ {
		switch s[i] {
		case '-':
			m[i] = Wrong
		case '+':
			m[i] = Misplaced
		case '#':
			m[i] = Correct
		default:
			return m, fmt.Errorf("%w: %q", ErrBadMask, s)
		}
	}
	return m, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Mask {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsLiteral reports whether s looks like a mask literal rather than a word.
func IsLiteral(s string) bool {
	return len(s) > 0 && (s[0] == '-' || s[0] == '+' || s[0] == '#')
}

// String renders m as a mask literal.
func (m Mask) String() string {
	var b [words.Length]byte
	for i, c := range m {
		switch c {
		case Correct:
			b[i] = '#'
		case Misplaced:
			b[i] = '+'
		default:
			b[i] = '-'
		}
	}
	return string(b[:])
}

// Guess is one turn of history: the word played and the feedback received.
type Guess struct {
	Word words.Word
	Mask Mask
}

// Matches reports whether candidate could be the secret given g, i.e.
// Compute(candidate, g.Word) == g.Mask. It runs the same two passes as
// Compute without building a mask and stops at the first contradiction.
func (g Guess) Matches(candidate words.Word) bool {
	var used [words.Length]bool

	for i := 0; i < words.Length; i++ {
		if g.Word[i] == candidate[i] {
			if g.Mask[i] != Correct {
				return false
			}
			used[i] = true
		} else if g.Mask[i] == Correct {
			return false
		}
	}

	for i := 0; i < words.Length; i++ {
		if g.Mask[i] == Correct {
			continue
		}
		if claim(g.Word[i], candidate, &used) != (g.Mask[i] == Misplaced) {
			return false
		}
	}
	return true
}
