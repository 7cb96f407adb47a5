// apps/go-solver/internal/words/words.go
//
// Word and dictionary types for the solver.
//
// Responsibilities:
//   - Word: a fixed 5-letter lowercase ASCII word, comparable and usable as a map key.
//   - Dictionary: the frequency-weighted vocabulary, immutable once built.
//   - Strict parsing of dictionary ("WORD FREQUENCY" per line) and answer lists.
//
// Any malformed input is an error; callers treat it as fatal at startup.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Length is the number of letters in every word.
const Length = 5

var (
	ErrBadWord       = errors.New("words: word must be exactly 5 ASCII letters")
	ErrMalformedLine = errors.New("words: line must be of the form WORD FREQUENCY")
	ErrBadFrequency  = errors.New("words: frequency must be a non-negative integer")
	ErrUnknownAnswer = errors.New("words: answer is not in the dictionary")
)

// Word is a 5-letter lowercase word.
type Word [Length]byte

// Parse validates s and converts it to a Word. Uppercase letters are folded.
func Parse(s string) (Word, error) {
	var w Word
	if len(s) != Length {
		return w, fmt.Errorf("%w: %q", ErrBadWord, s)
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			return w, fmt.Errorf("%w: %q", ErrBadWord, s)
		}
		w[i] = c
	}
	return w, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string { return string(w[:]) }

// Compare orders words lexicographically.
func (w Word) Compare(o Word) int {
	for i := 0; i < Length; i++ {
		if w[i] != o[i] {
			if w[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Entry pairs a word with its frequency weight.
type Entry struct {
	Word   Word
	Weight uint64
}

// Dictionary is the full frequency-weighted vocabulary.
// It is never mutated after construction and may be shared freely.
type Dictionary struct {
	weights map[Word]uint64
	entries []Entry // sorted by word
	total   uint64
}

// NewDictionary builds a Dictionary from a word → weight map. The map is copied.
func NewDictionary(weights map[Word]uint64) *Dictionary {
	d := &Dictionary{
		weights: make(map[Word]uint64, len(weights)),
		entries: make([]Entry, 0, len(weights)),
	}
	for w, wt := range weights {
		d.weights[w] = wt
		d.entries = append(d.entries, Entry{Word: w, Weight: wt})
		d.total += wt
	}
	slices.SortFunc(d.entries, func(a, b Entry) int { return a.Word.Compare(b.Word) })
	return d
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.entries) }

// Contains reports whether w is admissible.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.weights[w]
	return ok
}

// Weight returns the frequency weight of w.
func (d *Dictionary) Weight(w Word) (uint64, bool) {
	wt, ok := d.weights[w]
	return wt, ok
}

// TotalWeight is the sum of all weights.
func (d *Dictionary) TotalWeight() uint64 { return d.total }

// Entries returns all words in lexicographic order. The slice is shared and
// must not be modified.
func (d *Dictionary) Entries() []Entry { return d.entries }

// Clone returns an independent copy of the weights.
func (d *Dictionary) Clone() map[Word]uint64 {
	out := make(map[Word]uint64, len(d.weights))
	for w, wt := range d.weights {
		out[w] = wt
	}
	return out
}

// ParseDictionary reads one "WORD FREQUENCY" entry per line.
// Blank lines are skipped; everything else must be well formed.
func ParseDictionary(r io.Reader) (*Dictionary, error) {
	weights := make(map[Word]uint64)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		word, freq, ok := strings.Cut(text, " ")
		if !ok || strings.ContainsAny(strings.TrimSpace(freq), " \t") {
			return nil, fmt.Errorf("line %d: %w: %q", line, ErrMalformedLine, text)
		}
		w, err := Parse(word)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		n, err := strconv.ParseUint(strings.TrimSpace(freq), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %q", line, ErrBadFrequency, freq)
		}
		weights[w] = n
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewDictionary(weights), nil
}

// ParseAnswers reads a whitespace separated answer list. Every answer must be
// admissible in dict.
func ParseAnswers(r io.Reader, dict *Dictionary) ([]Word, error) {
	var out []Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		for _, field := range strings.Fields(sc.Text()) {
			w, err := Parse(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if !dict.Contains(w) {
				return nil, fmt.Errorf("line %d: %w: %s", line, ErrUnknownAnswer, w)
			}
			out = append(out, w)
		}
	}
	return out, sc.Err()
}
