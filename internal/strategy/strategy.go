// apps/go-solver/internal/strategy/strategy.go
//
// Guess selection strategies.
//
// Every strategy implements Guesser. A call to Guess:
//   1. starts a new game when history is shorter than what was already seen,
//   2. narrows the candidate pool with every history entry not yet applied,
//   3. returns the opening word on the first turn, or the last candidate when
//      only one is left,
//   4. otherwise ranks the guess universe with the entropy scorer.
//
// Variants differ only in how much work they avoid:
//   - Naive:       private dictionary copy, 243-pattern rescans.
//   - Cached:      shared dictionary, 243-pattern rescans.
//   - MaskBuckets: shared dictionary, one dense histogram pass per guess.
//   - Memoized:    MaskBuckets plus a cache of second guesses keyed by the
//                  opening's feedback.
//   - Interactive: private editable dictionary and pool, hard mode.

package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Guesser picks the next word to play given the game so far.
type Guesser interface {
	Guess(history []mask.Guess) (words.Word, error)
}

// Kind names a strategy variant.
type Kind string

const (
	KindNaive       Kind = "naive"
	KindCached      Kind = "cached"
	KindMaskBuckets Kind = "maskbuckets"
	KindMemoized    Kind = "memoized"
	KindInteractive Kind = "interactive"
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{KindNaive, KindCached, KindMaskBuckets, KindMemoized, KindInteractive}

// DefaultOpening is a precomputed first guess with near-optimal expected information.
const DefaultOpening = "tares"

var (
	ErrUnknownKind          = errors.New("strategy: unknown kind")
	ErrOpeningNotAdmissible = errors.New("strategy: opening guess is not in the dictionary")
	ErrNoCandidates         = errors.New("strategy: no candidate is consistent with the feedback")
)

// ParseKind accepts a variant name, ignoring case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Options configure a strategy.
type Options struct {
	Opening words.Word
	// Workers bounds the scoring goroutines; <= 0 means GOMAXPROCS.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithOpening sets the first guess.
func WithOpening(w words.Word) Option {
	return func(o *Options) { o.Opening = w }
}

// WithWorkers sets the number of scoring goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func buildOptions(opts []Option) Options {
	o := Options{Opening: words.MustParse(DefaultOpening)}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// New constructs the variant named by kind over the shared dictionary.
func New(kind Kind, dict *words.Dictionary, opts ...Option) (Guesser, error) {
	var (
		g   Guesser
		err error
	)
	switch kind {
	case KindNaive:
		g, err = NewNaive(dict, opts...)
	case KindCached:
		g, err = NewCached(dict, opts...)
	case KindMaskBuckets:
		g, err = NewMaskBuckets(dict, opts...)
	case KindMemoized:
		g, err = NewMemoized(dict, opts...)
	case KindInteractive:
		g, err = NewInteractive(dict, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
