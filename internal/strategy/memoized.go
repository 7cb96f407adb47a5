package strategy

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// secondGuesses caches the second move for each feedback to the opening.
type secondGuesses struct {
	words [mask.Patterns]words.Word
	known [mask.Patterns]bool
}

func (s *secondGuesses) get(m mask.Mask) (words.Word, bool) {
	idx := m.Index()
	return s.words[idx], s.known[idx]
}

func (s *secondGuesses) put(m mask.Mask, w words.Word) {
	idx := m.Index()
	s.words[idx], s.known[idx] = w, true
}

func (s *secondGuesses) clear() { *s = secondGuesses{} }

// secondTurn reports whether history is exactly the opening and its feedback.
func secondTurn(history []mask.Guess, opening words.Word) bool {
	return len(history) == 1 && history[0].Word == opening
}

// Memoized partitions like MaskBuckets and remembers the second guess for
// every feedback to the opening. The opening and the guess universe never
// change for an instance, so entries stay valid across games.
type Memoized struct {
	*core
	memo secondGuesses
}

func NewMemoized(dict *words.Dictionary, opts ...Option) (*Memoized, error) {
	c, err := newCore(KindMemoized, dict, entropy.Buckets, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Memoized{core: c}, nil
}

func (m *Memoized) Guess(history []mask.Guess) (words.Word, error) {
	m.begin(history)
	if len(history) == 0 {
		return m.opening, nil
	}
	if w, done, err := m.settled(); done {
		return w, err
	}

	memoize := secondTurn(history, m.opening)
	if memoize {
		if w, ok := m.memo.get(history[0].Mask); ok {
			log.Debug().Str("feedback", history[0].Mask.String()).Str("guess", w.String()).Msg("second guess remembered")
			return w, nil
		}
	}

	w, err := m.score(m.dict.Entries())
	if err != nil {
		return w, err
	}
	if memoize {
		m.memo.put(history[0].Mask, w)
	}
	return w, nil
}
