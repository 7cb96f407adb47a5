package strategy

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultWeight is the frequency given to words unknown to the dictionary.
const DefaultWeight = 1

// Interactive follows a game played elsewhere and accepts corrections:
// words the real game rejects, words the player rules out, and hard mode.
//
// Its dictionary is a pool over the shared dictionary, so nothing is copied
// until the first edit. Any edit marks the session dirty, which turns off the
// fixed opening and second-guess memoization for the rest of the session.
type Interactive struct {
	*core
	shared *words.Dictionary
	dict   *pool.Pool
	hard   bool
	dirty  bool
	memo   secondGuesses
}

func NewInteractive(dict *words.Dictionary, opts ...Option) (*Interactive, error) {
	c, err := newCore(KindInteractive, dict, entropy.Buckets, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	i := &Interactive{core: c, shared: dict, dict: pool.New(dict)}
	c.reseed = func() { c.remaining.ResetFrom(i.dict) }
	return i, nil
}

func (i *Interactive) Guess(history []mask.Guess) (words.Word, error) {
	i.begin(history)
	if len(history) == 0 && !i.dirty {
		return i.opening, nil
	}
	if w, done, err := i.settled(); done {
		return w, err
	}

	memoize := !i.dirty && secondTurn(history, i.opening)
	if memoize {
		if w, ok := i.memo.get(history[0].Mask); ok {
			return w, nil
		}
	}

	universe := i.dict.Entries()
	if i.hard {
		universe = i.remaining.Entries()
	}
	w, err := i.score(universe)
	if err != nil {
		return w, err
	}
	if memoize {
		i.memo.put(history[0].Mask, w)
	}
	return w, nil
}

func (i *Interactive) touch() {
	i.dirty = true
	i.memo.clear()
}

// Remove drops w from both the dictionary and the pool: the game does not
// accept it as a word. It reports whether anything changed.
func (i *Interactive) Remove(w words.Word) bool {
	i.touch()
	inDict := i.dict.Delete(w)
	inPool := i.remaining.Delete(w)
	log.Debug().Str("word", w.String()).Msg("removed from dictionary")
	return inDict || inPool
}

// Eliminate drops w from the pool only; it stays available as a guess.
func (i *Interactive) Eliminate(w words.Word) bool {
	i.touch()
	return i.remaining.Delete(w)
}

// Allow undoes Remove: w becomes guessable again, but is not reconsidered as
// an answer.
func (i *Interactive) Allow(w words.Word) bool {
	i.touch()
	if i.dict.Contains(w) {
		return false
	}
	i.dict.Insert(w, i.weightOf(w))
	return true
}

// Consider undoes Eliminate: w may be the answer again. Unknown words are
// added to the dictionary first.
func (i *Interactive) Consider(w words.Word) bool {
	i.touch()
	if !i.dict.Contains(w) {
		i.dict.Insert(w, i.weightOf(w))
	}
	if i.remaining.Contains(w) {
		return false
	}
	wt, _ := i.dict.Weight(w)
	i.remaining.Insert(w, wt)
	return true
}

// Hard restricts every later guess to words that could still be the answer.
func (i *Interactive) Hard() {
	i.touch()
	i.hard = true
}

// HardMode reports whether Hard was called.
func (i *Interactive) HardMode() bool { return i.hard }

// Dirty reports whether the session has been edited.
func (i *Interactive) Dirty() bool { return i.dirty }

// Remaining lists the words that could still be the answer, in order.
func (i *Interactive) Remaining() []words.Word { return i.remaining.Words() }

// Admissible reports whether w is currently in this session's dictionary.
func (i *Interactive) Admissible(w words.Word) bool { return i.dict.Contains(w) }

// weightOf restores the shared dictionary's weight for previously removed
// words and uses DefaultWeight for words it never knew.
func (i *Interactive) weightOf(w words.Word) uint64 {
	if wt, ok := i.shared.Weight(w); ok {
		return wt
	}
	return DefaultWeight
}
