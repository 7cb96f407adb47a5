package strategy

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// core is the state shared by all variants: the dictionary, this game's
// candidate pool and how much of the history has been applied to it.
type core struct {
	name      Kind
	dict      *words.Dictionary
	remaining *pool.Pool
	applied   int
	opening   words.Word
	scorer    entropy.Scorer
	reseed    func()
}

func newCore(name Kind, dict *words.Dictionary, partition entropy.Partition, o Options) (*core, error) {
	if !dict.Contains(o.Opening) {
		return nil, fmt.Errorf("%w: %s", ErrOpeningNotAdmissible, o.Opening)
	}
	c := &core{
		name:      name,
		dict:      dict,
		remaining: pool.New(dict),
		opening:   o.Opening,
		scorer:    entropy.Scorer{Partition: partition, Workers: o.Workers},
	}
	c.reseed = func() { c.remaining.Reset(c.dict) }
	return c, nil
}

// begin resets the pool when a new game has started and applies any
// feedback not seen yet.
func (c *core) begin(history []mask.Guess) {
	if len(history) < c.applied {
		c.reseed()
		c.applied = 0
	}
	if len(history) == c.applied {
		return
	}
	for _, g := range history[c.applied:] {
		c.remaining.Retain(g)
	}
	c.applied = len(history)
	log.Debug().
		Str("strategy", string(c.name)).
		Int("turn", len(history)+1).
		Int("remaining", c.remaining.Len()).
		Msg("narrowed candidates")
}

// settled returns the answer when it is already determined.
func (c *core) settled() (words.Word, bool, error) {
	switch c.remaining.Len() {
	case 0:
		return words.Word{}, true, ErrNoCandidates
	case 1:
		w, _ := c.remaining.SoleRemaining()
		return w, true, nil
	}
	return words.Word{}, false, nil
}

func (c *core) score(universe []words.Entry) (words.Word, error) {
	best, err := c.scorer.Best(universe, c.remaining)
	if err != nil {
		return words.Word{}, err
	}
	log.Debug().
		Str("strategy", string(c.name)).
		Str("guess", best.Word.String()).
		Float64("goodness", best.Goodness).
		Bool("possible", best.InPool).
		Msg("scored guess")
	return best.Word, nil
}

// Guess implements Guesser for the variants without extra caching.
func (c *core) Guess(history []mask.Guess) (words.Word, error) {
	c.begin(history)
	if len(history) == 0 {
		return c.opening, nil
	}
	if w, done, err := c.settled(); done {
		return w, err
	}
	return c.score(c.dict.Entries())
}

// Candidates returns the size of the current pool.
func (c *core) Candidates() int { return c.remaining.Len() }

// Naive keeps a private copy of the dictionary and rescans the pool once per
// feedback pattern.
type Naive struct{ *core }

func NewNaive(dict *words.Dictionary, opts ...Option) (*Naive, error) {
	private := words.NewDictionary(dict.Clone())
	c, err := newCore(KindNaive, private, entropy.PatternScan, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Naive{c}, nil
}

// Cached shares the process-wide dictionary; the pool reads through to it
// until the first feedback arrives.
type Cached struct{ *core }

func NewCached(dict *words.Dictionary, opts ...Option) (*Cached, error) {
	c, err := newCore(KindCached, dict, entropy.PatternScan, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Cached{c}, nil
}

// MaskBuckets shares the dictionary and partitions with one dense pass per guess.
type MaskBuckets struct{ *core }

func NewMaskBuckets(dict *words.Dictionary, opts ...Option) (*MaskBuckets, error) {
	c, err := newCore(KindMaskBuckets, dict, entropy.Buckets, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &MaskBuckets{c}, nil
}
