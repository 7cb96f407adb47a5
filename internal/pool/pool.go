// apps/go-solver/internal/pool/pool.go
//
// Candidate pool: the weighted set of words still consistent with all
// feedback seen in the current game.
//
// A Pool starts as a read-through view of a shared, immutable
// words.Dictionary. The first divergent edit (Retain, Insert or Delete)
// materializes a private map; until then no copy of the dictionary exists.
// Reset drops the private map and reads through to a base again.

package pool

import (
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Pool is a frequency-weighted word set backed by a shared dictionary.
// It is not safe for concurrent mutation.
type Pool struct {
	base  *words.Dictionary
	local map[words.Word]uint64 // nil while reading through to base
	total uint64                // valid only when local != nil
}

// New returns a pool reading through to base.
func New(base *words.Dictionary) *Pool {
	return &Pool{base: base}
}

// Reset re-seeds the pool from base, discarding any local changes.
func (p *Pool) Reset(base *words.Dictionary) {
	p.base = base
	p.local = nil
	p.total = 0
}

// ResetFrom re-seeds the pool with the current contents of src.
func (p *Pool) ResetFrom(src *Pool) {
	p.base = src.base
	if src.local == nil {
		p.local = nil
		p.total = 0
		return
	}
	p.local = make(map[words.Word]uint64, len(src.local))
	for w, wt := range src.local {
		p.local[w] = wt
	}
	p.total = src.total
}

// Shared reports whether the pool still reads through to its base.
func (p *Pool) Shared() bool { return p.local == nil }

// Retain removes every word that g rules out.
func (p *Pool) Retain(g mask.Guess) {
	if p.local == nil {
		p.local = make(map[words.Word]uint64)
		p.total = 0
		for _, e := range p.base.Entries() {
			if g.Matches(e.Word) {
				p.local[e.Word] = e.Weight
				p.total += e.Weight
			}
		}
		return
	}
	for w, wt := range p.local {
		if !g.Matches(w) {
			delete(p.local, w)
			p.total -= wt
		}
	}
}

// Len returns the number of words in the pool.
func (p *Pool) Len() int {
	if p.local == nil {
		return p.base.Len()
	}
	return len(p.local)
}

// TotalWeight returns the sum of all weights in the pool.
func (p *Pool) TotalWeight() uint64 {
	if p.local == nil {
		return p.base.TotalWeight()
	}
	return p.total
}

// SoleRemaining returns the only word in the pool, if exactly one is left.
func (p *Pool) SoleRemaining() (words.Word, bool) {
	if p.Len() != 1 {
		return words.Word{}, false
	}
	if p.local == nil {
		return p.base.Entries()[0].Word, true
	}
	for w := range p.local {
		return w, true
	}
	return words.Word{}, false
}

// Contains reports whether w is in the pool.
func (p *Pool) Contains(w words.Word) bool {
	_, ok := p.Weight(w)
	return ok
}

// Weight returns the weight of w in the pool.
func (p *Pool) Weight(w words.Word) (uint64, bool) {
	if p.local == nil {
		return p.base.Weight(w)
	}
	wt, ok := p.local[w]
	return wt, ok
}

// Insert adds w with weight, replacing any existing weight.
func (p *Pool) Insert(w words.Word, weight uint64) {
	p.materialize()
	if old, ok := p.local[w]; ok {
		p.total -= old
	}
	p.local[w] = weight
	p.total += weight
}

// Delete removes w. It reports whether w was present.
func (p *Pool) Delete(w words.Word) bool {
	if !p.Contains(w) {
		return false
	}
	p.materialize()
	p.total -= p.local[w]
	delete(p.local, w)
	return true
}

// Entries returns the pool contents sorted by word.
func (p *Pool) Entries() []words.Entry {
	if p.local == nil {
		return p.base.Entries()
	}
	out := make([]words.Entry, 0, len(p.local))
	for w, wt := range p.local {
		out = append(out, words.Entry{Word: w, Weight: wt})
	}
	slices.SortFunc(out, func(a, b words.Entry) int { return a.Word.Compare(b.Word) })
	return out
}

// Words returns the pool's words in lexicographic order.
func (p *Pool) Words() []words.Word {
	entries := p.Entries()
	out := make([]words.Word, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out
}

func (p *Pool) materialize() {
	if p.local != nil {
		return
	}
	p.local = p.base.Clone()
	p.total = p.base.TotalWeight()
}
