package entropy

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Epsilon is the goodness gap below which two guesses count as tied.
const Epsilon = 1e-13

var ErrEmptyUniverse = errors.New("entropy: no words to choose from")

// Candidate is a scored guess.
type Candidate struct {
	Word     words.Word
	Goodness float64
	InPool   bool   // the word could still be the answer
	Weight   uint64 // dictionary frequency
}

// Better reports whether a should be preferred over b:
//  1. goodness higher by more than Epsilon
//  2. still a possible answer
//  3. higher dictionary weight
//  4. lexicographically smaller word
func Better(a, b Candidate) bool {
	if a.Goodness > b.Goodness+Epsilon {
		return true
	}
	if b.Goodness > a.Goodness+Epsilon {
		return false
	}
	if a.InPool != b.InPool {
		return a.InPool
	}
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	return a.Word.Compare(b.Word) < 0
}

// Scorer ranks a guess universe against a candidate pool.
type Scorer struct {
	Partition Partition
	// Workers bounds the goroutines computing goodness; <= 0 means GOMAXPROCS.
	Workers int
}

// chunk is the number of universe words one goroutine scores at a time.
const chunk = 64

// Best returns the highest ranked word of universe against remaining.
//
// Goodness values are computed concurrently into a slice indexed like
// universe, then folded sequentially in universe order so the winner does not
// depend on the number of workers or on scheduling.
func (s Scorer) Best(universe []words.Entry, remaining *pool.Pool) (Candidate, error) {
	if len(universe) == 0 {
		return Candidate{}, ErrEmptyUniverse
	}
	partition := s.Partition
	if partition == nil {
		partition = Buckets
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	candidates := remaining.Entries()
	total := remaining.TotalWeight()
	scores := make([]float64, len(universe))

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(universe); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(universe))
		g.Go(func() error {
			var h Histogram
			for i := lo; i < hi; i++ {
				partition(&h, universe[i].Word, candidates)
				scores[i] = Goodness(&h, total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Candidate{}, err
	}

	var best Candidate
	for i, e := range universe {
		c := Candidate{
			Word:     e.Word,
			Goodness: scores[i],
			InPool:   remaining.Contains(e.Word),
			Weight:   e.Weight,
		}
		if i == 0 || Better(c, best) {
			best = c
		}
	}
	return best, nil
}
