// apps/go-solver/internal/entropy/entropy.go
//
// Expected information gain of a guess against the candidate pool.
//
// A guess partitions the pool into at most mask.Patterns buckets, one per
// feedback mask. Goodness is the Shannon entropy of the weighted bucket
// distribution, in bits:
//
//	goodness(w) = -Σ p_i·log2(p_i)   over non-empty buckets, p_i = bucket_i / total
//
// Two partitioners produce identical histograms:
//   - PatternScan: for each of the 243 masks, re-scan the pool with Guess.Matches.
//   - Buckets:     one scan, Compute each candidate's mask and add to its slot.

package entropy

import (
	"math"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Histogram holds total candidate weight per mask index.
type Histogram [mask.Patterns]uint64

// Partition fills h with the partition induced by guess over candidates.
type Partition func(h *Histogram, guess words.Word, candidates []words.Entry)

// PatternScan is the reference partitioner. It costs 243 pool scans per guess.
func PatternScan(h *Histogram, guess words.Word, candidates []words.Entry) {
	for idx := 0; idx < mask.Patterns; idx++ {
		g := mask.Guess{Word: guess, Mask: mask.FromIndex(idx)}
		var sum uint64
		for _, c := range candidates {
			if g.Matches(c.Word) {
				sum += c.Weight
			}
		}
		h[idx] = sum
	}
}

// Buckets computes each candidate's mask once and accumulates it into a dense
// histogram.
func Buckets(h *Histogram, guess words.Word, candidates []words.Entry) {
	*h = Histogram{}
	for _, c := range candidates {
		h[mask.Compute(c.Word, guess).Index()] += c.Weight
	}
}

// Goodness returns the entropy of h in bits. Empty buckets contribute zero
// and a zero total yields zero.
func Goodness(h *Histogram, total uint64) float64 {
	if total == 0 {
		return 0
	}
	t := float64(total)
	var g float64
	for _, n := range h {
		if n == 0 {
			continue
		}
		p := float64(n) / t
		g -= p * math.Log2(p)
	}
	return g
}
