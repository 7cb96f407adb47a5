package entropy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	weights := map[words.Word]uint64{}
	for i, s := range []string{
		"tares", "crane", "crate", "trace", "react", "right", "wrong", "sight",
		"light", "fight", "night", "might", "tight", "eerie", "geese", "llama",
		"sassy", "abbey", "hilly", "fluff", "brain", "grain", "drain", "train",
	} {
		weights[words.MustParse(s)] = uint64(10 + i*3)
	}
	return words.NewDictionary(weights)
}

func TestGoodness(t *testing.T) {
	var h Histogram
	assert.Zero(t, Goodness(&h, 0))

	h[0], h[7] = 5, 5
	assert.InDelta(t, 1.0, Goodness(&h, 10), 1e-12)

	h = Histogram{}
	h[3] = 9
	assert.Zero(t, Goodness(&h, 9))

	h = Histogram{}
	for i := 0; i < 4; i++ {
		h[i] = 1
	}
	g := Goodness(&h, 4)
	assert.False(t, math.IsNaN(g))
	assert.InDelta(t, 2.0, g, 1e-12)
}

func TestPartitionersAgree(t *testing.T) {
	d := testDict(t)
	p := pool.New(d)
	p.Retain(mask.Guess{Word: words.MustParse("tares"), Mask: mask.MustParse("-----")})
	for _, pl := range []*pool.Pool{pool.New(d), p} {
		candidates := pl.Entries()
		for _, e := range d.Entries() {
			var a, b Histogram
			PatternScan(&a, e.Word, candidates)
			Buckets(&b, e.Word, candidates)
			require.Equal(t, a, b, "guess %s", e.Word)

			var sum uint64
			for _, n := range b {
				sum += n
			}
			assert.Equal(t, pl.TotalWeight(), sum)
		}
	}
}

func TestBucketsResetsHistogram(t *testing.T) {
	d := testDict(t)
	var h Histogram
	for i := range h {
		h[i] = 99
	}
	Buckets(&h, words.MustParse("crane"), d.Entries())
	var sum uint64
	for _, n := range h {
		sum += n
	}
	assert.Equal(t, d.TotalWeight(), sum)
}

func TestBetter(t *testing.T) {
	a := words.MustParse("aaaaa")
	b := words.MustParse("bbbbb")

	assert.True(t, Better(Candidate{Word: b, Goodness: 2}, Candidate{Word: a, Goodness: 1}))
	// within epsilon is a tie: pool membership decides
	assert.True(t, Better(
		Candidate{Word: b, Goodness: 1, InPool: true},
		Candidate{Word: a, Goodness: 1 + Epsilon/2},
	))
	// then weight
	assert.True(t, Better(
		Candidate{Word: b, Goodness: 1, InPool: true, Weight: 5},
		Candidate{Word: a, Goodness: 1, InPool: true, Weight: 4},
	))
	// then word order
	assert.True(t, Better(
		Candidate{Word: a, Goodness: 1, Weight: 4},
		Candidate{Word: b, Goodness: 1, Weight: 4},
	))
	assert.False(t, Better(
		Candidate{Word: a, Goodness: 1, Weight: 4},
		Candidate{Word: a, Goodness: 1, Weight: 4},
	))
}

func TestBestIndependentOfWorkers(t *testing.T) {
	d := testDict(t)
	p := pool.New(d)
	p.Retain(mask.Guess{Word: words.MustParse("tares"), Mask: mask.MustParse("-----")})

	want, err := Scorer{Partition: PatternScan, Workers: 1}.Best(d.Entries(), p)
	require.NoError(t, err)
	for _, workers := range []int{0, 2, 3, 16} {
		for _, part := range []Partition{PatternScan, Buckets} {
			got, err := Scorer{Partition: part, Workers: workers}.Best(d.Entries(), p)
			require.NoError(t, err)
			assert.Equal(t, want.Word, got.Word)
			assert.InDelta(t, want.Goodness, got.Goodness, 1e-12)
		}
	}
}

func TestBestPrefersPossibleAnswerOnTie(t *testing.T) {
	d := words.NewDictionary(map[words.Word]uint64{
		words.MustParse("right"): 1,
		words.MustParse("sight"): 1,
		words.MustParse("zzzzz"): 1000,
	})
	p := pool.New(d)
	p.Delete(words.MustParse("zzzzz"))

	// any guess splits {right, sight} the same way except zzzzz which does not
	// split them at all
	best, err := Scorer{}.Best(d.Entries(), p)
	require.NoError(t, err)
	assert.Equal(t, "right", best.Word.String())
	assert.True(t, best.InPool)
	assert.InDelta(t, 1.0, best.Goodness, 1e-12)
}

func TestBestEmptyUniverse(t *testing.T) {
	_, err := Scorer{}.Best(nil, pool.New(testDict(t)))
	assert.ErrorIs(t, err, ErrEmptyUniverse)
}
