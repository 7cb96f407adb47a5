package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func dict() *words.Dictionary {
	return words.NewDictionary(map[words.Word]uint64{
		words.MustParse("crane"): 10,
		words.MustParse("crate"): 20,
		words.MustParse("trace"): 5,
		words.MustParse("right"): 7,
		words.MustParse("wrong"): 3,
	})
}

func guess(word, m string) mask.Guess {
	return mask.Guess{Word: words.MustParse(word), Mask: mask.MustParse(m)}
}

func TestReadThroughUntilEdited(t *testing.T) {
	d := dict()
	p := New(d)
	assert.True(t, p.Shared())
	assert.Equal(t, 5, p.Len())
	assert.EqualValues(t, 45, p.TotalWeight())
	assert.Equal(t, d.Entries(), p.Entries())

	p.Retain(guess("crane", "###-#"))
	assert.False(t, p.Shared())
	assert.Equal(t, []words.Word{words.MustParse("crate")}, p.Words())
	assert.EqualValues(t, 20, p.TotalWeight())

	// the shared dictionary is untouched
	assert.Equal(t, 5, d.Len())
}

func TestRetainIdempotent(t *testing.T) {
	p := New(dict())
	g := guess("right", "-----")
	p.Retain(g)
	before := p.Entries()
	p.Retain(g)
	assert.Equal(t, before, p.Entries())
}

func TestRetainNeverGrows(t *testing.T) {
	p := New(dict())
	prev := p.Len()
	for _, g := range []mask.Guess{guess("wrong", "-+---"), guess("trace", "++++#"), guess("crate", "###-#")} {
		p.Retain(g)
		assert.LessOrEqual(t, p.Len(), prev)
		prev = p.Len()
	}
}

func TestSoleRemaining(t *testing.T) {
	p := New(dict())
	_, ok := p.SoleRemaining()
	assert.False(t, ok)

	p.Retain(guess("right", "#####"))
	w, ok := p.SoleRemaining()
	require.True(t, ok)
	assert.Equal(t, "right", w.String())

	single := New(words.NewDictionary(map[words.Word]uint64{words.MustParse("alone"): 1}))
	w, ok = single.SoleRemaining()
	require.True(t, ok)
	assert.Equal(t, "alone", w.String())
}

func TestInsertDelete(t *testing.T) {
	p := New(dict())
	assert.False(t, p.Delete(words.MustParse("zzzzz")))
	assert.True(t, p.Shared())

	assert.True(t, p.Delete(words.MustParse("crate")))
	assert.False(t, p.Contains(words.MustParse("crate")))
	assert.EqualValues(t, 25, p.TotalWeight())

	p.Insert(words.MustParse("zzzzz"), 1)
	p.Insert(words.MustParse("crane"), 4)
	wt, ok := p.Weight(words.MustParse("crane"))
	require.True(t, ok)
	assert.EqualValues(t, 4, wt)
	assert.EqualValues(t, 20, p.TotalWeight())
}

func TestResetFrom(t *testing.T) {
	d := dict()
	src := New(d)
	dst := New(d)

	dst.Retain(guess("right", "#####"))
	dst.ResetFrom(src)
	assert.True(t, dst.Shared())
	assert.Equal(t, 5, dst.Len())

	src.Delete(words.MustParse("wrong"))
	dst.ResetFrom(src)
	assert.Equal(t, 4, dst.Len())

	// copies are independent
	dst.Delete(words.MustParse("right"))
	assert.True(t, src.Contains(words.MustParse("right")))

	dst.Reset(d)
	assert.Equal(t, 5, dst.Len())
}
