package strategy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func embedded(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.NewSource("", "").Dictionary()
	require.NoError(t, err)
	return d
}

// recorder remembers every guess the wrapped strategy makes.
type recorder struct {
	g       Guesser
	guesses []string
}

func (r *recorder) Guess(history []mask.Guess) (words.Word, error) {
	w, err := r.g.Guess(history)
	if err == nil {
		r.guesses = append(r.guesses, w.String())
	}
	return w, err
}

func playRecorded(t *testing.T, d *words.Dictionary, g Guesser, secret string) []string {
	t.Helper()
	r := &recorder{g: g}
	out, err := game.Play(d, words.MustParse(secret), r)
	require.NoError(t, err)
	require.True(t, out.Solved, "secret %s", secret)
	return r.guesses
}

var secrets = []string{"right", "crane", "sugar", "vital", "robin"}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind(" MaskBuckets ")
	require.NoError(t, err)
	assert.Equal(t, KindMaskBuckets, got)

	_, err = ParseKind("clever")
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = New("clever", embedded(t))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestOpeningMustBeAdmissible(t *testing.T) {
	for _, k := range Kinds {
		g, err := New(k, embedded(t), WithOpening(words.MustParse("zzzzz")))
		assert.ErrorIs(t, err, ErrOpeningNotAdmissible, k)
		assert.Nil(t, g)
	}
}

func TestFirstGuessIsOpening(t *testing.T) {
	d := embedded(t)
	for _, k := range Kinds {
		g, err := New(k, d)
		require.NoError(t, err)
		w, err := g.Guess(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultOpening, w.String(), k)
	}
	g, err := New(KindMemoized, d, WithOpening(words.MustParse("crate")))
	require.NoError(t, err)
	w, err := g.Guess(nil)
	require.NoError(t, err)
	assert.Equal(t, "crate", w.String())
}

func TestVariantsAgree(t *testing.T) {
	d := embedded(t)
	for _, secret := range secrets {
		var want []string
		for _, k := range []Kind{KindNaive, KindCached, KindMaskBuckets, KindMemoized} {
			g, err := New(k, d, WithWorkers(2))
			require.NoError(t, err)
			got := playRecorded(t, d, g, secret)
			if want == nil {
				want = got
				continue
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s on %s differs from naive (-naive +%s):\n%s", k, secret, k, diff)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	d := embedded(t)
	for _, secret := range secrets {
		a, err := NewMaskBuckets(d, WithWorkers(1))
		require.NoError(t, err)
		b, err := NewMaskBuckets(d, WithWorkers(8))
		require.NoError(t, err)
		assert.Equal(t, playRecorded(t, d, a, secret), playRecorded(t, d, b, secret))
	}
}

func TestPoolShrinksMonotonically(t *testing.T) {
	d := embedded(t)
	g, err := NewCached(d)
	require.NoError(t, err)

	gm := game.New(d, words.MustParse("sugar"))
	prev := g.Candidates()
	for !gm.Finished {
		w, err := g.Guess(gm.History)
		require.NoError(t, err)
		assert.LessOrEqual(t, g.Candidates(), prev)
		prev = g.Candidates()
		_, _, err = gm.ApplyGuess(w)
		require.NoError(t, err)
	}
	assert.True(t, gm.Won)
}

func TestSharedDictionaryUntouched(t *testing.T) {
	d := embedded(t)
	n := d.Len()
	for _, k := range []Kind{KindCached, KindMaskBuckets, KindMemoized} {
		g, err := New(k, d)
		require.NoError(t, err)
		playRecorded(t, d, g, "vital")
	}
	assert.Equal(t, n, d.Len())
}

func TestReusedAcrossGames(t *testing.T) {
	d := embedded(t)
	reused, err := NewMemoized(d)
	require.NoError(t, err)
	for _, secret := range append(secrets, secrets...) {
		fresh, err := NewMaskBuckets(d)
		require.NoError(t, err)
		assert.Equal(t, playRecorded(t, d, fresh, secret), playRecorded(t, d, reused, secret), secret)
	}
}

func TestMemoizedRemembersSecondGuess(t *testing.T) {
	d := embedded(t)
	m, err := NewMemoized(d)
	require.NoError(t, err)

	opening := words.MustParse(DefaultOpening)
	history := []mask.Guess{{Word: opening, Mask: mask.Compute(words.MustParse("right"), opening)}}
	_, err = m.Guess(nil)
	require.NoError(t, err)
	first, err := m.Guess(history)
	require.NoError(t, err)

	cached, ok := m.memo.get(history[0].Mask)
	require.True(t, ok)
	assert.Equal(t, first, cached)

	_, err = m.Guess(nil)
	require.NoError(t, err)
	again, err := m.Guess(history)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestSolvesEmbeddedAnswers(t *testing.T) {
	src := words.NewSource("", "")
	d, err := src.Dictionary()
	require.NoError(t, err)
	answers, err := src.Answers()
	require.NoError(t, err)

	g, err := NewMemoized(d)
	require.NoError(t, err)
	for _, a := range answers {
		out, err := game.Play(d, a, g)
		require.NoError(t, err)
		assert.True(t, out.Solved, a.String())
		assert.LessOrEqual(t, out.Turns, 8, a.String())
	}
}

func TestContradictoryFeedback(t *testing.T) {
	d := embedded(t)
	g, err := NewMaskBuckets(d)
	require.NoError(t, err)
	_, err = g.Guess([]mask.Guess{
		{Word: words.MustParse("right"), Mask: mask.MustParse("#####")},
		{Word: words.MustParse("right"), Mask: mask.MustParse("-----")},
	})
	assert.ErrorIs(t, err, ErrNoCandidates)
}
