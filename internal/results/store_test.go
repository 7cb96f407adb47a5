package results

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := open(t)
	ctx := context.Background()
	m, err := assets.Migrations()
	require.NoError(t, err)
	require.NoError(t, migrate(ctx, s.db, m))

	var n int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSummaryAndHistogram(t *testing.T) {
	s := open(t)
	ctx := context.Background()
	rows := []Result{
		{Round: 1, Answer: "right", Strategy: "memoized", Turns: 3, Solved: true, ElapsedMs: 10},
		{Round: 2, Answer: "crane", Strategy: "memoized", Turns: 4, Solved: true, ElapsedMs: 20},
		{Round: 3, Answer: "sugar", Strategy: "memoized", Turns: 3, Solved: true, ElapsedMs: 30},
		{Round: 4, Answer: "vital", Strategy: "memoized", Turns: 100, Solved: false, ElapsedMs: 40},
		{Round: 1, Answer: "right", Strategy: "naive", Turns: 2, Solved: true},
	}
	for _, r := range rows {
		require.NoError(t, s.Insert(ctx, r))
	}
	// duplicate round is ignored
	require.NoError(t, s.Insert(ctx, Result{Round: 1, Answer: "robin", Strategy: "memoized", Turns: 6, Solved: true}))

	sum, err := s.Summarize(ctx, "memoized")
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Rounds)
	assert.Equal(t, 1, sum.Failed)
	assert.InDelta(t, 10.0/3.0, sum.AverageTurns, 1e-9)
	assert.Equal(t, int64(100), sum.TotalMs)

	h, err := s.Histogram(ctx, "memoized")
	require.NoError(t, err)
	assert.Equal(t, []Bucket{{Turns: 3, Count: 2}, {Turns: 4, Count: 1}}, h)

	hard, err := s.Hardest(ctx, "memoized", 2)
	require.NoError(t, err)
	require.Len(t, hard, 2)
	assert.Equal(t, "vital", hard[0].Answer)
	assert.False(t, hard[0].Solved)
	assert.Equal(t, "crane", hard[1].Answer)
}

func TestSummaryEmpty(t *testing.T) {
	s := open(t)
	sum, err := s.Summarize(context.Background(), "cached")
	require.NoError(t, err)
	assert.Equal(t, Summary{Strategy: "cached"}, sum)

	h, err := s.Histogram(context.Background(), "cached")
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestStoresAreIsolated(t *testing.T) {
	a, b := open(t), open(t)
	ctx := context.Background()
	require.NoError(t, a.Insert(ctx, Result{Round: 1, Answer: "right", Strategy: "naive", Turns: 2, Solved: true}))
	sum, err := b.Summarize(ctx, "naive")
	require.NoError(t, err)
	assert.Zero(t, sum.Rounds)
}
