package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/console"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
)

// Report prints the recorded summary of a strategy: rounds, failures,
// average turns, a turn-count histogram and the hardest answers.
func Report(ctx context.Context, store *results.Store, kind string, out io.Writer) error {
	sum, err := store.Summarize(ctx, kind)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	hist, err := store.Histogram(ctx, kind)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	hardest, err := store.Hardest(ctx, kind, 3)
	if err != nil {
		return fmt.Errorf("hardest: %w", err)
	}

	fmt.Fprintln(out, console.C.Header.Sprintf("%s: %d rounds, %d failed, %.3f average turns (%d ms)",
		kind, sum.Rounds, sum.Failed, sum.AverageTurns, sum.TotalMs))

	widest := 0
	for _, b := range hist {
		widest = max(widest, b.Count)
	}
	for _, b := range hist {
		bar := strings.Repeat("#", scale(b.Count, widest, 40))
		fmt.Fprintf(out, "%3d | %-40s %d\n", b.Turns, bar, b.Count)
	}
	for _, r := range hardest {
		status := console.C.Warn.Sprintf("%d turns", r.Turns)
		if !r.Solved {
			status = console.C.Bad.Sprint("unsolved")
		}
		fmt.Fprintf(out, "  round %d %s: %s\n", r.Round, r.Answer, status)
	}
	return nil
}

// scale maps n in [0, of] onto [1, width] so every non-empty bucket shows.
func scale(n, of, width int) int {
	if of == 0 || n == 0 {
		return 0
	}
	return max(1, n*width/of)
}
