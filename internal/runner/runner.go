// apps/go-solver/internal/runner/runner.go
//
// Run-all mode: play a slice of the answer list against one strategy.
//
// One guesser instance plays every round; strategies start a new game when
// handed an empty history, so caches such as the second-guess memo carry
// over between rounds. Each round is logged, shown as a line of output and
// recorded. A round that runs out of turns is reported and the run goes on;
// any error from the game (an inadmissible guess, an empty pool) stops it.

package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/console"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultRounds is the number of rounds played when none is configured.
const DefaultRounds = 10

// Recorder stores round results.
type Recorder interface {
	Insert(ctx context.Context, r results.Result) error
}

// Config selects which answers are played.
type Config struct {
	Strategy strategy.Kind
	// Rounds to play; 0 means DefaultRounds, negative means every answer.
	Rounds int
	// Skip answers at the start of the list.
	Skip int
	// Progress shows a progress bar on stderr.
	Progress bool
	// Out receives one line per round; nil discards them.
	Out io.Writer
}

// Tally counts what happened during a run.
type Tally struct {
	Played int
	Solved int
	Turns  int
}

// Failed is the number of rounds that ran out of turns.
func (t Tally) Failed() int { return t.Played - t.Solved }

// Average is the mean turn count of solved rounds.
func (t Tally) Average() float64 {
	if t.Solved == 0 {
		return 0
	}
	return float64(t.Turns) / float64(t.Solved)
}

// Select returns the answers a run with cfg plays.
func Select(answers []words.Word, cfg Config) []words.Word {
	skip := max(cfg.Skip, 0)
	if skip >= len(answers) {
		return nil
	}
	answers = answers[skip:]
	rounds := cfg.Rounds
	if rounds == 0 {
		rounds = DefaultRounds
	}
	if rounds > 0 && rounds < len(answers) {
		answers = answers[:rounds]
	}
	return answers
}

// Run plays every selected answer with g and records each outcome.
func Run(ctx context.Context, dict *words.Dictionary, answers []words.Word, g strategy.Guesser, rec Recorder, cfg Config) (Tally, error) {
	var tally Tally
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	selected := Select(answers, cfg)

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(len(selected)), string(cfg.Strategy))
		defer func() { _ = bar.Finish() }()
	}

	for i, answer := range selected {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		round := max(cfg.Skip, 0) + i + 1

		start := time.Now()
		outcome, err := game.Play(dict, answer, g)
		elapsed := time.Since(start)
		if err != nil {
			log.Error().Err(err).Int("round", round).Str("answer", answer.String()).Msg("round aborted")
			return tally, fmt.Errorf("round %d (%s): %w", round, answer, err)
		}

		tally.Played++
		if outcome.Solved {
			tally.Solved++
			tally.Turns += outcome.Turns
			fmt.Fprintf(out, "The answer is '%s', took %s tries.\n",
				console.C.Info.Sprint(answer.String()), console.C.Good.Sprint(outcome.Turns))
		} else {
			fmt.Fprintf(out, "%s %s\n", console.C.Bad.Sprint("failed to guess"), answer)
		}
		log.Info().
			Int("round", round).
			Str("answer", answer.String()).
			Int("turns", outcome.Turns).
			Bool("solved", outcome.Solved).
			Dur("elapsed", elapsed).
			Msg("round finished")

		if rec != nil {
			if err := rec.Insert(ctx, results.Result{
				Round:     round,
				Answer:    answer.String(),
				Strategy:  string(cfg.Strategy),
				Turns:     outcome.Turns,
				Solved:    outcome.Solved,
				ElapsedMs: elapsed.Milliseconds(),
			}); err != nil {
				return tally, fmt.Errorf("record round %d: %w", round, err)
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return tally, nil
}
