package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/console"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/protocol"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/runner"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

type config struct {
	dictionary string
	answers    string
	strategy   string
	mode       string
	opening    string
	port       string
	rounds     int
	skip       int
	workers    int
	progress   bool
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg := parseFlags(os.Args[1:])
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Str("mode", cfg.mode).Msg("solver exited")
	}
}

func parseFlags(args []string) config {
	var cfg config
	fs := flag.NewFlagSet("wordle-solver", flag.ExitOnError)
	fs.StringVar(&cfg.dictionary, "dictionary", "", "dictionary file of WORD FREQUENCY lines (default: WORDS_DICTIONARY_FILE or embedded)")
	fs.StringVar(&cfg.answers, "answers", "", "answer list file (default: WORDS_ANSWERS_FILE or embedded)")
	fs.StringVar(&cfg.strategy, "strategy", getEnv("SOLVER_STRATEGY", string(strategy.KindMemoized)), "naive, cached, maskbuckets, memoized or interactive")
	fs.StringVar(&cfg.mode, "mode", "run", "run, interactive or serve")
	fs.StringVar(&cfg.opening, "opening", getEnv("SOLVER_OPENING", strategy.DefaultOpening), "first guess")
	fs.StringVar(&cfg.port, "port", getEnv("PORT", "5175"), "HTTP port for serve mode")
	fs.IntVar(&cfg.rounds, "rounds", runner.DefaultRounds, "rounds to play in run mode; negative plays every answer")
	fs.IntVar(&cfg.skip, "skip", 0, "answers to skip in run mode")
	fs.IntVar(&cfg.workers, "workers", getEnvInt("SOLVER_WORKERS", 0), "scoring goroutines (0: GOMAXPROCS)")
	fs.BoolVar(&cfg.progress, "progress", true, "show a progress bar in run mode")
	_ = fs.Parse(args)
	return cfg
}

func run(ctx context.Context, cfg config) error {
	kind, err := strategy.ParseKind(cfg.strategy)
	if err != nil {
		return err
	}
	opening, err := words.Parse(cfg.opening)
	if err != nil {
		return fmt.Errorf("opening: %w", err)
	}
	opts := []strategy.Option{strategy.WithOpening(opening), strategy.WithWorkers(cfg.workers)}

	src := words.NewSource(cfg.dictionary, cfg.answers)
	dict, err := src.Dictionary()
	if err != nil {
		return err
	}

	switch cfg.mode {
	case "run":
		return runAll(ctx, cfg, kind, src, dict, opts)
	case "interactive":
		return interactive(dict, opts)
	case "serve":
		srv, err := httpserver.New(store.NewMemoryStore(time.Hour), src, kind, opts...)
		if err != nil {
			return err
		}
		log.Info().Str("port", cfg.port).Str("strategy", string(kind)).Msg("starting go-solver")
		return srv.Start(ctx, ":"+cfg.port)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func runAll(ctx context.Context, cfg config, kind strategy.Kind, src *words.Source, dict *words.Dictionary, opts []strategy.Option) error {
	answers, err := src.Answers()
	if err != nil {
		return err
	}
	g, err := strategy.New(kind, dict, opts...)
	if err != nil {
		return err
	}
	db, err := results.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tally, err := runner.Run(ctx, dict, answers, g, db, runner.Config{
		Strategy: kind,
		Rounds:   cfg.rounds,
		Skip:     cfg.skip,
		Progress: cfg.progress,
		Out:      os.Stdout,
	})
	if err != nil {
		return err
	}
	log.Info().
		Int("played", tally.Played).
		Int("failed", tally.Failed()).
		Float64("average", tally.Average()).
		Msg("run finished")
	return runner.Report(ctx, db, string(kind), os.Stdout)
}

func interactive(dict *words.Dictionary, opts []strategy.Option) error {
	sess, err := protocol.NewSession("console", dict, opts...)
	if err != nil {
		return err
	}
	line := console.NewLiner()
	defer line.Close()
	return console.REPL(line, os.Stdout, sess)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
