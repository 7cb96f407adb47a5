// apps/go-solver/internal/game/engine.go
//
// Game engine driving a strategy against a known secret.
// Responsibilities:
//   - Create games with a turn ceiling (MaxTurns).
//   - Validate and apply guesses: a winning guess ends the game, any other
//     guess must be admissible and is scored with the two-pass mask algorithm.
//   - Play: ask the strategy for guesses until it wins or runs out of turns.
//
// A strategy proposing an inadmissible word is a bug in the strategy, so Play
// stops with ErrInadmissibleGuess instead of counting it as a lost turn.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// MaxTurns is the default turn ceiling.
const MaxTurns = 100

var (
	ErrInadmissibleGuess = errors.New("game: guess is not in the dictionary")
	ErrFinished          = errors.New("game: game finished")
)

// Guesser is the strategy contract Play relies on.
type Guesser interface {
	Guess(history []mask.Guess) (words.Word, error)
}

// New constructs a game for answer over dict.
func New(dict *words.Dictionary, answer words.Word) *Game {
	return &Game{
		ID:       randomID(),
		Answer:   answer,
		MaxTurns: MaxTurns,
		History:  []mask.Guess{},
		dict:     dict,
	}
}

// ApplyGuess scores guess and advances the game.
//
// State transitions:
//   - guess equals the answer → Finished, Won.
//   - otherwise the guess must be admissible; its feedback is appended to
//     History and the game is lost once MaxTurns guesses have been made.
func (g *Game) ApplyGuess(guess words.Word) (mask.Mask, State, error) {
	if g.Finished {
		return mask.Mask{}, g.state(), ErrFinished
	}
	if guess == g.Answer {
		g.Turns++
		g.Finished, g.Won = true, true
		return mask.Compute(g.Answer, guess), g.state(), nil
	}
	if !g.dict.Contains(guess) {
		return mask.Mask{}, g.state(), fmt.Errorf("%w: %s", ErrInadmissibleGuess, guess)
	}

	m := mask.Compute(g.Answer, guess)
	g.Turns++
	g.History = append(g.History, mask.Guess{Word: guess, Mask: m})
	if g.Turns >= g.MaxTurns {
		g.Finished = true
	}
	return m, g.state(), nil
}

func (g *Game) state() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Play runs strategy against secret until it guesses it or MaxTurns pass.
// Running out of turns is a normal outcome (Solved == false), not an error.
func Play(dict *words.Dictionary, secret words.Word, strategy Guesser) (Outcome, error) {
	g := New(dict, secret)
	for !g.Finished {
		guess, err := strategy.Guess(g.History)
		if err != nil {
			return g.outcome(), fmt.Errorf("turn %d: %w", g.Turns+1, err)
		}
		m, state, err := g.ApplyGuess(guess)
		if err != nil {
			return g.outcome(), fmt.Errorf("turn %d: %w", g.Turns+1, err)
		}
		log.Debug().
			Str("game", g.ID).
			Int("turn", g.Turns).
			Str("guess", guess.String()).
			Str("mask", m.String()).
			Str("state", string(state)).
			Msg("guess applied")
	}
	return g.outcome(), nil
}

func (g *Game) outcome() Outcome {
	return Outcome{Answer: g.Answer, Solved: g.Won, Turns: g.Turns, History: g.History}
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
