// apps/go-solver/internal/game/types.go
//
// Core type definitions for a solver-driven game.
// Defines:
//   - State: coarse progress of a game (playing / won / lost).
//   - Game: state for a single in-progress or finished game.

package game

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// State is the coarse status of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single game.
type Game struct {
	ID       string            // Unique game identifier (random hex string).
	Answer   words.Word        // The secret word.
	MaxTurns int               // Turns allowed before the game is lost.
	History  []mask.Guess      // Feedback for every wrong guess so far.
	Turns    int               // Guesses made, including a winning one.
	Finished bool              // True once the game is over (won or lost).
	Won      bool              // True if the game was finished with a win.
	dict     *words.Dictionary // Admissible guesses.
}

// Outcome summarizes a played game.
type Outcome struct {
	Answer  words.Word
	Solved  bool
	Turns   int // turn of the winning guess; MaxTurns when unsolved
	History []mask.Guess
}
