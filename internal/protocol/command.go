// apps/go-solver/internal/protocol/command.go
//
// Line protocol for following a game played elsewhere.
//
// Each line is one of:
//   REMOVE [word]     the game rejects the word (defaults to the suggestion)
//   ELIMINATE [word]  the word is playable but is not the answer
//   ALLOW word        undo REMOVE
//   CONSIDER word     undo ELIMINATE
//   REMAINING         list the words that could still be the answer
//   HARD              only suggest words that could be the answer
//   word mask         feedback for a word that was played
//   mask              feedback for the current suggestion
//
// Masks use '-' for gray, '+' for yellow and '#' for green.

package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var ErrUnrecognized = errors.New("protocol: command not recognized")

// Kind identifies a command.
type Kind int

const (
	KindRemove Kind = iota + 1
	KindEliminate
	KindAllow
	KindConsider
	KindRemaining
	KindHard
	KindFeedback
)

var keywords = map[string]Kind{
	"REMOVE":    KindRemove,
	"ELIMINATE": KindEliminate,
	"ALLOW":     KindAllow,
	"CONSIDER":  KindConsider,
	"REMAINING": KindRemaining,
	"HARD":      KindHard,
}

func (k Kind) String() string {
	for name, kind := range keywords {
		if kind == k {
			return name
		}
	}
	if k == KindFeedback {
		return "FEEDBACK"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one parsed line. HasWord is false when the command applies to
// the current suggestion.
type Command struct {
	Kind    Kind
	Word    words.Word
	HasWord bool
	Mask    mask.Mask
}

// Parse reads one protocol line. Keywords are case-insensitive, but a keyword
// followed by a mask literal is feedback for the word of the same spelling
// ("allow ##---").
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) > 2 {
		return Command{}, unrecognized(line)
	}

	feedback := len(fields) == 2 && mask.IsLiteral(fields[1])
	if kind, ok := keywords[strings.ToUpper(fields[0])]; ok && !feedback {
		cmd := Command{Kind: kind}
		switch kind {
		case KindRemaining, KindHard:
			if len(fields) != 1 {
				return Command{}, unrecognized(line)
			}
			return cmd, nil
		case KindAllow, KindConsider:
			if len(fields) != 2 {
				return Command{}, unrecognized(line)
			}
		}
		if len(fields) == 2 {
			w, err := words.Parse(fields[1])
			if err != nil {
				return Command{}, unrecognized(line)
			}
			cmd.Word, cmd.HasWord = w, true
		}
		return cmd, nil
	}

	if mask.IsLiteral(fields[0]) {
		if len(fields) != 1 {
			return Command{}, unrecognized(line)
		}
		m, err := mask.Parse(fields[0])
		if err != nil {
			return Command{}, unrecognized(line)
		}
		return Command{Kind: KindFeedback, Mask: m}, nil
	}

	if len(fields) != 2 {
		return Command{}, unrecognized(line)
	}
	w, err := words.Parse(fields[0])
	if err != nil {
		return Command{}, unrecognized(line)
	}
	m, err := mask.Parse(fields[1])
	if err != nil {
		return Command{}, unrecognized(line)
	}
	return Command{Kind: KindFeedback, Word: w, HasWord: true, Mask: m}, nil
}

func unrecognized(line string) error {
	return fmt.Errorf("%w: %q", ErrUnrecognized, strings.TrimSpace(line))
}
