package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/protocol"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// LineReader is the part of *liner.State the REPL needs.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// NewLiner returns a line editor on the controlling terminal. Callers must
// Close it to restore the terminal.
func NewLiner() *liner.State {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return l
}

const help = `Each line is: word + space + pattern.
'-' for Wrong/Gray, '#' for Correct/Green, '+' for Misplaced/Yellow.
If you follow the suggestion, type just the pattern.
REMOVE [word]     the game does not accept the word (default: the suggestion)
ELIMINATE [word]  the word is accepted but is not the answer
ALLOW word        undo REMOVE
CONSIDER word     undo ELIMINATE
REMAINING         list every word that could still be the answer
HARD              only suggest words that could be the answer
QUIT              leave`

// REPL drives a protocol.Session from lines read by in, writing to out.
// It returns nil when the input ends, the user quits or the answer is found.
func REPL(in LineReader, out io.Writer, s *protocol.Session) error {
	fmt.Fprintln(out, C.Header.Sprint(help))
	if w, err := s.Suggestion(); err == nil {
		suggest(out, w)
	}

	for {
		input, err := in.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out, C.Info.Sprint("Goodbye!"))
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		in.AppendHistory(input)
		switch strings.ToUpper(input) {
		case "QUIT", "EXIT":
			fmt.Fprintln(out, C.Info.Sprint("Goodbye!"))
			return nil
		case "HELP":
			fmt.Fprintln(out, C.Header.Sprint(help))
			continue
		}

		reply, err := s.Execute(input)
		switch {
		case errors.Is(err, protocol.ErrUnrecognized):
			fmt.Fprintln(out, C.Bad.Sprint("Error: Command not recognized."))
			continue
		case errors.Is(err, protocol.ErrNoSuggestion):
			fmt.Fprintln(out, C.Bad.Sprint("Error: no suggestion yet; enter the word with the pattern."))
			continue
		case err != nil:
			log.Debug().Err(err).Str("input", input).Msg("command left no candidates")
			fmt.Fprintln(out, C.Warn.Sprintf("%s. No word fits the feedback; use CONSIDER to add one back.", reply.Message))
			continue
		}

		if cmd, _ := protocol.Parse(input); cmd.Kind == protocol.KindFeedback {
			fmt.Fprintln(out, History(s.History()))
		} else {
			fmt.Fprintln(out, C.Info.Sprint(reply.Message))
		}
		if reply.Remaining != nil {
			fmt.Fprintln(out, strings.Join(reply.Remaining, " "))
		}
		if reply.Solved {
			fmt.Fprintln(out, C.Good.Sprint("Solved!"))
			return nil
		}
		if w, err := s.Suggestion(); err == nil {
			suggest(out, w)
		}
	}
}

func suggest(out io.Writer, w words.Word) {
	fmt.Fprintf(out, "Suggested guess is: %s\n", Word(w))
}
