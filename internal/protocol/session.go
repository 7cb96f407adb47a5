package protocol

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// ErrNoSuggestion is returned for a bare mask while no word is suggested.
var ErrNoSuggestion = errors.New("protocol: no suggestion to apply feedback to")

// Reply describes the outcome of one command.
type Reply struct {
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Solved     bool     `json:"solved,omitempty"`
	Hard       bool     `json:"hard,omitempty"`
	Remaining  []string `json:"remaining,omitempty"`
}

// Session is one interactive game: an Interactive strategy, the feedback
// entered so far and the word currently suggested. It is safe for
// concurrent use.
type Session struct {
	ID string

	mu         sync.Mutex
	guesser    *strategy.Interactive
	history    []mask.Guess
	suggestion words.Word
	suggestErr error
	solved     bool
}

func NewSession(id string, dict *words.Dictionary, opts ...strategy.Option) (*Session, error) {
	g, err := strategy.NewInteractive(dict, opts...)
	if err != nil {
		return nil, err
	}
	s := &Session{ID: id, guesser: g}
	s.suggest()
	if s.suggestErr != nil {
		return nil, s.suggestErr
	}
	return s, nil
}

// suggest recomputes the suggestion after any state change. Must hold mu
// (or be called before the session is shared).
func (s *Session) suggest() {
	w, err := s.guesser.Guess(s.history)
	if err != nil {
		s.suggestion, s.suggestErr = words.Word{}, err
		return
	}
	s.suggestion, s.suggestErr = w, nil
}

// Suggestion returns the word to play next, or the reason there is none.
func (s *Session) Suggestion() (words.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestion, s.suggestErr
}

// History returns a copy of the feedback entered so far.
func (s *Session) History() []mask.Guess {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mask.Guess(nil), s.history...)
}

// Remaining lists the words that could still be the answer.
func (s *Session) Remaining() []words.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guesser.Remaining()
}

// Execute parses and runs one protocol line. An unrecognized line returns
// ErrUnrecognized and leaves the session untouched. If the command leaves no
// candidate, the change is kept and the error is strategy.ErrNoCandidates;
// CONSIDER can recover from it.
func (s *Session) Execute(line string) (Reply, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Reply{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var msg string
	target, hasTarget := cmd.Word, cmd.HasWord
	switch cmd.Kind {
	case KindRemove, KindEliminate, KindFeedback:
		// These apply to the current suggestion when no word is given.
		if !hasTarget && s.suggestErr == nil {
			target, hasTarget = s.suggestion, true
		}
	}

	switch cmd.Kind {
	case KindRemaining:
		return s.reply(fmt.Sprintf("%d possible", len(s.guesser.Remaining())), true), nil
	case KindHard:
		s.guesser.Hard()
		msg = "hard mode activated"
	case KindRemove, KindEliminate:
		if !hasTarget {
			return Reply{}, ErrNoSuggestion
		}
		if cmd.Kind == KindRemove {
			msg = changed(s.guesser.Remove(target), target, "removed", "was not in the dictionary")
		} else {
			msg = changed(s.guesser.Eliminate(target), target, "eliminated", "was not a candidate")
		}
	case KindAllow:
		msg = changed(s.guesser.Allow(target), target, "allowed", "was already allowed")
	case KindConsider:
		msg = changed(s.guesser.Consider(target), target, "considered", "was already a candidate")
	case KindFeedback:
		if !hasTarget {
			return Reply{}, ErrNoSuggestion
		}
		s.history = append(s.history, mask.Guess{Word: target, Mask: cmd.Mask})
		s.solved = cmd.Mask.Solved()
		msg = fmt.Sprintf("%s %s", target, cmd.Mask)
	}

	s.suggest()
	log.Debug().
		Str("session", s.ID).
		Str("command", cmd.Kind.String()).
		Int("turn", len(s.history)+1).
		Str("suggestion", s.suggestion.String()).
		Msg("command executed")
	if s.suggestErr != nil {
		return s.reply(msg, false), s.suggestErr
	}
	return s.reply(msg, false), nil
}

func (s *Session) reply(msg string, listRemaining bool) Reply {
	r := Reply{Message: msg, Solved: s.solved, Hard: s.guesser.HardMode()}
	if s.suggestErr == nil {
		r.Suggestion = s.suggestion.String()
	}
	if listRemaining {
		r.Remaining = []string{}
		for _, w := range s.guesser.Remaining() {
			r.Remaining = append(r.Remaining, w.String())
		}
	}
	return r
}

func changed(ok bool, w words.Word, did, didNot string) string {
	if ok {
		return fmt.Sprintf("%s %s", w, did)
	}
	return fmt.Sprintf("%s %s", w, didNot)
}
