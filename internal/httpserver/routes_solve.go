package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// turn is one history entry on the wire.
type turn struct {
	Word string `json:"word"`
	Mask string `json:"mask"`
}

// solveReq/Res payloads for POST /solve.
type solveReq struct {
	Strategy string `json:"strategy"` // optional; server default when empty
	History  []turn `json:"history"`
}
type solveRes struct {
	Guess      string `json:"guess"`
	Strategy   string `json:"strategy"`
	Candidates int    `json:"candidates,omitempty"`
}

// candidateCounter is implemented by every strategy.
type candidateCounter interface{ Candidates() int }

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	kind := s.def
	if req.Strategy != "" {
		k, err := strategy.ParseKind(req.Strategy)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown_strategy")
			return
		}
		kind = k
	}
	history, err := decodeHistory(req.History)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := s.guessers[kind]
	g, _ := p.Get().(strategy.Guesser)
	if g == nil {
		writeError(w, http.StatusInternalServerError, "strategy_unavailable")
		return
	}
	defer p.Put(g)

	// Start a new game on the borrowed guesser before replaying the history.
	if _, err := g.Guess(nil); err != nil {
		writeError(w, http.StatusInternalServerError, "strategy_failed")
		return
	}
	guess, err := g.Guess(history)
	if errors.Is(err, strategy.ErrNoCandidates) {
		writeError(w, http.StatusConflict, "no_candidates")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("strategy", string(kind)).Msg("solve")
		writeError(w, http.StatusInternalServerError, "strategy_failed")
		return
	}

	res := solveRes{Guess: guess.String(), Strategy: string(kind)}
	if c, ok := g.(candidateCounter); ok {
		res.Candidates = c.Candidates()
	}
	_ = json.NewEncoder(w).Encode(res)
}

// decodeHistory validates wire turns. The error text is the client-facing code.
func decodeHistory(in []turn) ([]mask.Guess, error) {
	out := make([]mask.Guess, 0, len(in))
	for _, t := range in {
		w, err := words.Parse(t.Word)
		if err != nil {
			return nil, errors.New("bad_word")
		}
		m, err := mask.Parse(t.Mask)
		if err != nil {
			return nil, errors.New("bad_mask")
		}
		out = append(out, mask.Guess{Word: w, Mask: m})
	}
	return out, nil
}
