// apps/go-solver/internal/httpserver/routes_sessions.go
//
// HTTP routes for interactive sessions.
//   - POST /sessions                 → open a session, returns its id and first suggestion
//   - POST /sessions/{id}/commands   → run one protocol line, returns the reply
//   - GET  /sessions/{id}/remaining  → words that could still be the answer
//
// Command lines use the same text protocol as the console REPL.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/protocol"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
)

type newSessionReq struct {
	Hard bool `json:"hard"`
}
type newSessionRes struct {
	ID         string `json:"id"`
	Suggestion string `json:"suggestion"`
}

type commandReq struct {
	Line string `json:"line"`
}

// commandRes carries the reply plus an error code when the command was
// accepted but left no candidate.
type commandRes struct {
	protocol.Reply
	Error string `json:"error,omitempty"`
}

func (s *Server) mountSessions() {
	s.r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleNewSession)
		r.Post("/{id}/commands", s.handleCommand)
		r.Get("/{id}/remaining", s.handleRemaining)
	})
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	// An empty body opens a normal-mode session.
	_ = json.NewDecoder(r.Body).Decode(&req)

	sess, err := protocol.NewSession(genID(), s.dict, s.opts...)
	if err != nil {
		log.Error().Err(err).Msg("new session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	if req.Hard {
		if _, err := sess.Execute("HARD"); err != nil {
			writeError(w, http.StatusInternalServerError, "session_failed")
			return
		}
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	suggestion, _ := sess.Suggestion()
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newSessionRes{ID: sess.ID, Suggestion: suggestion.String()})
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*protocol.Session, bool) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_failed")
		return nil, false
	}
	return sess, true
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req commandReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	reply, err := sess.Execute(req.Line)
	switch {
	case errors.Is(err, protocol.ErrUnrecognized):
		writeError(w, http.StatusBadRequest, "unrecognized_command")
		return
	case errors.Is(err, protocol.ErrNoSuggestion):
		writeError(w, http.StatusConflict, "no_suggestion")
		return
	case errors.Is(err, strategy.ErrNoCandidates):
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(commandRes{Reply: reply, Error: "no_candidates"})
		return
	case err != nil:
		log.Error().Err(err).Str("session", sess.ID).Msg("command")
		writeError(w, http.StatusInternalServerError, "command_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(commandRes{Reply: reply})
}

func (s *Server) handleRemaining(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	remaining := sess.Remaining()
	out := make([]string, 0, len(remaining))
	for _, word := range remaining {
		out = append(out, word.String())
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"count": len(out), "remaining": out})
}
