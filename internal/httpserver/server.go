// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/words/stats".
//   - Stateless solving: POST /solve returns the next guess for a history.
//   - Interactive sessions: POST /sessions, POST /sessions/{id}/commands,
//     GET /sessions/{id}/remaining.
//   - Answer of the day replay: GET /daily.
//
// Notes:
//   - Guessers for /solve are pooled per strategy. Each request starts a new
//     game on the guesser it borrows, so second-guess memos are shared across
//     requests while candidate pools never are.
//   - Sessions are kept in the in-memory store and serialize their own commands.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Server bundles router, session store, word lists and pooled guessers.
type Server struct {
	r        *chi.Mux
	sessions store.Store
	src      *words.Source
	dict     *words.Dictionary
	opts     []strategy.Option
	guessers map[strategy.Kind]*sync.Pool
	def      strategy.Kind
}

// New constructs a Server, installs middleware, and registers routes.
// The dictionary is loaded from src before New returns.
func New(st store.Store, src *words.Source, def strategy.Kind, opts ...strategy.Option) (*Server, error) {
	dict, err := src.Dictionary()
	if err != nil {
		return nil, err
	}
	// Fail at startup rather than on the first request if the opening is bad.
	if _, err := strategy.New(def, dict, opts...); err != nil {
		return nil, err
	}

	s := &Server{
		r:        chi.NewRouter(),
		sessions: st,
		src:      src,
		dict:     dict,
		opts:     opts,
		guessers: make(map[strategy.Kind]*sync.Pool, len(strategy.Kinds)),
		def:      def,
	}
	for _, k := range strategy.Kinds {
		kind := k
		s.guessers[kind] = &sync.Pool{New: func() any {
			g, err := strategy.New(kind, s.dict, s.opts...)
			if err != nil {
				return nil
			}
			return g
		}}
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/words/stats","/daily","POST /solve","POST /sessions"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/words/stats", func(w http.ResponseWriter, r *http.Request) {
		a, d := s.src.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "dictionary": d})
	})

	s.r.Post("/solve", s.handleSolve)
	s.mountSessions()
	s.mountDaily()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s, nil
}

// Start begins serving HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
