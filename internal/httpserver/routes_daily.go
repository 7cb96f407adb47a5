// apps/go-solver/internal/httpserver/routes_daily.go
//
// HTTP route for the "answer of the day" replay.
//   - GET /daily[?date=YYYY-MM-DD] → how the default strategy solves that day's answer
//
// The day's answer is picked deterministically from the answer list by
// date + salt. Replays are cached per date in memory.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
)

// dailyServer wraps dependencies for /daily.
type dailyServer struct {
	srv    *Server
	salt   string
	replay map[string]dailyRes // keyed by date
	mu     sync.Mutex          // guards replay; not held while playing
}

type dailyRes struct {
	Date     string `json:"date"`
	Strategy string `json:"strategy"`
	Answer   string `json:"answer"`
	Solved   bool   `json:"solved"`
	Turns    int    `json:"turns"`
	History  []turn `json:"history"`
}

// mountDaily registers the /daily route.
func (s *Server) mountDaily() {
	salt := os.Getenv("DAILY_SALT")
	if salt == "" {
		salt = "local_dev_salt"
	}
	dd := &dailyServer{srv: s, salt: salt, replay: make(map[string]dailyRes)}
	s.r.Get("/daily", dd.handleReplay)
}

func (d *dailyServer) handleReplay(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		t, err := daily.ParseDate(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
		date = t
	}
	key := daily.DateKey(date)

	d.mu.Lock()
	res, ok := d.replay[key]
	d.mu.Unlock()
	if ok {
		_ = json.NewEncoder(w).Encode(res)
		return
	}

	answers, err := d.srv.src.Answers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "answers_unavailable")
		return
	}
	answer, ok := daily.Answer(date, d.salt, answers)
	if !ok {
		writeError(w, http.StatusNotFound, "no_answers")
		return
	}
	g, err := strategy.New(d.srv.def, d.srv.dict, d.srv.opts...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "strategy_failed")
		return
	}
	out, err := game.Play(d.srv.dict, answer, g)
	if err != nil {
		log.Error().Err(err).Str("date", key).Msg("daily replay")
		writeError(w, http.StatusInternalServerError, "replay_failed")
		return
	}

	res = dailyRes{
		Date:     key,
		Strategy: string(d.srv.def),
		Answer:   out.Answer.String(),
		Solved:   out.Solved,
		Turns:    out.Turns,
		History:  make([]turn, 0, len(out.History)),
	}
	for _, h := range out.History {
		res.History = append(res.History, turn{Word: h.Word.String(), Mask: h.Mask.String()})
	}
	if out.Solved {
		res.History = append(res.History, turn{Word: out.Answer.String(), Mask: mask.Compute(out.Answer, out.Answer).String()})
	}

	// Replays are deterministic; a concurrent request for the same date keeps
	// whichever result was stored first.
	d.mu.Lock()
	if cached, ok := d.replay[key]; ok {
		res = cached
	} else {
		d.replay[key] = res
	}
	d.mu.Unlock()
	_ = json.NewEncoder(w).Encode(res)
}
