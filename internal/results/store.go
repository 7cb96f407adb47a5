package results

import (
	"context"
	"database/sql"
)

// Result is the outcome of one round of a run.
type Result struct {
	Round     int    `json:"round"`
	Answer    string `json:"answer"`
	Strategy  string `json:"strategy"`
	Turns     int    `json:"turns"`
	Solved    bool   `json:"solved"`
	ElapsedMs int64  `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Close() error { return s.db.Close() }

// Insert records r. A second result for the same strategy and round is ignored.
func (s *Store) Insert(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO round_results(round, answer, strategy, turns, solved, elapsed_ms)
		VALUES(?,?,?,?,?,?)`, r.Round, r.Answer, r.Strategy, r.Turns, r.Solved, r.ElapsedMs,
	)
	return err
}

// Summary aggregates every recorded round of one strategy.
type Summary struct {
	Strategy     string  `json:"strategy"`
	Rounds       int     `json:"rounds"`
	Failed       int     `json:"failed"`
	AverageTurns float64 `json:"averageTurns"`
	TotalMs      int64   `json:"totalMs"`
}

// Summarize computes the summary for strategy. AverageTurns counts solved
// rounds only and is zero when none were solved.
func (s *Store) Summarize(ctx context.Context, strategy string) (Summary, error) {
	out := Summary{Strategy: strategy}
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
		        COALESCE(SUM(CASE WHEN solved = 0 THEN 1 ELSE 0 END), 0),
		        AVG(CASE WHEN solved = 1 THEN turns END),
		        COALESCE(SUM(elapsed_ms), 0)
		FROM round_results
		WHERE strategy=?`, strategy,
	).Scan(&out.Rounds, &out.Failed, &avg, &out.TotalMs)
	if err != nil {
		return Summary{}, err
	}
	out.AverageTurns = avg.Float64
	return out, nil
}

// Bucket counts solved rounds that took Turns guesses.
type Bucket struct {
	Turns int `json:"turns"`
	Count int `json:"count"`
}

// Histogram returns solved rounds grouped by turn count, fewest turns first.
func (s *Store) Histogram(ctx context.Context, strategy string) ([]Bucket, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT turns, COUNT(1)
		FROM round_results
		WHERE strategy=? AND solved=1
		GROUP BY turns
		ORDER BY turns ASC`, strategy,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Bucket
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.Turns, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Hardest lists the rounds that took the most turns, failures first, then by
// round. limit <= 0 means 5.
func (s *Store) Hardest(ctx context.Context, strategy string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT round, answer, strategy, turns, solved, elapsed_ms
		FROM round_results
		WHERE strategy=?
		ORDER BY solved ASC, turns DESC, round ASC
		LIMIT ?`, strategy, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Round, &r.Answer, &r.Strategy, &r.Turns, &r.Solved, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
