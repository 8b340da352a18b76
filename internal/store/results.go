package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func nowUTC() time.Time { return time.Now().UTC() }

func newID() string { return uuid.NewString() }

// resultRepo implements ResultRepo with raw SQL.
type resultRepo struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

func (r *resultRepo) Save(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = r.newID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now()
	}
	payload, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO results (id, created_at, overall, recommendation, confidence, result)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.UTC().Format(timeLayout),
		rec.Result.OverallScore,
		string(rec.Result.Recommendation),
		rec.Result.Confidence,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) Get(ctx context.Context, id string) (*Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	// LIKE wildcards are not valid in generated IDs.
	if strings.ContainsAny(id, "%_") {
		return nil, ErrNotFound
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, result FROM results
		 WHERE id = ? OR id LIKE ? || '%'
		 ORDER BY id = ? DESC
		 LIMIT 2`,
		id, id, id)
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}
	recs, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	switch {
	case len(recs) == 0:
		return nil, ErrNotFound
	case recs[0].ID == id || len(recs) == 1:
		return &recs[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguous, id)
	}
}

func (r *resultRepo) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, result FROM results
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return scanRecords(rows)
}

func (r *resultRepo) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		return 0, fmt.Errorf("prune: keep must be non-negative, got %d", keep)
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM results WHERE id NOT IN (
			SELECT id FROM results ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`,
		keep)
	if err != nil {
		return 0, fmt.Errorf("prune results: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune results: %w", err)
	}
	return int(n), nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec     Record
			created string
			payload string
		)
		if err := rows.Scan(&rec.ID, &created, &payload); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		t, err := time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %s: %w", rec.ID, err)
		}
		rec.CreatedAt = t
		if err := json.Unmarshal([]byte(payload), &rec.Result); err != nil {
			return nil, fmt.Errorf("decode result %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}
