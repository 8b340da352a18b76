package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/growthfit/internal/scoring"
)

// ErrNotFound is returned when no stored result matches a lookup.
var ErrNotFound = errors.New("result not found")

// ErrAmbiguous is returned when an ID prefix matches more than one result.
var ErrAmbiguous = errors.New("result id prefix is ambiguous")

// Record is one stored assessment outcome. Responses are never stored.
type Record struct {
	ID        string
	CreatedAt time.Time
	Result    scoring.Result
}

// ResultRepo manages the result history.
type ResultRepo interface {
	// Save stores r, assigning ID and CreatedAt when they are empty.
	Save(ctx context.Context, r *Record) error

	// Get returns the result whose ID equals or starts with id.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit results, newest first (0 = unlimited).
	List(ctx context.Context, limit int) ([]Record, error)

	// Prune deletes all but the keep most recent results and reports how
	// many were removed.
	Prune(ctx context.Context, keep int) (int, error)
}
