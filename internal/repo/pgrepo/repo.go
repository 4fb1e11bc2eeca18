package pgrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/milad/meterreader/internal/domain"
	"github.com/milad/meterreader/internal/repo"
)

var _ repo.ReadingRepository = (*Repo)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS meter_readings (
	id          BIGSERIAL PRIMARY KEY,
	customer_id INTEGER     NOT NULL,
	value       INTEGER     NOT NULL,
	reading_date TIMESTAMPTZ NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS meter_readings_customer_date_idx ON meter_readings (customer_id, reading_date);
`

var readingColumns = []string{"customer_id", "value", "reading_date"}

// Repo stores readings in PostgreSQL. Each batch is copied inside one transaction.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// EnsureSchema creates the readings table if it does not exist.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (r *Repo) SaveBatch(ctx context.Context, records []domain.ReadingRecord) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"meter_readings"}, readingColumns, copyRows(records))
	if err != nil {
		return false, fmt.Errorf("copy readings: %w", err)
	}
	if n != int64(len(records)) {
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return true, nil
}

// copyRows yields records in order, shaped like readingColumns.
func copyRows(records []domain.ReadingRecord) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		rec := records[i]
		return []any{rec.CustomerID, rec.Value, rec.Date.UTC()}, nil
	})
}
