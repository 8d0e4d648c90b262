package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"quiz-cli/internal/records"
)

// RecordStore keeps every record line in one table, ordered by insertion id.
type RecordStore struct {
	pool *pgxpool.Pool
}

func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

func (s *RecordStore) Lines(ctx context.Context, kind records.Kind) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT line FROM records WHERE kind=$1 ORDER BY id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", kind, err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *RecordStore) Append(ctx context.Context, kind records.Kind, line string) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO records (kind, line) VALUES ($1, $2)`, string(kind), line)
	return err
}

func (s *RecordStore) Rewrite(ctx context.Context, kind records.Kind, lines []string) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM records WHERE kind=$1`, string(kind)); err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := tx.Exec(ctx, `INSERT INTO records (kind, line) VALUES ($1, $2)`, string(kind), line); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *RecordStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM records`)
	return err
}

func (s *RecordStore) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
