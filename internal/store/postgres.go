package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres — удалённое хранилище записей поверх таблицы price_records.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Latest(ctx context.Context, dataType string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT version, payload
FROM price_records
WHERE data_type = $1
ORDER BY version DESC
LIMIT 1;
`, dataType)

	var rec Record
	if err := row.Scan(&rec.Version, &rec.Payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("latest %q: %w", dataType, err)
	}
	return rec, nil
}

func (s *Postgres) Put(ctx context.Context, dataType string, version int, payload []byte) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE price_records
SET version = $2, payload = $3, updated_at = now()
WHERE data_type = $1;
`, dataType, version, payload)
	if err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
	}

	// записи ещё нет (или update не прошёл) — вставляем новую
	if _, insErr := s.db.ExecContext(ctx, `
INSERT INTO price_records (data_type, version, payload)
VALUES ($1, $2, $3);
`, dataType, version, payload); insErr != nil {
		return fmt.Errorf("put %q: %w", dataType, insErr)
	}
	return nil
}
