package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a store keeping each slot as one row of a slots
// table. The same whole-collection semantics apply; the database only makes
// the slot durable, it does not add row-level access.
func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{db: db}
}

// EnsureSchema creates the slots table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS slots (
			slot       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *postgresStore) Read(ctx context.Context, slot string, dest interface{}) (bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM slots WHERE slot = $1`, slot).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read slot %s: %w", slot, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("slot %s: %w: %v", slot, ErrCorrupt, err)
	}
	return true, nil
}

func (s *postgresStore) Write(ctx context.Context, slot string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize slot %s: %w", slot, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slots (slot, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		slot, data)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}
