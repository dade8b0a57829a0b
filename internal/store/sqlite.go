package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/chunlian/internal/db"
)

// SQLitePersister keeps snapshots in the kv_store table.
type SQLitePersister struct {
	db *db.DB
}

// NewSQLitePersister creates a SQLitePersister backed by the given database.
func NewSQLitePersister(database *db.DB) *SQLitePersister {
	return &SQLitePersister{db: database}
}

// Load reads the value stored under key.
func (p *SQLitePersister) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Save upserts the value under key.
func (p *SQLitePersister) Save(ctx context.Context, key string, data []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
