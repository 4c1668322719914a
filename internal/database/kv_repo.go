package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// KVRepository stores string values under string keys
type KVRepository struct {
	db *sql.DB
}

// NewKVRepository creates a new key-value repository
func NewKVRepository(db *DB) *KVRepository {
	return &KVRepository{db: db.GetConn()}
}

// Set stores value under key, overwriting any previous value
func (kr *KVRepository) Set(ctx context.Context, key, value string) error {
	_, err := kr.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE
		SET value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key. found is false when the key is absent.
func (kr *KVRepository) Get(ctx context.Context, key string) (value string, found bool, err error) {
	err = kr.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

// Delete removes key
func (kr *KVRepository) Delete(ctx context.Context, key string) error {
	_, err := kr.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
