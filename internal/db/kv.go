package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// The kv table holds one JSON blob per namespace key, mirroring the
// browser localStorage layout the game state was designed around.

func (d *DB) GetBlob(key string) ([]byte, bool, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting blob %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (d *DB) PutBlob(key string, value []byte) error {
	_, err := d.conn.Exec(`
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("putting blob %s: %w", key, err)
	}
	return nil
}

func (d *DB) DeleteBlob(key string) error {
	_, err := d.conn.Exec(`DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting blob %s: %w", key, err)
	}
	return nil
}
