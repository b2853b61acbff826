package sqlite

import (
	"database/sql"
	"fmt"
	"time"
)

// kvTx wraps a write transaction on the kv table
type kvTx struct {
	tx *sql.Tx
}

// put inserts or replaces a value and stamps its update time
func (t *kvTx) put(key, value string) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, time.Now().Unix())
	return err
}

// withTx runs fn in a transaction, committing on success
func (s *Store) withTx(fn func(*kvTx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(&kvTx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
