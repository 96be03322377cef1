package database

import (
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"bookbarber/config"
)

// NewBoltDB opens (creating if necessary) the local key-value store
// that mirrors the appointment collection.
func NewBoltDB(cfg config.BoltConfig) (*bolt.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}

	return db, nil
}
