package cache

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the cache in a single SQLite table.
type SQLiteStore struct {
	memory
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and loads every row.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS translations (
		cache_key TEXT PRIMARY KEY,
		value     TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	entries, err := loadRows(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{memory: newMemory(entries), db: db}, nil
}

func loadRows(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT cache_key, value FROM translations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache table: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cache row: %w", err)
		}
		entries[key] = value
	}
	return entries, rows.Err()
}

// Flush upserts the keys written since the previous flush in one transaction.
func (s *SQLiteStore) Flush() error {
	if len(s.dirty) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO translations (cache_key, value) VALUES (?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare cache upsert: %w", err)
	}
	defer stmt.Close()

	for key := range s.dirty {
		if _, err := stmt.Exec(key, s.entries[key]); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to write cache entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache: %w", err)
	}
	s.clearDirty()
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
