// internal/storage/sqlite.go

package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	apperr "shawl/internal/error"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore keeps values in a single kv table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, apperr.New(apperr.ConfigError, "state database path is empty", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, apperr.New(apperr.StorageError, "failed to create state directory", err)
	}

	// modernc.org/sqlite rejestruje sterownik "sqlite"
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperr.New(apperr.StorageError, "failed to open state database", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, apperr.New(apperr.StorageError, "failed to migrate state database", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", apperr.New(apperr.StorageError, "failed to read "+key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return apperr.New(apperr.StorageError, "failed to write "+key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
