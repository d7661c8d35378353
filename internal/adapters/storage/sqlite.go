// Package storage provides the SQLite implementation of the storage
// ports. Every classified outcome is recorded so `gitcoach history` can
// show a learner what they have already practiced.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/xvierd/gitcoach/internal/ports"
	_ "modernc.org/sqlite"
)

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db          *sql.DB
	attemptRepo ports.AttemptRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New creates a new SQLite storage instance.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	storage := &sqliteStorage{
		db:          db,
		attemptRepo: newAttemptRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates a new in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// Attempts returns the attempt repository.
func (s *sqliteStorage) Attempts() ports.AttemptRepository {
	return s.attemptRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS attempts (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		lesson_id TEXT NOT NULL,
		state TEXT NOT NULL,
		command TEXT NOT NULL,
		kind TEXT NOT NULL,
		exit_code INTEGER NOT NULL,
		timed_out INTEGER NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id);
	CREATE INDEX IF NOT EXISTS idx_attempts_started ON attempts(started_at);
	CREATE INDEX IF NOT EXISTS idx_attempts_kind ON attempts(kind);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}
