package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xvierd/gitcoach/internal/domain"
	"github.com/xvierd/gitcoach/internal/ports"
)

// attemptRepository implements ports.AttemptRepository using SQLite.
type attemptRepository struct {
	db *sql.DB
}

// newAttemptRepository creates a new attempt repository.
func newAttemptRepository(db *sql.DB) ports.AttemptRepository {
	return &attemptRepository{db: db}
}

// Save persists a finished attempt.
func (r *attemptRepository) Save(ctx context.Context, attempt *domain.Attempt) error {
	query := `
	INSERT INTO attempts (id, session_id, lesson_id, state, command, kind,
		exit_code, timed_out, started_at, ended_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	timedOut := 0
	if attempt.TimedOut {
		timedOut = 1
	}

	_, err := r.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.SessionID,
		attempt.LessonID,
		string(attempt.State),
		attempt.Command,
		string(attempt.Kind),
		attempt.ExitCode,
		timedOut,
		attempt.StartedAt,
		attempt.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}

	return nil
}

// FindBySession retrieves all attempts recorded for a session, oldest first.
func (r *attemptRepository) FindBySession(ctx context.Context, sessionID string) ([]*domain.Attempt, error) {
	query := `
	SELECT id, session_id, lesson_id, state, command, kind, exit_code,
		timed_out, started_at, ended_at
	FROM attempts
	WHERE session_id = ?
	ORDER BY started_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// FindRecent retrieves attempts recorded since the given time, newest first.
func (r *attemptRepository) FindRecent(ctx context.Context, since time.Time) ([]*domain.Attempt, error) {
	query := `
	SELECT id, session_id, lesson_id, state, command, kind, exit_code,
		timed_out, started_at, ended_at
	FROM attempts
	WHERE started_at >= ?
	ORDER BY started_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// CountByKind returns how many attempts ended with each outcome kind.
func (r *attemptRepository) CountByKind(ctx context.Context) (map[domain.OutcomeKind]int, error) {
	query := `SELECT kind, COUNT(*) FROM attempts GROUP BY kind`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.OutcomeKind]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[domain.OutcomeKind(kind)] = count
	}

	return counts, rows.Err()
}

// scanAttempts reads attempt rows into domain objects.
func scanAttempts(rows *sql.Rows) ([]*domain.Attempt, error) {
	var attempts []*domain.Attempt

	for rows.Next() {
		var a domain.Attempt
		var state, kind string
		var timedOut int
		var endedAt sql.NullTime

		err := rows.Scan(&a.ID, &a.SessionID, &a.LessonID, &state, &a.Command,
			&kind, &a.ExitCode, &timedOut, &a.StartedAt, &endedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}

		a.State = domain.StepState(state)
		a.Kind = domain.OutcomeKind(kind)
		a.TimedOut = timedOut == 1
		if endedAt.Valid {
			a.EndedAt = endedAt.Time
		}

		attempts = append(attempts, &a)
	}

	return attempts, rows.Err()
}
