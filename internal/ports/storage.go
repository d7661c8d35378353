package ports

import (
	"context"
	"time"

	"github.com/xvierd/gitcoach/internal/domain"
)

// AttemptRepository persists the attempt history.
// This is a driven port (implemented by adapters).
type AttemptRepository interface {
	// Save persists a finished attempt.
	Save(ctx context.Context, attempt *domain.Attempt) error

	// FindBySession retrieves all attempts recorded for a session,
	// oldest first.
	FindBySession(ctx context.Context, sessionID string) ([]*domain.Attempt, error)

	// FindRecent retrieves attempts recorded since the given time,
	// newest first.
	FindRecent(ctx context.Context, since time.Time) ([]*domain.Attempt, error)

	// CountByKind returns how many attempts ended with each outcome kind.
	CountByKind(ctx context.Context) (map[domain.OutcomeKind]int, error)
}

// Storage is the top-level storage interface.
type Storage interface {
	Attempts() AttemptRepository
	Close() error
}
