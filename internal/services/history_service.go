package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xvierd/gitcoach/internal/domain"
	"github.com/xvierd/gitcoach/internal/ports"
)

// HistoryService reads back the attempt history for the history command
// and the session summary.
type HistoryService struct {
	storage ports.Storage
}

// NewHistoryService creates a new history service.
func NewHistoryService(storage ports.Storage) *HistoryService {
	return &HistoryService{storage: storage}
}

// RecentAttempts returns attempts from the last `days` days, newest first.
func (s *HistoryService) RecentAttempts(ctx context.Context, days int) ([]*domain.Attempt, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	attempts, err := s.storage.Attempts().FindRecent(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent attempts: %w", err)
	}
	return attempts, nil
}

// SessionAttempts returns everything recorded for one session, oldest first.
func (s *HistoryService) SessionAttempts(ctx context.Context, sessionID string) ([]*domain.Attempt, error) {
	attempts, err := s.storage.Attempts().FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session attempts: %w", err)
	}
	return attempts, nil
}

// KindTotals returns how often each outcome kind has occurred, ever.
func (s *HistoryService) KindTotals(ctx context.Context) (map[domain.OutcomeKind]int, error) {
	totals, err := s.storage.Attempts().CountByKind(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count outcomes: %w", err)
	}
	return totals, nil
}
