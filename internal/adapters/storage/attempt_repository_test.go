package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/gitcoach/internal/domain"
	"github.com/xvierd/gitcoach/internal/ports"
)

func setupStorage(t *testing.T) ports.Storage {
	t.Helper()
	store, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func makeAttempt(sessionID, lessonID string, kind domain.OutcomeKind, startedAt time.Time) *domain.Attempt {
	attempt := domain.NewAttempt(sessionID, lessonID, domain.NewGitCommand("/tmp/project", "status"))
	attempt.StartedAt = startedAt
	attempt.Classify(domain.Outcome{
		Kind: kind,
		Raw:  domain.ExecutionResult{ExitCode: 0},
	})
	return attempt
}

func TestAttemptRepository_SaveAndFindBySession(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()
	now := time.Now()

	first := makeAttempt("session-1", "status", domain.KindSuccess, now.Add(-2*time.Minute))
	second := makeAttempt("session-1", "commit", domain.KindNothingToCommit, now.Add(-1*time.Minute))
	other := makeAttempt("session-2", "push", domain.KindDiverged, now)

	for _, a := range []*domain.Attempt{first, second, other} {
		require.NoError(t, store.Attempts().Save(ctx, a))
	}

	attempts, err := store.Attempts().FindBySession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, first.ID, attempts[0].ID, "oldest first")
	assert.Equal(t, second.ID, attempts[1].ID)
	assert.Equal(t, domain.KindNothingToCommit, attempts[1].Kind)
	assert.Equal(t, domain.StepClassified, attempts[1].State)
	assert.Equal(t, "git status", attempts[0].Command)
}

func TestAttemptRepository_FindRecent(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()
	now := time.Now()

	old := makeAttempt("session-1", "init", domain.KindSuccess, now.Add(-30*24*time.Hour))
	recent := makeAttempt("session-1", "status", domain.KindSuccess, now.Add(-time.Hour))

	require.NoError(t, store.Attempts().Save(ctx, old))
	require.NoError(t, store.Attempts().Save(ctx, recent))

	attempts, err := store.Attempts().FindRecent(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, recent.ID, attempts[0].ID)
}

func TestAttemptRepository_CountByKind(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()
	now := time.Now()

	for i, kind := range []domain.OutcomeKind{
		domain.KindSuccess,
		domain.KindSuccess,
		domain.KindMergeConflict,
	} {
		a := makeAttempt("session-1", "commit", kind, now.Add(time.Duration(i)*time.Second))
		require.NoError(t, store.Attempts().Save(ctx, a))
	}

	counts, err := store.Attempts().CountByKind(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.KindSuccess])
	assert.Equal(t, 1, counts[domain.KindMergeConflict])
}

func TestAttemptRepository_BlockedAttemptRoundTrips(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	attempt := domain.NewAttempt("session-1", "push", domain.NewGitCommand("/tmp/project", "push", "-u", "origin", "main"))
	attempt.Block(domain.BlockedOutcome(domain.KindNoRemote, "no remote yet"))

	require.NoError(t, store.Attempts().Save(ctx, attempt))

	attempts, err := store.Attempts().FindBySession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, domain.StepBlocked, attempts[0].State)
	assert.Equal(t, domain.KindNoRemote, attempts[0].Kind)
	assert.False(t, attempts[0].EndedAt.IsZero())
}
