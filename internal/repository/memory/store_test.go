package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-interview-report-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestInterviewRepo_ListByCandidate(t *testing.T) {
	store := NewStore(nil)
	store.Seed(CollectionInterviews, "a", map[string]any{
		"candidateUID": "c1", "jobTitle": "Backend", "submittedAt": time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	store.Seed(CollectionInterviews, "b", map[string]any{
		"candidateUID": "c1", "jobTitle": "Frontend", "submittedAt": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	store.Seed(CollectionInterviews, "c", map[string]any{
		"candidateUID": "c2", "jobTitle": "Data",
	})
	repo := NewInterviewRepository(store)

	records, err := repo.ListByCandidate(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, domain.InterviewStatusPending, records[0].Status)

	none, err := repo.ListByCandidate(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestInterviewRepo_GetByID(t *testing.T) {
	store := NewStore(nil)
	store.Seed(CollectionInterviews, "a", map[string]any{"candidateUID": "c1", "score": "82"})
	repo := NewInterviewRepository(store)

	rec, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 82.0, rec.Score.Value)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrincipalRepo_UpdateAccountStatus(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(fixedClock(now))
	store.Seed(CollectionUsers, "u1", map[string]any{"role": "candidate", "fullname": "Ada"})
	repo := NewPrincipalRepository(store)
	ctx := context.Background()

	first, err := repo.UpdateAccountStatus(ctx, "u1", domain.AccountStatusDisabled)
	require.NoError(t, err)
	assert.Equal(t, now, first)

	// The clock does not move; write times must still increase.
	second, err := repo.UpdateAccountStatus(ctx, "u1", domain.AccountStatusActive)
	require.NoError(t, err)
	assert.True(t, second.After(first))

	p, err := repo.GetByUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, p.AccountStatus)
	assert.Equal(t, second, p.UpdatedAt)

	_, err = repo.UpdateAccountStatus(ctx, "ghost", domain.AccountStatusActive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrincipalRepo_FailWritesLeavesDocument(t *testing.T) {
	store := NewStore(nil)
	store.Seed(CollectionUsers, "u1", map[string]any{"role": "candidate", "accountStatus": "active"})
	repo := NewPrincipalRepository(store)
	ctx := context.Background()

	before, err := repo.GetByUID(ctx, "u1")
	require.NoError(t, err)

	boom := errors.New("unavailable")
	store.FailWrites(boom)
	_, err = repo.UpdateAccountStatus(ctx, "u1", domain.AccountStatusDisabled)
	assert.ErrorIs(t, err, boom)

	after, err := repo.GetByUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPrincipalRepo_ListByRole(t *testing.T) {
	store := NewStore(nil)
	store.Seed(CollectionUsers, "old", map[string]any{"role": "candidate", "createdAt": "2023-01-01T00:00:00Z"})
	store.Seed(CollectionUsers, "new", map[string]any{"role": "candidate", "createdAt": "2024-01-01T00:00:00Z"})
	store.Seed(CollectionUsers, "boss", map[string]any{"role": "admin"})
	repo := NewPrincipalRepository(store)

	list, err := repo.ListByRole(context.Background(), domain.RoleCandidate)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].UID)
	assert.Equal(t, "old", list[1].UID)
}

func TestStore_SeedIsCopied(t *testing.T) {
	store := NewStore(nil)
	fields := map[string]any{"role": "candidate", "fullname": "Ada"}
	store.Seed(CollectionUsers, "u1", fields)
	fields["fullname"] = "Changed"

	p, err := NewPrincipalRepository(store).GetByUID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FullName)
}

func TestStore_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	body := `{
		"users": {"u1": {"role": "candidate", "fullname": "Ada", "email": "ada@example.com"}},
		"interviews": {"i1": {"candidateUID": "u1", "jobTitle": "Backend", "score": 75}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	store := NewStore(nil)
	require.NoError(t, store.LoadFile(path))

	rec, err := NewInterviewRepository(store).GetByID(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, "Backend", rec.JobTitle)
	assert.Equal(t, 75.0, rec.Score.Value)

	assert.Error(t, store.LoadFile(filepath.Join(t.TempDir(), "missing.json")))
}
