package repository

import (
	"context"
	"testing"
	"time"

	"authstack/internal/common"
	"authstack/internal/domain/model"

	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo UserRepository) *model.User {
	t.Helper()
	user := &model.User{
		ID:             "user-1",
		Username:       "alice",
		Email:          "a@x.com",
		HashedPassword: "digest",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestMemoryRepo_FindByIdentifier_BothPaths(t *testing.T) {
	repo := NewMemoryUserRepository()
	seedUser(t, repo)
	ctx := context.Background()

	byEmail, err := repo.FindByIdentifier(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", byEmail.ID)

	byUsername, err := repo.FindByIdentifier(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "user-1", byUsername.ID)

	_, err = repo.FindByIdentifier(ctx, "nobody")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryRepo_CreateDuplicate(t *testing.T) {
	repo := NewMemoryUserRepository()
	seedUser(t, repo)
	ctx := context.Background()

	err := repo.Create(ctx, &model.User{ID: "user-2", Username: "alice", Email: "other@x.com"})
	require.ErrorIs(t, err, common.ErrDuplicateKey)

	err = repo.Create(ctx, &model.User{ID: "user-3", Username: "bob", Email: "a@x.com"})
	require.ErrorIs(t, err, common.ErrDuplicateKey)
}

func TestMemoryRepo_ConsumeVerificationToken(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := seedUser(t, repo)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.SetVerificationToken(ctx, user.ID, "hash-1", now.Add(time.Hour)))

	got, err := repo.ConsumeVerificationToken(ctx, "hash-1", now)
	require.NoError(t, err)
	require.True(t, got.IsVerified)
	require.Empty(t, got.VerifyTokenHash)
	require.Nil(t, got.VerifyTokenExpiry)

	_, err = repo.ConsumeVerificationToken(ctx, "hash-1", now)
	require.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
}

func TestMemoryRepo_ConsumeVerificationToken_Expired(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := seedUser(t, repo)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.SetVerificationToken(ctx, user.ID, "hash-1", now.Add(-time.Minute)))

	_, err := repo.ConsumeVerificationToken(ctx, "hash-1", now)
	require.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
}

func TestMemoryRepo_ConsumeResetToken(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := seedUser(t, repo)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.SetResetToken(ctx, user.ID, "hash-r", now.Add(time.Hour)))

	got, err := repo.ConsumeResetToken(ctx, "hash-r", "new-digest", now)
	require.NoError(t, err)
	require.Equal(t, "new-digest", got.HashedPassword)
	require.Empty(t, got.ResetTokenHash)
	require.Nil(t, got.ResetTokenExpiry)

	_, err = repo.ConsumeResetToken(ctx, "hash-r", "other", now)
	require.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
}
