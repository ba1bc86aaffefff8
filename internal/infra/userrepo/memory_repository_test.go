package userrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-advisor/internal/domain/auth"
)

func TestMemoryRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, "closet", "hash")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)

	got, found, err := repo.GetByUsername(ctx, "closet")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, user, got)

	got, found, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "closet", got.Username)

	_, found, err = repo.GetByUsername(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	_, err = repo.Create(ctx, "closet", "other")
	require.ErrorIs(t, err, auth.ErrUsernameExists)
}
