package wardroberepo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
)

func TestMemoryRepositoryListsInInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	first := wardrobe.Item{ID: uuid.New(), UserID: 1, Description: "grey wool sweater", CreatedAt: now}
	second := wardrobe.Item{ID: uuid.New(), UserID: 1, Description: "blue denim jeans", CreatedAt: now}
	other := wardrobe.Item{ID: uuid.New(), UserID: 2, Description: "red silk tie", CreatedAt: now}
	for _, item := range []wardrobe.Item{first, second, other} {
		require.NoError(t, repo.Create(ctx, item))
	}

	items, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []wardrobe.Item{first, second}, items)

	_, found, err := repo.Get(ctx, 2, first.ID)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, repo.Delete(ctx, 2, first.ID))
	got, found, err := repo.Get(ctx, 1, first.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, first, got)

	require.NoError(t, repo.Delete(ctx, 1, first.ID))
	items, err = repo.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []wardrobe.Item{second}, items)

	items, err = repo.List(ctx, 3)
	require.NoError(t, err)
	require.Empty(t, items)
}
