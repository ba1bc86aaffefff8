package imagestore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	obj, err := store.Put(ctx, "wardrobe/1/a.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	require.Equal(t, int64(9), obj.Size)
	require.NotEmpty(t, obj.ETag)

	body, err := store.Get(ctx, "wardrobe/1/a.png")
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Delete(ctx, "wardrobe/1/a.png"))
	_, err = store.Get(ctx, "wardrobe/1/a.png")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "acct.r2.cloudflarestorage.com", sanitizeEndpoint("https://acct.r2.cloudflarestorage.com/bucket"))
	require.Equal(t, "localhost:9000", sanitizeEndpoint(" http://localhost:9000 "))
	require.Equal(t, "", sanitizeEndpoint(""))
}
