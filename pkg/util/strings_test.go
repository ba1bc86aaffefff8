package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	require.Equal(t, "ab", Truncate("abcdef", 2))
	require.Equal(t, "", Truncate("abc", 0))
	require.Equal(t, "héllo", Truncate("héllo", 5))
}
