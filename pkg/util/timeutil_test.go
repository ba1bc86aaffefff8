package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowUTC(t *testing.T) {
	now := NowUTC()
	require.Equal(t, time.UTC, now.Location())
	require.Zero(t, now.Nanosecond()%int(time.Microsecond))
}
