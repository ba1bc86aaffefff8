package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndCode(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("outer: %w", Wrap("weather_error", "weather lookup failed", cause))

	require.True(t, IsCode(err, "weather_error"))
	require.False(t, IsCode(err, "invalid_input"))
	require.Equal(t, "weather_error", CodeOf(err))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "outer: weather lookup failed: boom", err.Error())
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.Equal(t, "", CodeOf(nil))
}
