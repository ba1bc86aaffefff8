package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildJSON(t *testing.T) {
	var buf bytes.Buffer
	log := build(&buf, "warn", "")

	log.Info("dropped")
	log.Warn("kept", "component", "test")

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), `"msg":"kept"`)
	require.Contains(t, buf.String(), `"service":"outfit-advisor"`)
}

func TestBuildText(t *testing.T) {
	var buf bytes.Buffer
	build(&buf, "", "TEXT").Info("hello")

	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "service=outfit-advisor")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
