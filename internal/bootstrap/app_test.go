package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-advisor/internal/infra/config"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	app := NewApp(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)), server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestShutdownGrace(t *testing.T) {
	app := NewApp(&config.Config{HTTP: config.HTTPConfig{WriteTimeout: 30 * time.Second}}, slog.Default(), &http.Server{})
	require.Equal(t, 30*time.Second, app.shutdownGrace())

	app = NewApp(&config.Config{}, slog.Default(), &http.Server{})
	require.Equal(t, minShutdownGrace, app.shutdownGrace())
}
