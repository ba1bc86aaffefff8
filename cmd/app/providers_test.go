package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-advisor/internal/infra/caption"
	"github.com/yanqian/outfit-advisor/internal/infra/config"
	"github.com/yanqian/outfit-advisor/internal/infra/imagestore"
	"github.com/yanqian/outfit-advisor/internal/infra/userrepo"
	"github.com/yanqian/outfit-advisor/internal/infra/wardroberepo"
	"github.com/yanqian/outfit-advisor/internal/infra/weathercache"
)

func TestProvidersFallBackToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	pg := providePostgresPool(cfg, logger)
	require.Nil(t, pg.pool)
	require.IsType(t, &userrepo.MemoryRepository{}, provideAuthRepository(pg))
	require.IsType(t, &wardroberepo.MemoryRepository{}, provideItemRepository(pg))
	require.IsType(t, &imagestore.MemoryStorage{}, provideImageStorage(cfg, logger))
	require.IsType(t, &weathercache.MemoryStore{}, provideWeatherCache(cfg, logger))
	require.IsType(t, caption.StaticCaptioner{}, provideCaptioner(cfg, logger))
}

func TestProvideCaptionerWithKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{LLM: config.LLMConfig{APIKey: "sk-test", Model: "gpt-4o-mini"}}

	require.IsType(t, &caption.ChatGPTCaptioner{}, provideCaptioner(cfg, logger))
}
