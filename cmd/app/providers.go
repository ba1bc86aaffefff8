package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outfit-advisor/internal/domain/auth"
	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
	"github.com/yanqian/outfit-advisor/internal/infra/caption"
	"github.com/yanqian/outfit-advisor/internal/infra/config"
	"github.com/yanqian/outfit-advisor/internal/infra/imagestore"
	"github.com/yanqian/outfit-advisor/internal/infra/llm/chatgpt"
	"github.com/yanqian/outfit-advisor/internal/infra/userrepo"
	"github.com/yanqian/outfit-advisor/internal/infra/wardroberepo"
	"github.com/yanqian/outfit-advisor/internal/infra/weather/openweather"
	"github.com/yanqian/outfit-advisor/internal/infra/weathercache"
)

// postgresPool is nil when no database is configured or reachable.
type postgresPool struct {
	pool *pgxpool.Pool
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	}
}

func provideWardrobeConfig(cfg *config.Config) wardrobe.Config {
	return wardrobe.Config{
		MaxImageBytes:   cfg.Wardrobe.MaxImageBytes,
		DefaultLocation: cfg.Wardrobe.DefaultLocation,
		WeatherCacheTTL: cfg.Weather.CacheTTL,
	}
}

func provideEngine(cfg *config.Config) *outfit.Engine {
	return outfit.NewEngine(cfg.Engine.Outfit())
}

func providePostgresPool(cfg *config.Config, logger *slog.Logger) postgresPool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return postgresPool{}
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return postgresPool{}
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return postgresPool{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return postgresPool{}
	}
	logger.Info("postgres repositories enabled")
	return postgresPool{pool: pool}
}

func provideAuthRepository(pg postgresPool) auth.Repository {
	if pg.pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pg.pool)
}

func provideItemRepository(pg postgresPool) wardrobe.ItemRepository {
	if pg.pool == nil {
		return wardroberepo.NewMemoryRepository()
	}
	return wardroberepo.NewPostgresRepository(pg.pool)
}

func provideImageStorage(cfg *config.Config, logger *slog.Logger) wardrobe.ImageStorage {
	if !cfg.Storage.Enabled() {
		logger.Info("object storage not configured, keeping images in memory")
		return imagestore.NewMemoryStorage()
	}
	store, err := imagestore.NewR2Storage(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.Region, logger)
	if err != nil {
		logger.Error("failed to init object storage, keeping images in memory", "error", err)
		return imagestore.NewMemoryStorage()
	}
	logger.Info("r2 image storage enabled", "bucket", cfg.Storage.Bucket)
	return store
}

func provideCaptioner(cfg *config.Config, logger *slog.Logger) wardrobe.Captioner {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Info("llm api key not set, image captioning disabled")
		return caption.StaticCaptioner{}
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		logger.Error("failed to init chatgpt client, image captioning disabled", "error", err)
		return caption.StaticCaptioner{}
	}
	return caption.NewChatGPTCaptioner(caption.Config{
		Model:       cfg.LLM.Model,
		Prompt:      cfg.Caption.Prompt,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.Caption.MaxTokens,
		ImageDetail: cfg.Caption.ImageDetail,
	}, client, caption.NewTokenizer("", logger), logger)
}

func provideWeatherClient(cfg *config.Config) wardrobe.WeatherClient {
	return openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey)
}

func provideWeatherCache(cfg *config.Config, logger *slog.Logger) wardrobe.WeatherCache {
	if cfg.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return weathercache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return weathercache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
			client.Close()
		} else {
			logger.Info("valkey weather cache enabled", "addr", cfg.Valkey.Addr)
			return weathercache.NewValkeyStore(client, "weather")
		}
	}
	return weathercache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
