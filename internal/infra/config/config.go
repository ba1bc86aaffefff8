package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Wardrobe WardrobeConfig `yaml:"wardrobe"`
	Weather  WeatherConfig  `yaml:"weather"`
	LLM      LLMConfig      `yaml:"llm"`
	Caption  CaptionConfig  `yaml:"caption"`
	Postgres PostgresConfig `yaml:"postgres"`
	Valkey   ValkeyConfig   `yaml:"valkey"`
	Storage  StorageConfig  `yaml:"storage"`
	Engine   EngineConfig   `yaml:"engine"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AuthConfig controls token issuance.
type AuthConfig struct {
	Secret          string        `yaml:"secret"`
	TokenTTL        time.Duration `yaml:"tokenTtl"`
	RefreshTokenTTL time.Duration `yaml:"refreshTokenTtl"`
}

// WardrobeConfig limits uploads and picks the fallback location.
type WardrobeConfig struct {
	MaxImageBytes   int64  `yaml:"maxImageBytes"`
	DefaultLocation string `yaml:"defaultLocation"`
}

// WeatherConfig points at the OpenWeather current-conditions API.
type WeatherConfig struct {
	BaseURL  string        `yaml:"baseUrl"`
	APIKey   string        `yaml:"apiKey"`
	CacheTTL time.Duration `yaml:"cacheTtl"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// CaptionConfig tunes garment photo captioning.
type CaptionConfig struct {
	Prompt      string `yaml:"prompt"`
	MaxTokens   int    `yaml:"maxTokens"`
	ImageDetail string `yaml:"imageDetail"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for the weather cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// StorageConfig describes the S3-compatible bucket for garment photos.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// Enabled reports whether enough settings exist to reach the bucket.
func (s StorageConfig) Enabled() bool {
	return strings.TrimSpace(s.Endpoint) != "" && strings.TrimSpace(s.Bucket) != ""
}

// EngineConfig overrides the suggestion engine coefficients.
type EngineConfig struct {
	WeatherWeight      float64 `yaml:"weatherWeight"`
	FormalityWeight    float64 `yaml:"formalityWeight"`
	OnePieceThreshold  float64 `yaml:"onePieceThreshold"`
	OptionalThreshold  float64 `yaml:"optionalThreshold"`
	OuterwearBelowC    float64 `yaml:"outerwearBelowC"`
	OuterwearWetOver   float64 `yaml:"outerwearWetOver"`
	OuterwearWindyOver float64 `yaml:"outerwearWindyOver"`
}

// Outfit merges the overrides into the stock engine coefficients.
func (e EngineConfig) Outfit() outfit.Config {
	cfg := outfit.DefaultConfig()
	cfg.Scoring.WeatherWeight = e.WeatherWeight
	cfg.Scoring.FormalityWeight = e.FormalityWeight
	cfg.Selection.OnePieceThreshold = e.OnePieceThreshold
	cfg.Selection.OptionalThreshold = e.OptionalThreshold
	cfg.Selection.OuterwearBelowC = e.OuterwearBelowC
	cfg.Selection.OuterwearWetOver = e.OuterwearWetOver
	cfg.Selection.OuterwearWindyOver = e.OuterwearWindyOver
	return cfg
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setString("HTTP_ADDRESS", &cfg.HTTP.Address)
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	setBool("HTTP_RATE_LIMIT_ENABLED", &cfg.HTTP.RateLimit.Enabled)
	setInt("HTTP_RATE_LIMIT_RPM", &cfg.HTTP.RateLimit.RequestsPerMinute)
	setInt("HTTP_RATE_LIMIT_BURST", &cfg.HTTP.RateLimit.Burst)

	setString("AUTH_SECRET", &cfg.Auth.Secret)
	setDuration("AUTH_TOKEN_TTL", &cfg.Auth.TokenTTL)
	setDuration("AUTH_REFRESH_TOKEN_TTL", &cfg.Auth.RefreshTokenTTL)

	if v := os.Getenv("WARDROBE_MAX_IMAGE_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Wardrobe.MaxImageBytes = parsed
		}
	}
	setString("WARDROBE_DEFAULT_LOCATION", &cfg.Wardrobe.DefaultLocation)

	setString("WEATHER_BASE_URL", &cfg.Weather.BaseURL)
	setString("WEATHER_API_KEY", &cfg.Weather.APIKey)
	setDuration("WEATHER_CACHE_TTL", &cfg.Weather.CacheTTL)

	setString("LLM_API_KEY", &cfg.LLM.APIKey)
	setString("LLM_BASE_URL", &cfg.LLM.BaseURL)
	setString("LLM_MODEL", &cfg.LLM.Model)
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	setString("CAPTION_PROMPT", &cfg.Caption.Prompt)
	setInt("CAPTION_MAX_TOKENS", &cfg.Caption.MaxTokens)
	setString("CAPTION_IMAGE_DETAIL", &cfg.Caption.ImageDetail)

	setString("POSTGRES_DSN", &cfg.Postgres.DSN)
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}

	setBool("VALKEY_ENABLED", &cfg.Valkey.Enabled)
	setString("VALKEY_ADDR", &cfg.Valkey.Addr)

	setString("STORAGE_ENDPOINT", &cfg.Storage.Endpoint)
	setString("STORAGE_ACCESS_KEY", &cfg.Storage.AccessKey)
	setString("STORAGE_SECRET_KEY", &cfg.Storage.SecretKey)
	setString("STORAGE_BUCKET", &cfg.Storage.Bucket)
	setString("STORAGE_REGION", &cfg.Storage.Region)

	setFloat("ENGINE_WEATHER_WEIGHT", &cfg.Engine.WeatherWeight)
	setFloat("ENGINE_FORMALITY_WEIGHT", &cfg.Engine.FormalityWeight)
	setFloat("ENGINE_OUTERWEAR_BELOW_C", &cfg.Engine.OuterwearBelowC)
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func setInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
}

func setDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	engine := outfit.DefaultConfig()
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Auth: AuthConfig{
			TokenTTL:        24 * time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
		Wardrobe: WardrobeConfig{
			MaxImageBytes: 5 << 20,
		},
		Weather: WeatherConfig{
			BaseURL:  "https://api.openweathermap.org/data/2.5/weather",
			CacheTTL: 10 * time.Minute,
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.2,
		},
		Caption: CaptionConfig{
			MaxTokens:   60,
			ImageDetail: "low",
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
		},
		Engine: EngineConfig{
			WeatherWeight:      engine.Scoring.WeatherWeight,
			FormalityWeight:    engine.Scoring.FormalityWeight,
			OnePieceThreshold:  engine.Selection.OnePieceThreshold,
			OptionalThreshold:  engine.Selection.OptionalThreshold,
			OuterwearBelowC:    engine.Selection.OuterwearBelowC,
			OuterwearWetOver:   engine.Selection.OuterwearWetOver,
			OuterwearWindyOver: engine.Selection.OuterwearWindyOver,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTtl must be positive")
	}
	if c.Auth.RefreshTokenTTL < c.Auth.TokenTTL {
		return errors.New("auth.refreshTokenTtl must not be shorter than auth.tokenTtl")
	}
	if c.Wardrobe.MaxImageBytes <= 0 {
		return errors.New("wardrobe.maxImageBytes must be positive")
	}
	if c.Weather.CacheTTL < 0 {
		return errors.New("weather.cacheTtl cannot be negative")
	}
	if c.Caption.MaxTokens < 0 {
		return errors.New("caption.maxTokens cannot be negative")
	}
	if c.Valkey.Enabled && strings.TrimSpace(c.Valkey.Addr) == "" {
		return errors.New("valkey.addr cannot be empty when valkey cache is enabled")
	}
	if strings.TrimSpace(c.Storage.Endpoint) != "" && strings.TrimSpace(c.Storage.Bucket) == "" {
		return errors.New("storage.bucket cannot be empty when storage.endpoint is set")
	}
	if c.Engine.OnePieceThreshold < 0 || c.Engine.OnePieceThreshold > 1 {
		return errors.New("engine.onePieceThreshold must be within [0,1]")
	}
	if c.Engine.OptionalThreshold < 0 || c.Engine.OptionalThreshold > 1 {
		return errors.New("engine.optionalThreshold must be within [0,1]")
	}
	if err := c.Engine.Outfit().Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}
