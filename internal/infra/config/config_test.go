package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

func TestLoadDefaultsWithSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("AUTH_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "s3cret", cfg.Auth.Secret)
	require.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)
	require.Equal(t, outfit.DefaultConfig(), cfg.Engine.Outfit())
	require.False(t, cfg.Storage.Enabled())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("AUTH_SECRET", "")

	_, err := Load()
	require.ErrorContains(t, err, "auth.secret")
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
http:
  address: ":9090"
auth:
  secret: from-file
wardrobe:
  defaultLocation: Oslo
storage:
  endpoint: https://acct.r2.cloudflarestorage.com
  bucket: wardrobe
engine:
  weatherWeight: 0.5
  formalityWeight: 0.5
  onePieceThreshold: 0.7
  optionalThreshold: 0.6
  outerwearBelowC: 18
  outerwearWetOver: 0.4
  outerwearWindyOver: 0.4
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("WARDROBE_DEFAULT_LOCATION", "Bergen")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "from-file", cfg.Auth.Secret)
	require.Equal(t, "Bergen", cfg.Wardrobe.DefaultLocation)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.True(t, cfg.Storage.Enabled())

	engine := cfg.Engine.Outfit()
	require.Equal(t, 0.5, engine.Scoring.WeatherWeight)
	require.Equal(t, 18.0, engine.Selection.OuterwearBelowC)
}

func TestValidateRejectsBadEngine(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.Secret = "x"
	cfg.Engine.WeatherWeight = 0
	cfg.Engine.FormalityWeight = 0
	require.ErrorContains(t, cfg.Validate(), "engine")

	cfg = defaultConfig()
	cfg.Auth.Secret = "x"
	cfg.Engine.OptionalThreshold = 1.5
	require.ErrorContains(t, cfg.Validate(), "optionalThreshold")
}
