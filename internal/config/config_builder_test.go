package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns the smallest config that passes validation once
// defaults are merged in.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/stocks"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without any source fails
// validation because the JWT secret is missing.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that defaults fill every field the
// other sources left empty.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Server.Addr())
	assert.Equal(t, "http://localhost:3000", cfg.Server.FrontendURI)
	assert.Equal(t, "https://www.alphavantage.co", cfg.Adapter.QuoteBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "00:00", cfg.Workers.PriceRefreshAt)
	assert.Empty(t, cfg.Adapter.QuoteAPIKey)
}

// TestBuild_FirstSourceWins verifies that a value set by an earlier source
// is not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	first := validConfig()
	first.Server.Port = 8080

	second := validConfig()
	second.Server.Port = 9090
	second.Server.FrontendURI = "https://second.example.com"

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://second.example.com", cfg.Server.FrontendURI)
}

// TestBuild_MissingDSN verifies that a config without a DSN is rejected.
func TestBuild_MissingDSN(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "secret"}})

	_, err := b.withDefaults().build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_InvalidRefreshTime verifies that a malformed refresh time is
// rejected.
func TestBuild_InvalidRefreshTime(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.PriceRefreshAt = "25:99"

	b := newConfigBuilder()
	b.configs = append(b.configs, cfg)

	_, err := b.withDefaults().build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// TestBuild_InvalidHashCost verifies that a bcrypt cost out of range is
// rejected.
func TestBuild_InvalidHashCost(t *testing.T) {
	cfg := validConfig()
	cfg.App.PasswordHashCost = 99

	b := newConfigBuilder()
	b.configs = append(b.configs, cfg)

	_, err := b.withDefaults().build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that nothing is appended when no source
// points at a JSON file.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the JSON file referenced by an
// earlier source is parsed and merged with lower priority.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server":  map[string]any{"port": 5000, "frontend_uri": "https://json.example.com"},
		"quotes":  map[string]any{"api_key": "from-json"},
		"workers": map[string]any{"price_refresh_at": "02:00"},
	})

	first := validConfig()
	first.JSONFilePath = path
	first.Server.Port = 8080

	b := newConfigBuilder()
	b.configs = append(b.configs, first)

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://json.example.com", cfg.Server.FrontendURI)
	assert.Equal(t, "from-json", cfg.Adapter.QuoteAPIKey)
	assert.Equal(t, "02:00", cfg.Workers.PriceRefreshAt)
}

// TestWithJSON_MissingFile verifies that a missing JSON file is reported as
// a builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	cfg := validConfig()
	cfg.JSONFilePath = "/definitely/not/here.json"

	b := newConfigBuilder()
	b.configs = append(b.configs, cfg)

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EnvOverridesFlags verifies the full pipeline and
// the env-before-flags priority.
func TestGetStructuredConfig_EnvOverridesFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"JWT_SECRET":   "env-secret",
		"DATABASE_URI": "postgres://env/db",
	})

	cfg, err := GetStructuredConfig([]string{"-jwt-secret", "flag-secret", "-p", "7000"})
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, 7000, cfg.Server.Port)
}

// TestGetStructuredConfig_BadFlag verifies that flag parsing errors surface.
func TestGetStructuredConfig_BadFlag(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-p", "not-a-number"})
	assert.Error(t, err)
}
