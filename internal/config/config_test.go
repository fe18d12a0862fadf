package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://openapi.naver.com/v1/search", cfg.Naver.BaseURL)
	assert.Equal(t, 5, cfg.Naver.Display)
	assert.Equal(t, 10, cfg.Naver.ReviewDisplay)
	assert.Equal(t, 720, cfg.Geocode.CacheTTLHours)
	assert.Equal(t, "openai", cfg.Summarizer.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 360, cfg.Enrichment.CacheTTLMinutes)
	assert.Equal(t, 30, cfg.Wizard.SessionTTLMinutes)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
store:
  driver: sqlite
  database_url: file:weddy.db
log:
  level: debug
  format: console
summarizer:
  provider: gemini
gemini:
  key: g-key
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "file:weddy.db", cfg.Store.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "g-key", cfg.SummarizerModel().Key)
	assert.Equal(t, "gemini-1.5-flash", cfg.SummarizerModel().Model)
	assert.Equal(t, 5, cfg.Naver.Display)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 9090\n"), 0o644))
	t.Setenv("WEDDY_SERVER_PORT", "7070")
	t.Setenv("WEDDY_NAVER_CLIENT_ID", "naver-id")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "naver-id", cfg.Naver.ClientID)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Store:      StoreConfig{Driver: "sqlite", DatabaseURL: "file::memory:"},
		Auth:       AuthConfig{JWTSecret: "s"},
		Summarizer: SummarizerConfig{Provider: "anthropic"},
	}
	assert.NoError(t, valid.Validate())

	badDriver := valid
	badDriver.Store.Driver = "mysql"
	assert.Error(t, badDriver.Validate())

	noSecret := valid
	noSecret.Auth.JWTSecret = ""
	assert.Error(t, noSecret.Validate())

	badProvider := valid
	badProvider.Summarizer.Provider = "llama"
	assert.Error(t, badProvider.Validate())
}

func TestInitLogger(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "console"}))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zap.WarnLevel))

	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
