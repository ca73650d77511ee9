package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, time.Hour, cfg.Pipeline.IntentTTL)
	assert.Equal(t, 15*time.Minute, cfg.Pipeline.CartTTL)
	assert.Equal(t, "charity-mandate-gateway", cfg.JWT.Issuer)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
  mode: release
session:
  backend: redis
pipeline:
  intent_ttl: 30m
  cart_ttl: 5m
redis:
  host: redis.internal
  port: 6380
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Pipeline.IntentTTL)
	assert.Equal(t, 5*time.Minute, cfg.Pipeline.CartTTL)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CMG_SERVER_PORT", "7070")
	t.Setenv("CMG_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_RejectsInvertedWindows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
pipeline:
  intent_ttl: 10m
  cart_ttl: 20m
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shorter than intent window")
}

func TestPipelineConfig_Validate(t *testing.T) {
	ok := PipelineConfig{IntentTTL: time.Hour, CartTTL: 15 * time.Minute}
	assert.NoError(t, ok.Validate())

	assert.Error(t, PipelineConfig{IntentTTL: 0, CartTTL: time.Minute}.Validate())
	assert.Error(t, PipelineConfig{IntentTTL: time.Minute, CartTTL: time.Minute}.Validate())
}
