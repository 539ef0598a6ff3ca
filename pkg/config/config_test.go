package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DoisLONG/GenAIStudio/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	// Runs first: the global config must hold defaults even when loading
	// fails, before any later subtest populates it from a file.
	t.Run("missing config file still installs defaults and demo tenants", func(t *testing.T) {
		require.Error(t, config.Load(t.TempDir()))
		cfg := config.GetConfig()

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 9090, cfg.Server.MetricsPort)
		assert.Equal(t, "./static", cfg.Server.StaticDir)
		assert.Contains(t, cfg.Tenants.Tenants, "demo-tenant-cn")
		assert.Contains(t, cfg.Tenants.Tenants, "demo-tenant-eu")
	})

	t.Run("reads server and tenants files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config.yaml", `
server:
  host: "127.0.0.1"
  port: 9999
metrics:
  enabled: true
`)
		writeFile(t, dir, "tenants.yaml", `
tenants:
  acme:
    region_code: "us"
    default_language: "en-US"
    allowed_languages: ["en-US"]
    blocked_keywords: ["forbidden"]
    pii_strict: true
`)

		require.NoError(t, config.Load(dir))
		cfg := config.GetConfig()

		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 9999, cfg.Server.Port)
		assert.Equal(t, 9090, cfg.Server.MetricsPort)
		assert.Equal(t, "./static", cfg.Server.StaticDir)
		assert.True(t, cfg.Metrics.Enabled)

		acme, ok := cfg.Tenants.Tenants["acme"]
		require.True(t, ok)
		assert.Equal(t, "us", acme.RegionCode)
		assert.True(t, acme.PIIStrict)
		assert.False(t, acme.HallucinationNotice)
	})

	t.Run("missing tenants file falls back to the demo registry", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config.yaml", `
server:
  port: 8081
`)

		require.NoError(t, config.Load(dir))
		cfg := config.GetConfig()

		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Contains(t, cfg.Tenants.Tenants, "demo-tenant-cn")
		assert.Contains(t, cfg.Tenants.Tenants, "demo-tenant-eu")
	})
}
