// ABOUTME: Tests for config load/save and env override behavior
package config

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDataHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	dir := useTempDataHome(t)
	t.Setenv("PERPLEXITY_API_KEY", "")
	t.Setenv("FIREFLIES_API_KEY", "")
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.PerplexityAPIKey)
	assert.Equal(t, filepath.Join(dir, AppName, "store"), cfg.StorePath)
	assert.Equal(t, filepath.Join(dir, AppName, "sync.db"), cfg.SyncDBPath)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempDataHome(t)
	t.Setenv("PERPLEXITY_API_KEY", "")
	t.Setenv("FIREFLIES_API_KEY", "")
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	in := &Config{
		PerplexityAPIKey: "pplx-test",
		FirefliesAPIKey:  "ff-test",
	}
	require.NoError(t, Save(in))

	out, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pplx-test", out.PerplexityAPIKey)
	assert.Equal(t, "ff-test", out.FirefliesAPIKey)
}

func TestEnvOverridesFileValues(t *testing.T) {
	useTempDataHome(t)
	require.NoError(t, Save(&Config{PerplexityAPIKey: "from-file"}))

	t.Setenv("PERPLEXITY_API_KEY", "from-env")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.PerplexityAPIKey)
	assert.Equal(t, "client-id-env", cfg.GoogleClientID)
}
