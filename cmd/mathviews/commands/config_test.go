package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := readConfig(filepath.Join(t.TempDir(), "mathviews.json5"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
	require.Equal(t, 30*time.Second, cfg.FetchOptions().Timeout)
	require.Equal(t, 5, cfg.ReportOptions().Top)
}

func TestReadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mathviews.json5")
	err := os.WriteFile(path, []byte(`{
		http: { timeout_seconds: 5 },
		report: { top: 3, table: true },
	}`), 0600)
	require.NoError(t, err)

	cfg, err := readConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, cfg.FetchOptions().Timeout)
	require.Equal(t, defaultUserAgent, cfg.FetchOptions().UserAgent)
	require.False(t, cfg.FetchOptions().CloudflareBypass)
	require.Equal(t, 3, cfg.ReportOptions().Top)
	require.True(t, cfg.ReportOptions().Table)
}
