package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Top     int    `json:"top"`
	Agent   string `json:"agent"`
	Verbose bool   `json:"verbose"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0600)
	require.NoError(t, err)
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "mathviews.local.json5", LocalPath("mathviews.json5"))
	require.Equal(t, filepath.Join("a", "b", "c.local.json5"), LocalPath(filepath.Join("a", "b", "c.json5")))
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[testConfig](filepath.Join(dir, "missing.json5"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "mathviews.json5")

	writeFile(t, name, `{
		// comments are allowed
		top: 5,
		agent: "default",
	}`)
	writeFile(t, filepath.Join(dir, "mathviews.local.json5"), `{ top: 10 }`)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{Top: 10, Agent: "default"}, cfg)
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "mathviews.json5")
	writeFile(t, filepath.Join(dir, "mathviews.local.json5"), `{ verbose: true }`)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "mathviews.json5")
	writeFile(t, name, `{ top: `)

	_, err := ReadConfig[testConfig](name)
	require.Error(t, err)
	require.False(t, errors.Is(err, os.ErrNotExist))
}
