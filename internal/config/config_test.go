package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Default().ServerPort, cfg.ServerPort)
	assert.Equal(t, Default().DatabasePath, cfg.DatabasePath)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.ServerPort = "9090"
	cfg.RemoteAnalyzerURL = "http://localhost:8000"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", loaded.ServerPort)
	assert.Equal(t, "http://localhost:8000", loaded.RemoteAnalyzerURL)
	assert.Equal(t, cfg.RemoteTimeoutSeconds, loaded.RemoteTimeoutSeconds)
}
