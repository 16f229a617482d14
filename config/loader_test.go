package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppConfig(t *testing.T) {
	path := writeConfig(t, `
match:
  maxGapToleranceMin: 30
apply:
  overwrite: true
  timezone: Europe/Prague
track:
  gpxDir: /data/gpx
  fitDir: /data/fit
  cacheFile: /data/track.gob
exiftool:
  path: /opt/exiftool
  timeoutSec: 5
`)

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Match.MaxGapToleranceMin)
	assert.Equal(t, 30*time.Minute, cfg.Tolerance())
	assert.True(t, cfg.Apply.Overwrite)
	assert.Equal(t, "/data/gpx", cfg.Track.GPXDir)
	assert.Equal(t, "/data/fit", cfg.Track.FITDir)
	assert.Equal(t, "/data/track.gob", cfg.Track.CacheFile)
	assert.Equal(t, "/opt/exiftool", cfg.Exiftool.Path)
	assert.Equal(t, 5*time.Second, cfg.ExiftoolTimeout())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Prague", loc.String())
}

func TestLoadAppConfigPartialFileGetsDefaults(t *testing.T) {
	path := writeConfig(t, `
apply:
  timezone: Europe/Prague
`)

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxGapToleranceMin, cfg.Match.MaxGapToleranceMin)
	assert.Equal(t, DefaultGPXDir, cfg.Track.GPXDir)
	assert.Equal(t, DefaultExiftoolPath, cfg.Exiftool.Path)
	assert.Equal(t, DefaultExiftoolTimeoutSec, cfg.Exiftool.TimeoutSec)
	assert.Equal(t, "Europe/Prague", cfg.Apply.Timezone)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5*time.Minute, cfg.Tolerance())
	assert.Equal(t, DefaultTimezone, cfg.Apply.Timezone)
	assert.Equal(t, DefaultGPXDir, cfg.Track.GPXDir)
	assert.Empty(t, cfg.Track.FITDir)
	assert.Empty(t, cfg.Track.CacheFile)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadAppConfigMissingExplicitPath(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadAppConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "match: [not a mapping")

	_, err := LoadAppConfig(path)
	assert.Error(t, err)
}

func TestLoadAppConfigValidation(t *testing.T) {
	t.Run("negative tolerance", func(t *testing.T) {
		path := writeConfig(t, "match:\n  maxGapToleranceMin: -1\n")
		_, err := LoadAppConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "match")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		path := writeConfig(t, "apply:\n  timezone: Mars/Olympus\n")
		_, err := LoadAppConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "apply")
	})

	t.Run("negative exiftool timeout", func(t *testing.T) {
		path := writeConfig(t, "exiftool:\n  timeoutSec: -3\n")
		_, err := LoadAppConfig(path)
		assert.Error(t, err)
	})
}
