package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, Validate(cfg))
}

func TestDefaultTimings(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, 20, cfg.Loader.RevealBatch)
	assert.Equal(t, 10, cfg.Loader.TileSize)
	assert.Equal(t, 30, cfg.Changer.ReelLength)
	assert.Equal(t, 10, cfg.Changer.AdvanceTicks)
	assert.Equal(t, 5, cfg.Changer.CountdownStart)
	assert.Equal(t, 60, cfg.Changer.CountdownTicks)
	assert.Equal(t, 140, cfg.Arrow.MinY)
	assert.Equal(t, 160, cfg.Arrow.MaxY)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("tick_rate: 30\nchanger:\n  reel_length: 12\n"))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, 12, cfg.Changer.ReelLength)
	assert.Equal(t, 10, cfg.Changer.AdvanceTicks, "unmentioned keys keep their default")
	assert.Equal(t, "Loading", cfg.Loader.Text)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\narrow:\n  speed: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Arrow.Speed)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tick_rate: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arrow:\n  min_y: 200\n  max_y: 160\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxY")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvFPS, "30")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvCatalog, "https://example.com/gameData.json")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvSound, "true")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(&cfg))

	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "https://example.com/gameData.json", cfg.Catalog)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Sound.Enabled)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvFPS, "fast")

	cfg := DefaultConfig()
	assert.Error(t, ApplyEnv(&cfg))
}

func TestValidatePalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette.Red = "not-a-color"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hexcolor")
}

func TestRectAndPaletteConversion(t *testing.T) {
	cfg := DefaultConfig()

	r := cfg.Layout.PlayButton.Rect()
	assert.Equal(t, 813, r.X)
	assert.Equal(t, 933, r.Right())

	pal := cfg.Palette.Palette()
	assert.EqualValues(t, "#3a7457", pal.BgGreen)
}
