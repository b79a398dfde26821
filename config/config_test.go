package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)

	want := Default()
	assert.InDelta(t, want.Physics.Step, cfg.Physics.Step, 1e-9)
	cfg.Physics.Step = want.Physics.Step
	assert.Equal(t, want, cfg)
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadCustomPathOverridesOnlyNamedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  start_level: level_2\n  debug: true\nlog:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "level_2", cfg.Game.StartLevel)
	assert.True(t, cfg.Game.Debug)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.Equal(t, 3, cfg.Player.Lives)
	assert.Equal(t, 640, cfg.Window.Width)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("player:\n  lives: 9\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero step", func(c *Config) { c.Physics.Step = 0 }},
		{"no steps", func(c *Config) { c.Physics.MaxSteps = 0 }},
		{"spike below step", func(c *Config) { c.Physics.SpikeThreshold = 0.001 }},
		{"too many lives", func(c *Config) { c.Player.Lives = 6 }},
		{"storage over nine", func(c *Config) { c.Player.MaxStorage = 10 }},
		{"no coins per life", func(c *Config) { c.Player.CoinsPerLife = 0 }},
		{"no start level", func(c *Config) { c.Game.StartLevel = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
