package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 32, cfg.InitialPoolSize)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse(`
initial_pool_size = 128
max_delta = "250ms"
sound = false
`)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.InitialPoolSize)
	assert.Equal(t, 250*time.Millisecond, cfg.MaxDelta.Duration)
	assert.False(t, cfg.Sound)
	// Untouched keys keep defaults
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, 12.0, cfg.PlayerSpeed)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative pool", "initial_pool_size = -1"},
		{"zero fps", "frame_rate = 0"},
		{"negative speed", "player_speed = -2.0"},
		{"negative delta", `max_delta = "-5ms"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Parse(`max_delta = "soon"`)
	assert.Error(t, err)
	_, err = Parse("initial_pool_size = [")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vecpool.toml")
	require.NoError(t, os.WriteFile(path, []byte("frame_rate = 30\nturn_rate = 2.5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 2.5, cfg.TurnRate)
	assert.Equal(t, time.Second/30, cfg.FrameInterval())

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("pool_size = 4\n"), 0644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidConfig, "unknown keys rejected")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
