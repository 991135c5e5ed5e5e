package conflux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTypedConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := LoadOne(jsonSource{doc: `{
		"host": "localhost",
		"port": 8080,
		"ratio": 0.75,
		"debug": true,
		"retries": "3",
		"threshold": "0.5",
		"enabled": "true",
		"label": null,
		"nested": {"leaf": 1}
	}`})
	require.NoError(t, err)
	return cfg
}

// TestTypedGetters tests the conversion-based accessors
func TestTypedGetters(t *testing.T) {
	cfg := loadTypedConfig(t)

	t.Run("String", func(t *testing.T) {
		got, err := cfg.String("host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", got)

		// Numbers and bools convert to their textual form
		got, err = cfg.String("port")
		require.NoError(t, err)
		assert.Equal(t, "8080", got)

		got, err = cfg.String("debug")
		require.NoError(t, err)
		assert.Equal(t, "true", got)

		// nil reads as empty string
		got, err = cfg.String("label")
		require.NoError(t, err)
		assert.Equal(t, "", got)

		_, err = cfg.String("nested")
		assert.Error(t, err)
	})

	t.Run("Int64", func(t *testing.T) {
		got, err := cfg.Int64("port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), got)

		got, err = cfg.Int64("retries")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got)

		// Floats truncate
		got, err = cfg.Int64("ratio")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)

		got, err = cfg.Int64("debug")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)

		_, err = cfg.Int64("host")
		assert.Error(t, err)

		_, err = cfg.Int64("label")
		assert.Error(t, err)
	})

	t.Run("Bool", func(t *testing.T) {
		got, err := cfg.Bool("debug")
		require.NoError(t, err)
		assert.True(t, got)

		got, err = cfg.Bool("enabled")
		require.NoError(t, err)
		assert.True(t, got)

		_, err = cfg.Bool("host")
		assert.Error(t, err)
	})

	t.Run("Float64", func(t *testing.T) {
		got, err := cfg.Float64("ratio")
		require.NoError(t, err)
		assert.InDelta(t, 0.75, got, 1e-9)

		got, err = cfg.Float64("threshold")
		require.NoError(t, err)
		assert.InDelta(t, 0.5, got, 1e-9)

		got, err = cfg.Float64("port")
		require.NoError(t, err)
		assert.InDelta(t, 8080, got, 1e-9)

		_, err = cfg.Float64("host")
		assert.Error(t, err)
	})

	t.Run("MissingPath", func(t *testing.T) {
		_, err := cfg.String("absent")
		assert.Error(t, err)

		_, err = cfg.Int64("nested:absent")
		assert.Error(t, err)
	})

	t.Run("NestedPath", func(t *testing.T) {
		got, err := cfg.Int64("nested:leaf")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
	})
}
