package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"1", true},
		{"TRUE", true},
		{" true ", true},
		{"yes", true},
		{"On", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"", false},
		{"   ", false},
		{"anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := isTruthy(tt.input)
			if result != tt.expected {
				t.Errorf("isTruthy(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("HIDE_PLAIN enables plain mode", func(t *testing.T) {
		SetPlain(false)
		t.Cleanup(func() { SetPlain(false) })
		t.Setenv("HIDE_PLAIN", "1")

		LoadFromEnv()

		assert.True(t, IsPlain())
	})

	t.Run("unset HIDE_PLAIN leaves plain mode off", func(t *testing.T) {
		SetPlain(false)
		t.Setenv("HIDE_PLAIN", "")

		LoadFromEnv()

		assert.False(t, IsPlain())
	})
}

func TestDefaults(t *testing.T) {
	require.NoError(t, Initialize())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Marker)
	assert.Equal(t, '.', cfg.MarkerRune())
	assert.False(t, cfg.Plain)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "un-hide", cfg.WithHide.OnFailure)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestGetWithoutInitialize(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Get()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, ValidateConfig(cfg))
}

func TestPrecedence(t *testing.T) {
	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("HIDE_MARKER", "~")
		t.Setenv("HIDE_LOG_LEVEL", "debug")
		t.Setenv("HIDE_LOG_FORMAT", "json")
		t.Setenv("HIDE_WITH_HIDE_ON_FAILURE", "keep-hidden")
		require.NoError(t, Initialize())

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, '~', cfg.MarkerRune())
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "keep-hidden", cfg.WithHide.OnFailure)
	})

	t.Run("explicit values override environment", func(t *testing.T) {
		t.Setenv("HIDE_MARKER", "~")
		require.NoError(t, Initialize())
		viper.Set("marker", "_")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "_", cfg.Marker)
		assert.Equal(t, "_", GetString("marker"))
	})

	t.Run("Initialize clears earlier overrides", func(t *testing.T) {
		require.NoError(t, Initialize())
		viper.Set("marker", "_")
		require.NoError(t, Initialize())

		assert.Equal(t, ".", GetString("marker"))
	})
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("HIDE_MARKER", "ab")
	require.NoError(t, Initialize())

	_, err := Load()
	require.Error(t, err)

	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "marker", validationErrs[0].Field)
}
