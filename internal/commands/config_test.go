package commands

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hide-utils/hide/internal/config"
	"github.com/hide-utils/hide/internal/testutil"
)

func TestConfigCmd(t *testing.T) {
	t.Run("prints the effective configuration as TOML", func(t *testing.T) {
		t.Setenv("HIDE_MARKER", "~")
		require.NoError(t, config.Initialize())

		out, err := testutil.ExecuteCommand(t, NewConfigCmd(), "")
		require.NoError(t, err)

		var decoded config.Config
		require.NoError(t, toml.Unmarshal([]byte(out.Stdout), &decoded))
		assert.Equal(t, "~", decoded.Marker)
		assert.Equal(t, "warn", decoded.Logging.Level)
		assert.Equal(t, "text", decoded.Logging.Format)
		assert.Equal(t, "un-hide", decoded.WithHide.OnFailure)
		assert.Contains(t, out.Stdout, "[with_hide]")
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Setenv("HIDE_LOG_FORMAT", "xml")
		require.NoError(t, config.Initialize())

		_, err := testutil.ExecuteCommand(t, NewConfigCmd(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logging.format")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		require.NoError(t, config.Initialize())

		_, err := testutil.ExecuteCommand(t, NewConfigCmd(), "", "extra")
		require.Error(t, err)
	})
}
