package commands

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/hide-utils/hide/internal/config"
	"github.com/hide-utils/hide/internal/errors"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration hider would use, as TOML.

Values come from flags, then HIDE_* environment variables, then built-in
defaults. Nothing is read from or written to disk.

Examples:
  hider config
  HIDE_MARKER=_ hider config
  hider -c '~' config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.ErrConfigInvalid(err)
			}

			enc := toml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(cfg); err != nil {
				return errors.Wrap(err, "failed to encode configuration")
			}
			return nil
		},
	}
}
