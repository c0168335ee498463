package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hide-utils/hide/internal/commands"
	"github.com/hide-utils/hide/internal/config"
	"github.com/hide-utils/hide/internal/errors"
	"github.com/hide-utils/hide/internal/logger"
)

const Version = "v0.1.0"

// NewHideCommand creates the root command of the standalone hide tool
func NewHideCommand() *cobra.Command {
	rootCmd := commands.NewHideCmd()
	rootCmd.Use = "hide [flags] <file>"

	setupRootCommand(rootCmd)
	return rootCmd
}

// NewWithHideCommand creates the root command of the standalone with-hide
// tool
func NewWithHideCommand() *cobra.Command {
	rootCmd := commands.NewWithHideCmd()
	rootCmd.Use = "with-hide [flags] <file> -- <command>..."

	setupRootCommand(rootCmd)
	return rootCmd
}

// NewHiderCommand creates the root command of hider, which bundles the
// other tools as subcommands
func NewHiderCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hider",
		Short: "Hide and un-hide files",
		Long: `Hider hides files by prefixing their name with a hide character, '.' by
default, and un-hides them by removing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	setupRootCommand(rootCmd)
	registerCommands(rootCmd)
	return rootCmd
}

// setupRootCommand configures flags and initialization for a root command
func setupRootCommand(rootCmd *cobra.Command) {
	rootCmd.Version = Version
	// Errors are printed once by Run
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	setupFlags(rootCmd)
	setupInitialization(rootCmd)
}

// setupFlags adds persistent flags to the root command
func setupFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringP("hide-char", "c", config.DefaultMarker, "Character to add to or remove from the front of the file name")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and symbols")
}

// setupInitialization loads configuration before any command runs.
func setupInitialization(rootCmd *cobra.Command) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return InitializeConfig(cmd)
	}
}

// registerCommands adds all subcommands to the root command
func registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(commands.NewHideCmd())
	rootCmd.AddCommand(commands.NewWithHideCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())
}

// InitializeConfig initializes application configuration and logging for
// the command about to run
func InitializeConfig(cmd *cobra.Command) error {
	if err := config.Initialize(); err != nil {
		return errors.Wrap(err, "error initializing config")
	}

	if err := bindFlags(cmd.Flags()); err != nil {
		return err
	}

	if _, err := config.Load(); err != nil {
		return errors.ErrConfigInvalid(err)
	}

	configureLogging(cmd)
	return nil
}

var flagKeys = map[string]string{
	"hide-char":  "marker",
	"plain":      "plain",
	"on-failure": "with_hide.on_failure",
}

// bindFlags binds cobra flags to viper configuration. Flags that the
// running command does not define are skipped.
func bindFlags(flags *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind %s flag", flag)
		}
	}
	return nil
}

// configureLogging sets up application logging based on flags and configuration
func configureLogging(cmd *cobra.Command) {
	level := config.GetString("logging.level")

	// -v only ever makes logging louder
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		if level == "warn" || level == "error" {
			level = "info"
		}
	}

	logger.Configure(logger.Config{
		Level:   level,
		Format:  config.GetString("logging.format"),
		Output:  cmd.ErrOrStderr(),
		NoColor: config.IsPlain(),
	})
}

// Run executes rootCmd and returns the process exit code.
func Run(rootCmd *cobra.Command) int {
	config.LoadFromEnv()

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	logger.Debug("command failed",
		"code", errors.GetErrorCode(err),
		"context", errors.GetErrorContext(err))

	printer := logger.NewPrinter(rootCmd.ErrOrStderr())
	printer.Error("%v", err)

	var hideErr *errors.HideError
	if errors.As(err, &hideErr) && hideErr.IsInternal() {
		printer.Plain("This is a bug in hide-utils, please report it.")
	}
	return 1
}
