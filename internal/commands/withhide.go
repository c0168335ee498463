package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hide-utils/hide/internal/config"
	"github.com/hide-utils/hide/internal/errors"
	"github.com/hide-utils/hide/internal/logger"
	"github.com/hide-utils/hide/internal/runner"
	"github.com/hide-utils/hide/internal/styles"
	"github.com/hide-utils/hide/internal/withhide"
)

// NewWithHideCmd creates the with-hide command
func NewWithHideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "with-hide [flags] <file> -- <command>...",
		Short: "Hide a file while a command runs",
		Long: `Hide a file, run a command, then un-hide the file again.

The command only starts once the file is hidden. When it fails, the
--on-failure mode decides whether the file is restored (un-hide, the
default) or left hidden (keep-hidden). The exit code of the command
becomes the exit code of with-hide.

Examples:
  with-hide .env -- docker compose up            # run without .env
  with-hide -o keep-hidden Makefile -- make all  # stay hidden on failure`,
		Args: validateWithHideArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.ErrConfigInvalid(err)
			}

			mode, err := withhide.ParseOnFailureMode(cfg.WithHide.OnFailure)
			if err != nil {
				return err
			}

			file, command := splitWithHideArgs(cmd, args)
			opts := withhide.Options{
				Path:      file,
				Marker:    cfg.MarkerRune(),
				OnFailure: mode,
				Command:   command,
			}

			r := &runner.Exec{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}
			if logger.Enabled(zerolog.DebugLevel) && len(command) > 0 {
				r.Prefix = styles.Render(&styles.Dimmed, fmt.Sprintf("[%s]", command[0]))
			}

			return RunWithHide(cmd.Context(), cmd.ErrOrStderr(), opts, r)
		},
	}

	cmd.Flags().StringP("on-failure", "o", config.DefaultOnFailure,
		fmt.Sprintf("What to do with the file when the command fails (%s, %s)", withhide.KeepHidden, withhide.UnHide))
	_ = cmd.RegisterFlagCompletionFunc("on-failure", completeOnFailure)

	return cmd
}

func completeOnFailure(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var modes []string
	for _, mode := range withhide.OnFailureModes() {
		if strings.HasPrefix(mode.String(), toComplete) {
			modes = append(modes, mode.String())
		}
	}
	return modes, cobra.ShellCompDirectiveNoFileComp
}

// validateWithHideArgs requires exactly one file before "--".
func validateWithHideArgs(cmd *cobra.Command, args []string) error {
	dash := cmd.ArgsLenAtDash()
	files := len(args)
	if dash >= 0 {
		files = dash
	}

	switch {
	case files == 0:
		return errors.ErrInvalidCommand("missing file to hide")
	case files > 1:
		return errors.ErrInvalidCommand(fmt.Sprintf("expected one file before '--', got %d: %s",
			files, strings.Join(args[:files], " ")))
	}
	return nil
}

func splitWithHideArgs(cmd *cobra.Command, args []string) (string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args[0], nil
	}
	return args[0], args[dash:]
}

// RunWithHide runs opts through withhide.Run and turns the outcome into the
// process exit code. Warnings go to errOut.
func RunWithHide(ctx context.Context, errOut io.Writer, opts withhide.Options, r runner.Runner) error {
	result, err := withhide.Run(ctx, opts, r)
	if err != nil {
		return err
	}

	if result.StartErr != nil {
		logger.NewPrinter(errOut).Warning("%v", result.StartErr)
	}
	if result.State == withhide.Hidden {
		logger.Info("file left hidden", "path", result.FinalPath)
	}

	if !result.CommandSucceeded {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
