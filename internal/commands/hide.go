package commands

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hide-utils/hide/internal/config"
	"github.com/hide-utils/hide/internal/errors"
	"github.com/hide-utils/hide/internal/fs"
	"github.com/hide-utils/hide/internal/logger"
	"github.com/hide-utils/hide/internal/prompt"
	"github.com/hide-utils/hide/internal/renaming"
	"github.com/hide-utils/hide/internal/search"
	"github.com/hide-utils/hide/internal/styles"
)

// HideOptions are the per-invocation switches of the hide command.
type HideOptions struct {
	ForceHide   bool
	ForceUnhide bool
	AssumeYes   bool
}

// NewHideCmd creates the hide command
func NewHideCmd() *cobra.Command {
	var opts HideOptions

	cmd := &cobra.Command{
		Use:   "hide [flags] <file>",
		Short: "Hide or un-hide a file",
		Long: `Hide a visible file or un-hide a hidden one.

A file is hidden when its name starts with the hide character, '.' by
default. Hiding prepends the character, un-hiding removes it.

If the file does not exist but its hidden (or visible) counterpart does,
you are asked whether to use that one instead.

Examples:
  hide notes.txt           # notes.txt -> .notes.txt
  hide .notes.txt          # .notes.txt -> notes.txt
  hide -i notes.txt        # only ever hide
  hide -c _ build          # build -> _build`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.ErrConfigInvalid(err)
			}

			var confirmer prompt.Confirmer = prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
			if opts.AssumeYes {
				confirmer = prompt.Static{Answer: true}
			}

			return RunHide(cmd.OutOrStdout(), args[0], cfg.MarkerRune(), opts, confirmer)
		},
	}

	cmd.Flags().BoolVarP(&opts.ForceHide, "hide", "i", false, "Only hide; do nothing if the file is already hidden")
	cmd.Flags().BoolVarP(&opts.ForceUnhide, "unhide", "u", false, "Only un-hide; do nothing if the file is already visible")
	cmd.Flags().BoolVarP(&opts.AssumeYes, "yes", "y", false, "Use a suggested file without asking")

	return cmd
}

// RunHide toggles, or with a forcing option sets, the hidden state of
// file. Messages for the user go to out.
func RunHide(out io.Writer, file string, marker rune, opts HideOptions, confirmer prompt.Confirmer) error {
	if opts.ForceHide && opts.ForceUnhide {
		return errors.ErrInvalidCommand("cannot specify 'hide' and 'unhide' at the same time")
	}

	printer := logger.NewPrinter(out)

	exists, err := fs.Exists(file)
	if err != nil {
		return errors.ErrIO("existence check", err).WithContext("path", file)
	}

	if !exists {
		intended, found, err := search.FindIntendedFile(file, marker)
		if err != nil {
			return err
		}
		if !found {
			return errors.ErrFileDoesNotExist(file)
		}

		printer.Plain("the path %s does not exist. Did you mean %s?", styles.Quote(file), styles.Quote(intended))
		useIntended, err := confirmer.Confirm("Should we use the other instead", true)
		if err != nil {
			return err
		}
		if !useIntended {
			printer.Info("Cancelling")
			return nil
		}
		file = intended
	}

	hidden, err := renaming.IsHidden(file, marker)
	if err != nil {
		return err
	}

	if (hidden && opts.ForceHide) || (!hidden && opts.ForceUnhide) {
		state := "unhidden"
		if hidden {
			state = "hidden"
		}
		printer.Plain("Specified operation was redundant: file was already %s", state)
		return nil
	}

	newPath, err := renaming.AutoTransition(file, marker)
	if err != nil {
		return err
	}

	// Silent on success unless -v asked for more.
	if logger.Enabled(zerolog.InfoLevel) {
		verb := "Hid"
		if hidden {
			verb = "Un-hid"
		}
		printer.Success("%s %s as %s", verb, styles.Quote(file), styles.Quote(newPath))
	}
	return nil
}
