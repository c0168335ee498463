// Package withhide hides a file for as long as a command runs.
package withhide

import (
	"context"

	"github.com/hide-utils/hide/internal/errors"
	"github.com/hide-utils/hide/internal/fs"
	"github.com/hide-utils/hide/internal/logger"
	"github.com/hide-utils/hide/internal/renaming"
	"github.com/hide-utils/hide/internal/runner"
)

// State tracks where the file is in its hide/run/restore cycle.
type State int

const (
	Visible State = iota
	Hidden
	Restored
)

func (s State) String() string {
	switch s {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Restored:
		return "restored"
	default:
		return "unknown"
	}
}

type Options struct {
	Path      string
	Marker    rune
	OnFailure OnFailureMode
	Command   []string
}

// Result describes how a run ended.
type Result struct {
	State      State
	HiddenPath string
	FinalPath  string
	// ExitCode is the wrapped command's exit code, or
	// runner.ExitCodeNotStarted when it could not be started.
	ExitCode         int
	CommandSucceeded bool
	// StartErr is set when the command could not be started. It is part of
	// the outcome, not an error of Run.
	StartErr error
}

// Run hides opts.Path, runs opts.Command and restores the file according
// to opts.OnFailure. The command only starts once the file is hidden, and
// the restore only happens after the command has exited.
//
// A failing command is reported through Result; the error return covers
// problems with the file itself and an unknown opts.OnFailure, which is
// rejected before the file is touched. An empty OnFailure means
// DefaultOnFailure.
func Run(ctx context.Context, opts Options, r runner.Runner) (Result, error) {
	log := logger.WithComponent("withhide")
	result := Result{State: Visible, FinalPath: opts.Path}

	if len(opts.Command) == 0 {
		log.Debug("no command given, nothing to do", "path", opts.Path)
		result.CommandSucceeded = true
		return result, nil
	}

	mode := opts.OnFailure
	if mode == "" {
		mode = DefaultOnFailure
	}
	mode, err := ParseOnFailureMode(string(mode))
	if err != nil {
		return result, err
	}

	exists, err := fs.Exists(opts.Path)
	if err != nil {
		return result, errors.ErrIO("existence check", err).WithContext("path", opts.Path)
	}
	if !exists {
		return result, errors.ErrFileDoesNotExist(opts.Path)
	}

	hiddenPath, err := renaming.Hide(opts.Path, opts.Marker)
	if err != nil {
		return result, err
	}
	result.State = Hidden
	result.HiddenPath = hiddenPath
	result.FinalPath = hiddenPath
	log.Info("file hidden", "path", hiddenPath)

	res, runErr := r.Run(ctx, opts.Command)
	switch {
	case runErr != nil:
		log.Info("command could not be started", "error", runErr.Error())
		result.StartErr = runErr
		result.ExitCode = runner.ExitCodeNotStarted
	default:
		result.ExitCode = res.ExitCode
		result.CommandSucceeded = res.Success()
	}

	if !result.CommandSucceeded && mode == KeepHidden {
		log.Info("command failed, keeping file hidden", "path", hiddenPath, "exit_code", result.ExitCode)
		return result, nil
	}

	restored, err := renaming.Unhide(hiddenPath, opts.Marker)
	if err != nil {
		return result, errors.WithOperation(err, "restore")
	}
	result.State = Restored
	result.FinalPath = restored
	log.Info("file restored", "path", restored)

	return result, nil
}
