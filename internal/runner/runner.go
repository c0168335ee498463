// Package runner starts external commands for with-hide.
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/hide-utils/hide/internal/errors"
	"github.com/hide-utils/hide/internal/logger"
)

// ExitCodeNotStarted is reported for a command that never ran, matching
// the shell convention for "command not found".
const ExitCodeNotStarted = 127

type Result struct {
	Command  []string
	ExitCode int
}

func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner runs argv to completion. A command that runs and exits non-zero is
// a Result, not an error; the error return is reserved for commands that
// could not be started.
type Runner interface {
	Run(ctx context.Context, argv []string) (Result, error)
}

// Func adapts a function to Runner.
type Func func(ctx context.Context, argv []string) (Result, error)

func (f Func) Run(ctx context.Context, argv []string) (Result, error) {
	return f(ctx, argv)
}

// Exec runs commands as child processes. Nil streams default to the
// process's own stdio. With a Prefix set, each output line of the child is
// labelled with it.
type Exec struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Prefix string
}

func (e *Exec) Run(ctx context.Context, argv []string) (Result, error) {
	result := Result{Command: argv, ExitCode: ExitCodeNotStarted}
	if len(argv) == 0 {
		return result, errors.ErrInvalidCommand("no command given")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Running the user's command is the point
	cmd.Dir = e.Dir
	cmd.Stdin = orReader(e.Stdin, os.Stdin)

	stdout := orWriter(e.Stdout, os.Stdout)
	stderr := orWriter(e.Stderr, os.Stderr)

	var flushers []*prefixWriter
	if e.Prefix != "" {
		var mu sync.Mutex
		outPW := newPrefixWriter(e.Prefix, stdout, &mu)
		errPW := newPrefixWriter(e.Prefix, stderr, &mu)
		stdout, stderr = outPW, errPW
		flushers = append(flushers, outPW, errPW)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logger.Command(argv, "dir", e.Dir)

	if err := cmd.Start(); err != nil {
		return result, errors.Wrapf(err, "cannot start '%s'", strings.Join(argv, " "))
	}

	err := cmd.Wait()
	for _, pw := range flushers {
		_ = pw.Flush()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, errors.Wrapf(err, "waiting for '%s'", argv[0])
		}
		result.ExitCode = exitErr.ExitCode()
		// Killed by a signal.
		if result.ExitCode < 0 {
			result.ExitCode = 1
		}
	} else {
		result.ExitCode = 0
	}

	logger.CommandResult(argv, result.ExitCode)
	return result, nil
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
