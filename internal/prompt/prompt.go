// Package prompt asks the user yes/no questions.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// maxAttempts bounds how often an unrecognised answer is re-asked before
// the default is taken.
const maxAttempts = 3

type Confirmer interface {
	Confirm(question string, def bool) (bool, error)
}

// Static answers every question with Answer without reading anything.
type Static struct {
	Answer bool
}

func (s Static) Confirm(string, bool) (bool, error) {
	return s.Answer, nil
}

// Terminal reads answers line by line from In and writes questions to Out.
type Terminal struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

func (t *Terminal) Confirm(question string, def bool) (bool, error) {
	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}

	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if _, err := fmt.Fprintf(t.Out, "%s? %s ", question, hint); err != nil {
			return def, err
		}

		line, err := t.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return def, fmt.Errorf("failed to read user input: %w", err)
		}

		answer, ok := parseAnswer(line, def)
		if ok {
			t.echo(answer)
			return answer, nil
		}
		if err == io.EOF {
			t.echo(def)
			return def, nil
		}

		_, _ = fmt.Fprintln(t.Out, "Please answer yes or no.")
	}

	t.echo(def)
	return def, nil
}

// echo records the answer when the input is not a terminal, where nothing
// the user typed would otherwise show up.
func (t *Terminal) echo(answer bool) {
	if isTerminal(t.In) {
		return
	}
	if answer {
		_, _ = fmt.Fprintln(t.Out, "yes")
	} else {
		_, _ = fmt.Fprintln(t.Out, "no")
	}
}

func parseAnswer(line string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, true
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	default:
		return def, false
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
