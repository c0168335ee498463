package runner

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// prefixWriter labels every complete line written to it. Writers that share
// a target must share mu so stdout and stderr lines do not interleave.
type prefixWriter struct {
	prefix string
	target io.Writer
	mu     *sync.Mutex
	buf    bytes.Buffer
}

func newPrefixWriter(prefix string, target io.Writer, mu *sync.Mutex) *prefixWriter {
	return &prefixWriter{prefix: prefix, target: target, mu: mu}
}

func (w *prefixWriter) Write(p []byte) (n int, err error) {
	n, err = w.buf.Write(p)
	if err != nil {
		return n, err
	}

	for {
		line, readErr := w.buf.ReadString('\n')
		if readErr != nil {
			if line != "" {
				w.buf.WriteString(line)
			}
			break
		}

		if writeErr := w.emit(line); writeErr != nil {
			return n, writeErr
		}
	}

	return n, nil
}

// Flush writes out a trailing partial line, terminating it.
func (w *prefixWriter) Flush() error {
	remaining := w.buf.String()
	if remaining == "" {
		return nil
	}
	w.buf.Reset()
	return w.emit(remaining + "\n")
}

func (w *prefixWriter) emit(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintf(w.target, "%s %s", w.prefix, line)
	return err
}
