package logger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/hide-utils/hide/internal/config"
	"github.com/hide-utils/hide/internal/styles"
)

// Printer writes user-facing messages. Unlike the diagnostic logger these
// are always shown, and they lose their symbols and colors in plain mode.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Success prints success messages
func (p *Printer) Success(format string, args ...any) {
	p.print(&styles.Success, "✓ ", "", format, args...)
}

func (p *Printer) Info(format string, args ...any) {
	p.print(&styles.Info, "→ ", "", format, args...)
}

func (p *Printer) Warning(format string, args ...any) {
	p.print(&styles.Warning, "⚠ ", "Warning: ", format, args...)
}

// Error prints error messages
func (p *Printer) Error(format string, args ...any) {
	p.print(&styles.Error, "✗ ", "Error: ", format, args...)
}

// Plain prints a line without any decoration.
func (p *Printer) Plain(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) print(style *lipgloss.Style, symbol, plainPrefix, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if config.IsPlain() {
		_, _ = fmt.Fprintln(p.out, plainPrefix+msg)
		return
	}
	_, _ = fmt.Fprintln(p.out, styles.Render(style, symbol)+msg)
}
