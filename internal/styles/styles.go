package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hide-utils/hide/internal/config"
)

var (
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	Dimmed  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	Path    = lipgloss.NewStyle().Bold(true)
)

func Render(style *lipgloss.Style, text string) string {
	if config.IsPlain() {
		return text
	}

	// lipgloss detects no color support under `go test`; HIDE_TEST_COLORS
	// forces a profile so styled output can be asserted on.
	if os.Getenv("HIDE_TEST_COLORS") == "true" {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	return style.Render(text)
}

// Quote renders a path the way messages refer to files: 'name'.
func Quote(path string) string {
	return Render(&Path, "'"+path+"'")
}
