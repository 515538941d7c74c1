package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})
)

func styleHeader(s string) string { return headerStyle.Render(s) }

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderError formats err for display on w, styled when w is a terminal.
func RenderError(w io.Writer, err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if !isTerminal(w) {
		return msg
	}
	return errorStyle.Render(msg)
}
