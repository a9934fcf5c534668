package components

import (
	"fmt"
	"strings"

	"spendash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. toast, when non-empty,
// is the transient error notification and takes over the left side.
func RenderStatusBar(width int, server, dataAge, toast string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [r]efresh  [q]uit"
	if toast != "" {
		left = " " + lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render(toast)
	}

	right := ""
	if server != "" {
		right = server
	}
	if dataAge != "" {
		right += fmt.Sprintf("  Data: %s", dataAge)
	}
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
