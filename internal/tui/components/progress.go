package components

import (
	"strings"

	"spendash/internal/cli"
	"spendash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// GoalBar renders a savings-goal progress bar. The bar fill uses the
// clamped percentage so overfunded goals never overflow the width; the
// trailing label uses the raw percentage, one decimal, unclamped.
func GoalBar(clampedPct, rawPct float64, width int) string {
	t := theme.Active

	filled := int(clampedPct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	barColor := t.Accent
	switch {
	case rawPct >= 100:
		barColor = t.Green
	case rawPct >= 75:
		barColor = t.AccentBright
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + labelStyle.Render(cli.FormatProgressLabel(rawPct))
}
