package tui

import (
	"fmt"
	"strings"

	"spendash/internal/cli"
	"spendash/internal/tui/components"
	"spendash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	goals := a.data.Goals

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(goals) == 0 {
		body := mutedStyle.Render("No savings goals yet") + "\n\n" +
			mutedStyle.Render("Create one with: spendash goals add")
		return components.ContentCard("Savings Goals", body, cw)
	}

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 4
	if barW < 10 {
		barW = 10
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selectedStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder
	for i, g := range goals {
		marker := "  "
		style := titleStyle
		if i == a.goalCursor {
			marker = selectedStyle.Render("▸ ")
			style = selectedStyle
		}

		title := style.Render(truncStr(g.Title, innerW-30))
		amounts := amtStyle.Render(fmt.Sprintf("%s of %s", cli.FormatUSD(g.CurrentAmount), cli.FormatUSD(g.TargetAmount)))
		pad := innerW - 2 - lipgloss.Width(title) - lipgloss.Width(amounts)
		if pad < 1 {
			pad = 1
		}
		body.WriteString(marker + title + strings.Repeat(" ", pad) + amounts + "\n")
		body.WriteString("  " + components.GoalBar(g.ProgressClamped(), g.Progress(), barW) + "\n")

		if !g.TargetDate.IsZero() {
			body.WriteString("  " + mutedStyle.Render("target date "+cli.FormatDate(g.TargetDate.Time)) + "\n")
		}
		if i < len(goals)-1 {
			body.WriteString("\n")
		}
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render("[j/k] select  [f] fund selected goal"))

	return components.ContentCard("Savings Goals", body.String(), cw)
}
