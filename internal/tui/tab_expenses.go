package tui

import (
	"fmt"
	"strings"

	"spendash/internal/cli"
	"spendash/internal/tui/components"
	"spendash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	expenses := a.data.Expenses

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(expenses) == 0 {
		body := mutedStyle.Render("No expenses yet") + "\n\n" +
			mutedStyle.Render("[a] add expense")
		return components.ContentCard("Expenses", body, cw)
	}

	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Card border (2), title (1), header row (1), footer (2).
	visible := h - 6
	if visible < 5 {
		visible = 5
	}

	offset := a.expOffset
	if offset > len(expenses)-visible {
		offset = len(expenses) - visible
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visible
	if end > len(expenses) {
		end = len(expenses)
	}

	notesW := innerW - 42
	if notesW < 8 {
		notesW = 8
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %-18s %-*s %10s", "Date", "Category", notesW, "Notes", "Amount")))
	body.WriteString("\n")

	for i := offset; i < end; i++ {
		e := expenses[i]
		badge := components.CategoryBadge(e.Category)
		badgePad := 18 - lipgloss.Width(badge)
		if badgePad < 0 {
			badgePad = 0
		}
		body.WriteString(fmt.Sprintf("%s %s%s %-*s %s\n",
			dateStyle.Render(fmt.Sprintf("%-8s", cli.FormatDate(e.Date.Time))),
			badge, strings.Repeat(" ", badgePad),
			notesW, truncStr(e.Notes, notesW),
			amountStyle.Render(fmt.Sprintf("%10s", cli.FormatUSD(e.Amount)))))
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(fmt.Sprintf("%d-%d of %d   [j/k] scroll  [g] top  [a] add",
		offset+1, end, len(expenses))))

	title := fmt.Sprintf("Expenses (%s total)", cli.FormatUSD(a.data.Summary.TotalExpenses))
	return components.ContentCard(title, body.String(), cw)
}
