package tui

import (
	"fmt"
	"strings"
	"time"

	"spendash/internal/cli"
	"spendash/internal/dashboard"
	"spendash/internal/model"
	"spendash/internal/tui/components"
	"spendash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	d := a.data
	var b strings.Builder

	// Row 1: Metric cards
	goalNote := ""
	if len(d.Goals) > 0 {
		var sum float64
		for _, g := range d.Goals {
			sum += g.ProgressClamped()
		}
		goalNote = fmt.Sprintf("avg %.0f%% funded", sum/float64(len(d.Goals)))
	}

	cards := []struct{ Label, Value, Note string }{
		{"Total Spent", cli.FormatUSD(d.Summary.TotalExpenses), fmt.Sprintf("%s expenses", cli.FormatNumber(int64(d.Summary.ExpenseCount)))},
		{"This Month", cli.FormatUSD(d.MonthToDate(time.Now())), time.Now().Format("January")},
		{"Budgets", cli.FormatNumber(int64(len(d.Budgets))), "active"},
		{"Goals", cli.FormatNumber(int64(len(d.Goals))), goalNote},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Recent Expenses + Savings Goals side by side
	halves := components.LayoutRow(cw, 2)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var recentBody strings.Builder
	recent := d.RecentExpenses(dashboard.RecentLimit)
	if len(recent) == 0 {
		recentBody.WriteString(mutedStyle.Render("No expenses yet"))
	} else {
		innerW := components.CardInnerWidth(halves[0])
		for _, e := range recent {
			badge := components.CategoryBadge(e.Category)
			amount := amountStyle.Render(cli.FormatUSD(e.Amount))
			left := dateStyle.Render(fmt.Sprintf("%-6s", cli.FormatDate(e.Date.Time))) + " " + badge
			pad := innerW - lipgloss.Width(left) - lipgloss.Width(amount)
			if pad < 1 {
				pad = 1
			}
			recentBody.WriteString(left + strings.Repeat(" ", pad) + amount + "\n")
			if e.Notes != "" {
				recentBody.WriteString(mutedStyle.Render("       " + truncStr(e.Notes, innerW-8)))
				recentBody.WriteString("\n")
			}
		}
	}
	recentCard := components.ContentCard("Recent Expenses", strings.TrimRight(recentBody.String(), "\n"), halves[0])

	var goalsBody strings.Builder
	if len(d.Goals) == 0 {
		goalsBody.WriteString(mutedStyle.Render("No savings goals yet"))
	} else {
		innerW := components.CardInnerWidth(halves[1])
		barW := innerW - 2
		if barW < 10 {
			barW = 10
		}
		for i, g := range d.Goals {
			title := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(truncStr(g.Title, innerW-18))
			amounts := mutedStyle.Render(fmt.Sprintf("%s / %s", cli.FormatUSD(g.CurrentAmount), cli.FormatUSD(g.TargetAmount)))
			pad := innerW - lipgloss.Width(title) - lipgloss.Width(amounts)
			if pad < 1 {
				pad = 1
			}
			goalsBody.WriteString(title + strings.Repeat(" ", pad) + amounts + "\n")
			goalsBody.WriteString(components.GoalBar(g.ProgressClamped(), g.Progress(), barW))
			if i < len(d.Goals)-1 {
				goalsBody.WriteString("\n\n")
			}
		}
	}
	goalsCard := components.ContentCard("Savings Goals", goalsBody.String(), halves[1])

	b.WriteString(components.CardRow([]string{recentCard, goalsCard}))
	b.WriteString("\n")

	// Row 3: Spending by category
	totals := d.CategoryTotals()
	if len(totals) > 0 {
		b.WriteString(components.ContentCard("Spending by Category", a.renderCategoryBars(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("[a] add expense  [f] fund goal  [r] refresh  [?] help"))

	return b.String()
}

// renderCategoryBars draws one proportional bar per category with spend.
func (a App) renderCategoryBars(innerW int) string {
	t := theme.Active
	totals := a.data.CategoryTotals()

	maxTotal := 0.0
	for _, v := range totals {
		if v > maxTotal {
			maxTotal = v
		}
	}

	nameW := 16
	barMaxLen := innerW - nameW - 14
	if barMaxLen < 4 {
		barMaxLen = 4
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, c := range model.Categories {
		total, ok := totals[c]
		if !ok || total <= 0 {
			continue
		}
		barLen := 0
		if maxTotal > 0 {
			barLen = int(total / maxTotal * float64(barMaxLen))
		}
		barStyle := lipgloss.NewStyle().Foreground(components.CategoryColor(c))
		fmt.Fprintf(&b, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, string(c))),
			barStyle.Render(strings.Repeat("█", barLen)),
			amtStyle.Render(cli.FormatUSD(total)))
	}
	return strings.TrimRight(b.String(), "\n")
}
