package components

import (
	"spendash/internal/model"
	"spendash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CategoryColor maps a category to its theme color. Unknown labels take
// the Other color because model.ParseCategory folds them there.
func CategoryColor(c model.Category) lipgloss.Color {
	t := theme.Active
	switch c {
	case model.CategoryFood:
		return t.Orange
	case model.CategoryTravel:
		return t.Blue
	case model.CategoryStudy:
		return t.Magenta
	case model.CategoryPersonal:
		return t.Green
	default:
		return t.TextMuted
	}
}

// CategoryBadge renders a compact colored pill for an expense category.
func CategoryBadge(label string) string {
	c := model.ParseCategory(label)
	return lipgloss.NewStyle().
		Foreground(CategoryColor(c)).
		Render("● " + string(c))
}
