package cli

import (
	"fmt"
	"strings"

	"spendash/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#878580")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorMagenta   = lipgloss.Color("#CE5D97")
	ColorYellow    = lipgloss.Color("#D0A215")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// categoryColors maps each known category to its badge color.
// Unknown categories get the Other color via ParseCategory.
var categoryColors = map[model.Category]lipgloss.Color{
	model.CategoryFood:     ColorOrange,
	model.CategoryTravel:   ColorBlue,
	model.CategoryStudy:    ColorMagenta,
	model.CategoryPersonal: ColorGreen,
	model.CategoryOther:    ColorTextMuted,
}

// CategoryColor returns the display color for a raw category label.
func CategoryColor(label string) lipgloss.Color {
	return categoryColors[model.ParseCategory(label)]
}

// CategoryBadge renders a colored category label for plain output.
func CategoryBadge(label string) string {
	c := model.ParseCategory(label)
	return lipgloss.NewStyle().Foreground(categoryColors[c]).Render(string(c))
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a simple two-space-separated table with a rule
// under the header. Rows of the form {"---"} render as separators.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			continue
		}
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	totalWidth := 0
	for _, w := range widths {
		totalWidth += w + 2
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	if len(t.Headers) > 0 {
		b.WriteString("  ")
		for i, h := range t.Headers {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", widths[i]+2, h)))
		}
		b.WriteString("\n  ")
		b.WriteString(dimStyle.Render(strings.Repeat("─", totalWidth)))
		b.WriteString("\n")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString("  ")
			b.WriteString(dimStyle.Render(strings.Repeat("─", totalWidth)))
			b.WriteString("\n")
			continue
		}
		b.WriteString("  ")
		for i, cell := range row {
			pad := widths[i] + 2 - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ProgressLine renders a bar plus the unclamped completion label, e.g.
// "██████░░░░░░ 125.0% complete". The bar itself clamps at full width.
func ProgressLine(clampedPct, rawPct float64, width int) string {
	filled := int(clampedPct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	barColor := ColorAccent
	if rawPct >= 100 {
		barColor = ColorGreen
	}

	bar := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))

	return bar + " " + mutedStyle.Render(FormatProgressLabel(rawPct))
}
