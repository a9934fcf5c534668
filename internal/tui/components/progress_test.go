package components

import (
	"strings"
	"testing"

	"spendash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestGoalBarClampsFillButNotLabel(t *testing.T) {
	theme.SetActive("flexoki-dark")

	bar := GoalBar(100, 125.0, 20)

	if n := strings.Count(bar, "█"); n != 20 {
		t.Errorf("overfunded bar fill = %d cells, want full 20", n)
	}
	if strings.Contains(bar, "░") {
		t.Error("overfunded bar should have no empty cells")
	}
	if !strings.Contains(bar, "125.0% complete") {
		t.Errorf("label must stay unclamped, got %q", bar)
	}
}

func TestGoalBarQuarter(t *testing.T) {
	theme.SetActive("flexoki-dark")

	bar := GoalBar(25, 25.0, 20)

	if n := strings.Count(bar, "█"); n != 5 {
		t.Errorf("25%% of 20 cells = %d filled, want 5", n)
	}
	if n := strings.Count(bar, "░"); n != 15 {
		t.Errorf("empty cells = %d, want 15", n)
	}
	if !strings.Contains(bar, "25.0% complete") {
		t.Errorf("label = %q, want 25.0%% complete", bar)
	}
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, total := range []int{80, 81, 82, 83, 120} {
		widths := LayoutRow(total, 4)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != total {
			t.Errorf("LayoutRow(%d, 4) sums to %d", total, sum)
		}
	}
	if LayoutRow(100, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}
