package components

import (
	"strings"
	"testing"

	"spendash/internal/cli"
	"spendash/internal/model"
	"spendash/internal/tui/theme"
)

func TestCategoryColorUnknownFallsBackToOther(t *testing.T) {
	theme.SetActive("flexoki-dark")

	unknown := CategoryColor(model.ParseCategory("Subscriptions"))
	other := CategoryColor(model.CategoryOther)
	if unknown != other {
		t.Errorf("unknown category color = %v, want Other color %v", unknown, other)
	}

	if CategoryColor(model.CategoryFood) == other {
		t.Error("Food should not share the Other color")
	}
}

func TestCategoryColorMatchesCLI(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for _, c := range model.Categories {
		if got, want := CategoryColor(c), cli.CategoryColor(string(c)); got != want {
			t.Errorf("%s: TUI color %v, CLI color %v", c, got, want)
		}
	}
}

func TestCategoryBadgeNormalizesLabel(t *testing.T) {
	theme.SetActive("flexoki-dark")

	badge := CategoryBadge("Groceries")
	if !strings.Contains(badge, "Other") {
		t.Errorf("unrecognized label should render as Other, got %q", badge)
	}

	badge = CategoryBadge("food")
	if !strings.Contains(badge, "Food") {
		t.Errorf("case-insensitive match failed, got %q", badge)
	}
}
