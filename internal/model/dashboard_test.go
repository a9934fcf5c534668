package model

import (
	"fmt"
	"testing"
	"time"
)

func TestRecentExpensesKeepsBackendOrder(t *testing.T) {
	d := &DashboardData{}
	for i := 0; i < 8; i++ {
		d.Expenses = append(d.Expenses, Expense{ID: fmt.Sprintf("e%d", i)})
	}

	recent := d.RecentExpenses(5)
	if len(recent) != 5 {
		t.Fatalf("RecentExpenses(5) returned %d entries", len(recent))
	}
	for i, e := range recent {
		if want := fmt.Sprintf("e%d", i); e.ID != want {
			t.Errorf("recent[%d].ID = %q, want %q", i, e.ID, want)
		}
	}
}

func TestRecentExpensesShortList(t *testing.T) {
	d := &DashboardData{Expenses: []Expense{{ID: "only"}}}
	if got := len(d.RecentExpenses(5)); got != 1 {
		t.Fatalf("RecentExpenses(5) on 1-element list returned %d", got)
	}

	empty := &DashboardData{}
	if got := len(empty.RecentExpenses(5)); got != 0 {
		t.Fatalf("RecentExpenses(5) on empty list returned %d", got)
	}
}

func TestMonthToDate(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	d := &DashboardData{Expenses: []Expense{
		{Amount: 10, Date: ISOTime{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}},
		{Amount: 25.5, Date: ISOTime{time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)}},
		{Amount: 99, Date: ISOTime{time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)}},
		{Amount: 7, Date: ISOTime{}}, // undated records are skipped
	}}

	if got := d.MonthToDate(now); got != 35.5 {
		t.Fatalf("MonthToDate = %.2f, want 35.50", got)
	}
}

func TestCategoryTotalsFoldsUnknownIntoOther(t *testing.T) {
	d := &DashboardData{Summary: Summary{
		CategoryBreakdown: map[string]float64{
			"Food":      40,
			"Groceries": 10,
			"Misc":      5,
		},
	}}

	totals := d.CategoryTotals()
	if totals[CategoryFood] != 40 {
		t.Errorf("Food total = %.0f, want 40", totals[CategoryFood])
	}
	if totals[CategoryOther] != 15 {
		t.Errorf("Other total = %.0f, want 15 (unknown labels folded)", totals[CategoryOther])
	}
}
