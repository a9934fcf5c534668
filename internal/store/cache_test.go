package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"spendash/internal/model"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLoadSnapshotEmpty(t *testing.T) {
	c := openTestCache(t)
	if _, err := c.LoadSnapshot(); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := openTestCache(t)

	fetched := time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC)
	in := &model.DashboardData{
		Expenses: []model.Expense{
			{ID: "e1", Amount: 12.5, Category: "Food", Date: model.ISOTime{Time: time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)}, Notes: "lunch"},
			{ID: "e2", Amount: 30, Category: "Travel"},
		},
		Budgets: []model.Budget{
			{ID: "b1", Type: "monthly", Amount: 500, Month: 3, Year: 2025},
		},
		Goals: []model.SavingsGoal{
			{ID: "g1", Title: "Laptop", TargetAmount: 1000, CurrentAmount: 250},
		},
		Summary: model.Summary{
			TotalExpenses:     42.5,
			ExpenseCount:      2,
			CategoryBreakdown: map[string]float64{"Food": 12.5, "Travel": 30},
		},
		FetchedAt: fetched,
	}

	if err := c.SaveSnapshot(in); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	out, err := c.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if !out.FetchedAt.Equal(fetched) {
		t.Errorf("FetchedAt = %v, want %v", out.FetchedAt, fetched)
	}
	if len(out.Expenses) != 2 || out.Expenses[0].ID != "e1" || out.Expenses[1].ID != "e2" {
		t.Errorf("expense order not preserved: %+v", out.Expenses)
	}
	if out.Expenses[0].Notes != "lunch" {
		t.Errorf("notes lost: %+v", out.Expenses[0])
	}
	if len(out.Budgets) != 1 || out.Budgets[0].Amount != 500 {
		t.Errorf("budgets mismatch: %+v", out.Budgets)
	}
	if len(out.Goals) != 1 || out.Goals[0].CurrentAmount != 250 {
		t.Errorf("goals mismatch: %+v", out.Goals)
	}
	if out.Summary.TotalExpenses != 42.5 || out.Summary.CategoryBreakdown["Travel"] != 30 {
		t.Errorf("summary mismatch: %+v", out.Summary)
	}
}

func TestSaveSnapshotReplacesPrevious(t *testing.T) {
	c := openTestCache(t)

	first := &model.DashboardData{
		Expenses:  []model.Expense{{ID: "old", Amount: 1, Category: "Food"}},
		Summary:   model.Summary{TotalExpenses: 1, ExpenseCount: 1},
		FetchedAt: time.Now(),
	}
	if err := c.SaveSnapshot(first); err != nil {
		t.Fatal(err)
	}

	second := &model.DashboardData{
		Expenses:  []model.Expense{{ID: "new1", Amount: 2, Category: "Travel"}, {ID: "new2", Amount: 3, Category: "Other"}},
		Summary:   model.Summary{TotalExpenses: 5, ExpenseCount: 2},
		FetchedAt: time.Now(),
	}
	if err := c.SaveSnapshot(second); err != nil {
		t.Fatal(err)
	}

	out, err := c.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Expenses) != 2 || out.Expenses[0].ID != "new1" {
		t.Errorf("old snapshot not replaced: %+v", out.Expenses)
	}
}
