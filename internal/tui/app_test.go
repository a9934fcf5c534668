package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"spendash/internal/api"
	"spendash/internal/config"
	"spendash/internal/model"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	client, err := api.New("http://localhost:8000", "tok")
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.Auth.Token = "tok"
	return NewApp(Options{Client: client, Config: cfg})
}

func TestLoadErrorReachesReadyWithEmptyData(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(dataLoadedMsg{Err: errors.New("connect refused"), LoadTime: time.Millisecond})
	a = m.(App)

	if !a.loaded {
		t.Fatal("app should leave the loading state even when the fetch fails")
	}
	if a.toast != "Failed to load dashboard data" {
		t.Fatalf("toast = %q", a.toast)
	}
	if len(a.data.Expenses) != 0 || len(a.data.Budgets) != 0 || len(a.data.Goals) != 0 {
		t.Fatal("failed load must not populate any resource")
	}
	if a.data.Summary.TotalExpenses != 0 {
		t.Fatalf("summary total = %v, want 0", a.data.Summary.TotalExpenses)
	}
}

func TestLoadSuccessPopulatesAllResources(t *testing.T) {
	a := newTestApp(t)

	data := &model.DashboardData{
		Expenses: []model.Expense{{ID: "e1", Amount: 12}},
		Budgets:  []model.Budget{{ID: "b1", Amount: 500}},
		Goals:    []model.SavingsGoal{{ID: "g1", Title: "Laptop", TargetAmount: 200, CurrentAmount: 50}},
		Summary:  model.Summary{TotalExpenses: 12, ExpenseCount: 1},
	}
	m, _ := a.Update(dataLoadedMsg{Data: data, LoadTime: time.Millisecond})
	a = m.(App)

	if !a.loaded {
		t.Fatal("app should be ready after a successful load")
	}
	if a.toast != "" {
		t.Fatalf("unexpected toast %q", a.toast)
	}
	if len(a.data.Expenses) != 1 || len(a.data.Budgets) != 1 || len(a.data.Goals) != 1 {
		t.Fatal("all four resources should land together")
	}
}

func TestRefreshFailureKeepsPreviousData(t *testing.T) {
	a := newTestApp(t)

	data := &model.DashboardData{
		Expenses: []model.Expense{{ID: "e1", Amount: 12}},
		Summary:  model.Summary{TotalExpenses: 12, ExpenseCount: 1},
	}
	m, _ := a.Update(dataLoadedMsg{Data: data})
	a = m.(App)

	m, _ = a.Update(refreshDoneMsg{Err: errors.New("timeout")})
	a = m.(App)

	if len(a.data.Expenses) != 1 {
		t.Fatal("failed refresh must keep the previous snapshot on screen")
	}
	if a.toast != "Failed to load dashboard data" {
		t.Fatalf("toast = %q", a.toast)
	}
}

func TestToastClearsAfterTicks(t *testing.T) {
	a := newTestApp(t)
	a.showToast("Failed to load dashboard data")

	for i := 0; i < toastTicks; i++ {
		m, _ := a.Update(tickMsg{})
		a = m.(App)
	}

	if a.toast != "" {
		t.Fatalf("toast should clear after %d ticks, still %q", toastTicks, a.toast)
	}
}

func TestOverviewShowsEmptyStateAfterFailedLoad(t *testing.T) {
	a := newTestApp(t)
	a.width = 100
	a.height = 40

	m, _ := a.Update(dataLoadedMsg{Err: errors.New("boom")})
	a = m.(App)

	view := a.View()
	if !strings.Contains(view, "No expenses yet") {
		t.Fatal("overview should show the expenses empty state")
	}
	if !strings.Contains(view, "No savings goals yet") {
		t.Fatal("overview should show the goals empty state")
	}
	if !strings.Contains(view, "Failed to load dashboard data") {
		t.Fatal("status bar should carry the error notification")
	}
}

func TestGoalCursorClampsAfterShrink(t *testing.T) {
	a := newTestApp(t)

	data := &model.DashboardData{
		Goals: []model.SavingsGoal{{ID: "g1"}, {ID: "g2"}, {ID: "g3"}},
	}
	m, _ := a.Update(dataLoadedMsg{Data: data})
	a = m.(App)
	a.goalCursor = 2

	m, _ = a.Update(refreshDoneMsg{Data: &model.DashboardData{Goals: []model.SavingsGoal{{ID: "g1"}}}})
	a = m.(App)

	if a.goalCursor != 0 {
		t.Fatalf("goalCursor = %d, want 0", a.goalCursor)
	}
}
