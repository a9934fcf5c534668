// Package dashboard loads the four dashboard resources in one fetch cycle.
package dashboard

import (
	"context"
	"time"

	"spendash/internal/api"
	"spendash/internal/model"

	"golang.org/x/sync/errgroup"
)

// RecentLimit is how many expenses the dashboard shows as "recent".
const RecentLimit = 5

// Load fetches expenses, budgets, savings goals, and the expense summary
// concurrently. The join is all-or-nothing: the first failure cancels the
// remaining requests and nothing is returned, so callers keep whatever
// state they already had. Cancelling ctx aborts the whole cycle.
func Load(ctx context.Context, client *api.Client) (*model.DashboardData, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		expenses []model.Expense
		budgets  []model.Budget
		goals    []model.SavingsGoal
		summary  *model.Summary
	)

	g.Go(func() error {
		var err error
		expenses, err = client.ListExpenses(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = client.ListBudgets(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = client.ListSavingsGoals(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = client.ExpenseSummary(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.DashboardData{
		Expenses:  expenses,
		Budgets:   budgets,
		Goals:     goals,
		Summary:   *summary,
		FetchedAt: time.Now(),
	}, nil
}
