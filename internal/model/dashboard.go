package model

import "time"

// Summary holds the server-computed aggregate figures over all expenses.
type Summary struct {
	TotalExpenses     float64            `json:"total_expenses"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	ExpenseCount      int                `json:"expense_count"`
}

// DashboardData is one consistent snapshot of the four dashboard resources.
// It is populated atomically by a single fetch cycle: either all four
// resources are present, or the snapshot does not exist.
type DashboardData struct {
	Expenses  []Expense
	Budgets   []Budget
	Goals     []SavingsGoal
	Summary   Summary
	FetchedAt time.Time
}

// RecentExpenses returns the first n expenses in the order the backend
// returned them. The backend sorts by date descending; no client-side
// reordering happens here.
func (d *DashboardData) RecentExpenses(n int) []Expense {
	if n > len(d.Expenses) {
		n = len(d.Expenses)
	}
	return d.Expenses[:n]
}

// MonthToDate sums expenses dated within now's calendar month.
func (d *DashboardData) MonthToDate(now time.Time) float64 {
	var total float64
	y, m := now.Year(), now.Month()
	for _, e := range d.Expenses {
		if e.Date.IsZero() {
			continue
		}
		if e.Date.Year() == y && e.Date.Month() == m {
			total += e.Amount
		}
	}
	return total
}

// CategoryTotals returns per-category totals from the server summary,
// with unknown labels folded into Other.
func (d *DashboardData) CategoryTotals() map[Category]float64 {
	totals := make(map[Category]float64, len(Categories))
	for label, amount := range d.Summary.CategoryBreakdown {
		totals[ParseCategory(label)] += amount
	}
	return totals
}
