// Package store persists the last successful dashboard fetch so the
// dashboard can render offline.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendash/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNoSnapshot indicates no snapshot has been saved yet.
var ErrNoSnapshot = errors.New("store: no snapshot saved")

// Cache provides SQLite-backed snapshot storage.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the snapshot database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveSnapshot replaces the stored snapshot with the given data.
// The write is transactional: a reader never sees a half-replaced snapshot.
func (c *Cache) SaveSnapshot(d *model.DashboardData) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"snapshot_meta", "snapshot_expenses", "snapshot_budgets", "snapshot_goals", "snapshot_categories"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT INTO snapshot_meta (id, fetched_at, total_expenses, expense_count) VALUES (1, ?, ?, ?)`,
		d.FetchedAt.UTC().Format(time.RFC3339), d.Summary.TotalExpenses, d.Summary.ExpenseCount)
	if err != nil {
		return err
	}

	for i, e := range d.Expenses {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.UTC().Format(time.RFC3339)
		}
		_, err = tx.Exec(`INSERT INTO snapshot_expenses (position, expense_id, amount, category, date, notes) VALUES (?, ?, ?, ?, ?, ?)`,
			i, e.ID, e.Amount, e.Category, date, e.Notes)
		if err != nil {
			return err
		}
	}

	for i, b := range d.Budgets {
		_, err = tx.Exec(`INSERT INTO snapshot_budgets (position, budget_id, type, category, amount, month, year) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, b.ID, b.Type, b.Category, b.Amount, b.Month, b.Year)
		if err != nil {
			return err
		}
	}

	for i, g := range d.Goals {
		target := ""
		if !g.TargetDate.IsZero() {
			target = g.TargetDate.UTC().Format(time.RFC3339)
		}
		_, err = tx.Exec(`INSERT INTO snapshot_goals (position, goal_id, title, target_amount, current_amount, target_date) VALUES (?, ?, ?, ?, ?, ?)`,
			i, g.ID, g.Title, g.TargetAmount, g.CurrentAmount, target)
		if err != nil {
			return err
		}
	}

	for category, total := range d.Summary.CategoryBreakdown {
		_, err = tx.Exec(`INSERT INTO snapshot_categories (category, total) VALUES (?, ?)`, category, total)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads the stored snapshot back, preserving list order.
func (c *Cache) LoadSnapshot() (*model.DashboardData, error) {
	d := &model.DashboardData{}

	var fetchedAt string
	err := c.db.QueryRow(`SELECT fetched_at, total_expenses, expense_count FROM snapshot_meta WHERE id = 1`).
		Scan(&fetchedAt, &d.Summary.TotalExpenses, &d.Summary.ExpenseCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
		d.FetchedAt = t
	}

	rows, err := c.db.Query(`SELECT expense_id, amount, category, date, notes FROM snapshot_expenses ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var e model.Expense
		var date string
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &date, &e.Notes); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, date); err == nil {
			e.Date = model.ISOTime{Time: t}
		}
		d.Expenses = append(d.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	brows, err := c.db.Query(`SELECT budget_id, type, category, amount, month, year FROM snapshot_budgets ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = brows.Close() }()
	for brows.Next() {
		var b model.Budget
		if err := brows.Scan(&b.ID, &b.Type, &b.Category, &b.Amount, &b.Month, &b.Year); err != nil {
			return nil, err
		}
		d.Budgets = append(d.Budgets, b)
	}
	if err := brows.Err(); err != nil {
		return nil, err
	}

	grows, err := c.db.Query(`SELECT goal_id, title, target_amount, current_amount, target_date FROM snapshot_goals ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = grows.Close() }()
	for grows.Next() {
		var g model.SavingsGoal
		var target string
		if err := grows.Scan(&g.ID, &g.Title, &g.TargetAmount, &g.CurrentAmount, &target); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, target); err == nil {
			g.TargetDate = model.ISOTime{Time: t}
		}
		d.Goals = append(d.Goals, g)
	}
	if err := grows.Err(); err != nil {
		return nil, err
	}

	crows, err := c.db.Query(`SELECT category, total FROM snapshot_categories`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = crows.Close() }()
	d.Summary.CategoryBreakdown = make(map[string]float64)
	for crows.Next() {
		var category string
		var total float64
		if err := crows.Scan(&category, &total); err != nil {
			return nil, err
		}
		d.Summary.CategoryBreakdown[category] = total
	}
	return d, crows.Err()
}
