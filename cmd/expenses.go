package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"spendash/internal/cli"
	"spendash/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagExpCategory string
	flagExpNote     string
	flagExpDate     string
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List expenses",
	RunE:  runExpensesList,
}

var expensesAddCmd = &cobra.Command{
	Use:   "add AMOUNT",
	Short: "Record a new expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesAdd,
}

var expensesShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a single expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesShow,
}

var expensesEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Change an expense's amount, category, note, or date",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesEdit,
}

var expensesRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesRm,
}

var (
	flagEditAmount   float64
	flagEditCategory string
	flagEditNote     string
	flagEditDate     string
)

func init() {
	expensesAddCmd.Flags().StringVarP(&flagExpCategory, "category", "c", string(model.CategoryOther), "Expense category")
	expensesAddCmd.Flags().StringVarP(&flagExpNote, "note", "m", "", "Note attached to the expense")
	expensesAddCmd.Flags().StringVar(&flagExpDate, "date", "", "Expense date (YYYY-MM-DD, default today)")

	expensesEditCmd.Flags().Float64VarP(&flagEditAmount, "amount", "a", 0, "New amount")
	expensesEditCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category")
	expensesEditCmd.Flags().StringVarP(&flagEditNote, "note", "m", "", "New note")
	expensesEditCmd.Flags().StringVar(&flagEditDate, "date", "", "New date (YYYY-MM-DD)")

	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesShowCmd)
	expensesCmd.AddCommand(expensesEditCmd)
	expensesCmd.AddCommand(expensesRmCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpensesList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	expenses, err := client.ListExpenses(context.Background())
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses yet")
		return nil
	}

	var total float64
	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		total += e.Amount
		rows = append(rows, []string{
			e.ID,
			cli.FormatDate(e.Date.Time),
			cli.CategoryBadge(e.Category),
			e.Notes,
			cli.FormatUSD(e.Amount),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "Total", cli.FormatUSD(total)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses (%d)", len(expenses)),
		Headers: []string{"ID", "Date", "Category", "Note", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runExpensesAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	date := time.Now()
	if flagExpDate != "" {
		date, err = time.Parse("2006-01-02", flagExpDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagExpDate)
		}
	}

	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	category := model.ParseCategory(flagExpCategory)
	e, err := client.CreateExpense(context.Background(), amount, category, date, flagExpNote)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s %s expense (%s)\n", cli.FormatUSD(e.Amount), category, e.ID)
	return nil
}

func runExpensesShow(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	e, err := client.GetExpense(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"ID", e.ID},
			{"Date", cli.FormatDate(e.Date.Time)},
			{"Category", cli.CategoryBadge(e.Category)},
			{"Note", e.Notes},
			{"Amount", cli.FormatUSD(e.Amount)},
		},
	}))
	return nil
}

// runExpensesEdit fetches the record first because the backend's update
// endpoint replaces every field; unset flags keep the stored values.
func runExpensesEdit(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	e, err := client.GetExpense(context.Background(), args[0])
	if err != nil {
		return err
	}

	amount := e.Amount
	if cmd.Flags().Changed("amount") {
		if flagEditAmount <= 0 {
			return fmt.Errorf("invalid amount %v", flagEditAmount)
		}
		amount = flagEditAmount
	}

	category := model.ParseCategory(e.Category)
	if cmd.Flags().Changed("category") {
		category = model.ParseCategory(flagEditCategory)
	}

	notes := e.Notes
	if cmd.Flags().Changed("note") {
		notes = flagEditNote
	}

	date := e.Date.Time
	if cmd.Flags().Changed("date") {
		date, err = time.Parse("2006-01-02", flagEditDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagEditDate)
		}
	}

	updated, err := client.UpdateExpense(context.Background(), args[0], amount, category, date, notes)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s: %s %s\n", updated.ID, cli.FormatUSD(updated.Amount), category)
	return nil
}

func runExpensesRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	if err := client.DeleteExpense(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Println("Deleted", args[0])
	return nil
}
