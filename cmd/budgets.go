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
	flagBudgetType     string
	flagBudgetCategory string
	flagBudgetMonth    int
	flagBudgetYear     int
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List budgets",
	RunE:  runBudgetsList,
}

var budgetsAddCmd = &cobra.Command{
	Use:   "add AMOUNT",
	Short: "Create a budget for a month",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsAdd,
}

func init() {
	now := time.Now()
	budgetsAddCmd.Flags().StringVarP(&flagBudgetType, "type", "t", "monthly", "Budget type: monthly or category")
	budgetsAddCmd.Flags().StringVarP(&flagBudgetCategory, "category", "c", "", "Category for category budgets")
	budgetsAddCmd.Flags().IntVar(&flagBudgetMonth, "month", int(now.Month()), "Budget month (1-12)")
	budgetsAddCmd.Flags().IntVar(&flagBudgetYear, "year", now.Year(), "Budget year")

	budgetsCmd.AddCommand(budgetsAddCmd)
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgetsList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	budgets, err := client.ListBudgets(context.Background())
	if err != nil {
		return err
	}

	if len(budgets) == 0 {
		fmt.Println("No budgets yet")
		return nil
	}

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		scope := b.Type
		if b.Type == "category" && b.Category != "" {
			scope = cli.CategoryBadge(b.Category)
		}
		rows = append(rows, []string{
			b.ID,
			scope,
			fmt.Sprintf("%04d-%02d", b.Year, b.Month),
			cli.FormatUSD(b.Amount),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Budgets (%d)", len(budgets)),
		Headers: []string{"ID", "Scope", "Month", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runBudgetsAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	if flagBudgetMonth < 1 || flagBudgetMonth > 12 {
		return fmt.Errorf("invalid month %d", flagBudgetMonth)
	}
	if flagBudgetType != "monthly" && flagBudgetType != "category" {
		return fmt.Errorf("invalid type %q, want monthly or category", flagBudgetType)
	}

	category := ""
	if flagBudgetType == "category" {
		category = string(model.ParseCategory(flagBudgetCategory))
	}

	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	b, err := client.CreateBudget(context.Background(), model.Budget{
		Type:     flagBudgetType,
		Category: category,
		Amount:   amount,
		Month:    flagBudgetMonth,
		Year:     flagBudgetYear,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created %s budget of %s for %04d-%02d (%s)\n",
		b.Type, cli.FormatUSD(b.Amount), b.Year, b.Month, b.ID)
	return nil
}
