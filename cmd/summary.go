package cmd

import (
	"context"
	"fmt"

	"spendash/internal/cli"
	"spendash/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary with category breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	summary, err := client.ExpenseSummary(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING SUMMARY"))
	fmt.Println()

	rows := [][]string{
		{"Total Spent", cli.FormatUSD(summary.TotalExpenses)},
		{"Expenses", cli.FormatNumber(int64(summary.ExpenseCount))},
	}
	if summary.ExpenseCount > 0 {
		rows = append(rows, []string{"Average", cli.FormatUSD(summary.TotalExpenses / float64(summary.ExpenseCount))})
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	fmt.Println()

	if len(summary.CategoryBreakdown) == 0 {
		return nil
	}

	// Fixed category order; anything the server reports outside the
	// known set folds into Other.
	totals := make(map[model.Category]float64)
	for label, amount := range summary.CategoryBreakdown {
		totals[model.ParseCategory(label)] += amount
	}

	catRows := make([][]string, 0, len(totals))
	for _, c := range model.Categories {
		amount, ok := totals[c]
		if !ok {
			continue
		}
		share := 0.0
		if summary.TotalExpenses > 0 {
			share = amount / summary.TotalExpenses * 100
		}
		catRows = append(catRows, []string{
			cli.CategoryBadge(string(c)),
			cli.FormatUSD(amount),
			fmt.Sprintf("%.0f%%", share),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    catRows,
	}))
	return nil
}
