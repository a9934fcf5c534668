package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"spendash/internal/cli"

	"github.com/spf13/cobra"
)

var flagGoalDate string

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List savings goals",
	RunE:  runGoalsList,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add TITLE TARGET",
	Short: "Create a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsAdd,
}

var goalsFundCmd = &cobra.Command{
	Use:   "fund ID AMOUNT",
	Short: "Add money to a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsFund,
}

func init() {
	goalsAddCmd.Flags().StringVar(&flagGoalDate, "date", "", "Target date (YYYY-MM-DD)")

	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsFundCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	goals, err := client.ListSavingsGoals(context.Background())
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		fmt.Println("No savings goals yet")
		return nil
	}

	fmt.Println()
	for _, g := range goals {
		fmt.Printf("  %s  %s\n", g.ID, g.Title)
		fmt.Printf("      %s of %s  %s\n",
			cli.FormatUSD(g.CurrentAmount),
			cli.FormatUSD(g.TargetAmount),
			cli.ProgressLine(g.ProgressClamped(), g.Progress(), 24))
		if !g.TargetDate.IsZero() {
			fmt.Printf("      target date %s\n", cli.FormatDate(g.TargetDate.Time))
		}
		fmt.Println()
	}
	return nil
}

func runGoalsAdd(_ *cobra.Command, args []string) error {
	target, err := strconv.ParseFloat(args[1], 64)
	if err != nil || target <= 0 {
		return fmt.Errorf("invalid target amount %q", args[1])
	}

	var targetDate time.Time
	if flagGoalDate != "" {
		targetDate, err = time.Parse("2006-01-02", flagGoalDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagGoalDate)
		}
	}

	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	g, err := client.CreateSavingsGoal(context.Background(), args[0], target, targetDate)
	if err != nil {
		return err
	}

	fmt.Printf("Created goal %q with target %s (%s)\n", g.Title, cli.FormatUSD(g.TargetAmount), g.ID)
	return nil
}

func runGoalsFund(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	g, err := client.AddToSavings(context.Background(), args[0], amount)
	if err != nil {
		return err
	}

	fmt.Printf("%q is now at %s (%s)\n", g.Title,
		cli.FormatUSD(g.CurrentAmount), cli.FormatProgressLabel(g.Progress()))
	return nil
}
