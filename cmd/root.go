package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"spendash/internal/api"
	"spendash/internal/cli"
	"spendash/internal/config"
	"spendash/internal/dashboard"
	"spendash/internal/model"
	"spendash/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagServer string
	flagCached bool
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "spendash",
	Short: "Student expense dashboard CLI",
	Long:  "Track expenses, budgets, and savings goals against a Student Expense Manager server.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagServer, "server", "s", "", "Backend server URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagCached, "cached", false, "Render the last saved snapshot, skip the network")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output")
}

// loadConfig resolves the effective config. Precedence, lowest to
// highest: TOML file, .env values, real environment, flags. godotenv
// never overrides variables already set in the environment, and
// config.Load applies the environment on top of the file.
func loadConfig() config.Config {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if flagServer != "" {
		cfg.Server.URL = flagServer
	}
	return cfg
}

func newLogger() *slog.Logger {
	if flagQuiet {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func newClient(cfg config.Config) (*api.Client, error) {
	client, err := api.New(cfg.Server.URL, cfg.Auth.Token)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", cfg.Server.URL, err)
	}
	return client, nil
}

// openSnapshot opens the local snapshot store. A nil return means
// snapshot persistence is unavailable; callers treat that as best-effort.
func openSnapshot(log *slog.Logger) *store.Cache {
	cache, err := store.Open(config.SnapshotPath())
	if err != nil {
		log.Warn("snapshot store unavailable", "err", err)
		return nil
	}
	return cache
}

// fetchDashboard runs the four-request fetch cycle, or reads the local
// snapshot when --cached is set.
func fetchDashboard(ctx context.Context, log *slog.Logger) (*model.DashboardData, error) {
	cfg := loadConfig()

	if flagCached {
		cache := openSnapshot(log)
		if cache == nil {
			return nil, store.ErrNoSnapshot
		}
		defer cache.Close()
		return cache.LoadSnapshot()
	}

	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	data, err := dashboard.Load(ctx, client)
	if err != nil {
		return nil, err
	}

	if cache := openSnapshot(log); cache != nil {
		defer cache.Close()
		if err := cache.SaveSnapshot(data); err != nil {
			log.Warn("could not save snapshot", "err", err)
		}
	}
	return data, nil
}

func runOverview(_ *cobra.Command, _ []string) error {
	log := newLogger()

	data, err := fetchDashboard(context.Background(), log)
	if err != nil {
		fmt.Println()
		fmt.Println("  Failed to load dashboard data")
		log.Error("dashboard load failed", "err", err)
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDASH  Dashboard"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Total Spent", cli.FormatUSD(data.Summary.TotalExpenses)},
			{"Expenses", cli.FormatNumber(int64(data.Summary.ExpenseCount))},
			{"This Month", cli.FormatUSD(data.MonthToDate(time.Now()))},
			{"Budgets", cli.FormatNumber(int64(len(data.Budgets)))},
			{"Savings Goals", cli.FormatNumber(int64(len(data.Goals)))},
		},
	}))
	fmt.Println()

	recent := data.RecentExpenses(dashboard.RecentLimit)
	if len(recent) == 0 {
		fmt.Println("  No expenses yet")
	} else {
		rows := make([][]string, 0, len(recent))
		for _, e := range recent {
			rows = append(rows, []string{
				cli.FormatDate(e.Date.Time),
				cli.CategoryBadge(e.Category),
				e.Notes,
				cli.FormatUSD(e.Amount),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Recent Expenses",
			Headers: []string{"Date", "Category", "Note", "Amount"},
			Rows:    rows,
		}))
	}
	fmt.Println()

	if len(data.Goals) > 0 {
		fmt.Println("  Savings Goals")
		for _, g := range data.Goals {
			fmt.Printf("  %-24s %s\n", truncate(g.Title, 24), cli.ProgressLine(g.ProgressClamped(), g.Progress(), 24))
		}
		fmt.Println()
	}

	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
