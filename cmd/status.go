package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check server reachability and sign-in state",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("  Server: %s\n", client.BaseURL())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	if err := client.Health(ctx); err != nil {
		fmt.Println("  Status: unreachable")
		return err
	}
	fmt.Printf("  Status: ok (%dms)\n", time.Since(start).Milliseconds())

	if cfg.Auth.Token == "" {
		fmt.Println("  Account: not signed in (run `spendash login`)")
	} else if cfg.Auth.Email != "" {
		fmt.Printf("  Account: %s\n", cfg.Auth.Email)
	} else {
		fmt.Println("  Account: signed in")
	}

	return nil
}
