// Package cmd implements the spendash CLI commands.
package cmd

import (
	"fmt"

	"spendash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    URL: %s\n", cfg.Server.URL)
	fmt.Println()

	fmt.Println("  [Auth]")
	if cfg.Auth.Token != "" {
		fmt.Printf("    Token:   %s\n", maskToken(cfg.Auth.Token))
	} else {
		fmt.Println("    Token:   not configured")
	}
	if cfg.Auth.Email != "" {
		fmt.Printf("    Account: %s\n", cfg.Auth.Email)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [TUI]")
	fmt.Printf("    Auto refresh:     %v\n", cfg.TUI.AutoRefresh)
	fmt.Printf("    Refresh interval: %ds\n", cfg.TUI.RefreshIntervalSec)
	fmt.Println()

	fmt.Printf("  Snapshot file: %s\n", config.SnapshotPath())

	return nil
}

func maskToken(token string) string {
	if len(token) > 12 {
		return token[:6] + "..." + token[len(token)-4:]
	}
	return "****"
}
