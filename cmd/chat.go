package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat MESSAGE...",
	Short: "Ask the server's financial-advice assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	res, err := client.Chat(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(res.Response)
	return nil
}
