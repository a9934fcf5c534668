package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"spendash/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the access token",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the server",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
}

func promptCredentials(email, password *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.edu").
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("enter a valid email address")
					}
					return nil
				}).
				Value(email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}).
				Value(password),
		),
	).Run()
}

func runLogin(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	var email, password string
	email = cfg.Auth.Email
	if err := promptCredentials(&email, &password); err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	res, err := client.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg.Auth.Token = res.AccessToken
	cfg.Auth.Email = res.User.Email
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("could not save config: %w", err)
	}

	fmt.Printf("Signed in as %s\n", res.User.Email)
	return nil
}

func runRegister(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	var email, name, password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.edu").
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("enter a valid email address")
					}
					return nil
				}).
				Value(&email),
			huh.NewInput().
				Title("Name").
				Value(&name),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if len(s) < 6 {
						return errors.New("password must be at least 6 characters")
					}
					return nil
				}).
				Value(&password),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	user, err := client.Register(context.Background(), email, name, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Account created for %s. Run `spendash login` to sign in.\n", user.Email)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if cfg.Auth.Token == "" {
		fmt.Println("Not signed in")
		return nil
	}
	cfg.Auth.Token = ""
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("could not save config: %w", err)
	}
	fmt.Println("Signed out")
	return nil
}
