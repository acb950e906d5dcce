package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sultanm/shopfront/pkg/shopapi"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the shop backend",
		Long:  "Log in with an email and password. The issued token and identity are persisted and the cart is reconciled for the new user.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if email == "" {
				value, err := promptLine("Email: ")
				if err != nil {
					return err
				}
				email = value
			}
			if password == "" {
				value, err := promptLine("Password: ")
				if err != nil {
					return err
				}
				password = value
			}

			result, err := app.API.Login(ctx, shopapi.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			if err := app.Session.Login(ctx, result.Token, result.UserIDString(), result.Roles); err != nil {
				return err
			}
			if err := app.Cart.Reconcile(ctx, result.UserIDString()); err != nil {
				// Login succeeded; the cart view catches up on the
				// next reconciliation.
				app.Logg.Warn(ctx, "cart reconciliation after login failed")
			}

			fmt.Printf("Logged in as %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Erase the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Session.Snapshot()
			if !snap.Authenticated {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("User:  %s (%s)\n", snap.Email, snap.UserID)
			fmt.Printf("Roles: %s\n", strings.Join(snap.Roles, ", "))
			if app.Session.IsAdmin() {
				fmt.Println("Admin commands are available.")
			}
			return nil
		},
	}
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
