package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sultanm/shopfront/pkg/shopapi"
)

func newRegisterCmd() *cobra.Command {
	var firstName, lastName, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, field := range []struct {
				value  *string
				prompt string
			}{
				{&firstName, "First name: "},
				{&lastName, "Last name: "},
				{&email, "Email: "},
				{&password, "Password: "},
			} {
				if *field.value != "" {
					continue
				}
				value, err := promptLine(field.prompt)
				if err != nil {
					return err
				}
				*field.value = value
			}

			user, err := app.API.CreateUser(cmd.Context(), shopapi.CreateUserRequest{
				FirstName: firstName,
				LastName:  lastName,
				Email:     email,
				Password:  password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Account created for %s. Log in with `shopctl login --email %s`.\n", user.Email, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name (prompted if omitted)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name (prompted if omitted)")
	cmd.Flags().StringVar(&email, "email", "", "Email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")
	return cmd
}
