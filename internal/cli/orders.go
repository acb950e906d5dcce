package cli

import (
	"os"

	"github.com/spf13/cobra"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "View order history",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the current user's orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := app.Session.UserID()
			if userID == "" {
				return pkgerrors.New(pkgerrors.CodeNotAuthenticated, "")
			}
			orders, err := app.API.GetUserOrders(cmd.Context(), userID)
			if err != nil {
				return err
			}
			renderOrders(os.Stdout, orders)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := app.API.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderOrder(os.Stdout, order)
			return nil
		},
	})

	return cmd
}
