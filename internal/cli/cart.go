package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCart(cmd)
		},
	}

	cmd.AddCommand(
		newCartShowCmd(),
		newCartAddCmd(),
		newCartRemoveCmd(),
		newCartUpdateCmd(),
		newCartClearCmd(),
	)
	return cmd
}

func newCartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Reconcile and print the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCart(cmd)
		},
	}
}

func newCartAddCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.AddItem(cmd.Context(), app.Session.UserID(), args[0], quantity); err != nil {
				return err
			}
			renderCart(os.Stdout, app.Cart.Snapshot())
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "Quantity to add")
	return cmd
}

func newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.RemoveItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			renderCart(os.Stdout, app.Cart.Snapshot())
			return nil
		},
	}
}

func newCartUpdateCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Change a line item's quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.UpdateQuantity(cmd.Context(), args[0], quantity); err != nil {
				return err
			}
			renderCart(os.Stdout, app.Cart.Snapshot())
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "New quantity")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

func newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Clear(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("Cart cleared.")
			return nil
		},
	}
}

func showCart(cmd *cobra.Command) error {
	if err := app.Cart.Reconcile(cmd.Context(), app.Session.UserID()); err != nil {
		return err
	}
	renderCart(os.Stdout, app.Cart.Snapshot())
	return nil
}
