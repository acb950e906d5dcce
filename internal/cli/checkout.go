package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sultanm/shopfront/internal/checkout"
)

func newCheckoutCmd() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the cart and start payment",
		Long:  "Places an order from the current cart, requests a hosted payment session, and prints the payment URL. With --wait, a local listener waits for the payment redirect.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := checkout.NewService(app.API, app.Cart, app.Logg)

			result, err := svc.Begin(ctx, app.Session.UserID())
			if err != nil {
				return err
			}

			fmt.Printf("Order %d placed.\n", result.Order.OrderID)
			fmt.Printf("Complete payment at:\n  %s\n", result.SessionURL)

			if !wait {
				return nil
			}

			listener, err := checkout.NewListener(app.Cfg.Checkout, app.Registry, app.Logg)
			if err != nil {
				return err
			}
			defer listener.Close()

			fmt.Printf("Waiting for the payment redirect on http://%s ...\n", listener.Addr())
			cb, err := listener.Wait(ctx)
			if err != nil {
				return err
			}

			switch cb.Status {
			case checkout.StatusPaid:
				fmt.Println("Payment completed.")
			case checkout.StatusCancelled:
				fmt.Println("Payment cancelled.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the payment redirect on the local callback listener")
	return cmd
}
