package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse product categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.API.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			renderCategories(os.Stdout, categories)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id-or-name>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := app.API.GetCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%-6d  %s\n", category.ID, category.Name)
			return nil
		},
	})

	return cmd
}
