package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sultanm/shopfront/pkg/shopapi"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}
	cmd.AddCommand(
		newProductsListCmd(),
		newProductsGetCmd(),
		newProductsSearchCmd(),
	)
	return cmd
}

func newProductsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.API.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, products)
			return nil
		},
	}
}

func newProductsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := app.API.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, []shopapi.Product{*product})
			if product.Description != "" {
				cmd.Println(product.Description)
			}
			for _, image := range product.Images {
				cmd.Println(shopapi.ImageDownloadURL(app.Cfg.API.AssetBaseURL, image.DownloadURL))
			}
			return nil
		},
	}
}

func newProductsSearchCmd() *cobra.Command {
	var brand, name, category string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products by brand, name, or category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				products []shopapi.Product
				err      error
			)
			switch {
			case category != "" && brand != "":
				products, err = app.API.GetProductsByCategoryAndBrand(ctx, category, brand)
			case brand != "" && name != "":
				products, err = app.API.GetProductsByBrandAndName(ctx, brand, name)
			case brand != "":
				products, err = app.API.GetProductsByBrand(ctx, brand)
			case name != "":
				products, err = app.API.GetProductsByName(ctx, name)
			case category != "":
				products, err = app.API.GetProductsByCategory(ctx, category)
			default:
				products, err = app.API.ListProducts(ctx)
			}
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, products)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Filter by brand")
	cmd.Flags().StringVar(&name, "name", "", "Filter by product name")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	return cmd
}
