package cli

import (
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
	"github.com/sultanm/shopfront/pkg/shopapi"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office operations (requires ROLE_ADMIN)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Root pre-run wires the app; cobra only runs the
			// innermost PersistentPreRunE, so wire here too.
			if parent := cmd.Root(); parent.PersistentPreRunE != nil {
				if err := parent.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			if !app.Session.IsAdmin() {
				return pkgerrors.New(pkgerrors.CodeNotAuthenticated, "admin role required")
			}
			return nil
		},
	}

	cmd.AddCommand(
		newAdminProductCmd(),
		newAdminCategoryCmd(),
		newAdminUserCmd(),
	)
	return cmd
}

func newAdminProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}

	var input struct {
		name        string
		brand       string
		price       string
		inventory   int
		description string
		category    string
	}
	bindProductFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&input.name, "name", "", "Product name")
		c.Flags().StringVar(&input.brand, "brand", "", "Brand")
		c.Flags().StringVar(&input.price, "price", "", "Unit price, e.g. 19.99")
		c.Flags().IntVar(&input.inventory, "inventory", 0, "Units in stock")
		c.Flags().StringVar(&input.description, "description", "", "Description")
		c.Flags().StringVar(&input.category, "category", "", "Category name")
	}
	buildInput := func() (shopapi.ProductInput, error) {
		price, err := decimal.NewFromString(input.price)
		if err != nil {
			return shopapi.ProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "price must be a decimal number")
		}
		return shopapi.ProductInput{
			Name:        input.name,
			Brand:       input.brand,
			Price:       price,
			Inventory:   input.inventory,
			Description: input.description,
			Category:    shopapi.Category{Name: input.category},
		}, nil
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := buildInput()
			if err != nil {
				return err
			}
			product, err := app.API.AddProduct(cmd.Context(), payload)
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, []shopapi.Product{*product})
			return nil
		},
	}
	bindProductFlags(add)

	update := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := buildInput()
			if err != nil {
				return err
			}
			product, err := app.API.UpdateProduct(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, []shopapi.Product{*product})
			return nil
		},
	}
	bindProductFlags(update)

	remove := &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Product deleted.")
			return nil
		},
	}

	var imagePaths []string
	upload := &cobra.Command{
		Use:   "upload-images <product-id>",
		Short: "Attach image files to a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploads := make([]shopapi.ImageUpload, 0, len(imagePaths))
			for _, path := range imagePaths {
				file, err := os.Open(path)
				if err != nil {
					return err
				}
				defer file.Close()
				uploads = append(uploads, shopapi.ImageUpload{FileName: filepath.Base(path), Reader: file})
			}
			images, err := app.API.UploadImages(cmd.Context(), args[0], uploads)
			if err != nil {
				return err
			}
			for _, image := range images {
				cmd.Println(shopapi.ImageDownloadURL(app.Cfg.API.AssetBaseURL, image.DownloadURL))
			}
			return nil
		},
	}
	upload.Flags().StringSliceVar(&imagePaths, "file", nil, "Image file to upload (repeatable)")
	_ = upload.MarkFlagRequired("file")

	var replacePath string
	replaceImage := &cobra.Command{
		Use:   "replace-image <image-id>",
		Short: "Replace the file behind an existing image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(replacePath)
			if err != nil {
				return err
			}
			defer file.Close()

			upload := shopapi.ImageUpload{FileName: filepath.Base(replacePath), Reader: file}
			if err := app.API.UpdateImage(cmd.Context(), args[0], upload); err != nil {
				return err
			}
			cmd.Println("Image updated.")
			return nil
		},
	}
	replaceImage.Flags().StringVar(&replacePath, "file", "", "Replacement image file")
	_ = replaceImage.MarkFlagRequired("file")

	cmd.AddCommand(add, update, remove, upload, replaceImage)
	return cmd
}

func newAdminCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := app.API.AddCategory(cmd.Context(), shopapi.CategoryInput{Name: args[0]})
			if err != nil {
				return err
			}
			cmd.Printf("%-6d  %s\n", category.ID, category.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <category-id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := app.API.UpdateCategory(cmd.Context(), args[0], shopapi.CategoryInput{Name: args[1]})
			if err != nil {
				return err
			}
			cmd.Printf("%-6d  %s\n", category.ID, category.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Category deleted.")
			return nil
		},
	})

	return cmd
}

func newAdminUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.API.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			renderUsers(os.Stdout, users)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <user-id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.API.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderUsers(os.Stdout, []shopapi.User{*user})
			if len(user.Orders) > 0 {
				cmd.Printf("Orders: %d\n", len(user.Orders))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("User deleted.")
			return nil
		},
	})

	return cmd
}
