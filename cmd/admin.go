// ABOUTME: Admin console: catalog management and order fulfillment
// ABOUTME: Guarded by the isAdmin flag; non-admins are refused immediately

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	productName        string
	productDescription string
	productPrice       float64
	productCategory    string
	productWater       string
	productSunlight    string
	productSeason      string
	productStock       int
	productSoilTypes   []string
	productClimates    []string
	productImagePath   string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage products and orders (admin only)",
}

var adminSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show catalog and order totals",
	Run: func(cmd *cobra.Command, args []string) {
		runAdminAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runAdminSummary(ctx, w, c)
		})
	},
}

var adminProductCmd = &cobra.Command{
	Use:   "product",
	Short: "Create, update, and delete products",
}

var adminProductAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		runAdminAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runProductAdd(ctx, w, c)
		})
	},
}

var adminProductUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Update an existing product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAdminAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runProductUpdate(ctx, w, c, args[0])
		})
	},
}

var adminProductDeleteCmd = &cobra.Command{
	Use:   "delete <product-id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAdminAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runProductDelete(ctx, w, c, args[0])
		})
	},
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List every customer order",
	Run: func(cmd *cobra.Command, args []string) {
		runAdminAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runAdminOrders(ctx, w, c)
		})
	},
}

var adminOrderStatusCmd = &cobra.Command{
	Use:   "order-status <order-id> <status>",
	Short: "Set an order's delivery status",
	Long:  `Set an order's status. Typical statuses: pending, processing, shipped, delivered.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runAdminAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runOrderStatus(ctx, w, c, args[0], args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminSummaryCmd)
	adminCmd.AddCommand(adminProductCmd)
	adminCmd.AddCommand(adminOrdersCmd)
	adminCmd.AddCommand(adminOrderStatusCmd)
	adminProductCmd.AddCommand(adminProductAddCmd)
	adminProductCmd.AddCommand(adminProductUpdateCmd)
	adminProductCmd.AddCommand(adminProductDeleteCmd)

	for _, cmd := range []*cobra.Command{adminProductAddCmd, adminProductUpdateCmd} {
		cmd.Flags().StringVar(&productName, "name", "", "Product name")
		cmd.Flags().StringVar(&productDescription, "description", "", "Product description")
		cmd.Flags().Float64Var(&productPrice, "price", 0, "Price")
		cmd.Flags().StringVar(&productCategory, "category", "", "Category")
		cmd.Flags().StringVar(&productWater, "water", "moderate", "Water conditions")
		cmd.Flags().StringVar(&productSunlight, "sunlight", "full", "Sunlight needs")
		cmd.Flags().StringVar(&productSeason, "season", "", "Growing season")
		cmd.Flags().IntVar(&productStock, "stock", 0, "Units in stock")
		cmd.Flags().StringSliceVar(&productSoilTypes, "soil", nil, "Suitable soil types")
		cmd.Flags().StringSliceVar(&productClimates, "climate", nil, "Suitable climates")
		cmd.Flags().StringVar(&productImagePath, "image", "", "Path to a product image")
	}
	adminProductAddCmd.MarkFlagRequired("name")
}

// runAdminAction wires the session and admin guard around a subcommand
func runAdminAction(fn func(ctx context.Context, w io.Writer, c *client.Client) int) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sess := newSession()
	if exitCode := requireAdmin(os.Stdout, sess); exitCode != 0 {
		os.Exit(exitCode)
	}

	if exitCode := fn(ctx, os.Stdout, newClient(sess)); exitCode != 0 {
		os.Exit(exitCode)
	}
}

// requireAdmin refuses non-admin users without contacting the backend
func requireAdmin(w io.Writer, sess *session.Manager) int {
	user := sess.Current()
	if user == nil {
		fmt.Fprintln(w, "Error: not logged in. Run \"seed-store login\" first.")
		return 2
	}
	if !user.IsAdmin {
		fmt.Fprintln(w, "Error: admin access required")
		return 2
	}
	return 0
}

// runAdminSummary fetches the catalog and all orders concurrently
func runAdminSummary(ctx context.Context, w io.Writer, c *client.Client) int {
	var (
		products []client.Product
		orders   []client.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = c.Products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = c.AllOrders(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	pending := 0
	for _, order := range orders {
		if order.Status != "delivered" {
			pending++
		}
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]int{
			"products":       len(products),
			"orders":         len(orders),
			"orders_pending": pending,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Products:        %d\n", len(products))
	fmt.Fprintf(w, "Orders:          %d\n", len(orders))
	fmt.Fprintf(w, "Orders pending:  %d\n", pending)
	return 0
}

// buildProductForm assembles the multipart form from the shared flags,
// opening the image file when one was given
func buildProductForm() (*client.ProductForm, func(), error) {
	form := &client.ProductForm{
		Name:            productName,
		Description:     productDescription,
		Price:           productPrice,
		Category:        productCategory,
		WaterConditions: productWater,
		Sunlight:        productSunlight,
		GrowingSeason:   productSeason,
		Stock:           productStock,
		SoilType:        productSoilTypes,
		Climate:         productClimates,
	}

	cleanup := func() {}
	if productImagePath != "" {
		f, err := os.Open(productImagePath)
		if err != nil {
			return nil, cleanup, err
		}
		form.Image = f
		form.ImageName = filepath.Base(productImagePath)
		cleanup = func() { f.Close() }
	}

	return form, cleanup, nil
}

func runProductAdd(ctx context.Context, w io.Writer, c *client.Client) int {
	form, cleanup, err := buildProductForm()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	defer cleanup()

	product, err := c.CreateProduct(ctx, form)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Created product %s (%s)\n", product.Name, product.ID)
	return 0
}

func runProductUpdate(ctx context.Context, w io.Writer, c *client.Client, id string) int {
	form, cleanup, err := buildProductForm()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	defer cleanup()

	product, err := c.UpdateProduct(ctx, id, form)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Updated product %s\n", product.ID)
	return 0
}

func runProductDelete(ctx context.Context, w io.Writer, c *client.Client, id string) int {
	if err := c.DeleteProduct(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Deleted product %s\n", id)
	return 0
}

// runAdminOrders lists every order with its customer
func runAdminOrders(ctx context.Context, w io.Writer, c *client.Client) int {
	orders, err := c.AllOrders(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(orders, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return 0
	}

	var sb strings.Builder
	for _, order := range orders {
		customer := ""
		if order.User != nil {
			customer = "  " + order.User.Name
		}
		sb.WriteString(fmt.Sprintf("%s  [%s]%s  %d items\n", order.ID, order.Status, customer, len(order.Items)))
	}
	fmt.Fprint(w, sb.String())
	return 0
}

func runOrderStatus(ctx context.Context, w io.Writer, c *client.Client, orderID, status string) int {
	if err := c.UpdateOrderStatus(ctx, orderID, status); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Order %s set to %s\n", orderID, status)
	return 0
}
