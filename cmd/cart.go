// ABOUTME: Cart commands: show, add, update, remove
// ABOUTME: All cart operations require an active session

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
	"github.com/spf13/cobra"
)

var (
	cartAddQuantity    int
	cartUpdateQuantity int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents",
	Run: func(cmd *cobra.Command, args []string) {
		runCartAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runCartShow(ctx, w, c)
		})
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runCartAdd(ctx, w, c, args[0], cartAddQuantity)
		})
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Change the quantity of a cart item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runCartUpdate(ctx, w, c, args[0], cartUpdateQuantity)
		})
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartAction(func(ctx context.Context, w io.Writer, c *client.Client) int {
			return runCartRemove(ctx, w, c, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)

	cartAddCmd.Flags().IntVar(&cartAddQuantity, "quantity", 1, "Quantity to add")
	cartUpdateCmd.Flags().IntVar(&cartUpdateQuantity, "quantity", 1, "New quantity")
}

// runCartAction wires the shared session guard around a cart operation
func runCartAction(fn func(ctx context.Context, w io.Writer, c *client.Client) int) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sess := newSession()
	if exitCode := requireSession(os.Stdout, sess); exitCode != 0 {
		os.Exit(exitCode)
	}

	if exitCode := fn(ctx, os.Stdout, newClient(sess)); exitCode != 0 {
		os.Exit(exitCode)
	}
}

// requireSession refuses commands that need a logged-in user
func requireSession(w io.Writer, sess *session.Manager) int {
	if sess.Current() == nil {
		fmt.Fprintln(w, "Error: not logged in. Run \"seed-store login\" first.")
		return 2
	}
	return 0
}

func runCartShow(ctx context.Context, w io.Writer, c *client.Client) int {
	cart, err := c.Cart(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(cart, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatCart(cart))
	return 0
}

// formatCart renders the cart lines and total
func formatCart(cart *client.Cart) string {
	if cart == nil || len(cart.Items) == 0 {
		return "Your cart is empty."
	}

	var sb strings.Builder
	for _, item := range cart.Items {
		sb.WriteString(fmt.Sprintf("%s  x%d  ₹%.2f  (item %s)\n",
			item.Product.Name, item.Quantity, item.Product.Price*float64(item.Quantity), item.ID))
	}
	sb.WriteString(fmt.Sprintf("\nTotal: ₹%.2f", cart.Total))
	return sb.String()
}

func runCartAdd(ctx context.Context, w io.Writer, c *client.Client, productID string, quantity int) int {
	if quantity < 1 {
		fmt.Fprintln(w, "Error: quantity must be at least 1")
		return 1
	}
	if err := c.AddToCart(ctx, productID, quantity); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Added to cart")
	return 0
}

func runCartUpdate(ctx context.Context, w io.Writer, c *client.Client, itemID string, quantity int) int {
	if quantity < 1 {
		fmt.Fprintln(w, "Error: quantity must be at least 1; use \"cart remove\" to drop an item")
		return 1
	}
	if err := c.UpdateCartItem(ctx, itemID, quantity); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Cart updated")
	return 0
}

func runCartRemove(ctx context.Context, w io.Writer, c *client.Client, itemID string) int {
	if err := c.RemoveCartItem(ctx, itemID); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Removed from cart")
	return 0
}
