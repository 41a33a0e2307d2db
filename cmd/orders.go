// ABOUTME: Order commands: place an order from the cart and list order history
// ABOUTME: Orders are pay-on-delivery; placing one only needs a shipping address

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
	"time"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
	"github.com/spf13/cobra"
)

var (
	orderName    string
	orderEmail   string
	orderPhone   string
	orderAddress string
	orderCity    string
	orderState   string
	orderZip     string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place and review orders",
}

var orderPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Place an order from your cart",
	Long: `Place a pay-on-delivery order for everything in your cart.

Name and email default to your profile; phone, address, city, state, and
zip are required.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		sess := newSession()
		if exitCode := requireSession(os.Stdout, sess); exitCode != 0 {
			os.Exit(exitCode)
		}

		addr := buildShippingAddress(sess.Current())
		exitCode := runOrderPlace(ctx, os.Stdout, newClient(sess), addr)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		sess := newSession()
		if exitCode := requireSession(os.Stdout, sess); exitCode != 0 {
			os.Exit(exitCode)
		}

		exitCode := runOrderList(ctx, os.Stdout, newClient(sess))
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.AddCommand(orderPlaceCmd)
	orderCmd.AddCommand(orderListCmd)

	orderPlaceCmd.Flags().StringVar(&orderName, "name", "", "Recipient name (defaults to profile)")
	orderPlaceCmd.Flags().StringVar(&orderEmail, "email", "", "Contact email (defaults to profile)")
	orderPlaceCmd.Flags().StringVar(&orderPhone, "phone", "", "Contact phone")
	orderPlaceCmd.Flags().StringVar(&orderAddress, "address", "", "Street address")
	orderPlaceCmd.Flags().StringVar(&orderCity, "city", "", "City")
	orderPlaceCmd.Flags().StringVar(&orderState, "state", "", "State")
	orderPlaceCmd.Flags().StringVar(&orderZip, "zip", "", "Zip code")
}

// buildShippingAddress fills name/email from the profile when unset
func buildShippingAddress(user *session.User) client.ShippingAddress {
	addr := client.ShippingAddress{
		Name:    orderName,
		Email:   orderEmail,
		Phone:   orderPhone,
		Address: orderAddress,
		City:    orderCity,
		State:   orderState,
		ZipCode: orderZip,
	}
	if user != nil {
		if addr.Name == "" {
			addr.Name = user.Name
		}
		if addr.Email == "" {
			addr.Email = user.Email
		}
	}
	return addr
}

// validateShippingAddress reports the first missing required field
func validateShippingAddress(addr client.ShippingAddress) error {
	required := []struct {
		value, name string
	}{
		{addr.Name, "name"},
		{addr.Email, "email"},
		{addr.Phone, "phone"},
		{addr.Address, "address"},
		{addr.City, "city"},
		{addr.State, "state"},
		{addr.ZipCode, "zip"},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("missing required field: %s", f.name)
		}
	}
	return nil
}

// runOrderPlace validates the address client-side, then places the order
func runOrderPlace(ctx context.Context, w io.Writer, c *client.Client, addr client.ShippingAddress) int {
	if err := validateShippingAddress(addr); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	order, err := c.PlaceOrder(ctx, addr)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(order, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Order %s placed. Pay on delivery.\n", order.ID)
	return 0
}

// runOrderList prints the user's order history
func runOrderList(ctx context.Context, w io.Writer, c *client.Client) int {
	orders, err := c.MyOrders(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(orders, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatOrders(orders))
	return 0
}

// formatOrders renders order history for human readability
func formatOrders(orders []client.Order) string {
	if len(orders) == 0 {
		return "You haven't placed any orders yet."
	}

	var sb strings.Builder
	for i, order := range orders {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Order %s  [%s]", order.ID, order.Status))
		if order.DeliveryDate != "" {
			sb.WriteString("  delivery " + formatDeliveryDate(order.DeliveryDate))
		}
		sb.WriteString("\n")
		for _, item := range order.Items {
			name := item.Product.Name
			if name == "" {
				name = "Seed"
			}
			sb.WriteString(fmt.Sprintf("  %s  x%d  ₹%.2f\n", name, item.Quantity, item.Price))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatDeliveryDate shortens the backend's timestamp to a date
func formatDeliveryDate(raw string) string {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("2006-01-02")
	}
	return raw
}
