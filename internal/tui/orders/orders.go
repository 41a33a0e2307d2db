// ABOUTME: Orders view showing the shopper's order history
// ABOUTME: Displays status badges, line items, and delivery dates

package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/styles"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/widgets"
)

// Orders displays order history
type Orders struct {
	orders []client.Order
	width  int
}

// New creates a new orders view
func New(orders []client.Order, width int) *Orders {
	return &Orders{
		orders: orders,
		width:  width,
	}
}

// View renders the order history
func (o *Orders) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Your Orders"))
	sb.WriteString("\n\n")

	if len(o.orders) == 0 {
		sb.WriteString(styles.Subtitle.Render("You haven't placed any orders yet."))
		sb.WriteString("\n")
		return lipgloss.NewStyle().Width(o.width).Render(sb.String())
	}

	for i, order := range o.orders {
		sb.WriteString(o.renderOrder(&order))
		if i < len(o.orders)-1 {
			sb.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(o.width).Render(sb.String())
}

func (o *Orders) renderOrder(order *client.Order) string {
	var sb strings.Builder

	sb.WriteString(widgets.OrderStatusBadge(order.Status))
	sb.WriteString("  ")
	sb.WriteString(styles.ValueStyle.Render("Order " + shortID(order.ID)))
	sb.WriteString("\n")

	total := 0.0
	for _, item := range order.Items {
		name := item.Product.Name
		if name == "" {
			name = "Seed"
		}
		lineTotal := item.Price * float64(item.Quantity)
		total += lineTotal
		sb.WriteString(fmt.Sprintf("  %s x%d  %s\n", name, item.Quantity,
			styles.PriceStyle.Render(fmt.Sprintf("₹%.2f", lineTotal))))
	}

	sb.WriteString("  ")
	sb.WriteString(styles.ValueStyle.Render(fmt.Sprintf("Total: ₹%.2f", total)))
	if d := formatDeliveryDate(order.DeliveryDate); d != "" {
		sb.WriteString(styles.Subtitle.Render("  delivery " + d))
	}
	sb.WriteString("\n")

	return sb.String()
}

// shortID trims a Mongo object id down to a readable suffix
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return "..." + id[len(id)-6:]
}

func formatDeliveryDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}
