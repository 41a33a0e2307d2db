// ABOUTME: Cart component displaying the shopper's current cart
// ABOUTME: Supports quantity changes, removal, and launching checkout

package cartview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/styles"
)

// QuantityChangedMsg is sent when the shopper bumps a line's quantity
type QuantityChangedMsg struct {
	ItemID   string
	Quantity int
}

// ItemRemovedMsg is sent when the shopper removes a line
type ItemRemovedMsg struct {
	ItemID string
}

// CheckoutRequestedMsg is sent when the shopper starts checkout
type CheckoutRequestedMsg struct{}

// CancelledMsg is sent when the shopper leaves the cart
type CancelledMsg struct{}

// CartView displays and edits the cart
type CartView struct {
	cart   *client.Cart
	cursor int
	width  int
	height int
}

// New creates a cart view over the given cart
func New(cart *client.Cart, width, height int) *CartView {
	return &CartView{
		cart:   cart,
		width:  width,
		height: height,
	}
}

// SetCart replaces the cart contents after a refresh
func (v *CartView) SetCart(cart *client.Cart) {
	v.cart = cart
	if v.cart != nil && v.cursor >= len(v.cart.Items) {
		v.cursor = len(v.cart.Items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// SetSize updates the view dimensions
func (v *CartView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Init implements tea.Model
func (v *CartView) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *CartView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	itemCount := 0
	if v.cart != nil {
		itemCount = len(v.cart.Items)
	}

	switch key.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < itemCount-1 {
			v.cursor++
		}
	case "+", "=":
		if item := v.selected(); item != nil {
			id, qty := item.ID, item.Quantity+1
			return v, func() tea.Msg { return QuantityChangedMsg{ItemID: id, Quantity: qty} }
		}
	case "-":
		if item := v.selected(); item != nil && item.Quantity > 1 {
			id, qty := item.ID, item.Quantity-1
			return v, func() tea.Msg { return QuantityChangedMsg{ItemID: id, Quantity: qty} }
		}
	case "x", "delete":
		if item := v.selected(); item != nil {
			id := item.ID
			return v, func() tea.Msg { return ItemRemovedMsg{ItemID: id} }
		}
	case "c", "enter":
		if itemCount > 0 {
			return v, func() tea.Msg { return CheckoutRequestedMsg{} }
		}
	case "esc", "b":
		return v, func() tea.Msg { return CancelledMsg{} }
	}

	return v, nil
}

func (v *CartView) selected() *client.CartItem {
	if v.cart == nil || len(v.cart.Items) == 0 {
		return nil
	}
	return &v.cart.Items[v.cursor]
}

// View renders the cart
func (v *CartView) View() string {
	if v.cart == nil {
		return styles.Subtitle.Render("Loading cart...")
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Your Cart"))
	sb.WriteString("\n\n")

	if len(v.cart.Items) == 0 {
		sb.WriteString(styles.Subtitle.Render("Your cart is empty."))
		sb.WriteString("\n")
		return v.frame(sb.String())
	}

	selectedStyle := lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(styles.Text)

	for i, item := range v.cart.Items {
		cursor := "  "
		style := normalStyle
		if i == v.cursor {
			cursor = "> "
			style = selectedStyle
		}
		line := fmt.Sprintf("%s x%d  %s",
			style.Render(item.Product.Name),
			item.Quantity,
			styles.PriceStyle.Render(fmt.Sprintf("₹%.2f", item.Product.Price*float64(item.Quantity))))
		sb.WriteString(cursor + line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(styles.ValueStyle.Render(fmt.Sprintf("Total: ₹%.2f", v.cart.Total)))
	sb.WriteString("\n")

	return v.frame(sb.String())
}

func (v *CartView) frame(content string) string {
	return lipgloss.NewStyle().
		Width(v.width).
		Height(v.height).
		Render(content)
}
