// ABOUTME: Product catalog TUI component for browsing and picking seeds
// ABOUTME: Shows a selectable product list with a quantity prompt for the cart

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
)

// State represents the current UI state
type state int

const (
	stateList state = iota
	stateQuantity
)

// AddToCartMsg is sent when the shopper confirms a product and quantity
type AddToCartMsg struct {
	Product  client.Product
	Quantity int
}

// CancelledMsg is sent when the shopper backs out of the catalog
type CancelledMsg struct{}

// Catalog is the product browsing component
type Catalog struct {
	title     string
	products  []client.Product
	canOrder  bool
	cursor    int
	state     state
	textInput textinput.Model
	err       string
	width     int
	height    int
}

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("149"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// New creates a catalog over the given products. canOrder controls whether
// items can be added to the cart.
func New(title string, products []client.Product, canOrder bool) *Catalog {
	ti := textinput.New()
	ti.Placeholder = "1"
	ti.CharLimit = 4
	ti.Width = 8

	return &Catalog{
		title:     title,
		products:  products,
		canOrder:  canOrder,
		state:     stateList,
		textInput: ti,
	}
}

// Init implements tea.Model
func (c *Catalog) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (c *Catalog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		return c, nil

	case tea.KeyMsg:
		// Clear error on any key press
		c.err = ""

		switch c.state {
		case stateList:
			return c.updateList(msg)
		case stateQuantity:
			return c.updateQuantity(msg)
		}
	}

	return c, nil
}

func (c *Catalog) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.products)-1 {
			c.cursor++
		}
	case "enter":
		return c.selectProduct()
	case "esc", "b":
		return c, func() tea.Msg { return CancelledMsg{} }
	}

	return c, nil
}

func (c *Catalog) selectProduct() (tea.Model, tea.Cmd) {
	if len(c.products) == 0 {
		return c, nil
	}
	if !c.canOrder {
		c.err = "Log in to add items to your cart"
		return c, nil
	}

	product := c.products[c.cursor]
	if product.Stock <= 0 {
		c.err = "Out of stock: " + product.Name
		return c, nil
	}

	c.state = stateQuantity
	c.textInput.SetValue("")
	c.textInput.Focus()
	return c, textinput.Blink
}

func (c *Catalog) updateQuantity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		c.state = stateList
		c.textInput.SetValue("")
		return c, nil
	case "enter":
		qty, err := parseQuantity(c.textInput.Value())
		if err != nil {
			c.err = err.Error()
			return c, nil
		}
		product := c.products[c.cursor]
		c.state = stateList
		c.textInput.SetValue("")
		return c, func() tea.Msg {
			return AddToCartMsg{Product: product, Quantity: qty}
		}
	}

	var cmd tea.Cmd
	c.textInput, cmd = c.textInput.Update(msg)
	return c, cmd
}

// parseQuantity parses the quantity input, empty meaning one
func parseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	qty, err := strconv.Atoi(s)
	if err != nil || qty < 1 {
		return 0, fmt.Errorf("quantity must be a positive number")
	}
	return qty, nil
}

// truncate shortens a description to fit the width, cutting on rune
// boundaries so multi-byte text never splits mid-sequence
func truncate(s string, width int) string {
	if width <= 10 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width-4 {
		return s
	}
	return string(runes[:width-7]) + "..."
}

// SetError sets an error message to display
func (c *Catalog) SetError(msg string) {
	c.err = msg
}

// Selected returns the product under the cursor
func (c *Catalog) Selected() *client.Product {
	if len(c.products) == 0 {
		return nil
	}
	return &c.products[c.cursor]
}

// View implements tea.Model
func (c *Catalog) View() string {
	if c.state == stateQuantity {
		return c.viewQuantity()
	}
	return c.viewList()
}

func (c *Catalog) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(c.title))
	b.WriteString("\n\n")

	if len(c.products) == 0 {
		b.WriteString(helpStyle.Render("No products available."))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range c.products {
		cursor := "  "
		style := normalStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedStyle
		}

		line := fmt.Sprintf("%s  %s", style.Render(p.Name), priceStyle.Render(fmt.Sprintf("₹%.2f", p.Price)))
		if p.Stock <= 0 {
			line += "  " + errorStyle.Render("(out of stock)")
		}
		b.WriteString(cursor + line + "\n")
	}

	// Detail pane for the selected product
	if sel := c.Selected(); sel != nil && sel.Description != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(truncate(sel.Description, c.width)))
		b.WriteString("\n")
	}

	if c.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + c.err))
	}

	return b.String()
}

func (c *Catalog) viewQuantity() string {
	var b strings.Builder

	product := c.products[c.cursor]
	b.WriteString(titleStyle.Render("Add to cart"))
	b.WriteString("\n\n")
	b.WriteString(normalStyle.Render(product.Name))
	b.WriteString("  ")
	b.WriteString(priceStyle.Render(fmt.Sprintf("₹%.2f", product.Price)))
	b.WriteString("\n\n")
	b.WriteString("Quantity: ")
	b.WriteString(c.textInput.View())

	if c.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + c.err))
	}

	return b.String()
}
