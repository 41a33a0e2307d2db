// ABOUTME: Checkout flow as a bubbletea model
// ABOUTME: Uses huh forms with visual progress indicator for step navigation

package checkout

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/icons"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/styles"
)

// CompleteMsg is sent when the checkout finishes successfully
type CompleteMsg struct {
	Address client.ShippingAddress
}

// CancelledMsg is sent when the checkout is cancelled
type CancelledMsg struct{}

// Checkout manages the order placement flow as a bubbletea model
type Checkout struct {
	cart  *client.Cart
	form  *huh.Form
	step  int
	width int

	// Form field values
	name    string
	email   string
	phone   string
	address string
	city    string
	state   string
	zipCode string
	confirm bool
}

// Step names for progress indicator
var stepNames = []string{"Delivery Address", "Confirm Order"}

// New creates a checkout with contact fields prefilled from the profile
func New(cart *client.Cart, user *session.User) *Checkout {
	c := &Checkout{
		cart: cart,
		step: 1,
	}
	if user != nil {
		c.name = user.Name
		c.email = user.Email
	}

	c.form = c.createAddressForm()
	return c
}

func (c *Checkout) createAddressForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&c.name).
				Validate(required("name")),
			huh.NewInput().
				Title("Email").
				Value(&c.email).
				Validate(required("email")),
			huh.NewInput().
				Title("Phone").
				Placeholder("optional").
				Value(&c.phone),
			huh.NewInput().
				Title("Street address").
				Value(&c.address).
				Validate(required("address")),
			huh.NewInput().
				Title("City").
				Value(&c.city).
				Validate(required("city")),
			huh.NewInput().
				Title("State").
				Value(&c.state).
				Validate(required("state")),
			huh.NewInput().
				Title("ZIP code").
				CharLimit(10).
				Value(&c.zipCode).
				Validate(required("zip code")),
		).Title("Step 1: Delivery Address").
			Description("Where should we send your seeds?"),
	).WithTheme(styles.FormTheme())
}

func (c *Checkout) createConfirmForm() *huh.Form {
	total := 0.0
	count := 0
	if c.cart != nil {
		total = c.cart.Total
		count = len(c.cart.Items)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Place order for %d item(s), ₹%.2f?", count, total)).
				Description("Payment is collected on delivery").
				Affirmative("Place order").
				Negative("Back").
				Value(&c.confirm),
		).Title("Step 2: Confirm Order"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (c *Checkout) Init() tea.Cmd {
	return c.form.Init()
}

// Update implements tea.Model
func (c *Checkout) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		form, cmd := c.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			c.form = f
		}
		return c, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return c, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		return c.advanceStep()
	}

	return c, cmd
}

func (c *Checkout) advanceStep() (tea.Model, tea.Cmd) {
	switch c.step {
	case 1:
		c.step = 2
		c.form = c.createConfirmForm()
		return c, c.form.Init()

	case 2:
		if !c.confirm {
			// Back to the address step for edits
			c.step = 1
			c.form = c.createAddressForm()
			return c, c.form.Init()
		}

		addr := c.Address()
		return c, func() tea.Msg {
			return CompleteMsg{Address: addr}
		}
	}

	return c, nil
}

// Address returns the shipping address collected so far
func (c *Checkout) Address() client.ShippingAddress {
	return client.ShippingAddress{
		Name:    c.name,
		Email:   c.email,
		Phone:   c.phone,
		Address: c.address,
		City:    c.city,
		State:   c.state,
		ZipCode: c.zipCode,
	}
}

// SetWidth sets the checkout width for proper rendering
func (c *Checkout) SetWidth(width int) {
	c.width = width
}

// View implements tea.Model
func (c *Checkout) View() string {
	var sb strings.Builder

	// Progress indicator
	sb.WriteString(c.renderProgress())
	sb.WriteString("\n\n")

	// Form content
	sb.WriteString(c.form.View())

	return sb.String()
}

// renderProgress renders the step progress indicator
func (c *Checkout) renderProgress() string {
	width := c.width - 1
	if width < 60 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	// Build step indicators
	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		if stepNum < c.step {
			// Completed step
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		} else if stepNum == c.step {
			// Current step
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		} else {
			// Future step
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	stepsLine := strings.Join(steps, "    ")

	// Progress bar line format: "│  " + bar + " │" = 5 chars overhead
	barWidth := width - 5
	totalSteps := len(stepNames)
	filledWidth := (c.step * barWidth) / totalSteps
	emptyWidth := barWidth - filledWidth

	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", emptyWidth))
	progressBar := filledBar + emptyBar

	// Build panel with consistent width
	styledTitle := titleStyle.Render("Checkout")
	titleWidth := lipgloss.Width("Checkout")

	topFillWidth := max(0, width-5-titleWidth)
	topBorder := "┌─ " + styledTitle + " " + strings.Repeat("─", topFillWidth) + "┐"

	stepsLineWidth := lipgloss.Width(stepsLine)
	stepsPadding := max(0, width-4-stepsLineWidth)
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │"

	progressLinePadded := "│  " + progressBar + " │"

	bottomFillWidth := width - 2
	bottomBorder := "└" + strings.Repeat("─", bottomFillWidth) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
