// ABOUTME: Root bubbletea model for the TUI storefront
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/auth"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/cartview"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/catalog"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/checkout"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/debuglog"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/icons"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/menu"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/orders"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/prefs"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenAuth
	ScreenProducts
	ScreenCart
	ScreenCheckout
	ScreenOrders
	ScreenPreferences
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping layout calculations
	contentPadding   = 4  // Horizontal padding consumed by the frame
)

// productsLoadedMsg is sent when the catalog or recommendations are loaded
type productsLoadedMsg struct {
	products    []client.Product
	recommended bool
	err         error
}

// cartLoadedMsg is sent when the cart is fetched
type cartLoadedMsg struct {
	cart *client.Cart
	err  error
}

// cartMutatedMsg is sent when an add, update, or remove completes
type cartMutatedMsg struct {
	added string // product name when the mutation was an add
	err   error
}

// authResultMsg is sent when a login or register call completes
type authResultMsg struct {
	resp *client.AuthResponse
	err  error
}

// ordersLoadedMsg is sent when order history is fetched
type ordersLoadedMsg struct {
	orders []client.Order
	err    error
}

// orderPlacedMsg is sent when checkout completes on the backend
type orderPlacedMsg struct {
	order *client.Order
	err   error
}

// App is the root model for the TUI
type App struct {
	client     *client.Client
	sess       *session.Manager
	screen     Screen
	width      int
	height     int
	err        error
	status     string
	loading    bool
	spin       spinner.Model
	cart       *client.Cart
	lastUpdate time.Time

	// Child models
	menu         *menu.Menu
	authForm     *auth.Form
	catalogView  *catalog.Catalog
	cartView     *cartview.CartView
	checkoutFlow *checkout.Checkout
	ordersView   *orders.Orders
	prefsForm    *prefs.Form
}

// New creates a new TUI application
func New(apiClient *client.Client, sess *session.Manager) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		client: apiClient,
		sess:   sess,
		screen: ScreenMenu,
		spin:   sp,
		menu:   buildMenu(sess),
	}
}

func buildMenu(sess *session.Manager) *menu.Menu {
	user := sess.Current()
	if user != nil {
		return menu.New(true, user.Name)
	}
	return menu.New(false, "")
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.cartView != nil {
			a.cartView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.checkoutFlow != nil {
			a.checkoutFlow.SetWidth(a.contentWidth())
		}
		// Forward to the active form for huh re-layout
		switch a.screen {
		case ScreenAuth:
			return a.updateAuth(msg)
		case ScreenCheckout:
			return a.updateCheckout(msg)
		case ScreenPreferences:
			return a.updatePrefs(msg)
		}
		if a.menu != nil {
			a.menu.Update(msg)
		}
		if a.catalogView != nil {
			a.catalogView.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.loading {
			return a, nil
		}
		a.status = ""

		// Route to current screen
		switch a.screen {
		case ScreenMenu:
			return a.updateMenu(msg)
		case ScreenAuth:
			return a.updateAuth(msg)
		case ScreenProducts:
			return a.updateProducts(msg)
		case ScreenCart:
			return a.updateCart(msg)
		case ScreenCheckout:
			return a.updateCheckout(msg)
		case ScreenOrders:
			return a.updateOrders(msg)
		case ScreenPreferences:
			return a.updatePrefs(msg)
		}

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case menu.ActionSelectedMsg:
		return a.handleMenuAction(msg.Action)

	case menu.CancelledMsg:
		return a, tea.Quit

	case auth.LoginSubmittedMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.doLogin(msg.Email, msg.Password))

	case auth.RegisterSubmittedMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.doRegister(msg.Request))

	case auth.CancelledMsg:
		a.screen = ScreenMenu
		a.authForm = nil
		return a, nil

	case authResultMsg:
		return a.handleAuthResult(msg)

	case prefs.SubmittedMsg:
		a.loading = true
		a.prefsForm = nil
		a.screen = ScreenProducts
		return a, tea.Batch(a.spin.Tick, a.loadRecommendations(msg.Query))

	case prefs.CancelledMsg:
		a.screen = ScreenMenu
		a.prefsForm = nil
		return a, nil

	case productsLoadedMsg:
		return a.handleProductsLoaded(msg)

	case catalog.AddToCartMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.addToCart(msg.Product, msg.Quantity))

	case catalog.CancelledMsg:
		a.screen = ScreenMenu
		a.catalogView = nil
		a.err = nil
		return a, nil

	case cartMutatedMsg:
		return a.handleCartMutated(msg)

	case cartLoadedMsg:
		return a.handleCartLoaded(msg)

	case cartview.QuantityChangedMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.updateCartItem(msg.ItemID, msg.Quantity))

	case cartview.ItemRemovedMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.removeCartItem(msg.ItemID))

	case cartview.CheckoutRequestedMsg:
		a.checkoutFlow = checkout.New(a.cart, a.sess.Current())
		a.checkoutFlow.SetWidth(a.contentWidth())
		a.screen = ScreenCheckout
		return a, a.checkoutFlow.Init()

	case cartview.CancelledMsg:
		a.screen = ScreenMenu
		a.cartView = nil
		a.err = nil
		return a, nil

	case checkout.CompleteMsg:
		a.loading = true
		a.checkoutFlow = nil
		return a, tea.Batch(a.spin.Tick, a.placeOrder(msg.Address))

	case checkout.CancelledMsg:
		a.screen = ScreenCart
		a.checkoutFlow = nil
		return a, nil

	case orderPlacedMsg:
		return a.handleOrderPlaced(msg)

	case ordersLoadedMsg:
		return a.handleOrdersLoaded(msg)

	default:
		// Forward unknown messages to active forms (needed for huh internals)
		switch a.screen {
		case ScreenAuth:
			return a.updateAuth(msg)
		case ScreenCheckout:
			return a.updateCheckout(msg)
		case ScreenPreferences:
			return a.updatePrefs(msg)
		}
	}

	return a, nil
}

func (a *App) handleMenuAction(action menu.Action) (tea.Model, tea.Cmd) {
	switch action {
	case menu.ActionBrowse:
		a.loading = true
		a.screen = ScreenProducts
		return a, tea.Batch(a.spin.Tick, a.loadProducts())

	case menu.ActionRecommend:
		a.prefsForm = prefs.New(a.sess.Current())
		a.screen = ScreenPreferences
		return a, a.prefsForm.Init()

	case menu.ActionCart:
		a.loading = true
		a.screen = ScreenCart
		return a, tea.Batch(a.spin.Tick, a.loadCart())

	case menu.ActionOrders:
		a.loading = true
		a.screen = ScreenOrders
		return a, tea.Batch(a.spin.Tick, a.loadOrders())

	case menu.ActionLogin:
		a.authForm = auth.New(auth.ModeLogin)
		a.screen = ScreenAuth
		return a, a.authForm.Init()

	case menu.ActionRegister:
		a.authForm = auth.New(auth.ModeRegister)
		a.screen = ScreenAuth
		return a, a.authForm.Init()

	case menu.ActionLogout:
		if err := a.sess.Logout(); err != nil {
			debuglog.Error("logout", err)
		}
		a.cart = nil
		a.cartView = nil
		a.menu = buildMenu(a.sess)
		a.status = "Logged out"
		return a, nil
	}

	return a, nil
}

func (a *App) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	a.loading = false

	if msg.err != nil {
		if a.authForm != nil {
			return a, a.authForm.SetError(msg.err.Error())
		}
		a.err = msg.err
		return a, nil
	}

	if err := a.sess.Login(msg.resp.Session()); err != nil {
		// Session still lives in memory for this run
		debuglog.Error("persist session", err)
	}

	a.authForm = nil
	a.menu = buildMenu(a.sess)
	a.screen = ScreenMenu
	if user := a.sess.Current(); user != nil {
		a.status = "Welcome, " + user.Name
	}
	return a, nil
}

func (a *App) handleProductsLoaded(msg productsLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false

	if msg.err != nil {
		a.err = msg.err
		return a, nil
	}

	title := "Products"
	if msg.recommended {
		title = "Recommended for you"
	}
	a.catalogView = catalog.New(title, msg.products, a.sess.Current() != nil)
	a.screen = ScreenProducts
	a.lastUpdate = time.Now()
	return a, nil
}

func (a *App) handleCartLoaded(msg cartLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false

	if msg.err != nil {
		a.err = msg.err
		return a, nil
	}

	a.cart = msg.cart
	if a.cartView == nil {
		a.cartView = cartview.New(msg.cart, a.contentWidth(), a.contentHeight())
	} else {
		a.cartView.SetCart(msg.cart)
	}
	a.screen = ScreenCart
	a.lastUpdate = time.Now()
	return a, nil
}

func (a *App) handleCartMutated(msg cartMutatedMsg) (tea.Model, tea.Cmd) {
	a.loading = false

	if msg.err != nil {
		if a.screen == ScreenProducts && a.catalogView != nil {
			a.catalogView.SetError(msg.err.Error())
			return a, nil
		}
		a.err = msg.err
		return a, nil
	}

	if msg.added != "" {
		a.status = "Added " + msg.added + " to cart"
	}

	// Cart contents changed on the backend, refresh when it is on screen
	if a.screen == ScreenCart {
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.loadCart())
	}
	return a, nil
}

func (a *App) handleOrderPlaced(msg orderPlacedMsg) (tea.Model, tea.Cmd) {
	a.loading = false

	if msg.err != nil {
		a.err = msg.err
		a.screen = ScreenCart
		return a, nil
	}

	a.cart = nil
	a.cartView = nil
	a.status = "Order placed, payment on delivery"
	a.loading = true
	a.screen = ScreenOrders
	return a, tea.Batch(a.spin.Tick, a.loadOrders())
}

func (a *App) handleOrdersLoaded(msg ordersLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false

	// Order history is non-critical, a failed fetch renders as empty
	if msg.err != nil {
		debuglog.Error("load orders", msg.err)
	}

	a.ordersView = orders.New(msg.orders, a.contentWidth())
	a.screen = ScreenOrders
	a.lastUpdate = time.Now()
	return a, nil
}

func (a *App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.menu == nil {
		return a, nil
	}
	model, cmd := a.menu.Update(msg)
	a.menu = model.(*menu.Menu)
	return a, cmd
}

func (a *App) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.authForm == nil {
		return a, nil
	}
	model, cmd := a.authForm.Update(msg)
	a.authForm = model.(*auth.Form)
	return a, cmd
}

func (a *App) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.catalogView == nil {
		// Load failed before the list was built
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "b", "esc":
			a.screen = ScreenMenu
			a.err = nil
		}
		return a, nil
	}
	if msg.String() == "q" {
		return a, tea.Quit
	}
	model, cmd := a.catalogView.Update(msg)
	a.catalogView = model.(*catalog.Catalog)
	return a, cmd
}

func (a *App) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.loading = true
		a.err = nil
		return a, tea.Batch(a.spin.Tick, a.loadCart())
	}
	if a.cartView == nil {
		if s := msg.String(); s == "b" || s == "esc" {
			a.screen = ScreenMenu
			a.err = nil
		}
		return a, nil
	}
	model, cmd := a.cartView.Update(msg)
	a.cartView = model.(*cartview.CartView)
	return a, cmd
}

func (a *App) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.checkoutFlow == nil {
		return a, nil
	}
	model, cmd := a.checkoutFlow.Update(msg)
	a.checkoutFlow = model.(*checkout.Checkout)
	return a, cmd
}

func (a *App) updateOrders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.loading = true
		a.err = nil
		return a, tea.Batch(a.spin.Tick, a.loadOrders())
	case "b", "esc":
		a.screen = ScreenMenu
		a.ordersView = nil
		a.err = nil
		return a, nil
	}
	return a, nil
}

func (a *App) updatePrefs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.prefsForm == nil {
		return a, nil
	}
	model, cmd := a.prefsForm.Update(msg)
	a.prefsForm = model.(*prefs.Form)
	return a, cmd
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	if a.loading {
		content = a.spin.View() + " Loading..."
	} else {
		switch a.screen {
		case ScreenMenu:
			content = a.viewMenu()
		case ScreenAuth:
			content = a.viewChild(a.viewAuth())
		case ScreenProducts:
			content = a.viewChild(a.viewProducts())
		case ScreenCart:
			content = a.viewChild(a.viewCart())
		case ScreenCheckout:
			content = a.viewChild(a.viewCheckout())
		case ScreenOrders:
			content = a.viewChild(a.viewOrders())
		case ScreenPreferences:
			content = a.viewChild(a.viewPreferences())
		default:
			content = a.viewMenu()
		}
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewMenu() string {
	var sb strings.Builder
	if a.menu != nil {
		sb.WriteString(a.menu.View())
	}
	if a.status != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusOK.Render(a.status))
	}
	return sb.String()
}

// viewChild renders a child screen, preferring a pending error
func (a *App) viewChild(body string) string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}
	return body
}

func (a *App) viewAuth() string {
	if a.authForm != nil {
		return a.authForm.View()
	}
	return ""
}

func (a *App) viewProducts() string {
	if a.catalogView != nil {
		return a.catalogView.View()
	}
	return ""
}

func (a *App) viewCart() string {
	if a.cartView != nil {
		return a.cartView.View()
	}
	return ""
}

func (a *App) viewCheckout() string {
	if a.checkoutFlow != nil {
		return a.checkoutFlow.View()
	}
	return ""
}

func (a *App) viewOrders() string {
	if a.ordersView != nil {
		return a.ordersView.View()
	}
	return ""
}

func (a *App) viewPreferences() string {
	if a.prefsForm != nil {
		return a.prefsForm.View()
	}
	return ""
}

// contentWidth calculates the width available for screen content
func (a *App) contentWidth() int {
	if a.width < minTerminalWidth {
		return minTerminalWidth - contentPadding
	}
	return a.width - contentPadding
}

// contentHeight calculates the height available for screen content
func (a *App) contentHeight() int {
	// Header, footer, and their surrounding newlines
	return a.height - 4
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	icon := icons.App.String()
	title := "Seed Store"

	leftText := fmt.Sprintf(" %s %s", icon, titleStyle.Render(title))

	// Signed-in shopper on the right
	rightText := ""
	if user := a.sess.Current(); user != nil {
		rightText = contextStyle.Render(user.Name) + " "
	}

	leftRendered := lipgloss.NewStyle().Render(leftText)
	rightRendered := lipgloss.NewStyle().Align(lipgloss.Right).Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	header := "╭─" + leftRendered + fill + rightRendered + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	// Build keyboard shortcuts based on current screen
	var shortcuts []string
	switch a.screen {
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenAuth, ScreenPreferences:
		shortcuts = []string{"↑↓ Move", "Enter Confirm", "Esc Cancel"}
	case ScreenProducts:
		shortcuts = []string{"↑↓ Navigate", "Enter Add", "b Back", "q Quit"}
	case ScreenCart:
		shortcuts = []string{"+/- Quantity", "x Remove", "c Checkout", "r Refresh", "b Back"}
	case ScreenCheckout:
		shortcuts = []string{"Tab Next", "Enter Confirm", "Esc Cancel"}
	case ScreenOrders:
		shortcuts = []string{"r Refresh", "b Back", "q Quit"}
	}

	// Build styled shortcuts
	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	// Right side status (last update time)
	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && (a.screen == ScreenProducts || a.screen == ScreenCart || a.screen == ScreenOrders) {
		elapsed := a.formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	footer := "╰─" + leftText + fill + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// loadProducts creates a command to fetch the catalog
func (a *App) loadProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := a.client.Products(context.Background())
		return productsLoadedMsg{products: products, err: err}
	}
}

// loadRecommendations fetches seeds matching the given growing conditions
func (a *App) loadRecommendations(q client.RecommendationQuery) tea.Cmd {
	return func() tea.Msg {
		products, err := a.client.Recommendations(context.Background(), q)
		return productsLoadedMsg{products: products, recommended: true, err: err}
	}
}

func (a *App) loadCart() tea.Cmd {
	return func() tea.Msg {
		cart, err := a.client.Cart(context.Background())
		return cartLoadedMsg{cart: cart, err: err}
	}
}

func (a *App) addToCart(product client.Product, quantity int) tea.Cmd {
	return func() tea.Msg {
		err := a.client.AddToCart(context.Background(), product.ID, quantity)
		if err != nil {
			return cartMutatedMsg{err: err}
		}
		return cartMutatedMsg{added: product.Name}
	}
}

func (a *App) updateCartItem(itemID string, quantity int) tea.Cmd {
	return func() tea.Msg {
		return cartMutatedMsg{err: a.client.UpdateCartItem(context.Background(), itemID, quantity)}
	}
}

func (a *App) removeCartItem(itemID string) tea.Cmd {
	return func() tea.Msg {
		return cartMutatedMsg{err: a.client.RemoveCartItem(context.Background(), itemID)}
	}
}

func (a *App) loadOrders() tea.Cmd {
	return func() tea.Msg {
		list, err := a.client.MyOrders(context.Background())
		return ordersLoadedMsg{orders: list, err: err}
	}
}

func (a *App) placeOrder(addr client.ShippingAddress) tea.Cmd {
	return func() tea.Msg {
		order, err := a.client.PlaceOrder(context.Background(), addr)
		return orderPlacedMsg{order: order, err: err}
	}
}

func (a *App) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := a.client.Login(context.Background(), email, password)
		return authResultMsg{resp: resp, err: err}
	}
}

func (a *App) doRegister(req client.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := a.client.Register(context.Background(), req)
		return authResultMsg{resp: resp, err: err}
	}
}

// Run starts the TUI
func Run(apiClient *client.Client, sess *session.Manager, configDir string) error {
	if err := debuglog.Init(configDir); err != nil {
		// Logging is best effort
		debuglog.Close()
	}
	defer debuglog.Close()

	app := New(apiClient, sess)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
