// ABOUTME: Main menu for TUI startup
// ABOUTME: Entries change depending on whether a shopper is signed in

package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/icons"
	"github.com/MadhumithraA1426/seed-store-cli/internal/tui/styles"
)

// Action is a menu entry the shopper can pick
type Action int

const (
	ActionBrowse Action = iota
	ActionRecommend
	ActionCart
	ActionOrders
	ActionLogin
	ActionRegister
	ActionLogout
	ActionQuit
)

// ActionSelectedMsg is sent when the shopper confirms an entry
type ActionSelectedMsg struct {
	Action Action
}

// CancelledMsg is sent when the shopper quits from the menu
type CancelledMsg struct{}

type entry struct {
	label  string
	icon   icons.Icon
	action Action
}

// Menu is the main menu component
type Menu struct {
	entries  []entry
	cursor   int
	userName string
	width    int
}

// New creates the menu for the current session state
func New(loggedIn bool, userName string) *Menu {
	entries := []entry{
		{label: "Browse products", icon: icons.Seed, action: ActionBrowse},
		{label: "Recommendations", icon: icons.Leaf, action: ActionRecommend},
	}

	if loggedIn {
		entries = append(entries,
			entry{label: "My cart", icon: icons.Cart, action: ActionCart},
			entry{label: "My orders", icon: icons.Package, action: ActionOrders},
			entry{label: "Log out", icon: icons.Logout, action: ActionLogout},
		)
	} else {
		entries = append(entries,
			entry{label: "Log in", icon: icons.Login, action: ActionLogin},
			entry{label: "Register", icon: icons.User, action: ActionRegister},
		)
	}

	entries = append(entries, entry{label: "Quit", icon: icons.Quit, action: ActionQuit})

	return &Menu{
		entries:  entries,
		userName: userName,
	}
}

// Entries returns the current entry labels in order
func (m *Menu) Entries() []string {
	labels := make([]string, len(m.entries))
	for i, e := range m.entries {
		labels[i] = e.label
	}
	return labels
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			action := m.entries[m.cursor].action
			if action == ActionQuit {
				return m, func() tea.Msg { return CancelledMsg{} }
			}
			return m, func() tea.Msg { return ActionSelectedMsg{Action: action} }
		case "q", "esc":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	return m, nil
}

// View implements tea.Model
func (m *Menu) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Seed Store"))
	b.WriteString("\n")
	if m.userName != "" {
		b.WriteString(styles.Subtitle.Render("Welcome back, " + m.userName))
	} else {
		b.WriteString(styles.Subtitle.Render("Everything your garden needs"))
	}
	b.WriteString("\n\n")

	selectedStyle := lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(styles.Text)

	for i, e := range m.entries {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor + e.icon.String() + " " + style.Render(e.label) + "\n")
	}

	return b.String()
}

// String returns the string representation of an Action
func (a Action) String() string {
	switch a {
	case ActionBrowse:
		return "browse"
	case ActionRecommend:
		return "recommend"
	case ActionCart:
		return "cart"
	case ActionOrders:
		return "orders"
	case ActionLogin:
		return "login"
	case ActionRegister:
		return "register"
	case ActionLogout:
		return "logout"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
