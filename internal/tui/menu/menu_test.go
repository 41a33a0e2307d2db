// ABOUTME: Tests for the main menu
// ABOUTME: Validates menu rendering and selection behavior

package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuEntriesLoggedOut(t *testing.T) {
	m := New(false, "")

	labels := m.Entries()
	if len(labels) != 5 {
		t.Fatalf("expected 5 entries, got %d: %v", len(labels), labels)
	}

	if labels[0] != "Browse products" {
		t.Errorf("expected first entry 'Browse products', got %s", labels[0])
	}
	for _, l := range labels {
		if l == "My cart" || l == "My orders" || l == "Log out" {
			t.Errorf("unexpected signed-in entry %q when logged out", l)
		}
	}
}

func TestMenuEntriesLoggedIn(t *testing.T) {
	m := New(true, "Asha")

	labels := strings.Join(m.Entries(), ",")
	for _, want := range []string{"My cart", "My orders", "Log out"} {
		if !strings.Contains(labels, want) {
			t.Errorf("expected entry %q when logged in, got %s", want, labels)
		}
	}
	if strings.Contains(labels, "Log in") || strings.Contains(labels, "Register") {
		t.Errorf("unexpected signed-out entry when logged in: %s", labels)
	}
}

func TestMenuSelection(t *testing.T) {
	m := New(false, "")

	// Move to second entry and confirm
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after enter")
	}

	msg := cmd()
	selected, ok := msg.(ActionSelectedMsg)
	if !ok {
		t.Fatalf("expected ActionSelectedMsg, got %T", msg)
	}
	if selected.Action != ActionRecommend {
		t.Errorf("expected ActionRecommend, got %v", selected.Action)
	}
}

func TestMenuQuit(t *testing.T) {
	m := New(false, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a command after q")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Error("expected CancelledMsg after q")
	}
}

func TestMenuViewGreeting(t *testing.T) {
	view := New(true, "Asha").View()
	if !strings.Contains(view, "Welcome back, Asha") {
		t.Error("expected greeting with user name")
	}

	view = New(false, "").View()
	if strings.Contains(view, "Welcome back") {
		t.Error("expected no greeting when logged out")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionBrowse, "browse"},
		{ActionRecommend, "recommend"},
		{ActionCart, "cart"},
		{ActionOrders, "orders"},
		{ActionLogin, "login"},
		{ActionRegister, "register"},
		{ActionLogout, "logout"},
		{ActionQuit, "quit"},
		{Action(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.action.String(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
