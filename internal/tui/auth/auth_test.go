// ABOUTME: Tests for the login and registration forms
// ABOUTME: Validates submitted payloads and cancellation

package auth

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLoginSubmit(t *testing.T) {
	f := New(ModeLogin)
	f.email = "asha@example.com"
	f.password = "secret"

	cmd := f.submit()
	msg, ok := cmd().(LoginSubmittedMsg)
	if !ok {
		t.Fatalf("expected LoginSubmittedMsg, got %T", cmd())
	}
	if msg.Email != "asha@example.com" || msg.Password != "secret" {
		t.Errorf("unexpected credentials: %+v", msg)
	}
}

func TestRegisterSubmit(t *testing.T) {
	f := New(ModeRegister)
	f.name = "Asha"
	f.email = "asha@example.com"
	f.password = "secret"
	f.soil = "loamy"
	f.water = "moderate"

	cmd := f.submit()
	msg, ok := cmd().(RegisterSubmittedMsg)
	if !ok {
		t.Fatalf("expected RegisterSubmittedMsg, got %T", cmd())
	}
	if msg.Request.Name != "Asha" || msg.Request.SoilType != "loamy" {
		t.Errorf("unexpected request: %+v", msg.Request)
	}
	if msg.Request.Climate != "" {
		t.Errorf("expected skipped climate to stay empty, got %q", msg.Request.Climate)
	}
}

func TestCancel(t *testing.T) {
	f := New(ModeLogin)

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command after esc")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Error("expected CancelledMsg after esc")
	}
}

func TestSetErrorResetsForm(t *testing.T) {
	f := New(ModeLogin)
	f.email = "asha@example.com"

	cmd := f.SetError("Invalid email or password")
	if cmd == nil {
		t.Fatal("expected an init command after reset")
	}
	if !strings.Contains(f.View(), "Invalid email or password") {
		t.Error("expected error message in view")
	}
	// Previously typed values survive the reset
	if f.email != "asha@example.com" {
		t.Errorf("expected email preserved, got %q", f.email)
	}
}

func TestValidateRequired(t *testing.T) {
	v := validateRequired("email")
	if err := v(""); err == nil {
		t.Error("expected error for empty value")
	}
	if err := v("   "); err == nil {
		t.Error("expected error for whitespace value")
	}
	if err := v("a@b.c"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
