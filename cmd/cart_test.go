// ABOUTME: Tests for the cart subcommands
// ABOUTME: Verifies the session guard, validation, and output formatting

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
)

func TestRequireSession(t *testing.T) {
	sess := testSession(t)

	var out bytes.Buffer
	if code := requireSession(&out, sess); code != 2 {
		t.Errorf("expected exit 2 without session, got %d", code)
	}
	if !strings.Contains(out.String(), "not logged in") {
		t.Errorf("unexpected output: %s", out.String())
	}

	sess.Login(session.Session{User: &session.User{Name: "A"}, Token: "t"})
	if code := requireSession(&out, sess); code != 0 {
		t.Errorf("expected exit 0 with session, got %d", code)
	}
}

func TestRunCartShow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.Cart{
			Items: []client.CartItem{
				{ID: "i1", Product: client.Product{Name: "Tomato", Price: 3}, Quantity: 2},
			},
			Total: 6,
		})
	}))
	defer server.Close()

	var out bytes.Buffer
	code := runCartShow(context.Background(), &out, client.New(server.URL, nil))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	output := out.String()
	if !strings.Contains(output, "Tomato") || !strings.Contains(output, "x2") {
		t.Errorf("expected cart line, got: %s", output)
	}
	if !strings.Contains(output, "Total: ₹6.00") {
		t.Errorf("expected total, got: %s", output)
	}
}

func TestFormatCart_Empty(t *testing.T) {
	if got := formatCart(&client.Cart{}); got != "Your cart is empty." {
		t.Errorf("unexpected empty-cart output: %q", got)
	}
}

func TestRunCartAdd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/cart/add" {
			t.Errorf("expected POST /cart/add, got %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	var out bytes.Buffer
	if code := runCartAdd(context.Background(), &out, client.New(server.URL, nil), "p1", 1); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	if code := runCartAdd(context.Background(), &out, client.New(server.URL, nil), "p1", 0); code != 1 {
		t.Errorf("expected exit 1 for zero quantity, got %d", code)
	}
}

func TestRunCartUpdate_RejectsZeroQuantity(t *testing.T) {
	var out bytes.Buffer
	code := runCartUpdate(context.Background(), &out, client.New("http://localhost:1", nil), "i1", 0)
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "cart remove") {
		t.Errorf("expected hint to use cart remove, got: %s", out.String())
	}
}

func TestRunCartRemove(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/cart/remove/i1" {
			t.Errorf("expected DELETE /cart/remove/i1, got %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	var out bytes.Buffer
	if code := runCartRemove(context.Background(), &out, client.New(server.URL, nil), "i1"); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
}
