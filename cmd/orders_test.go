// ABOUTME: Tests for order placement and history commands
// ABOUTME: Verifies address validation, profile defaults, and formatting

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

func fullAddress() client.ShippingAddress {
	return client.ShippingAddress{
		Name: "Asha", Email: "asha@example.com", Phone: "555",
		Address: "1 Garden Rd", City: "Chennai", State: "TN", ZipCode: "600001",
	}
}

func TestValidateShippingAddress(t *testing.T) {
	if err := validateShippingAddress(fullAddress()); err != nil {
		t.Errorf("expected complete address to validate: %v", err)
	}

	addr := fullAddress()
	addr.Phone = ""
	err := validateShippingAddress(addr)
	if err == nil || !strings.Contains(err.Error(), "phone") {
		t.Errorf("expected missing phone error, got %v", err)
	}
}

func TestBuildShippingAddress_ProfileDefaults(t *testing.T) {
	orderName, orderEmail = "", ""
	orderPhone, orderAddress, orderCity, orderState, orderZip = "555", "1 Garden Rd", "Chennai", "TN", "600001"

	addr := buildShippingAddress(&session.User{Name: "Asha", Email: "asha@example.com"})
	if addr.Name != "Asha" || addr.Email != "asha@example.com" {
		t.Errorf("expected profile defaults, got %+v", addr)
	}

	orderName = "Someone Else"
	addr = buildShippingAddress(&session.User{Name: "Asha"})
	if addr.Name != "Someone Else" {
		t.Errorf("expected explicit flag to win, got %s", addr.Name)
	}
	orderName = ""
}

func TestRunOrderPlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("expected POST /orders, got %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(client.Order{ID: "o1", Status: "pending"})
	}))
	defer server.Close()

	var out bytes.Buffer
	code := runOrderPlace(context.Background(), &out, client.New(server.URL, nil), fullAddress())
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Order o1 placed") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestRunOrderPlace_IncompleteAddress(t *testing.T) {
	var out bytes.Buffer
	code := runOrderPlace(context.Background(), &out, client.New("http://localhost:1", nil), client.ShippingAddress{})
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
}

func TestRunOrderList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/my-orders" {
			t.Errorf("expected /orders/my-orders, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]client.Order{
			{
				ID: "o1", Status: "shipped", DeliveryDate: "2026-09-10T00:00:00Z",
				Items: []client.OrderItem{
					{Product: client.Product{Name: "Tomato"}, Quantity: 2, Price: 3.5},
				},
			},
		})
	}))
	defer server.Close()

	var out bytes.Buffer
	code := runOrderList(context.Background(), &out, client.New(server.URL, nil))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	output := out.String()
	for _, want := range []string{"o1", "shipped", "2026-09-10", "Tomato", "x2"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q:\n%s", want, output)
		}
	}
}

func TestFormatOrders_Empty(t *testing.T) {
	if got := formatOrders(nil); !strings.Contains(got, "haven't placed any orders") {
		t.Errorf("unexpected empty output: %q", got)
	}
}

func TestFormatOrders_UnnamedProduct(t *testing.T) {
	orders := []client.Order{{
		ID: "o1", Status: "pending",
		Items: []client.OrderItem{{Quantity: 1, Price: 2}},
	}}
	if got := formatOrders(orders); !strings.Contains(got, "Seed") {
		t.Errorf("expected placeholder name for removed product, got: %s", got)
	}
}
