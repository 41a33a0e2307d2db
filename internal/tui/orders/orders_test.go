// ABOUTME: Tests for the orders view
// ABOUTME: Validates rendering of status badges, totals, and empty history

package orders

import (
	"strings"
	"testing"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
)

func TestOrdersViewEmpty(t *testing.T) {
	o := New(nil, 80)

	if !strings.Contains(o.View(), "You haven't placed any orders yet.") {
		t.Error("expected empty-history message")
	}
}

func TestOrdersViewRendersOrders(t *testing.T) {
	list := []client.Order{
		{
			ID:     "64f1aa00c3b7d9e812345678",
			Status: "delivered",
			Items: []client.OrderItem{
				{Product: client.Product{Name: "Tomato Seeds"}, Quantity: 2, Price: 49.5},
				{Quantity: 1, Price: 25.0},
			},
			DeliveryDate: "2026-08-20T10:00:00Z",
		},
		{
			ID:     "64f1aa00c3b7d9e812349999",
			Status: "pending",
			Items: []client.OrderItem{
				{Product: client.Product{Name: "Basil Seeds"}, Quantity: 1, Price: 25.0},
			},
		},
	}

	view := New(list, 100).View()

	if !strings.Contains(view, "DELIVERED") {
		t.Error("expected delivered badge")
	}
	if !strings.Contains(view, "PENDING") {
		t.Error("expected pending badge")
	}
	if !strings.Contains(view, "Tomato Seeds x2") {
		t.Error("expected line item with quantity")
	}
	// Unnamed products fall back to a placeholder
	if !strings.Contains(view, "Seed x1") {
		t.Error("expected placeholder name for unnamed product")
	}
	// 2*49.5 + 25 = 124
	if !strings.Contains(view, "Total: ₹124.00") {
		t.Error("expected order total")
	}
	if !strings.Contains(view, "2026-08-20") {
		t.Error("expected formatted delivery date")
	}
	// Object ids are shortened
	if !strings.Contains(view, "...345678") {
		t.Error("expected shortened order id")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("abc123"); got != "abc123" {
		t.Errorf("expected short ids unchanged, got %q", got)
	}
	if got := shortID("64f1aa00c3b7d9e812345678"); got != "...345678" {
		t.Errorf("expected trimmed id, got %q", got)
	}
}

func TestFormatDeliveryDate(t *testing.T) {
	if got := formatDeliveryDate(""); got != "" {
		t.Errorf("expected empty for missing date, got %q", got)
	}
	if got := formatDeliveryDate("2026-08-20T10:00:00Z"); got != "2026-08-20" {
		t.Errorf("expected date-only format, got %q", got)
	}
	if got := formatDeliveryDate("soon"); got != "soon" {
		t.Errorf("expected unparseable dates passed through, got %q", got)
	}
}
