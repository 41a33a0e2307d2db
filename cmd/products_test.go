// ABOUTME: Tests for the products listing command
// ABOUTME: Verifies catalog output formatting and error handling

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
)

func TestRunProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("expected /products, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]client.Product{
			{ID: "p1", Name: "Tomato", Price: 3.5, Stock: 10, Category: "vegetable"},
			{ID: "p2", Name: "Sunflower", Price: 4, Stock: 0},
		})
	}))
	defer server.Close()

	var out bytes.Buffer
	code := runProducts(context.Background(), &out, client.New(server.URL, nil))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	output := out.String()
	for _, want := range []string{"Tomato", "Sunflower", "p1", "stock: 0", "category: vegetable"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q:\n%s", want, output)
		}
	}
}

func TestRunProducts_JSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.Product{{ID: "p1", Name: "Tomato"}})
	}))
	defer server.Close()

	jsonOutput = true
	defer func() { jsonOutput = false }()

	var out bytes.Buffer
	if code := runProducts(context.Background(), &out, client.New(server.URL, nil)); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	var products []client.Product
	if err := json.Unmarshal(out.Bytes(), &products); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestRunProducts_BackendError(t *testing.T) {
	var out bytes.Buffer
	code := runProducts(context.Background(), &out, client.New("http://localhost:1", nil))
	if code != 2 {
		t.Errorf("expected exit 2, got %d", code)
	}
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("expected error output, got: %s", out.String())
	}
}

func TestFormatProducts_Empty(t *testing.T) {
	if got := formatProducts(nil); got != "No products available." {
		t.Errorf("unexpected empty-catalog output: %q", got)
	}
}
