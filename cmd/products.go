// ABOUTME: Products command for browsing the seed catalog
// ABOUTME: Lists the catalog in human-readable or JSON form

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the seed catalog",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		sess := newSession()
		exitCode := runProducts(ctx, os.Stdout, newClient(sess))
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

// runProducts fetches and prints the catalog, returning an exit code
func runProducts(ctx context.Context, w io.Writer, c *client.Client) int {
	products, err := c.Products(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(products, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatProducts(products))
	return 0
}

// formatProducts renders a catalog listing for human readability
func formatProducts(products []client.Product) string {
	if len(products) == 0 {
		return "No products available."
	}

	var sb strings.Builder
	for i, p := range products {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s  ₹%.2f\n", p.Name, p.Price))
		if p.Description != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", p.Description))
		}
		sb.WriteString(fmt.Sprintf("  id: %s  stock: %d", p.ID, p.Stock))
		if p.Category != "" {
			sb.WriteString("  category: " + p.Category)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
