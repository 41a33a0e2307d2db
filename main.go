// ABOUTME: Entry point for the seed-store CLI
// ABOUTME: Command-line storefront client for the Seed Store backend

package main

import (
	"fmt"
	"os"

	"github.com/MadhumithraA1426/seed-store-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
