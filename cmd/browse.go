// ABOUTME: Browse command that launches the interactive TUI storefront
// ABOUTME: Shares the same session and API client as the other commands

package cmd

import (
	"fmt"
	"os"

	"github.com/MadhumithraA1426/seed-store-cli/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive storefront",
	Long:  `Open the full-screen terminal storefront: browse seeds, get recommendations, manage your cart, and check out.`,
	Run: func(cmd *cobra.Command, args []string) {
		sess := newSession()
		if err := tui.Run(newClient(sess), sess, configDir()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
