// ABOUTME: About command describing the store and its recommendation system
// ABOUTME: Static content, no backend call

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Learn about the Seed Store",
	Run: func(cmd *cobra.Command, args []string) {
		runAbout(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(w io.Writer) int {
	fmt.Fprintln(w, `About Seed Store

Seed Store helps gardeners and plant enthusiasts grow beautiful, healthy
plants. Every garden is unique, so we offer personalized seed
recommendations based on your specific growing conditions.

What we offer:
  - A diverse selection of seeds for vegetables, flowers, and herbs
  - Recommendations matched to your soil type, climate, and water supply
  - Carefully selected seeds with high germination rates
  - Easy ordering with payment collected on delivery

How recommendations work:
  Soil type   clay, sandy, loamy, silt, chalky, or peaty
  Climate     tropical, temperate, arid, continental, or polar
  Water       low, moderate, or high availability

Set your growing conditions with "seed-store register" or pass them to
"seed-store recommend" directly.`)
	return 0
}
