// ABOUTME: Recommend command for condition-filtered seed suggestions
// ABOUTME: Flags default to the logged-in user's stored growing conditions

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
	"github.com/spf13/cobra"
)

var (
	recommendSoil    string
	recommendClimate string
	recommendWater   string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend seeds for your growing conditions",
	Long: `Fetch seed recommendations filtered by soil type, climate, and water
availability. Conditions left unset fall back to the ones saved on your
profile at registration.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		sess := newSession()
		exitCode := runRecommend(ctx, os.Stdout, newClient(sess), sess)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringVar(&recommendSoil, "soil", "", "Soil type filter")
	recommendCmd.Flags().StringVar(&recommendClimate, "climate", "", "Climate filter")
	recommendCmd.Flags().StringVar(&recommendWater, "water", "", "Water availability filter")
}

// buildRecommendationQuery merges explicit filters with the stored profile
func buildRecommendationQuery(user *session.User, soil, climate, water string) client.RecommendationQuery {
	q := client.RecommendationQuery{
		SoilType:        soil,
		Climate:         climate,
		WaterConditions: water,
	}
	if user == nil {
		return q
	}
	if q.SoilType == "" {
		q.SoilType = user.SoilType
	}
	if q.Climate == "" {
		q.Climate = user.Climate
	}
	if q.WaterConditions == "" {
		q.WaterConditions = user.WaterConditions
	}
	return q
}

// runRecommend fetches filtered recommendations, returning an exit code
func runRecommend(ctx context.Context, w io.Writer, c *client.Client, sess *session.Manager) int {
	q := buildRecommendationQuery(sess.Current(), recommendSoil, recommendClimate, recommendWater)

	if q.SoilType == "" && q.Climate == "" && q.WaterConditions == "" {
		fmt.Fprintln(w, "Error: no growing conditions given; pass --soil/--climate/--water or register with a profile")
		return 1
	}

	products, err := c.Recommendations(ctx, q)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(products, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(products) == 0 {
		fmt.Fprintln(w, "No recommendations for those conditions.")
		return 0
	}

	fmt.Fprintf(w, "Recommended for soil=%s climate=%s water=%s:\n\n", q.SoilType, q.Climate, q.WaterConditions)
	fmt.Fprintln(w, formatProducts(products))
	return 0
}
