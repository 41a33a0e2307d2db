// ABOUTME: Root command for the seed-store CLI
// ABOUTME: Handles global flags, .env loading, and shared session wiring

package cmd

import (
	"os"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:5000/api"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "seed-store",
	Short: "Terminal storefront for the Seed Store",
	Long: `seed-store is a terminal client for the Seed Store catalog.

Browse seeds, get recommendations for your growing conditions, manage your
cart, and place pay-on-delivery orders. Use the subcommands for scripting,
or "seed-store browse" for the interactive storefront.

Environment Variables:
  SEED_STORE_API_URL     Backend API URL (default: http://localhost:5000/api)
  SEED_STORE_CONFIG_DIR  Session/config directory (default: ~/.config/seed-store)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env in the working directory; absence is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides SEED_STORE_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("SEED_STORE_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// configDir resolves the session directory, honoring the env override
func configDir() string {
	if dir := os.Getenv("SEED_STORE_CONFIG_DIR"); dir != "" {
		return dir
	}
	return session.DefaultConfigDir()
}

// newSession constructs the shared session manager, rehydrated from disk
func newSession() *session.Manager {
	return session.NewManager(session.NewStore(configDir()))
}

// newClient builds an API client that attaches the session's bearer token
func newClient(sess *session.Manager) *client.Client {
	return client.New(GetAPIURL(), sess.Token)
}
