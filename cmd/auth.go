// ABOUTME: Authentication commands: login, register, logout, whoami
// ABOUTME: Installs and clears the durable session used by all other commands

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
	"golang.org/x/term"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPassword string
	registerSoil     string
	registerClimate  string
	registerWater    string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the Seed Store",
	Long: `Authenticate against the Seed Store backend and save the session.

The password is read from --password, or prompted for without echo when
the flag is omitted.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		password := loginPassword
		if password == "" {
			p, err := promptPassword(os.Stdout)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
			password = p
		}

		sess := newSession()
		exitCode := runLogin(ctx, os.Stdout, newClient(sess), sess, loginEmail, password)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Seed Store account",
	Long: `Register a new account and log in with it.

Soil type, climate, and water availability are optional; when set they
seed the recommendation filters.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		password := registerPassword
		if password == "" {
			p, err := promptPassword(os.Stdout)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
			password = p
		}

		req := client.RegisterRequest{
			Name:            registerName,
			Email:           registerEmail,
			Password:        password,
			SoilType:        registerSoil,
			Climate:         registerClimate,
			WaterConditions: registerWater,
		}

		sess := newSession()
		exitCode := runRegister(ctx, os.Stdout, newClient(sess), sess, req)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the saved session",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(os.Stdout, newSession())
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout, newSession())
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	loginCmd.MarkFlagRequired("email")

	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerSoil, "soil", "", "Soil type (clay, sandy, loamy, silt, chalky, peaty)")
	registerCmd.Flags().StringVar(&registerClimate, "climate", "", "Climate (tropical, temperate, arid, continental, polar)")
	registerCmd.Flags().StringVar(&registerWater, "water", "", "Water availability (low, moderate, high)")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
}

// promptPassword reads a password from the terminal without echo
func promptPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "Password: ")
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// runLogin authenticates and installs the session, returning an exit code
func runLogin(ctx context.Context, w io.Writer, c *client.Client, sess *session.Manager, email, password string) int {
	if email == "" || password == "" {
		fmt.Fprintln(w, "Error: email and password are required")
		return 1
	}

	resp, err := c.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if resp.User == nil {
		fmt.Fprintln(w, "Error: invalid response from backend")
		return 2
	}

	if err := sess.Login(resp.Session()); err != nil {
		fmt.Fprintf(w, "Error: failed to save session: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Logged in as %s\n", resp.User.Name)
	return 0
}

// runRegister creates the account and installs the returned session
func runRegister(ctx context.Context, w io.Writer, c *client.Client, sess *session.Manager, req client.RegisterRequest) int {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		fmt.Fprintln(w, "Error: name, email, and password are required")
		return 1
	}

	resp, err := c.Register(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if resp.User == nil {
		fmt.Fprintln(w, "Error: invalid response from backend")
		return 2
	}

	if err := sess.Login(resp.Session()); err != nil {
		fmt.Fprintf(w, "Error: failed to save session: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Welcome to the Seed Store, %s\n", resp.User.Name)
	return 0
}

// runLogout clears the session; logging out while logged out is fine
func runLogout(w io.Writer, sess *session.Manager) int {
	if err := sess.Logout(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Logged out")
	return 0
}

// runWhoami prints the active user, or reports no session
func runWhoami(w io.Writer, sess *session.Manager) int {
	user := sess.Current()
	if user == nil {
		fmt.Fprintln(w, "Not logged in")
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Name:  %s\n", user.Name)
	fmt.Fprintf(w, "Email: %s\n", user.Email)
	if user.IsAdmin {
		fmt.Fprintln(w, "Role:  admin")
	}
	if user.SoilType != "" || user.Climate != "" || user.WaterConditions != "" {
		fmt.Fprintf(w, "Growing conditions: soil=%s climate=%s water=%s\n",
			user.SoilType, user.Climate, user.WaterConditions)
	}
	return 0
}
