// ABOUTME: Contact command for sending a message to the store
// ABOUTME: Validates required fields client-side before dispatch

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/spf13/cobra"
)

var (
	contactName    string
	contactEmail   string
	contactSubject string
	contactMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message to the Seed Store",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		sess := newSession()
		msg := client.ContactMessage{
			Name:    contactName,
			Email:   contactEmail,
			Subject: contactSubject,
			Message: contactMessage,
		}

		exitCode := runContact(ctx, os.Stdout, newClient(sess), msg)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.Flags().StringVar(&contactName, "name", "", "Your name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Your email")
	contactCmd.Flags().StringVar(&contactSubject, "subject", "", "Message subject")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "Message body")
}

// runContact validates and sends the message, returning an exit code
func runContact(ctx context.Context, w io.Writer, c *client.Client, msg client.ContactMessage) int {
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		fmt.Fprintln(w, "Error: name, email, subject, and message are all required")
		return 1
	}

	if err := c.Contact(ctx, msg); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, "Message sent. We'll get back to you soon.")
	return 0
}
