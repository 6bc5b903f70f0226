// Package cmd implements the glowdesk-notify CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glowdesk/notify/internal/build"
)

var rootCmd = &cobra.Command{
	Use:     "glowdesk-notify",
	Short:   "GlowDesk notification dispatch engine",
	Long:    "Renders notification content from templates and fans it out across email, SMS, push and in-app channels.",
	Version: build.String(),
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(inboxCmd)
	rootCmd.AddCommand(deliveriesCmd)
}
