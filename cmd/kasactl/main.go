// Kasactl is a command-line client for TP-Link Kasa smart power plugs.
//
// It talks the plugs' local TCP protocol directly (port 9999) and works
// entirely on the local network; no cloud account is required. Supported
// operations include reading device info, switching the relay and status
// LED, listing visible Wi-Fi access points, reading the HS110 energy
// meter, and rebooting or factory-resetting the plug.
//
// Usage:
//
//	kasactl [command] --device <alias-or-address> [flags]
//
// See 'kasactl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/kasactl/internal/logging"
	"github.com/muurk/kasactl/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kasactl",
	Short: "TP-Link Kasa Smart Plug Client",
	Long: `A command-line client for TP-Link Kasa HS100/HS110 smart plugs.

Talks to plugs directly over their local TCP protocol - no cloud account
needed. Register plugs under an alias with 'kasactl devices add' or pass
an address with --device.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kasactl %s\n", version.Full())
	},
}
