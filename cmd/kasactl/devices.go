package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/kasactl/internal/config"
	"github.com/muurk/kasactl/internal/device"
	"github.com/muurk/kasactl/internal/ui"
)

var (
	addNickname string
	addTimeout  int
)

func init() {
	devicesAddCmd.Flags().StringVar(&addNickname, "nickname", "", "Free-form description for the plug")
	devicesAddCmd.Flags().IntVar(&addTimeout, "timeout", 0, "Per-plug network timeout in seconds (0 = registry default)")

	devicesCmd.AddCommand(devicesListCmd)
	devicesCmd.AddCommand(devicesAddCmd)
	devicesCmd.AddCommand(devicesRemoveCmd)
	rootCmd.AddCommand(devicesCmd)
}

// devicesCmd groups plug registry management
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Manage the plug registry",
	Long: `Manage the registry that maps plug aliases to network addresses.

Registered plugs can be addressed by alias in every command, e.g.
'kasactl power on --device bathroom'. The registry lives in a YAML
file under the user config directory.`,
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered plugs",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load plug registry: %w", err)
		}

		aliases := registry.Aliases()
		if len(aliases) == 0 {
			fmt.Println("No plugs registered.")
			ui.PrintHint("Register one with 'kasactl devices add <alias> <address>'")
			return nil
		}

		width := 0
		for _, alias := range aliases {
			if len(alias) > width {
				width = len(alias)
			}
		}

		fmt.Println(ui.TitleStyle.Render("REGISTERED PLUGS"))
		for _, alias := range aliases {
			plug, _ := registry.Lookup(alias)
			line := fmt.Sprintf("  %-*s  %s", width+2, alias, plug.Address)
			if plug.Nickname != "" {
				line += "  " + ui.MutedStyle.Render("("+plug.Nickname+")")
			}
			fmt.Println(line)
		}
		return nil
	},
}

var devicesAddCmd = &cobra.Command{
	Use:   "add <alias> <address>",
	Short: "Register a plug under an alias",
	Long: `Register a plug under an alias, replacing any existing entry.

The address is host[:port]; the default port 9999 is used when omitted.
The address is validated but the plug is not contacted.`,
	Example: `  kasactl devices add bathroom 10.0.0.5
  kasactl devices add heater 10.0.0.6:9999 --nickname "bathroom heater"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias, address := args[0], args[1]

		// Validate the address shape up front so a typo surfaces here
		// instead of on the first network command.
		if _, err := device.ParseAddress(address); err != nil {
			return err
		}

		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load plug registry: %w", err)
		}

		plug := &config.Plug{
			Address:        address,
			Nickname:       addNickname,
			TimeoutSeconds: addTimeout,
		}
		if err := registry.Add(alias, plug); err != nil {
			return err
		}
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save plug registry: %w", err)
		}

		ui.PrintSuccess(fmt.Sprintf("Registered %q -> %s", alias, address))
		return nil
	},
}

var devicesRemoveCmd = &cobra.Command{
	Use:     "remove <alias>",
	Aliases: []string{"rm"},
	Short:   "Remove a plug from the registry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias := args[0]

		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load plug registry: %w", err)
		}

		if !registry.Remove(alias) {
			known := strings.Join(registry.Aliases(), ", ")
			if known == "" {
				known = "none"
			}
			return fmt.Errorf("no plug registered as %q (registered: %s)", alias, known)
		}
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save plug registry: %w", err)
		}

		ui.PrintSuccess(fmt.Sprintf("Removed %q", alias))
		return nil
	},
}
