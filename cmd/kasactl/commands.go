package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/kasactl/internal/config"
	"github.com/muurk/kasactl/internal/device"
	"github.com/muurk/kasactl/internal/ui"
)

// Command flags
var (
	deviceFlag    string
	timeoutSecs   int
	outputFormat  string
	refreshScan   bool
	delaySecs     uint32
	skipConfirm   bool
	watchInterval int
)

func init() {
	// Common flags for plug commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&deviceFlag, "device", "", "Plug alias (from the registry) or host[:port]")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", 0, "Network timeout in seconds (0 = registry default)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(hwVersionCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(ledCmd)
	rootCmd.AddCommand(cloudCmd)
	rootCmd.AddCommand(wifiScanCmd)
	rootCmd.AddCommand(energyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(resetCmd)
}

// resolveClient turns the --device flag into a connected-ready client.
// The flag is resolved against the plug registry first; anything not
// registered is treated as a raw address.
func resolveClient() (*device.Client, error) {
	if deviceFlag == "" {
		return nil, fmt.Errorf("no plug specified; use --device <alias-or-address> or register one with 'kasactl devices add'")
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load plug registry: %w", err)
	}

	addr := deviceFlag
	timeout := time.Duration(timeoutSecs) * time.Second

	if plug, ok := registry.Lookup(deviceFlag); ok {
		addr = plug.Address
		if timeoutSecs == 0 && plug.TimeoutSeconds > 0 {
			timeout = time.Duration(plug.TimeoutSeconds) * time.Second
		}
	}
	if timeout == 0 && registry.Preferences != nil && registry.Preferences.DefaultTimeoutSeconds > 0 {
		timeout = time.Duration(registry.Preferences.DefaultTimeoutSeconds) * time.Second
	}

	client, err := device.New(addr)
	if err != nil {
		return nil, err
	}
	return client.WithTimeout(timeout), nil
}

func printObject(title string, obj map[string]any) error {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "compact":
		data, err := json.Marshal(obj)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		fmt.Print(ui.RenderObject(title, obj))
	}
	return nil
}

// infoCmd shows the plug's sysinfo snapshot
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show plug system information",
	Long: `Display the plug's identity and state snapshot.

Includes the alias, model, hardware and firmware versions, MAC address,
relay and LED state, and signal strength.`,
	Example: `  # Registered plug
  kasactl info --device bathroom

  # Raw address, JSON output for scripting
  kasactl info --device 10.0.0.5 --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}
		info, err := client.Info()
		if err != nil {
			return err
		}
		return printObject("PLUG INFO", info)
	},
}

// aliasCmd shows the plug's user-assigned name
var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Show the plug's user-assigned name",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}
		alias, err := client.Alias()
		if err != nil {
			return err
		}
		fmt.Println(alias)
		return nil
	},
}

// hwVersionCmd shows the plug's hardware revision
var hwVersionCmd = &cobra.Command{
	Use:   "hw-version",
	Short: "Show the plug's hardware revision",
	Long: `Show the plug's hardware revision.

The revision determines the native unit convention of the energy meter
(version 1 reports base units, version 2 milli-units). Revisions this
tool does not know are shown as unsupported with the raw string.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}
		hw, err := client.HardwareVersion()
		if err != nil {
			return err
		}
		fmt.Println(hw)
		return nil
	},
}

// powerCmd reads or switches the relay
var powerCmd = &cobra.Command{
	Use:   "power [on|off]",
	Short: "Read or switch the power relay",
	Long: `Without an argument, report whether the outlet is powered.
With 'on' or 'off', switch the relay.`,
	Example: `  kasactl power --device bathroom
  kasactl power on --device bathroom
  kasactl power off --device 10.0.0.5`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			state, err := client.PowerState()
			if err != nil {
				return err
			}
			fmt.Printf("Power is %s\n", state)
			return nil
		}

		state := device.PowerStateFromBool(args[0] == "on")
		if err := client.SetPowerState(state); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("Power switched %s", state))
		return nil
	},
}

// ledCmd reads or switches the status LED
var ledCmd = &cobra.Command{
	Use:   "led [on|off]",
	Short: "Read or switch the status LED",
	Long: `Without an argument, report the status LED state.
With 'on' or 'off', switch the LED. This only affects the indicator
light on the plug itself, never the relay.`,
	Example: `  kasactl led --device bathroom
  kasactl led off --device bathroom`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			state, err := client.LedState()
			if err != nil {
				return err
			}
			fmt.Printf("LED is %s\n", state)
			return nil
		}

		state := device.LedStateFromBool(args[0] == "on")
		if err := client.SetLedState(state); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("LED switched %s", state))
		return nil
	},
}

// cloudCmd shows the plug's cloud-binding status
var cloudCmd = &cobra.Command{
	Use:   "cloudinfo",
	Short: "Show cloud-binding status",
	Long: `Display the plug's TP-Link cloud binding: bound account, cloud
server, and connection state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}
		info, err := client.CloudInfo()
		if err != nil {
			return err
		}
		return printObject("CLOUD INFO", info)
	},
}

// wifiScanCmd lists access points the plug observes
var wifiScanCmd = &cobra.Command{
	Use:   "wifi-scan",
	Short: "List Wi-Fi access points the plug observes",
	Long: `List the Wi-Fi access points visible to the plug.

By default the plug answers from its cached list. With --refresh it
performs a fresh spectrum scan first, which takes a few seconds.`,
	Example: `  kasactl wifi-scan --device bathroom
  kasactl wifi-scan --refresh --device bathroom`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}

		aps, err := client.AccessPoints(refreshScan)
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			data, err := json.MarshalIndent(aps, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(aps) == 0 {
			fmt.Println("No access points reported.")
			return nil
		}
		fmt.Printf("Found %d access point(s):\n\n", len(aps))
		for i, ap := range aps {
			if obj, ok := ap.(map[string]any); ok {
				fmt.Printf("%d. %v\n", i+1, obj["ssid"])
				continue
			}
			fmt.Printf("%d. %v\n", i+1, ap)
		}
		return nil
	},
}

func init() {
	wifiScanCmd.Flags().BoolVar(&refreshScan, "refresh", false, "Trigger a fresh spectrum scan")
}

// energyCmd reads the energy meter once
var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Read the energy meter",
	Long: `Read one instantaneous telemetry sample from the plug's energy
meter (HS110 only).

Every quantity is reported under both unit conventions (volts and
millivolts, watts and milliwatts, ...) regardless of the plug's
hardware revision.`,
	Example: `  kasactl energy --device bathroom
  kasactl energy --device bathroom --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}
		reading, err := client.EnergyMeter()
		if err != nil {
			return err
		}
		return printObject("ENERGY METER", reading)
	},
}

// watchCmd shows a live energy view
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live energy meter view",
	Long: `Continuously poll the energy meter and render a live view.

Each poll is an independent single-shot exchange over a fresh
connection. Press q to quit.`,
	Example: `  kasactl watch --device bathroom
  kasactl watch --device bathroom --interval 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}
		if watchInterval < 1 {
			return fmt.Errorf("interval must be at least 1 second")
		}
		return ui.RunWatch(client.Addr(), client.EnergyMeter,
			time.Duration(watchInterval)*time.Second)
	},
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 2, "Poll interval in seconds")
}

// rebootCmd reboots the plug
var rebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Reboot the plug",
	Long: `Reboot the plug after an optional delay.

The relay briefly drops power to whatever is connected. Once the plug
acknowledges the command it reboots even if the connection is lost
afterwards.`,
	Example: `  kasactl reboot --device bathroom
  kasactl reboot --device bathroom --delay 10 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}
		if !skipConfirm && !ui.RebootConfirmation(client.Addr()) {
			return nil
		}
		if err := client.Reboot(delaySecs); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("Reboot scheduled (delay: %ds)", delaySecs))
		return nil
	},
}

// resetCmd factory-resets the plug
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Factory-reset the plug",
	Long: `Factory-reset the plug after an optional delay.

This wipes the plug's provisioning: it forgets its Wi-Fi network and
cloud binding and must be set up again in the Kasa app. There is no
undo.`,
	Example: `  kasactl reset --device 10.0.0.5
  kasactl reset --device 10.0.0.5 --delay 5 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := resolveClient()
		if err != nil {
			return err
		}
		if !skipConfirm && !ui.FactoryResetConfirmation(client.Addr()) {
			return nil
		}
		if err := client.FactoryReset(delaySecs); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("Factory reset scheduled (delay: %ds)", delaySecs))
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{rebootCmd, resetCmd} {
		cmd.Flags().Uint32Var(&delaySecs, "delay", 0, "Delay in seconds before the plug acts")
		cmd.Flags().BoolVar(&skipConfirm, "yes", false, "Skip the confirmation prompt")
	}
}
