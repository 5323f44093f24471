package protocol

import "encoding/json"

// Command vocabulary understood by the plug. Module and action names
// are the two-level namespace of the device firmware.
const (
	ModuleSystem = "system"
	ModuleCloud  = "cnCloud"
	ModuleNetif  = "netif"
	ModuleEmeter = "emeter"

	ActionGetSysinfo    = "get_sysinfo"
	ActionSetRelayState = "set_relay_state"
	ActionSetLedOff     = "set_led_off"
	ActionReboot        = "reboot"
	ActionReset         = "reset"
	ActionGetInfo       = "get_info"
	ActionGetScaninfo   = "get_scaninfo"
	ActionGetRealtime   = "get_realtime"
)

// BuildCommand serializes a (module, action, params) triple to the JSON
// command text the plug expects: {"<module>":{"<action>":{...}}}.
//
// A nil params map produces an empty parameter object. Boolean device
// flags must be passed as 0/1 integers; the firmware rejects JSON
// booleans.
func BuildCommand(module, action string, params map[string]any) ([]byte, error) {
	if params == nil {
		params = map[string]any{}
	}
	return json.Marshal(map[string]any{
		module: map[string]any{
			action: params,
		},
	})
}

// GetSysinfoCommand requests the device identity and state snapshot.
func GetSysinfoCommand() ([]byte, error) {
	return BuildCommand(ModuleSystem, ActionGetSysinfo, nil)
}

// SetRelayStateCommand switches the power relay. state is 1 for on,
// 0 for off.
func SetRelayStateCommand(state int) ([]byte, error) {
	return BuildCommand(ModuleSystem, ActionSetRelayState, map[string]any{"state": state})
}

// SetLedOffCommand switches the status LED. The flag has inverted
// sense: off=1 extinguishes the LED, off=0 lights it.
func SetLedOffCommand(off int) ([]byte, error) {
	return BuildCommand(ModuleSystem, ActionSetLedOff, map[string]any{"off": off})
}

// RebootCommand schedules a reboot after delay seconds.
func RebootCommand(delay uint32) ([]byte, error) {
	return BuildCommand(ModuleSystem, ActionReboot, map[string]any{"delay": delay})
}

// FactoryResetCommand schedules a factory reset after delay seconds.
func FactoryResetCommand(delay uint32) ([]byte, error) {
	return BuildCommand(ModuleSystem, ActionReset, map[string]any{"delay": delay})
}

// CloudInfoCommand requests the cloud-binding status.
func CloudInfoCommand() ([]byte, error) {
	return BuildCommand(ModuleCloud, ActionGetInfo, nil)
}

// ScanInfoCommand requests the Wi-Fi access point list. refresh is 1 to
// trigger a fresh spectrum scan, 0 to return the cached list.
func ScanInfoCommand(refresh int) ([]byte, error) {
	return BuildCommand(ModuleNetif, ActionGetScaninfo, map[string]any{"refresh": refresh})
}

// RealtimeCommand requests instantaneous energy telemetry. Only plugs
// with an energy meter (HS110) answer with data.
func RealtimeCommand() ([]byte, error) {
	return BuildCommand(ModuleEmeter, ActionGetRealtime, nil)
}
