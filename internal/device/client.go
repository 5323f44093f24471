package device

import (
	"time"

	"go.uber.org/zap"

	"github.com/muurk/kasactl/internal/logging"
	"github.com/muurk/kasactl/internal/protocol"
)

// Client talks to a single HS100/HS110 plug. It is immutable after
// construction and safe for concurrent use; every operation opens and
// closes its own connection.
type Client struct {
	addr    Address
	timeout time.Duration
}

// New creates a client for the plug at the given host[:port] address.
// Port 9999 is appended when the string carries none.
func New(addr string) (*Client, error) {
	parsed, err := ParseAddress(addr)
	if err != nil {
		return nil, err
	}
	return &Client{addr: parsed}, nil
}

// WithTimeout returns a copy of the client whose network operations
// (dial, write, read) are each bounded by d. A zero duration removes
// the bound.
func (c *Client) WithTimeout(d time.Duration) *Client {
	clone := *c
	clone.timeout = d
	return &clone
}

// Addr returns the normalized plug address the client talks to.
func (c *Client) Addr() string {
	return c.addr.String()
}

// request performs one command round trip and returns the parsed
// response tree.
func (c *Client) request(command []byte, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	addr := c.addr.String()
	logging.Debug("sending command", zap.String("addr", addr), zap.ByteString("command", command))

	raw, err := sendReceive(addr, protocol.EncodeFrame(command), c.timeout)
	if err != nil {
		return nil, err
	}

	text, err := protocol.DecodeFrame(raw)
	if err != nil {
		return nil, err
	}

	root, err := protocol.ParseResponse(text)
	if err != nil {
		return nil, NewMalformedJSONError(addr, err)
	}

	logging.LogExchange(addr, string(command), len(text))
	return root, nil
}

// checkErrCode extracts [module, action, "err_code"] from a response
// and maps it to the standard success/failure convention.
func (c *Client) checkErrCode(root any, module, action string) error {
	v, err := protocol.Extract(root, module, action, protocol.ErrCodeKey)
	if err != nil {
		return err
	}
	code, err := protocol.AsInt64(v)
	if err != nil {
		return err
	}
	if code != 0 {
		return NewDeviceReportedError(c.addr.String(), code)
	}
	return nil
}

// Info returns the plug's identity and state snapshot (the get_sysinfo
// object: alias, model, MAC, relay and LED state, hardware and firmware
// versions, and so on).
func (c *Client) Info() (map[string]any, error) {
	root, err := c.request(protocol.GetSysinfoCommand())
	if err != nil {
		return nil, err
	}
	v, err := protocol.Extract(root, protocol.ModuleSystem, protocol.ActionGetSysinfo)
	if err != nil {
		return nil, err
	}
	return protocol.AsObject(v)
}

// infoField fetches a single field from the sysinfo snapshot. A missing
// field surfaces as KeyNotAvailableError carrying the full response.
func (c *Client) infoField(field string) (any, error) {
	root, err := c.request(protocol.GetSysinfoCommand())
	if err != nil {
		return nil, err
	}
	return protocol.Extract(root, protocol.ModuleSystem, protocol.ActionGetSysinfo, field)
}

// Alias returns the plug's user-assigned name, set during initial setup
// in the Kasa companion app.
func (c *Client) Alias() (string, error) {
	v, err := c.infoField("alias")
	if err != nil {
		return "", err
	}
	return protocol.AsString(v)
}

// HardwareVersion returns the plug's hardware revision, derived from
// the hw_ver sysinfo field.
func (c *Client) HardwareVersion() (HardwareVersion, error) {
	v, err := c.infoField("hw_ver")
	if err != nil {
		return HardwareVersion{}, err
	}
	raw, err := protocol.AsString(v)
	if err != nil {
		return HardwareVersion{}, err
	}
	return HardwareVersionFromString(raw), nil
}

// PowerState returns the current relay state.
func (c *Client) PowerState() (PowerState, error) {
	v, err := c.infoField("relay_state")
	if err != nil {
		return PowerOff, err
	}
	relay, err := protocol.AsInt64(v)
	if err != nil {
		return PowerOff, err
	}
	return PowerStateFromBool(relay == 1), nil
}

// SetPowerState switches the relay on or off.
func (c *Client) SetPowerState(state PowerState) error {
	root, err := c.request(protocol.SetRelayStateCommand(relayFlag(state)))
	if err != nil {
		return err
	}
	return c.checkErrCode(root, protocol.ModuleSystem, protocol.ActionSetRelayState)
}

// LedState returns the current status LED state.
func (c *Client) LedState() (LedState, error) {
	v, err := c.infoField("led_off")
	if err != nil {
		return LedOff, err
	}
	off, err := protocol.AsInt64(v)
	if err != nil {
		return LedOff, err
	}
	return LedStateFromOffFlag(off), nil
}

// SetLedState switches the status LED on or off.
func (c *Client) SetLedState(state LedState) error {
	root, err := c.request(protocol.SetLedOffCommand(LedOffFlag(state)))
	if err != nil {
		return err
	}
	return c.checkErrCode(root, protocol.ModuleSystem, protocol.ActionSetLedOff)
}

// CloudInfo returns the plug's cloud-binding status object (bound
// account, cloud server, connection state).
func (c *Client) CloudInfo() (map[string]any, error) {
	root, err := c.request(protocol.CloudInfoCommand())
	if err != nil {
		return nil, err
	}
	v, err := protocol.Extract(root, protocol.ModuleCloud, protocol.ActionGetInfo)
	if err != nil {
		return nil, err
	}
	return protocol.AsObject(v)
}

// AccessPoints returns the Wi-Fi access points the plug observes.
// When refresh is true the plug performs a fresh spectrum scan first,
// which takes a few seconds; otherwise it answers from its cached list.
func (c *Client) AccessPoints(refresh bool) ([]any, error) {
	flag := 0
	if refresh {
		flag = 1
	}
	root, err := c.request(protocol.ScanInfoCommand(flag))
	if err != nil {
		return nil, err
	}
	v, err := protocol.Extract(root, protocol.ModuleNetif, protocol.ActionGetScaninfo, "ap_list")
	if err != nil {
		return nil, err
	}
	return protocol.AsArray(v)
}

// EnergyMeter returns an instantaneous telemetry reading from the
// plug's energy meter (HS110 only; HS100 reports an error). The reading
// carries every quantity under both unit conventions regardless of
// which hardware revision answered; see ReconcileUnits.
func (c *Client) EnergyMeter() (map[string]any, error) {
	root, err := c.request(protocol.RealtimeCommand())
	if err != nil {
		return nil, err
	}
	v, err := protocol.Extract(root, protocol.ModuleEmeter, protocol.ActionGetRealtime)
	if err != nil {
		return nil, err
	}
	reading, err := protocol.AsObject(v)
	if err != nil {
		return nil, err
	}
	ReconcileUnits(reading)
	return reading, nil
}

// Reboot schedules a plug reboot after delay seconds. The plug drops
// off the network once the delay elapses; the command itself is
// acknowledged before that.
func (c *Client) Reboot(delay uint32) error {
	root, err := c.request(protocol.RebootCommand(delay))
	if err != nil {
		return err
	}
	return c.checkErrCode(root, protocol.ModuleSystem, protocol.ActionReboot)
}

// FactoryReset schedules a factory reset after delay seconds, wiping
// the plug's provisioning. There is no undo.
func (c *Client) FactoryReset(delay uint32) error {
	root, err := c.request(protocol.FactoryResetCommand(delay))
	if err != nil {
		return err
	}
	return c.checkErrCode(root, protocol.ModuleSystem, protocol.ActionReset)
}
