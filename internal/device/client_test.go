package device

import (
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/muurk/kasactl/internal/protocol"
)

// startFakePlug runs a loopback TCP server that answers every decoded
// command through handler. Returns the server address.
func startFakePlug(t *testing.T, handler func(cmd string) string) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer func() { _ = conn.Close() }()

				header := make([]byte, protocol.HeaderLen)
				if _, err := io.ReadFull(conn, header); err != nil {
					return
				}
				payload := make([]byte, binary.BigEndian.Uint32(header))
				if _, err := io.ReadFull(conn, payload); err != nil {
					return
				}

				reply := handler(string(protocol.Decrypt(payload)))
				_, _ = conn.Write(protocol.EncodeFrame([]byte(reply)))
			}(conn)
		}
	}()

	return ln.Addr().String()
}

func newTestClient(t *testing.T, addr string) *Client {
	t.Helper()
	client, err := New(addr)
	if err != nil {
		t.Fatalf("New(%q) error = %v", addr, err)
	}
	return client.WithTimeout(2 * time.Second)
}

const sysinfoReply = `{"system":{"get_sysinfo":{` +
	`"alias":"Bathroom","hw_ver":"1.0","relay_state":1,"led_off":0,"err_code":0}}}`

func TestClientReadsSysinfoFields(t *testing.T) {
	addr := startFakePlug(t, func(cmd string) string {
		if cmd != `{"system":{"get_sysinfo":{}}}` {
			t.Errorf("unexpected command: %s", cmd)
		}
		return sysinfoReply
	})
	client := newTestClient(t, addr)

	alias, err := client.Alias()
	if err != nil {
		t.Fatalf("Alias() error = %v", err)
	}
	if alias != "Bathroom" {
		t.Errorf("Alias() = %q, want Bathroom", alias)
	}

	hw, err := client.HardwareVersion()
	if err != nil {
		t.Fatalf("HardwareVersion() error = %v", err)
	}
	if hw.Generation != HardwareVersion1 {
		t.Errorf("HardwareVersion() = %v, want Version1", hw)
	}

	power, err := client.PowerState()
	if err != nil {
		t.Fatalf("PowerState() error = %v", err)
	}
	if power != PowerOn {
		t.Errorf("PowerState() = %v, want ON", power)
	}

	led, err := client.LedState()
	if err != nil {
		t.Fatalf("LedState() error = %v", err)
	}
	if led != LedOn {
		t.Errorf("LedState() = %v, want ON (led_off:0 means lit)", led)
	}
}

func TestSetPowerStateSuccess(t *testing.T) {
	addr := startFakePlug(t, func(cmd string) string {
		if cmd != `{"system":{"set_relay_state":{"state":1}}}` {
			t.Errorf("unexpected command: %s", cmd)
		}
		return `{"system":{"set_relay_state":{"err_code":0}}}`
	})
	client := newTestClient(t, addr)

	if err := client.SetPowerState(PowerOn); err != nil {
		t.Errorf("SetPowerState(on) error = %v", err)
	}
}

func TestSetPowerStateDeviceReportedError(t *testing.T) {
	addr := startFakePlug(t, func(cmd string) string {
		return `{"system":{"set_relay_state":{"err_code":-1}}}`
	})
	client := newTestClient(t, addr)

	err := client.SetPowerState(PowerOff)
	code, ok := DeviceErrCode(err)
	if !ok {
		t.Fatalf("SetPowerState() error = %v, want device-reported error", err)
	}
	if code != -1 {
		t.Errorf("err_code = %d, want -1", code)
	}
}

func TestSetLedStateSendsInvertedFlag(t *testing.T) {
	addr := startFakePlug(t, func(cmd string) string {
		if cmd != `{"system":{"set_led_off":{"off":1}}}` {
			t.Errorf("unexpected command: %s", cmd)
		}
		return `{"system":{"set_led_off":{"err_code":0}}}`
	})
	client := newTestClient(t, addr)

	// Turning the LED off must send off:1.
	if err := client.SetLedState(LedOff); err != nil {
		t.Errorf("SetLedState(off) error = %v", err)
	}
}

func TestEnergyMeterReconcilesUnits(t *testing.T) {
	addr := startFakePlug(t, func(cmd string) string {
		return `{"emeter":{"get_realtime":{"voltage_mv":228603.726,"power_mw":770.242,"err_code":0}}}`
	})
	client := newTestClient(t, addr)

	reading, err := client.EnergyMeter()
	if err != nil {
		t.Fatalf("EnergyMeter() error = %v", err)
	}

	voltage, ok := reading["voltage"].(float64)
	if !ok || !approxEqual(voltage, 228.603726) {
		t.Errorf("voltage = %v, want 228.603726", reading["voltage"])
	}
	power, ok := reading["power"].(float64)
	if !ok || !approxEqual(power, 0.770242) {
		t.Errorf("power = %v, want 0.770242", reading["power"])
	}
}

func TestAccessPointsList(t *testing.T) {
	addr := startFakePlug(t, func(cmd string) string {
		if cmd != `{"netif":{"get_scaninfo":{"refresh":1}}}` {
			t.Errorf("unexpected command: %s", cmd)
		}
		return `{"netif":{"get_scaninfo":{"ap_list":[{"ssid":"RADIO","key_type":3}],"err_code":0}}}`
	})
	client := newTestClient(t, addr)

	aps, err := client.AccessPoints(true)
	if err != nil {
		t.Fatalf("AccessPoints() error = %v", err)
	}
	if len(aps) != 1 {
		t.Fatalf("len(aps) = %d, want 1", len(aps))
	}
}

func TestRebootAndFactoryReset(t *testing.T) {
	var lastCmd string
	addr := startFakePlug(t, func(cmd string) string {
		lastCmd = cmd
		switch cmd {
		case `{"system":{"reboot":{"delay":3}}}`:
			return `{"system":{"reboot":{"err_code":0}}}`
		case `{"system":{"reset":{"delay":0}}}`:
			return `{"system":{"reset":{"err_code":0}}}`
		default:
			return `{}`
		}
	})
	client := newTestClient(t, addr)

	if err := client.Reboot(3); err != nil {
		t.Errorf("Reboot(3) error = %v (command %s)", err, lastCmd)
	}
	if err := client.FactoryReset(0); err != nil {
		t.Errorf("FactoryReset(0) error = %v (command %s)", err, lastCmd)
	}
}

func TestMalformedJSONResponse(t *testing.T) {
	addr := startFakePlug(t, func(cmd string) string {
		return `this is not json`
	})
	client := newTestClient(t, addr)

	_, err := client.Info()
	if !IsMalformedJSON(err) {
		t.Errorf("Info() error = %v, want malformed-JSON error", err)
	}
}

func TestMissingResponseKey(t *testing.T) {
	addr := startFakePlug(t, func(cmd string) string {
		return `{"system":{"get_sysinfo":{"err_code":0}}}`
	})
	client := newTestClient(t, addr)

	_, err := client.Alias()
	if !IsKeyNotAvailable(err) {
		t.Errorf("Alias() error = %v, want key-not-available error", err)
	}
}

func TestConnectionRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	client := newTestClient(t, addr)

	_, err = client.Info()
	if !IsIOError(err) {
		t.Errorf("Info() error = %v, want I/O error", err)
	}
}

func TestReadTimeout(t *testing.T) {
	// Server accepts but never answers.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer func() { _ = conn.Close() }()
			select {} // hold the connection open, silent
		}
	}()

	client, err := New(ln.Addr().String())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	client = client.WithTimeout(100 * time.Millisecond)

	_, err = client.Info()
	if !IsTimeout(err) {
		t.Errorf("Info() error = %v, want timeout", err)
	}
}

func TestTruncatedResponseFrame(t *testing.T) {
	// Server writes a header declaring five payload bytes, sends three,
	// then closes. The codec must report the framing mismatch.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		header := make([]byte, protocol.HeaderLen)
		if _, err := io.ReadFull(conn, header); err != nil {
			return
		}
		payload := make([]byte, binary.BigEndian.Uint32(header))
		if _, err := io.ReadFull(conn, payload); err != nil {
			return
		}
		_, _ = conn.Write([]byte{0, 0, 0, 5, 0xAA, 0xBB, 0xCC})
	}()

	client := newTestClient(t, ln.Addr().String())

	_, err = client.Info()
	if !IsFrameError(err) {
		t.Errorf("Info() error = %v, want frame error", err)
	}
}

func TestClientAddressNormalization(t *testing.T) {
	client, err := New("10.0.0.5")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Addr() != "10.0.0.5:9999" {
		t.Errorf("Addr() = %q, want 10.0.0.5:9999", client.Addr())
	}

	client, err = New("10.0.0.5:8888")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Addr() != "10.0.0.5:8888" {
		t.Errorf("Addr() = %q, want 10.0.0.5:8888", client.Addr())
	}
}

func TestWithTimeoutLeavesOriginalUntouched(t *testing.T) {
	base, err := New("10.0.0.5")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	bounded := base.WithTimeout(time.Second)
	if base.timeout != 0 {
		t.Error("WithTimeout mutated the original client")
	}
	if bounded.timeout != time.Second {
		t.Errorf("bounded timeout = %v, want 1s", bounded.timeout)
	}
}
