package device

// PowerState is the plug's relay state: whether the outlet is powered.
type PowerState int

const (
	PowerOff PowerState = iota
	PowerOn
)

// String returns the canonical textual rendering.
func (s PowerState) String() string {
	if s == PowerOn {
		return "ON"
	}
	return "OFF"
}

// Bool maps the state to its boolean sense (on == true).
func (s PowerState) Bool() bool {
	return s == PowerOn
}

// Toggled returns the opposite state.
func (s PowerState) Toggled() PowerState {
	if s == PowerOn {
		return PowerOff
	}
	return PowerOn
}

// PowerStateFromBool maps a boolean (on == true) to a PowerState.
func PowerStateFromBool(on bool) PowerState {
	if on {
		return PowerOn
	}
	return PowerOff
}

// relayFlag is the wire encoding of a relay state: on is 1.
func relayFlag(s PowerState) int {
	if s == PowerOn {
		return 1
	}
	return 0
}

// LedState is the plug's status LED state.
type LedState int

const (
	LedOff LedState = iota
	LedOn
)

// String returns the canonical textual rendering.
func (s LedState) String() string {
	if s == LedOn {
		return "ON"
	}
	return "OFF"
}

// Bool maps the state to its boolean sense (on == true).
func (s LedState) Bool() bool {
	return s == LedOn
}

// Toggled returns the opposite state.
func (s LedState) Toggled() LedState {
	if s == LedOn {
		return LedOff
	}
	return LedOn
}

// LedStateFromBool maps a boolean (on == true) to a LedState.
func LedStateFromBool(on bool) LedState {
	if on {
		return LedOn
	}
	return LedOff
}

// LedOffFlag converts a desired LED state to the wire flag of the
// set_led_off command. The flag has inverted sense relative to the
// relay encoding: 1 extinguishes the LED. The inversion lives here, in
// one named place, rather than inline at call sites.
func LedOffFlag(s LedState) int {
	if s == LedOn {
		return 0
	}
	return 1
}

// LedStateFromOffFlag converts the led_off sysinfo field back to the
// semantic LED state.
func LedStateFromOffFlag(off int64) LedState {
	if off == 0 {
		return LedOn
	}
	return LedOff
}

// HardwareGeneration identifies the plug hardware revision family,
// which determines the native energy-telemetry unit convention.
type HardwareGeneration int

const (
	// HardwareUnsupported is any hw_ver string this client does not know.
	HardwareUnsupported HardwareGeneration = iota
	// HardwareVersion1 reports telemetry in base units (V, A, W, Wh).
	HardwareVersion1
	// HardwareVersion2 reports telemetry in milli-units (mV, mA, mW, Wh).
	HardwareVersion2
)

// String returns a human-readable name for the generation
func (g HardwareGeneration) String() string {
	switch g {
	case HardwareVersion1:
		return "Version1"
	case HardwareVersion2:
		return "Version2"
	default:
		return "Unsupported"
	}
}

// HardwareVersion is the plug revision derived from the hw_ver sysinfo
// field. It is recomputed on demand, never persisted.
type HardwareVersion struct {
	Generation HardwareGeneration
	// Raw is the hw_ver string as reported by the plug.
	Raw string
}

// HardwareVersionFromString maps the reported hw_ver string to a
// revision: "1.0" and "2.0" are the known generations, anything else is
// carried through as unsupported.
func HardwareVersionFromString(raw string) HardwareVersion {
	switch raw {
	case "1.0":
		return HardwareVersion{Generation: HardwareVersion1, Raw: raw}
	case "2.0":
		return HardwareVersion{Generation: HardwareVersion2, Raw: raw}
	default:
		return HardwareVersion{Generation: HardwareUnsupported, Raw: raw}
	}
}

// Supported reports whether this client knows the revision.
func (v HardwareVersion) Supported() bool {
	return v.Generation != HardwareUnsupported
}

// String returns the generation name with the raw revision string.
func (v HardwareVersion) String() string {
	if v.Supported() {
		return v.Generation.String()
	}
	return "Unsupported(" + v.Raw + ")"
}
