// Package device provides the client for TP-Link HS100/HS110 smart plugs.
//
// A Client is constructed from an address string (port 9999 is appended
// when none is given) and an optional timeout, and is immutable
// afterwards. Every operation opens its own TCP connection, performs a
// single request/response exchange, and closes the connection on every
// exit path; there is no pooling, no retry, and no state carried
// between calls. Concurrent operations against the same plug are safe
// from this side, though the plug itself may serialize or reject
// overlapping connections.
//
// # Operations
//
// One method per plug command: Info, Alias, HardwareVersion, LedState,
// SetLedState, PowerState, SetPowerState, CloudInfo, AccessPoints,
// EnergyMeter, Reboot, FactoryReset.
//
// Mutating operations interpret the plug's err_code convention: zero is
// success, anything else surfaces as a DeviceError carrying the code.
//
// # Hardware Revisions
//
// HS110 plugs of hardware revision 1.0 report energy telemetry in base
// units (volts, amps, watts, watt-hours); revision 2.0 reports
// milli-units under different field names. EnergyMeter populates both
// conventions on every reading so callers never need to know which
// revision answered.
//
// # Error Handling
//
// All failures are typed: I/O errors, malformed JSON, missing response
// keys, unexpected value shapes, device-reported codes, and address
// errors are distinguishable with the Is* predicates and errors.As.
// Sending a reboot or factory-reset is not idempotent at the transport
// level: the plug may act on an acknowledged command even when reading
// the response subsequently times out.
package device
