// Package protocol implements the TP-Link Kasa smart plug wire protocol.
//
// This package handles the obfuscation cipher, length-prefixed framing,
// command construction, and response field extraction used by HS100 and
// HS110 smart plugs over their local TCP interface (port 9999).
//
// # Protocol Overview
//
// Every request and response is a single frame:
//   - Length header: 4 bytes (big-endian uint32, ciphertext byte count)
//   - Ciphertext: the JSON command text passed through the XOR-autokey
//     obfuscation with a fixed seed of 171
//
// The obfuscation is not a real cipher. Both directions chain the running
// key off the ciphertext stream, which makes the transform self-inverse
// when applied with the same seed. It must be reproduced bit-exactly for
// interoperability; do not substitute a cryptographically secure cipher.
//
// # Command Format
//
// Commands are two-level JSON trees keyed by module and action:
//
//	{"system":{"set_relay_state":{"state":1}}}
//
// Device flags are serialized as 0/1 integers, not booleans. Responses
// mirror the command nesting and carry an err_code integer per leaf
// object, where 0 means success and any other value is a device-side
// failure code.
//
// # Usage Example
//
//	cmd, err := protocol.BuildCommand("system", "set_relay_state", map[string]any{"state": 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wire := protocol.EncodeFrame(cmd)
//	// ... exchange wire bytes over TCP ...
//	text, err := protocol.DecodeFrame(reply)
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use. The cipher's
// running key is local to each call; nothing is shared between requests.
package protocol
