package protocol

import "fmt"

// ShortResponseError reports a raw buffer too small to carry the 4-byte
// length header.
type ShortResponseError struct {
	// Length is the number of bytes actually received.
	Length int
}

func (e *ShortResponseError) Error() string {
	return fmt.Sprintf("response too short to contain a frame header (%d bytes)", e.Length)
}

// LengthMismatchError reports disagreement between the payload length
// declared in the frame header and the bytes that follow it. A frame
// with a mismatched length is never truncated or padded; decoding fails
// hard.
type LengthMismatchError struct {
	Declared uint32
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("frame payload length %d differs from length declared in header (%d)",
		e.Actual, e.Declared)
}

// KeyNotAvailableError reports a missing key while walking a response
// path. The full original response is attached for diagnostics.
type KeyNotAvailableError struct {
	Key      string
	Response any
}

func (e *KeyNotAvailableError) Error() string {
	return fmt.Sprintf("key %q is not available in the response: %v", e.Key, e.Response)
}

// ValueShapeError reports a response value present under the expected
// key but not of the expected JSON kind.
type ValueShapeError struct {
	// Want names the expected JSON kind ("number", "string", "array", "object").
	Want string
	// Got is the value actually found.
	Got any
}

func (e *ValueShapeError) Error() string {
	return fmt.Sprintf("unexpected value shape: want %s, got %T (%v)", e.Want, e.Got, e.Got)
}
