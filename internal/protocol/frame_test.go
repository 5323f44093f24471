package protocol

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty object", "{}"},
		{"sysinfo command", `{"system":{"get_sysinfo":{}}}`},
		{"scan command", `{"netif":{"get_scaninfo":{"refresh":1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFrame(EncodeFrame([]byte(tt.text)))
			if err != nil {
				t.Fatalf("DecodeFrame() error = %v", err)
			}
			if got != tt.text {
				t.Errorf("DecodeFrame() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestEncodeFrameHeader(t *testing.T) {
	frame := EncodeFrame([]byte(`{"system":{"get_sysinfo":{}}}`))

	if len(frame) != HeaderLen+29 {
		t.Fatalf("frame length = %d, want %d", len(frame), HeaderLen+29)
	}
	declared := binary.BigEndian.Uint32(frame[:HeaderLen])
	if declared != 29 {
		t.Errorf("declared length = %d, want 29", declared)
	}
}

func TestDecodeFrameShortResponse(t *testing.T) {
	_, err := DecodeFrame([]byte{0, 0})

	var shortErr *ShortResponseError
	if !errors.As(err, &shortErr) {
		t.Fatalf("DecodeFrame() error = %v, want ShortResponseError", err)
	}
	if shortErr.Length != 2 {
		t.Errorf("reported length = %d, want 2", shortErr.Length)
	}
}

func TestDecodeFrameLengthMismatch(t *testing.T) {
	// Header declares 5 payload bytes, only 3 follow.
	raw := []byte{0, 0, 0, 5, 0xAA, 0xBB, 0xCC}

	_, err := DecodeFrame(raw)

	var mismatch *LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("DecodeFrame() error = %v, want LengthMismatchError", err)
	}
	if mismatch.Declared != 5 || mismatch.Actual != 3 {
		t.Errorf("mismatch = {declared: %d, actual: %d}, want {5, 3}", mismatch.Declared, mismatch.Actual)
	}
}

func TestDecodeFrameEmptyPayload(t *testing.T) {
	// A bare header declaring zero payload bytes is a valid empty frame.
	got, err := DecodeFrame([]byte{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("DecodeFrame() error = %v", err)
	}
	if got != "" {
		t.Errorf("DecodeFrame() = %q, want empty string", got)
	}
}
