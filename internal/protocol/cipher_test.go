package protocol

import (
	"bytes"
	"testing"
)

func TestEncryptKnownVector(t *testing.T) {
	// First byte: 171 ^ 'a' (0x61) = 0xCA; key chains to 0xCA.
	// Second byte: 0xCA ^ 'b' (0x62) = 0xA8.
	got := Encrypt([]byte("ab"))
	want := []byte{0xCA, 0xA8}
	if !bytes.Equal(got, want) {
		t.Errorf("Encrypt(\"ab\") = %x, want %x", got, want)
	}
}

func TestCipherRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"single byte", []byte{0x00}},
		{"sysinfo command", []byte(`{"system":{"get_sysinfo":{}}}`)},
		{"relay command", []byte(`{"system":{"set_relay_state":{"state":1}}}`)},
		{"all byte values", func() []byte {
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decrypt(Encrypt(tt.input))
			if !bytes.Equal(got, tt.input) {
				t.Errorf("Decrypt(Encrypt(%q)) = %q", tt.input, got)
			}
		})
	}
}

func TestCipherDoesNotShareState(t *testing.T) {
	// Two encryptions of the same input must be identical: the running
	// key is reseeded per call, never carried across calls.
	input := []byte(`{"emeter":{"get_realtime":{}}}`)
	first := Encrypt(input)
	second := Encrypt(input)
	if !bytes.Equal(first, second) {
		t.Errorf("consecutive encryptions differ: %x vs %x", first, second)
	}
}

func TestCipherDoesNotMutateInput(t *testing.T) {
	input := []byte("hello")
	saved := append([]byte(nil), input...)
	Encrypt(input)
	Decrypt(input)
	if !bytes.Equal(input, saved) {
		t.Errorf("cipher mutated its input: %x", input)
	}
}
