package protocol

import "encoding/binary"

// HeaderLen is the size of the big-endian length header that precedes
// every ciphertext payload.
const HeaderLen = 4

// EncodeFrame wraps a plaintext command in a complete wire frame:
// a 4-byte big-endian ciphertext length followed by the obfuscated
// command bytes.
func EncodeFrame(plaintext []byte) []byte {
	ciphertext := Encrypt(plaintext)
	frame := make([]byte, HeaderLen+len(ciphertext))
	binary.BigEndian.PutUint32(frame[:HeaderLen], uint32(len(ciphertext)))
	copy(frame[HeaderLen:], ciphertext)
	return frame
}

// DecodeFrame validates and deciphers a complete received frame,
// returning the plaintext response text.
//
// It fails with ShortResponseError when fewer than 4 bytes were
// received, and with LengthMismatchError when the declared payload
// length disagrees with the actual byte count. The decrypted bytes are
// returned as a string without further interpretation; plug responses
// are ASCII-range JSON.
func DecodeFrame(raw []byte) (string, error) {
	if len(raw) < HeaderLen {
		return "", &ShortResponseError{Length: len(raw)}
	}

	declared := binary.BigEndian.Uint32(raw[:HeaderLen])
	actual := len(raw) - HeaderLen
	if uint32(actual) != declared {
		return "", &LengthMismatchError{Declared: declared, Actual: actual}
	}

	return string(Decrypt(raw[HeaderLen:])), nil
}
