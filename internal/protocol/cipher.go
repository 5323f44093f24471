package protocol

// CipherSeed is the fixed initial value of the running key. Every Kasa
// plug uses the same seed; it is part of the wire format, not a secret.
const CipherSeed byte = 171

// Encrypt obfuscates plaintext for transmission to the plug.
//
// Each output byte is the running key XORed with the input byte, and the
// running key then becomes the byte just produced. The key is a local
// value seeded fresh on every call, so concurrent requests never share
// cipher state.
func Encrypt(plaintext []byte) []byte {
	key := CipherSeed
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		key ^= b
		out[i] = key
	}
	return out
}

// Decrypt reverses Encrypt. Each output byte is the running key XORed
// with the ciphertext byte, and the running key then becomes the
// ciphertext byte just consumed. Both directions chain off the
// ciphertext stream, which is what makes the transform self-inverse.
func Decrypt(ciphertext []byte) []byte {
	key := CipherSeed
	out := make([]byte, len(ciphertext))
	for i, b := range ciphertext {
		out[i] = key ^ b
		key = b
	}
	return out
}
