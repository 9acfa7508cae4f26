package purecipher

// Cipher is a pure (stateless) byte transform.
//
// Implementations are expected to make Encipher and Decipher inverses of one
// another. This is a documented expectation, not something the package can
// check: a Cipher built from a non-bijective table satisfies the interface
// and silently loses information.
type Cipher interface {
	// Encipher transforms a single byte.
	Encipher(token byte) byte

	// Decipher reverses Encipher for a single byte.
	Decipher(token byte) byte
}

// InPlaceCipher is implemented by ciphers that can transform a whole buffer
// faster than one interface call per byte.
type InPlaceCipher interface {
	Cipher

	// EncipherInPlace enciphers every byte of buf, in order.
	EncipherInPlace(buf []byte)

	// DecipherInPlace deciphers every byte of buf, in order.
	DecipherInPlace(buf []byte)
}

// NullCipher performs no ciphering. Both directions return their input.
type NullCipher struct{}

// Encipher returns token unchanged.
func (NullCipher) Encipher(token byte) byte { return token }

// Decipher returns token unchanged.
func (NullCipher) Decipher(token byte) byte { return token }

// EncipherInPlace leaves buf unchanged.
func (NullCipher) EncipherInPlace(buf []byte) {}

// DecipherInPlace leaves buf unchanged.
func (NullCipher) DecipherInPlace(buf []byte) {}

// OrNull returns c, or NullCipher when c is nil.
func OrNull(c Cipher) Cipher {
	if c == nil {
		return NullCipher{}
	}
	return c
}

// EncipherInPlace enciphers buf in place with c. A nil cipher is treated as
// NullCipher and an empty buffer is a no-op.
func EncipherInPlace(c Cipher, buf []byte) {
	c = OrNull(c)
	if ip, ok := c.(InPlaceCipher); ok {
		ip.EncipherInPlace(buf)
		return
	}
	for i, b := range buf {
		buf[i] = c.Encipher(b)
	}
}

// DecipherInPlace deciphers buf in place with c. A nil cipher is treated as
// NullCipher and an empty buffer is a no-op.
func DecipherInPlace(c Cipher, buf []byte) {
	c = OrNull(c)
	if ip, ok := c.(InPlaceCipher); ok {
		ip.DecipherInPlace(buf)
		return
	}
	for i, b := range buf {
		buf[i] = c.Decipher(b)
	}
}

// EncipherBytes returns a newly allocated copy of data enciphered with c.
//
// The result is not guaranteed to be valid UTF-8 even when data is; convert
// with string(...) only when the cipher is known to preserve it.
func EncipherBytes(c Cipher, data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	EncipherInPlace(c, out)
	return out
}

// DecipherBytes returns a newly allocated copy of data deciphered with c.
func DecipherBytes(c Cipher, data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	DecipherInPlace(c, out)
	return out
}

// EncipherString is a convenience wrapper around EncipherBytes for text.
func EncipherString(c Cipher, s string) string {
	return string(EncipherBytes(c, []byte(s)))
}

// DecipherString is a convenience wrapper around DecipherBytes for text.
func DecipherString(c Cipher, s string) string {
	return string(DecipherBytes(c, []byte(s)))
}
