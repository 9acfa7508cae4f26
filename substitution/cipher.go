package substitution

import (
	"encoding/hex"

	"github.com/opd-ai/purecipher"
	"golang.org/x/crypto/blake2b"
)

var _ purecipher.InPlaceCipher = (*Cipher)(nil)

// Cipher transforms bytes by direct substitution through a forward table and
// its inverse. A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	forward Table
	inverse Table
}

// FromTable builds a cipher from t without checking that it is a bijection.
// Duplicate targets in t result in an irreversible cipher.
func FromTable(t Table) *Cipher {
	return &Cipher{forward: t, inverse: t.Inverse()}
}

// IdentityCipher returns a substitution cipher that maps every byte to
// itself. It behaves like purecipher.NullCipher but carries real tables.
func IdentityCipher() *Cipher {
	id := Identity()
	return &Cipher{forward: id, inverse: id}
}

// Encipher returns the forward target of token.
func (c *Cipher) Encipher(token byte) byte {
	return c.forward[token]
}

// Decipher returns the inverse target of token.
func (c *Cipher) Decipher(token byte) byte {
	return c.inverse[token]
}

// EncipherInPlace enciphers every byte of buf.
func (c *Cipher) EncipherInPlace(buf []byte) {
	for i, b := range buf {
		buf[i] = c.forward[b]
	}
}

// DecipherInPlace deciphers every byte of buf.
func (c *Cipher) DecipherInPlace(buf []byte) {
	for i, b := range buf {
		buf[i] = c.inverse[b]
	}
}

// Forward returns a copy of the forward table.
func (c *Cipher) Forward() Table {
	return c.forward
}

// Inverse returns a copy of the inverse table.
func (c *Cipher) Inverse() Table {
	return c.inverse
}

// Reversible reports whether the forward table is a bijection, which is
// when Decipher exactly undoes Encipher.
func (c *Cipher) Reversible() bool {
	return c.forward.IsBijective()
}

// Fingerprint returns the hex BLAKE2b-256 digest of the forward table. Two
// ciphers with the same fingerprint encipher identically.
func (c *Cipher) Fingerprint() string {
	sum := blake2b.Sum256(c.forward[:])
	return hex.EncodeToString(sum[:])
}

// String describes the non-identity entries of the forward table.
func (c *Cipher) String() string {
	return "Cipher" + c.forward.String()[len("Table"):]
}
