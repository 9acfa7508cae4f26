// Package purecipher implements pure byte substitution ciphers.
//
// A pure cipher maps each byte independently of its position and of every
// other byte. It keeps no state between calls, so the same Cipher value can
// be shared freely between goroutines.
//
// # Getting Started
//
// Use a preset, or build a table with the substitution package:
//
//	c := presets.Caesar()
//	out := purecipher.EncipherString(c, "We attack at dawn.") // "Zh dwwdfn dw gdzq."
//
//	b := substitution.NewBuilder()
//	_ = b.Swap('a', 'b')
//	_ = b.RotateRange('0', '9', 5)
//	custom, err := b.Cipher()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Buffers
//
// EncipherInPlace and DecipherInPlace transform a caller-owned buffer. Ciphers
// that implement InPlaceCipher run a single table walk; other ciphers are
// called once per byte. A nil cipher behaves as NullCipher.
//
// # Subpackages
//
//   - substitution: the 256-entry table, its builder and the table cipher
//   - presets: Caesar, ROT13, leet and null ciphers plus a named registry
//   - recipe: TOML, YAML and JSON cipher descriptions with hot reload
//   - capi: C shared library bindings
//   - cmd/purecipher: command-line front end
//
// # Reversibility
//
// Encipher and Decipher are only inverses when the underlying table is a
// permutation. Tables built with substitution.Builder always are. Tables
// passed directly to substitution.FromTable are not checked; use
// Cipher.Reversible to find out.
package purecipher
