// Package substitution implements byte substitution ciphers built from a
// 256-entry permutation table.
//
// # Building a Cipher
//
// A Builder starts from the identity table and is edited with swaps and
// ranged rotations. Edits compose on the live table:
//
//	b := substitution.NewBuilder()
//	_ = b.RotateRange('A', 'Z', 3)
//	_ = b.RotateRange('a', 'z', 3)
//	caesar, _ := b.Cipher()
//
//	caesar.Encipher('W') // 'Z'
//
// Cipher consumes the builder and derives the inverse table in a single
// pass. No validation is performed: edits that make two inputs share a
// target (for example by calling Table.Set directly and passing the result
// to FromTable) yield a cipher whose Decipher cannot undo Encipher. Use
// Cipher.Reversible to inspect a table without changing this behaviour.
//
// # Core Types
//
//   - [Table]: the 256-entry mapping, a plain value type
//   - [Builder]: mutable construction surface, single owner
//   - [Cipher]: immutable forward/inverse pair, safe for concurrent reads
//
// # Errors
//
//   - [ErrInvalidRange]: RotateRange called with to < from
//   - [ErrBuilderConsumed]: a Builder used after Cipher or Discard
//
// None of this is cryptography. Substitution ciphers are trivially broken
// and are provided for reversible obfuscation only.
package substitution
