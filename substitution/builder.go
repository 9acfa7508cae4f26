package substitution

import (
	"fmt"

	"github.com/opd-ai/purecipher/logging"
	"github.com/sirupsen/logrus"
)

// Builder constructs a substitution cipher from a sequence of edits.
//
// Ciphers may only be expressed with swaps and ranged rotations. A Builder
// owns its table exclusively until Cipher or Discard is called, after which
// every method returns ErrBuilderConsumed. A Builder is not safe for
// concurrent use.
type Builder struct {
	table    Table
	consumed bool
}

// NewBuilder returns a builder whose table maps every byte to itself.
func NewBuilder() *Builder {
	return &Builder{table: Identity()}
}

// Swap exchanges the targets currently assigned to left and right.
//
// Swaps act on the live table, so they chain:
//
//	b.Swap('A', 'B') // A->B, B->A
//	b.Swap('A', 'D') // A->D, B->A, D->B
//
// Swapping a byte with itself is a no-op.
func (b *Builder) Swap(left, right byte) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	b.table[left], b.table[right] = b.table[right], b.table[left]
	return nil
}

// RotateRange treats the inclusive slice of entries [from, to] as a circular
// buffer and rotates it by offset positions.
//
// A positive offset moves every entry offset slots toward the start of the
// range, so on a fresh builder byte b enciphers to b+offset, wrapping inside
// the range. A negative offset rotates the other way. Only |offset| modulo
// the range length is applied and entries outside the range are untouched.
//
// It returns ErrInvalidRange, leaving the table unchanged, when to < from.
func (b *Builder) RotateRange(from, to byte, offset int) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	if to < from {
		return fmt.Errorf("%w: to %d is below from %d", ErrInvalidRange, to, from)
	}

	n := int(to) - int(from) + 1
	k := offset % n
	if k < 0 {
		k = -k
	}
	if k == 0 {
		return nil
	}

	window := b.table[from : int(to)+1]
	if offset < 0 {
		rotateLeft(window, n-k)
	} else {
		rotateLeft(window, k)
	}
	return nil
}

// Table returns a copy of the table under construction.
func (b *Builder) Table() Table {
	return b.table
}

// Consumed reports whether Cipher or Discard has been called.
func (b *Builder) Consumed() bool {
	return b.consumed
}

// Cipher consumes the builder and returns the cipher for its current table.
//
// The inverse table is derived without validation: if the edits produced
// colliding targets the cipher is not reversible.
func (b *Builder) Cipher() (*Cipher, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true
	c := FromTable(b.table)

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logging.NewLogger("substitution", "Builder.Cipher").
			WithFields(logrus.Fields{
				"fingerprint": c.Fingerprint(),
				"bijective":   b.table.IsBijective(),
			}).
			Debug("Builder finalized into cipher")
	}
	return c, nil
}

// Discard consumes the builder without producing a cipher.
func (b *Builder) Discard() {
	b.consumed = true
}

// rotateLeft moves every element of s k places toward the start, wrapping
// around. It requires 0 <= k <= len(s).
func rotateLeft(s []byte, k int) {
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func reverse(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
