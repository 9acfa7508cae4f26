package substitution

import (
	"fmt"
	"strings"
)

// TableSize is the number of values indexable by a single byte.
const TableSize = 256

// Table maps every byte value to a byte value: index i holds the target for
// input byte i.
//
// A Table is meant to be a bijection, but nothing enforces it. Duplicate
// targets produce a cipher that cannot be reversed.
type Table [TableSize]byte

// Identity returns the table that maps every byte to itself.
func Identity() Table {
	var t Table
	for i := range t {
		t[i] = byte(i)
	}
	return t
}

// At returns the target of index i.
func (t Table) At(i byte) byte {
	return t[i]
}

// Set assigns v as the target of index i.
func (t *Table) Set(i, v byte) {
	t[i] = v
}

// IsBijective reports whether every byte value appears exactly once.
func (t Table) IsBijective() bool {
	var seen [TableSize]bool
	for _, v := range t {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Inverse returns the table that undoes t, computed as inv[t[i]] = i in
// ascending order of i. When t is not a bijection the last colliding index
// wins and bytes that are never targeted map to 0.
func (t Table) Inverse() Table {
	var inv Table
	for i, v := range t {
		inv[v] = byte(i)
	}
	return inv
}

// String lists the entries that differ from the identity as "a => b".
func (t Table) String() string {
	var entries []string
	for i, v := range t {
		if byte(i) != v {
			entries = append(entries, fmt.Sprintf("%s => %s", printable(byte(i)), printable(v)))
		}
	}
	return "Table[" + strings.Join(entries, ", ") + "]"
}

func printable(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
