package recipe

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/opd-ai/purecipher"
	"github.com/opd-ai/purecipher/limits"
	"github.com/opd-ai/purecipher/presets"
	"github.com/opd-ai/purecipher/substitution"
)

var (
	// ErrInvalidRecipe indicates a document that does not describe a recipe.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrUnknownOp indicates an edit with an unsupported operation.
	ErrUnknownOp = errors.New("unknown edit operation")
)

// Op names a builder edit.
type Op string

const (
	OpSwap   Op = "swap"
	OpRotate Op = "rotate"
)

// Byte is a byte value written either as a one-character string ("A") or as
// an integer between 0 and 255.
type Byte byte

// UnmarshalJSON accepts a single-byte string or an integer in [0, 255].
func (b *Byte) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if len(s) != 1 {
			return fmt.Errorf("%w: byte string %q must be exactly one byte", ErrInvalidRecipe, s)
		}
		*b = Byte(s[0])
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: byte value %s is neither a character nor an integer", ErrInvalidRecipe, data)
	}
	if n < 0 || n > 0xff {
		return fmt.Errorf("%w: byte value %d out of range", ErrInvalidRecipe, n)
	}
	*b = Byte(n)
	return nil
}

// Edit is one builder operation. Swap uses Left and Right; Rotate uses From,
// To and Offset.
type Edit struct {
	Op     Op   `json:"op"`
	Left   Byte `json:"left"`
	Right  Byte `json:"right"`
	From   Byte `json:"from"`
	To     Byte `json:"to"`
	Offset int  `json:"offset"`
}

// Swap returns a swap edit.
func Swap(left, right byte) Edit {
	return Edit{Op: OpSwap, Left: Byte(left), Right: Byte(right)}
}

// Rotate returns a ranged rotation edit.
func Rotate(from, to byte, offset int) Edit {
	return Edit{Op: OpRotate, From: Byte(from), To: Byte(to), Offset: offset}
}

// Apply performs the edit on b.
func (e Edit) Apply(b *substitution.Builder) error {
	switch e.Op {
	case OpSwap:
		return b.Swap(byte(e.Left), byte(e.Right))
	case OpRotate:
		return b.RotateRange(byte(e.From), byte(e.To), e.Offset)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, e.Op)
	}
}

// Recipe is a named, reusable sequence of builder edits.
type Recipe struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Edits       []Edit `json:"edits"`
}

// Apply performs every edit of r on b, in order. It stops at the first
// failing edit and reports its index.
func (r Recipe) Apply(b *substitution.Builder) error {
	if err := limits.ValidateEditCount(len(r.Edits)); err != nil {
		return fmt.Errorf("recipe %q: %w", r.Name, err)
	}
	for i, e := range r.Edits {
		if err := e.Apply(b); err != nil {
			return fmt.Errorf("recipe %q edit %d: %w", r.Name, i, err)
		}
	}
	return nil
}

// Build applies r to a fresh builder and returns the resulting cipher.
func (r Recipe) Build() (*substitution.Cipher, error) {
	b := substitution.NewBuilder()
	if err := r.Apply(b); err != nil {
		b.Discard()
		return nil, err
	}
	return b.Cipher()
}

// Register builds every recipe and registers it as a preset under its name.
// Nothing is registered unless every recipe builds and every name is free.
// With replace set, existing presets of the same name are overwritten. Two
// recipes sharing a name are always rejected.
func Register(recipes []Recipe, replace bool) error {
	entries := make([]presets.Entry, len(recipes))
	for i, r := range recipes {
		if err := limits.ValidateName(r.Name); err != nil {
			return fmt.Errorf("%w: recipe %d name: %w", ErrInvalidRecipe, i, err)
		}
		c, err := r.Build()
		if err != nil {
			return err
		}
		entries[i] = presets.Entry{
			Name:    r.Name,
			Factory: func() purecipher.Cipher { return c },
		}
	}
	return presets.RegisterAll(entries, replace)
}

// Find returns the recipe called name.
func Find(recipes []Recipe, name string) (Recipe, bool) {
	for _, r := range recipes {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}
