package limits

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MaxBufferLength is the largest boundary buffer length that is turned
	// into a Go slice. It only guards sign wrap: a size_t above it, such as
	// a negative ssize_t passed as size_t, would become a negative int.
	MaxBufferLength = math.MaxInt

	// MaxRecipeFileSize is the maximum size of a recipe file (1MB).
	MaxRecipeFileSize = 1024 * 1024

	// MaxRecipeEdits is the maximum number of edits in a single recipe.
	MaxRecipeEdits = 4096

	// MaxRecipeName is the maximum length in bytes of a recipe or preset name.
	MaxRecipeName = 128
)

var (
	// ErrEmpty indicates an empty input was provided
	ErrEmpty = errors.New("empty input")

	// ErrTooLarge indicates the input exceeds its limit
	ErrTooLarge = errors.New("input too large")
)

// BufferLength converts a C size_t length into a Go slice length.
//
// CWE-190: Integer Overflow or Wraparound
func BufferLength(length uintptr) (int, error) {
	if uint64(length) > uint64(MaxBufferLength) {
		return 0, fmt.Errorf("%w: buffer length %d exceeds limit %d", ErrTooLarge, uint64(length), uint64(MaxBufferLength))
	}
	return int(length), nil
}

// ValidateRecipeFile validates the raw bytes of a recipe file.
func ValidateRecipeFile(data []byte) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	if len(data) > MaxRecipeFileSize {
		return fmt.Errorf("%w: recipe file size %d exceeds limit %d", ErrTooLarge, len(data), MaxRecipeFileSize)
	}
	return nil
}

// ValidateEditCount validates the number of edits in a recipe. A recipe
// without edits is valid and builds the identity cipher.
func ValidateEditCount(n int) error {
	if n > MaxRecipeEdits {
		return fmt.Errorf("%w: %d edits exceeds limit %d", ErrTooLarge, n, MaxRecipeEdits)
	}
	return nil
}

// ValidateName validates a recipe or preset name.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmpty
	}
	if len(name) > MaxRecipeName {
		return fmt.Errorf("%w: name length %d exceeds limit %d", ErrTooLarge, len(name), MaxRecipeName)
	}
	return nil
}
