package substitution

import "errors"

var (
	// ErrInvalidRange indicates a rotation range whose upper bound is below
	// its lower bound.
	ErrInvalidRange = errors.New("invalid rotation range")

	// ErrBuilderConsumed indicates a builder was used after Cipher or Discard.
	ErrBuilderConsumed = errors.New("builder already consumed")
)
