// Package limits provides centralized size limits and validation helpers for
// purecipher's untrusted inputs: buffer lengths arriving over the C boundary
// and recipe documents read from disk.
//
// # Boundary Lengths
//
// A C caller passes buffer lengths as size_t. Before such a length becomes a
// Go slice length it is converted with BufferLength, which rejects values
// above MaxBufferLength instead of letting them wrap into a negative int.
// Every length a real allocation can back passes; the check only catches
// sign-wrapped values such as (size_t)-1:
//
//	n, err := limits.BufferLength(length)
//	if err != nil {
//	    // log and treat as a no-op
//	}
//
// # Recipe Input
//
// Recipe files are bounded by MaxRecipeFileSize, recipes by MaxRecipeEdits
// edits, and recipe names by MaxRecipeName bytes:
//
//	if err := limits.ValidateRecipeFile(data); err != nil {
//	    // ErrEmpty or ErrTooLarge
//	}
//
// # Error Types
//
//   - ErrEmpty: an empty input was provided where content is required
//   - ErrTooLarge: the input exceeds its limit
//
// Both are wrapped with the actual and maximum sizes; test with errors.Is.
package limits
