//go:build cgo

// Package main provides C API bindings for purecipher, enabling C and C++
// programs and other language bindings to use the substitution engine.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libpurecipher.so ./capi/
//
// This generates:
//   - libpurecipher.so: The shared library
//   - libpurecipher.h: Auto-generated C header file with function declarations
//
// # C API Usage
//
//	#include "libpurecipher.h"
//
//	void *caesar = purecipher_cipher_caesar();
//	char message[] = "We attack at dawn.";
//	purecipher_encipher_str(caesar, (GoUint8 *)message);   // "Zh dwwdfn dw gdzq."
//	purecipher_decipher_str(caesar, (GoUint8 *)message);
//	purecipher_free(caesar);
//
// Custom tables are assembled with a builder. Finalizing the builder consumes
// its handle:
//
//	void *b = purecipher_builder_new();
//	purecipher_builder_swap(b, 'a', 'b');
//	purecipher_builder_rotate(b, '0', '9', 5);
//	void *cipher = purecipher_builder_into_cipher(b);
//	// b must not be used again
//	purecipher_free(cipher);
//
// Recipe files can be loaded by path and recipe name:
//
//	void *c = purecipher_recipe_load((GoUint8 *)"ciphers.toml", (GoUint8 *)"shift-digits");
//
// # Handles
//
// Every handle is a small C heap allocation holding a registry id. The Go
// objects live in a mutex-guarded registry, so C never holds a Go pointer.
//
//   - Cipher handles are released with purecipher_free.
//   - Builder handles are released by purecipher_builder_into_cipher or
//     purecipher_builder_discard.
//
// Passing NULL for a handle, buffer or string is a no-op. Using a handle after
// it was released, or releasing it twice, is undefined behaviour.
//
// # Thread Safety
//
// Cipher handles may be used from several threads at once. A builder handle
// must only be used by one thread at a time.
package main
