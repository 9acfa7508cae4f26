package main

/*
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"github.com/opd-ai/purecipher"
	"github.com/opd-ai/purecipher/limits"
	"github.com/opd-ai/purecipher/logging"
	"github.com/opd-ai/purecipher/presets"
	"github.com/opd-ai/purecipher/recipe"
	"github.com/opd-ai/purecipher/substitution"
	"github.com/sirupsen/logrus"
)

// This is the main package required for building as c-shared
// It provides C-compatible wrappers for the purecipher engine

func main() {} // Required for c-shared build mode

//export purecipher_cipher_caesar
func purecipher_cipher_caesar() unsafe.Pointer {
	return allocCipher(presets.NameCaesar, presets.Caesar())
}

//export purecipher_cipher_rot13
func purecipher_cipher_rot13() unsafe.Pointer {
	return allocCipher(presets.NameRot13, presets.Rot13())
}

//export purecipher_cipher_leet
func purecipher_cipher_leet() unsafe.Pointer {
	return allocCipher(presets.NameLeet, presets.Leet())
}

//export purecipher_cipher_null
func purecipher_cipher_null() unsafe.Pointer {
	return allocCipher(presets.NameNull, presets.Null())
}

//export purecipher_cipher_preset
func purecipher_cipher_preset(name *byte) unsafe.Pointer {
	if name == nil {
		return nil
	}

	presetName := goString(name)
	c, err := presets.New(presetName)
	if err != nil {
		logging.NewLogger("capi", "purecipher_cipher_preset").
			WithError(err, "lookup preset").
			WithField("preset", presetName).
			Warn("Unknown preset requested")
		return nil
	}
	return allocCipher(presetName, c)
}

//export purecipher_free
func purecipher_free(cipher unsafe.Pointer) {
	freeCipher(cipher)
}

//export purecipher_encipher_buffer
func purecipher_encipher_buffer(cipher unsafe.Pointer, buffer *byte, length uintptr) {
	transformBuffer("purecipher_encipher_buffer", cipher, buffer, length, purecipher.EncipherInPlace)
}

//export purecipher_decipher_buffer
func purecipher_decipher_buffer(cipher unsafe.Pointer, buffer *byte, length uintptr) {
	transformBuffer("purecipher_decipher_buffer", cipher, buffer, length, purecipher.DecipherInPlace)
}

//export purecipher_encipher_str
func purecipher_encipher_str(cipher unsafe.Pointer, str *byte) {
	if str == nil {
		return
	}
	transformBuffer("purecipher_encipher_str", cipher, str, cStringLength(str), purecipher.EncipherInPlace)
}

//export purecipher_decipher_str
func purecipher_decipher_str(cipher unsafe.Pointer, str *byte) {
	if str == nil {
		return
	}
	transformBuffer("purecipher_decipher_str", cipher, str, cStringLength(str), purecipher.DecipherInPlace)
}

//export purecipher_builder_new
func purecipher_builder_new() unsafe.Pointer {
	return allocBuilder(substitution.NewBuilder())
}

//export purecipher_builder_swap
func purecipher_builder_swap(builder unsafe.Pointer, left, right uint8) bool {
	b, ok := lookupBuilder(builder)
	if !ok {
		return false
	}

	if err := b.Swap(left, right); err != nil {
		logging.NewLogger("capi", "purecipher_builder_swap").
			WithError(err, "swap").
			Warn("Builder swap rejected")
		return false
	}
	return true
}

//export purecipher_builder_rotate
func purecipher_builder_rotate(builder unsafe.Pointer, from, to uint8, offset int32) bool {
	b, ok := lookupBuilder(builder)
	if !ok {
		return false
	}

	if err := b.RotateRange(from, to, int(offset)); err != nil {
		logging.NewLogger("capi", "purecipher_builder_rotate").
			WithError(err, "rotate range").
			WithFields(logrus.Fields{"from": from, "to": to, "offset": offset}).
			Warn("Builder rotation rejected")
		return false
	}
	return true
}

//export purecipher_builder_into_cipher
func purecipher_builder_into_cipher(builder unsafe.Pointer) unsafe.Pointer {
	b, ok := takeBuilder(builder)
	if !ok {
		return nil
	}

	c, err := b.Cipher()
	if err != nil {
		logging.NewLogger("capi", "purecipher_builder_into_cipher").
			WithError(err, "finalize builder").
			Error("Builder could not be finalized")
		return nil
	}
	return allocCipher("builder", c)
}

//export purecipher_builder_discard
func purecipher_builder_discard(builder unsafe.Pointer) {
	if b, ok := takeBuilder(builder); ok {
		b.Discard()
	}
}

//export purecipher_recipe_load
func purecipher_recipe_load(path, name *byte) unsafe.Pointer {
	if path == nil || name == nil {
		return nil
	}

	recipePath, recipeName := goString(path), goString(name)
	logger := logging.NewLogger("capi", "purecipher_recipe_load").
		WithFields(logrus.Fields{"path": recipePath, "recipe": recipeName})

	recipes, err := recipe.ParseFile(recipePath)
	if err != nil {
		logger.WithError(err, "parse recipe file").Error("Failed to load recipe file")
		return nil
	}

	r, ok := recipe.Find(recipes, recipeName)
	if !ok {
		logger.Warn("Recipe not found in file")
		return nil
	}

	c, err := r.Build()
	if err != nil {
		logger.WithError(err, "build recipe").Error("Failed to build recipe")
		return nil
	}
	return allocCipher(recipeName, c)
}

// transformBuffer resolves the handle and runs fn over the caller's buffer in
// place. Missing handles, NULL buffers and zero lengths are no-ops.
func transformBuffer(function string, cipher unsafe.Pointer, buffer *byte, length uintptr, fn func(purecipher.Cipher, []byte)) {
	if buffer == nil || length == 0 {
		return
	}

	c, ok := lookupCipher(cipher)
	if !ok {
		return
	}

	n, err := limits.BufferLength(length)
	if err != nil {
		logging.NewLogger("capi", function).
			WithError(err, "validate buffer length").
			Error("Buffer length rejected")
		return
	}

	fn(c, unsafe.Slice(buffer, n))
}

// cStringLength returns the number of bytes before the NUL terminator.
func cStringLength(str *byte) uintptr {
	return uintptr(C.strlen((*C.char)(unsafe.Pointer(str))))
}

func goString(str *byte) string {
	return C.GoString((*C.char)(unsafe.Pointer(str)))
}
