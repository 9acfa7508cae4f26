package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/opd-ai/purecipher"
	"github.com/opd-ai/purecipher/logging"
	"github.com/opd-ai/purecipher/substitution"
	"github.com/sirupsen/logrus"
)

// Global registries for objects owned by C callers. C only ever holds a
// C-allocated cell containing a registry id, never a Go pointer.
var (
	cipherInstances  = make(map[uintptr]purecipher.Cipher)
	builderInstances = make(map[uintptr]*substitution.Builder)
	nextHandleID     = uintptr(1)
	handleMutex      sync.RWMutex
)

// newHandleCell allocates the C cell handed to the caller. Allocation
// failure aborts inside the cgo malloc wrapper.
func newHandleCell(id uintptr) unsafe.Pointer {
	cell := (*C.uintptr_t)(C.malloc(C.size_t(unsafe.Sizeof(C.uintptr_t(0)))))
	*cell = C.uintptr_t(id)
	return unsafe.Pointer(cell)
}

// getHandleID extracts the registry id from an opaque handle.
func getHandleID(h unsafe.Pointer) (uintptr, bool) {
	if h == nil {
		return 0, false
	}
	return uintptr(*(*C.uintptr_t)(h)), true
}

// releaseHandleCell frees the C cell. Freeing a cell twice is a C
// double-free and is the caller's responsibility to avoid.
func releaseHandleCell(h unsafe.Pointer) {
	C.free(h)
}

// allocCipher registers c and returns a new opaque handle for it.
func allocCipher(kind string, c purecipher.Cipher) unsafe.Pointer {
	handleMutex.Lock()
	id := nextHandleID
	nextHandleID++
	cipherInstances[id] = purecipher.OrNull(c)
	handleMutex.Unlock()

	logging.NewLogger("capi", "allocCipher").
		WithFields(logrus.Fields{"handle": id, "kind": kind}).
		Debug("Cipher handle allocated")
	return newHandleCell(id)
}

// lookupCipher resolves a cipher handle. Unknown ids resolve to nothing.
func lookupCipher(h unsafe.Pointer) (purecipher.Cipher, bool) {
	id, ok := getHandleID(h)
	if !ok {
		return nil, false
	}

	handleMutex.RLock()
	c, exists := cipherInstances[id]
	handleMutex.RUnlock()
	return c, exists
}

// freeCipher drops the registry entry and frees the handle cell.
func freeCipher(h unsafe.Pointer) {
	id, ok := getHandleID(h)
	if !ok {
		return
	}

	handleMutex.Lock()
	_, exists := cipherInstances[id]
	delete(cipherInstances, id)
	handleMutex.Unlock()

	if !exists {
		logging.NewLogger("capi", "freeCipher").
			WithCaller().
			WithField("handle", id).
			Warn("Freeing handle that names no cipher")
	}
	releaseHandleCell(h)
}

// allocBuilder registers b and returns a new opaque handle for it.
func allocBuilder(b *substitution.Builder) unsafe.Pointer {
	handleMutex.Lock()
	id := nextHandleID
	nextHandleID++
	builderInstances[id] = b
	handleMutex.Unlock()

	logging.NewLogger("capi", "allocBuilder").
		WithField("handle", id).
		Debug("Builder handle allocated")
	return newHandleCell(id)
}

// lookupBuilder resolves a builder handle. Unknown ids resolve to nothing.
func lookupBuilder(h unsafe.Pointer) (*substitution.Builder, bool) {
	id, ok := getHandleID(h)
	if !ok {
		return nil, false
	}

	handleMutex.RLock()
	b, exists := builderInstances[id]
	handleMutex.RUnlock()
	return b, exists
}

// takeBuilder removes a builder from the registry, frees its handle cell and
// returns the builder for finalization or disposal.
func takeBuilder(h unsafe.Pointer) (*substitution.Builder, bool) {
	id, ok := getHandleID(h)
	if !ok {
		return nil, false
	}

	handleMutex.Lock()
	b, exists := builderInstances[id]
	delete(builderInstances, id)
	handleMutex.Unlock()

	releaseHandleCell(h)
	return b, exists
}

// liveHandles reports how many ciphers and builders are registered.
func liveHandles() (ciphers, builders int) {
	handleMutex.RLock()
	defer handleMutex.RUnlock()
	return len(cipherInstances), len(builderInstances)
}
