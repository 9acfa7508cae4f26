package presets

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/opd-ai/purecipher"
	"github.com/opd-ai/purecipher/limits"
	"github.com/opd-ai/purecipher/logging"
)

// Factory constructs a fresh cipher for a registered name.
type Factory func() purecipher.Cipher

var (
	// ErrUnknownPreset indicates no factory is registered under a name.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrDuplicatePreset indicates a name is already registered.
	ErrDuplicatePreset = errors.New("preset already registered")
)

// Global preset registry
var (
	registry   = make(map[string]Factory)
	registryMu sync.RWMutex
)

func init() {
	builtins := map[string]Factory{
		NameCaesar: func() purecipher.Cipher { return Caesar() },
		NameRot13:  func() purecipher.Cipher { return Rot13() },
		NameLeet:   func() purecipher.Cipher { return Leet() },
		NameNull:   Null,
	}
	for name, f := range builtins {
		registry[name] = f
	}
}

// Register adds a factory under name. Registering a name twice fails with
// ErrDuplicatePreset; use Replace to overwrite.
func Register(name string, f Factory) error {
	if f == nil {
		return fmt.Errorf("cannot register nil factory for %q", name)
	}
	if err := limits.ValidateName(name); err != nil {
		return fmt.Errorf("invalid preset name: %w", err)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePreset, name)
	}
	registry[name] = f

	logging.NewLogger("presets", "Register").WithField("name", name).Debug("Preset registered")
	return nil
}

// Replace registers f under name, overwriting any existing factory.
func Replace(name string, f Factory) error {
	if f == nil {
		return fmt.Errorf("cannot register nil factory for %q", name)
	}
	if err := limits.ValidateName(name); err != nil {
		return fmt.Errorf("invalid preset name: %w", err)
	}

	registryMu.Lock()
	_, existed := registry[name]
	registry[name] = f
	registryMu.Unlock()

	logging.NewLogger("presets", "Replace").
		WithField("name", name).
		WithField("replaced", existed).
		Debug("Preset registered")
	return nil
}

// Entry names one factory in a batch registration.
type Entry struct {
	Name    string
	Factory Factory
}

// RegisterAll registers a batch of factories atomically: either every entry
// is registered or none is. A name appearing twice in the batch fails with
// ErrDuplicatePreset. Without replace, a name that is already registered
// fails the same way; with replace, existing factories are overwritten.
func RegisterAll(entries []Entry, replace bool) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Factory == nil {
			return fmt.Errorf("cannot register nil factory for %q", e.Name)
		}
		if err := limits.ValidateName(e.Name); err != nil {
			return fmt.Errorf("invalid preset name: %w", err)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: %s appears twice in batch", ErrDuplicatePreset, e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if !replace {
		for _, e := range entries {
			if _, exists := registry[e.Name]; exists {
				return fmt.Errorf("%w: %s", ErrDuplicatePreset, e.Name)
			}
		}
	}
	for _, e := range entries {
		registry[e.Name] = e.Factory
	}

	logging.NewLogger("presets", "RegisterAll").
		WithField("count", len(entries)).
		WithField("replace", replace).
		Debug("Preset batch registered")
	return nil
}

// Unregister removes name from the registry. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, name)
}

// New constructs the cipher registered under name.
func New(name string) (purecipher.Cipher, error) {
	registryMu.RLock()
	f, exists := registry[name]
	registryMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return f(), nil
}

// NewOrNull constructs the cipher registered under name, falling back to
// NullCipher when the name is unknown.
func NewOrNull(name string) purecipher.Cipher {
	c, err := New(name)
	if err != nil {
		logging.NewLogger("presets", "NewOrNull").
			WithError(err, "lookup").
			Warn("Falling back to null cipher")
		return purecipher.NullCipher{}
	}
	return c
}

// Names returns every registered name in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
