package recipe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/opd-ai/purecipher/limits"
	"github.com/opd-ai/purecipher/logging"
	"github.com/opd-ai/purecipher/presets"
	"github.com/sirupsen/logrus"
)

// ParseFile reads, validates and decodes the recipe file at path. The format
// is chosen from the file extension.
func ParseFile(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe file: %w", err)
	}
	if err := limits.ValidateRecipeFile(data); err != nil {
		return nil, fmt.Errorf("recipe file %s: %w", path, err)
	}

	format := FormatFromPath(path)
	recipes, err := Decode(data, format)
	if err != nil {
		logging.NewLogger("recipe", "ParseFile").
			WithFields(logging.BytePreview(data, "recipe")).
			WithFields(logrus.Fields{"path": path, "format": format.String()}).
			WithError(err, "decode").
			Debug("Recipe file rejected")
		return nil, fmt.Errorf("recipe file %s: %w", path, err)
	}
	return recipes, nil
}

// Loader loads a recipe file into the preset registry and optionally keeps
// it registered as the file changes on disk.
type Loader struct {
	path     string
	recipes  []Recipe
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	onChange []func([]Recipe)
	ctx      context.Context
	cancel   context.CancelFunc
	errChan  chan error
	debounce time.Duration
}

// NewLoader creates a loader for the recipe file at path.
func NewLoader(path string) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		path:     path,
		errChan:  make(chan error, 1),
		ctx:      ctx,
		cancel:   cancel,
		debounce: 100 * time.Millisecond,
	}
}

// Load parses the file and registers every recipe as a preset, replacing
// presets of the same name. Recipes registered by a previous Load that are
// no longer in the file are unregistered.
func (l *Loader) Load() ([]Recipe, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	recipes, err := ParseFile(l.path)
	if err != nil {
		return nil, err
	}
	if err := Register(recipes, true); err != nil {
		return nil, err
	}

	// Recipes dropped from the file stop being presets.
	var removed []string
	for _, prev := range l.recipes {
		if _, ok := Find(recipes, prev.Name); !ok {
			presets.Unregister(prev.Name)
			removed = append(removed, prev.Name)
		}
	}
	if len(removed) > 0 {
		logging.NewLogger("recipe", "Loader.Load").
			WithFields(logrus.Fields{"path": l.path, "removed": removed}).
			Debug("Recipes removed from file unregistered")
	}

	l.recipes = recipes
	logging.NewLogger("recipe", "Loader.Load").
		WithFields(logrus.Fields{
			"path":    l.path,
			"recipes": len(recipes),
		}).
		Debug("Recipe file loaded")
	return recipes, nil
}

// Recipes returns the most recently loaded recipes.
func (l *Loader) Recipes() []Recipe {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.recipes
}

// Watch starts watching the recipe file. Each write reloads the file and,
// when it is valid, re-registers its recipes and invokes the OnChange
// callbacks. Invalid revisions are reported on Errors and leave the previous
// registration in place.
func (l *Loader) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	l.watcher = watcher

	// Editors often replace files, so watch the directory.
	dir := filepath.Dir(l.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go l.watchLoop()

	return nil
}

func (l *Loader) watchLoop() {
	var debounceTimer *time.Timer

	for {
		select {
		case <-l.ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(l.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(l.debounce, l.reload)

		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.report(err)
		}
	}
}

func (l *Loader) reload() {
	if l.ctx.Err() != nil {
		return
	}

	recipes, err := l.Load()
	if err != nil {
		logging.NewLogger("recipe", "Loader.reload").
			WithField("path", l.path).
			WithError(err, "reload").
			Warn("Recipe reload failed, keeping previous recipes")
		l.report(fmt.Errorf("reload recipes: %w", err))
		return
	}

	l.mu.RLock()
	callbacks := append([]func([]Recipe){}, l.onChange...)
	l.mu.RUnlock()
	for _, cb := range callbacks {
		cb(recipes)
	}
}

func (l *Loader) report(err error) {
	select {
	case l.errChan <- err:
	default:
	}
}

// OnChange registers a callback invoked after each successful reload.
func (l *Loader) OnChange(cb func([]Recipe)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, cb)
}

// Errors returns a channel receiving errors that occur while watching.
func (l *Loader) Errors() <-chan error {
	return l.errChan
}

// Close stops the watcher.
func (l *Loader) Close() error {
	l.cancel()
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}
