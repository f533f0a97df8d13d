// Package registry provides a global registry for platform backend factories.
// Backends register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

// Backend is the windowing/graphics collaborator the game loop runs on.
// Drawing and event polling come from core; the rest manages lifetime and time.
type Backend interface {
	core.Canvas
	core.EventSource

	// Name returns the identifier used on the command line (e.g., "tui").
	Name() string

	// Description returns a one-line human-readable summary.
	Description() string

	// Init creates the drawable surface. A failure is fatal for the session.
	Init(width, height int, title string) error

	// NowMillis returns monotonic time in milliseconds.
	NowMillis() int64

	// SleepMillis blocks for ms milliseconds (no-op for ms <= 0).
	SleepMillis(ms int64)

	// Shutdown releases everything Init created.
	Shutdown() error
}

// Options carries command-line settings to backend factories.
// Backends ignore options that do not apply to them.
type Options struct {
	Frames   int    // Headless: quit after this many presented frames (0 = never)
	PNGPath  string // Headless: write the last frame here on shutdown
	Realtime bool   // Headless: use the wall clock instead of a virtual one
	Logger   *logging.Logger
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new, uninitialized backend.
type Factory func(opts Options) Backend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f

	// Get description by creating a temporary, uninitialized instance
	b := f(Options{})
	descriptions[name] = b.Description()
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new backend by name.
// Returns an error if the name is not registered.
func Create(name string, opts Options) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(opts), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
