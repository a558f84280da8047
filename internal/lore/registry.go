package lore

import (
	"fmt"
	"sort"
	"sync"
)

// Options configures a generator created through the registry.
type Options struct {
	Model    string // Provider-specific model identifier
	APIKey   string // Credential; empty makes remote providers unavailable
	MaxLevel int    // Highest species level, used in prompts
}

// Factory creates a generator from options.
type Factory func(opts Options) (Generator, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

func init() {
	Register("static", func(Options) (Generator, error) { return Static{}, nil })
}

// Register adds a generator factory to the registry.
// Typically called from a provider package's init() function.
// Panics if a provider with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("lore: provider %q already registered", name))
	}
	factories[name] = f
}

// Providers returns the names of all registered providers, sorted.
func Providers() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for name := range factories {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Create instantiates a generator by provider name.
// Returns an error if the provider is not registered or cannot be built.
func Create(name string, opts Options) (Generator, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("lore: unknown provider %q", name)
	}
	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("lore: create %s: %w", name, err)
	}
	return g, nil
}

// Exists checks if a provider with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
