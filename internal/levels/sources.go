package levels

import (
	"fmt"
	"sort"
	"sync"
)

// SourceFunc opens a catalog. The argument is source-specific: a directory
// path for the "dir" source, ignored by "builtin".
type SourceFunc func(arg string) (*Catalog, error)

var (
	sources = make(map[string]SourceFunc)
	mu      sync.RWMutex
)

// RegisterSource adds a named catalog source. Typically called from an
// init() function. Panics if the name is already taken.
func RegisterSource(name string, f SourceFunc) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sources[name]; exists {
		panic(fmt.Sprintf("levels: source %q already registered", name))
	}
	sources[name] = f
}

// OpenSource opens the named source.
func OpenSource(name, arg string) (*Catalog, error) {
	mu.RLock()
	f, ok := sources[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("levels: unknown source %q", name)
	}
	return f(arg)
}

// Sources returns the registered source names, sorted.
func Sources() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
