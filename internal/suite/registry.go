// Package suite is the registry of benchmarked function modules.
package suite

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/cosine"
	"github.com/agbru/bindtime/internal/exponential"
	"github.com/agbru/bindtime/internal/factorial"
	"github.com/agbru/bindtime/internal/power"
)

// Registry is a thread-safe set of modules keyed by their command-line name.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]bench.Module
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]bench.Module)}
}

// NewDefaultRegistry returns a registry with the four function modules:
// "pow", "factorial", "exp" and "cos".
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, m := range []bench.Module{power.Module{}, factorial.Module{}, exponential.Module{}, cosine.Module{}} {
		_ = r.Register(m)
	}
	return r
}

// Register adds m under m.Name(), replacing any module of the same name.
//
// Parameters:
//   - m: The module to register.
//
// Returns:
//   - error: An error if the module has no name.
func (r *Registry) Register(m bench.Module) error {
	name := m.Name()
	if name == "" {
		return fmt.Errorf("module has an empty name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[name] = m
	return nil
}

// Get returns the module registered under name.
func (r *Registry) Get(name string) (bench.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	if !ok {
		return nil, fmt.Errorf("unknown function: %s", name)
	}
	return m, nil
}

// List returns the registered names in alphabetical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered module, ordered by name.
func (r *Registry) All() []bench.Module {
	names := r.List()
	r.mu.RLock()
	defer r.mu.RUnlock()

	modules := make([]bench.Module, 0, len(names))
	for _, name := range names {
		if m, ok := r.modules[name]; ok {
			modules = append(modules, m)
		}
	}
	return modules
}

// Resolve returns the module named name, or every module for "all".
func (r *Registry) Resolve(name string) ([]bench.Module, error) {
	if name == "" || name == "all" {
		return r.All(), nil
	}
	m, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return []bench.Module{m}, nil
}

// MustGet is like Get but panics if the module is not registered.
func (r *Registry) MustGet(name string) bench.Module {
	m, err := r.Get(name)
	if err != nil {
		panic(fmt.Sprintf("suite: required module not found: %s", name))
	}
	return m
}

// Has reports whether a module is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.modules[name]
	return ok
}

var globalRegistry = NewDefaultRegistry()

// Global returns the process-wide registry.
func Global() *Registry {
	return globalRegistry
}
