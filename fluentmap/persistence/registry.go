package persistence

import (
	"slices"
	"sync"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/mapping"
)

// Registry collects mapping providers, typically from init functions of the
// packages declaring them.
type Registry struct {
	mu        sync.RWMutex
	providers []mapping.Provider
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(providers ...mapping.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, providers...)
}

func (r *Registry) Providers() []mapping.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.providers)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

var DefaultRegistry = NewRegistry()

// Register adds providers to DefaultRegistry.
func Register(providers ...mapping.Provider) {
	DefaultRegistry.Register(providers...)
}
