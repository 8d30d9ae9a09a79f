package sources

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds the marketplace adapters keyed by source identifier.
type Registry struct {
	sources map[string]Source
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]Source),
	}
}

// Register adds a source adapter. Registering the same identifier twice
// is an error.
func (r *Registry) Register(source Source) error {
	if source == nil {
		return fmt.Errorf("source cannot be nil")
	}
	id := source.ID()
	if id == "" {
		return fmt.Errorf("source identifier cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sources[id]; exists {
		return fmt.Errorf("source %s already registered", id)
	}
	r.sources[id] = source
	return nil
}

// Get retrieves a source by identifier (case-insensitive).
func (r *Registry) Get(id string) (Source, error) {
	normalized := strings.ToLower(strings.TrimSpace(id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	source, exists := r.sources[normalized]
	if !exists {
		return nil, fmt.Errorf("source %s not found", id)
	}
	return source, nil
}

// IDs returns the identifiers of all registered sources.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sources))
	for id := range r.sources {
		ids = append(ids, id)
	}
	return ids
}
