package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/metarecord/pkg/record"
	"github.com/aretw0/metarecord/pkg/schema"
)

// ErrSchemaNotFound is returned when no schema is registered under a name.
var ErrSchemaNotFound = errors.New("schema not found")

// Registry manages named schemas.
// Schemas are immutable, so a registered schema can be handed to any number of
// goroutines building records at the same time.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*schema.Schema
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]*schema.Schema),
	}
}

// Register adds a schema to the registry.
// If a schema with the same name exists, it is overwritten.
func (r *Registry) Register(name string, s *schema.Schema) error {
	if s == nil {
		return fmt.Errorf("schema %q: nil schema", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[name] = s
	return nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*schema.Schema, error) {
	r.mu.RLock()
	s, ok := r.schemas[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	return s, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New looks up a schema by name and builds a record from input.
func (r *Registry) New(name string, input map[string]any, opts ...record.Option) (*record.Record, error) {
	s, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return record.New(s, input, opts...)
}
