// Package registry provides thread-safe, ordered storage of service registrations.
package registry

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"
)

// Binding represents a mapping between a service type and its implementation.
type Binding struct {
	// ServiceType is the type consumers resolve (e.g., Logger interface)
	ServiceType reflect.Type

	// ImplementationType is the type the container constructs (e.g., *ConsoleLogger)
	ImplementationType reflect.Type

	// Lifetime defines how instances are managed
	// Values: "scoped", "transient", "singleton"
	Lifetime string
}

// Registry is a service collection: bindings are kept in the order they were added
// and the same service type may be bound more than once.
// A per-service index gives O(1) lookup by reflect.Type.
type Registry struct {
	mu        sync.RWMutex
	bindings  []*Binding
	byService map[reflect.Type][]int
}

// New creates a new Registry instance.
func New() *Registry {
	return &Registry{
		byService: make(map[reflect.Type][]int),
	}
}

// Add appends a binding to the registry.
// Returns an error if the binding or either of its types is nil.
//
// This method is goroutine-safe.
func (r *Registry) Add(binding *Binding) error {
	if binding == nil {
		return &InvalidBindingError{Reason: "binding cannot be nil"}
	}
	if binding.ServiceType == nil {
		return &InvalidBindingError{Reason: "service type cannot be nil"}
	}
	if binding.ImplementationType == nil {
		return &InvalidBindingError{Reason: "implementation type cannot be nil"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byService[binding.ServiceType] = append(r.byService[binding.ServiceType], len(r.bindings))
	r.bindings = append(r.bindings, binding)
	return nil
}

// Get retrieves the binding that resolves a service type. When a type was bound
// more than once the last binding wins.
//
// This method is goroutine-safe.
func (r *Registry) Get(serviceType reflect.Type) (*Binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.byService[serviceType]
	if !exists {
		return nil, &BindingNotFoundError{Type: serviceType}
	}

	return r.bindings[idx[len(idx)-1]], nil
}

// GetAll returns all bindings for a service type in registration order.
// Returns empty slice if no bindings found.
//
// This method is goroutine-safe.
func (r *Registry) GetAll(serviceType reflect.Type) []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.byService[serviceType]
	result := make([]*Binding, 0, len(idx))
	for _, i := range idx {
		result = append(result, r.bindings[i])
	}
	return result
}

// Has checks if a binding exists for the given service type.
//
// This method is goroutine-safe.
func (r *Registry) Has(serviceType reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byService[serviceType]
	return exists
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bindings)
}

// All returns every binding in registration order.
func (r *Registry) All() []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Binding, len(r.bindings))
	copy(result, r.bindings)
	return result
}

// ByLifetime returns the bindings registered with the given lifetime, in registration order.
func (r *Registry) ByLifetime(lifetime string) []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Binding
	for _, binding := range r.bindings {
		if binding.Lifetime == lifetime {
			result = append(result, binding)
		}
	}
	return result
}

// Types returns every bound service type, in order of first registration.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]reflect.Type, 0, len(r.byService))
	for i, binding := range r.bindings {
		// Only the first binding of each service type contributes.
		if r.byService[binding.ServiceType][0] != i {
			continue
		}
		types = append(types, binding.ServiceType)
	}
	return types
}

// Record is the printable form of a binding.
type Record struct {
	Service        string `yaml:"service"`
	Implementation string `yaml:"implementation"`
	Lifetime       string `yaml:"lifetime"`
}

// Snapshot returns the bindings as records, in registration order.
// This is useful for debugging and introspection.
func (r *Registry) Snapshot() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]Record, 0, len(r.bindings))
	for _, binding := range r.bindings {
		records = append(records, Record{
			Service:        binding.ServiceType.String(),
			Implementation: binding.ImplementationType.String(),
			Lifetime:       binding.Lifetime,
		})
	}
	return records
}

// WriteYAML writes the snapshot to w as a YAML document.
func (r *Registry) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Bindings []Record `yaml:"bindings"`
	}{Bindings: r.Snapshot()}); err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return enc.Close()
}

// BindingNotFoundError is returned when a requested binding does not exist.
type BindingNotFoundError struct {
	Type reflect.Type
}

func (e *BindingNotFoundError) Error() string {
	return fmt.Sprintf("binding not found for type %v", e.Type)
}

// InvalidBindingError is returned when a binding has invalid parameters.
type InvalidBindingError struct {
	Reason string
}

func (e *InvalidBindingError) Error() string {
	return fmt.Sprintf("invalid binding: %s", e.Reason)
}
