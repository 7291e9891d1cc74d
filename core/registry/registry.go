// Package registry - Capability provider registry
package registry

import (
	"sync"

	"capability-dispatch/core/capability"
	"capability-dispatch/internal/errors"
)

// entry holds the providers registered for one capability
type entry struct {
	def       capability.Definition
	providers map[string]interface{}
	order     []string
}

// Registry is the default provider registry. Providers are keyed by
// capability name and provider name; registration order is preserved
// per capability.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	capOrder []string
}

// New creates a new registry
func New() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Register binds a named provider to a capability. The provider must
// satisfy the capability's full contract.
func (r *Registry) Register(def capability.Definition, name string, impl interface{}) error {
	if name == "" {
		return errors.Newf(errors.TypeInput, "empty provider name for capability %s", def.Name())
	}
	if err := def.Conforms(impl); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[def.Name()]
	if !ok {
		e = &entry{
			def:       def,
			providers: make(map[string]interface{}),
		}
		r.entries[def.Name()] = e
		r.capOrder = append(r.capOrder, def.Name())
	}

	if _, exists := e.providers[name]; exists {
		return errors.Newf(errors.TypeDuplicateProvider,
			"provider already registered: %s/%s", def.Name(), name)
	}

	e.providers[name] = impl
	e.order = append(e.order, name)
	return nil
}

// Lookup returns the provider registered under a capability and name
func (r *Registry) Lookup(capName, provider string) (interface{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[capName]
	if !ok {
		return nil, errors.NotFound("unknown capability: " + capName)
	}

	impl, ok := e.providers[provider]
	if !ok {
		return nil, errors.UnrecognizedVariant(
			"unknown provider "+provider+" for capability "+capName).
			WithContext("capability", capName).
			WithContext("known_providers", append([]string(nil), e.order...))
	}
	return impl, nil
}

// Definition returns the definition registered under a capability name
func (r *Registry) Definition(capName string) (capability.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[capName]
	if !ok {
		return capability.Definition{}, false
	}
	return e.def, true
}

// Providers returns the provider names for a capability in
// registration order
func (r *Registry) Providers(capName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[capName]
	if !ok {
		return nil
	}
	return append([]string(nil), e.order...)
}

// Capabilities returns all registered capability names in
// registration order
func (r *Registry) Capabilities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.capOrder...)
}

// Resolve returns the provider registered under a capability and name,
// narrowed to the interface type T. A provider that does not implement
// T surfaces an UNSUPPORTED_OPERATION error: the caller asked for an
// operation set outside the provider's declared capability.
func Resolve[T any](r *Registry, capName, provider string) (T, error) {
	var zero T

	impl, err := r.Lookup(capName, provider)
	if err != nil {
		return zero, err
	}

	typed, ok := impl.(T)
	if !ok {
		return zero, errors.UnsupportedOperation(
			"provider " + provider + " of capability " + capName +
				" does not support the requested operations").
			WithContext("capability", capName).
			WithContext("provider", provider)
	}
	return typed, nil
}

// Global default registry
var defaultRegistry = New()

// Default returns the default registry
func Default() *Registry {
	return defaultRegistry
}

// Register binds a provider in the default registry
func Register(def capability.Definition, name string, impl interface{}) error {
	return defaultRegistry.Register(def, name, impl)
}

// Lookup resolves a provider from the default registry
func Lookup(capName, provider string) (interface{}, error) {
	return defaultRegistry.Lookup(capName, provider)
}
