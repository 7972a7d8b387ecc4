// Package registry implements the capability registry mapping gateway names
// to gateway instances. The intended lifecycle is single-threaded
// registration during startup, Freeze, then concurrent read-only access from
// request handlers; an unfrozen registry is still safe under concurrent use.
package registry

import (
	"iter"
	"sync"

	"github.com/paygate-dev/paygate-host-sdk/gateway"
	"github.com/paygate-dev/paygate-host-sdk/gateway/values"
)

var _ GatewayRegistry = (*Registry)(nil)

// Registry implements GatewayRegistry using in-memory storage.
type Registry struct {
	entries map[string]gateway.Gateway
	order   []string
	mu      sync.RWMutex
	frozen  bool

	overwrite bool
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithOverwrite selects the duplicate-name policy. The default is to fail
// registration with a DuplicateNameError; with overwrite enabled the later
// registration silently replaces the earlier one (last write wins).
func WithOverwrite(overwrite bool) RegistryOption {
	return func(r *Registry) {
		r.overwrite = overwrite
	}
}

// NewRegistry creates an empty gateway registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[string]gateway.Gateway),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts g under the key reported by g.Name().
// The name is validated; a gateway reporting a malformed name is rejected
// with an InvalidGatewayError before it can shadow anything.
func (r *Registry) Register(g gateway.Gateway) error {
	name, err := values.NewGatewayName(g.Name())
	if err != nil {
		return &InvalidGatewayError{Name: g.Name(), Reason: err}
	}
	key := name.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}

	if _, exists := r.entries[key]; exists {
		if !r.overwrite {
			return &DuplicateNameError{Name: name}
		}
		// Overwrite keeps the original registration position.
		r.entries[key] = g
		return nil
	}

	r.entries[key] = g
	r.order = append(r.order, key)
	return nil
}

// Lookup returns the gateway registered under name.
// Returns a NotFoundError when no gateway holds that name; it never falls
// back to a default instance.
func (r *Registry) Lookup(name string) (gateway.Gateway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.entries[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return g, nil
}

// All yields (name, gateway) pairs in registration order. Each range
// iterates over a snapshot, so registrations that race with the walk cannot
// corrupt it and the sequence can be ranged over any number of times.
func (r *Registry) All() iter.Seq2[string, gateway.Gateway] {
	return func(yield func(string, gateway.Gateway) bool) {
		r.mu.RLock()
		names := make([]string, len(r.order))
		copy(names, r.order)
		entries := make(map[string]gateway.Gateway, len(r.entries))
		for k, v := range r.entries {
			entries[k] = v
		}
		r.mu.RUnlock()

		for _, name := range names {
			if !yield(name, entries[name]) {
				return
			}
		}
	}
}

// Len returns the number of registered gateways.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Freeze seals the registry. After Freeze, Register fails with
// ErrRegistryFrozen while Lookup and All keep serving. Freeze is idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}
