// Package schema implements a settings schema registry for gateways.
// Gateways expose a settings struct; the registry reflects it to a JSON
// schema so config-supplied settings can be validated before the gateway is
// constructed.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
)

// Registry stores one JSON schema per gateway kind.
type Registry struct {
	schemas   map[string]string
	mu        sync.RWMutex
	reflector *jsonschema.Reflector
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// NewRegistry creates a new settings schema registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		schemas:   make(map[string]string),
		reflector: new(jsonschema.Reflector),
	}

	// Settings documents are plain objects, not $ref forests.
	r.reflector.ExpandedStruct = true

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a schema for a gateway kind.
// model can be a Go struct (to generate the schema), a raw JSON schema
// string, a map, or JSON bytes.
func (r *Registry) Register(kind string, model any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[kind]; exists {
		return fmt.Errorf("settings schema already registered for gateway kind: %s", kind)
	}

	schemaStr, err := r.render(model)
	if err != nil {
		return fmt.Errorf("gateway kind %s: %w", kind, err)
	}

	r.schemas[kind] = schemaStr
	return nil
}

func (r *Registry) render(model any) (string, error) {
	switch v := model.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal schema map: %w", err)
		}
		return string(b), nil
	default:
		s := r.reflector.Reflect(model)
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal generated schema: %w", err)
		}
		return string(b), nil
	}
}

// GetSchema retrieves the JSON schema for a gateway kind.
func (r *Registry) GetSchema(kind string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[kind]
	return s, ok
}

// List returns all gateway kinds with a registered schema.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		keys = append(keys, k)
	}
	return keys
}
