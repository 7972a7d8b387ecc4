package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator validates settings documents against registered schemas.
type Validator struct {
	registry *Registry
}

// NewValidator creates a Validator backed by the given registry.
func NewValidator(registry *Registry) *Validator {
	return &Validator{registry: registry}
}

// Validate checks settings against the schema registered for kind.
// A kind without a registered schema passes; gateways that take no settings
// never register one.
func (v *Validator) Validate(kind string, settings map[string]any) error {
	schemaStr, ok := v.registry.GetSchema(kind)
	if !ok {
		return nil
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("inline://%s/settings.json", kind)
	if err := compiler.AddResource(url, strings.NewReader(schemaStr)); err != nil {
		return fmt.Errorf("invalid schema for gateway kind %s: %w", kind, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("invalid schema for gateway kind %s: %w", kind, err)
	}

	// Settings arrive from YAML; round-trip through JSON so the validator
	// sees the value types it expects.
	doc, err := normalize(settings)
	if err != nil {
		return fmt.Errorf("settings for gateway kind %s are not JSON-representable: %w", kind, err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("settings for gateway kind %s rejected: %w", kind, err)
	}
	return nil
}

func normalize(settings map[string]any) (any, error) {
	if settings == nil {
		settings = map[string]any{}
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(settings); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
