package values

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GatewayName represents a validated gateway identifier.
// Enforces non-empty, trimmed gateway names.
type GatewayName struct {
	value string
}

// NewGatewayName creates a GatewayName with strict validation.
// A valid gateway name must:
// - Be non-empty
// - contain only lowercase alphanumeric characters and underscores
// - NOT contain paths, dots, or special characters
// - Be at most 64 characters long
func NewGatewayName(name string) (GatewayName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GatewayName{}, fmt.Errorf("gateway name cannot be empty")
	}

	if len(name) > 64 {
		return GatewayName{}, fmt.Errorf("gateway name too long (max 64 chars)")
	}

	// Names double as URL path segments and config keys, so keep them boring.
	if strings.ContainsAny(name, `/\`) {
		return GatewayName{}, fmt.Errorf("gateway name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return GatewayName{}, fmt.Errorf("gateway name cannot contain parent directory references")
	}

	for _, ch := range name {
		if !isValidGatewayChar(ch) {
			return GatewayName{}, fmt.Errorf("invalid gateway name %q: must contain only lowercase alphanumeric characters and underscores", name)
		}
	}

	return GatewayName{value: name}, nil
}

func isValidGatewayChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

// MustNewGatewayName creates a GatewayName or panics
func MustNewGatewayName(name string) GatewayName {
	gn, err := NewGatewayName(name)
	if err != nil {
		panic(err)
	}
	return gn
}

// String returns the string representation
func (g GatewayName) String() string {
	return g.value
}

// IsEmpty returns true if this is the zero value
func (g GatewayName) IsEmpty() bool {
	return g.value == ""
}

// Equals checks if two gateway names are equal
func (g GatewayName) Equals(other GatewayName) bool {
	return g.value == other.value
}

// MarshalJSON implements json.Marshaler.
// Uses json.Marshal for proper character escaping.
func (g GatewayName) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (g *GatewayName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid gateway name JSON: %w", err)
	}

	name, err := NewGatewayName(s)
	if err != nil {
		return err
	}
	*g = name
	return nil
}
