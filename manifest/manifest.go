// Package manifest provides functionality for parsing gateway bundle
// manifests. A manifest describes one gateway: its registry name, its own
// version, and the host API version it was built against.
package manifest

import "fmt"

// Manifest describes a gateway bundle.
type Manifest struct {
	// Name is the registry key the gateway registers under.
	Name string `yaml:"name" json:"name"`

	// Version is the gateway's own semantic version.
	Version string `yaml:"version" json:"version"`

	// APIVersion is the host API version the gateway targets.
	APIVersion string `yaml:"api_version" json:"api_version"`

	// Description is optional display text.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Settings holds gateway-specific configuration defaults.
	Settings map[string]any `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// Validate checks the required manifest fields.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("manifest missing name")
	}
	if m.Version == "" {
		return fmt.Errorf("manifest %s missing version", m.Name)
	}
	if m.APIVersion == "" {
		return fmt.Errorf("manifest %s missing api_version", m.Name)
	}
	return nil
}
