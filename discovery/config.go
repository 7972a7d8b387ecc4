package discovery

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the host configuration document. It declares which catalog
// gateways are enabled and carries their settings blocks.
type Config struct {
	// APIVersion constrains which gateway manifests the host accepts,
	// e.g. "^1.0". Empty means the host default applies.
	APIVersion string `yaml:"api_version,omitempty"`

	// Overwrite selects last-write-wins duplicate handling.
	Overwrite bool `yaml:"overwrite,omitempty"`

	// Allow and Deny are glob patterns over gateway names.
	Allow []string `yaml:"allow,omitempty"`
	Deny  []string `yaml:"deny,omitempty"`

	// Gateways lists the gateways to compose, in registration order.
	Gateways []GatewayConfig `yaml:"gateways"`
}

// GatewayConfig enables one gateway and carries its settings.
type GatewayConfig struct {
	Name     string         `yaml:"name"`
	Enabled  *bool          `yaml:"enabled,omitempty"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// IsEnabled reports whether the gateway should be composed.
// Listing a gateway enables it unless explicitly switched off.
func (g *GatewayConfig) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

// ParseConfig unmarshals a YAML config document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse host config: %w", err)
	}
	for i, g := range cfg.Gateways {
		if g.Name == "" {
			return nil, fmt.Errorf("host config: gateway entry %d missing name", i)
		}
	}
	return &cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read host config %s: %w", path, err)
	}
	return ParseConfig(data)
}
