package manifest

import (
	"gopkg.in/yaml.v3"
)

// YamlParser implements Parser for YAML.
type YamlParser struct{}

// NewYamlParser creates a new YamlParser.
func NewYamlParser() Parser {
	return &YamlParser{}
}

// Parse unmarshals YAML bytes into a Manifest struct.
func (p *YamlParser) Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
