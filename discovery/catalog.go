// Package discovery implements the composition side of the registry: an
// explicit catalog of gateway constructors, a YAML host configuration, and a
// manifest directory scan. The registry itself stays agnostic to all of it;
// discovery only produces the instances that get registered at startup.
package discovery

import (
	"fmt"

	"github.com/paygate-dev/paygate-host-sdk/gateway"
	"github.com/paygate-dev/paygate-host-sdk/gateway/values"
)

// Factory constructs a gateway from its config-supplied settings.
type Factory func(settings map[string]any) (gateway.Gateway, error)

// Catalog is the statically-built, ordered list of gateway constructors a
// host compiles in. It replaces tag scanning: every registrable gateway is
// named here, in code, where the compiler can see it.
type Catalog struct {
	factories map[string]Factory
	order     []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		factories: make(map[string]Factory),
	}
}

// Add registers a constructor under name. Duplicate names fail fast; a
// catalog collision is a programming error, not a config problem.
func (c *Catalog) Add(name string, f Factory) error {
	gn, err := values.NewGatewayName(name)
	if err != nil {
		return fmt.Errorf("catalog entry: %w", err)
	}
	key := gn.String()

	if _, exists := c.factories[key]; exists {
		return fmt.Errorf("catalog already contains gateway: %s", key)
	}
	if f == nil {
		return fmt.Errorf("catalog entry %s has nil factory", key)
	}

	c.factories[key] = f
	c.order = append(c.order, key)
	return nil
}

// MustAdd is Add for composition lists built in package init code.
func (c *Catalog) MustAdd(name string, f Factory) *Catalog {
	if err := c.Add(name, f); err != nil {
		panic(err)
	}
	return c
}

// Get returns the constructor for name.
func (c *Catalog) Get(name string) (Factory, bool) {
	f, ok := c.factories[name]
	return f, ok
}

// Names returns the catalog entries in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
