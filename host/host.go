// Package host provides the composition layer that assembles the gateway
// registry at startup: load config, scan manifests, apply policy, validate
// settings, construct gateways from the catalog, register, freeze.
package host

import (
	"context"
	"fmt"
	"log/slog"

	hostlib "github.com/paygate-dev/paygate-host-sdk"
	"github.com/paygate-dev/paygate-host-sdk/discovery"
	"github.com/paygate-dev/paygate-host-sdk/gateway"
	"github.com/paygate-dev/paygate-host-sdk/manifest"
	"github.com/paygate-dev/paygate-host-sdk/policy"
	"github.com/paygate-dev/paygate-host-sdk/registry"
	"github.com/paygate-dev/paygate-host-sdk/schema"
)

// DefaultAPIConstraint is the host API range accepted from gateway
// manifests unless overridden by option or config.
const DefaultAPIConstraint = "^1.0"

// Host owns the composed gateway registry and the deposit call path.
type Host struct {
	registry   *registry.Registry
	schemas    *schema.Registry
	validator  *schema.Validator
	catalog    *discovery.Catalog
	config     *discovery.Config
	policy     policy.Policy
	logger     *slog.Logger
	middleware []hostlib.Middleware

	configPath    string
	manifestDir   string
	apiConstraint string
	direct        []gateway.Gateway

	overwrite      bool
	overwriteValue bool
}

// ConnectLink pairs a gateway name with its account-linking URL.
type ConnectLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// New composes a Host: it runs the full discovery protocol once and returns
// with a frozen registry. Registration is strictly sequential; afterwards the
// registry only serves reads.
func New(opts ...Option) (*Host, error) {
	h := &Host{
		schemas:       schema.NewRegistry(),
		catalog:       discovery.NewCatalog(),
		logger:        slog.Default(),
		apiConstraint: DefaultAPIConstraint,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.validator = schema.NewValidator(h.schemas)

	if h.config == nil && h.configPath != "" {
		cfg, err := discovery.LoadConfig(h.configPath)
		if err != nil {
			return nil, err
		}
		h.config = cfg
	}
	if h.config == nil {
		h.config = &discovery.Config{}
	}
	if h.config.APIVersion != "" {
		h.apiConstraint = h.config.APIVersion
	}

	overwrite := h.config.Overwrite
	if h.overwrite {
		overwrite = h.overwriteValue
	}
	h.registry = registry.NewRegistry(registry.WithOverwrite(overwrite))

	if h.policy == nil {
		h.policy = policy.NewPatternPolicy(
			policy.WithAllowPatterns(h.config.Allow...),
			policy.WithDenyPatterns(h.config.Deny...),
			policy.WithDenialHandler(&policy.SlogDenialHandler{Logger: h.logger}),
		)
	}

	manifests, err := h.loadManifests()
	if err != nil {
		return nil, err
	}

	if err := h.composeFromConfig(manifests); err != nil {
		return nil, err
	}
	if err := h.registerDirect(); err != nil {
		return nil, err
	}

	h.registry.Freeze()
	h.logger.Info("gateway registry composed", "gateways", h.registry.Len())
	return h, nil
}

func (h *Host) loadManifests() (map[string]*manifest.Manifest, error) {
	if h.manifestDir == "" {
		return nil, nil
	}
	found, err := discovery.ScanManifests(h.manifestDir)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*manifest.Manifest, len(found))
	for _, m := range found {
		byName[m.Name] = m
		h.logger.Debug("gateway manifest discovered",
			"gateway", m.Name, "version", m.Version, "api_version", m.APIVersion)
	}
	return byName, nil
}

func (h *Host) composeFromConfig(manifests map[string]*manifest.Manifest) error {
	for _, entry := range h.config.Gateways {
		if !entry.IsEnabled() {
			h.logger.Debug("gateway disabled by config", "gateway", entry.Name)
			continue
		}
		if !h.policy.CheckRegistration(entry.Name) {
			continue
		}

		factory, ok := h.catalog.Get(entry.Name)
		if !ok {
			return fmt.Errorf("gateway %s is enabled but not in the catalog", entry.Name)
		}

		settings := entry.Settings
		if m, ok := manifests[entry.Name]; ok {
			if err := discovery.CheckAPICompatibility(h.apiConstraint, m.APIVersion); err != nil {
				return fmt.Errorf("gateway %s: %w", entry.Name, err)
			}
			settings = mergeSettings(m.Settings, entry.Settings)
		}

		g, err := factory(settings)
		if err != nil {
			return fmt.Errorf("failed to construct gateway %s: %w", entry.Name, err)
		}

		if err := h.validateSettings(g, settings); err != nil {
			return err
		}
		if err := h.registry.Register(g); err != nil {
			return fmt.Errorf("failed to register gateway %s: %w", entry.Name, err)
		}
		h.logger.Info("gateway registered", "gateway", entry.Name)
	}
	return nil
}

func (h *Host) registerDirect() error {
	for _, g := range h.direct {
		if !h.policy.CheckRegistration(g.Name()) {
			continue
		}
		if err := h.registry.Register(g); err != nil {
			return fmt.Errorf("failed to register gateway %s: %w", g.Name(), err)
		}
		h.logger.Info("gateway registered", "gateway", g.Name())
	}
	return nil
}

func (h *Host) validateSettings(g gateway.Gateway, settings map[string]any) error {
	provider, ok := g.(gateway.SettingsProvider)
	if !ok {
		return nil
	}
	if _, registered := h.schemas.GetSchema(g.Name()); !registered {
		if err := h.schemas.Register(g.Name(), provider.SettingsModel()); err != nil {
			return err
		}
	}
	return h.validator.Validate(g.Name(), settings)
}

// mergeSettings overlays config settings on manifest defaults, shallowly.
func mergeSettings(defaults, overrides map[string]any) map[string]any {
	if len(defaults) == 0 {
		return overrides
	}
	merged := make(map[string]any, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Registry exposes the composed registry to request-handling code.
func (h *Host) Registry() *registry.Registry {
	return h.registry
}

// SettingsSchemas exposes the per-gateway settings schemas, e.g. for
// documentation endpoints.
func (h *Host) SettingsSchemas() *schema.Registry {
	return h.schemas
}

// Deposit routes a deposit to the named gateway through the middleware
// chain.
func (h *Host) Deposit(ctx context.Context, name string, amount int64) (string, error) {
	g, err := h.registry.Lookup(name)
	if err != nil {
		return "", err
	}

	ctx = hostlib.WithGatewayName(ctx, name)
	return hostlib.Chain(g.Deposit, h.middleware...)(ctx, amount)
}

// ConnectLinks returns account-linking URLs for every gateway that supports
// them, in registration order.
func (h *Host) ConnectLinks() []ConnectLink {
	var links []ConnectLink
	for name, g := range h.registry.All() {
		if linker, ok := g.(gateway.ConnectLinker); ok {
			links = append(links, ConnectLink{Name: name, URL: linker.ConnectURL()})
		}
	}
	return links
}
