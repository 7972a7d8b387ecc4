package host

import (
	"log/slog"

	hostlib "github.com/paygate-dev/paygate-host-sdk"
	"github.com/paygate-dev/paygate-host-sdk/discovery"
	"github.com/paygate-dev/paygate-host-sdk/gateway"
	"github.com/paygate-dev/paygate-host-sdk/policy"
)

// Option defines a functional option for configuring the Host.
type Option func(*Host)

// WithCatalog sets the catalog of gateway constructors available to the
// config-driven composition step.
func WithCatalog(catalog *discovery.Catalog) Option {
	return func(h *Host) {
		h.catalog = catalog
	}
}

// WithConfig supplies an already-parsed host configuration.
func WithConfig(cfg *discovery.Config) Option {
	return func(h *Host) {
		h.config = cfg
	}
}

// WithConfigFile loads the host configuration from a YAML file during New.
func WithConfigFile(path string) Option {
	return func(h *Host) {
		h.configPath = path
	}
}

// WithGateways registers pre-built gateway instances after the config-driven
// ones, in the order given.
func WithGateways(gateways ...gateway.Gateway) Option {
	return func(h *Host) {
		h.direct = append(h.direct, gateways...)
	}
}

// WithPolicy overrides the registration policy derived from config.
func WithPolicy(p policy.Policy) Option {
	return func(h *Host) {
		h.policy = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		h.logger = l
	}
}

// WithMiddleware appends deposit middleware, FIFO order.
func WithMiddleware(mw ...hostlib.Middleware) Option {
	return func(h *Host) {
		h.middleware = append(h.middleware, mw...)
	}
}

// WithAPIVersion sets the host API constraint manifests are checked against.
func WithAPIVersion(constraint string) Option {
	return func(h *Host) {
		h.apiConstraint = constraint
	}
}

// WithManifestDir scans dir for gateway manifests during New. Manifests gate
// API compatibility and contribute settings defaults.
func WithManifestDir(dir string) Option {
	return func(h *Host) {
		h.manifestDir = dir
	}
}

// WithOverwrite selects last-write-wins duplicate handling regardless of the
// config document.
func WithOverwrite(overwrite bool) Option {
	return func(h *Host) {
		h.overwrite = true
		h.overwriteValue = overwrite
	}
}
