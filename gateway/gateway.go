// Package gateway defines the capability contract every payment gateway
// plugin must satisfy. It lives in its own package so that the host and the
// gateway implementations can both depend on it without depending on each
// other.
package gateway

import "context"

// Gateway is the capability interface implemented by every payment gateway
// plugin. Implementations must be safe for concurrent use: the host registers
// a gateway once at startup and calls it from request handlers afterwards.
type Gateway interface {
	// Name returns the stable identifier the gateway is registered under.
	// It must be constant for the lifetime of the instance.
	Name() string

	// Deposit credits the given amount through the gateway and returns a
	// human-readable confirmation.
	Deposit(ctx context.Context, amount int64) (string, error)
}

// ConnectLinker is an optional capability for gateways that support account
// linking. The host surfaces these links when listing gateways.
type ConnectLinker interface {
	// ConnectURL returns the URL a user visits to link their account.
	ConnectURL() string
}

// SettingsProvider is an optional capability for gateways that accept
// configuration. The returned value is a struct whose shape is reflected to
// a JSON schema; config-supplied settings are validated against it before
// the gateway is constructed.
type SettingsProvider interface {
	SettingsModel() any
}
