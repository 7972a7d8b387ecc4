package registry

import (
	"iter"

	"github.com/paygate-dev/paygate-host-sdk/gateway"
)

// GatewayRegistry manages the process-wide name to gateway mapping.
type GatewayRegistry interface {
	// Register inserts a gateway under its self-reported name.
	Register(g gateway.Gateway) error

	// Lookup returns the gateway registered under name.
	Lookup(name string) (gateway.Gateway, error)

	// All yields (name, gateway) pairs in registration order. The sequence
	// is restartable and safe to range over concurrently with lookups.
	All() iter.Seq2[string, gateway.Gateway]

	// Len returns the number of registered gateways.
	Len() int

	// Freeze seals the registry; subsequent Register calls fail.
	Freeze()
}
