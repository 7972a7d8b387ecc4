// Package policy decides which gateways the host is willing to register.
package policy

// Policy is consulted once per gateway during composition.
type Policy interface {
	// CheckRegistration reports whether a gateway name may register and
	// notifies the denial handler when it may not.
	CheckRegistration(name string) bool

	// EvaluateRegistration returns the decision without side effects
	// (like logging denials).
	EvaluateRegistration(name string) bool
}

// DenialHandler is called when a policy check denies a registration.
type DenialHandler interface {
	// OnDenial is called when a gateway registration is denied.
	OnDenial(name string, reason string)
}
