package registry

import (
	"errors"
	"fmt"

	"github.com/paygate-dev/paygate-host-sdk/gateway/values"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrGatewayNotFound is returned when a lookup misses.
	ErrGatewayNotFound = errors.New("gateway not found")

	// ErrDuplicateName is returned when a gateway registers under a name
	// that is already taken and overwrite mode is off.
	ErrDuplicateName = errors.New("gateway name already registered")

	// ErrRegistryFrozen is returned when Register is called after Freeze.
	ErrRegistryFrozen = errors.New("registry is frozen")

	// ErrInvalidGateway is returned when a gateway reports an invalid name.
	ErrInvalidGateway = errors.New("invalid gateway")
)

// NotFoundError indicates no gateway is registered under the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gateway not found: %s", e.Name)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, registry.ErrGatewayNotFound)
func (e *NotFoundError) Is(target error) bool {
	return target == ErrGatewayNotFound
}

// DuplicateNameError indicates a registration collision.
type DuplicateNameError struct {
	Name values.GatewayName
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("gateway name already registered: %s", e.Name.String())
}

// Is implements error matching for errors.Is() checks.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// InvalidGatewayError indicates a gateway whose self-reported name fails
// validation. Registration never accepts such an instance.
type InvalidGatewayError struct {
	Name   string
	Reason error
}

func (e *InvalidGatewayError) Error() string {
	return fmt.Sprintf("invalid gateway %q: %v", e.Name, e.Reason)
}

// Is implements error matching for errors.Is() checks.
func (e *InvalidGatewayError) Is(target error) bool {
	return target == ErrInvalidGateway
}

func (e *InvalidGatewayError) Unwrap() error {
	return e.Reason
}
