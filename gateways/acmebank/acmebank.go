// Package acmebank is a reference gateway implementation. It depends only
// on the gateway package, the way out-of-tree gateways are expected to.
package acmebank

import (
	"context"
	"fmt"

	"github.com/paygate-dev/paygate-host-sdk/gateway"
)

// Name is the registry key AcmeBank registers under.
const Name = "acme_bank"

var _ gateway.Gateway = (*AcmeBank)(nil)

// AcmeBank accepts deposits and confirms them.
type AcmeBank struct{}

// New creates an AcmeBank gateway.
func New() *AcmeBank {
	return &AcmeBank{}
}

// Factory matches the catalog constructor shape. AcmeBank takes no settings.
func Factory(settings map[string]any) (gateway.Gateway, error) {
	return New(), nil
}

// Name returns the stable registry key.
func (b *AcmeBank) Name() string {
	return Name
}

// Deposit credits the amount and returns the confirmation text.
func (b *AcmeBank) Deposit(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("deposit amount must be positive, got %d", amount)
	}
	return fmt.Sprintf("Deposited %d into AcmeBank", amount), nil
}
