// Package globex is a reference gateway implementation demonstrating the
// optional capabilities: account linking and validated settings.
package globex

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paygate-dev/paygate-host-sdk/gateway"
)

// Name is the registry key Globex registers under.
const Name = "globex"

var (
	_ gateway.Gateway          = (*Globex)(nil)
	_ gateway.ConnectLinker    = (*Globex)(nil)
	_ gateway.SettingsProvider = (*Globex)(nil)
)

// Settings configures a Globex gateway. The host reflects this struct into
// a JSON schema and validates config-supplied settings against it.
type Settings struct {
	// Endpoint is the Globex API base URL.
	Endpoint string `json:"endpoint" jsonschema:"required"`

	// ConnectPath is appended to Endpoint for account linking.
	ConnectPath string `json:"connect_path,omitempty"`
}

// Globex accepts deposits and offers account linking.
type Globex struct {
	settings Settings
}

// New creates a Globex gateway with the given settings.
func New(settings Settings) *Globex {
	if settings.ConnectPath == "" {
		settings.ConnectPath = "/oauth/connect"
	}
	return &Globex{settings: settings}
}

// Factory matches the catalog constructor shape, decoding the raw settings
// map into Settings.
func Factory(settings map[string]any) (gateway.Gateway, error) {
	var s Settings
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("globex settings not representable: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid globex settings: %w", err)
	}
	return New(s), nil
}

// Name returns the stable registry key.
func (g *Globex) Name() string {
	return Name
}

// Deposit credits the amount and returns the confirmation text.
func (g *Globex) Deposit(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("deposit amount must be positive, got %d", amount)
	}
	return fmt.Sprintf("Deposited %d into Globex", amount), nil
}

// ConnectURL returns the account-linking URL.
func (g *Globex) ConnectURL() string {
	return g.settings.Endpoint + g.settings.ConnectPath
}

// SettingsModel exposes the settings shape for schema generation.
func (g *Globex) SettingsModel() any {
	return Settings{}
}
