package globex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paygate-dev/paygate-host-sdk/gateways/globex"
)

func Test_Globex_Deposit(t *testing.T) {
	g := globex.New(globex.Settings{Endpoint: "https://api.globex.example"})
	assert.Equal(t, "globex", g.Name())

	result, err := g.Deposit(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, "Deposited 250 into Globex", result)

	_, err = g.Deposit(context.Background(), 0)
	assert.Error(t, err)
}

func Test_Globex_ConnectURL(t *testing.T) {
	g := globex.New(globex.Settings{Endpoint: "https://api.globex.example"})
	assert.Equal(t, "https://api.globex.example/oauth/connect", g.ConnectURL())

	custom := globex.New(globex.Settings{
		Endpoint:    "https://api.globex.example",
		ConnectPath: "/link",
	})
	assert.Equal(t, "https://api.globex.example/link", custom.ConnectURL())
}

func Test_Globex_Factory(t *testing.T) {
	g, err := globex.Factory(map[string]any{
		"endpoint": "https://api.globex.example",
	})
	require.NoError(t, err)
	assert.Equal(t, globex.Name, g.Name())

	_, err = globex.Factory(map[string]any{"endpoint": 42})
	assert.Error(t, err)
}
