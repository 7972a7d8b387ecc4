package gatewayhttp_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paygate-dev/paygate-host-sdk/gatewayhttp"
	"github.com/paygate-dev/paygate-host-sdk/gateways/acmebank"
	"github.com/paygate-dev/paygate-host-sdk/gateways/globex"
	"github.com/paygate-dev/paygate-host-sdk/host"
)

// declining always fails deposits.
type declining struct{}

func (declining) Name() string { return "declining_bank" }

func (declining) Deposit(ctx context.Context, amount int64) (string, error) {
	return "", errors.New("account frozen")
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := host.New(
		host.WithGateways(
			acmebank.New(),
			globex.New(globex.Settings{Endpoint: "https://api.globex.example"}),
		),
		host.WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)

	handler := gatewayhttp.NewHandler(h, gatewayhttp.WithLogger(slog.New(slog.DiscardHandler)))
	srv := httptest.NewServer(handler.Router())
	t.Cleanup(srv.Close)
	return srv
}

func Test_Handler_ListGateways(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/gateways")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []gatewayhttp.GatewayInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
	require.Len(t, infos, 2)

	// Registration order is preserved.
	assert.Equal(t, "acme_bank", infos[0].Name)
	assert.Empty(t, infos[0].ConnectURL)
	assert.Equal(t, "globex", infos[1].Name)
	assert.Equal(t, "https://api.globex.example/oauth/connect", infos[1].ConnectURL)
}

func Test_Handler_Deposit(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(
		srv.URL+"/gateways/acme_bank/deposit",
		"application/json",
		strings.NewReader(`{"amount": 100}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dr gatewayhttp.DepositResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dr))
	assert.Equal(t, "acme_bank", dr.Gateway)
	assert.Equal(t, "Deposited 100 into AcmeBank", dr.Result)
}

func Test_Handler_Deposit_UnknownGateway(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(
		srv.URL+"/gateways/unknown_bank/deposit",
		"application/json",
		strings.NewReader(`{"amount": 100}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var er gatewayhttp.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
	assert.Equal(t, "unknown_gateway", er.Code)
}

func Test_Handler_Deposit_BadRequests(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"not json", "amount=100", "invalid_payload"},
		{"zero amount", `{"amount": 0}`, "invalid_amount"},
		{"negative amount", `{"amount": -5}`, "invalid_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(
				srv.URL+"/gateways/acme_bank/deposit",
				"application/json",
				strings.NewReader(tt.body),
			)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var er gatewayhttp.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
			assert.Equal(t, tt.code, er.Code)
		})
	}
}

func Test_Handler_Deposit_GatewayFailure(t *testing.T) {
	// Amounts are validated before the gateway runs, so provoke a failure
	// with a gateway that always declines.
	h, err := host.New(
		host.WithGateways(declining{}),
		host.WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)

	handler := gatewayhttp.NewHandler(h, gatewayhttp.WithLogger(slog.New(slog.DiscardHandler)))
	srv := httptest.NewServer(handler.Router())
	t.Cleanup(srv.Close)

	resp, err := http.Post(
		srv.URL+"/gateways/declining_bank/deposit",
		"application/json",
		strings.NewReader(`{"amount": 100}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
