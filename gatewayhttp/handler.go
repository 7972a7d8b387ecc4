// Package gatewayhttp exposes the composed registry to HTTP request
// handlers: gateway listing (including account-linking URLs) and deposits.
package gatewayhttp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paygate-dev/paygate-host-sdk/gateway"
	"github.com/paygate-dev/paygate-host-sdk/registry"
)

// DepositService is the slice of the host the HTTP surface needs.
type DepositService interface {
	Registry() *registry.Registry
	Deposit(ctx context.Context, name string, amount int64) (string, error)
}

// GatewayInfo is one entry of the gateway listing.
type GatewayInfo struct {
	Name       string `json:"name"`
	ConnectURL string `json:"connect_url,omitempty"`
}

// DepositRequest is the deposit endpoint payload.
type DepositRequest struct {
	Amount int64 `json:"amount"`
}

// DepositResponse confirms a deposit.
type DepositResponse struct {
	Gateway string `json:"gateway"`
	Result  string `json:"result"`
}

// ErrorResponse carries a machine-readable error code and a message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Handler serves the gateway HTTP API.
type Handler struct {
	service DepositService
	logger  *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = l
	}
}

// NewHandler creates a Handler for the given service.
func NewHandler(service DepositService, opts ...HandlerOption) *Handler {
	h := &Handler{
		service: service,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts the gateway API routes.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/gateways", h.listGateways)
	r.Post("/gateways/{name}/deposit", h.deposit)
	return r
}

func (h *Handler) listGateways(w http.ResponseWriter, r *http.Request) {
	infos := make([]GatewayInfo, 0, h.service.Registry().Len())
	for name, g := range h.service.Registry().All() {
		info := GatewayInfo{Name: name}
		if linker, ok := g.(gateway.ConnectLinker); ok {
			info.ConnectURL = linker.ConnectURL()
		}
		infos = append(infos, info)
	}
	h.writeJSON(w, http.StatusOK, infos)
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_payload", "request body must be JSON with an amount field")
		return
	}
	if req.Amount <= 0 {
		h.writeError(w, http.StatusBadRequest, "invalid_amount", "deposit amount must be positive")
		return
	}

	result, err := h.service.Deposit(r.Context(), name, req.Amount)
	if err != nil {
		if errors.Is(err, registry.ErrGatewayNotFound) {
			h.writeError(w, http.StatusNotFound, "unknown_gateway", err.Error())
			return
		}
		h.logger.Error("deposit failed", "gateway", name, "error", err)
		h.writeError(w, http.StatusBadGateway, "deposit_failed", err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, DepositResponse{Gateway: name, Result: result})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
