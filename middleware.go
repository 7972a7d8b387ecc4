// Package hostlib carries the cross-cutting pieces shared by the host
// packages: the deposit middleware chain and its context helpers.
package hostlib

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DepositFunc is the invocation shape middleware wraps: one deposit call
// against one gateway.
type DepositFunc func(ctx context.Context, amount int64) (string, error)

// Middleware is a function that wraps a DepositFunc to add cross-cutting
// behavior. Middleware executes in FIFO order (first registered wraps first,
// onion model).
//
// Example usage:
//
//	audit := func(next hostlib.DepositFunc) hostlib.DepositFunc {
//	    return func(ctx context.Context, amount int64) (string, error) {
//	        log.Printf("deposit of %d requested", amount)
//	        return next(ctx, amount)
//	    }
//	}
type Middleware func(next DepositFunc) DepositFunc

// Chain wraps base with the given middleware, FIFO: the first middleware
// becomes the outermost layer.
func Chain(base DepositFunc, middleware ...Middleware) DepositFunc {
	wrapped := base
	for i := len(middleware) - 1; i >= 0; i-- {
		wrapped = middleware[i](wrapped)
	}
	return wrapped
}

type gatewayNameKey struct{}

// WithGatewayName annotates ctx with the gateway a deposit is routed to, so
// middleware can report it without changing the DepositFunc signature.
func WithGatewayName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, gatewayNameKey{}, name)
}

// GatewayNameFromContext returns the gateway name set by WithGatewayName.
func GatewayNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(gatewayNameKey{}).(string)
	return name
}

// LoggingMiddleware returns a middleware that logs deposit invocations with
// their outcome and latency.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next DepositFunc) DepositFunc {
		return func(ctx context.Context, amount int64) (string, error) {
			start := time.Now()
			result, err := next(ctx, amount)
			attrs := []any{
				"gateway", GatewayNameFromContext(ctx),
				"amount", amount,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err != nil {
				logger.Error("deposit failed", append(attrs, "error", err)...)
			} else {
				logger.Info("deposit completed", attrs...)
			}
			return result, err
		}
	}
}

// PanicRecoveryMiddleware returns a middleware that catches panics from a
// gateway and converts them to errors instead of crashing the host.
func PanicRecoveryMiddleware() Middleware {
	return func(next DepositFunc) DepositFunc {
		return func(ctx context.Context, amount int64) (result string, err error) {
			defer func() {
				if r := recover(); r != nil {
					result = ""
					err = fmt.Errorf("gateway %s panicked: %v", GatewayNameFromContext(ctx), r)
				}
			}()
			return next(ctx, amount)
		}
	}
}
