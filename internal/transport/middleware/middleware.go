// Package middleware provides the HTTP middleware stack of the API server.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/scriptbook-backend/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(h) is mw1(mw2(h)): mw1 runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Default is the server stack, outermost first:
// Recovery, RequestID, Logger, CORS.
func Default(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		Logger(logger),
		CORS(cors),
	)
}
