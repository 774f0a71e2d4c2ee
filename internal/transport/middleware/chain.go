package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so the first one given runs first:
// Chain(a, b)(h) is a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Route wraps a single handler func in route-specific middleware, such as a
// rate limit that only applies to some endpoints.
func Route(h http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(mws...)(h)
}
